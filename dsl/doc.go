/*
Evalys-LANL renders visual diagnostics for traces of parallel-job-scheduling
workloads.

A scheduler (or scheduler simulator) emits a table of jobs, each assigned a
set of machines over a time interval.  The dsl package holds the nouns used
to describe such a trace:

- Interval/IntervalSet: a compact representation of a set of machine indices as disjoint closed ranges
- Job: one scheduled (or rejected) job with its timing and allocation
- Jobs: an ordered job table, can be sorted and interrogated for its extent
- Series: a time-indexed step series (utilization, power, cumulative waiting time, ...)
- NamedSeries: a Series with a display name, used where legend order matters
- PseudoJob/PStateSet: synthetic records representing machine power-state intervals rather than scheduled computation
- ColorSelector/LabelSelector: strategy functions that pick a job's color and label text

ResolveIdentities assigns a stable small integer to each distinct
(workload, jobID) pair so that repeated occurrences of the same logical job
are colored consistently, and picks one representative occurrence per
identity to carry a visible text label.

Using these nouns the viz package can slice a trace into rectangles, bands
and step curves without ever touching the drawing surface itself.
*/
package dsl
