package dsl

//JobSet bundles a job table with the machine index bounds of the cluster it
//ran on.  Name identifies the set on legends when several sets are compared.
type JobSet struct {
	Name      string
	Jobs      Jobs
	ResBounds Interval
}

//NewJobSet builds a JobSet, inferring ResBounds from the allocations when
//the caller passes a zero bound.
func NewJobSet(name string, jobs Jobs, resBounds Interval) JobSet {
	if resBounds == (Interval{}) {
		first := true
		for _, job := range jobs {
			for _, itv := range job.AllocatedResources {
				if first || itv.Lo < resBounds.Lo {
					resBounds.Lo = itv.Lo
				}
				if first || itv.Hi > resBounds.Hi {
					resBounds.Hi = itv.Hi
				}
				first = false
			}
		}
	}
	return JobSet{
		Name:      name,
		Jobs:      jobs,
		ResBounds: resBounds,
	}
}
