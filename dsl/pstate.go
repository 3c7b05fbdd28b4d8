package dsl

import "math"

//PseudoJob is a synthetic record representing a machine power-state
//interval rather than a scheduled computation.  End may be +Inf for a state
//that never changes again.
type PseudoJob struct {
	PState     int
	IntervalID int
	Begin      float64
	End        float64
}

//PStateSet is the power-state half of a trace: pseudo-jobs plus the
//machine intervals each one applies to.
type PStateSet struct {
	PseudoJobs []PseudoJob
	Intervals  map[int]IntervalSet
	ResBounds  Interval
}

//FiniteExtent returns the time extent of the pseudo-jobs whose End is
//finite.  ok is false if there are none.
func (p PStateSet) FiniteExtent() (min, max float64, ok bool) {
	for _, job := range p.PseudoJobs {
		if math.IsInf(job.End, 1) {
			continue
		}
		if !ok || job.Begin < min {
			min = job.Begin
		}
		if !ok || job.End > max {
			max = job.End
		}
		ok = true
	}
	return min, max, ok
}
