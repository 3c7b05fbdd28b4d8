package dsl

import "fmt"

//Job is one row of a scheduler trace.  Times are in seconds (either raw
//simulation time or Unix time -- the renderers don't care which, they only
//switch tick formatting).  AllocatedResources may be empty: the job was
//rejected or never ran.
type Job struct {
	WorkloadName       string
	JobID              string
	SubmissionTime     float64
	StartingTime       float64
	ExecutionTime      float64
	WaitingTime        float64
	ProcAlloc          int
	AllocatedResources IntervalSet
}

//FinishTime is the time at which the job releases its machines.
func (j Job) FinishTime() float64 {
	return j.StartingTime + j.ExecutionTime
}

//FullID is the identity key shared by repeated occurrences of the same
//logical job.  The workload prefix keeps equal job ids from different
//workloads apart.
func (j Job) FullID() string {
	return j.WorkloadName + "!" + j.JobID
}

func (j Job) String() string {
	return fmt.Sprintf("%s [%g, %g] on %s", j.FullID(), j.StartingTime, j.FinishTime(), j.AllocatedResources)
}
