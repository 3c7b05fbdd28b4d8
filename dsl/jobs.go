package dsl

import "sort"

//Jobs is an ordered job table.  Order matters: identity numbering and the
//load-rectangle composition both depend on input order, so sorting is
//always done on a copy by the renderers that need it.
type Jobs []Job

//Len returns the number of jobs in the table
func (j Jobs) Len() int { return len(j) }

//Swap swaps two jobs in place
func (j Jobs) Swap(a, b int) { j[a], j[b] = j[b], j[a] }

//Copy returns a shallow copy of the table.
func (j Jobs) Copy() Jobs {
	dup := make(Jobs, len(j))
	copy(dup, j)
	return dup
}

//MinSubmissionTime returns the earliest submission time in the table.
func (j Jobs) MinSubmissionTime() float64 {
	min := 0.0
	for i, job := range j {
		if i == 0 || job.SubmissionTime < min {
			min = job.SubmissionTime
		}
	}
	return min
}

//MaxFinishTime returns the latest finish time in the table.
func (j Jobs) MaxFinishTime() float64 {
	max := 0.0
	for i, job := range j {
		if i == 0 || job.FinishTime() > max {
			max = job.FinishTime()
		}
	}
	return max
}

// Sorters (private)

type byJobID struct {
	Jobs
}

func (s byJobID) Less(a, b int) bool {
	return s.Jobs[a].JobID < s.Jobs[b].JobID
}

type bySubmissionTime struct {
	Jobs
}

func (s bySubmissionTime) Less(a, b int) bool {
	return s.Jobs[a].SubmissionTime < s.Jobs[b].SubmissionTime
}

type byStartingTime struct {
	Jobs
}

func (s byStartingTime) Less(a, b int) bool {
	return s.Jobs[a].StartingTime < s.Jobs[b].StartingTime
}

//SortByJobID sorts the table in-place by job id
func (j Jobs) SortByJobID() {
	sort.Stable(byJobID{j})
}

//SortBySubmissionTime sorts the table in-place by submission time
func (j Jobs) SortBySubmissionTime() {
	sort.Stable(bySubmissionTime{j})
}

//SortByStartingTime sorts the table in-place by starting time
func (j Jobs) SortByStartingTime() {
	sort.Stable(byStartingTime{j})
}
