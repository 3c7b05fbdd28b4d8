package dsl

//CumulativeWaitingTime accumulates waiting time over the trace: the value
//at time t is the total waiting time of all jobs that started at or before
//t.  The series is indexed by starting time (the instant a job stops
//waiting).
func CumulativeWaitingTime(jobs Jobs) Series {
	ordered := jobs.Copy()
	ordered.SortByStartingTime()

	series := Series{
		Times:  make([]float64, 0, len(ordered)),
		Values: make([]float64, 0, len(ordered)),
	}
	total := 0.0
	for _, job := range ordered {
		total += job.WaitingTime
		series.Times = append(series.Times, job.StartingTime)
		series.Values = append(series.Values, total)
	}
	return series
}
