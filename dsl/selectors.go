package dsl

import "image/color"

//ColorSelector picks the color for one job.  uniqueNumber is the job's
//identity number from ResolveIdentities, so the same logical job gets the
//same color on every occurrence.
type ColorSelector func(job Job, uniqueNumber int, palette []color.Color) color.Color

//LabelSelector picks the annotation text for one job.
type LabelSelector func(job Job) string

//RoundRobinColor cycles the palette by identity number.
var RoundRobinColor ColorSelector = func(job Job, uniqueNumber int, palette []color.Color) color.Color {
	return palette[uniqueNumber%len(palette)]
}

//JobIDLabel labels a job with its job id.
var JobIDLabel LabelSelector = func(job Job) string {
	return job.JobID
}
