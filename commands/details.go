package commands

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"

	"github.com/vivian-hafener-lanl/Evalys-LANL/converters"
	"github.com/vivian-hafener-lanl/Evalys-LANL/viz"
)

type JobDetails struct{}

func (j *JobDetails) Usage() string {
	return "details JOBS_CSV CLUSTER_SIZE <OPTIONAL-OUTPUT.png>"
}

func (j *JobDetails) Description() string {
	return `
Takes a job table and the cluster size and renders each job's
lifecycle (submission, start, finish) as a three-zone scatter/line
chart with the job's size on the y axis.

e.g. details out_jobs.csv 128
`
}

func (j *JobDetails) Command(outputDir string, args ...string) error {
	if len(args) < 2 {
		return fmt.Errorf("First two arguments must be a job table CSV and the cluster size")
	}

	jobset, err := converters.JobsFromCSVFile(args[0])
	if err != nil {
		return err
	}
	size, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("Second argument must be the cluster size: %s", err)
	}

	p := plot.New()
	if err := viz.PlotJobDetails(p, jobset.Jobs, size, viz.JobDetailsConfig{Title: jobset.Name}); err != nil {
		return err
	}

	return savePlot(p, 10, 6, outputPath(outputDir, args, 2, jobset.Name+"-details.png"))
}
