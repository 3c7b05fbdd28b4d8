package commands

import (
	"fmt"

	"gonum.org/v1/plot"

	"github.com/vivian-hafener-lanl/Evalys-LANL/converters"
	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
	"github.com/vivian-hafener-lanl/Evalys-LANL/viz"
)

type Series struct{}

func (s *Series) Usage() string {
	return "series KIND JOBS_CSV..."
}

func (s *Series) Description() string {
	return `
Takes a series kind (e.g. waiting_time) and one job table per
scheduler run, and renders the derived metric of every run as step
curves on a shared axis.

e.g. series waiting_time easy.csv fcfs.csv
`
}

func (s *Series) Command(outputDir string, args ...string) error {
	if len(args) < 2 {
		return fmt.Errorf("First argument must be a series kind, followed by at least one job table CSV")
	}
	kind := args[0]

	jobsets := []dsl.JobSet{}
	for _, filename := range args[1:] {
		jobset, err := converters.JobsFromCSVFile(filename)
		if err != nil {
			return err
		}
		jobsets = append(jobsets, jobset)
	}

	p := plot.New()
	if err := viz.PlotSeries(p, kind, jobsets, false); err != nil {
		return err
	}

	return savePlot(p, 10, 5, outputPath(outputDir, nil, 0, kind+".png"))
}
