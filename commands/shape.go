package commands

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"gonum.org/v1/plot"

	"github.com/vivian-hafener-lanl/Evalys-LANL/converters"
	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
	"github.com/vivian-hafener-lanl/Evalys-LANL/viz"
)

type GanttShape struct{}

func (g *GanttShape) Usage() string {
	return "shape JOBS_CSV..."
}

func (g *GanttShape) Description() string {
	return `
Takes one job table per scheduler run and overlays their silhouettes
on one axis, one translucent color per run, for a coarse visual
comparison of how each scheduler fills the cluster.

e.g. shape easy.csv fcfs.csv
`
}

func (g *GanttShape) Command(outputDir string, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("Arguments must be job table CSVs, one per run")
	}

	jobsets := []dsl.JobSet{}
	for _, filename := range args {
		jobset, err := converters.JobsFromCSVFile(filename)
		if err != nil {
			return err
		}
		jobsets = append(jobsets, jobset)
	}

	p := plot.New()
	if err := viz.PlotGanttShape(p, jobsets, viz.GanttShapeConfig{}); err != nil {
		return err
	}

	return savePlot(p, 12, 6, outputPath(outputDir, nil, 0, "shape.png"))
}

type Fragmentation struct{}

func (f *Fragmentation) Usage() string {
	return "fragmentation FRAG_CSV <OPTIONAL-OUTPUT.png>"
}

func (f *Fragmentation) Description() string {
	return `
Takes a per-resource fragmentation vector (CSV with time,value columns,
one row per resource) and renders it three ways on one board: raw
values, distribution histogram, and empirical CDF.

e.g. fragmentation frag.csv
`
}

func (f *Fragmentation) Command(outputDir string, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("First argument must be a fragmentation CSV")
	}

	series, err := converters.SeriesFromCSVFile(args[0])
	if err != nil {
		return err
	}

	board, err := viz.NewFragmentationBoard(series.Values, series.Name)
	if err != nil {
		return err
	}

	file := outputPath(outputDir, args, 1, series.Name+"-fragmentation.png")
	if err := board.Save(8, 12, file); err != nil {
		return err
	}
	logger.Info("saved-chart", lager.Data{"file": file})
	return nil
}
