package commands

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"gonum.org/v1/plot"

	"github.com/vivian-hafener-lanl/Evalys-LANL/converters"
	"github.com/vivian-hafener-lanl/Evalys-LANL/viz"
)

type Gantt struct{}

func (g *Gantt) Usage() string {
	return "gantt JOBS_CSV <OPTIONAL-OUTPUT.png>"
}

func (g *Gantt) Description() string {
	return `
Takes a job table (Batsim-style CSV) and renders its gantt chart:
machines against time, one translucent rectangle per contiguous
machine range of each job's allocation, recurring jobs colored
consistently and labeled once.

e.g. gantt out_jobs.csv gantt.png
`
}

func (g *Gantt) Command(outputDir string, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("First argument must be a job table CSV")
	}

	jobset, err := converters.JobsFromCSVFile(args[0])
	if err != nil {
		return err
	}
	logger.Info("loaded-jobset", lager.Data{
		"name":      jobset.Name,
		"jobs":      len(jobset.Jobs),
		"resources": jobset.ResBounds,
	})

	p := plot.New()
	if err := viz.PlotGantt(p, jobset, viz.GanttConfig{Title: jobset.Name}); err != nil {
		return err
	}

	return savePlot(p, 12, 6, outputPath(outputDir, args, 1, jobset.Name+"-gantt.png"))
}

type GanttLoad struct{}

func (g *GanttLoad) Usage() string {
	return "gantt-load JOBS_CSV <OPTIONAL-OUTPUT.png>"
}

func (g *GanttLoad) Description() string {
	return `
Takes a job table and renders a two-panel board: the gantt chart on
top and the per-machine accumulated load below, so allocation shape
and load balance can be read together.

e.g. gantt-load out_jobs.csv overview.png
`
}

func (g *GanttLoad) Command(outputDir string, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("First argument must be a job table CSV")
	}

	jobset, err := converters.JobsFromCSVFile(args[0])
	if err != nil {
		return err
	}

	board := viz.NewUniformBoard(1, 2, 0.01)

	gantt := plot.New()
	if err := viz.PlotGantt(gantt, jobset, viz.GanttConfig{Title: jobset.Name}); err != nil {
		return err
	}

	load := plot.New()
	if err := viz.PlotProcessorLoad(load, jobset, viz.ProcessorLoadConfig{}); err != nil {
		return err
	}

	// Row 0 is the bottom of the board.
	board.AddNextSubPlot(load)
	board.AddNextSubPlot(gantt)

	file := outputPath(outputDir, args, 1, jobset.Name+"-gantt-load.png")
	if err := board.Save(12, 9, file); err != nil {
		return err
	}
	logger.Info("saved-chart", lager.Data{"file": file})
	return nil
}
