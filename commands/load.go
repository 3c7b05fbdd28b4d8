package commands

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"

	"github.com/vivian-hafener-lanl/Evalys-LANL/converters"
	"github.com/vivian-hafener-lanl/Evalys-LANL/viz"
)

type Load struct{}

func (l *Load) Usage() string {
	return "load SERIES_CSV NB_RESOURCES <OPTIONAL-OUTPUT.png>"
}

func (l *Load) Description() string {
	return `
Takes a utilization time series (CSV with time,load columns) and the
cluster's resource count and renders the utilization step curve with
the resource ceiling, the time-weighted mean, and rug marks at the
times the load resets to zero.

e.g. load out_mstates.csv 128
`
}

func (l *Load) Command(outputDir string, args ...string) error {
	if len(args) < 2 {
		return fmt.Errorf("First two arguments must be a series CSV and the resource count")
	}

	series, err := converters.SeriesFromCSVFile(args[0])
	if err != nil {
		return err
	}
	nbResources, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("Second argument must be the resource count: %s", err)
	}

	p := plot.New()
	err = viz.PlotLoad(p, series.Series, viz.LoadConfig{NbResources: nbResources})
	if err != nil {
		return err
	}
	p.Title.Text = series.Name

	return savePlot(p, 10, 5, outputPath(outputDir, args, 2, series.Name+"-load.png"))
}

type FreeResources struct{}

func (f *FreeResources) Usage() string {
	return "free-resources SERIES_CSV NB_RESOURCES <OPTIONAL-OUTPUT.png>"
}

func (f *FreeResources) Description() string {
	return `
Takes a utilization time series and the cluster's resource count and
renders the complement: how many machines sit free over time.

e.g. free-resources out_mstates.csv 128
`
}

func (f *FreeResources) Command(outputDir string, args ...string) error {
	if len(args) < 2 {
		return fmt.Errorf("First two arguments must be a series CSV and the resource count")
	}

	series, err := converters.SeriesFromCSVFile(args[0])
	if err != nil {
		return err
	}
	nbResources, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("Second argument must be the resource count: %s", err)
	}

	p := plot.New()
	err = viz.PlotFreeResources(p, series.Series, nbResources, viz.LoadConfig{})
	if err != nil {
		return err
	}
	p.Title.Text = series.Name

	return savePlot(p, 10, 5, outputPath(outputDir, args, 2, series.Name+"-free.png"))
}
