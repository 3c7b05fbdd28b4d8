package commands

import (
	"fmt"

	"gonum.org/v1/plot"

	"github.com/vivian-hafener-lanl/Evalys-LANL/converters"
	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
	"github.com/vivian-hafener-lanl/Evalys-LANL/viz"
)

type CompareSeries struct{}

func (c *CompareSeries) Usage() string {
	return "compare SERIES_A_CSV SERIES_B_CSV <OPTIONAL-OUTPUT.png>"
}

func (c *CompareSeries) Description() string {
	return `
Takes two time series (CSV with time,value columns) and renders them
as step curves with the divergence shaded: red where the first exceeds
the second, green where the second exceeds the first.

e.g. compare easy-utilization.csv fcfs-utilization.csv
`
}

func (c *CompareSeries) Command(outputDir string, args ...string) error {
	if len(args) < 2 {
		return fmt.Errorf("First two arguments must be series CSVs")
	}

	first, err := converters.SeriesFromCSVFile(args[0])
	if err != nil {
		return err
	}
	second, err := converters.SeriesFromCSVFile(args[1])
	if err != nil {
		return err
	}

	p := plot.New()
	err = viz.PlotSeriesComparison(p, []dsl.NamedSeries{first, second}, "")
	if err != nil {
		return err
	}

	return savePlot(p, 10, 5, outputPath(outputDir, args, 2, first.Name+"-vs-"+second.Name+".png"))
}
