package viz

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//PlotFragmentation renders per-resource fragmentation values three ways on
//the supplied plots: the raw values by resource index, their distribution
//as a histogram with a rug, and their empirical CDF.
func PlotFragmentation(axes [3]*plot.Plot, frag []float64, label string) error {
	if len(frag) == 0 {
		return fmt.Errorf("%w: empty fragmentation vector", ErrShapeMismatch)
	}

	// Raw values over resources.
	raw := dsl.Series{
		Times:  make([]float64, len(frag)),
		Values: frag,
	}
	for i := range raw.Times {
		raw.Times[i] = float64(i)
	}
	line, err := stepLine(raw, OrderedColors[3], vg.Points(1), false)
	if err != nil {
		return err
	}
	line.StepStyle = plotter.NoStep
	axes[0].Add(line, plotter.NewGrid())
	axes[0].Legend.Add(label, line)
	axes[0].Title.Text = "Fragmentation over resources"

	// Distribution.
	hist := fragmentationHistogram(frag, 10)
	axes[1].Add(hist, NewRugPlotter(frag, OrderedColors[0]), plotter.NewGrid())
	axes[1].Title.Text = "Fragmentation distribution"

	// Empirical CDF.
	ecdf, err := stepLine(empiricalCDF(frag), OrderedColors[3], vg.Points(1), false)
	if err != nil {
		return err
	}
	axes[2].Add(ecdf, plotter.NewGrid())
	axes[2].Legend.Add(label, ecdf)
	axes[2].Title.Text = "Fragmentation ecdf"

	return nil
}

//NewFragmentationBoard lays the three fragmentation subplots out on a 1x3
//vertical board.
func NewFragmentationBoard(frag []float64, label string) (*UniformBoard, error) {
	board := NewUniformBoard(1, 3, 0.01)
	axes := [3]*plot.Plot{plot.New(), plot.New(), plot.New()}
	if err := PlotFragmentation(axes, frag, label); err != nil {
		return nil, err
	}
	// Row 0 of the board is the bottom; keep the raw plot on top.
	board.AddNextSubPlot(axes[2])
	board.AddNextSubPlot(axes[1])
	board.AddNextSubPlot(axes[0])
	return board, nil
}

//fragmentationHistogram bins the values into n equal-width bins weighted by
//count, between the observed minimum and maximum.
func fragmentationHistogram(values []float64, n int) *plotter.Histogram {
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	bins := make([]plotter.HistogramBin, 0, n)
	dv := (max - min) / float64(n)
	for i := 0; i < n; i++ {
		low := min + dv*float64(i)
		high := min + dv*float64(i+1)
		if i == n-1 {
			high = max
		}
		weight := 0.0
		for _, v := range values {
			if v >= low && (v < high || (i == n-1 && v <= high)) {
				weight += 1
			}
		}
		bins = append(bins, plotter.HistogramBin{
			Min:    low,
			Max:    high,
			Weight: weight,
		})
	}

	return &plotter.Histogram{
		Bins:      bins,
		FillColor: withAlpha(OrderedColors[3], 0.5),
		LineStyle: plotter.DefaultLineStyle,
	}
}

//empiricalCDF returns the step series x -> P(value <= x) over the sample.
func empiricalCDF(values []float64) dsl.Series {
	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)
	n := float64(len(sorted))
	cdf := dsl.Series{
		Times:  sorted,
		Values: make([]float64, len(sorted)),
	}
	for i := range sorted {
		cdf.Values[i] = float64(i+1) / n
	}
	return cdf
}
