package viz

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//stepLine builds a post-step line for a series.
func stepLine(s dsl.Series, c color.Color, width vg.Length, dashed bool) (*plotter.Line, error) {
	xys := make(plotter.XYs, s.Len())
	for i := range xys {
		xys[i].X = s.Times[i]
		xys[i].Y = s.Values[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.StepStyle = plotter.PostStep
	line.LineStyle.Color = c
	line.LineStyle.Width = width
	if dashed {
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
	return line, nil
}

//refLine builds a horizontal reference line spanning [x0, x1] at height y.
func refLine(x0, x1, y float64, c color.Color, width vg.Length, dashed bool) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y}, {X: x1, Y: y}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = width
	if dashed {
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
	return line, nil
}

//stepBand traces the outline of the region between two step curves sharing
//one time axis, in post-step form: along the upper curve left to right,
//then back along the lower curve.
func stepBand(times, lower, upper []float64) plotter.XYs {
	n := len(times)
	outline := make(plotter.XYs, 0, 4*n)
	for i := 0; i < n; i++ {
		outline = append(outline, plotter.XY{X: times[i], Y: upper[i]})
		if i < n-1 {
			outline = append(outline, plotter.XY{X: times[i+1], Y: upper[i]})
		}
	}
	for i := n - 1; i >= 0; i-- {
		if i < n-1 {
			outline = append(outline, plotter.XY{X: times[i+1], Y: lower[i]})
		}
		outline = append(outline, plotter.XY{X: times[i], Y: lower[i]})
	}
	return outline
}

//runBand traces the band outline for the kept samples s..e.  Each sample
//extends to the next time under post-step semantics, so the band reaches
//times[e+1] when it exists; a run ending at the final sample contributes no
//area beyond it.
func runBand(times, lower, upper []float64, s, e int) plotter.XYs {
	n := len(times)
	outline := make(plotter.XYs, 0, 4*(e-s+1))
	for i := s; i <= e; i++ {
		outline = append(outline, plotter.XY{X: times[i], Y: upper[i]})
		if i+1 < n {
			outline = append(outline, plotter.XY{X: times[i+1], Y: upper[i]})
		}
	}
	for i := e; i >= s; i-- {
		if i+1 < n {
			outline = append(outline, plotter.XY{X: times[i+1], Y: lower[i]})
		}
		outline = append(outline, plotter.XY{X: times[i], Y: lower[i]})
	}
	return outline
}

//maskedStepBands splits the band between two step curves into the
//contiguous runs of samples where keep is true, and returns one outline per
//run.
func maskedStepBands(times, lower, upper []float64, keep func(lower, upper float64) bool) []plotter.XYs {
	bands := []plotter.XYs{}
	start := -1
	flush := func(end int) {
		if start >= 0 {
			bands = append(bands, runBand(times, lower, upper, start, end))
		}
		start = -1
	}
	for i := range times {
		if keep(lower[i], upper[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i - 1)
	}
	flush(len(times) - 1)
	return bands
}

//bandPolygon turns an outline into a filled, borderless polygon.
func bandPolygon(outline plotter.XYs, fill color.Color) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle.Width = 0
	return poly, nil
}
