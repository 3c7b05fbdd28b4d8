package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//PlotSeriesComparison renders exactly two step series onto p and shades the
//regions where they diverge: red where the first exceeds the second, green
//where the second exceeds the first, nothing where they are equal.  Both
//series are reindexed onto the union of their time axes with forward-fill
//before comparison.
func PlotSeriesComparison(p *plot.Plot, series []dsl.NamedSeries, title string) error {
	if len(series) != 2 {
		return fmt.Errorf("%w: series comparison needs exactly 2 series, got %d", ErrShapeMismatch, len(series))
	}
	first, second := series[0], series[1]

	for i, s := range []dsl.NamedSeries{first, second} {
		line, err := stepLine(s.Series, OrderedColors[3+i], vg.Points(1), false)
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	times := dsl.UnionTimes(first.Times, second.Times)
	y1 := first.Reindex(times).Values
	y2 := second.Reindex(times).Values

	red := withAlpha(color.RGBA{255, 0, 0, 255}, 0.5)
	green := withAlpha(color.RGBA{0, 128, 0, 255}, 0.5)

	type shading struct {
		fill  color.Color
		label string
		keep  func(a, b float64) bool
	}
	shadings := []shading{
		{red, first.Name + ">" + second.Name, func(a, b float64) bool { return b < a }},
		{green, first.Name + "<" + second.Name, func(a, b float64) bool { return b > a }},
	}

	for _, sh := range shadings {
		var swatch *plotter.Polygon
		for _, outline := range maskedStepBands(times, y1, y2, sh.keep) {
			band, err := bandPolygon(outline, sh.fill)
			if err != nil {
				return err
			}
			p.Add(band)
			if swatch == nil {
				swatch = band
			}
		}
		if swatch != nil {
			p.Legend.Add(sh.label, swatch)
		}
	}

	p.Add(plotter.NewGrid())
	p.Title.Text = title
	if p.Title.Text == "" {
		p.Title.Text = "Series comparison"
	}
	return nil
}
