package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//RugPlotter draws short vertical ticks rising from the bottom edge of the
//plotting area, one per time.  The load charts use it to mark reset events
//(samples where the load drops to zero) without disturbing the data range.
type RugPlotter struct {
	Times     []float64
	Height    vg.Length
	LineStyle draw.LineStyle
}

var _ plot.Plotter = &RugPlotter{}

func NewRugPlotter(times []float64, c color.Color) *RugPlotter {
	return &RugPlotter{
		Times:  times,
		Height: vg.Points(6),
		LineStyle: draw.LineStyle{
			Color: c,
			Width: vg.Points(1),
		},
	}
}

func (r *RugPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	for _, t := range r.Times {
		x := trX(t)
		if !c.ContainsX(x) {
			continue
		}
		c.StrokeLine2(r.LineStyle, x, c.Min.Y, x, c.Min.Y+r.Height)
	}
}

//Thumbnail draws a legend swatch: a single tick.
func (r *RugPlotter) Thumbnail(c *draw.Canvas) {
	x := c.Center().X
	c.StrokeLine2(r.LineStyle, x, c.Min.Y, x, c.Max.Y)
}
