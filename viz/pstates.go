package viz

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//Power-state display categories, in palette order.
const (
	pstateOff = iota
	pstateSwitchOn
	pstateSwitchOff
)

var pstateLabels = []string{"OFF", "switch ON", "switch OFF"}
var pstateAlphas = []float64{0.6, 1, 1}

var pstatePalette = []color.Color{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x56, 0xae, 0x6c, 0xff},
	color.RGBA{0xba, 0x49, 0x5b, 0xff},
}

//PStateConfig assigns pstate ids to display categories and optionally
//overrides the category palette (which needs at least 3 colors).
type PStateConfig struct {
	Palette   []color.Color
	Off       []int
	SwitchOn  []int
	SwitchOff []int
}

//PStatePlotter overlays machine power-state intervals on a gantt chart:
//each pseudo-job paints its machine intervals from its begin time to its
//end time (clipped to the horizon) in its category's color.
type PStatePlotter struct {
	PStates dsl.PStateSet
	Horizon float64
	Palette []color.Color

	category map[int]int // pstate id -> display category
}

var _ plot.Plotter = &PStatePlotter{}

func (pp *PStatePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, job := range pp.PStates.PseudoJobs {
		category, interesting := pp.category[job.PState]
		if !interesting {
			continue
		}
		col := withAlpha(pp.Palette[category], pstateAlphas[category])

		begin := job.Begin
		end := math.Min(job.End, pp.Horizon)
		for _, itv := range pp.PStates.Intervals[job.IntervalID] {
			fillRect(c, trX, trY, begin, end, float64(itv.Lo), float64(itv.Hi)+0.9, col, nil)
		}
	}
}

//PlotPStates overlays the power-state pseudo-jobs onto p, up to xHorizon.
//Pseudo-jobs whose pstate is in none of the configured categories are
//skipped.
func PlotPStates(p *plot.Plot, pstates dsl.PStateSet, xHorizon float64, config PStateConfig) error {
	palette := config.Palette
	if palette == nil {
		palette = pstatePalette
	}
	if len(palette) < 3 {
		return fmt.Errorf("%w: pstate palette needs at least 3 colors, got %d", ErrShapeMismatch, len(palette))
	}

	category := map[int]int{}
	for _, id := range config.Off {
		category[id] = pstateOff
	}
	for _, id := range config.SwitchOn {
		category[id] = pstateSwitchOn
	}
	for _, id := range config.SwitchOff {
		category[id] = pstateSwitchOff
	}

	pp := &PStatePlotter{
		PStates:  pstates,
		Horizon:  xHorizon,
		Palette:  palette,
		category: category,
	}
	p.Add(pp)

	// One legend swatch per category that actually appears.
	seen := map[int]bool{}
	for _, job := range pstates.PseudoJobs {
		if cat, ok := category[job.PState]; ok {
			seen[cat] = true
		}
	}
	for cat := pstateOff; cat <= pstateSwitchOff; cat++ {
		if seen[cat] {
			p.Legend.Add(pstateLabels[cat], &swatchThumbnailer{withAlpha(palette[cat], pstateAlphas[cat])})
		}
	}

	return nil
}

//GanttPStatesConfig carries the per-render options of PlotGanttPStates.
type GanttPStatesConfig struct {
	Title    string
	NoLabels bool
	PStates  PStateConfig
}

//PlotGanttPStates renders a gantt chart and its power-state overlay on one
//surface, with axis limits spanning the union of both data sets.
func PlotGanttPStates(p *plot.Plot, jobset dsl.JobSet, pstates dsl.PStateSet, config GanttPStatesConfig) error {
	err := PlotGantt(p, jobset, GanttConfig{
		Title:    config.Title,
		NoLabels: config.NoLabels,
		Alpha:    0.3,
		Palette:  []color.Color{color.RGBA{0x89, 0x60, 0xb3, 0xff}},
	})
	if err != nil {
		return err
	}

	xmin := jobset.Jobs.MinSubmissionTime()
	xmax := jobset.Jobs.MaxFinishTime()
	if fmin, fmax, ok := pstates.FiniteExtent(); ok {
		xmin = math.Min(xmin, fmin)
		xmax = math.Max(xmax, fmax)
	}
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min = math.Min(float64(jobset.ResBounds.Lo), float64(pstates.ResBounds.Lo))
	p.Y.Max = math.Max(float64(jobset.ResBounds.Hi), float64(pstates.ResBounds.Hi))
	p.Add(plotter.NewGrid())

	return PlotPStates(p, pstates, p.X.Max, config.PStates)
}

//swatchThumbnailer draws a filled legend swatch for artists that have no
//stock plotter behind them.
type swatchThumbnailer struct {
	fill color.Color
}

func (s *swatchThumbnailer) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	}
	c.FillPolygon(s.fill, pts)
}
