package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//JobRect is one drawable rectangle of a job's allocation: x spans the job's
//run time, y spans one native interval of the allocation.  The 0.9 height
//padding (instead of a full 1.0) leaves a visible gap between adjacent
//machine rows.
type JobRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

//ComposeJobRects turns a job's allocation into rectangles, one per native
//interval of the set.  Intervals are never merged further: the set already
//holds the minimal disjoint ranges.
func ComposeJobRects(job dsl.Job) []JobRect {
	rects := make([]JobRect, 0, len(job.AllocatedResources))
	for _, itv := range job.AllocatedResources {
		rects = append(rects, JobRect{
			X:      job.StartingTime,
			Y:      float64(itv.Lo),
			Width:  job.ExecutionTime,
			Height: float64(itv.Hi-itv.Lo) + 0.9,
		})
	}
	return rects
}

//Reservation is an optional red overlay marking a reserved block of
//machines over a time window.
type Reservation struct {
	Start    float64
	ExecTime float64
	Nodes    dsl.Interval
}

//GanttPlotter renders a job table as a gantt chart: machines on the y axis,
//time on the x axis, one translucent outlined rectangle per native interval
//of each job's allocation.  Identity resolution picks rectangle colors and
//which jobs carry a label; every rectangle of a labeled job is annotated.
type GanttPlotter struct {
	Jobs        dsl.Jobs
	ResBounds   dsl.Interval
	Labels      bool
	Alpha       float64
	Palette     []color.Color
	SelectColor dsl.ColorSelector
	SelectLabel dsl.LabelSelector
	Reservation *Reservation
	Outline     draw.LineStyle

	labeled       map[int]bool
	uniqueNumbers []int
}

var _ plot.Plotter = &GanttPlotter{}

func NewGanttPlotter(jobset dsl.JobSet) *GanttPlotter {
	labeled, uniqueNumbers := dsl.ResolveIdentities(jobset.Jobs)
	return &GanttPlotter{
		Jobs:          jobset.Jobs,
		ResBounds:     jobset.ResBounds,
		Labels:        true,
		Alpha:         0.4,
		Palette:       GeneratePalette(8),
		SelectColor:   dsl.RoundRobinColor,
		SelectLabel:   dsl.JobIDLabel,
		Outline:       thinBlackOutline(),
		labeled:       labeled,
		uniqueNumbers: uniqueNumbers,
	}
}

func (g *GanttPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for position, job := range g.Jobs {
		if job.AllocatedResources.Empty() {
			continue
		}
		col := withAlpha(g.SelectColor(job, g.uniqueNumbers[position], g.Palette), g.Alpha)
		label := ""
		if g.Labels && g.labeled[position] {
			label = g.SelectLabel(job)
		}
		for _, rect := range ComposeJobRects(job) {
			x1 := rect.X + rect.Width
			y1 := rect.Y + rect.Height
			fillRect(c, trX, trY, rect.X, x1, rect.Y, y1, col, &g.Outline)
			annotateRect(c, trX, trY, rect.X, x1, rect.Y, y1, label)
		}
	}

	if g.Reservation != nil {
		resv := g.Reservation
		fillRect(c, trX, trY,
			resv.Start, resv.Start+resv.ExecTime,
			float64(resv.Nodes.Lo), float64(resv.Nodes.Hi),
			withAlpha(color.RGBA{255, 0, 0, 255}, g.Alpha), &g.Outline)
	}
}

func (g *GanttPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = g.Jobs.MinSubmissionTime()
	xmax = g.Jobs.MaxFinishTime()
	ymin = float64(g.ResBounds.Lo) - 1
	ymax = float64(g.ResBounds.Hi) + 2
	return
}

//GanttConfig carries the per-render options of PlotGantt.  The zero value
//gives the defaults: labels on, alpha 0.4, an 8-color generated palette,
//round-robin coloring by identity number, job ids as labels.
type GanttConfig struct {
	Title       string
	NoLabels    bool
	Alpha       float64
	TimeScale   bool
	Palette     []color.Color
	SelectColor dsl.ColorSelector
	SelectLabel dsl.LabelSelector
	Reservation *Reservation

	//WindowStartTime/WindowFinishTime clip the visible time range.  Both
	//must be set; otherwise the data extent is used.
	WindowStartTime  *float64
	WindowFinishTime *float64
}

//PlotGantt renders the jobset's gantt chart onto p.  Validation happens
//before any draw call; there is no rollback once drawing begins.
func PlotGantt(p *plot.Plot, jobset dsl.JobSet, config GanttConfig) error {
	g := NewGanttPlotter(jobset)
	g.Labels = !config.NoLabels
	if config.Alpha != 0 {
		g.Alpha = config.Alpha
	}
	if config.Palette != nil {
		if len(config.Palette) == 0 {
			return fmt.Errorf("%w: palette must hold at least one color", ErrShapeMismatch)
		}
		g.Palette = config.Palette
	}
	if config.SelectColor != nil {
		g.SelectColor = config.SelectColor
	}
	if config.SelectLabel != nil {
		g.SelectLabel = config.SelectLabel
	}
	g.Reservation = config.Reservation

	p.Add(plotter.NewGrid())
	p.Add(g)

	xmin, xmax, ymin, ymax := g.DataRange()
	if config.WindowStartTime != nil && config.WindowFinishTime != nil {
		xmin, xmax = *config.WindowStartTime, *config.WindowFinishTime
	}
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax

	if config.TimeScale {
		timeAxis(&p.X)
	}

	p.Title.Text = config.Title
	if p.Title.Text == "" {
		p.Title.Text = "Gantt chart"
	}
	p.Y.Label.Text = "Machines"

	return nil
}
