package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//LoadRect is one rectangle of the stacked per-machine load chart: a maximal
//run of index-contiguous machines that all carried the same accumulated
//load before the job landed on them.
type LoadRect struct {
	Machine int     // leftmost machine index
	Base    float64 // accumulated load before this job
	Width   int     // number of merged machines
	Height  float64 // the job's execution time
	Row     int     // row position of the job in the table
	Label   string  // the job's id
}

//ComposeLoadRects stacks every job's execution time onto the machines of
//its allocation and decomposes each job's contribution into the minimal set
//of rectangles.  Two machines merge into one rectangle only when they are
//index-adjacent and their accumulated loads are identical before the job --
//otherwise the stacked bands would show seams or double-counted area.
//
//Load comparison is exact float equality, matching the accumulation
//arithmetic: machines loaded by the same sequence of jobs accumulate
//bit-identical sums.
//
//The returned map holds the final accumulated load per machine in
//[bounds.Lo, bounds.Hi].
func ComposeLoadRects(jobs dsl.Jobs, bounds dsl.Interval) ([]LoadRect, map[int]float64) {
	load := map[int]float64{}
	for machine := bounds.Lo; machine <= bounds.Hi; machine++ {
		load[machine] = 0.0
	}

	rects := []LoadRect{}
	for row, job := range jobs {
		duration := job.ExecutionTime

		base := LoadRect{
			Row:    row,
			Height: duration,
			Label:  job.JobID,
		}
		width := 0 // incremented on the first member
		first := true

		job.AllocatedResources.Each(func(machine int) {
			if first {
				base.Machine = machine
				base.Base = load[machine]
				first = false
			}
			if base.Machine+width != machine || load[machine] != base.Base {
				// cannot merge: flush the pending rectangle and start anew
				if width > 0 {
					base.Width = width
					rects = append(rects, base)
				}
				base.Machine = machine
				base.Base = load[machine]
				width = 1
			} else {
				width += 1
			}
			load[machine] += duration
		})

		// flush the last pending rectangle if necessary
		if width > 0 {
			base.Width = width
			rects = append(rects, base)
		}
	}

	return rects, load
}

//ProcessorLoadPlotter renders the accumulated load each job puts on each
//machine: machines on the x axis, stacked load on the y axis, one
//translucent rectangle per merged machine run, colored by the job's row.
type ProcessorLoadPlotter struct {
	Jobs      dsl.Jobs
	ResBounds dsl.Interval
	Labels    bool
	Alpha     float64
	Palette   []color.Color

	rects   []LoadRect
	maxLoad float64
}

var _ plot.Plotter = &ProcessorLoadPlotter{}

func NewProcessorLoadPlotter(jobset dsl.JobSet) *ProcessorLoadPlotter {
	rects, load := ComposeLoadRects(jobset.Jobs, jobset.ResBounds)
	maxLoad := 0.0
	for _, l := range load {
		if l > maxLoad {
			maxLoad = l
		}
	}
	return &ProcessorLoadPlotter{
		Jobs:      jobset.Jobs,
		ResBounds: jobset.ResBounds,
		Labels:    true,
		Alpha:     0.2,
		Palette:   GeneratePalette(16),
		rects:     rects,
		maxLoad:   maxLoad,
	}
}

//MaxLoad is the largest accumulated load over all machines.
func (l *ProcessorLoadPlotter) MaxLoad() float64 {
	return l.maxLoad
}

func (l *ProcessorLoadPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, rect := range l.rects {
		col := withAlpha(l.Palette[rect.Row%len(l.Palette)], l.Alpha)
		x0 := float64(rect.Machine)
		x1 := float64(rect.Machine + rect.Width)
		y1 := rect.Base + rect.Height
		fillRect(c, trX, trY, x0, x1, rect.Base, y1, col, nil)
		if l.Labels {
			annotateRect(c, trX, trY, x0, x1, rect.Base, y1, rect.Label)
		}
	}
}

func (l *ProcessorLoadPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin = float64(l.ResBounds.Lo)
	xmax = float64(l.ResBounds.Hi)
	ymin = 0
	ymax = 1.02 * l.maxLoad
	return
}

//ProcessorLoadConfig carries the per-render options of PlotProcessorLoad.
type ProcessorLoadConfig struct {
	Title    string
	NoLabels bool
}

//PlotProcessorLoad renders the per-machine load chart for a jobset onto p.
func PlotProcessorLoad(p *plot.Plot, jobset dsl.JobSet, config ProcessorLoadConfig) error {
	l := NewProcessorLoadPlotter(jobset)
	l.Labels = !config.NoLabels

	p.Add(plotter.NewGrid())
	p.Add(l)

	p.X.Min, p.X.Max, p.Y.Min, p.Y.Max = l.DataRange()
	p.Title.Text = config.Title
	if p.Title.Text == "" {
		p.Title.Text = "Load"
	}
	p.X.Label.Text = "proc. id"
	p.Y.Label.Text = "load / s"

	return nil
}
