package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//silhouettePlotter paints every rectangle of a job table in one translucent
//color, with no outlines or labels: the jobset's overall shape.
type silhouettePlotter struct {
	Jobs dsl.Jobs
	Fill color.Color
}

var _ plot.Plotter = &silhouettePlotter{}

func (s *silhouettePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, job := range s.Jobs {
		for _, rect := range ComposeJobRects(job) {
			fillRect(c, trX, trY, rect.X, rect.X+rect.Width, rect.Y, rect.Y+rect.Height, s.Fill, nil)
		}
	}
}

//GanttShapeConfig carries the per-render options of PlotGanttShape.
type GanttShapeConfig struct {
	Title string
	Alpha float64
}

//PlotGanttShape overlays the silhouettes of several jobsets on one surface
//for comparison, one translucent color per set.  All sets are assumed to
//run on the same machine range; the last set's bounds fix the y limits.
func PlotGanttShape(p *plot.Plot, jobsets []dsl.JobSet, config GanttShapeConfig) error {
	if len(jobsets) == 0 {
		return fmt.Errorf("%w: no jobsets to compare", ErrShapeMismatch)
	}
	alpha := config.Alpha
	if alpha == 0 {
		alpha = 0.3
	}

	palette := GeneratePalette(len(jobsets))
	xmin, xmax := 0.0, 0.0
	var resBounds dsl.Interval
	for i, jobset := range jobsets {
		fill := withAlpha(palette[i%len(palette)], alpha)
		sp := &silhouettePlotter{Jobs: jobset.Jobs, Fill: fill}
		p.Add(sp)
		p.Legend.Add(jobset.Name, &swatchThumbnailer{fill})

		if i == 0 || jobset.Jobs.MinSubmissionTime() < xmin {
			xmin = jobset.Jobs.MinSubmissionTime()
		}
		if i == 0 || jobset.Jobs.MaxFinishTime() > xmax {
			xmax = jobset.Jobs.MaxFinishTime()
		}
		resBounds = jobset.ResBounds
	}

	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min = float64(resBounds.Lo) - 1
	p.Y.Max = float64(resBounds.Hi) + 2
	p.Add(plotter.NewGrid())
	p.Title.Text = config.Title
	if p.Title.Text == "" {
		p.Title.Text = "Gantt general shape"
	}
	p.Y.Label.Text = "Machines"

	return nil
}
