package viz

import (
	"fmt"
	"image/color"
	"math/rand"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//JobDetailsConfig carries the per-render options of PlotJobDetails.
type JobDetailsConfig struct {
	Title      string
	TimeScale  bool
	TimeOffset float64
}

//PlotJobDetails renders each job's lifecycle as a three-zone scatter/line
//chart: submission, start and finish events stacked in separate vertical
//zones (offset by 1.05x the cluster size per zone), each job's events
//joined by translucent segments, with the job's size on the y axis.  A
//small deterministic jitter separates jobs of equal size.
func PlotJobDetails(p *plot.Plot, jobs dsl.Jobs, size float64, config JobDetailsConfig) error {
	if size <= 0 {
		return fmt.Errorf("%w: cluster size must be positive", ErrShapeMismatch)
	}

	ordered := jobs.Copy()
	ordered.SortByJobID()

	// The three zones, separated to keep the event clouds apart.
	threshold := size * 1.05

	submission := make([]float64, len(ordered))
	starting := make([]float64, len(ordered))
	finish := make([]float64, len(ordered))
	jittered := make([]float64, len(ordered))

	jitter := size / 20
	rng := rand.New(rand.NewSource(0))
	for i, job := range ordered {
		submission[i] = job.SubmissionTime + config.TimeOffset
		starting[i] = submission[i] + job.WaitingTime
		finish[i] = starting[i] + job.ExecutionTime
		jittered[i] = float64(job.ProcAlloc) + (rng.Float64()*2-1)*jitter
	}

	type segment struct {
		begin, end            []float64
		color                 color.RGBA
		offsetLow, offsetHigh float64
	}
	segments := []segment{
		{submission, starting, OrderedColors[3], 0, threshold},
		{starting, finish, OrderedColors[2], threshold, threshold * 2},
	}
	for _, seg := range segments {
		col := withAlpha(seg.color, 0.2)
		for i := range ordered {
			line, err := plotter.NewLine(plotter.XYs{
				{X: seg.begin[i], Y: jittered[i] + seg.offsetLow},
				{X: seg.end[i], Y: jittered[i] + seg.offsetHigh},
			})
			if err != nil {
				return err
			}
			line.LineStyle.Color = col
			line.LineStyle.Width = vg.Points(1)
			p.Add(line)
		}
	}

	type cloud struct {
		name   string
		times  []float64
		color  color.RGBA
		glyph  draw.GlyphDrawer
		offset float64
	}
	clouds := []cloud{
		{"submission_time", submission, OrderedColors[3], draw.CircleGlyph{}, 0},
		{"starting_time", starting, OrderedColors[2], draw.TriangleGlyph{}, threshold},
		{"finish_time", finish, OrderedColors[1], draw.CrossGlyph{}, threshold * 2},
	}
	for _, cl := range clouds {
		xys := make(plotter.XYs, len(ordered))
		for i := range ordered {
			xys[i].X = cl.times[i]
			xys[i].Y = jittered[i] + cl.offset
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  withAlpha(cl.color, 0.5),
			Radius: vg.Points(3),
			Shape:  cl.glyph,
		}
		p.Add(scatter)
		p.Legend.Add(cl.name, scatter)
	}

	if config.TimeScale {
		timeAxis(&p.X)
	}
	p.Add(plotter.NewGrid())
	p.Title.Text = config.Title
	if p.Title.Text == "" {
		p.Title.Text = "Job details"
	}
	p.Y.Label.Text = "Job size"

	return nil
}
