package viz

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//Series kinds accepted by PlotSeries.
const (
	SeriesBondedSlowdown = "bonded_slowdown"
	SeriesWaitingTime    = "waiting_time"
	SeriesAll            = "all"
)

//AvailableSeries lists the recognized series kinds, implemented or not.
var AvailableSeries = []string{SeriesBondedSlowdown, SeriesWaitingTime, SeriesAll}

//PlotSeries renders one time series per jobset onto p, as step curves with
//a shared legend.  kind selects which metric is derived from each job
//table; an unknown kind is a caller error (ErrInvalidSeriesKind), a
//recognized but unsupported kind is a known gap (ErrUnimplementedSeries).
func PlotSeries(p *plot.Plot, kind string, jobsets []dsl.JobSet, timeScale bool) error {
	recognized := false
	for _, available := range AvailableSeries {
		if kind == available {
			recognized = true
			break
		}
	}
	if !recognized {
		return fmt.Errorf("%w: %q (available: %s)", ErrInvalidSeriesKind, kind, strings.Join(AvailableSeries, ", "))
	}
	if kind != SeriesWaitingTime {
		return fmt.Errorf("%w: %q", ErrUnimplementedSeries, kind)
	}

	for i, jobset := range jobsets {
		series := dsl.CumulativeWaitingTime(jobset.Jobs)
		line, err := stepLine(series, OrderedColors[i%len(OrderedColors)], vg.Points(1), false)
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(jobset.Name, line)
	}

	if timeScale {
		timeAxis(&p.X)
	}
	p.Add(plotter.NewGrid())
	p.Title.Text = kind
	return nil
}
