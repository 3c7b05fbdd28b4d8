package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//LoadConfig carries the per-render options of PlotLoad.
type LoadConfig struct {
	//NbResources is the resource-count ceiling.  Zero means unknown; when
	//normalizing, an unknown ceiling is inferred as the series maximum.
	NbResources float64
	//Normalize divides the load (and its mean) by NbResources.
	Normalize bool
	//TimeScale interprets times as Unix seconds and formats the x axis as
	//calendar time.  UnixStartTime is added to every sample first, to
	//rebase raw simulation seconds.
	TimeScale     bool
	UnixStartTime float64
	//LegendLabel names the curve; defaults to "Load".
	LegendLabel string
	//Power, if set, is drawn as a second step curve.  NormalizePower
	//rescales it so its maximum coincides with the load maximum, standing
	//in for a twin value axis.
	Power          *dsl.Series
	NormalizePower bool
	//WindowStartTime/WindowFinishTime clip the visible time range.
	WindowStartTime  *float64
	WindowFinishTime *float64
}

//PlotLoad renders a utilization step curve onto p: the number of used
//machines against time, a solid reference line at the resource ceiling, a
//dashed line at the time-weighted mean, and red rug marks wherever the load
//resets to zero.
func PlotLoad(p *plot.Plot, load dsl.Series, config LoadConfig) error {
	if load.Len() == 0 {
		return fmt.Errorf("%w: empty load series", ErrShapeMismatch)
	}

	legendLabel := config.LegendLabel
	if legendLabel == "" {
		legendLabel = "Load"
	}

	mean := load.TimeWeightedMean()
	u := load.Copy()

	if config.TimeScale {
		u = u.OffsetTimes(config.UnixStartTime)
		timeAxis(&p.X)
	}

	nbResources := config.NbResources
	if config.Normalize && nbResources == 0 {
		nbResources = u.Max()
	}
	if config.Normalize {
		u = u.Scale(1 / nbResources)
		mean = mean / nbResources
	}

	line, err := stepLine(u, OrderedColors[3], vg.Points(1), false)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add(legendLabel, line)

	if config.Power != nil {
		pw := config.Power.Copy()
		if config.TimeScale {
			pw = pw.OffsetTimes(config.UnixStartTime)
		}
		if config.NormalizePower && pw.Max() > 0 {
			pw = pw.Scale(u.Max() / pw.Max())
		}
		powerLine, err := stepLine(pw, color.RGBA{0x80, 0x00, 0x80, 0xff}, vg.Points(1), false)
		if err != nil {
			return err
		}
		p.Add(powerLine)
		p.Legend.Add("consumedEnergy", powerLine)
	}

	x0, x1 := u.Times[0], u.Times[u.Len()-1]

	if nbResources > 0 && !config.Normalize {
		maxLine, err := refLine(x0, x1, nbResources, OrderedColors[1], vg.Points(2), false)
		if err != nil {
			return err
		}
		p.Add(maxLine)
		p.Legend.Add(fmt.Sprintf("Maximum resources (%g)", nbResources), maxLine)
	}

	meanLine, err := refLine(x0, x1, mean, OrderedColors[0], vg.Points(1), true)
	if err != nil {
		return err
	}
	p.Add(meanLine)
	p.Legend.Add(fmt.Sprintf("Mean %s (%.2f)", legendLabel, mean), meanLine)

	rug := NewRugPlotter(u.ZeroTimes(), color.RGBA{255, 0, 0, 255})
	p.Add(rug)
	p.Legend.Add(fmt.Sprintf("Reset event (%s == 0)", legendLabel), rug)

	if config.WindowStartTime != nil && config.WindowFinishTime != nil {
		p.X.Min, p.X.Max = *config.WindowStartTime, *config.WindowFinishTime
	}
	p.Add(plotter.NewGrid())
	p.Y.Label.Text = "Machines"
	p.X.Label.Text = "Time"

	return nil
}

//PlotFreeResources renders the complement of a utilization curve: the
//number of free machines against time.
func PlotFreeResources(p *plot.Plot, utilization dsl.Series, nbResources float64, config LoadConfig) error {
	if utilization.Len() == 0 {
		return fmt.Errorf("%w: empty utilization series", ErrShapeMismatch)
	}

	free := utilization.Copy()
	for i, v := range free.Values {
		free.Values[i] = nbResources - v
	}
	if config.Normalize {
		free = free.Scale(1 / nbResources)
	}
	if config.TimeScale {
		free = free.OffsetTimes(config.UnixStartTime)
		timeAxis(&p.X)
	}

	line, err := stepLine(free, OrderedColors[3], vg.Points(1), false)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add("Free resources", line)

	if !config.Normalize {
		maxLine, err := refLine(free.Times[0], free.Times[free.Len()-1], nbResources, OrderedColors[1], vg.Points(1), false)
		if err != nil {
			return err
		}
		p.Add(maxLine)
		p.Legend.Add(fmt.Sprintf("Maximum resources (%g)", nbResources), maxLine)
	}

	p.Add(plotter.NewGrid())
	p.Y.Label.Text = "Machines"
	p.X.Label.Text = "Time"

	return nil
}
