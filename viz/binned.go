package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//BinnedLoadConfig carries the per-render options of PlotBinnedLoad.
type BinnedLoadConfig struct {
	//Per-class resource ceilings; zero means unknown.  When normalizing,
	//unknown ceilings are inferred as each class's series maximum.
	NbResourcesSmall float64
	NbResourcesLong  float64
	NbResourcesLarge float64
	Normalize        bool
	TimeScale        bool
	UnixStartTime    float64
	//LegendLabel names the curves; defaults to "Load".
	LegendLabel string
	//Divisor rescales every class by an external constant.  When set, an
	//Overall series must be supplied and is drawn as a fourth curve, and
	//reservation rug marks and the x-axis termination apply.
	Divisor              float64
	Overall              *dsl.Series
	ReservationStartTime float64
	ReservationEndTime   float64
	XAxisTermination     float64
}

type binnedClass struct {
	name    string
	series  dsl.Series
	mean    float64
	ceiling float64
	color   color.RGBA
}

//PlotBinnedLoad renders cluster utilization split by job-size class: one
//step curve each for small, long and large jobs, per-class ceiling and mean
//reference lines, red rug marks at reset events, and optionally an overall
//curve divided by an external divisor with yellow rug marks at the
//reservation window edges.
func PlotBinnedLoad(p *plot.Plot, small, long, large dsl.Series, config BinnedLoadConfig) error {
	if small.Len() == 0 || long.Len() == 0 || large.Len() == 0 {
		return fmt.Errorf("%w: every job-size class needs a non-empty series", ErrShapeMismatch)
	}
	if config.Divisor != 0 && config.Overall == nil {
		return fmt.Errorf("%w: a divisor requires an overall series", ErrShapeMismatch)
	}

	legendLabel := config.LegendLabel
	if legendLabel == "" {
		legendLabel = "Load"
	}

	classes := []*binnedClass{
		{name: "Small job", series: small.Copy(), ceiling: config.NbResourcesSmall, color: OrderedColors[3]},
		{name: "Long job", series: long.Copy(), ceiling: config.NbResourcesLong, color: OrderedColors[5]},
		{name: "Large job", series: large.Copy(), ceiling: config.NbResourcesLarge, color: OrderedColors[1]},
	}
	if config.Divisor != 0 {
		classes = append(classes, &binnedClass{
			name:   "Overall",
			series: config.Overall.Copy(),
			color:  OrderedColors[8],
		})
	}

	for _, class := range classes {
		class.mean = class.series.TimeWeightedMean()
		if config.TimeScale {
			class.series = class.series.OffsetTimes(config.UnixStartTime)
		}
		if config.Normalize && class.name != "Overall" {
			ceiling := class.ceiling
			if ceiling == 0 {
				ceiling = class.series.Max()
			}
			class.series = class.series.Scale(1 / ceiling)
			class.mean = class.mean / ceiling
		}
		if config.Divisor != 0 {
			class.series = class.series.Scale(1 / config.Divisor)
			class.mean = class.mean / config.Divisor
		}
	}
	if config.TimeScale {
		timeAxis(&p.X)
	}

	for _, class := range classes {
		line, err := stepLine(class.series, class.color, vg.Points(2), false)
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s %s", class.name, legendLabel), line)
	}

	haveCeilings := config.NbResourcesSmall != 0 && config.NbResourcesLong != 0 && config.NbResourcesLarge != 0
	if haveCeilings && !config.Normalize {
		for _, class := range classes[:3] {
			maxLine, err := refLine(class.series.Times[0], class.series.Times[class.series.Len()-1],
				class.ceiling, class.color, vg.Points(4), false)
			if err != nil {
				return err
			}
			p.Add(maxLine)
			p.Legend.Add(fmt.Sprintf("Maximum resources for %s Jobs (%g)", class.name, class.ceiling), maxLine)
		}
	}

	maxValue := 0.0
	for _, class := range classes {
		meanLine, err := refLine(class.series.Times[0], class.series.Times[class.series.Len()-1],
			class.mean, class.color, vg.Points(1), true)
		if err != nil {
			return err
		}
		p.Add(meanLine)
		p.Legend.Add(fmt.Sprintf("Mean %s for %s Jobs (%.2f)", legendLabel, class.name, class.mean), meanLine)

		p.Add(NewRugPlotter(class.series.ZeroTimes(), color.RGBA{255, 0, 0, 255}))
		if class.series.Max() > maxValue {
			maxValue = class.series.Max()
		}
	}

	rug := NewRugPlotter(nil, color.RGBA{255, 0, 0, 255})
	p.Legend.Add(fmt.Sprintf("Reset event (%s == 0)", legendLabel), rug)

	if config.Divisor != 0 {
		// Mark the reservation's start and stop points.
		p.Add(NewRugPlotter([]float64{config.ReservationStartTime, config.ReservationEndTime},
			color.RGBA{200, 200, 0, 255}))
		p.X.Min, p.X.Max = 0, config.XAxisTermination
	}
	p.Y.Min, p.Y.Max = -10, maxValue+10

	p.Add(plotter.NewGrid())
	p.Title.Text = "Cluster Utilization by Job Type"
	p.Y.Label.Text = "Machines"

	return nil
}
