package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//machineStatePalette is the colorblind-safe default: sleeping, switching
//on, switching off, idle, computing.
var machineStatePalette = []color.Color{
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x56, 0xae, 0x6c, 0xff},
	color.RGBA{0xba, 0x49, 0x5b, 0xff},
	color.RGBA{0x00, 0x00, 0x00, 0xff},
	color.RGBA{0x89, 0x60, 0xb3, 0xff},
}

var machineStateAlphas = []float64{0.6, 1, 1, 0, 0.3}

//MachineStatesConfig carries the per-render options of PlotMachineStates.
type MachineStatesConfig struct {
	Title   string
	Palette []color.Color
	//Reverse flips the stack order (and the palette with it).
	Reverse bool
}

//PlotMachineStates renders machine power-state counts as a cumulative
//stacked step-area chart: each state becomes a band filled between
//consecutive cumulative levels, in a fixed stack order.
func PlotMachineStates(p *plot.Plot, states dsl.MachineStates, config MachineStatesConfig) error {
	stack := states.StackOrder()

	palette := config.Palette
	if palette == nil {
		palette = machineStatePalette
	}
	if len(palette) != len(stack) {
		return fmt.Errorf("%w: palette should be of size %d", ErrShapeMismatch, len(stack))
	}
	for _, state := range stack {
		if len(state.Values) != len(states.Times) {
			return fmt.Errorf("%w: series %s has %d samples, time axis has %d",
				ErrShapeMismatch, state.Name, len(state.Values), len(states.Times))
		}
	}

	alphas := append([]float64{}, machineStateAlphas...)
	palette = append([]color.Color{}, palette...)
	if config.Reverse {
		for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
			stack[i], stack[j] = stack[j], stack[i]
			palette[i], palette[j] = palette[j], palette[i]
			alphas[i], alphas[j] = alphas[j], alphas[i]
		}
	}

	// Cumulative levels along the fixed stack order.
	n := len(states.Times)
	lower := make([]float64, n)
	upper := make([]float64, n)

	for i, state := range stack {
		copy(lower, upper)
		for k := range upper {
			upper[k] = lower[k] + state.Values[k]
		}

		band, err := bandPolygon(stepBand(states.Times, lower, upper), withAlpha(palette[i], alphas[i]))
		if err != nil {
			return err
		}
		p.Add(band)
		p.Legend.Add(state.Name, band)
	}

	p.Title.Text = config.Title
	return nil
}
