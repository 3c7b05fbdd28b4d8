package viz

import (
	"errors"
	"image/color"
	"testing"

	"gonum.org/v1/plot"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

func TestPlotMachineStates_RejectsWrongPaletteSize(t *testing.T) {
	states := dsl.MachineStates{
		Times:        []float64{0},
		Sleeping:     []float64{0},
		SwitchingOn:  []float64{0},
		SwitchingOff: []float64{0},
		Idle:         []float64{0},
		Computing:    []float64{4},
	}

	err := PlotMachineStates(plot.New(), states, MachineStatesConfig{
		Palette: []color.Color{color.Black, color.White},
	})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestPlotMachineStates_RejectsRaggedSeries(t *testing.T) {
	states := dsl.MachineStates{
		Times:        []float64{0, 10},
		Sleeping:     []float64{0, 0},
		SwitchingOn:  []float64{0, 0},
		SwitchingOff: []float64{0, 0},
		Idle:         []float64{1, 1},
		Computing:    []float64{3}, // one sample short
	}

	err := PlotMachineStates(plot.New(), states, MachineStatesConfig{})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestPlotMachineStates_DrawsOneBandPerState(t *testing.T) {
	states := dsl.MachineStates{
		Times:        []float64{0, 10, 20},
		Sleeping:     []float64{0, 1, 0},
		SwitchingOn:  []float64{0, 0, 1},
		SwitchingOff: []float64{1, 0, 0},
		Idle:         []float64{1, 1, 1},
		Computing:    []float64{2, 2, 2},
	}

	p := plot.New()
	if err := PlotMachineStates(p, states, MachineStatesConfig{Title: "states"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if p.Title.Text != "states" {
		t.Errorf("expected title %q, got %q", "states", p.Title.Text)
	}
}

func TestMachineStates_StackOrder(t *testing.T) {
	states := dsl.MachineStates{Times: []float64{0}}
	stack := states.StackOrder()

	want := []string{"nb_sleeping", "nb_switching_on", "nb_switching_off", "nb_idle", "nb_computing"}
	if len(stack) != len(want) {
		t.Fatalf("expected %d states, got %d", len(want), len(stack))
	}
	for i, name := range want {
		if stack[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, stack[i].Name)
		}
	}
}

func TestGeneratePalette(t *testing.T) {
	colors := GeneratePalette(8)
	if len(colors) != 8 {
		t.Fatalf("expected 8 colors, got %d", len(colors))
	}
	seen := map[color.Color]bool{}
	for _, c := range colors {
		if seen[c] {
			t.Errorf("palette repeats color %v", c)
		}
		seen[c] = true
	}

	if GeneratePalette(0) != nil {
		t.Errorf("expected nil palette for n=0")
	}
}
