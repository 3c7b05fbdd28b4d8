package viz

import (
	"reflect"
	"testing"

	"gonum.org/v1/plot/plotter"
)

func TestMaskedStepBands_SplitsContiguousRuns(t *testing.T) {
	times := []float64{0, 1, 2}
	a := []float64{1, 2, 3}
	b := []float64{2, 1, 4}

	// b exceeds a at t=0 and t=2 but not t=1: two separate bands.
	bands := maskedStepBands(times, a, b, func(lower, upper float64) bool { return upper > lower })
	if len(bands) != 2 {
		t.Fatalf("expected 2 bands, got %d: %v", len(bands), bands)
	}

	// The first run covers one sample and extends to the next time under
	// post-step semantics.
	want := plotter.XYs{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if !reflect.DeepEqual(bands[0], want) {
		t.Errorf("expected first band %v, got %v", want, bands[0])
	}

	// A run ending at the final sample has nothing to extend into.
	want = plotter.XYs{{X: 2, Y: 4}, {X: 2, Y: 3}}
	if !reflect.DeepEqual(bands[1], want) {
		t.Errorf("expected second band %v, got %v", want, bands[1])
	}
}

func TestMaskedStepBands_FullAndEmptyMasks(t *testing.T) {
	times := []float64{0, 1}
	lower := []float64{0, 0}
	upper := []float64{1, 1}

	bands := maskedStepBands(times, lower, upper, func(lower, upper float64) bool { return true })
	if len(bands) != 1 {
		t.Fatalf("expected a single band, got %d", len(bands))
	}
	want := plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	if !reflect.DeepEqual(bands[0], want) {
		t.Errorf("expected band %v, got %v", want, bands[0])
	}

	bands = maskedStepBands(times, lower, upper, func(lower, upper float64) bool { return false })
	if len(bands) != 0 {
		t.Fatalf("expected no bands, got %v", bands)
	}
}

func TestStepBand_TracesBothCurves(t *testing.T) {
	outline := stepBand([]float64{0, 1}, []float64{0, 1}, []float64{2, 3})
	want := plotter.XYs{
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 3},
		{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0},
	}
	if !reflect.DeepEqual(outline, want) {
		t.Fatalf("expected outline %v, got %v", want, outline)
	}
}
