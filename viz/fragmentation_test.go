package viz

import (
	"errors"
	"reflect"
	"testing"

	"gonum.org/v1/plot"
)

func TestEmpiricalCDF(t *testing.T) {
	cdf := empiricalCDF([]float64{0.5, 0.1, 0.9, 0.1})

	if !reflect.DeepEqual(cdf.Times, []float64{0.1, 0.1, 0.5, 0.9}) {
		t.Errorf("expected sorted sample, got %v", cdf.Times)
	}
	if !reflect.DeepEqual(cdf.Values, []float64{0.25, 0.5, 0.75, 1}) {
		t.Errorf("expected quartile steps, got %v", cdf.Values)
	}
}

func TestFragmentationHistogram_CountsEverySample(t *testing.T) {
	values := []float64{0, 0.1, 0.25, 0.5, 0.5, 0.99, 1}
	hist := fragmentationHistogram(values, 10)

	if len(hist.Bins) != 10 {
		t.Fatalf("expected 10 bins, got %d", len(hist.Bins))
	}

	// Every sample lands in exactly one bin, including the maximum, which
	// closes the last bin's upper edge.
	total := 0.0
	for _, bin := range hist.Bins {
		total += bin.Weight
	}
	if total != float64(len(values)) {
		t.Errorf("expected total weight %d, got %g", len(values), total)
	}
	if last := hist.Bins[len(hist.Bins)-1]; last.Weight != 2 {
		t.Errorf("expected 2 samples in the last bin, got %g", last.Weight)
	}
}

func TestPlotFragmentation(t *testing.T) {
	axes := [3]*plot.Plot{plot.New(), plot.New(), plot.New()}
	if err := PlotFragmentation(axes, []float64{0.1, 0.4, 0.2}, "frag"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for i, title := range []string{
		"Fragmentation over resources",
		"Fragmentation distribution",
		"Fragmentation ecdf",
	} {
		if axes[i].Title.Text != title {
			t.Errorf("axis %d: expected title %q, got %q", i, title, axes[i].Title.Text)
		}
	}

	err := PlotFragmentation([3]*plot.Plot{plot.New(), plot.New(), plot.New()}, nil, "frag")
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestNewFragmentationBoard(t *testing.T) {
	board, err := NewFragmentationBoard([]float64{0.1, 0.2}, "frag")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(board.SubPlots) != 3 {
		t.Fatalf("expected 3 subplots, got %d", len(board.SubPlots))
	}
	// Row 0 is the bottom: the raw plot goes in last, ending up on top.
	if board.SubPlots[2].Plot.Title.Text != "Fragmentation over resources" {
		t.Errorf("expected the raw plot on top, got %q", board.SubPlots[2].Plot.Title.Text)
	}
}
