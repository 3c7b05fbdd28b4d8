package viz

import (
	"math"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func TestUniformBoard_SubPlotGeometry(t *testing.T) {
	board := NewUniformBoard(2, 1, 0.1)

	if err := board.AddSubPlotAt(plot.New(), 0, 0); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := board.AddSubPlotAt(plot.New(), 1, 0); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// Two columns with three padding gutters: each column takes
	// (1 - 3*0.1)/2 = 0.35 of the width, the full 0.8 of the height.
	first := board.SubPlots[0].Rect
	second := board.SubPlots[1].Rect
	for _, check := range []struct {
		name      string
		got, want float64
	}{
		{"first.X", first.X, 0.1},
		{"first.Y", first.Y, 0.1},
		{"first.Width", first.Width, 0.35},
		{"first.Height", first.Height, 0.8},
		{"second.X", second.X, 0.55},
		{"second.Y", second.Y, 0.1},
	} {
		if math.Abs(check.got-check.want) > 1e-12 {
			t.Errorf("%s: expected %g, got %g", check.name, check.want, check.got)
		}
	}
}

func TestUniformBoard_RejectsOutOfRangeCells(t *testing.T) {
	board := NewUniformBoard(2, 2, 0.01)
	if err := board.AddSubPlotAt(plot.New(), 2, 0); err == nil {
		t.Errorf("expected error for out-of-range column")
	}
	if err := board.AddSubPlotAt(plot.New(), 0, 2); err == nil {
		t.Errorf("expected error for out-of-range row")
	}
}

func TestUniformBoard_AddNextSubPlotFillsRowsBottomUp(t *testing.T) {
	board := NewUniformBoard(2, 2, 0)
	for i := 0; i < 4; i++ {
		board.AddNextSubPlot(plot.New())
	}

	// Row 0 is the bottom row; the counter walks columns first.
	rects := []Rect{
		board.SubPlots[0].Rect,
		board.SubPlots[1].Rect,
		board.SubPlots[2].Rect,
		board.SubPlots[3].Rect,
	}
	if rects[0].X != 0 || rects[0].Y != 0 {
		t.Errorf("expected first subplot at (0, 0), got (%g, %g)", rects[0].X, rects[0].Y)
	}
	if rects[1].X != 0.5 || rects[1].Y != 0 {
		t.Errorf("expected second subplot at (0.5, 0), got (%g, %g)", rects[1].X, rects[1].Y)
	}
	if rects[2].X != 0 || rects[2].Y != 0.5 {
		t.Errorf("expected third subplot at (0, 0.5), got (%g, %g)", rects[2].X, rects[2].Y)
	}
}

func TestSubPlot_ScaledRect(t *testing.T) {
	sp := SubPlot{Rect: Rect{X: 0.25, Y: 0.5, Width: 0.5, Height: 0.25}}
	r := sp.ScaledRect(8*vg.Inch, 4*vg.Inch)

	if r.Min.X != 2*vg.Inch || r.Min.Y != 2*vg.Inch {
		t.Errorf("expected min (2in, 2in), got (%v, %v)", r.Min.X, r.Min.Y)
	}
	if r.Max.X != 6*vg.Inch || r.Max.Y != 3*vg.Inch {
		t.Errorf("expected max (6in, 3in), got (%v, %v)", r.Max.X, r.Max.Y)
	}
}
