package viz

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

func pstateSet() dsl.PStateSet {
	return dsl.PStateSet{
		PseudoJobs: []dsl.PseudoJob{
			{PState: 13, IntervalID: 0, Begin: 0, End: 50},
			{PState: 0, IntervalID: 1, Begin: 50, End: math.Inf(1)},
			{PState: 42, IntervalID: 0, Begin: 10, End: 20}, // uncategorized
		},
		Intervals: map[int]dsl.IntervalSet{
			0: {{Lo: 0, Hi: 3}},
			1: {{Lo: 0, Hi: 1}},
		},
		ResBounds: dsl.Interval{Lo: 0, Hi: 3},
	}
}

func TestPlotPStates_RejectsShortPalette(t *testing.T) {
	err := PlotPStates(plot.New(), pstateSet(), 100, PStateConfig{
		Palette: []color.Color{color.Black},
	})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestPlotPStates_LegendOnlyShowsSeenCategories(t *testing.T) {
	p := plot.New()
	err := PlotPStates(p, pstateSet(), 100, PStateConfig{
		Off:      []int{13},
		SwitchOn: []int{7}, // never appears in the trace
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// Only pstate 13 maps to a category, so only OFF earns a swatch.
	// Pstate 0 and 42 are uncategorized and drawn not at all.
}

func TestPlotGanttPStates_UnionAxisLimits(t *testing.T) {
	jobset := dsl.JobSet{
		Jobs: dsl.Jobs{
			{JobID: "1", SubmissionTime: 20, StartingTime: 25, ExecutionTime: 10},
		},
		ResBounds: dsl.Interval{Lo: 0, Hi: 1},
	}

	p := plot.New()
	err := PlotGanttPStates(p, jobset, pstateSet(), GanttPStatesConfig{
		PStates: PStateConfig{Off: []int{13}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	// The pstate trace starts before the jobs and its finite extent ends
	// after them; infinite ends are ignored.
	if p.X.Min != 0 || p.X.Max != 50 {
		t.Errorf("expected x range [0, 50], got [%g, %g]", p.X.Min, p.X.Max)
	}
	// The machine range covers both data sets.
	if p.Y.Min != 0 || p.Y.Max != 3 {
		t.Errorf("expected y range [0, 3], got [%g, %g]", p.Y.Min, p.Y.Max)
	}
}

func TestFiniteExtent(t *testing.T) {
	set := pstateSet()
	min, max, ok := set.FiniteExtent()
	if !ok {
		t.Fatalf("expected a finite extent")
	}
	if min != 0 || max != 50 {
		t.Errorf("expected extent [0, 50], got [%g, %g]", min, max)
	}

	_, _, ok = (dsl.PStateSet{}).FiniteExtent()
	if ok {
		t.Errorf("expected no extent for an empty set")
	}
}
