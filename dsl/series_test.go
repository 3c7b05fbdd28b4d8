package dsl

import (
	"math"
	"reflect"
	"testing"
)

func TestSeries_TimeWeightedMean(t *testing.T) {
	// Value 2 holds for 10s, value 6 for 5s; the last sample has no weight.
	s := Series{
		Times:  []float64{0, 10, 15},
		Values: []float64{2, 6, 100},
	}
	want := (2*10.0 + 6*5.0) / 15.0
	if got := s.TimeWeightedMean(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected mean %g, got %g", want, got)
	}

	if got := (Series{}).TimeWeightedMean(); got != 0 {
		t.Errorf("expected 0 for empty series, got %g", got)
	}
	single := Series{Times: []float64{3}, Values: []float64{7}}
	if got := single.TimeWeightedMean(); got != 7 {
		t.Errorf("expected single value, got %g", got)
	}
}

func TestSeries_ScaleAndMaxDoNotMutate(t *testing.T) {
	s := Series{Times: []float64{0, 1}, Values: []float64{4, 8}}
	scaled := s.Scale(0.5)

	if !reflect.DeepEqual(scaled.Values, []float64{2, 4}) {
		t.Errorf("expected scaled values [2 4], got %v", scaled.Values)
	}
	if !reflect.DeepEqual(s.Values, []float64{4, 8}) {
		t.Errorf("expected original untouched, got %v", s.Values)
	}
	if s.Max() != 8 {
		t.Errorf("expected max 8, got %g", s.Max())
	}
}

func TestSeries_ReindexForwardFills(t *testing.T) {
	s := Series{Times: []float64{1, 3}, Values: []float64{10, 30}}

	re := s.Reindex([]float64{0, 1, 2, 3, 4})
	// t=0 precedes the first sample and holds the first value.
	want := []float64{10, 10, 10, 30, 30}
	if !reflect.DeepEqual(re.Values, want) {
		t.Fatalf("expected %v, got %v", want, re.Values)
	}
}

func TestUnionTimes(t *testing.T) {
	union := UnionTimes([]float64{0, 2, 4}, []float64{1, 2, 5})
	want := []float64{0, 1, 2, 4, 5}
	if !reflect.DeepEqual(union, want) {
		t.Fatalf("expected %v, got %v", want, union)
	}
}

func TestSeries_ZeroTimes(t *testing.T) {
	s := Series{Times: []float64{0, 1, 2, 3}, Values: []float64{0, 5, 0, 2}}
	if !reflect.DeepEqual(s.ZeroTimes(), []float64{0, 2}) {
		t.Fatalf("expected zero times [0 2], got %v", s.ZeroTimes())
	}
}

func TestCumulativeWaitingTime(t *testing.T) {
	jobs := Jobs{
		{JobID: "b", SubmissionTime: 0, StartingTime: 10, WaitingTime: 10},
		{JobID: "a", SubmissionTime: 0, StartingTime: 5, WaitingTime: 5},
	}
	series := CumulativeWaitingTime(jobs)

	// Indexed by starting time, accumulating in starting-time order.
	if !reflect.DeepEqual(series.Times, []float64{5, 10}) {
		t.Errorf("expected times [5 10], got %v", series.Times)
	}
	if !reflect.DeepEqual(series.Values, []float64{5, 15}) {
		t.Errorf("expected values [5 15], got %v", series.Values)
	}
}
