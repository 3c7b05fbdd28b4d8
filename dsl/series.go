package dsl

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

//Series is a time-indexed step series: Values[i] holds from Times[i] until
//Times[i+1].  Times are ascending; both slices have equal length.
type Series struct {
	Times  []float64
	Values []float64
}

//NamedSeries attaches a display name to a Series.  Renderers that compare
//several series take an ordered []NamedSeries rather than a map so legend
//and stacking order are deterministic.
type NamedSeries struct {
	Name string
	Series
}

//Len returns the number of samples
func (s Series) Len() int { return len(s.Times) }

//Copy returns a deep copy of the series.
func (s Series) Copy() Series {
	dup := Series{
		Times:  make([]float64, len(s.Times)),
		Values: make([]float64, len(s.Values)),
	}
	copy(dup.Times, s.Times)
	copy(dup.Values, s.Values)
	return dup
}

//Max returns the largest value in the series (0 for an empty series).
func (s Series) Max() float64 {
	max := 0.0
	for i, v := range s.Values {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

//TimeWeightedMean is the area under the post-step curve divided by the
//series' time span.  The last sample carries no weight (nothing is known
//beyond it).
func (s Series) TimeWeightedMean() float64 {
	n := s.Len()
	switch n {
	case 0:
		return 0
	case 1:
		return s.Values[0]
	}
	weights := make([]float64, n-1)
	for i := range weights {
		weights[i] = s.Times[i+1] - s.Times[i]
	}
	return stat.Mean(s.Values[:n-1], weights)
}

//Scale returns a copy of the series with every value multiplied by f.
func (s Series) Scale(f float64) Series {
	dup := s.Copy()
	for i := range dup.Values {
		dup.Values[i] *= f
	}
	return dup
}

//OffsetTimes returns a copy of the series with dt added to every time.
//Used to rebase raw simulation seconds onto Unix time.
func (s Series) OffsetTimes(dt float64) Series {
	dup := s.Copy()
	for i := range dup.Times {
		dup.Times[i] += dt
	}
	return dup
}

//At returns the series value holding at time t under step semantics, i.e.
//the value of the latest sample at or before t.  ok is false if t precedes
//the first sample.
func (s Series) At(t float64) (value float64, ok bool) {
	i := sort.SearchFloat64s(s.Times, t)
	if i < len(s.Times) && s.Times[i] == t {
		return s.Values[i], true
	}
	if i == 0 {
		return 0, false
	}
	return s.Values[i-1], true
}

//Reindex resamples the series onto the given ascending time axis with
//forward-fill.  Points preceding the first sample hold the first value.
func (s Series) Reindex(times []float64) Series {
	dup := Series{
		Times:  make([]float64, len(times)),
		Values: make([]float64, len(times)),
	}
	copy(dup.Times, times)
	for i, t := range times {
		v, ok := s.At(t)
		if !ok && s.Len() > 0 {
			v = s.Values[0]
		}
		dup.Values[i] = v
	}
	return dup
}

//ZeroTimes returns the times at which the series value is exactly zero.
//Zero utilization marks a reset event on the load charts.
func (s Series) ZeroTimes() []float64 {
	times := []float64{}
	for i, v := range s.Values {
		if v == 0 {
			times = append(times, s.Times[i])
		}
	}
	return times
}

//UnionTimes merges several ascending time axes into one ascending axis
//without duplicates.
func UnionTimes(axes ...[]float64) []float64 {
	union := []float64{}
	for _, axis := range axes {
		union = append(union, axis...)
	}
	sort.Float64s(union)
	merged := union[:0]
	for i, t := range union {
		if i == 0 || t != merged[len(merged)-1] {
			merged = append(merged, t)
		}
	}
	return merged
}
