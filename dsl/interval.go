package dsl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//Interval is a closed range [Lo, Hi] of machine indices.
type Interval struct {
	Lo int
	Hi int
}

//IntervalSet is an ordered sequence of disjoint, non-adjacent closed ranges.
//The invariant (sorted ascending, non-overlapping, non-adjacent) is
//established by NewIntervalSet and ParseIntervalSet and assumed everywhere
//else.
type IntervalSet []Interval

//NewIntervalSet builds an IntervalSet from arbitrary ranges.
//Ranges are sorted; overlapping and adjacent ranges are merged.
//Ranges with Hi < Lo are dropped.
func NewIntervalSet(intervals ...Interval) IntervalSet {
	kept := IntervalSet{}
	for _, itv := range intervals {
		if itv.Hi >= itv.Lo {
			kept = append(kept, itv)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Lo == kept[j].Lo {
			return kept[i].Hi < kept[j].Hi
		}
		return kept[i].Lo < kept[j].Lo
	})

	merged := IntervalSet{}
	for _, itv := range kept {
		if len(merged) > 0 && itv.Lo <= merged[len(merged)-1].Hi+1 {
			if itv.Hi > merged[len(merged)-1].Hi {
				merged[len(merged)-1].Hi = itv.Hi
			}
			continue
		}
		merged = append(merged, itv)
	}

	return merged
}

//ParseIntervalSet parses the textual form used by Batsim-style job tables:
//space-separated ranges, each either a single index ("5") or a closed range
//("0-3").  The empty string yields an empty set.
func ParseIntervalSet(s string) (IntervalSet, error) {
	intervals := []Interval{}
	for _, field := range strings.Fields(s) {
		lo, hi, found := strings.Cut(field, "-")
		loVal, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("invalid interval %q: %s", field, err)
		}
		hiVal := loVal
		if found {
			hiVal, err = strconv.Atoi(hi)
			if err != nil {
				return nil, fmt.Errorf("invalid interval %q: %s", field, err)
			}
		}
		if hiVal < loVal {
			return nil, fmt.Errorf("invalid interval %q: bounds out of order", field)
		}
		intervals = append(intervals, Interval{Lo: loVal, Hi: hiVal})
	}
	return NewIntervalSet(intervals...), nil
}

//Empty returns true if the set has no members.
func (s IntervalSet) Empty() bool {
	return len(s) == 0
}

//Count returns the number of member indices.
func (s IntervalSet) Count() int {
	n := 0
	for _, itv := range s {
		n += itv.Hi - itv.Lo + 1
	}
	return n
}

//Contains reports whether the index r is a member of the set.
func (s IntervalSet) Contains(r int) bool {
	for _, itv := range s {
		if r >= itv.Lo && r <= itv.Hi {
			return true
		}
	}
	return false
}

//Each calls f once per member index, in ascending order.
func (s IntervalSet) Each(f func(int)) {
	for _, itv := range s {
		for r := itv.Lo; r <= itv.Hi; r++ {
			f(r)
		}
	}
}

//Members expands the set into the ascending list of member indices.
func (s IntervalSet) Members() []int {
	members := make([]int, 0, s.Count())
	s.Each(func(r int) {
		members = append(members, r)
	})
	return members
}

func (s IntervalSet) String() string {
	fields := []string{}
	for _, itv := range s {
		if itv.Lo == itv.Hi {
			fields = append(fields, strconv.Itoa(itv.Lo))
		} else {
			fields = append(fields, fmt.Sprintf("%d-%d", itv.Lo, itv.Hi))
		}
	}
	return strings.Join(fields, " ")
}
