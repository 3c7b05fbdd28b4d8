package converters

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

//PStatesFromCSVFile reads a Batsim pstate-change table (columns: time,
//machine_id as an interval set, new_pstate) into a PStateSet.  Each change
//opens a pseudo-job for the affected machines; the pseudo-job closes when
//the same machine changes state again, or never (End = +Inf) if it doesn't.
//Machines that close at the same time, from the same state, since the same
//begin time are folded back into one pseudo-job over their interval set.
func PStatesFromCSVFile(filename string) (dsl.PStateSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return dsl.PStateSet{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return dsl.PStateSet{}, err
	}
	if len(records) == 0 {
		return dsl.PStateSet{}, fmt.Errorf("%s: empty pstate table", filename)
	}
	columns := indexColumns(records[0])

	type openState struct {
		pstate int
		begin  float64
	}
	open := map[int]openState{} // machine -> current state
	resBounds := dsl.Interval{}
	first := true

	set := dsl.PStateSet{Intervals: map[int]dsl.IntervalSet{}}
	emit := func(pstate int, begin, end float64, machines []int) {
		intervals := make([]dsl.Interval, len(machines))
		for i, m := range machines {
			intervals[i] = dsl.Interval{Lo: m, Hi: m}
		}
		id := len(set.Intervals)
		set.Intervals[id] = dsl.NewIntervalSet(intervals...)
		set.PseudoJobs = append(set.PseudoJobs, dsl.PseudoJob{
			PState:     pstate,
			IntervalID: id,
			Begin:      begin,
			End:        end,
		})
	}

	for i, record := range records[1:] {
		t, err := floatColumn(record, columns, "time")
		if err != nil {
			return dsl.PStateSet{}, fmt.Errorf("%s row %d: %s", filename, i+2, err)
		}
		machineField, err := stringColumn(record, columns, "machine_id", "machine")
		if err != nil {
			return dsl.PStateSet{}, fmt.Errorf("%s row %d: %s", filename, i+2, err)
		}
		machines, err := dsl.ParseIntervalSet(machineField)
		if err != nil {
			return dsl.PStateSet{}, fmt.Errorf("%s row %d: %s", filename, i+2, err)
		}
		newPState, err := floatColumn(record, columns, "new_pstate")
		if err != nil {
			return dsl.PStateSet{}, fmt.Errorf("%s row %d: %s", filename, i+2, err)
		}

		// Close the previous state of every affected machine, folding
		// machines that shared pstate and begin time into one pseudo-job.
		closing := map[openState][]int{}
		machines.Each(func(m int) {
			if prev, ok := open[m]; ok {
				closing[prev] = append(closing[prev], m)
			}
			open[m] = openState{pstate: int(newPState), begin: t}
			if first || m < resBounds.Lo {
				resBounds.Lo = m
			}
			if first || m > resBounds.Hi {
				resBounds.Hi = m
			}
			first = false
		})
		for prev, ms := range closing {
			emit(prev.pstate, prev.begin, t, ms)
		}
	}

	// States still open at the end of the trace never change again.
	stillOpen := map[openState][]int{}
	for m, state := range open {
		stillOpen[state] = append(stillOpen[state], m)
	}
	for state, ms := range stillOpen {
		sort.Ints(ms)
		emit(state.pstate, state.begin, math.Inf(1), ms)
	}

	set.ResBounds = resBounds
	return set, nil
}
