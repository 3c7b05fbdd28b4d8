package viz

import (
	"reflect"
	"testing"

	"github.com/vivian-hafener-lanl/Evalys-LANL/dsl"
)

func loadJob(id string, resources string, duration float64) dsl.Job {
	set, err := dsl.ParseIntervalSet(resources)
	if err != nil {
		panic(err)
	}
	return dsl.Job{
		JobID:              id,
		ExecutionTime:      duration,
		AllocatedResources: set,
	}
}

func TestComposeLoadRects_MergesEqualLoadRuns(t *testing.T) {
	jobs := dsl.Jobs{
		loadJob("1", "0-2", 5),
		loadJob("2", "1-2", 3),
	}
	rects, load := ComposeLoadRects(jobs, dsl.Interval{Lo: 0, Hi: 4})

	// Job 1 lands on three fresh machines: one rectangle of width 3.
	// Job 2's machines 1 and 2 both carry load 5 and are contiguous: one
	// rectangle of width 2 based at height 5.  Machine 0 stays untouched.
	want := []LoadRect{
		{Machine: 0, Base: 0, Width: 3, Height: 5, Row: 0, Label: "1"},
		{Machine: 1, Base: 5, Width: 2, Height: 3, Row: 1, Label: "2"},
	}
	if !reflect.DeepEqual(rects, want) {
		t.Fatalf("expected %v, got %v", want, rects)
	}

	wantLoad := map[int]float64{0: 5, 1: 8, 2: 8, 3: 0, 4: 0}
	if !reflect.DeepEqual(load, wantLoad) {
		t.Fatalf("expected final loads %v, got %v", wantLoad, load)
	}
}

func TestComposeLoadRects_SplitsOnUnequalBaseLoad(t *testing.T) {
	// Machines 0-1 carry load 5 but machine 2 is fresh: the third job must
	// split even though its machines are contiguous.
	jobs := dsl.Jobs{
		loadJob("1", "0-1", 5),
		loadJob("2", "0-2", 2),
	}
	rects, _ := ComposeLoadRects(jobs, dsl.Interval{Lo: 0, Hi: 2})

	want := []LoadRect{
		{Machine: 0, Base: 0, Width: 2, Height: 5, Row: 0, Label: "1"},
		{Machine: 0, Base: 5, Width: 2, Height: 2, Row: 1, Label: "2"},
		{Machine: 2, Base: 0, Width: 1, Height: 2, Row: 1, Label: "2"},
	}
	if !reflect.DeepEqual(rects, want) {
		t.Fatalf("expected %v, got %v", want, rects)
	}
}

func TestComposeLoadRects_SplitsOnIndexGaps(t *testing.T) {
	// A non-contiguous allocation can never merge across the gap.
	jobs := dsl.Jobs{
		loadJob("1", "0-1 3-4", 7),
	}
	rects, _ := ComposeLoadRects(jobs, dsl.Interval{Lo: 0, Hi: 4})

	want := []LoadRect{
		{Machine: 0, Base: 0, Width: 2, Height: 7, Row: 0, Label: "1"},
		{Machine: 3, Base: 0, Width: 2, Height: 7, Row: 0, Label: "1"},
	}
	if !reflect.DeepEqual(rects, want) {
		t.Fatalf("expected %v, got %v", want, rects)
	}
}

func TestComposeLoadRects_RoundTripAndTotals(t *testing.T) {
	jobs := dsl.Jobs{
		loadJob("1", "0-3", 5),
		loadJob("2", "2-5", 3),
		loadJob("3", "0 2 4", 2),
		loadJob("4", "1-4", 1),
	}
	bounds := dsl.Interval{Lo: 0, Hi: 7}
	rects, load := ComposeLoadRects(jobs, bounds)

	// Re-expanding each job's rectangles reconstructs exactly its
	// allocation membership.
	perJob := map[int]map[int]bool{}
	for _, rect := range rects {
		members := perJob[rect.Row]
		if members == nil {
			members = map[int]bool{}
			perJob[rect.Row] = members
		}
		for m := rect.Machine; m < rect.Machine+rect.Width; m++ {
			if members[m] {
				t.Errorf("job row %d covers machine %d twice", rect.Row, m)
			}
			members[m] = true
		}
	}
	for row, job := range jobs {
		want := map[int]bool{}
		job.AllocatedResources.Each(func(m int) { want[m] = true })
		if !reflect.DeepEqual(perJob[row], want) {
			t.Errorf("job row %d: expected coverage %v, got %v", row, want, perJob[row])
		}
	}

	// Every machine's final load is the sum of the durations of the jobs
	// allocated to it.
	for machine := bounds.Lo; machine <= bounds.Hi; machine++ {
		want := 0.0
		for _, job := range jobs {
			if job.AllocatedResources.Contains(machine) {
				want += job.ExecutionTime
			}
		}
		if load[machine] != want {
			t.Errorf("machine %d: expected load %g, got %g", machine, want, load[machine])
		}
	}
}

func TestComposeLoadRects_SkipsEmptyAllocations(t *testing.T) {
	jobs := dsl.Jobs{
		loadJob("rejected", "", 100),
		loadJob("ran", "0", 1),
	}
	rects, load := ComposeLoadRects(jobs, dsl.Interval{Lo: 0, Hi: 1})

	want := []LoadRect{{Machine: 0, Base: 0, Width: 1, Height: 1, Row: 1, Label: "ran"}}
	if !reflect.DeepEqual(rects, want) {
		t.Fatalf("expected %v, got %v", want, rects)
	}
	if load[0] != 1 || load[1] != 0 {
		t.Fatalf("expected loads [1 0], got %v", load)
	}
}
