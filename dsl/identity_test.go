package dsl

import (
	"reflect"
	"testing"
)

func job(workload, id string, resources string) Job {
	set, err := ParseIntervalSet(resources)
	if err != nil {
		panic(err)
	}
	return Job{
		WorkloadName:       workload,
		JobID:              id,
		AllocatedResources: set,
	}
}

func TestResolveIdentities_NumbersInFirstOccurrenceOrder(t *testing.T) {
	jobs := Jobs{
		job("w0", "a", "0"),
		job("w0", "b", "1"),
		job("w0", "a", "2"),
		job("w1", "a", "3"), // different workload, different identity
		job("w0", "b", "4"),
	}

	_, numbers := ResolveIdentities(jobs)
	want := []int{1, 2, 1, 3, 2}
	if !reflect.DeepEqual(numbers, want) {
		t.Fatalf("expected %v, got %v", want, numbers)
	}
}

func TestResolveIdentities_LabelsThePositionalMedian(t *testing.T) {
	// Five occurrences of the same identity: the median is position 2.
	jobs := Jobs{
		job("w", "a", "0"),
		job("w", "a", "0"),
		job("w", "a", "0"),
		job("w", "a", "0"),
		job("w", "a", "0"),
	}
	labeled, _ := ResolveIdentities(jobs)
	if !reflect.DeepEqual(labeled, map[int]bool{2: true}) {
		t.Fatalf("expected position 2 labeled, got %v", labeled)
	}

	// Even count: floor division picks the element after the true midpoint.
	labeled, _ = ResolveIdentities(jobs[:4])
	if !reflect.DeepEqual(labeled, map[int]bool{2: true}) {
		t.Fatalf("expected position 2 labeled for even count, got %v", labeled)
	}
}

func TestResolveIdentities_UnallocatedJobsAreNeverLabelCarriers(t *testing.T) {
	// Same identity twice, second occurrence never ran: both share a
	// number, only the allocated occurrence is eligible for the label.
	jobs := Jobs{
		job("w", "a", "0-3"),
		job("w", "a", ""),
	}
	labeled, numbers := ResolveIdentities(jobs)
	if numbers[0] != numbers[1] {
		t.Errorf("expected both occurrences to share a number, got %v", numbers)
	}
	if !reflect.DeepEqual(labeled, map[int]bool{0: true}) {
		t.Errorf("expected only position 0 labeled, got %v", labeled)
	}

	// An identity with no allocated occurrence contributes no label at all.
	labeled, numbers = ResolveIdentities(Jobs{job("w", "a", ""), job("w", "a", "")})
	if len(labeled) != 0 {
		t.Errorf("expected no labels, got %v", labeled)
	}
	if !reflect.DeepEqual(numbers, []int{1, 1}) {
		t.Errorf("expected numbers [1 1], got %v", numbers)
	}
}

func TestResolveIdentities_MedianSkipsUnallocatedOccurrences(t *testing.T) {
	// Positions 0, 2, 4 are allocated; the candidate list is [0 2 4] and
	// its median is position 2, regardless of the unallocated rows.
	jobs := Jobs{
		job("w", "a", "0"),
		job("w", "a", ""),
		job("w", "a", "1"),
		job("w", "a", ""),
		job("w", "a", "2"),
	}
	labeled, _ := ResolveIdentities(jobs)
	if !reflect.DeepEqual(labeled, map[int]bool{2: true}) {
		t.Fatalf("expected position 2 labeled, got %v", labeled)
	}
}
