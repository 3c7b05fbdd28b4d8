package dsl

//ResolveIdentities maps a job table to the set of row positions that should
//carry a visible text label, and a per-row list of unique numbers.
//
//Rows sharing the same (workload, jobID) identity get the same unique
//number.  Numbers start at 1 and increment in first-occurrence order, so a
//renderer can use them to pick consistent colors for a recurring job no
//matter how often it reappears in the trace.
//
//Exactly one row per identity is chosen as the label carrier: the
//positional median among that identity's occurrences that have a non-empty
//allocation.  For an even occurrence count the pick falls on the element
//after the true midpoint.  Identities whose occurrences all have empty
//allocations contribute no label.
func ResolveIdentities(jobs Jobs) (labeled map[int]bool, uniqueNumbers []int) {
	labeled = map[int]bool{}
	uniqueNumbers = make([]int, 0, len(jobs))

	// Jobs start their numbering with 1
	numberCounter := 1
	numbersMap := map[string]int{}
	positionsForID := map[string][]int{}
	idOrder := []string{}

	for position, job := range jobs {
		fullID := job.FullID()
		uniqueNumber, seen := numbersMap[fullID]
		if !seen {
			uniqueNumber = numberCounter
			numbersMap[fullID] = numberCounter
			numberCounter += 1
			idOrder = append(idOrder, fullID)
		}

		if !job.AllocatedResources.Empty() {
			positionsForID[fullID] = append(positionsForID[fullID], position)
		}

		uniqueNumbers = append(uniqueNumbers, uniqueNumber)
	}

	for _, fullID := range idOrder {
		positions := positionsForID[fullID]
		if len(positions) > 0 {
			labeled[positions[len(positions)/2]] = true
		}
	}

	return labeled, uniqueNumbers
}
