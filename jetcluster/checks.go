package jetcluster

// CheckConsistency re-walks a finished ClusterSequence's history and
// verifies the two invariants spec.md §7 names: every parent/child
// reference stays within the jet store's range, and no jet is ever
// recorded as a history parent twice (the "child already set" bug —
// a jet retired once by a merge or a beam step must never be retired
// again). Intended for development/debugging, not the hot path; wired
// in via WithConsistencyCheck.
func CheckConsistency(cs *ClusterSequence) error {
	total := cs.jets.Len()
	seenAsParent := make(map[int]bool, total)
	seenAsChild := make(map[int]bool, total)

	for _, step := range cs.hist.Steps() {
		if step.Parent1 < 0 || step.Parent1 >= total {
			return &InvariantError{Msg: "history parent1 out of range"}
		}
		if seenAsParent[step.Parent1] {
			return &InvariantError{Msg: "jet retired twice as a history parent"}
		}
		seenAsParent[step.Parent1] = true

		if step.Parent2 != BeamSentinel {
			if step.Parent2 < 0 || step.Parent2 >= total {
				return &InvariantError{Msg: "history parent2 out of range"}
			}
			if seenAsParent[step.Parent2] {
				return &InvariantError{Msg: "jet retired twice as a history parent"}
			}
			seenAsParent[step.Parent2] = true
		}

		if step.Child != InvalidSentinel {
			if step.Child < 0 || step.Child >= total {
				return &InvariantError{Msg: "history child out of range"}
			}
			if seenAsChild[step.Child] {
				return &InvariantError{Msg: "history child already set"}
			}
			seenAsChild[step.Child] = true
		}
	}
	return nil
}
