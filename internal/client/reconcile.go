package client

// Reconcile merges candidate entities into an existing collection without
// duplicating identifiers. Nil candidates and candidates without an
// identifier are dropped. Candidates whose identifier is already present in
// the collection (or seen earlier among the candidates) are dropped, keeping
// the first occurrence. Net-new candidates are prepended, in first-seen
// order, before the unchanged original collection.
//
// When no candidate is net-new the original slice is returned as-is, so
// callers can detect the no-op by identity. Reconciling the same candidates
// twice is therefore always a no-op the second time.
func Reconcile[T Entity](existing []T, candidates ...*T) []T {
	if len(candidates) == 0 {
		return existing
	}

	seen := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		seen[item.GetID()] = struct{}{}
	}

	var fresh []T
	for _, candidate := range candidates {
		if candidate == nil {
			continue
		}
		id := (*candidate).GetID()
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		fresh = append(fresh, *candidate)
	}

	if len(fresh) == 0 {
		return existing
	}

	merged := make([]T, 0, len(fresh)+len(existing))
	merged = append(merged, fresh...)
	merged = append(merged, existing...)
	return merged
}
