package program

// Progress is derived, not stored. These projections fold the append-only
// attempt log into lesson states and star counts, so concurrent completions
// can never corrupt state: the log only grows, and every read recomputes.

// UnlockPolicy decides which attempt statuses unlock the next lesson.
type UnlockPolicy struct {
	// NeedsHelpUnlocks treats a needs_help attempt as terminal for unlock
	// purposes, so a struggling student is not walled off from the next
	// lesson. Flagged for product review; both behaviors are supported.
	NeedsHelpUnlocks bool
}

// DefaultUnlockPolicy matches the shipped behavior: needs_help unlocks.
func DefaultUnlockPolicy() UnlockPolicy {
	return UnlockPolicy{NeedsHelpUnlocks: true}
}

// grantsUnlock reports whether the status counts as a terminal attempt that
// opens the following lesson.
func (p UnlockPolicy) grantsUnlock(status AttemptStatus) bool {
	if status == AttemptCompleted {
		return true
	}
	return p.NeedsHelpUnlocks && status == AttemptNeedsHelp
}

// LatestAttempt returns the attempt with the greatest (CreatedAt, Seq), or
// nil for an empty log. Seq breaks timestamp ties, so the last writer wins
// deterministically even under same-instant appends.
func LatestAttempt(attempts []*Attempt) *Attempt {
	var latest *Attempt
	for _, a := range attempts {
		if latest == nil || after(a, latest) {
			latest = a
		}
	}
	return latest
}

func after(a, b *Attempt) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.Seq > b.Seq
	}
	return a.CreatedAt.After(b.CreatedAt)
}

// hasUnlockingAttempt reports whether the log holds at least one attempt
// whose status grants unlock. Only existence matters, not score.
func hasUnlockingAttempt(attempts []*Attempt, policy UnlockPolicy) bool {
	for _, a := range attempts {
		if policy.grantsUnlock(a.Status) {
			return true
		}
	}
	return false
}

// ProgressStates computes the derived state of every lesson. Lessons must
// be ordered by OrderIndex; attempts maps lesson ID to its attempt log.
//
// A lesson is locked while any earlier lesson lacks an unlock-granting
// attempt, completed when its own latest attempt is completed, and
// available otherwise.
func ProgressStates(lessons []*Lesson, attempts map[string][]*Attempt, policy UnlockPolicy) map[string]ProgressState {
	states := make(map[string]ProgressState, len(lessons))
	unlocked := true
	for _, l := range lessons {
		log := attempts[l.ID]
		switch {
		case !unlocked:
			states[l.ID] = ProgressLocked
		case isCompleted(log):
			states[l.ID] = ProgressCompleted
		default:
			states[l.ID] = ProgressAvailable
		}
		if !hasUnlockingAttempt(log, policy) {
			unlocked = false
		}
	}
	return states
}

func isCompleted(attempts []*Attempt) bool {
	latest := LatestAttempt(attempts)
	return latest != nil && latest.Status == AttemptCompleted
}

// MasteryStars returns the stars of the latest completed attempt, or 0.
func MasteryStars(attempts []*Attempt) int {
	var latest *Attempt
	for _, a := range attempts {
		if a.Status != AttemptCompleted {
			continue
		}
		if latest == nil || after(a, latest) {
			latest = a
		}
	}
	if latest == nil {
		return 0
	}
	return latest.Stars
}

// TotalMasteryStars sums per-lesson stars across a program's outline.
func TotalMasteryStars(lessons []*Lesson, attempts map[string][]*Attempt) int {
	total := 0
	for _, l := range lessons {
		total += MasteryStars(attempts[l.ID])
	}
	return total
}

// OutlineComplete reports whether the program has earned completed status:
// every lesson holds a terminal unlock-granting attempt and the final
// lesson's derived state is completed.
func OutlineComplete(lessons []*Lesson, attempts map[string][]*Attempt, policy UnlockPolicy) bool {
	if len(lessons) == 0 {
		return false
	}
	for _, l := range lessons {
		if !hasUnlockingAttempt(attempts[l.ID], policy) {
			return false
		}
	}
	last := lessons[len(lessons)-1]
	return isCompleted(attempts[last.ID])
}
