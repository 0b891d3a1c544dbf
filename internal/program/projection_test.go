package program

import (
	"fmt"
	"testing"
	"time"
)

func mkLessons(n int) []*Lesson {
	lessons := make([]*Lesson, n)
	for i := range lessons {
		lessons[i] = &Lesson{
			ID:         fmt.Sprintf("lesson-%d", i+1),
			ProgramID:  "prog-1",
			OrderIndex: i + 1,
			Title:      fmt.Sprintf("Lesson %d", i+1),
		}
	}
	return lessons
}

func mkAttempt(lessonID string, status AttemptStatus, stars int, seq int64, at time.Time) *Attempt {
	return &Attempt{
		ID:        fmt.Sprintf("att-%s-%d", lessonID, seq),
		LessonID:  lessonID,
		StudentID: "student-1",
		Status:    status,
		Stars:     stars,
		Seq:       seq,
		CreatedAt: at,
	}
}

func TestProgressStatesSequentialUnlock(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lessons := mkLessons(3)

	tests := []struct {
		name     string
		attempts map[string][]*Attempt
		want     map[string]ProgressState
	}{
		{
			name:     "fresh outline only first available",
			attempts: map[string][]*Attempt{},
			want: map[string]ProgressState{
				"lesson-1": ProgressAvailable,
				"lesson-2": ProgressLocked,
				"lesson-3": ProgressLocked,
			},
		},
		{
			name: "completing first unlocks second only",
			attempts: map[string][]*Attempt{
				"lesson-1": {mkAttempt("lesson-1", AttemptCompleted, 3, 1, base)},
			},
			want: map[string]ProgressState{
				"lesson-1": ProgressCompleted,
				"lesson-2": ProgressAvailable,
				"lesson-3": ProgressLocked,
			},
		},
		{
			name: "needs_help unlocks but does not complete",
			attempts: map[string][]*Attempt{
				"lesson-1": {mkAttempt("lesson-1", AttemptNeedsHelp, 0, 1, base)},
			},
			want: map[string]ProgressState{
				"lesson-1": ProgressAvailable,
				"lesson-2": ProgressAvailable,
				"lesson-3": ProgressLocked,
			},
		},
		{
			name: "in_progress attempt does not unlock",
			attempts: map[string][]*Attempt{
				"lesson-1": {mkAttempt("lesson-1", AttemptInProgress, 0, 1, base)},
			},
			want: map[string]ProgressState{
				"lesson-1": ProgressAvailable,
				"lesson-2": ProgressLocked,
				"lesson-3": ProgressLocked,
			},
		},
		{
			name: "later needs_help demotes completed to available",
			attempts: map[string][]*Attempt{
				"lesson-1": {
					mkAttempt("lesson-1", AttemptCompleted, 2, 1, base),
					mkAttempt("lesson-1", AttemptNeedsHelp, 0, 2, base.Add(time.Hour)),
				},
			},
			want: map[string]ProgressState{
				"lesson-1": ProgressAvailable,
				"lesson-2": ProgressAvailable,
				"lesson-3": ProgressLocked,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressStates(lessons, tt.attempts, DefaultUnlockPolicy())
			for id, want := range tt.want {
				if got[id] != want {
					t.Errorf("lesson %s: got %s, want %s", id, got[id], want)
				}
			}
		})
	}
}

func TestProgressStatesStrictPolicy(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lessons := mkLessons(2)
	attempts := map[string][]*Attempt{
		"lesson-1": {mkAttempt("lesson-1", AttemptNeedsHelp, 0, 1, base)},
	}

	got := ProgressStates(lessons, attempts, UnlockPolicy{NeedsHelpUnlocks: false})
	if got["lesson-2"] != ProgressLocked {
		t.Errorf("strict policy: lesson-2 = %s, want locked", got["lesson-2"])
	}
}

func TestLatestAttemptOrdering(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("timestamp wins", func(t *testing.T) {
		attempts := []*Attempt{
			mkAttempt("l1", AttemptCompleted, 3, 5, base),
			mkAttempt("l1", AttemptNeedsHelp, 0, 1, base.Add(time.Minute)),
		}
		got := LatestAttempt(attempts)
		if got.Seq != 1 {
			t.Fatalf("latest seq = %d, want 1 (later timestamp)", got.Seq)
		}
	})

	t.Run("seq breaks same-instant ties", func(t *testing.T) {
		attempts := []*Attempt{
			mkAttempt("l1", AttemptCompleted, 3, 7, base),
			mkAttempt("l1", AttemptNeedsHelp, 0, 8, base),
		}
		got := LatestAttempt(attempts)
		if got.Seq != 8 {
			t.Fatalf("latest seq = %d, want 8", got.Seq)
		}
	})

	t.Run("empty log", func(t *testing.T) {
		if got := LatestAttempt(nil); got != nil {
			t.Fatalf("latest of empty log = %+v, want nil", got)
		}
	})
}

func TestMasteryStarsLastWriterWins(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Two racing completed attempts: the later (CreatedAt, Seq) decides.
	attempts := []*Attempt{
		mkAttempt("l1", AttemptCompleted, 3, 1, base),
		mkAttempt("l1", AttemptCompleted, 1, 2, base),
	}
	if got := MasteryStars(attempts); got != 1 {
		t.Errorf("stars = %d, want 1 (last writer)", got)
	}

	// A later needs_help attempt does not erase the completed stars.
	attempts = append(attempts, mkAttempt("l1", AttemptNeedsHelp, 0, 3, base.Add(time.Hour)))
	if got := MasteryStars(attempts); got != 1 {
		t.Errorf("stars after needs_help = %d, want 1", got)
	}

	if got := MasteryStars(nil); got != 0 {
		t.Errorf("stars of empty log = %d, want 0", got)
	}
}

func TestTotalMasteryStars(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lessons := mkLessons(3)
	attempts := map[string][]*Attempt{
		"lesson-1": {mkAttempt("lesson-1", AttemptCompleted, 3, 1, base)},
		"lesson-2": {mkAttempt("lesson-2", AttemptCompleted, 2, 2, base)},
	}
	if got := TotalMasteryStars(lessons, attempts); got != 5 {
		t.Errorf("total stars = %d, want 5", got)
	}
}

func TestOutlineComplete(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lessons := mkLessons(2)
	policy := DefaultUnlockPolicy()

	attempts := map[string][]*Attempt{
		"lesson-1": {mkAttempt("lesson-1", AttemptNeedsHelp, 0, 1, base)},
	}
	if OutlineComplete(lessons, attempts, policy) {
		t.Error("outline complete with untouched last lesson")
	}

	attempts["lesson-2"] = []*Attempt{mkAttempt("lesson-2", AttemptNeedsHelp, 0, 2, base)}
	if OutlineComplete(lessons, attempts, policy) {
		t.Error("outline complete with needs_help final lesson")
	}

	attempts["lesson-2"] = []*Attempt{mkAttempt("lesson-2", AttemptCompleted, 2, 3, base)}
	if !OutlineComplete(lessons, attempts, policy) {
		t.Error("outline not complete with all lessons terminal and last completed")
	}

	if OutlineComplete(nil, nil, policy) {
		t.Error("empty outline reported complete")
	}
}
