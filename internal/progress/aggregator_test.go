package progress

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/omnitutor/omnitutor/internal/program"
)

func lesson(id string, order int, title string) *program.Lesson {
	return &program.Lesson{ID: id, OrderIndex: order, Title: title}
}

func attempt(lessonID string, status program.AttemptStatus, stars int, seq int64) *program.Attempt {
	return &program.Attempt{
		ID:        fmt.Sprintf("a-%s-%d", lessonID, seq),
		LessonID:  lessonID,
		Status:    status,
		Stars:     stars,
		Seq:       seq,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Minute),
	}
}

func TestAggregate(t *testing.T) {
	active := ProgramProgress{
		Program: &program.Program{ID: "p1", Status: program.StatusActive},
		Lessons: []*program.Lesson{
			lesson("l1", 1, "What is a volcano?"),
			lesson("l2", 2, "Magma Chambers"),
			lesson("l3", 3, "Famous Eruptions"),
		},
		Attempts: map[string][]*program.Attempt{
			"l1": {attempt("l1", program.AttemptCompleted, 3, 1)},
			"l2": {attempt("l2", program.AttemptNeedsHelp, 0, 2)},
		},
	}
	completed := ProgramProgress{
		Program: &program.Program{ID: "p2", Status: program.StatusCompleted},
		Lessons: []*program.Lesson{lesson("l4", 1, "Counting to 100")},
		Attempts: map[string][]*program.Attempt{
			"l4": {attempt("l4", program.AttemptCompleted, 2, 3)},
		},
	}
	abandoned := ProgramProgress{
		Program: &program.Program{ID: "p3", Status: program.StatusAbandoned},
		Lessons: []*program.Lesson{lesson("l5", 1, "Ghost Lesson")},
		Attempts: map[string][]*program.Attempt{
			"l5": {attempt("l5", program.AttemptCompleted, 3, 4)},
		},
	}

	snap := Aggregate("student-1", []ProgramProgress{active, completed, abandoned}, Config{
		Policy: program.DefaultUnlockPolicy(),
	})

	if snap.TotalPrograms != 2 {
		t.Errorf("total programs = %d, want 2 (abandoned excluded)", snap.TotalPrograms)
	}
	if snap.CompletedPrograms != 1 {
		t.Errorf("completed programs = %d", snap.CompletedPrograms)
	}
	if snap.CompletedLessons != 2 {
		t.Errorf("completed lessons = %d, want 2", snap.CompletedLessons)
	}
	if snap.InProgressLessons != 1 {
		t.Errorf("in progress lessons = %d, want 1", snap.InProgressLessons)
	}
	if snap.TotalStars != 5 {
		t.Errorf("total stars = %d, want 5", snap.TotalStars)
	}

	wantBadges := []string{
		"What is a volcano?: ⭐⭐⭐",
		"Support next: Magma Chambers",
		"Counting to 100: ⭐⭐",
	}
	if len(snap.Badges) != len(wantBadges) {
		t.Fatalf("badges = %v", snap.Badges)
	}
	for i, want := range wantBadges {
		if snap.Badges[i] != want {
			t.Errorf("badge %d = %q, want %q", i, snap.Badges[i], want)
		}
	}
}

func TestAggregateBadgeCap(t *testing.T) {
	var lessons []*program.Lesson
	attempts := map[string][]*program.Attempt{}
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("l%d", i)
		lessons = append(lessons, lesson(id, i, fmt.Sprintf("Lesson %d", i)))
		attempts[id] = []*program.Attempt{attempt(id, program.AttemptCompleted, 1, int64(i))}
	}
	pp := ProgramProgress{
		Program:  &program.Program{ID: "p1", Status: program.StatusActive},
		Lessons:  lessons,
		Attempts: attempts,
	}

	snap := Aggregate("student-1", []ProgramProgress{pp}, Config{Policy: program.DefaultUnlockPolicy()})
	if len(snap.Badges) != DefaultMaxBadges {
		t.Errorf("badges = %d, want %d", len(snap.Badges), DefaultMaxBadges)
	}

	snap = Aggregate("student-1", []ProgramProgress{pp}, Config{MaxBadges: 2, Policy: program.DefaultUnlockPolicy()})
	if len(snap.Badges) != 2 {
		t.Errorf("badges = %d, want 2", len(snap.Badges))
	}
}

func TestAggregateEmpty(t *testing.T) {
	snap := Aggregate("student-1", nil, Config{})
	if snap.TotalPrograms != 0 || len(snap.Badges) != 0 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestAggregateSkippedLessonCountsInProgress(t *testing.T) {
	pp := ProgramProgress{
		Program: &program.Program{ID: "p1", Status: program.StatusActive},
		Lessons: []*program.Lesson{lesson("l1", 1, "Skipped One")},
		Attempts: map[string][]*program.Attempt{
			"l1": {attempt("l1", program.AttemptSkipped, 0, 1)},
		},
	}

	snap := Aggregate("student-1", []ProgramProgress{pp}, Config{Policy: program.DefaultUnlockPolicy()})
	if snap.InProgressLessons != 1 || snap.CompletedLessons != 0 {
		t.Errorf("snapshot = %+v", snap)
	}
	for _, b := range snap.Badges {
		if strings.HasPrefix(b, "Support next") {
			t.Errorf("skipped lesson produced support badge: %q", b)
		}
	}
}
