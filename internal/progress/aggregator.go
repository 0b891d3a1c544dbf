// Package progress folds per-program attempt logs into a cross-program
// snapshot for one student. Pure computation: nothing here is stored, so
// the snapshot is always consistent with the logs it was derived from.
package progress

import (
	"fmt"
	"sort"
	"strings"

	"github.com/omnitutor/omnitutor/internal/program"
)

// Snapshot is the aggregated view of a student's learning.
type Snapshot struct {
	StudentID         string
	TotalPrograms     int
	CompletedPrograms int
	CompletedLessons  int
	InProgressLessons int
	TotalStars        int
	Badges            []string
}

// ProgramProgress is the raw material for one program: its outline and the
// attempt log per lesson.
type ProgramProgress struct {
	Program  *program.Program
	Lessons  []*program.Lesson
	Attempts map[string][]*program.Attempt
}

// Config tunes aggregation.
type Config struct {
	// MaxBadges caps the badge list. Zero means DefaultMaxBadges.
	MaxBadges int

	Policy program.UnlockPolicy
}

// DefaultMaxBadges is the badge cap when Config leaves it unset.
const DefaultMaxBadges = 6

// Aggregate computes the snapshot for one student. Abandoned programs are
// excluded entirely: their lessons no longer count toward anything.
func Aggregate(studentID string, programs []ProgramProgress, cfg Config) Snapshot {
	maxBadges := cfg.MaxBadges
	if maxBadges <= 0 {
		maxBadges = DefaultMaxBadges
	}

	snap := Snapshot{StudentID: studentID}
	var badges []string

	for _, pp := range programs {
		if pp.Program != nil && pp.Program.Status == program.StatusAbandoned {
			continue
		}
		snap.TotalPrograms++
		if pp.Program != nil && pp.Program.Status == program.StatusCompleted {
			snap.CompletedPrograms++
		}

		lessons := append([]*program.Lesson(nil), pp.Lessons...)
		sort.Slice(lessons, func(i, j int) bool { return lessons[i].OrderIndex < lessons[j].OrderIndex })
		states := program.ProgressStates(lessons, pp.Attempts, cfg.Policy)

		for _, l := range lessons {
			log := pp.Attempts[l.ID]
			switch {
			case states[l.ID] == program.ProgressCompleted:
				snap.CompletedLessons++
				stars := program.MasteryStars(log)
				snap.TotalStars += stars
				if stars > 0 {
					badges = append(badges, starBadge(l.Title, stars))
				}
			case len(log) > 0:
				snap.InProgressLessons++
				latest := program.LatestAttempt(log)
				if latest != nil && latest.Status == program.AttemptNeedsHelp {
					badges = append(badges, "Support next: "+l.Title)
				}
			}
		}
	}

	if len(badges) > maxBadges {
		badges = badges[:maxBadges]
	}
	snap.Badges = badges
	return snap
}

func starBadge(title string, stars int) string {
	if stars > 3 {
		stars = 3
	}
	return fmt.Sprintf("%s: %s", title, strings.Repeat("⭐", stars))
}
