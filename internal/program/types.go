// Package program owns the lifecycle of a generated curriculum instance:
// diagnostic quiz intake, outline materialization, sequential lesson
// unlocking, mastery scoring, and completion.
package program

import "time"

// Status is the lifecycle state of a LearningProgram. Transitions are
// monotonic: awaiting_diagnostic → active → completed, with abandoned as a
// terminal side exit. A program never regresses.
type Status string

const (
	StatusAwaitingDiagnostic Status = "awaiting_diagnostic"
	StatusActive             Status = "active"
	StatusCompleted          Status = "completed"
	StatusAbandoned          Status = "abandoned"
)

// AnswerType classifies how a diagnostic question is answered.
type AnswerType string

const (
	AnswerFreeForm       AnswerType = "free_form"
	AnswerMultipleChoice AnswerType = "multiple_choice"
	AnswerMultiSelect    AnswerType = "multi_select"
)

// Program is one generated curriculum instance for one student and topic.
type Program struct {
	ID           string
	StudentID    string
	TopicPrompt  string
	Title        string
	Summary      string
	Status       Status
	SkillProfile string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// QuizQuestion is a single diagnostic question. Choices are present for
// choice-based answer types; a choice-based question whose choices were
// omitted by the gateway degrades to free-text entry.
type QuizQuestion struct {
	ID         string
	Prompt     string
	AnswerType AnswerType
	Choices    []string
	Hints      []string
}

// Quiz is the diagnostic quiz attached to a program. Created once,
// immutable after creation.
type Quiz struct {
	ID           string
	ProgramID    string
	Instructions string
	Questions    []QuizQuestion
}

// MethodStep is one ordered teaching activity within a lesson plan.
type MethodStep struct {
	Title           string
	Description     string
	DurationMinutes int
}

// PracticePrompt is one suggested practice activity.
type PracticePrompt struct {
	Prompt   string
	Modality string
}

// Assessment is the mastery check attached to a lesson.
type Assessment struct {
	Prompt            string
	SuccessCriteria   []string
	ExemplarAnswer    string
	ExtensionIdea     string
	FollowUpQuestions []string
}

// Resource is a supplementary material reference.
type Resource struct {
	Type  string
	Label string
	URL   string
}

// Lesson is one ordered node in a program's outline. Identity and content
// are immutable once created; progress is derived from the attempt log.
type Lesson struct {
	ID               string
	ProgramID        string
	Chapter          string
	OrderIndex       int
	Title            string
	ContentMarkdown  string
	Objectives       []string
	MethodPlan       []MethodStep
	PracticePrompts  []PracticePrompt
	Assessment       Assessment
	EstimatedMinutes int
	Resources        []Resource
}

// AttemptStatus is the outcome of a single lesson submission.
type AttemptStatus string

const (
	AttemptCompleted  AttemptStatus = "completed"
	AttemptNeedsHelp  AttemptStatus = "needs_help"
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptSkipped    AttemptStatus = "skipped"
)

// Valid reports whether s is a known attempt status.
func (s AttemptStatus) Valid() bool {
	switch s {
	case AttemptCompleted, AttemptNeedsHelp, AttemptInProgress, AttemptSkipped:
		return true
	}
	return false
}

// Attempt is one append-only log entry per lesson submission. Attempts are
// never mutated or deleted; "latest" is a query over (CreatedAt, Seq).
type Attempt struct {
	ID                 string
	LessonID           string
	StudentID          string
	Status             AttemptStatus
	Answers            map[string]any
	Score              int
	Stars              int
	MasterySummary     string
	ReflectionPositive string
	ReflectionNegative string
	Seq                int64
	CreatedAt          time.Time
}

// ProgressState is the derived availability of a lesson. Never stored;
// always computed from the lesson order and the attempt log.
type ProgressState string

const (
	ProgressLocked    ProgressState = "locked"
	ProgressAvailable ProgressState = "available"
	ProgressCompleted ProgressState = "completed"
)

// QuizAttempt records one diagnostic submission with its evaluation.
type QuizAttempt struct {
	ID        string
	QuizID    string
	StudentID string
	Responses map[string]any
	Score     int
	Analysis  map[string]any
	CreatedAt time.Time
}
