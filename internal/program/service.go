package program

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/omnitutor/omnitutor/internal/faults"
)

// Repository is the persistence boundary for programs, quizzes, lessons,
// and the append-only attempt log. Implemented by internal/store.
type Repository interface {
	// CreateProgram persists a new program together with its quiz in one
	// transaction.
	CreateProgram(ctx context.Context, p *Program, q *Quiz) error
	GetProgram(ctx context.Context, id string) (*Program, error)
	UpdateProgram(ctx context.Context, p *Program) error
	ListPrograms(ctx context.Context, studentID string) ([]*Program, error)

	GetQuiz(ctx context.Context, programID string) (*Quiz, error)

	// ActivateProgram installs the outline, records the graded quiz
	// attempt, and updates the program in one transaction. A crash
	// mid-submission can never leave a graded program without its
	// outline.
	ActivateProgram(ctx context.Context, p *Program, lessons []*Lesson, qa *QuizAttempt) error

	// ReplaceLessons atomically installs the program's outline.
	ReplaceLessons(ctx context.Context, programID string, lessons []*Lesson) error
	GetLesson(ctx context.Context, id string) (*Lesson, error)
	ListLessons(ctx context.Context, programID string) ([]*Lesson, error)

	// AppendAttempt durably appends one attempt, assigning Seq and
	// CreatedAt. Attempts are never updated or deleted.
	AppendAttempt(ctx context.Context, a *Attempt) error
	ListAttempts(ctx context.Context, lessonID string) ([]*Attempt, error)
	// ListProgramAttempts returns the attempt log of every lesson in the
	// program, keyed by lesson ID.
	ListProgramAttempts(ctx context.Context, programID string) (map[string][]*Attempt, error)
}

// GeneratedQuiz is the gateway's quiz payload after normalization.
type GeneratedQuiz struct {
	Title        string
	Overview     string
	Instructions string
	Questions    []QuizQuestion
}

// LessonDraft is gateway-produced lesson content before it is assigned
// identity and order within a program.
type LessonDraft struct {
	Chapter          string
	Title            string
	ContentMarkdown  string
	Objectives       []string
	MethodPlan       []MethodStep
	PracticePrompts  []PracticePrompt
	Assessment       Assessment
	EstimatedMinutes int
	Resources        []Resource
}

// ChapterDraft groups lesson drafts under a chapter heading.
type ChapterDraft struct {
	Title   string
	Focus   string
	Lessons []LessonDraft
}

// Evaluation is the gateway's diagnostic evaluation payload.
type Evaluation struct {
	SkillProfile string
	Overview     string
	Score        int
	Analysis     map[string]any
	Chapters     []ChapterDraft
}

// MasteryResult is the gateway's verdict on one lesson submission.
type MasteryResult struct {
	Stars              int // 0-3
	Score              int
	Summary            string
	ReflectionPositive string
	ReflectionNegative string
}

// EvaluateInput carries everything the gateway needs to grade a diagnostic.
type EvaluateInput struct {
	Topic   string
	Traits  []string
	Quiz    *Quiz
	Answers map[string]any
}

// LessonDetailInput identifies one outline entry to hydrate lazily.
type LessonDetailInput struct {
	Topic        string
	SkillProfile string
	Chapter      string
	Title        string
	OrderIndex   int
}

// MasteryInput carries one lesson submission for evaluation.
type MasteryInput struct {
	Lesson  *Lesson
	Answers map[string]any
}

// Generator is the content generation capability the state machine depends
// on. Implemented by internal/content over a gateway provider; swapped for
// a deterministic fake in tests.
type Generator interface {
	GenerateDiagnosticQuiz(ctx context.Context, topic string, traits []string) (*GeneratedQuiz, error)
	EvaluateDiagnostic(ctx context.Context, in EvaluateInput) (*Evaluation, error)
	GenerateLessonDetail(ctx context.Context, in LessonDetailInput) (*LessonDraft, error)
	EvaluateMastery(ctx context.Context, in MasteryInput) (*MasteryResult, error)
}

// Service is the program state machine.
type Service struct {
	repo   Repository
	gen    Generator
	policy UnlockPolicy
}

// NewService creates a program service.
func NewService(repo Repository, gen Generator, policy UnlockPolicy) *Service {
	return &Service{repo: repo, gen: gen, policy: policy}
}

// Start creates a new program for the topic: the gateway generates the
// diagnostic quiz, and the program is persisted in awaiting_diagnostic with
// the quiz attached. Nothing is persisted when generation fails.
func (s *Service) Start(ctx context.Context, studentID, topic string, traits []string) (*Program, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, faults.Validationf("student id is required")
	}
	if len(strings.TrimSpace(topic)) < 3 {
		return nil, faults.Validationf("topic must be at least 3 characters")
	}

	gq, err := s.gen.GenerateDiagnosticQuiz(ctx, topic, traits)
	if err != nil {
		return nil, fmt.Errorf("generate diagnostic quiz: %w", err)
	}
	if len(gq.Questions) == 0 {
		return nil, &faults.GenerationError{Stage: "quiz", Err: fmt.Errorf("no questions returned")}
	}

	p := &Program{
		ID:          uuid.New().String(),
		StudentID:   studentID,
		TopicPrompt: topic,
		Title:       programTitle(gq.Title, topic),
		Summary:     gq.Overview,
		Status:      StatusAwaitingDiagnostic,
	}
	q := &Quiz{
		ID:           uuid.New().String(),
		ProgramID:    p.ID,
		Instructions: gq.Instructions,
		Questions:    gq.Questions,
	}

	if err := s.repo.CreateProgram(ctx, p, q); err != nil {
		return nil, fmt.Errorf("persist program: %w", err)
	}
	return p, nil
}

// SubmitDiagnostic grades the quiz answers and materializes the outline.
// Valid only while the program awaits its diagnostic; a second submission
// on an active program is rejected with InvalidStateError so an external
// generation call is never paid for twice.
func (s *Service) SubmitDiagnostic(ctx context.Context, programID string, answers map[string]any) (*Program, error) {
	p, err := s.getProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	if p.Status != StatusAwaitingDiagnostic {
		return nil, &faults.InvalidStateError{Entity: "program", State: string(p.Status), Op: "submit diagnostic"}
	}

	quiz, err := s.repo.GetQuiz(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if quiz == nil {
		return nil, &faults.NotFoundError{Entity: "quiz", ID: programID}
	}

	if missing := missingAnswers(quiz.Questions, answers); len(missing) > 0 {
		return nil, faults.Validationf("missing answers for questions: %s", strings.Join(missing, ", "))
	}

	ev, err := s.gen.EvaluateDiagnostic(ctx, EvaluateInput{
		Topic:   p.TopicPrompt,
		Quiz:    quiz,
		Answers: answers,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate diagnostic: %w", err)
	}

	lessons, err := s.buildOutline(ctx, p, ev)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, &faults.GenerationError{Stage: "evaluate", Err: fmt.Errorf("empty outline")}
	}

	qa := &QuizAttempt{
		ID:        uuid.New().String(),
		QuizID:    quiz.ID,
		StudentID: p.StudentID,
		Responses: answers,
		Score:     ev.Score,
		Analysis:  ev.Analysis,
	}

	p.SkillProfile = ev.SkillProfile
	if ev.Overview != "" {
		p.Summary = ev.Overview
	}
	p.Status = StatusActive

	// Outline, attempt, and status land atomically.
	if err := s.repo.ActivateProgram(ctx, p, lessons, qa); err != nil {
		return nil, fmt.Errorf("activate program: %w", err)
	}
	return p, nil
}

// buildOutline flattens the evaluation chapters into ordered lessons,
// hydrating entries the gateway returned without content.
func (s *Service) buildOutline(ctx context.Context, p *Program, ev *Evaluation) ([]*Lesson, error) {
	var lessons []*Lesson
	order := 1
	for _, ch := range ev.Chapters {
		for _, draft := range ch.Lessons {
			d := draft
			if strings.TrimSpace(d.ContentMarkdown) == "" {
				full, err := s.gen.GenerateLessonDetail(ctx, LessonDetailInput{
					Topic:        p.TopicPrompt,
					SkillProfile: ev.SkillProfile,
					Chapter:      ch.Title,
					Title:        d.Title,
					OrderIndex:   order,
				})
				if err != nil {
					return nil, fmt.Errorf("hydrate lesson %d: %w", order, err)
				}
				d = *full
			}
			lessons = append(lessons, &Lesson{
				ID:               uuid.New().String(),
				ProgramID:        p.ID,
				Chapter:          firstNonEmpty(d.Chapter, ch.Title),
				OrderIndex:       order,
				Title:            d.Title,
				ContentMarkdown:  d.ContentMarkdown,
				Objectives:       d.Objectives,
				MethodPlan:       d.MethodPlan,
				PracticePrompts:  d.PracticePrompts,
				Assessment:       d.Assessment,
				EstimatedMinutes: d.EstimatedMinutes,
				Resources:        d.Resources,
			})
			order++
		}
	}
	return lessons, nil
}

// CompleteInput is one lesson submission.
type CompleteInput struct {
	LessonID  string
	StudentID string
	Status    AttemptStatus
	Answers   map[string]any
}

// CompleteLesson appends an attempt for the lesson. Completed submissions
// are graded by the gateway for stars and reflections; other statuses are
// recorded without a mastery call. Racing submissions both land in the log
// and the later one wins for unlock purposes.
func (s *Service) CompleteLesson(ctx context.Context, in CompleteInput) (*Attempt, error) {
	if !in.Status.Valid() {
		return nil, faults.Validationf("unknown attempt status %q", in.Status)
	}
	if strings.TrimSpace(in.StudentID) == "" {
		return nil, faults.Validationf("student id is required")
	}

	lesson, err := s.repo.GetLesson(ctx, in.LessonID)
	if err != nil {
		return nil, fmt.Errorf("load lesson: %w", err)
	}
	if lesson == nil {
		return nil, &faults.NotFoundError{Entity: "lesson", ID: in.LessonID}
	}

	p, err := s.getProgram(ctx, lesson.ProgramID)
	if err != nil {
		return nil, err
	}
	if p.Status != StatusActive {
		return nil, &faults.InvalidStateError{Entity: "program", State: string(p.Status), Op: "complete lesson"}
	}

	lessons, err := s.repo.ListLessons(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("load outline: %w", err)
	}
	attempts, err := s.repo.ListProgramAttempts(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	states := ProgressStates(lessons, attempts, s.policy)
	if states[lesson.ID] == ProgressLocked {
		return nil, &faults.InvalidStateError{Entity: "lesson", State: string(ProgressLocked), Op: "complete lesson"}
	}

	attempt := &Attempt{
		ID:        uuid.New().String(),
		LessonID:  lesson.ID,
		StudentID: in.StudentID,
		Status:    in.Status,
		Answers:   in.Answers,
	}

	if in.Status == AttemptCompleted {
		m, err := s.gen.EvaluateMastery(ctx, MasteryInput{Lesson: lesson, Answers: in.Answers})
		if err != nil {
			return nil, fmt.Errorf("evaluate mastery: %w", err)
		}
		attempt.Stars = clampStars(m.Stars)
		attempt.Score = m.Score
		attempt.MasterySummary = m.Summary
		attempt.ReflectionPositive = m.ReflectionPositive
		attempt.ReflectionNegative = m.ReflectionNegative
		// The gateway's verdict, not the caller's claim, decides the
		// recorded status: zero stars downgrades to needs_help.
		if attempt.Stars == 0 {
			attempt.Status = AttemptNeedsHelp
		}
	}

	if err := s.repo.AppendAttempt(ctx, attempt); err != nil {
		return nil, fmt.Errorf("append attempt: %w", err)
	}

	attempts[lesson.ID] = append(attempts[lesson.ID], attempt)
	if OutlineComplete(lessons, attempts, s.policy) {
		p.Status = StatusCompleted
		if err := s.repo.UpdateProgram(ctx, p); err != nil {
			return nil, fmt.Errorf("mark program completed: %w", err)
		}
	}

	return attempt, nil
}

// Abandon archives a program. Completed programs stay completed.
func (s *Service) Abandon(ctx context.Context, programID string) error {
	p, err := s.getProgram(ctx, programID)
	if err != nil {
		return err
	}
	switch p.Status {
	case StatusCompleted, StatusAbandoned:
		return &faults.InvalidStateError{Entity: "program", State: string(p.Status), Op: "abandon"}
	}
	p.Status = StatusAbandoned
	return s.repo.UpdateProgram(ctx, p)
}

// LessonView pairs a lesson with its derived progress.
type LessonView struct {
	Lesson   *Lesson
	State    ProgressState
	Stars    int
	Attempts []*Attempt
}

// View is a read-model of a program with derived lesson states.
type View struct {
	Program    *Program
	Quiz       *Quiz
	Lessons    []LessonView
	TotalStars int
}

// GetView loads a program and projects progress over its outline.
func (s *Service) GetView(ctx context.Context, programID string) (*View, error) {
	p, err := s.getProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	quiz, err := s.repo.GetQuiz(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	lessons, err := s.repo.ListLessons(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("load outline: %w", err)
	}
	attempts, err := s.repo.ListProgramAttempts(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	sort.Slice(lessons, func(i, j int) bool { return lessons[i].OrderIndex < lessons[j].OrderIndex })
	states := ProgressStates(lessons, attempts, s.policy)

	v := &View{Program: p, Quiz: quiz, TotalStars: TotalMasteryStars(lessons, attempts)}
	for _, l := range lessons {
		v.Lessons = append(v.Lessons, LessonView{
			Lesson:   l,
			State:    states[l.ID],
			Stars:    MasteryStars(attempts[l.ID]),
			Attempts: attempts[l.ID],
		})
	}
	return v, nil
}

// ActiveLesson returns the first available lesson of the view, or nil.
func (v *View) ActiveLesson() *Lesson {
	for _, lv := range v.Lessons {
		if lv.State == ProgressAvailable {
			return lv.Lesson
		}
	}
	return nil
}

func (s *Service) getProgram(ctx context.Context, id string) (*Program, error) {
	p, err := s.repo.GetProgram(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load program: %w", err)
	}
	if p == nil {
		return nil, &faults.NotFoundError{Entity: "program", ID: id}
	}
	return p, nil
}

// missingAnswers returns the IDs of questions without a usable answer.
func missingAnswers(questions []QuizQuestion, answers map[string]any) []string {
	var missing []string
	for _, q := range questions {
		if !answered(answers[q.ID]) {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

func answered(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case []string:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}

func clampStars(stars int) int {
	if stars < 0 {
		return 0
	}
	if stars > 3 {
		return 3
	}
	return stars
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// programTitle prefers the generated title, falling back to a title-cased
// topic.
func programTitle(generated, topic string) string {
	if strings.TrimSpace(generated) != "" {
		return generated
	}
	words := strings.Fields(strings.ToLower(topic))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return "New Learning Adventure"
	}
	return strings.Join(words, " ") + " Learning Adventure"
}
