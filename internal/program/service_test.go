package program

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/omnitutor/omnitutor/internal/faults"
)

// fakeRepo is an in-memory Repository for service tests. Appends get a
// monotonic Seq the way the store does.
type fakeRepo struct {
	mu           sync.Mutex
	programs     map[string]*Program
	quizzes      map[string]*Quiz // by program ID
	lessons      map[string][]*Lesson
	attempts     map[string][]*Attempt // by lesson ID
	quizAttempts []*QuizAttempt
	seq          int64
	now          time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		programs: map[string]*Program{},
		quizzes:  map[string]*Quiz{},
		lessons:  map[string][]*Lesson{},
		attempts: map[string][]*Attempt{},
		now:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *fakeRepo) CreateProgram(_ context.Context, p *Program, q *Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[p.ID] = p
	r.quizzes[p.ID] = q
	return nil
}

func (r *fakeRepo) GetProgram(_ context.Context, id string) (*Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.programs[id], nil
}

func (r *fakeRepo) UpdateProgram(_ context.Context, p *Program) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[p.ID] = p
	return nil
}

func (r *fakeRepo) ListPrograms(_ context.Context, studentID string) ([]*Program, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Program
	for _, p := range r.programs {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetQuiz(_ context.Context, programID string) (*Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quizzes[programID], nil
}

func (r *fakeRepo) ActivateProgram(_ context.Context, p *Program, lessons []*Lesson, qa *QuizAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lessons[p.ID] = lessons
	qa.CreatedAt = r.now
	r.quizAttempts = append(r.quizAttempts, qa)
	r.programs[p.ID] = p
	return nil
}

func (r *fakeRepo) ReplaceLessons(_ context.Context, programID string, lessons []*Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lessons[programID] = lessons
	return nil
}

func (r *fakeRepo) GetLesson(_ context.Context, id string) (*Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ls := range r.lessons {
		for _, l := range ls {
			if l.ID == id {
				return l, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeRepo) ListLessons(_ context.Context, programID string) ([]*Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lessons[programID], nil
}

func (r *fakeRepo) AppendAttempt(_ context.Context, a *Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	a.Seq = r.seq
	a.CreatedAt = r.now
	r.attempts[a.LessonID] = append(r.attempts[a.LessonID], a)
	return nil
}

func (r *fakeRepo) ListAttempts(_ context.Context, lessonID string) ([]*Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts[lessonID], nil
}

func (r *fakeRepo) ListProgramAttempts(_ context.Context, programID string) (map[string][]*Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string][]*Attempt{}
	for _, l := range r.lessons[programID] {
		if log := r.attempts[l.ID]; len(log) > 0 {
			out[l.ID] = append([]*Attempt(nil), log...)
		}
	}
	return out, nil
}

// fakeGen returns canned payloads and counts calls, so tests can assert
// that failed operations never re-trigger generation.
type fakeGen struct {
	quiz    *GeneratedQuiz
	quizErr error

	eval    *Evaluation
	evalErr error

	detail    *LessonDraft
	detailErr error

	mastery    *MasteryResult
	masteryErr error

	quizCalls    int
	evalCalls    int
	detailCalls  int
	masteryCalls int
}

func (g *fakeGen) GenerateDiagnosticQuiz(context.Context, string, []string) (*GeneratedQuiz, error) {
	g.quizCalls++
	return g.quiz, g.quizErr
}

func (g *fakeGen) EvaluateDiagnostic(context.Context, EvaluateInput) (*Evaluation, error) {
	g.evalCalls++
	return g.eval, g.evalErr
}

func (g *fakeGen) GenerateLessonDetail(context.Context, LessonDetailInput) (*LessonDraft, error) {
	g.detailCalls++
	return g.detail, g.detailErr
}

func (g *fakeGen) EvaluateMastery(context.Context, MasteryInput) (*MasteryResult, error) {
	g.masteryCalls++
	return g.mastery, g.masteryErr
}

func testQuiz() *GeneratedQuiz {
	return &GeneratedQuiz{
		Title:        "Volcano Explorers",
		Overview:     "Find out what you already know about volcanoes.",
		Instructions: "Answer every question.",
		Questions: []QuizQuestion{
			{ID: "q1", Prompt: "What comes out of a volcano?", AnswerType: AnswerMultipleChoice, Choices: []string{"Lava", "Snow"}},
			{ID: "q2", Prompt: "Describe a volcano.", AnswerType: AnswerFreeForm},
		},
	}
}

func testEvaluation(lessonCount int) *Evaluation {
	ch := ChapterDraft{Title: "Volcano Basics"}
	for i := 1; i <= lessonCount; i++ {
		ch.Lessons = append(ch.Lessons, LessonDraft{
			Title:           fmt.Sprintf("Lesson %d", i),
			ContentMarkdown: fmt.Sprintf("# Lesson %d\nContent.", i),
		})
	}
	return &Evaluation{
		SkillProfile: "curious beginner",
		Overview:     "A journey through volcanoes.",
		Score:        70,
		Chapters:     []ChapterDraft{ch},
	}
}

func allAnswers() map[string]any {
	return map[string]any{"q1": "Lava", "q2": "A mountain that erupts."}
}

func activeProgram(t *testing.T, lessonCount int) (*Service, *fakeRepo, *fakeGen, *Program) {
	t.Helper()
	repo := newFakeRepo()
	gen := &fakeGen{
		quiz:    testQuiz(),
		eval:    testEvaluation(lessonCount),
		mastery: &MasteryResult{Stars: 2, Score: 80, Summary: "Solid work."},
	}
	svc := NewService(repo, gen, DefaultUnlockPolicy())

	p, err := svc.Start(context.Background(), "student-1", "volcanoes", []string{"loves dinosaurs"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.SubmitDiagnostic(context.Background(), p.ID, allAnswers()); err != nil {
		t.Fatalf("SubmitDiagnostic: %v", err)
	}
	return svc, repo, gen, repo.programs[p.ID]
}

func TestStart(t *testing.T) {
	t.Run("creates awaiting program with quiz", func(t *testing.T) {
		repo := newFakeRepo()
		gen := &fakeGen{quiz: testQuiz()}
		svc := NewService(repo, gen, DefaultUnlockPolicy())

		p, err := svc.Start(context.Background(), "student-1", "volcanoes", nil)
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		if p.Status != StatusAwaitingDiagnostic {
			t.Errorf("status = %s, want awaiting_diagnostic", p.Status)
		}
		quiz := repo.quizzes[p.ID]
		if quiz == nil || len(quiz.Questions) != 2 {
			t.Fatalf("quiz not persisted with questions: %+v", quiz)
		}
		if p.Title != "Volcano Explorers" {
			t.Errorf("title = %q", p.Title)
		}
	})

	t.Run("generation failure persists nothing", func(t *testing.T) {
		repo := newFakeRepo()
		gen := &fakeGen{quizErr: &faults.GenerationError{Stage: "quiz", Err: errors.New("boom")}}
		svc := NewService(repo, gen, DefaultUnlockPolicy())

		_, err := svc.Start(context.Background(), "student-1", "volcanoes", nil)
		if !errors.Is(err, faults.ErrGeneration) {
			t.Fatalf("err = %v, want generation error", err)
		}
		if len(repo.programs) != 0 {
			t.Error("program persisted despite generation failure")
		}
	})

	t.Run("empty quiz rejected", func(t *testing.T) {
		repo := newFakeRepo()
		gen := &fakeGen{quiz: &GeneratedQuiz{Title: "Empty"}}
		svc := NewService(repo, gen, DefaultUnlockPolicy())

		_, err := svc.Start(context.Background(), "student-1", "volcanoes", nil)
		if !errors.Is(err, faults.ErrGeneration) {
			t.Fatalf("err = %v, want generation error", err)
		}
		if len(repo.programs) != 0 {
			t.Error("program persisted despite empty quiz")
		}
	})

	t.Run("short topic rejected before generation", func(t *testing.T) {
		gen := &fakeGen{quiz: testQuiz()}
		svc := NewService(newFakeRepo(), gen, DefaultUnlockPolicy())

		_, err := svc.Start(context.Background(), "student-1", "ab", nil)
		if !errors.Is(err, faults.ErrValidation) {
			t.Fatalf("err = %v, want validation error", err)
		}
		if gen.quizCalls != 0 {
			t.Error("generator called for invalid topic")
		}
	})
}

func TestSubmitDiagnostic(t *testing.T) {
	t.Run("activates program and materializes outline", func(t *testing.T) {
		repo := newFakeRepo()
		gen := &fakeGen{quiz: testQuiz(), eval: testEvaluation(3)}
		svc := NewService(repo, gen, DefaultUnlockPolicy())

		p, _ := svc.Start(context.Background(), "student-1", "volcanoes", nil)
		got, err := svc.SubmitDiagnostic(context.Background(), p.ID, allAnswers())
		if err != nil {
			t.Fatalf("SubmitDiagnostic: %v", err)
		}
		if got.Status != StatusActive {
			t.Errorf("status = %s, want active", got.Status)
		}
		if got.SkillProfile != "curious beginner" {
			t.Errorf("skill profile = %q", got.SkillProfile)
		}
		lessons := repo.lessons[p.ID]
		if len(lessons) != 3 {
			t.Fatalf("outline = %d lessons, want 3", len(lessons))
		}
		for i, l := range lessons {
			if l.OrderIndex != i+1 {
				t.Errorf("lesson %d order = %d", i, l.OrderIndex)
			}
		}
		if len(repo.quizAttempts) != 1 || repo.quizAttempts[0].Score != 70 {
			t.Errorf("quiz attempt not recorded: %+v", repo.quizAttempts)
		}
	})

	t.Run("second submission rejected without regenerating", func(t *testing.T) {
		svc, _, gen, p := activeProgram(t, 2)

		_, err := svc.SubmitDiagnostic(context.Background(), p.ID, allAnswers())
		if !errors.Is(err, faults.ErrInvalidState) {
			t.Fatalf("err = %v, want invalid state", err)
		}
		if gen.evalCalls != 1 {
			t.Errorf("evaluate called %d times, want 1", gen.evalCalls)
		}
	})

	t.Run("incomplete answers rejected", func(t *testing.T) {
		repo := newFakeRepo()
		gen := &fakeGen{quiz: testQuiz(), eval: testEvaluation(2)}
		svc := NewService(repo, gen, DefaultUnlockPolicy())

		p, _ := svc.Start(context.Background(), "student-1", "volcanoes", nil)
		_, err := svc.SubmitDiagnostic(context.Background(), p.ID, map[string]any{"q1": "Lava", "q2": "  "})
		if !errors.Is(err, faults.ErrValidation) {
			t.Fatalf("err = %v, want validation error", err)
		}
		if gen.evalCalls != 0 {
			t.Error("evaluate called despite missing answers")
		}
		if repo.programs[p.ID].Status != StatusAwaitingDiagnostic {
			t.Error("program left awaiting_diagnostic state")
		}
	})

	t.Run("empty outline keeps program awaiting", func(t *testing.T) {
		repo := newFakeRepo()
		gen := &fakeGen{quiz: testQuiz(), eval: &Evaluation{SkillProfile: "x"}}
		svc := NewService(repo, gen, DefaultUnlockPolicy())

		p, _ := svc.Start(context.Background(), "student-1", "volcanoes", nil)
		_, err := svc.SubmitDiagnostic(context.Background(), p.ID, allAnswers())
		if !errors.Is(err, faults.ErrGeneration) {
			t.Fatalf("err = %v, want generation error", err)
		}
		if repo.programs[p.ID].Status != StatusAwaitingDiagnostic {
			t.Error("program not left awaiting_diagnostic for retry")
		}
	})

	t.Run("outline entries without content are hydrated", func(t *testing.T) {
		repo := newFakeRepo()
		eval := testEvaluation(2)
		eval.Chapters[0].Lessons[1].ContentMarkdown = ""
		gen := &fakeGen{
			quiz:   testQuiz(),
			eval:   eval,
			detail: &LessonDraft{Title: "Lesson 2", ContentMarkdown: "# Hydrated"},
		}
		svc := NewService(repo, gen, DefaultUnlockPolicy())

		p, _ := svc.Start(context.Background(), "student-1", "volcanoes", nil)
		if _, err := svc.SubmitDiagnostic(context.Background(), p.ID, allAnswers()); err != nil {
			t.Fatalf("SubmitDiagnostic: %v", err)
		}
		if gen.detailCalls != 1 {
			t.Errorf("detail calls = %d, want 1", gen.detailCalls)
		}
		if repo.lessons[p.ID][1].ContentMarkdown != "# Hydrated" {
			t.Error("second lesson not hydrated")
		}
	})

	t.Run("unknown program", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeGen{}, DefaultUnlockPolicy())
		_, err := svc.SubmitDiagnostic(context.Background(), "nope", allAnswers())
		if !errors.Is(err, faults.ErrNotFound) {
			t.Fatalf("err = %v, want not found", err)
		}
	})
}

func TestCompleteLesson(t *testing.T) {
	t.Run("completed attempt graded by gateway", func(t *testing.T) {
		svc, repo, gen, p := activeProgram(t, 2)
		first := repo.lessons[p.ID][0]

		a, err := svc.CompleteLesson(context.Background(), CompleteInput{
			LessonID:  first.ID,
			StudentID: "student-1",
			Status:    AttemptCompleted,
			Answers:   map[string]any{"assessment": "Lava erupts."},
		})
		if err != nil {
			t.Fatalf("CompleteLesson: %v", err)
		}
		if gen.masteryCalls != 1 {
			t.Errorf("mastery calls = %d, want 1", gen.masteryCalls)
		}
		if a.Stars != 2 || a.Status != AttemptCompleted {
			t.Errorf("attempt = %+v", a)
		}
		if a.Seq == 0 {
			t.Error("attempt missing sequence")
		}
	})

	t.Run("zero stars downgrades to needs_help", func(t *testing.T) {
		svc, repo, gen, p := activeProgram(t, 2)
		gen.mastery = &MasteryResult{Stars: 0, Score: 20}
		first := repo.lessons[p.ID][0]

		a, err := svc.CompleteLesson(context.Background(), CompleteInput{
			LessonID: first.ID, StudentID: "student-1", Status: AttemptCompleted,
		})
		if err != nil {
			t.Fatalf("CompleteLesson: %v", err)
		}
		if a.Status != AttemptNeedsHelp {
			t.Errorf("status = %s, want needs_help", a.Status)
		}
	})

	t.Run("stars clamped to three", func(t *testing.T) {
		svc, repo, gen, p := activeProgram(t, 2)
		gen.mastery = &MasteryResult{Stars: 9, Score: 100}
		first := repo.lessons[p.ID][0]

		a, err := svc.CompleteLesson(context.Background(), CompleteInput{
			LessonID: first.ID, StudentID: "student-1", Status: AttemptCompleted,
		})
		if err != nil {
			t.Fatalf("CompleteLesson: %v", err)
		}
		if a.Stars != 3 {
			t.Errorf("stars = %d, want 3", a.Stars)
		}
	})

	t.Run("locked lesson rejected", func(t *testing.T) {
		svc, repo, gen, p := activeProgram(t, 2)
		second := repo.lessons[p.ID][1]

		_, err := svc.CompleteLesson(context.Background(), CompleteInput{
			LessonID: second.ID, StudentID: "student-1", Status: AttemptCompleted,
		})
		if !errors.Is(err, faults.ErrInvalidState) {
			t.Fatalf("err = %v, want invalid state", err)
		}
		if gen.masteryCalls != 0 {
			t.Error("mastery evaluated for locked lesson")
		}
	})

	t.Run("non-completed statuses skip mastery call", func(t *testing.T) {
		svc, repo, gen, p := activeProgram(t, 2)
		first := repo.lessons[p.ID][0]

		a, err := svc.CompleteLesson(context.Background(), CompleteInput{
			LessonID: first.ID, StudentID: "student-1", Status: AttemptSkipped,
		})
		if err != nil {
			t.Fatalf("CompleteLesson: %v", err)
		}
		if gen.masteryCalls != 0 {
			t.Error("mastery evaluated for skipped attempt")
		}
		if a.Status != AttemptSkipped {
			t.Errorf("status = %s", a.Status)
		}
	})

	t.Run("mastery failure keeps attempt log unchanged", func(t *testing.T) {
		svc, repo, gen, p := activeProgram(t, 2)
		gen.masteryErr = &faults.GenerationError{Stage: "mastery", Err: errors.New("down")}
		first := repo.lessons[p.ID][0]

		_, err := svc.CompleteLesson(context.Background(), CompleteInput{
			LessonID: first.ID, StudentID: "student-1", Status: AttemptCompleted,
		})
		if !errors.Is(err, faults.ErrGeneration) {
			t.Fatalf("err = %v, want generation error", err)
		}
		if len(repo.attempts[first.ID]) != 0 {
			t.Error("attempt appended despite mastery failure")
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		svc, repo, _, p := activeProgram(t, 2)
		first := repo.lessons[p.ID][0]

		_, err := svc.CompleteLesson(context.Background(), CompleteInput{
			LessonID: first.ID, StudentID: "student-1", Status: "finished",
		})
		if !errors.Is(err, faults.ErrValidation) {
			t.Fatalf("err = %v, want validation error", err)
		}
	})

	t.Run("completing all lessons completes program", func(t *testing.T) {
		svc, repo, _, p := activeProgram(t, 2)

		for _, l := range repo.lessons[p.ID] {
			if _, err := svc.CompleteLesson(context.Background(), CompleteInput{
				LessonID: l.ID, StudentID: "student-1", Status: AttemptCompleted,
			}); err != nil {
				t.Fatalf("CompleteLesson(%s): %v", l.Title, err)
			}
		}
		if repo.programs[p.ID].Status != StatusCompleted {
			t.Errorf("program status = %s, want completed", repo.programs[p.ID].Status)
		}

		// Terminal: further submissions are rejected.
		_, err := svc.CompleteLesson(context.Background(), CompleteInput{
			LessonID: repo.lessons[p.ID][0].ID, StudentID: "student-1", Status: AttemptCompleted,
		})
		if !errors.Is(err, faults.ErrInvalidState) {
			t.Fatalf("err = %v, want invalid state after completion", err)
		}
	})
}

func TestAbandon(t *testing.T) {
	svc, repo, _, p := activeProgram(t, 2)

	if err := svc.Abandon(context.Background(), p.ID); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if repo.programs[p.ID].Status != StatusAbandoned {
		t.Errorf("status = %s, want abandoned", repo.programs[p.ID].Status)
	}

	if err := svc.Abandon(context.Background(), p.ID); !errors.Is(err, faults.ErrInvalidState) {
		t.Fatalf("second abandon err = %v, want invalid state", err)
	}
}

func TestGetView(t *testing.T) {
	svc, repo, _, p := activeProgram(t, 3)
	first := repo.lessons[p.ID][0]

	if _, err := svc.CompleteLesson(context.Background(), CompleteInput{
		LessonID: first.ID, StudentID: "student-1", Status: AttemptCompleted,
	}); err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}

	v, err := svc.GetView(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetView: %v", err)
	}
	if len(v.Lessons) != 3 {
		t.Fatalf("view lessons = %d", len(v.Lessons))
	}
	wantStates := []ProgressState{ProgressCompleted, ProgressAvailable, ProgressLocked}
	for i, lv := range v.Lessons {
		if lv.State != wantStates[i] {
			t.Errorf("lesson %d state = %s, want %s", i+1, lv.State, wantStates[i])
		}
	}
	if v.TotalStars != 2 {
		t.Errorf("total stars = %d, want 2", v.TotalStars)
	}
	if al := v.ActiveLesson(); al == nil || al.OrderIndex != 2 {
		t.Errorf("active lesson = %+v, want order 2", al)
	}
}
