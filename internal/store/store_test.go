package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/omnitutor/omnitutor/internal/chat"
	"github.com/omnitutor/omnitutor/internal/program"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func testProgram(id string) (*program.Program, *program.Quiz) {
	p := &program.Program{
		ID:          id,
		StudentID:   "student-1",
		TopicPrompt: "volcanoes",
		Title:       "Volcano Explorers",
		Summary:     "All about volcanoes",
		Status:      program.StatusAwaitingDiagnostic,
	}
	q := &program.Quiz{
		ID:           id + "-quiz",
		ProgramID:    id,
		Instructions: "Answer everything!",
		Questions: []program.QuizQuestion{
			{ID: "q1", Prompt: "What is lava?", AnswerType: program.AnswerFreeForm},
			{ID: "q2", Prompt: "Pick one", AnswerType: program.AnswerMultipleChoice, Choices: []string{"A", "B"}},
		},
	}
	return p, q
}

func TestProgramRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Programs()
	ctx := context.Background()

	p, q := testProgram("prog-1")
	if err := repo.CreateProgram(ctx, p, q); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}

	got, err := repo.GetProgram(ctx, "prog-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Title != "Volcano Explorers" || got.Status != program.StatusAwaitingDiagnostic {
		t.Errorf("program = %+v", got)
	}

	got.Status = program.StatusActive
	got.SkillProfile = "curious beginner"
	if err := repo.UpdateProgram(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.GetProgram(ctx, "prog-1")
	if got.Status != program.StatusActive || got.SkillProfile != "curious beginner" {
		t.Errorf("after update = %+v", got)
	}

	quiz, err := repo.GetQuiz(ctx, "prog-1")
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if quiz == nil || len(quiz.Questions) != 2 || quiz.Questions[1].Choices[0] != "A" {
		t.Errorf("quiz = %+v", quiz)
	}

	missing, err := repo.GetProgram(ctx, "ghost")
	if err != nil || missing != nil {
		t.Errorf("unknown program = %+v, %v", missing, err)
	}
}

func TestListPrograms(t *testing.T) {
	s := openTestStore(t)
	repo := s.Programs()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		p, q := testProgram(fmt.Sprintf("prog-%d", i))
		if err := repo.CreateProgram(ctx, p, q); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	list, err := repo.ListPrograms(ctx, "student-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("programs = %d, want 3", len(list))
	}

	other, _ := repo.ListPrograms(ctx, "student-2")
	if len(other) != 0 {
		t.Errorf("other student programs = %d", len(other))
	}
}

func testLesson(id, programID string, order int) *program.Lesson {
	return &program.Lesson{
		ID:              id,
		ProgramID:       programID,
		Chapter:         "Basics",
		OrderIndex:      order,
		Title:           fmt.Sprintf("Lesson %d", order),
		ContentMarkdown: "# Content",
		Objectives:      []string{"Learn things"},
		MethodPlan:      []program.MethodStep{{Title: "Explore", Description: "Look around", DurationMinutes: 10}},
		PracticePrompts: []program.PracticePrompt{{Prompt: "Draw it", Modality: "drawing"}},
		Assessment: program.Assessment{
			Prompt:          "Explain it",
			SuccessCriteria: []string{"Is clear"},
		},
		EstimatedMinutes: 15,
		Resources:        []program.Resource{{Type: "link", Label: "More", URL: "https://example.com"}},
	}
}

func TestLessonsAndAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Programs()
	ctx := context.Background()

	p, q := testProgram("prog-1")
	if err := repo.CreateProgram(ctx, p, q); err != nil {
		t.Fatalf("create program: %v", err)
	}

	lessons := []*program.Lesson{
		testLesson("l1", "prog-1", 1),
		testLesson("l2", "prog-1", 2),
	}
	if err := repo.ReplaceLessons(ctx, "prog-1", lessons); err != nil {
		t.Fatalf("replace lessons: %v", err)
	}

	got, err := repo.ListLessons(ctx, "prog-1")
	if err != nil {
		t.Fatalf("list lessons: %v", err)
	}
	if len(got) != 2 || got[0].OrderIndex != 1 || got[1].OrderIndex != 2 {
		t.Fatalf("lessons = %+v", got)
	}
	l := got[0]
	if l.Assessment.Prompt != "Explain it" || len(l.MethodPlan) != 1 || l.Resources[0].URL != "https://example.com" {
		t.Errorf("lesson fields = %+v", l)
	}

	// Replace is idempotent on the outline.
	if err := repo.ReplaceLessons(ctx, "prog-1", lessons); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	got, _ = repo.ListLessons(ctx, "prog-1")
	if len(got) != 2 {
		t.Errorf("lessons after replace = %d", len(got))
	}

	a1 := &program.Attempt{
		ID: "a1", LessonID: "l1", StudentID: "student-1",
		Status: program.AttemptCompleted, Stars: 2, Score: 80,
		Answers: map[string]any{"assessment": "Lava is molten rock."},
	}
	a2 := &program.Attempt{
		ID: "a2", LessonID: "l1", StudentID: "student-1",
		Status: program.AttemptNeedsHelp,
	}
	for _, a := range []*program.Attempt{a1, a2} {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %s: %v", a.ID, err)
		}
	}
	if a1.Seq == 0 || a2.Seq <= a1.Seq {
		t.Errorf("sequences = %d, %d", a1.Seq, a2.Seq)
	}
	if a1.CreatedAt.IsZero() {
		t.Error("attempt timestamp not set")
	}

	log, err := repo.ListAttempts(ctx, "l1")
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(log) != 2 || log[0].ID != "a1" || log[1].ID != "a2" {
		t.Fatalf("attempt log = %+v", log)
	}
	if log[0].Stars != 2 || log[0].Answers["assessment"] != "Lava is molten rock." {
		t.Errorf("attempt fields = %+v", log[0])
	}

	byLesson, err := repo.ListProgramAttempts(ctx, "prog-1")
	if err != nil {
		t.Fatalf("list program attempts: %v", err)
	}
	if len(byLesson["l1"]) != 2 || len(byLesson["l2"]) != 0 {
		t.Errorf("program attempts = %+v", byLesson)
	}
}

func TestActivateProgram(t *testing.T) {
	s := openTestStore(t)
	repo := s.Programs()
	ctx := context.Background()

	p, q := testProgram("prog-1")
	if err := repo.CreateProgram(ctx, p, q); err != nil {
		t.Fatalf("create program: %v", err)
	}

	lessons := []*program.Lesson{
		testLesson("l1", "prog-1", 1),
		testLesson("l2", "prog-1", 2),
	}
	qa := &program.QuizAttempt{
		ID:        "qa1",
		QuizID:    q.ID,
		StudentID: "student-1",
		Responses: map[string]any{"q1": "hot rock", "q2": "A"},
		Score:     70,
	}
	p.Status = program.StatusActive
	p.SkillProfile = "curious beginner"
	if err := repo.ActivateProgram(ctx, p, lessons, qa); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if qa.CreatedAt.IsZero() {
		t.Error("quiz attempt timestamp not set")
	}

	got, _ := repo.GetProgram(ctx, "prog-1")
	if got.Status != program.StatusActive || got.SkillProfile != "curious beginner" {
		t.Errorf("program after activate = %+v", got)
	}
	outline, _ := repo.ListLessons(ctx, "prog-1")
	if len(outline) != 2 {
		t.Errorf("outline = %d lessons", len(outline))
	}

	// A failure inside the transaction rolls everything back: reusing the
	// attempt ID violates uniqueness, so neither the outline swap nor the
	// status change may land.
	p2, q2 := testProgram("prog-2")
	if err := repo.CreateProgram(ctx, p2, q2); err != nil {
		t.Fatalf("create second program: %v", err)
	}
	dup := &program.QuizAttempt{ID: "qa1", QuizID: q2.ID, StudentID: "student-1"}
	p2.Status = program.StatusActive
	err := repo.ActivateProgram(ctx, p2, []*program.Lesson{testLesson("l3", "prog-2", 1)}, dup)
	if err == nil {
		t.Fatal("expected duplicate attempt ID to fail")
	}
	outline, _ = repo.ListLessons(ctx, "prog-2")
	if len(outline) != 0 {
		t.Errorf("outline persisted despite rollback: %d lessons", len(outline))
	}
	got, _ = repo.GetProgram(ctx, "prog-2")
	if got.Status != program.StatusAwaitingDiagnostic {
		t.Errorf("status after rollback = %s", got.Status)
	}
}

func TestChatRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.Chats()
	ctx := context.Background()

	session := &chat.Session{ID: "s1", StudentID: "student-1", ProgramID: "prog-1"}
	if err := repo.CreateSession(ctx, session); err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, err := repo.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got == nil || got.ProgramID != "prog-1" || got.TTSEnabled {
		t.Errorf("session = %+v", got)
	}
	if got.Title != chat.DefaultTitle {
		t.Errorf("title = %q, want default", got.Title)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("updated_at not set")
	}

	got.TTSEnabled = true
	got.Title = "Volcano homework"
	if err := repo.UpdateSession(ctx, got); err != nil {
		t.Fatalf("update session: %v", err)
	}
	got, _ = repo.GetSession(ctx, "s1")
	if !got.TTSEnabled {
		t.Error("tts flag not persisted")
	}
	if got.Title != "Volcano homework" {
		t.Errorf("title = %q", got.Title)
	}
	beforeMessages := got.UpdatedAt

	missing, err := repo.GetSession(ctx, "ghost")
	if err != nil || missing != nil {
		t.Errorf("unknown session = %+v, %v", missing, err)
	}

	texts := []string{"hi", "hello!", "what is lava?"}
	senders := []chat.Sender{chat.SenderStudent, chat.SenderAssistant, chat.SenderStudent}
	for i, text := range texts {
		m := &chat.Message{
			ID:            fmt.Sprintf("m%d", i+1),
			SessionID:     "s1",
			Sender:        senders[i],
			ContentType:   chat.ContentText,
			Text:          text,
			RenderFormats: chat.RenderFormats,
		}
		if err := repo.AppendMessage(ctx, m); err != nil {
			t.Fatalf("append message %d: %v", i, err)
		}
	}

	transcript, err := repo.ListMessages(ctx, "s1")
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(transcript) != 3 {
		t.Fatalf("transcript = %d messages", len(transcript))
	}
	for i := 1; i < len(transcript); i++ {
		if transcript[i].Seq <= transcript[i-1].Seq {
			t.Fatal("transcript sequence not monotonic")
		}
	}
	if transcript[1].Sender != chat.SenderAssistant || transcript[1].Text != "hello!" {
		t.Errorf("transcript[1] = %+v", transcript[1])
	}
	if len(transcript[0].RenderFormats) != 3 {
		t.Errorf("render formats = %v", transcript[0].RenderFormats)
	}

	// Appending messages moves the session's updated_at.
	after, _ := repo.GetSession(ctx, "s1")
	if after.UpdatedAt.Before(beforeMessages) || after.UpdatedAt.Before(transcript[2].CreatedAt) {
		t.Errorf("updated_at = %v, want >= last message %v", after.UpdatedAt, transcript[2].CreatedAt)
	}

	// LatestSession picks the newest session for the student.
	later := &chat.Session{ID: "s2", StudentID: "student-1", CreatedAt: time.Now().Add(time.Hour)}
	if err := repo.CreateSession(ctx, later); err != nil {
		t.Fatalf("create second session: %v", err)
	}
	latest, err := repo.LatestSession(ctx, "student-1")
	if err != nil {
		t.Fatalf("latest session: %v", err)
	}
	if latest == nil || latest.ID != "s2" {
		t.Errorf("latest = %+v, want s2", latest)
	}
	none, err := repo.LatestSession(ctx, "stranger")
	if err != nil || none != nil {
		t.Errorf("latest for unknown student = %+v, %v", none, err)
	}
}

func TestEventRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "quiz", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "chat", InputTokens: 20, OutputTokens: 10, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "chat", InputTokens: 30, Success: false, ErrorMessage: "rate limited"},
	}
	for i, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.ListLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("events = %d", len(all))
	}
	// Newest first.
	if all[0].Purpose != "chat" || all[0].Success {
		t.Errorf("newest = %+v", all[0])
	}

	chats, err := repo.ListLLMRequests(ctx, QueryOpts{Purpose: "chat"})
	if err != nil {
		t.Fatalf("list by purpose: %v", err)
	}
	if len(chats) != 2 {
		t.Errorf("chat events = %d", len(chats))
	}

	limited, _ := repo.ListLLMRequests(ctx, QueryOpts{Limit: 1})
	if len(limited) != 1 {
		t.Errorf("limited = %d", len(limited))
	}

	one, err := repo.GetLLMRequest(ctx, all[0].ID)
	if err != nil || one == nil {
		t.Fatalf("get: %+v, %v", one, err)
	}

	usage, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage = %+v", usage)
	}
	// Sorted by purpose: chat, quiz.
	if usage[0].Purpose != "chat" || usage[0].Requests != 2 || usage[0].Failures != 1 || usage[0].InputTokens != 50 {
		t.Errorf("chat usage = %+v", usage[0])
	}
	if usage[1].Purpose != "quiz" || usage[1].OutputTokens != 50 {
		t.Errorf("quiz usage = %+v", usage[1])
	}
}
