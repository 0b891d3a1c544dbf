package content

import (
	"testing"

	"github.com/omnitutor/omnitutor/internal/program"
)

func TestNormalizeAnswerType(t *testing.T) {
	tests := []struct {
		raw  string
		want program.AnswerType
	}{
		{"free_form", program.AnswerFreeForm},
		{"short_answer", program.AnswerFreeForm},
		{"TEXT", program.AnswerFreeForm},
		{"open_ended", program.AnswerFreeForm},
		{"multiple_choice", program.AnswerMultipleChoice},
		{"single_choice", program.AnswerMultipleChoice},
		{"single-select", program.AnswerMultipleChoice},
		{"multi_select", program.AnswerMultiSelect},
		{"checkbox", program.AnswerMultiSelect},
		{"essay", program.AnswerFreeForm}, // unknown defaults to free form
		{"", program.AnswerFreeForm},
	}

	for _, tt := range tests {
		if got := normalizeAnswerType(tt.raw); got != tt.want {
			t.Errorf("normalizeAnswerType(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeQuiz(t *testing.T) {
	payload := &quizPayload{
		ProgramTitle: " Volcano Explorers ",
		Overview:     "All about volcanoes.",
		Instructions: "Do your best!",
		Questions: []questionPayload{
			{ID: "q1", Prompt: "Pick the hot one", AnswerType: "single_choice", Choices: []string{"Lava", "Ice"}},
			{ID: "", Prompt: "Describe a volcano", AnswerType: "short_answer"},
			{ID: "q1", Prompt: "Duplicate id gets replaced", AnswerType: "text"},
			{ID: "q4", Prompt: "Choices missing degrades", AnswerType: "multiple_choice"},
			{ID: "q5", Prompt: "   ", AnswerType: "text"}, // dropped: no prompt
		},
	}

	quiz := normalizeQuiz(payload)

	if quiz.Title != "Volcano Explorers" {
		t.Errorf("title = %q", quiz.Title)
	}
	if len(quiz.Questions) != 4 {
		t.Fatalf("questions = %d, want 4", len(quiz.Questions))
	}

	q := quiz.Questions[0]
	if q.AnswerType != program.AnswerMultipleChoice || len(q.Choices) != 2 {
		t.Errorf("q1 = %+v", q)
	}

	if quiz.Questions[1].ID != "q2" {
		t.Errorf("missing id not assigned: %q", quiz.Questions[1].ID)
	}
	if quiz.Questions[2].ID != "q3" {
		t.Errorf("duplicate id not replaced: %q", quiz.Questions[2].ID)
	}

	degraded := quiz.Questions[3]
	if degraded.AnswerType != program.AnswerFreeForm {
		t.Errorf("choice-less multiple_choice = %s, want free_form", degraded.AnswerType)
	}
}

func TestNormalizeLessonDefaults(t *testing.T) {
	draft := normalizeLesson(lessonPayload{ContentMarkdown: "# Hi"}, 3, "Basics")

	if draft.Title != "Lesson 3" {
		t.Errorf("title = %q", draft.Title)
	}
	if draft.Chapter != "Basics" {
		t.Errorf("chapter = %q", draft.Chapter)
	}
	if len(draft.Objectives) == 0 {
		t.Error("objectives default missing")
	}
	if len(draft.MethodPlan) == 0 {
		t.Error("method plan default missing")
	}
	if len(draft.PracticePrompts) == 0 {
		t.Error("practice prompts default missing")
	}
	if draft.Assessment.Prompt == "" || len(draft.Assessment.SuccessCriteria) == 0 {
		t.Errorf("assessment default missing: %+v", draft.Assessment)
	}
}

func TestNormalizeLessonKeepsProvidedContent(t *testing.T) {
	draft := normalizeLesson(lessonPayload{
		Title:           "Magma Chambers",
		ContentMarkdown: "# Magma",
		Objectives:      []string{"Know magma", " "},
		MethodPlan:      []methodStepPayload{{Title: "", Description: "Watch a clip", DurationMinutes: 5}},
		PracticePrompts: []practicePayload{{Prompt: "Draw a volcano", Modality: "drawing"}},
		Assessment:      assessmentPayload{Prompt: "Explain magma", SuccessCriteria: []string{"Mentions heat"}},
		Resources:       []resourcePayload{{URL: "https://example.com"}},
	}, 1, "Deep Earth")

	if len(draft.Objectives) != 1 {
		t.Errorf("objectives = %v", draft.Objectives)
	}
	if draft.MethodPlan[0].Title != "Activity 1" || draft.MethodPlan[0].DurationMinutes != 5 {
		t.Errorf("method step = %+v", draft.MethodPlan[0])
	}
	if draft.Assessment.Prompt != "Explain magma" {
		t.Errorf("assessment = %+v", draft.Assessment)
	}
	r := draft.Resources[0]
	if r.Type != "link" || r.Label != "Resource" {
		t.Errorf("resource defaults = %+v", r)
	}
}

func TestNormalizeEvaluation(t *testing.T) {
	payload := &evaluationPayload{
		SkillProfile:    "beginner",
		ProgramOverview: "overview",
		Score:           130,
		Analysis:        analysisPayload{Strengths: []string{"curious"}},
		Chapters: []chapterPayload{
			{Title: "Empty chapter"},
			{Title: "Basics", Lessons: []lessonPayload{
				{Title: "One", ContentMarkdown: "a"},
				{Title: "Two", ContentMarkdown: "b"},
			}},
		},
	}

	ev := normalizeEvaluation(payload)

	if ev.Score != 100 {
		t.Errorf("score = %d, want clamped 100", ev.Score)
	}
	if len(ev.Chapters) != 1 {
		t.Fatalf("chapters = %d, want 1 (empty dropped)", len(ev.Chapters))
	}
	if len(ev.Chapters[0].Lessons) != 2 {
		t.Errorf("lessons = %d", len(ev.Chapters[0].Lessons))
	}
}
