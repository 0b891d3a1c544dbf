package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/omnitutor/omnitutor/internal/chat"
	"github.com/omnitutor/omnitutor/internal/faults"
	"github.com/omnitutor/omnitutor/internal/gateway"
	"github.com/omnitutor/omnitutor/internal/program"
)

func quizJSON() json.RawMessage {
	return json.RawMessage(`{
		"program_title": "Volcano Explorers",
		"overview": "Find out what you know.",
		"instructions": "Answer everything!",
		"questions": [
			{"id": "q1", "prompt": "What is lava?", "answer_type": "short_answer", "choices": [], "hints": []},
			{"id": "q2", "prompt": "Pick one", "answer_type": "multiple_choice", "choices": ["A", "B"], "hints": ["think hot"]}
		]
	}`)
}

func TestGenerateDiagnosticQuiz(t *testing.T) {
	mock := gateway.NewMockProvider(gateway.MockResponse{Content: quizJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	quiz, err := gen.GenerateDiagnosticQuiz(context.Background(), "volcanoes", []string{"loves dinosaurs"})
	if err != nil {
		t.Fatalf("GenerateDiagnosticQuiz: %v", err)
	}
	if quiz.Title != "Volcano Explorers" || len(quiz.Questions) != 2 {
		t.Errorf("quiz = %+v", quiz)
	}
	if quiz.Questions[0].AnswerType != program.AnswerFreeForm {
		t.Errorf("alias not normalized: %s", quiz.Questions[0].AnswerType)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "diagnostic-quiz" {
		t.Errorf("schema = %+v", req.Schema)
	}
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v", req.Temperature)
	}
}

func TestGenerateDiagnosticQuizProviderFailure(t *testing.T) {
	mock := gateway.NewMockProvider(gateway.MockResponse{
		Err: &gateway.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.GenerateDiagnosticQuiz(context.Background(), "volcanoes", nil)
	if !errors.Is(err, faults.ErrGeneration) {
		t.Fatalf("err = %v, want generation error", err)
	}
	var genErr *faults.GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != "quiz" {
		t.Errorf("stage = %+v", err)
	}
}

func TestEvaluateDiagnostic(t *testing.T) {
	content := json.RawMessage(`{
		"skill_profile": "curious beginner",
		"program_overview": "A volcano journey",
		"score": 70,
		"analysis": {"strengths": ["curious"], "improvements": ["vocabulary"]},
		"chapters": [{
			"title": "Basics", "focus": "foundations",
			"lessons": [{
				"title": "What is a volcano?",
				"content_markdown": "# Volcanoes",
				"objectives": [], "method_plan": [], "practice_prompts": [],
				"assessment": {"prompt": "", "success_criteria": [], "exemplar_answer": "", "extension_idea": "", "follow_up_questions": []},
				"estimated_minutes": 10, "resources": []
			}]
		}]
	}`)
	mock := gateway.NewMockProvider(gateway.MockResponse{Content: content})
	gen := NewGenerator(mock, DefaultConfig())

	ev, err := gen.EvaluateDiagnostic(context.Background(), program.EvaluateInput{
		Topic: "volcanoes",
		Quiz: &program.Quiz{Questions: []program.QuizQuestion{
			{ID: "q1", Prompt: "What is lava?", AnswerType: program.AnswerFreeForm},
		}},
		Answers: map[string]any{"q1": "hot rock"},
	})
	if err != nil {
		t.Fatalf("EvaluateDiagnostic: %v", err)
	}
	if ev.SkillProfile != "curious beginner" || ev.Score != 70 {
		t.Errorf("evaluation = %+v", ev)
	}
	if len(ev.Chapters) != 1 || len(ev.Chapters[0].Lessons) != 1 {
		t.Fatalf("chapters = %+v", ev.Chapters)
	}
	// Defaults filled during normalization.
	lesson := ev.Chapters[0].Lessons[0]
	if len(lesson.Objectives) == 0 || lesson.Assessment.Prompt == "" {
		t.Errorf("lesson defaults missing: %+v", lesson)
	}

	if mock.Calls[0].Temperature != 0.4 {
		t.Errorf("temperature = %v", mock.Calls[0].Temperature)
	}
}

func TestGenerateLessonDetailEmptyContent(t *testing.T) {
	content := json.RawMessage(`{
		"title": "Magma", "content_markdown": "  ",
		"objectives": [], "method_plan": [], "practice_prompts": [],
		"assessment": {"prompt": "", "success_criteria": [], "exemplar_answer": "", "extension_idea": "", "follow_up_questions": []},
		"estimated_minutes": 0, "resources": []
	}`)
	mock := gateway.NewMockProvider(gateway.MockResponse{Content: content})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.GenerateLessonDetail(context.Background(), program.LessonDetailInput{
		Topic: "volcanoes", Title: "Magma", OrderIndex: 2,
	})
	if !errors.Is(err, faults.ErrGeneration) {
		t.Fatalf("err = %v, want generation error", err)
	}
}

func TestEvaluateMastery(t *testing.T) {
	content := json.RawMessage(`{
		"stars": 2, "score": 85,
		"summary": "Good grasp of the basics.",
		"positive_feedback": "Great volcano diagram!",
		"next_focus": "Practice naming the layers."
	}`)
	mock := gateway.NewMockProvider(gateway.MockResponse{Content: content})
	gen := NewGenerator(mock, DefaultConfig())

	m, err := gen.EvaluateMastery(context.Background(), program.MasteryInput{
		Lesson:  &program.Lesson{Title: "Magma", ContentMarkdown: "# Magma"},
		Answers: map[string]any{"assessment": "Magma is molten rock."},
	})
	if err != nil {
		t.Fatalf("EvaluateMastery: %v", err)
	}
	if m.Stars != 2 || m.ReflectionPositive != "Great volcano diagram!" {
		t.Errorf("mastery = %+v", m)
	}
	if mock.Calls[0].Temperature != 0.6 {
		t.Errorf("temperature = %v", mock.Calls[0].Temperature)
	}
}

func TestReply(t *testing.T) {
	t.Run("maps transcript and system prompt", func(t *testing.T) {
		mock := gateway.NewMockProvider(gateway.MockResponse{Content: json.RawMessage("Hello there!")})
		gen := NewGenerator(mock, DefaultConfig())

		reply, err := gen.Reply(context.Background(), chat.TurnContext{
			Grade:          "4",
			SkillProfile:   "curious beginner",
			ProgramSummary: "Volcano journey",
			ActiveLesson:   "Magma Chambers",
			Turns: []chat.TranscriptTurn{
				{Sender: chat.SenderStudent, Text: "Hi!"},
				{Sender: chat.SenderAssistant, Text: "Hello!"},
				{Sender: chat.SenderStudent, Text: "", ImageURL: "https://example.com/v.png"},
			},
		})
		if err != nil {
			t.Fatalf("Reply: %v", err)
		}
		if reply != "Hello there!" {
			t.Errorf("reply = %q", reply)
		}

		req := mock.Calls[0]
		if req.Schema != nil {
			t.Error("chat reply should be free text")
		}
		if req.Temperature != 0.8 {
			t.Errorf("temperature = %v", req.Temperature)
		}
		if len(req.Messages) != 3 {
			t.Fatalf("messages = %d", len(req.Messages))
		}
		if req.Messages[1].Role != gateway.RoleAssistant {
			t.Errorf("assistant turn role = %s", req.Messages[1].Role)
		}
		if req.Messages[2].ImageURL != "https://example.com/v.png" {
			t.Errorf("image turn url = %q", req.Messages[2].ImageURL)
		}
		for _, want := range []string{"grade 4", "curious beginner", "Volcano journey", "Magma Chambers"} {
			if !strings.Contains(req.System, want) {
				t.Errorf("system prompt missing %q:\n%s", want, req.System)
			}
		}
	})

	t.Run("trims history to the configured window", func(t *testing.T) {
		mock := gateway.NewMockProvider(gateway.MockResponse{Content: json.RawMessage(`"ok"`)})
		cfg := DefaultConfig()
		cfg.MaxChatHistory = 4
		gen := NewGenerator(mock, cfg)

		var turns []chat.TranscriptTurn
		for i := 0; i < 10; i++ {
			turns = append(turns, chat.TranscriptTurn{Sender: chat.SenderStudent, Text: fmt.Sprintf("msg %d", i)})
		}
		if _, err := gen.Reply(context.Background(), chat.TurnContext{Turns: turns}); err != nil {
			t.Fatalf("Reply: %v", err)
		}
		req := mock.Calls[0]
		if len(req.Messages) != 4 {
			t.Fatalf("messages = %d, want 4", len(req.Messages))
		}
		if req.Messages[0].Content != "msg 6" {
			t.Errorf("first kept turn = %q", req.Messages[0].Content)
		}
	})

	t.Run("unwraps JSON-quoted replies", func(t *testing.T) {
		mock := gateway.NewMockProvider(gateway.MockResponse{Content: json.RawMessage(`"Nice work!"`)})
		gen := NewGenerator(mock, DefaultConfig())

		reply, err := gen.Reply(context.Background(), chat.TurnContext{
			Turns: []chat.TranscriptTurn{{Sender: chat.SenderStudent, Text: "hi"}},
		})
		if err != nil {
			t.Fatalf("Reply: %v", err)
		}
		if reply != "Nice work!" {
			t.Errorf("reply = %q", reply)
		}
	})

	t.Run("empty reply is a generation error", func(t *testing.T) {
		mock := gateway.NewMockProvider(gateway.MockResponse{Content: json.RawMessage(`""`)})
		gen := NewGenerator(mock, DefaultConfig())

		_, err := gen.Reply(context.Background(), chat.TurnContext{
			Turns: []chat.TranscriptTurn{{Sender: chat.SenderStudent, Text: "hi"}},
		})
		if !errors.Is(err, faults.ErrGeneration) {
			t.Fatalf("err = %v, want generation error", err)
		}
	})
}
