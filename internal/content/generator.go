package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/omnitutor/omnitutor/internal/chat"
	"github.com/omnitutor/omnitutor/internal/faults"
	"github.com/omnitutor/omnitutor/internal/gateway"
	"github.com/omnitutor/omnitutor/internal/program"
)

// Config tunes the generation calls. Temperatures differ per operation:
// grading runs cooler than quiz design, conversation runs warmest.
type Config struct {
	QuizTemperature     float64
	EvaluateTemperature float64
	LessonTemperature   float64
	MasteryTemperature  float64
	ChatTemperature     float64

	QuizMaxTokens     int
	EvaluateMaxTokens int
	LessonMaxTokens   int
	MasteryMaxTokens  int
	ChatMaxTokens     int

	// MaxChatHistory caps how many transcript turns are sent per reply.
	MaxChatHistory int
}

// DefaultConfig returns the shipped generation tuning.
func DefaultConfig() Config {
	return Config{
		QuizTemperature:     0.7,
		EvaluateTemperature: 0.4,
		LessonTemperature:   0.5,
		MasteryTemperature:  0.6,
		ChatTemperature:     0.8,

		QuizMaxTokens:     2048,
		EvaluateMaxTokens: 8192,
		LessonMaxTokens:   4096,
		MasteryMaxTokens:  1024,
		ChatMaxTokens:     1024,

		MaxChatHistory: 20,
	}
}

// Generator implements program.Generator and chat.Responder over a
// gateway provider.
type Generator struct {
	provider gateway.Provider
	cfg      Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider gateway.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

var (
	_ program.Generator = (*Generator)(nil)
	_ chat.Responder    = (*Generator)(nil)
)

// GenerateDiagnosticQuiz asks the model for a diagnostic quiz and
// normalizes it into domain shape.
func (g *Generator) GenerateDiagnosticQuiz(ctx context.Context, topic string, traits []string) (*program.GeneratedQuiz, error) {
	ctx = gateway.WithPurpose(ctx, gateway.PurposeQuiz)

	resp, err := g.provider.Generate(ctx, gateway.Request{
		System: quizSystemPrompt,
		Messages: []gateway.Message{
			{Role: gateway.RoleUser, Content: buildQuizUserMessage(topic, traits)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.cfg.QuizMaxTokens,
		Temperature: g.cfg.QuizTemperature,
	})
	if err != nil {
		return nil, &faults.GenerationError{Stage: "quiz", Err: err}
	}

	payload, err := decode[quizPayload](resp.Content)
	if err != nil {
		return nil, &faults.GenerationError{Stage: "quiz", Err: fmt.Errorf("decode payload: %w", err)}
	}
	return normalizeQuiz(payload), nil
}

// EvaluateDiagnostic grades the quiz answers and returns the evaluation
// with the program outline.
func (g *Generator) EvaluateDiagnostic(ctx context.Context, in program.EvaluateInput) (*program.Evaluation, error) {
	ctx = gateway.WithPurpose(ctx, gateway.PurposeEvaluate)

	resp, err := g.provider.Generate(ctx, gateway.Request{
		System: evaluationSystemPrompt,
		Messages: []gateway.Message{
			{Role: gateway.RoleUser, Content: buildEvaluationUserMessage(in)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   g.cfg.EvaluateMaxTokens,
		Temperature: g.cfg.EvaluateTemperature,
	})
	if err != nil {
		return nil, &faults.GenerationError{Stage: "evaluate", Err: err}
	}

	payload, err := decode[evaluationPayload](resp.Content)
	if err != nil {
		return nil, &faults.GenerationError{Stage: "evaluate", Err: fmt.Errorf("decode payload: %w", err)}
	}
	return normalizeEvaluation(payload), nil
}

// GenerateLessonDetail hydrates one outline entry with full content.
func (g *Generator) GenerateLessonDetail(ctx context.Context, in program.LessonDetailInput) (*program.LessonDraft, error) {
	ctx = gateway.WithPurpose(ctx, gateway.PurposeLesson)

	resp, err := g.provider.Generate(ctx, gateway.Request{
		System: lessonDetailSystemPrompt,
		Messages: []gateway.Message{
			{Role: gateway.RoleUser, Content: buildLessonDetailUserMessage(in)},
		},
		Schema:      LessonDetailSchema,
		MaxTokens:   g.cfg.LessonMaxTokens,
		Temperature: g.cfg.LessonTemperature,
	})
	if err != nil {
		return nil, &faults.GenerationError{Stage: "lesson", Err: err}
	}

	payload, err := decode[lessonPayload](resp.Content)
	if err != nil {
		return nil, &faults.GenerationError{Stage: "lesson", Err: fmt.Errorf("decode payload: %w", err)}
	}
	draft := normalizeLesson(*payload, in.OrderIndex, in.Chapter)
	if draft.ContentMarkdown == "" {
		return nil, &faults.GenerationError{Stage: "lesson", Err: fmt.Errorf("empty lesson content")}
	}
	return &draft, nil
}

// EvaluateMastery judges one lesson submission.
func (g *Generator) EvaluateMastery(ctx context.Context, in program.MasteryInput) (*program.MasteryResult, error) {
	ctx = gateway.WithPurpose(ctx, gateway.PurposeMastery)

	resp, err := g.provider.Generate(ctx, gateway.Request{
		System: masterySystemPrompt,
		Messages: []gateway.Message{
			{Role: gateway.RoleUser, Content: buildMasteryUserMessage(in)},
		},
		Schema:      MasterySchema,
		MaxTokens:   g.cfg.MasteryMaxTokens,
		Temperature: g.cfg.MasteryTemperature,
	})
	if err != nil {
		return nil, &faults.GenerationError{Stage: "mastery", Err: err}
	}

	payload, err := decode[masteryPayload](resp.Content)
	if err != nil {
		return nil, &faults.GenerationError{Stage: "mastery", Err: fmt.Errorf("decode payload: %w", err)}
	}
	return normalizeMastery(payload), nil
}

// Reply generates the assistant's conversational reply for one chat turn.
// Free text, no schema: the reply is Markdown the client renders directly.
func (g *Generator) Reply(ctx context.Context, tc chat.TurnContext) (string, error) {
	ctx = gateway.WithPurpose(ctx, gateway.PurposeChat)

	turns := tc.Turns
	if g.cfg.MaxChatHistory > 0 && len(turns) > g.cfg.MaxChatHistory {
		turns = turns[len(turns)-g.cfg.MaxChatHistory:]
	}

	messages := make([]gateway.Message, 0, len(turns))
	for _, t := range turns {
		role := gateway.RoleUser
		if t.Sender == chat.SenderAssistant {
			role = gateway.RoleAssistant
		}
		messages = append(messages, gateway.Message{Role: role, Content: t.Text, ImageURL: t.ImageURL})
	}

	resp, err := g.provider.Generate(ctx, gateway.Request{
		System: buildChatSystemPrompt(ChatProfile{
			Grade:        tc.Grade,
			SkillProfile: tc.SkillProfile,
			Summary:      tc.ProgramSummary,
			ActiveLesson: tc.ActiveLesson,
		}),
		Messages:    messages,
		MaxTokens:   g.cfg.ChatMaxTokens,
		Temperature: g.cfg.ChatTemperature,
	})
	if err != nil {
		return "", &faults.GenerationError{Stage: "chat", Err: err}
	}

	reply := strings.TrimSpace(string(unquote(resp.Content)))
	if reply == "" {
		return "", &faults.GenerationError{Stage: "chat", Err: fmt.Errorf("empty reply")}
	}
	return reply, nil
}

// unquote strips JSON string quoting when a provider wraps free text.
func unquote(raw json.RawMessage) []byte {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []byte(s)
	}
	return raw
}
