// Package content turns gateway providers into the typed generation
// operations the tutoring services need: diagnostic quizzes, evaluation
// into a lesson outline, mastery verdicts, and conversational replies.
// Model payloads are schema-constrained at the gateway and normalized
// here before they reach domain types.
package content

import "encoding/json"

// Wire payloads. Field names follow the schemas in schema.go; the
// normalize step maps them onto domain types with defaults filled in.

type quizPayload struct {
	ProgramTitle string            `json:"program_title"`
	Overview     string            `json:"overview"`
	Instructions string            `json:"instructions"`
	Questions    []questionPayload `json:"questions"`
}

type questionPayload struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	AnswerType string   `json:"answer_type"`
	Choices    []string `json:"choices"`
	Hints      []string `json:"hints"`
}

type evaluationPayload struct {
	SkillProfile    string           `json:"skill_profile"`
	ProgramOverview string           `json:"program_overview"`
	Score           int              `json:"score"`
	Analysis        analysisPayload  `json:"analysis"`
	Chapters        []chapterPayload `json:"chapters"`
}

type analysisPayload struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

type chapterPayload struct {
	Title   string          `json:"title"`
	Focus   string          `json:"focus"`
	Lessons []lessonPayload `json:"lessons"`
}

type lessonPayload struct {
	Title            string              `json:"title"`
	ContentMarkdown  string              `json:"content_markdown"`
	Objectives       []string            `json:"objectives"`
	MethodPlan       []methodStepPayload `json:"method_plan"`
	PracticePrompts  []practicePayload   `json:"practice_prompts"`
	Assessment       assessmentPayload   `json:"assessment"`
	EstimatedMinutes int                 `json:"estimated_minutes"`
	Resources        []resourcePayload   `json:"resources"`
}

type methodStepPayload struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
}

type practicePayload struct {
	Prompt   string `json:"prompt"`
	Modality string `json:"modality"`
}

type assessmentPayload struct {
	Prompt            string   `json:"prompt"`
	SuccessCriteria   []string `json:"success_criteria"`
	ExemplarAnswer    string   `json:"exemplar_answer"`
	ExtensionIdea     string   `json:"extension_idea"`
	FollowUpQuestions []string `json:"follow_up_questions"`
}

type resourcePayload struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type masteryPayload struct {
	Stars            int    `json:"stars"`
	Score            int    `json:"score"`
	Summary          string `json:"summary"`
	PositiveFeedback string `json:"positive_feedback"`
	NextFocus        string `json:"next_focus"`
}

func decode[T any](raw json.RawMessage) (*T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
