package schema

// JSON column payloads shared by the entity schemas. Kept in this package
// so the generated code can reference them directly.

// QuizQuestionData is one diagnostic question as stored on the quiz row.
type QuizQuestionData struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	AnswerType string   `json:"answer_type"`
	Choices    []string `json:"choices,omitempty"`
	Hints      []string `json:"hints,omitempty"`
}

// MethodStepData is one teaching activity in a lesson's method plan.
type MethodStepData struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

// PracticePromptData is one practice activity suggestion.
type PracticePromptData struct {
	Prompt   string `json:"prompt"`
	Modality string `json:"modality,omitempty"`
}

// AssessmentData is the mastery check stored on a lesson row.
type AssessmentData struct {
	Prompt            string   `json:"prompt"`
	SuccessCriteria   []string `json:"success_criteria,omitempty"`
	ExemplarAnswer    string   `json:"exemplar_answer,omitempty"`
	ExtensionIdea     string   `json:"extension_idea,omitempty"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`
}

// ResourceData is one supplementary material reference.
type ResourceData struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}
