package content

import "github.com/omnitutor/omnitutor/internal/gateway"

// QuizSchema defines the JSON schema for diagnostic quiz generation.
//
// answer_type is a plain string rather than an enum: models frequently emit
// aliases like "short_answer", which the normalize step folds into the
// canonical set instead of failing the whole generation.
var QuizSchema = &gateway.Schema{
	Name:        "diagnostic-quiz",
	Description: "A short kid-friendly diagnostic quiz assessing current understanding of a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"program_title": map[string]any{
				"type":        "string",
				"description": "Playful title for the learning program (3-8 words)",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "One-paragraph overview of what the quiz explores",
			},
			"instructions": map[string]any{
				"type":        "string",
				"description": "Friendly instructions for the learner",
			},
			"questions": map[string]any{
				"type":        "array",
				"description": "At least 4 questions mixing formats",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Question identifier, e.g. q1",
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text, age-appropriate",
						},
						"answer_type": map[string]any{
							"type":        "string",
							"description": "One of: free_form, multiple_choice, multi_select",
						},
						"choices": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Answer choices; empty for free_form questions",
						},
						"hints": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Optional gentle hints",
						},
					},
					"required":             []any{"id", "prompt", "answer_type", "choices", "hints"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"program_title", "overview", "instructions", "questions"},
		"additionalProperties": false,
	},
}

var lessonDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{
			"type":        "string",
			"description": "Lesson title (3-8 words)",
		},
		"content_markdown": map[string]any{
			"type":        "string",
			"description": "Full lesson explanation in Markdown, written for the learner",
		},
		"objectives": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "2-4 learning objectives",
		},
		"method_plan": map[string]any{
			"type":        "array",
			"description": "Ordered teaching activities",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":            map[string]any{"type": "string"},
					"description":      map[string]any{"type": "string"},
					"duration_minutes": map[string]any{"type": "integer"},
				},
				"required":             []any{"title", "description", "duration_minutes"},
				"additionalProperties": false,
			},
		},
		"practice_prompts": map[string]any{
			"type":        "array",
			"description": "Hands-on practice ideas",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt":   map[string]any{"type": "string"},
					"modality": map[string]any{"type": "string"},
				},
				"required":             []any{"prompt", "modality"},
				"additionalProperties": false,
			},
		},
		"assessment": map[string]any{
			"type":        "object",
			"description": "Mastery check for the lesson",
			"properties": map[string]any{
				"prompt": map[string]any{"type": "string"},
				"success_criteria": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"exemplar_answer": map[string]any{"type": "string"},
				"extension_idea":  map[string]any{"type": "string"},
				"follow_up_questions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required":             []any{"prompt", "success_criteria", "exemplar_answer", "extension_idea", "follow_up_questions"},
			"additionalProperties": false,
		},
		"estimated_minutes": map[string]any{
			"type":        "integer",
			"description": "Estimated lesson duration in minutes",
		},
		"resources": map[string]any{
			"type":        "array",
			"description": "Supplementary materials",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type":  map[string]any{"type": "string"},
					"label": map[string]any{"type": "string"},
					"url":   map[string]any{"type": "string"},
				},
				"required":             []any{"type", "label", "url"},
				"additionalProperties": false,
			},
		},
	},
	"required": []any{
		"title", "content_markdown", "objectives", "method_plan",
		"practice_prompts", "assessment", "estimated_minutes", "resources",
	},
	"additionalProperties": false,
}

// EvaluationSchema defines the JSON schema for diagnostic evaluation and
// program outline generation.
var EvaluationSchema = &gateway.Schema{
	Name:        "diagnostic-evaluation",
	Description: "Evaluation of quiz answers plus a personalised learning program outline",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skill_profile": map[string]any{
				"type":        "string",
				"description": "Summary of the learner's current skill level (2-4 sentences)",
			},
			"program_overview": map[string]any{
				"type":        "string",
				"description": "What the program will cover and why",
			},
			"score": map[string]any{
				"type":        "integer",
				"description": "Quiz score, 0-100",
			},
			"analysis": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"strengths": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"improvements": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"strengths", "improvements"},
				"additionalProperties": false,
			},
			"chapters": map[string]any{
				"type":        "array",
				"description": "Program chapters in teaching order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
						"focus": map[string]any{"type": "string"},
						"lessons": map[string]any{
							"type":  "array",
							"items": lessonDefinition,
						},
					},
					"required":             []any{"title", "focus", "lessons"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"skill_profile", "program_overview", "score", "analysis", "chapters"},
		"additionalProperties": false,
	},
}

// LessonDetailSchema defines the JSON schema for hydrating a single
// outline entry that arrived without content.
var LessonDetailSchema = &gateway.Schema{
	Name:        "lesson-detail",
	Description: "Full content for one lesson in an existing program outline",
	Definition:  lessonDefinition,
}

// MasterySchema defines the JSON schema for lesson mastery evaluation.
var MasterySchema = &gateway.Schema{
	Name:        "lesson-mastery",
	Description: "Mastery verdict for a lesson submission with reflections",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stars": map[string]any{
				"type":        "integer",
				"description": "Mastery stars, 0-3. 0 means the learner needs another pass.",
			},
			"score": map[string]any{
				"type":        "integer",
				"description": "Numeric score, 0-100",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "1-2 sentence mastery summary",
			},
			"positive_feedback": map[string]any{
				"type":        "string",
				"description": "Encouraging reflection on what went well",
			},
			"next_focus": map[string]any{
				"type":        "string",
				"description": "Constructive reflection on what to work on next",
			},
		},
		"required":             []any{"stars", "score", "summary", "positive_feedback", "next_focus"},
		"additionalProperties": false,
	},
}
