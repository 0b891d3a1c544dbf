// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "sender", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "image_url", Type: field.TypeString, Default: ""},
		{Name: "audio_path", Type: field.TypeString, Default: ""},
		{Name: "render_formats", Type: field.TypeJSON, Nullable: true},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_sequence",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1]},
			},
			{
				Name:    "chatmessage_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[2]},
			},
			{
				Name:    "chatmessage_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[3]},
			},
			{
				Name:    "chatmessage_session_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[3], ChatMessagesColumns[1]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "program_id", Type: field.TypeString, Default: ""},
		{Name: "title", Type: field.TypeString, Default: "Study chat"},
		{Name: "tts_enabled", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_student_id",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1]},
			},
		},
	}
	// DiagnosticQuizsColumns holds the columns for the "diagnostic_quizs" table.
	DiagnosticQuizsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "program_id", Type: field.TypeString, Unique: true},
		{Name: "instructions", Type: field.TypeString, Default: ""},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DiagnosticQuizsTable holds the schema information for the "diagnostic_quizs" table.
	DiagnosticQuizsTable = &schema.Table{
		Name:       "diagnostic_quizs",
		Columns:    DiagnosticQuizsColumns,
		PrimaryKey: []*schema.Column{DiagnosticQuizsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diagnosticquiz_program_id",
				Unique:  false,
				Columns: []*schema.Column{DiagnosticQuizsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningProgramsColumns holds the columns for the "learning_programs" table.
	LearningProgramsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "topic_prompt", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString},
		{Name: "skill_profile", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearningProgramsTable holds the schema information for the "learning_programs" table.
	LearningProgramsTable = &schema.Table{
		Name:       "learning_programs",
		Columns:    LearningProgramsColumns,
		PrimaryKey: []*schema.Column{LearningProgramsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningprogram_student_id",
				Unique:  false,
				Columns: []*schema.Column{LearningProgramsColumns[1]},
			},
			{
				Name:    "learningprogram_status",
				Unique:  false,
				Columns: []*schema.Column{LearningProgramsColumns[5]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "program_id", Type: field.TypeString},
		{Name: "chapter", Type: field.TypeString, Default: ""},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "content_markdown", Type: field.TypeString, Size: 2147483647},
		{Name: "objectives", Type: field.TypeJSON, Nullable: true},
		{Name: "method_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "practice_prompts", Type: field.TypeJSON, Nullable: true},
		{Name: "assessment", Type: field.TypeJSON},
		{Name: "estimated_minutes", Type: field.TypeInt, Default: 0},
		{Name: "resources", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_program_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1]},
			},
			{
				Name:    "lesson_program_id_order_index",
				Unique:  true,
				Columns: []*schema.Column{LessonsColumns[1], LessonsColumns[3]},
			},
		},
	}
	// LessonAttemptsColumns holds the columns for the "lesson_attempts" table.
	LessonAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "stars", Type: field.TypeInt, Default: 0},
		{Name: "mastery_summary", Type: field.TypeString, Default: ""},
		{Name: "reflection_positive", Type: field.TypeString, Default: ""},
		{Name: "reflection_negative", Type: field.TypeString, Default: ""},
	}
	// LessonAttemptsTable holds the schema information for the "lesson_attempts" table.
	LessonAttemptsTable = &schema.Table{
		Name:       "lesson_attempts",
		Columns:    LessonAttemptsColumns,
		PrimaryKey: []*schema.Column{LessonAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonattempt_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonAttemptsColumns[1]},
			},
			{
				Name:    "lessonattempt_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{LessonAttemptsColumns[2]},
			},
			{
				Name:    "lessonattempt_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonAttemptsColumns[3]},
			},
			{
				Name:    "lessonattempt_student_id",
				Unique:  false,
				Columns: []*schema.Column{LessonAttemptsColumns[4]},
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString},
		{Name: "responses", Type: field.TypeJSON},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "analysis", Type: field.TypeJSON, Nullable: true},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[1]},
			},
			{
				Name:    "quizattempt_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[2]},
			},
			{
				Name:    "quizattempt_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[3]},
			},
			{
				Name:    "quizattempt_student_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		ChatSessionsTable,
		DiagnosticQuizsTable,
		LlmRequestEventsTable,
		LearningProgramsTable,
		LessonsTable,
		LessonAttemptsTable,
		QuizAttemptsTable,
	}
)

func init() {
}
