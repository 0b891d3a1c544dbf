// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/omnitutor/omnitutor/ent/chatmessage"
	"github.com/omnitutor/omnitutor/ent/chatsession"
	"github.com/omnitutor/omnitutor/ent/diagnosticquiz"
	"github.com/omnitutor/omnitutor/ent/learningprogram"
	"github.com/omnitutor/omnitutor/ent/lesson"
	"github.com/omnitutor/omnitutor/ent/lessonattempt"
	"github.com/omnitutor/omnitutor/ent/llmrequestevent"
	"github.com/omnitutor/omnitutor/ent/quizattempt"
	"github.com/omnitutor/omnitutor/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageMixin := schema.ChatMessage{}.Mixin()
	chatmessageMixinFields0 := chatmessageMixin[0].Fields()
	_ = chatmessageMixinFields0
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescRecordedAt is the schema descriptor for recorded_at field.
	chatmessageDescRecordedAt := chatmessageMixinFields0[1].Descriptor()
	// chatmessage.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	chatmessage.DefaultRecordedAt = chatmessageDescRecordedAt.Default.(func() time.Time)
	// chatmessageDescText is the schema descriptor for text field.
	chatmessageDescText := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultText holds the default value on creation for the text field.
	chatmessage.DefaultText = chatmessageDescText.Default.(string)
	// chatmessageDescImageURL is the schema descriptor for image_url field.
	chatmessageDescImageURL := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultImageURL holds the default value on creation for the image_url field.
	chatmessage.DefaultImageURL = chatmessageDescImageURL.Default.(string)
	// chatmessageDescAudioPath is the schema descriptor for audio_path field.
	chatmessageDescAudioPath := chatmessageFields[6].Descriptor()
	// chatmessage.DefaultAudioPath holds the default value on creation for the audio_path field.
	chatmessage.DefaultAudioPath = chatmessageDescAudioPath.Default.(string)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescProgramID is the schema descriptor for program_id field.
	chatsessionDescProgramID := chatsessionFields[2].Descriptor()
	// chatsession.DefaultProgramID holds the default value on creation for the program_id field.
	chatsession.DefaultProgramID = chatsessionDescProgramID.Default.(string)
	// chatsessionDescTitle is the schema descriptor for title field.
	chatsessionDescTitle := chatsessionFields[3].Descriptor()
	// chatsession.DefaultTitle holds the default value on creation for the title field.
	chatsession.DefaultTitle = chatsessionDescTitle.Default.(string)
	// chatsessionDescTtsEnabled is the schema descriptor for tts_enabled field.
	chatsessionDescTtsEnabled := chatsessionFields[4].Descriptor()
	// chatsession.DefaultTtsEnabled holds the default value on creation for the tts_enabled field.
	chatsession.DefaultTtsEnabled = chatsessionDescTtsEnabled.Default.(bool)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[5].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[6].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	// chatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsession.UpdateDefaultUpdatedAt = chatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	diagnosticquizFields := schema.DiagnosticQuiz{}.Fields()
	_ = diagnosticquizFields
	// diagnosticquizDescInstructions is the schema descriptor for instructions field.
	diagnosticquizDescInstructions := diagnosticquizFields[2].Descriptor()
	// diagnosticquiz.DefaultInstructions holds the default value on creation for the instructions field.
	diagnosticquiz.DefaultInstructions = diagnosticquizDescInstructions.Default.(string)
	// diagnosticquizDescCreatedAt is the schema descriptor for created_at field.
	diagnosticquizDescCreatedAt := diagnosticquizFields[4].Descriptor()
	// diagnosticquiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	diagnosticquiz.DefaultCreatedAt = diagnosticquizDescCreatedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescRecordedAt is the schema descriptor for recorded_at field.
	llmrequesteventDescRecordedAt := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	llmrequestevent.DefaultRecordedAt = llmrequesteventDescRecordedAt.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learningprogramFields := schema.LearningProgram{}.Fields()
	_ = learningprogramFields
	// learningprogramDescSummary is the schema descriptor for summary field.
	learningprogramDescSummary := learningprogramFields[4].Descriptor()
	// learningprogram.DefaultSummary holds the default value on creation for the summary field.
	learningprogram.DefaultSummary = learningprogramDescSummary.Default.(string)
	// learningprogramDescSkillProfile is the schema descriptor for skill_profile field.
	learningprogramDescSkillProfile := learningprogramFields[6].Descriptor()
	// learningprogram.DefaultSkillProfile holds the default value on creation for the skill_profile field.
	learningprogram.DefaultSkillProfile = learningprogramDescSkillProfile.Default.(string)
	// learningprogramDescCreatedAt is the schema descriptor for created_at field.
	learningprogramDescCreatedAt := learningprogramFields[7].Descriptor()
	// learningprogram.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningprogram.DefaultCreatedAt = learningprogramDescCreatedAt.Default.(func() time.Time)
	// learningprogramDescUpdatedAt is the schema descriptor for updated_at field.
	learningprogramDescUpdatedAt := learningprogramFields[8].Descriptor()
	// learningprogram.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learningprogram.DefaultUpdatedAt = learningprogramDescUpdatedAt.Default.(func() time.Time)
	// learningprogram.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learningprogram.UpdateDefaultUpdatedAt = learningprogramDescUpdatedAt.UpdateDefault.(func() time.Time)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescChapter is the schema descriptor for chapter field.
	lessonDescChapter := lessonFields[2].Descriptor()
	// lesson.DefaultChapter holds the default value on creation for the chapter field.
	lesson.DefaultChapter = lessonDescChapter.Default.(string)
	// lessonDescEstimatedMinutes is the schema descriptor for estimated_minutes field.
	lessonDescEstimatedMinutes := lessonFields[10].Descriptor()
	// lesson.DefaultEstimatedMinutes holds the default value on creation for the estimated_minutes field.
	lesson.DefaultEstimatedMinutes = lessonDescEstimatedMinutes.Default.(int)
	// lessonDescCreatedAt is the schema descriptor for created_at field.
	lessonDescCreatedAt := lessonFields[12].Descriptor()
	// lesson.DefaultCreatedAt holds the default value on creation for the created_at field.
	lesson.DefaultCreatedAt = lessonDescCreatedAt.Default.(func() time.Time)
	lessonattemptMixin := schema.LessonAttempt{}.Mixin()
	lessonattemptMixinFields0 := lessonattemptMixin[0].Fields()
	_ = lessonattemptMixinFields0
	lessonattemptFields := schema.LessonAttempt{}.Fields()
	_ = lessonattemptFields
	// lessonattemptDescRecordedAt is the schema descriptor for recorded_at field.
	lessonattemptDescRecordedAt := lessonattemptMixinFields0[1].Descriptor()
	// lessonattempt.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	lessonattempt.DefaultRecordedAt = lessonattemptDescRecordedAt.Default.(func() time.Time)
	// lessonattemptDescScore is the schema descriptor for score field.
	lessonattemptDescScore := lessonattemptFields[5].Descriptor()
	// lessonattempt.DefaultScore holds the default value on creation for the score field.
	lessonattempt.DefaultScore = lessonattemptDescScore.Default.(int)
	// lessonattemptDescStars is the schema descriptor for stars field.
	lessonattemptDescStars := lessonattemptFields[6].Descriptor()
	// lessonattempt.DefaultStars holds the default value on creation for the stars field.
	lessonattempt.DefaultStars = lessonattemptDescStars.Default.(int)
	// lessonattemptDescMasterySummary is the schema descriptor for mastery_summary field.
	lessonattemptDescMasterySummary := lessonattemptFields[7].Descriptor()
	// lessonattempt.DefaultMasterySummary holds the default value on creation for the mastery_summary field.
	lessonattempt.DefaultMasterySummary = lessonattemptDescMasterySummary.Default.(string)
	// lessonattemptDescReflectionPositive is the schema descriptor for reflection_positive field.
	lessonattemptDescReflectionPositive := lessonattemptFields[8].Descriptor()
	// lessonattempt.DefaultReflectionPositive holds the default value on creation for the reflection_positive field.
	lessonattempt.DefaultReflectionPositive = lessonattemptDescReflectionPositive.Default.(string)
	// lessonattemptDescReflectionNegative is the schema descriptor for reflection_negative field.
	lessonattemptDescReflectionNegative := lessonattemptFields[9].Descriptor()
	// lessonattempt.DefaultReflectionNegative holds the default value on creation for the reflection_negative field.
	lessonattempt.DefaultReflectionNegative = lessonattemptDescReflectionNegative.Default.(string)
	quizattemptMixin := schema.QuizAttempt{}.Mixin()
	quizattemptMixinFields0 := quizattemptMixin[0].Fields()
	_ = quizattemptMixinFields0
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescRecordedAt is the schema descriptor for recorded_at field.
	quizattemptDescRecordedAt := quizattemptMixinFields0[1].Descriptor()
	// quizattempt.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	quizattempt.DefaultRecordedAt = quizattemptDescRecordedAt.Default.(func() time.Time)
	// quizattemptDescScore is the schema descriptor for score field.
	quizattemptDescScore := quizattemptFields[4].Descriptor()
	// quizattempt.DefaultScore holds the default value on creation for the score field.
	quizattempt.DefaultScore = quizattemptDescScore.Default.(int)
}
