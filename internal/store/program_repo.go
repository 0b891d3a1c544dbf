package store

import (
	"context"
	"fmt"

	"github.com/omnitutor/omnitutor/ent"
	"github.com/omnitutor/omnitutor/ent/diagnosticquiz"
	"github.com/omnitutor/omnitutor/ent/learningprogram"
	"github.com/omnitutor/omnitutor/ent/lesson"
	"github.com/omnitutor/omnitutor/ent/lessonattempt"
	"github.com/omnitutor/omnitutor/ent/schema"
	"github.com/omnitutor/omnitutor/internal/program"
)

// programRepo implements program.Repository backed by ent.
type programRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *programRepo) CreateProgram(ctx context.Context, p *program.Program, q *program.Quiz) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	created, err := tx.LearningProgram.Create().
		SetID(p.ID).
		SetStudentID(p.StudentID).
		SetTopicPrompt(p.TopicPrompt).
		SetTitle(p.Title).
		SetSummary(p.Summary).
		SetStatus(string(p.Status)).
		SetSkillProfile(p.SkillProfile).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("create program: %w", err))
	}

	_, err = tx.DiagnosticQuiz.Create().
		SetID(q.ID).
		SetProgramID(p.ID).
		SetInstructions(q.Instructions).
		SetQuestions(questionsToEnt(q.Questions)).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("create quiz: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	p.CreatedAt = created.CreatedAt
	p.UpdatedAt = created.UpdatedAt
	return nil
}

func (r *programRepo) GetProgram(ctx context.Context, id string) (*program.Program, error) {
	row, err := r.client.LearningProgram.Query().
		Where(learningprogram.ID(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}
	return programFromEnt(row), nil
}

func (r *programRepo) UpdateProgram(ctx context.Context, p *program.Program) error {
	_, err := r.client.LearningProgram.UpdateOneID(p.ID).
		SetTitle(p.Title).
		SetSummary(p.Summary).
		SetStatus(string(p.Status)).
		SetSkillProfile(p.SkillProfile).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	return nil
}

func (r *programRepo) ListPrograms(ctx context.Context, studentID string) ([]*program.Program, error) {
	rows, err := r.client.LearningProgram.Query().
		Where(learningprogram.StudentID(studentID)).
		Order(ent.Asc(learningprogram.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}

	out := make([]*program.Program, len(rows))
	for i, row := range rows {
		out[i] = programFromEnt(row)
	}
	return out, nil
}

func (r *programRepo) GetQuiz(ctx context.Context, programID string) (*program.Quiz, error) {
	row, err := r.client.DiagnosticQuiz.Query().
		Where(diagnosticquiz.ProgramID(programID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz: %w", err)
	}

	return &program.Quiz{
		ID:           row.ID,
		ProgramID:    row.ProgramID,
		Instructions: row.Instructions,
		Questions:    questionsFromEnt(row.Questions),
	}, nil
}

func (r *programRepo) ActivateProgram(ctx context.Context, p *program.Program, lessons []*program.Lesson, qa *program.QuizAttempt) error {
	// The sequence counter writes through its own statement; claim the
	// number before the transaction opens so the two writers never overlap
	// under SQLite's single-writer lock.
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := installOutline(ctx, tx, p.ID, lessons); err != nil {
		return rollback(tx, err)
	}

	attempt, err := tx.QuizAttempt.Create().
		SetID(qa.ID).
		SetSequence(seqNum).
		SetQuizID(qa.QuizID).
		SetStudentID(qa.StudentID).
		SetResponses(qa.Responses).
		SetScore(qa.Score).
		SetAnalysis(qa.Analysis).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("save quiz attempt: %w", err))
	}

	updated, err := tx.LearningProgram.UpdateOneID(p.ID).
		SetTitle(p.Title).
		SetSummary(p.Summary).
		SetStatus(string(p.Status)).
		SetSkillProfile(p.SkillProfile).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("update program: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	qa.CreatedAt = attempt.RecordedAt
	p.UpdatedAt = updated.UpdatedAt
	return nil
}

func (r *programRepo) ReplaceLessons(ctx context.Context, programID string, lessons []*program.Lesson) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := installOutline(ctx, tx, programID, lessons); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// installOutline swaps the program's lessons inside the caller's transaction.
func installOutline(ctx context.Context, tx *ent.Tx, programID string, lessons []*program.Lesson) error {
	if _, err := tx.Lesson.Delete().Where(lesson.ProgramID(programID)).Exec(ctx); err != nil {
		return fmt.Errorf("clear outline: %w", err)
	}

	builders := make([]*ent.LessonCreate, len(lessons))
	for i, l := range lessons {
		builders[i] = tx.Lesson.Create().
			SetID(l.ID).
			SetProgramID(l.ProgramID).
			SetChapter(l.Chapter).
			SetOrderIndex(l.OrderIndex).
			SetTitle(l.Title).
			SetContentMarkdown(l.ContentMarkdown).
			SetObjectives(l.Objectives).
			SetMethodPlan(methodPlanToEnt(l.MethodPlan)).
			SetPracticePrompts(practiceToEnt(l.PracticePrompts)).
			SetAssessment(assessmentToEnt(l.Assessment)).
			SetEstimatedMinutes(l.EstimatedMinutes).
			SetResources(resourcesToEnt(l.Resources))
	}
	if _, err := tx.Lesson.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("create outline: %w", err)
	}
	return nil
}

func (r *programRepo) GetLesson(ctx context.Context, id string) (*program.Lesson, error) {
	row, err := r.client.Lesson.Query().
		Where(lesson.ID(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return lessonFromEnt(row), nil
}

func (r *programRepo) ListLessons(ctx context.Context, programID string) ([]*program.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(lesson.ProgramID(programID)).
		Order(ent.Asc(lesson.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	out := make([]*program.Lesson, len(rows))
	for i, row := range rows {
		out[i] = lessonFromEnt(row)
	}
	return out, nil
}

func (r *programRepo) AppendAttempt(ctx context.Context, a *program.Attempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	row, err := r.client.LessonAttempt.Create().
		SetID(a.ID).
		SetSequence(seqNum).
		SetLessonID(a.LessonID).
		SetStudentID(a.StudentID).
		SetStatus(string(a.Status)).
		SetAnswers(a.Answers).
		SetScore(a.Score).
		SetStars(a.Stars).
		SetMasterySummary(a.MasterySummary).
		SetReflectionPositive(a.ReflectionPositive).
		SetReflectionNegative(a.ReflectionNegative).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}

	a.Seq = row.Sequence
	a.CreatedAt = row.RecordedAt
	return nil
}

func (r *programRepo) ListAttempts(ctx context.Context, lessonID string) ([]*program.Attempt, error) {
	rows, err := r.client.LessonAttempt.Query().
		Where(lessonattempt.LessonID(lessonID)).
		Order(ent.Asc(lessonattempt.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}

	out := make([]*program.Attempt, len(rows))
	for i, row := range rows {
		out[i] = attemptFromEnt(row)
	}
	return out, nil
}

func (r *programRepo) ListProgramAttempts(ctx context.Context, programID string) (map[string][]*program.Attempt, error) {
	lessonIDs, err := r.client.Lesson.Query().
		Where(lesson.ProgramID(programID)).
		Select(lesson.FieldID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lesson ids: %w", err)
	}
	if len(lessonIDs) == 0 {
		return map[string][]*program.Attempt{}, nil
	}

	rows, err := r.client.LessonAttempt.Query().
		Where(lessonattempt.LessonIDIn(lessonIDs...)).
		Order(ent.Asc(lessonattempt.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list program attempts: %w", err)
	}

	out := make(map[string][]*program.Attempt, len(lessonIDs))
	for _, row := range rows {
		out[row.LessonID] = append(out[row.LessonID], attemptFromEnt(row))
	}
	return out, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}

// Mapping between ent rows and domain types.

func programFromEnt(row *ent.LearningProgram) *program.Program {
	return &program.Program{
		ID:           row.ID,
		StudentID:    row.StudentID,
		TopicPrompt:  row.TopicPrompt,
		Title:        row.Title,
		Summary:      row.Summary,
		Status:       program.Status(row.Status),
		SkillProfile: row.SkillProfile,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func lessonFromEnt(row *ent.Lesson) *program.Lesson {
	l := &program.Lesson{
		ID:               row.ID,
		ProgramID:        row.ProgramID,
		Chapter:          row.Chapter,
		OrderIndex:       row.OrderIndex,
		Title:            row.Title,
		ContentMarkdown:  row.ContentMarkdown,
		Objectives:       row.Objectives,
		EstimatedMinutes: row.EstimatedMinutes,
		Assessment: program.Assessment{
			Prompt:            row.Assessment.Prompt,
			SuccessCriteria:   row.Assessment.SuccessCriteria,
			ExemplarAnswer:    row.Assessment.ExemplarAnswer,
			ExtensionIdea:     row.Assessment.ExtensionIdea,
			FollowUpQuestions: row.Assessment.FollowUpQuestions,
		},
	}
	for _, s := range row.MethodPlan {
		l.MethodPlan = append(l.MethodPlan, program.MethodStep{
			Title:           s.Title,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
		})
	}
	for _, p := range row.PracticePrompts {
		l.PracticePrompts = append(l.PracticePrompts, program.PracticePrompt{
			Prompt:   p.Prompt,
			Modality: p.Modality,
		})
	}
	for _, res := range row.Resources {
		l.Resources = append(l.Resources, program.Resource{
			Type:  res.Type,
			Label: res.Label,
			URL:   res.URL,
		})
	}
	return l
}

func attemptFromEnt(row *ent.LessonAttempt) *program.Attempt {
	return &program.Attempt{
		ID:                 row.ID,
		LessonID:           row.LessonID,
		StudentID:          row.StudentID,
		Status:             program.AttemptStatus(row.Status),
		Answers:            row.Answers,
		Score:              row.Score,
		Stars:              row.Stars,
		MasterySummary:     row.MasterySummary,
		ReflectionPositive: row.ReflectionPositive,
		ReflectionNegative: row.ReflectionNegative,
		Seq:                row.Sequence,
		CreatedAt:          row.RecordedAt,
	}
}

func questionsToEnt(questions []program.QuizQuestion) []schema.QuizQuestionData {
	out := make([]schema.QuizQuestionData, len(questions))
	for i, q := range questions {
		out[i] = schema.QuizQuestionData{
			ID:         q.ID,
			Prompt:     q.Prompt,
			AnswerType: string(q.AnswerType),
			Choices:    q.Choices,
			Hints:      q.Hints,
		}
	}
	return out
}

func questionsFromEnt(questions []schema.QuizQuestionData) []program.QuizQuestion {
	out := make([]program.QuizQuestion, len(questions))
	for i, q := range questions {
		out[i] = program.QuizQuestion{
			ID:         q.ID,
			Prompt:     q.Prompt,
			AnswerType: program.AnswerType(q.AnswerType),
			Choices:    q.Choices,
			Hints:      q.Hints,
		}
	}
	return out
}

func methodPlanToEnt(plan []program.MethodStep) []schema.MethodStepData {
	out := make([]schema.MethodStepData, len(plan))
	for i, s := range plan {
		out[i] = schema.MethodStepData{
			Title:           s.Title,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
		}
	}
	return out
}

func practiceToEnt(prompts []program.PracticePrompt) []schema.PracticePromptData {
	out := make([]schema.PracticePromptData, len(prompts))
	for i, p := range prompts {
		out[i] = schema.PracticePromptData{Prompt: p.Prompt, Modality: p.Modality}
	}
	return out
}

func assessmentToEnt(a program.Assessment) schema.AssessmentData {
	return schema.AssessmentData{
		Prompt:            a.Prompt,
		SuccessCriteria:   a.SuccessCriteria,
		ExemplarAnswer:    a.ExemplarAnswer,
		ExtensionIdea:     a.ExtensionIdea,
		FollowUpQuestions: a.FollowUpQuestions,
	}
}

func resourcesToEnt(resources []program.Resource) []schema.ResourceData {
	out := make([]schema.ResourceData, len(resources))
	for i, r := range resources {
		out[i] = schema.ResourceData{Type: r.Type, Label: r.Label, URL: r.URL}
	}
	return out
}
