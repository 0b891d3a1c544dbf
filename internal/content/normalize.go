package content

import (
	"fmt"
	"strings"

	"github.com/omnitutor/omnitutor/internal/program"
)

// Models drift from the schema in small, recoverable ways: alias answer
// types, blank titles, empty lesson sections. Normalization folds those
// into the canonical domain shapes instead of failing the generation.

// answerTypeAliases maps model-emitted variants onto the canonical set.
var answerTypeAliases = map[string]program.AnswerType{
	"free_form":       program.AnswerFreeForm,
	"short_answer":    program.AnswerFreeForm,
	"text":            program.AnswerFreeForm,
	"open_ended":      program.AnswerFreeForm,
	"multiple_choice": program.AnswerMultipleChoice,
	"single_choice":   program.AnswerMultipleChoice,
	"single-select":   program.AnswerMultipleChoice,
	"multi_select":    program.AnswerMultiSelect,
	"multi-select":    program.AnswerMultiSelect,
	"checkbox":        program.AnswerMultiSelect,
}

func normalizeAnswerType(raw string) program.AnswerType {
	key := strings.ToLower(strings.TrimSpace(raw))
	if t, ok := answerTypeAliases[key]; ok {
		return t
	}
	return program.AnswerFreeForm
}

// normalizeQuestion coerces one quiz question into domain shape. Questions
// get deterministic q<N> identifiers when the model omits or duplicates
// them, and choice-based questions without choices degrade to free-form so
// the learner can still answer in text.
func normalizeQuestion(q questionPayload, index int, seen map[string]bool) program.QuizQuestion {
	id := strings.TrimSpace(q.ID)
	if id == "" || seen[id] {
		id = fmt.Sprintf("q%d", index)
	}
	seen[id] = true

	out := program.QuizQuestion{
		ID:         id,
		Prompt:     strings.TrimSpace(q.Prompt),
		AnswerType: normalizeAnswerType(q.AnswerType),
		Choices:    trimStrings(q.Choices),
		Hints:      trimStrings(q.Hints),
	}

	if out.AnswerType != program.AnswerFreeForm && len(out.Choices) == 0 {
		out.AnswerType = program.AnswerFreeForm
	}
	if out.AnswerType == program.AnswerFreeForm {
		out.Choices = nil
	}
	return out
}

func normalizeQuiz(p *quizPayload) *program.GeneratedQuiz {
	out := &program.GeneratedQuiz{
		Title:        strings.TrimSpace(p.ProgramTitle),
		Overview:     strings.TrimSpace(p.Overview),
		Instructions: strings.TrimSpace(p.Instructions),
	}
	seen := map[string]bool{}
	for i, q := range p.Questions {
		nq := normalizeQuestion(q, i+1, seen)
		if nq.Prompt == "" {
			continue
		}
		out.Questions = append(out.Questions, nq)
	}
	return out
}

// normalizeLesson fills the defaults a renderable lesson needs.
func normalizeLesson(p lessonPayload, index int, chapter string) program.LessonDraft {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = fmt.Sprintf("Lesson %d", index)
	}

	objectives := trimStrings(p.Objectives)
	if len(objectives) == 0 {
		objectives = []string{fmt.Sprintf("Understand the key ideas in %s.", title)}
	}

	var plan []program.MethodStep
	for i, s := range p.MethodPlan {
		st := program.MethodStep{
			Title:           strings.TrimSpace(s.Title),
			Description:     strings.TrimSpace(s.Description),
			DurationMinutes: s.DurationMinutes,
		}
		if st.Title == "" {
			st.Title = fmt.Sprintf("Activity %d", i+1)
		}
		plan = append(plan, st)
	}
	if len(plan) == 0 {
		plan = []program.MethodStep{{
			Title:       "Explore together",
			Description: "Discuss the main idea with the learner and walk through a playful example.",
		}}
	}

	var practice []program.PracticePrompt
	for _, pr := range p.PracticePrompts {
		text := strings.TrimSpace(pr.Prompt)
		if text == "" {
			continue
		}
		practice = append(practice, program.PracticePrompt{
			Prompt:   text,
			Modality: strings.TrimSpace(pr.Modality),
		})
	}
	if len(practice) == 0 {
		practice = []program.PracticePrompt{{
			Prompt:   "Share one thing you learned and draw or explain an example in your own words.",
			Modality: "reflection",
		}}
	}

	assessment := program.Assessment{
		Prompt:            strings.TrimSpace(p.Assessment.Prompt),
		SuccessCriteria:   trimStrings(p.Assessment.SuccessCriteria),
		ExemplarAnswer:    strings.TrimSpace(p.Assessment.ExemplarAnswer),
		ExtensionIdea:     strings.TrimSpace(p.Assessment.ExtensionIdea),
		FollowUpQuestions: trimStrings(p.Assessment.FollowUpQuestions),
	}
	if assessment.Prompt == "" {
		assessment.Prompt = "Tell your tutor what you now understand and show an example!"
		if len(assessment.SuccessCriteria) == 0 {
			assessment.SuccessCriteria = []string{
				"Explains the concept clearly",
				"Provides a matching example",
			}
		}
	}

	var resources []program.Resource
	for _, r := range p.Resources {
		label := strings.TrimSpace(r.Label)
		if label == "" {
			label = "Resource"
		}
		typ := strings.TrimSpace(r.Type)
		if typ == "" {
			typ = "link"
		}
		resources = append(resources, program.Resource{
			Type:  typ,
			Label: label,
			URL:   strings.TrimSpace(r.URL),
		})
	}

	return program.LessonDraft{
		Chapter:          chapter,
		Title:            title,
		ContentMarkdown:  strings.TrimSpace(p.ContentMarkdown),
		Objectives:       objectives,
		MethodPlan:       plan,
		PracticePrompts:  practice,
		Assessment:       assessment,
		EstimatedMinutes: p.EstimatedMinutes,
		Resources:        resources,
	}
}

func normalizeEvaluation(p *evaluationPayload) *program.Evaluation {
	out := &program.Evaluation{
		SkillProfile: strings.TrimSpace(p.SkillProfile),
		Overview:     strings.TrimSpace(p.ProgramOverview),
		Score:        clampScore(p.Score),
		Analysis: map[string]any{
			"strengths":    trimStrings(p.Analysis.Strengths),
			"improvements": trimStrings(p.Analysis.Improvements),
		},
	}
	index := 1
	for _, ch := range p.Chapters {
		chapter := program.ChapterDraft{
			Title: strings.TrimSpace(ch.Title),
			Focus: strings.TrimSpace(ch.Focus),
		}
		for _, l := range ch.Lessons {
			chapter.Lessons = append(chapter.Lessons, normalizeLesson(l, index, chapter.Title))
			index++
		}
		if len(chapter.Lessons) > 0 {
			out.Chapters = append(out.Chapters, chapter)
		}
	}
	return out
}

func normalizeMastery(p *masteryPayload) *program.MasteryResult {
	return &program.MasteryResult{
		Stars:              p.Stars,
		Score:              clampScore(p.Score),
		Summary:            strings.TrimSpace(p.Summary),
		ReflectionPositive: strings.TrimSpace(p.PositiveFeedback),
		ReflectionNegative: strings.TrimSpace(p.NextFocus),
	}
}

func trimStrings(in []string) []string {
	var out []string
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
