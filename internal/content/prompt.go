package content

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/omnitutor/omnitutor/internal/program"
)

const quizSystemPrompt = `You are an encouraging tutor who designs engaging diagnostic quizzes for children. Keep language friendly and age-appropriate.`

func buildQuizUserMessage(topic string, traits []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic description: %s\n", topic))

	b.WriteString("\nLearner traits:\n")
	if len(traits) == 0 {
		b.WriteString("None provided\n")
	} else {
		for _, t := range traits {
			b.WriteString(fmt.Sprintf("- %s\n", t))
		}
	}

	b.WriteString(`
Instructions:
Create a short diagnostic quiz for the topic above. Each question should help assess the learner's current understanding.
1. Provide at least 4 questions, mixing formats (multiple choice, multi-select, short answer).
2. Give every question a stable id like q1, q2, ...
3. multiple_choice and multi_select questions must list their choices; free_form questions use an empty choices array.
4. Weave the learner's traits into question themes where it feels natural.`)

	return b.String()
}

const evaluationSystemPrompt = `You are an adaptive tutor. Evaluate the student's quiz answers, summarise strengths and gaps, and design a personalised learning program with chapters and lessons. Lessons must include markdown-friendly explanations and suggest activities for kids.`

func buildEvaluationUserMessage(in program.EvaluateInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", in.Topic))

	if len(in.Traits) > 0 {
		b.WriteString("Learner traits: " + strings.Join(in.Traits, "; ") + "\n")
	}

	b.WriteString("\nQuiz questions:\n")
	for _, q := range in.Quiz.Questions {
		b.WriteString(fmt.Sprintf("- [%s] (%s) %s\n", q.ID, q.AnswerType, q.Prompt))
		if len(q.Choices) > 0 {
			b.WriteString("  choices: " + strings.Join(q.Choices, " | ") + "\n")
		}
	}

	b.WriteString("\nStudent answers:\n")
	b.WriteString(compactJSON(in.Answers))
	b.WriteString("\n")

	b.WriteString(`
Instructions:
1. Score the quiz 0-100 and describe the learner's skill profile in 2-4 sentences.
2. List concrete strengths and improvements in the analysis.
3. Design a program of 2-4 chapters, each with 1-4 lessons ordered from easiest to hardest.
4. Every lesson needs full content_markdown the learner can read directly, plus a method plan, practice prompts, and a mastery check.
5. Match the difficulty to the quiz results: skip what the learner already knows.`)

	return b.String()
}

const lessonDetailSystemPrompt = `You are a patient tutor writing one full lesson inside an existing learning program for a child. Write warm, clear Markdown the learner reads directly.`

func buildLessonDetailUserMessage(in program.LessonDetailInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", in.Topic))
	b.WriteString(fmt.Sprintf("Chapter: %s\n", in.Chapter))
	b.WriteString(fmt.Sprintf("Lesson title: %s\n", in.Title))
	b.WriteString(fmt.Sprintf("Lesson position: %d\n", in.OrderIndex))
	if in.SkillProfile != "" {
		b.WriteString(fmt.Sprintf("Learner skill profile: %s\n", in.SkillProfile))
	}

	b.WriteString(`
Instructions:
Write the complete lesson:
1. content_markdown explains the concept step by step with examples, headings, and the occasional emoji.
2. Include 2-4 objectives, an ordered method plan, and playful practice prompts.
3. The mastery check should let the learner show understanding in their own words.`)

	return b.String()
}

const masterySystemPrompt = `You are a tutor offering concise feedback to young learners. Judge how well the submission shows mastery of the lesson, always staying encouraging.`

func buildMasteryUserMessage(in program.MasteryInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Lesson title: %s\n", in.Lesson.Title))
	if in.Lesson.Assessment.Prompt != "" {
		b.WriteString(fmt.Sprintf("Mastery check: %s\n", in.Lesson.Assessment.Prompt))
	}
	if len(in.Lesson.Assessment.SuccessCriteria) > 0 {
		b.WriteString("Success criteria:\n")
		for _, c := range in.Lesson.Assessment.SuccessCriteria {
			b.WriteString(fmt.Sprintf("- %s\n", c))
		}
	}

	b.WriteString("\nLesson content:\n")
	b.WriteString(in.Lesson.ContentMarkdown)
	b.WriteString("\n\nLearner answers:\n")
	b.WriteString(compactJSON(in.Answers))
	b.WriteString("\n")

	b.WriteString(`
Instructions:
1. Award 0-3 stars: 3 for confident mastery, 1 for partial understanding, 0 when the learner needs another pass.
2. Score the submission 0-100.
3. positive_feedback celebrates something specific the learner did well.
4. next_focus names one concrete thing to practice next.`)

	return b.String()
}

const chatSystemPromptBase = `You are a caring tutor for children.
Use Markdown for structure, include LaTeX for math when appropriate, and Mermaid for diagrams.
Respond in a warm, encouraging tone and keep explanations age appropriate.
Always be ready for small talk but gently guide back to learning goals.`

// ChatProfile carries the session context woven into the chat system prompt.
type ChatProfile struct {
	Grade        string
	SkillProfile string
	Summary      string
	ActiveLesson string
}

func buildChatSystemPrompt(p ChatProfile) string {
	parts := []string{chatSystemPromptBase}
	if p.Grade != "" {
		parts = append(parts, fmt.Sprintf("The learner is in grade %s.", p.Grade))
	}
	if p.SkillProfile != "" {
		parts = append(parts, fmt.Sprintf("Current skill profile: %s.", p.SkillProfile))
	}
	if p.Summary != "" {
		parts = append(parts, fmt.Sprintf("Program summary: %s.", p.Summary))
	}
	if p.ActiveLesson != "" {
		parts = append(parts, fmt.Sprintf("The learner is currently working on the lesson %q.", p.ActiveLesson))
	}
	return strings.Join(parts, "\n")
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
