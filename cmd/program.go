package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/omnitutor/omnitutor/internal/content"
	"github.com/omnitutor/omnitutor/internal/gateway"
	"github.com/omnitutor/omnitutor/internal/program"
	"github.com/omnitutor/omnitutor/internal/store"
	"github.com/spf13/cobra"
)

var programCmd = &cobra.Command{
	Use:   "program",
	Short: "Manage learning programs",
}

var programStartCmd = &cobra.Command{
	Use:   "start <topic>",
	Short: "Start a new learning program with a diagnostic quiz",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		traits, _ := cmd.Flags().GetStringSlice("trait")
		topic := strings.Join(args, " ")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		svc, err := newTutorService(ctx, s)
		if err != nil {
			return err
		}

		p, err := svc.Start(ctx, student, topic, traits)
		if err != nil {
			return err
		}

		fmt.Printf("Program %s created: %s\n", p.ID, p.Title)
		fmt.Println()

		quiz, err := s.Programs().GetQuiz(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("load quiz: %w", err)
		}
		printQuiz(quiz)

		fmt.Println()
		fmt.Printf("Answer with: omnitutor program submit %s --answers '{\"q1\": \"...\"}'\n", p.ID)
		return nil
	},
}

var programSubmitCmd = &cobra.Command{
	Use:   "submit <program-id>",
	Short: "Submit diagnostic answers and build the lesson outline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := answersFromFlags(cmd)
		if err != nil {
			return err
		}

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		svc, err := newTutorService(ctx, s)
		if err != nil {
			return err
		}

		p, err := svc.SubmitDiagnostic(ctx, args[0], answers)
		if err != nil {
			return err
		}

		fmt.Printf("Program %s is now %s.\n", p.ID, p.Status)
		if p.SkillProfile != "" {
			fmt.Printf("Skill profile: %s\n", p.SkillProfile)
		}
		fmt.Println()
		return showProgram(ctx, svc, p.ID)
	},
}

var programCompleteCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Record a lesson attempt (completed work is graded for mastery)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		status, _ := cmd.Flags().GetString("status")
		answers, err := answersFromFlags(cmd)
		if err != nil {
			return err
		}

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		svc, err := newTutorService(ctx, s)
		if err != nil {
			return err
		}

		attempt, err := svc.CompleteLesson(ctx, program.CompleteInput{
			LessonID:  args[0],
			StudentID: student,
			Status:    program.AttemptStatus(status),
			Answers:   answers,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Attempt recorded: %s\n", attempt.Status)
		if attempt.Stars > 0 {
			fmt.Printf("Mastery: %s\n", strings.Repeat("⭐", attempt.Stars))
		}
		if attempt.MasterySummary != "" {
			fmt.Printf("Summary: %s\n", attempt.MasterySummary)
		}
		if attempt.ReflectionPositive != "" {
			fmt.Printf("Went well: %s\n", attempt.ReflectionPositive)
		}
		if attempt.ReflectionNegative != "" {
			fmt.Printf("Focus next: %s\n", attempt.ReflectionNegative)
		}
		return nil
	},
}

var programShowCmd = &cobra.Command{
	Use:   "show <program-id>",
	Short: "Show a program's outline and progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		svc := program.NewService(s.Programs(), nil, program.DefaultUnlockPolicy())
		return showProgram(ctx, svc, args[0])
	},
}

var programListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a student's programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		programs, err := s.Programs().ListPrograms(context.Background(), student)
		if err != nil {
			return fmt.Errorf("list programs: %w", err)
		}
		if len(programs) == 0 {
			fmt.Println("No programs yet. Start one with: omnitutor program start <topic>")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-19s  %s\n", "ID", "Status", "Created", "Title")
		fmt.Println(strings.Repeat("─", 100))
		for _, p := range programs {
			fmt.Printf("%-36s  %-20s  %-19s  %s\n",
				p.ID, p.Status, p.CreatedAt.Local().Format("2006-01-02 15:04:05"), p.Title)
		}
		return nil
	},
}

var programAbandonCmd = &cobra.Command{
	Use:   "abandon <program-id>",
	Short: "Abandon a program (excluded from progress, kept in history)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := program.NewService(s.Programs(), nil, program.DefaultUnlockPolicy())
		if err := svc.Abandon(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Program abandoned.")
		return nil
	},
}

// newTutorService wires the gateway provider and content generator into a
// program service backed by the store.
func newTutorService(ctx context.Context, s *store.Store) (*program.Service, error) {
	provider, err := gateway.NewProviderFromEnv(ctx, s.Events())
	if err != nil {
		return nil, fmt.Errorf("configure model provider: %w", err)
	}
	gen := content.NewGenerator(provider, content.DefaultConfig())
	return program.NewService(s.Programs(), gen, program.DefaultUnlockPolicy()), nil
}

func showProgram(ctx context.Context, svc *program.Service, programID string) error {
	view, err := svc.GetView(ctx, programID)
	if err != nil {
		return err
	}

	p := view.Program
	fmt.Printf("%s (%s)\n", p.Title, p.Status)
	if p.Summary != "" {
		fmt.Println(p.Summary)
	}
	fmt.Printf("Total stars: %d\n", view.TotalStars)

	if len(view.Lessons) == 0 {
		fmt.Println()
		fmt.Println("No outline yet — submit the diagnostic quiz first.")
		return nil
	}

	fmt.Println()
	fmt.Printf("%-3s  %-9s  %-5s  %-24s  %-36s  %s\n", "#", "State", "Stars", "Chapter", "Lesson ID", "Title")
	fmt.Println(strings.Repeat("─", 120))
	for _, lv := range view.Lessons {
		fmt.Printf("%-3d  %-9s  %-5s  %-24s  %-36s  %s\n",
			lv.Lesson.OrderIndex,
			stateLabel(lv.State),
			strings.Repeat("⭐", lv.Stars),
			truncate(lv.Lesson.Chapter, 24),
			lv.Lesson.ID,
			lv.Lesson.Title,
		)
	}

	if next := view.ActiveLesson(); next != nil {
		fmt.Println()
		fmt.Printf("Up next: %s\n", next.Title)
	}
	return nil
}

func stateLabel(state program.ProgressState) string {
	switch state {
	case program.ProgressCompleted:
		return "done"
	case program.ProgressAvailable:
		return "open"
	default:
		return "locked"
	}
}

func printQuiz(quiz *program.Quiz) {
	if quiz == nil {
		return
	}
	if quiz.Instructions != "" {
		fmt.Println(quiz.Instructions)
		fmt.Println()
	}
	for _, q := range quiz.Questions {
		fmt.Printf("[%s] %s\n", q.ID, q.Prompt)
		for i, choice := range q.Choices {
			fmt.Printf("      %c) %s\n", 'a'+i, choice)
		}
	}
}

// answersFromFlags parses --answers (inline JSON) or --answers-file.
func answersFromFlags(cmd *cobra.Command) (map[string]any, error) {
	raw, _ := cmd.Flags().GetString("answers")
	file, _ := cmd.Flags().GetString("answers-file")

	if raw == "" && file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read answers file: %w", err)
		}
		raw = string(data)
	}
	if raw == "" {
		return nil, nil
	}

	var answers map[string]any
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return nil, fmt.Errorf("parse answers JSON: %w", err)
	}
	return answers, nil
}

func init() {
	programStartCmd.Flags().StringP("student", "s", "", "Student ID")
	programStartCmd.Flags().StringSlice("trait", nil, "Learner trait hint (repeatable)")

	programSubmitCmd.Flags().String("answers", "", "Answers as a JSON object keyed by question ID")
	programSubmitCmd.Flags().String("answers-file", "", "Path to a JSON file of answers")

	programCompleteCmd.Flags().StringP("student", "s", "", "Student ID")
	programCompleteCmd.Flags().String("status", "completed", "Attempt status: completed, needs_help, in_progress, skipped")
	programCompleteCmd.Flags().String("answers", "", "Lesson work as a JSON object")
	programCompleteCmd.Flags().String("answers-file", "", "Path to a JSON file of lesson work")

	programListCmd.Flags().StringP("student", "s", "", "Student ID")

	programCmd.AddCommand(programStartCmd)
	programCmd.AddCommand(programSubmitCmd)
	programCmd.AddCommand(programCompleteCmd)
	programCmd.AddCommand(programShowCmd)
	programCmd.AddCommand(programListCmd)
	programCmd.AddCommand(programAbandonCmd)
}
