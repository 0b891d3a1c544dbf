package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/omnitutor/omnitutor/internal/program"
	"github.com/omnitutor/omnitutor/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show a student's progress across all programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.Programs()

		programs, err := repo.ListPrograms(ctx, student)
		if err != nil {
			return fmt.Errorf("list programs: %w", err)
		}

		inputs := make([]progress.ProgramProgress, 0, len(programs))
		for _, p := range programs {
			lessons, err := repo.ListLessons(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("list lessons for %s: %w", p.ID, err)
			}
			attempts, err := repo.ListProgramAttempts(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("list attempts for %s: %w", p.ID, err)
			}
			inputs = append(inputs, progress.ProgramProgress{
				Program:  p,
				Lessons:  lessons,
				Attempts: attempts,
			})
		}

		snap := progress.Aggregate(student, inputs, progress.Config{
			Policy: program.DefaultUnlockPolicy(),
		})

		fmt.Printf("Progress for %s\n", student)
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Programs:            %d (%d completed)\n", snap.TotalPrograms, snap.CompletedPrograms)
		fmt.Printf("Lessons completed:   %d\n", snap.CompletedLessons)
		fmt.Printf("Lessons in progress: %d\n", snap.InProgressLessons)
		fmt.Printf("Total stars:         %d\n", snap.TotalStars)

		if len(snap.Badges) > 0 {
			fmt.Println()
			fmt.Println("Badges")
			fmt.Println(strings.Repeat("─", 48))
			for _, b := range snap.Badges {
				fmt.Printf("  %s\n", b)
			}
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().StringP("student", "s", "", "Student ID")
}
