package cmd

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/omnitutor/omnitutor/internal/chat"
	"github.com/omnitutor/omnitutor/internal/content"
	"github.com/omnitutor/omnitutor/internal/gateway"
	"github.com/omnitutor/omnitutor/internal/program"
	chatscreen "github.com/omnitutor/omnitutor/internal/screens/chat"
	"github.com/omnitutor/omnitutor/internal/store"
	"github.com/omnitutor/omnitutor/internal/voice"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open a tutoring chat session",
	Long: `Open an interactive tutoring session in the terminal.

Inside the session:
  /image <url>   share an image with the tutor
  Esc            end the session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, _ := cmd.Flags().GetString("session")
		student, _ := cmd.Flags().GetString("student")
		grade, _ := cmd.Flags().GetString("grade")
		programID, _ := cmd.Flags().GetString("program")
		title, _ := cmd.Flags().GetString("title")
		tts, _ := cmd.Flags().GetBool("voice")
		fresh, _ := cmd.Flags().GetBool("new")

		s, dbPath, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		provider, err := gateway.NewProviderFromEnv(ctx, s.Events())
		if err != nil {
			return fmt.Errorf("configure model provider: %w", err)
		}
		gen := content.NewGenerator(provider, content.DefaultConfig())

		// Voice is optional: without an OpenAI key the session runs text-only.
		var synth chat.Synthesizer
		if v, err := voice.New(voice.ConfigFromEnv(store.DataDir(dbPath))); err == nil {
			synth = v
		} else if tts {
			fmt.Fprintf(os.Stderr, "voice unavailable: %v\n", err)
		}

		progSvc := program.NewService(s.Programs(), gen, program.DefaultUnlockPolicy())
		registry := chat.NewRegistry(s.Chats(), gen, synth, &programSource{svc: progSvc})
		defer registry.CloseAll()

		in := chat.OpenInput{
			SessionID:  sessionID,
			StudentID:  student,
			Grade:      grade,
			ProgramID:  programID,
			Title:      title,
			TTSEnabled: tts,
		}
		// Without an explicit session the student's latest one is resumed;
		// --new always starts fresh.
		open := registry.OpenDefault
		if fresh {
			open = registry.Open
		}
		ch, err := open(ctx, in)
		if err != nil {
			return err
		}
		defer ch.Close()

		p := tea.NewProgram(chatscreen.New(ch))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run session UI: %w", err)
		}

		fmt.Printf("Resume later with: omnitutor chat --session %s\n", ch.Session().ID)
		return nil
	},
}

// programSource adapts the program service to the chat prompt-context
// interface without the chat package importing program.
type programSource struct {
	svc *program.Service
}

func (p *programSource) ProgramInfo(ctx context.Context, programID string) (*chat.ProgramInfo, error) {
	view, err := p.svc.GetView(ctx, programID)
	if err != nil {
		return nil, err
	}
	info := &chat.ProgramInfo{
		SkillProfile: view.Program.SkillProfile,
		Summary:      view.Program.Summary,
	}
	if lesson := view.ActiveLesson(); lesson != nil {
		info.ActiveLesson = lesson.Title
	}
	return info, nil
}

func init() {
	chatCmd.Flags().String("session", "", "Resume an existing session by ID")
	chatCmd.Flags().StringP("student", "s", "", "Student ID (required for new sessions)")
	chatCmd.Flags().StringP("grade", "g", "", "Student grade level for tone calibration")
	chatCmd.Flags().String("program", "", "Bind the session to a learning program")
	chatCmd.Flags().String("title", "", "Name the session (renames on resume)")
	chatCmd.Flags().Bool("voice", false, "Speak tutor replies aloud (requires OpenAI key)")
	chatCmd.Flags().Bool("new", false, "Start a fresh session instead of resuming the latest")
}
