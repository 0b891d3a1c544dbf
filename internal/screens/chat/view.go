package chat

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	tutor "github.com/omnitutor/omnitutor/internal/chat"
	"github.com/omnitutor/omnitutor/internal/ui/theme"
)

func (s Screen) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if s.width == 0 || s.height == 0 {
		return v
	}

	if !s.loaded {
		v.SetContent(theme.Subtitle.Render("\n  Connecting to your tutor..."))
		return v
	}

	var b strings.Builder

	session := s.channel.Session()
	header := theme.Title.Render("  "+session.Title) + "  " +
		theme.Subtitle.Render(session.ID)
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(theme.Divider.Render(strings.Repeat("─", s.width)))
	b.WriteString("\n")

	// Header, divider, status, input, and footer take one row each.
	transcriptHeight := s.height - 5
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}
	b.WriteString(s.renderTranscript(transcriptHeight))
	b.WriteString("\n")

	b.WriteString(s.renderStatus())
	b.WriteString("\n")

	b.WriteString(theme.StudentLabel.Render("you> "))
	b.WriteString(s.input.View())
	b.WriteString("\n")

	b.WriteString(theme.Hint.Render("  Enter send · /image <url> share · Esc quit"))

	v.SetContent(b.String())
	return v
}

// renderTranscript renders the message log, keeping only the lines that fit.
// Older lines scroll off the top.
func (s Screen) renderTranscript(maxLines int) string {
	if len(s.messages) == 0 {
		return theme.Subtitle.Render("  No messages yet. Ask me anything!")
	}

	var lines []string
	for _, m := range s.messages {
		lines = append(lines, strings.Split(s.renderMessage(m), "\n")...)
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}

func (s Screen) renderMessage(m *tutor.Message) string {
	label := theme.StudentLabel.Render("you>")
	if m.Sender == tutor.SenderAssistant {
		label = theme.TutorLabel.Render("tutor>")
	}

	body := m.Text
	if m.ContentType == tutor.ContentImage {
		body = "[image] " + m.ImageURL
	}
	if m.AudioPath != "" {
		body += theme.Hint.Render("  (voice note: " + m.AudioPath + ")")
	}

	wrap := lipgloss.NewStyle().Width(s.width)
	return wrap.Render(label + " " + theme.Body.Render(body))
}

func (s Screen) renderStatus() string {
	switch {
	case s.errText != "":
		return theme.ErrorLine.Render("  " + s.errText)
	case s.waiting:
		return theme.Hint.Render("  tutor is thinking...")
	default:
		return ""
	}
}
