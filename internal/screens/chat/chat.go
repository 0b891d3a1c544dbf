// Package chat renders a live tutoring session as a terminal UI: the
// transcript on top, a turn input at the bottom, protocol events streamed
// in as they arrive.
package chat

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	tutor "github.com/omnitutor/omnitutor/internal/chat"
)

// Screen is the root Bubble Tea model for one tutoring session.
type Screen struct {
	channel *tutor.Channel

	input    textinput.Model
	messages []*tutor.Message
	loaded   bool // history snapshot received
	waiting  bool // a turn is in flight
	errText  string

	width  int
	height int
}

// New wires a screen to a live channel. The channel's first event is the
// history snapshot, which populates the transcript.
func New(channel *tutor.Channel) Screen {
	ti := textinput.New()
	ti.Placeholder = "Ask your tutor anything..."
	ti.CharLimit = 2000
	ti.Focus()

	return Screen{
		channel: channel,
		input:   ti,
	}
}

func (s Screen) Init() tea.Cmd {
	return tea.Batch(
		s.input.Focus(),
		s.nextEvent(),
	)
}

// nextEvent waits for one event on the channel's stream. Re-armed after
// every delivery so the transcript stays live between keystrokes.
func (s Screen) nextEvent() tea.Cmd {
	events := s.channel.Events()
	return func() tea.Msg {
		ev, ok := <-events
		return channelEventMsg{ev: ev, ok: ok}
	}
}

func (s Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case channelEventMsg:
		return s.handleEvent(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s Screen) handleEvent(msg channelEventMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		// The channel shut down under us; nothing more will arrive.
		return s, tea.Quit
	}

	switch msg.ev.Type {
	case tutor.EventHistory:
		s.messages = msg.ev.Messages
		s.loaded = true

	case tutor.EventStudentMessage:
		s.messages = append(s.messages, msg.ev.Message)

	case tutor.EventAssistantMessage:
		s.messages = append(s.messages, msg.ev.Message)
		s.waiting = false

	case tutor.EventError:
		s.errText = fmt.Sprintf("%v — your message was saved, try again", msg.ev.Err)
		s.waiting = false
	}

	return s, s.nextEvent()
}

func (s Screen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return s, tea.Quit
	case "enter":
		return s.submitTurn()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitTurn queues the typed line as one turn. "/image <url>" shares an
// image instead of text. One turn at a time: Enter is ignored while a
// reply is pending.
func (s Screen) submitTurn() (tea.Model, tea.Cmd) {
	if s.waiting {
		return s, nil
	}

	line := strings.TrimSpace(s.input.Value())
	if line == "" {
		return s, nil
	}

	turn := tutor.Turn{ContentType: tutor.ContentText, Text: line}
	if url, ok := strings.CutPrefix(line, "/image "); ok {
		turn = tutor.Turn{ContentType: tutor.ContentImage, ImageURL: strings.TrimSpace(url)}
	}

	if err := s.channel.Submit(turn); err != nil {
		s.errText = err.Error()
		return s, nil
	}

	s.errText = ""
	s.waiting = true
	s.input.SetValue("")
	return s, nil
}
