package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/omnitutor/omnitutor/internal/faults"
)

const (
	defaultEventBuffer = 16
	defaultTurnBuffer  = 8
)

// Channel is the live end of one session: a single goroutine owns the
// session and processes turns strictly in order, so the persisted
// transcript can never interleave. The first event on Events is always the
// history snapshot.
type Channel struct {
	session   *Session
	grade     string
	repo      Repository
	responder Responder
	synth     Synthesizer
	programs  ProgramSource

	turns  chan Turn
	events chan Event

	ctx    context.Context
	cancel context.CancelFunc

	closeOnce sync.Once
	done      chan struct{}
}

func newChannel(ctx context.Context, session *Session, grade string, deps channelDeps) (*Channel, error) {
	history, err := deps.repo.ListMessages(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c := &Channel{
		session:   session,
		grade:     grade,
		repo:      deps.repo,
		responder: deps.responder,
		synth:     deps.synth,
		programs:  deps.programs,
		turns:     make(chan Turn, defaultTurnBuffer),
		events:    make(chan Event, defaultEventBuffer),
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	go c.run(history)
	return c, nil
}

type channelDeps struct {
	repo      Repository
	responder Responder
	synth     Synthesizer
	programs  ProgramSource
}

// Session returns the session this channel serves.
func (c *Channel) Session() *Session { return c.session }

// Events is the ordered protocol event stream. Closed when the channel
// shuts down.
func (c *Channel) Events() <-chan Event { return c.events }

// Submit queues one student turn. Malformed turns are rejected here with a
// ValidationError and never reach the transcript; the channel stays open.
func (c *Channel) Submit(turn Turn) error {
	if err := validateTurn(turn); err != nil {
		return err
	}
	// Check closed state before the select: with buffer space free, a
	// two-way select against a cancelled context could still pick the send.
	if c.ctx.Err() != nil {
		return &faults.InvalidStateError{Entity: "session", State: "closed", Op: "submit turn"}
	}
	select {
	case c.turns <- turn:
		return nil
	case <-c.ctx.Done():
		return &faults.InvalidStateError{Entity: "session", State: "closed", Op: "submit turn"}
	}
}

// Close shuts the channel down. In-flight work is cancelled; the event
// stream is closed after the loop drains.
func (c *Channel) Close() {
	c.closeOnce.Do(c.cancel)
	<-c.done
}

func validateTurn(turn Turn) error {
	switch turn.ContentType {
	case ContentText:
		if strings.TrimSpace(turn.Text) == "" {
			return faults.Validationf("text turn requires text")
		}
	case ContentImage:
		if strings.TrimSpace(turn.ImageURL) == "" {
			return faults.Validationf("image turn requires an image URL")
		}
	default:
		return faults.Validationf("unknown content type %q", turn.ContentType)
	}
	return nil
}

func (c *Channel) run(history []*Message) {
	defer close(c.done)
	defer close(c.events)

	c.emit(Event{Type: EventHistory, Messages: history})

	for {
		select {
		case <-c.ctx.Done():
			return
		case turn := <-c.turns:
			c.handleTurn(turn)
		}
	}
}

// handleTurn processes one turn end to end: persist the student message,
// generate the reply, best-effort voice, persist the assistant message.
// A generation failure emits an error event and keeps the student message,
// so the learner can retry without retyping.
func (c *Channel) handleTurn(turn Turn) {
	student := &Message{
		ID:            uuid.New().String(),
		SessionID:     c.session.ID,
		Sender:        SenderStudent,
		ContentType:   turn.ContentType,
		RenderFormats: RenderFormats,
	}
	if turn.ContentType == ContentText {
		student.Text = turn.Text
	} else {
		student.ImageURL = turn.ImageURL
	}

	if err := c.repo.AppendMessage(c.ctx, student); err != nil {
		c.emit(Event{Type: EventError, Err: fmt.Errorf("persist message: %w", err)})
		return
	}
	c.emit(Event{Type: EventStudentMessage, Message: student})

	reply, err := c.generateReply()
	if err != nil {
		c.emit(Event{Type: EventError, Err: err})
		return
	}

	assistant := &Message{
		ID:            uuid.New().String(),
		SessionID:     c.session.ID,
		Sender:        SenderAssistant,
		ContentType:   ContentText,
		Text:          reply,
		RenderFormats: RenderFormats,
	}

	// Voice is best-effort: a synthesis failure only means no audio.
	if c.synth != nil && (turn.GenerateVoice || c.session.TTSEnabled) {
		if path, err := c.synth.Synthesize(c.ctx, c.session.ID, reply); err == nil {
			assistant.AudioPath = path
		}
	}

	if err := c.repo.AppendMessage(c.ctx, assistant); err != nil {
		c.emit(Event{Type: EventError, Err: fmt.Errorf("persist reply: %w", err)})
		return
	}
	c.emit(Event{Type: EventAssistantMessage, Message: assistant})
}

func (c *Channel) generateReply() (string, error) {
	transcript, err := c.repo.ListMessages(c.ctx, c.session.ID)
	if err != nil {
		return "", fmt.Errorf("load transcript: %w", err)
	}

	tc := TurnContext{Grade: c.grade}
	if c.session.ProgramID != "" && c.programs != nil {
		// Program context is flavor, not a dependency: a lookup failure
		// still lets the turn proceed.
		if info, err := c.programs.ProgramInfo(c.ctx, c.session.ProgramID); err == nil && info != nil {
			tc.SkillProfile = info.SkillProfile
			tc.ProgramSummary = info.Summary
			tc.ActiveLesson = info.ActiveLesson
		}
	}
	for _, m := range transcript {
		tc.Turns = append(tc.Turns, TranscriptTurn{
			Sender:   m.Sender,
			Text:     m.Text,
			ImageURL: m.ImageURL,
		})
	}

	return c.responder.Reply(c.ctx, tc)
}

func (c *Channel) emit(ev Event) {
	select {
	case c.events <- ev:
	case <-c.ctx.Done():
	}
}
