// Package chat implements the realtime tutoring session protocol: sessions,
// ordered message history, and per-session channels that serialize turns so
// a transcript is always a strict alternation of persisted messages.
package chat

import (
	"context"
	"time"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderStudent   Sender = "student"
	SenderAssistant Sender = "assistant"
)

// ContentType is the payload kind of a student turn.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
)

// RenderFormats lists how assistant replies may be rendered by a client.
var RenderFormats = []string{"markdown", "latex", "mermaid"}

// DefaultTitle names sessions opened without one.
const DefaultTitle = "Study chat"

// Session is one tutoring conversation, optionally bound to a program.
// UpdatedAt moves on every appended message, so the most recently active
// session sorts first in any listing.
type Session struct {
	ID         string
	StudentID  string
	ProgramID  string
	Title      string
	TTSEnabled bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Message is one persisted transcript entry. Seq orders the transcript;
// messages are append-only.
type Message struct {
	ID            string
	SessionID     string
	Sender        Sender
	ContentType   ContentType
	Text          string
	ImageURL      string
	AudioPath     string
	RenderFormats []string
	Seq           int64
	CreatedAt     time.Time
}

// Turn is one inbound student submission.
type Turn struct {
	ContentType   ContentType
	Text          string
	ImageURL      string
	GenerateVoice bool
}

// TranscriptTurn is one transcript entry handed to the responder.
type TranscriptTurn struct {
	Sender   Sender
	Text     string
	ImageURL string
}

// TurnContext is everything the responder needs to reply to a turn: the
// learner's program context plus the recent transcript, latest last.
type TurnContext struct {
	Grade          string
	SkillProfile   string
	ProgramSummary string
	ActiveLesson   string
	Turns          []TranscriptTurn
}

// Responder produces the assistant reply for one turn. Implemented by
// internal/content over a gateway provider.
type Responder interface {
	Reply(ctx context.Context, tc TurnContext) (string, error)
}

// Synthesizer renders reply text to audio, returning a local path or URL.
// Synthesis is best-effort: failures never fail the turn.
type Synthesizer interface {
	Synthesize(ctx context.Context, sessionID, text string) (string, error)
}

// ProgramInfo is the program context woven into the system prompt.
type ProgramInfo struct {
	SkillProfile string
	Summary      string
	ActiveLesson string
}

// ProgramSource resolves a session's bound program into prompt context.
type ProgramSource interface {
	ProgramInfo(ctx context.Context, programID string) (*ProgramInfo, error)
}

// Repository is the persistence boundary for sessions and transcripts.
// Implemented by internal/store.
type Repository interface {
	CreateSession(ctx context.Context, s *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	// LatestSession returns the student's most recently created session,
	// or nil when they have none.
	LatestSession(ctx context.Context, studentID string) (*Session, error)
	UpdateSession(ctx context.Context, s *Session) error

	// AppendMessage durably appends one message, assigning Seq and
	// CreatedAt, and bumps the session's UpdatedAt. Messages are never
	// updated or deleted.
	AppendMessage(ctx context.Context, m *Message) error
	// ListMessages returns the session transcript in Seq order.
	ListMessages(ctx context.Context, sessionID string) ([]*Message, error)
}
