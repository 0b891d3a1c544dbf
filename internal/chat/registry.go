package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/omnitutor/omnitutor/internal/faults"
)

// Registry tracks the live channel per session. A session has at most one
// live channel: attaching again closes the previous one, so two clients
// can never interleave turns on the same transcript.
type Registry struct {
	repo      Repository
	responder Responder
	synth     Synthesizer
	programs  ProgramSource

	mu       sync.Mutex
	channels map[string]*Channel
}

// NewRegistry creates a session registry. synth and programs may be nil;
// voice and program context degrade gracefully without them.
func NewRegistry(repo Repository, responder Responder, synth Synthesizer, programs ProgramSource) *Registry {
	return &Registry{
		repo:      repo,
		responder: responder,
		synth:     synth,
		programs:  programs,
		channels:  make(map[string]*Channel),
	}
}

// OpenInput describes a session to create or attach to.
type OpenInput struct {
	// SessionID is the session to attach to. Empty creates a new session.
	SessionID string

	StudentID string
	Grade     string

	// ProgramID binds the session to a program. An existing unbound
	// session is bound on attach; an existing binding is never replaced.
	ProgramID string

	// Title names the session. Empty gets the default; a non-empty title
	// on attach renames an existing session.
	Title string

	// TTSEnabled turns voice on for the whole session. Sticky: once
	// enabled, reattaching without it keeps voice on.
	TTSEnabled bool
}

// Open creates a session or attaches to an existing one, returning its
// live channel. The channel's first event is the history snapshot.
func (r *Registry) Open(ctx context.Context, in OpenInput) (*Channel, error) {
	session, err := r.ensureSession(ctx, in)
	if err != nil {
		return nil, err
	}
	return r.attach(ctx, session, in.Grade)
}

// OpenDefault attaches to the student's most recent session, creating one
// on first use. Entry point for clients that don't track session IDs.
func (r *Registry) OpenDefault(ctx context.Context, in OpenInput) (*Channel, error) {
	if in.SessionID == "" && strings.TrimSpace(in.StudentID) != "" {
		latest, err := r.repo.LatestSession(ctx, in.StudentID)
		if err != nil {
			return nil, fmt.Errorf("find session: %w", err)
		}
		if latest != nil {
			in.SessionID = latest.ID
		}
	}
	return r.Open(ctx, in)
}

// Resume reattaches to an existing session by ID.
func (r *Registry) Resume(ctx context.Context, sessionID, grade string) (*Channel, error) {
	session, err := r.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, &faults.NotFoundError{Entity: "session", ID: sessionID}
	}
	return r.attach(ctx, session, grade)
}

// CloseAll shuts down every live channel. Used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	channels := make([]*Channel, 0, len(r.channels))
	for _, c := range r.channels {
		channels = append(channels, c)
	}
	r.channels = make(map[string]*Channel)
	r.mu.Unlock()

	for _, c := range channels {
		c.Close()
	}
}

func (r *Registry) ensureSession(ctx context.Context, in OpenInput) (*Session, error) {
	if in.SessionID != "" {
		session, err := r.repo.GetSession(ctx, in.SessionID)
		if err != nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
		if session != nil {
			return r.refreshSession(ctx, session, in)
		}
	}

	if strings.TrimSpace(in.StudentID) == "" {
		return nil, faults.Validationf("student id is required to open a session")
	}

	session := &Session{
		ID:         in.SessionID,
		StudentID:  in.StudentID,
		ProgramID:  in.ProgramID,
		Title:      strings.TrimSpace(in.Title),
		TTSEnabled: in.TTSEnabled,
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.Title == "" {
		session.Title = DefaultTitle
	}
	if err := r.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// refreshSession applies the attach-time upgrades an existing session
// allows: late program binding, a rename, and sticky voice.
func (r *Registry) refreshSession(ctx context.Context, session *Session, in OpenInput) (*Session, error) {
	changed := false
	if in.ProgramID != "" && session.ProgramID == "" {
		session.ProgramID = in.ProgramID
		changed = true
	}
	if title := strings.TrimSpace(in.Title); title != "" && title != session.Title {
		session.Title = title
		changed = true
	}
	if in.TTSEnabled && !session.TTSEnabled {
		session.TTSEnabled = true
		changed = true
	}
	if changed {
		if err := r.repo.UpdateSession(ctx, session); err != nil {
			return nil, fmt.Errorf("update session: %w", err)
		}
	}
	return session, nil
}

// attach swaps in a fresh channel for the session. The whole swap happens
// under the registry lock: a concurrent attach on the same session must
// observe either the previous channel or the new one, never a window where
// two channels are live.
func (r *Registry) attach(ctx context.Context, session *Session, grade string) (*Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev := r.channels[session.ID]; prev != nil {
		delete(r.channels, session.ID)
		prev.Close()
	}

	ch, err := newChannel(ctx, session, grade, channelDeps{
		repo:      r.repo,
		responder: r.responder,
		synth:     r.synth,
		programs:  r.programs,
	})
	if err != nil {
		return nil, err
	}

	r.channels[session.ID] = ch
	return ch, nil
}
