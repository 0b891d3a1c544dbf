package store

import (
	"context"
	"fmt"

	"github.com/omnitutor/omnitutor/ent"
	"github.com/omnitutor/omnitutor/ent/chatmessage"
	"github.com/omnitutor/omnitutor/ent/chatsession"
	"github.com/omnitutor/omnitutor/internal/chat"
)

// chatRepo implements chat.Repository backed by ent.
type chatRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *chatRepo) CreateSession(ctx context.Context, s *chat.Session) error {
	create := r.client.ChatSession.Create().
		SetID(s.ID).
		SetStudentID(s.StudentID).
		SetProgramID(s.ProgramID).
		SetTtsEnabled(s.TTSEnabled)
	if s.Title != "" {
		create = create.SetTitle(s.Title)
	}
	if !s.CreatedAt.IsZero() {
		create = create.SetCreatedAt(s.CreatedAt)
	}
	row, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	s.Title = row.Title
	s.CreatedAt = row.CreatedAt
	s.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *chatRepo) GetSession(ctx context.Context, id string) (*chat.Session, error) {
	row, err := r.client.ChatSession.Query().
		Where(chatsession.ID(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *chatRepo) LatestSession(ctx context.Context, studentID string) (*chat.Session, error) {
	row, err := r.client.ChatSession.Query().
		Where(chatsession.StudentID(studentID)).
		Order(ent.Desc(chatsession.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *chatRepo) UpdateSession(ctx context.Context, s *chat.Session) error {
	row, err := r.client.ChatSession.UpdateOneID(s.ID).
		SetProgramID(s.ProgramID).
		SetTitle(s.Title).
		SetTtsEnabled(s.TTSEnabled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	s.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *chatRepo) AppendMessage(ctx context.Context, m *chat.Message) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	row, err := r.client.ChatMessage.Create().
		SetID(m.ID).
		SetSequence(seqNum).
		SetSessionID(m.SessionID).
		SetSender(string(m.Sender)).
		SetContentType(string(m.ContentType)).
		SetText(m.Text).
		SetImageURL(m.ImageURL).
		SetAudioPath(m.AudioPath).
		SetRenderFormats(m.RenderFormats).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}

	m.Seq = row.Sequence
	m.CreatedAt = row.RecordedAt

	// Activity moves the session's updated_at so recency sorts hold.
	if err := r.client.ChatSession.UpdateOneID(m.SessionID).
		SetUpdatedAt(m.CreatedAt).
		Exec(ctx); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

func (r *chatRepo) ListMessages(ctx context.Context, sessionID string) ([]*chat.Message, error) {
	rows, err := r.client.ChatMessage.Query().
		Where(chatmessage.SessionID(sessionID)).
		Order(ent.Asc(chatmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]*chat.Message, len(rows))
	for i, row := range rows {
		out[i] = messageFromEnt(row)
	}
	return out, nil
}

func sessionFromEnt(row *ent.ChatSession) *chat.Session {
	return &chat.Session{
		ID:         row.ID,
		StudentID:  row.StudentID,
		ProgramID:  row.ProgramID,
		Title:      row.Title,
		TTSEnabled: row.TtsEnabled,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func messageFromEnt(row *ent.ChatMessage) *chat.Message {
	return &chat.Message{
		ID:            row.ID,
		SessionID:     row.SessionID,
		Sender:        chat.Sender(row.Sender),
		ContentType:   chat.ContentType(row.ContentType),
		Text:          row.Text,
		ImageURL:      row.ImageURL,
		AudioPath:     row.AudioPath,
		RenderFormats: row.RenderFormats,
		Seq:           row.Sequence,
		CreatedAt:     row.RecordedAt,
	}
}
