package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	tutor "github.com/omnitutor/omnitutor/internal/chat"
)

// memRepo implements tutor.Repository in memory for testing.
type memRepo struct {
	mu       sync.Mutex
	sessions map[string]*tutor.Session
	messages map[string][]*tutor.Message
	seq      int64
}

func newMemRepo() *memRepo {
	return &memRepo{
		sessions: make(map[string]*tutor.Session),
		messages: make(map[string][]*tutor.Message),
	}
}

func (r *memRepo) CreateSession(_ context.Context, s *tutor.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.sessions[s.ID] = s
	return nil
}

func (r *memRepo) GetSession(_ context.Context, id string) (*tutor.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id], nil
}

func (r *memRepo) LatestSession(_ context.Context, studentID string) (*tutor.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *tutor.Session
	for _, s := range r.sessions {
		if s.StudentID != studentID {
			continue
		}
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	return latest, nil
}

func (r *memRepo) UpdateSession(_ context.Context, s *tutor.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

func (r *memRepo) AppendMessage(_ context.Context, m *tutor.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.Seq = r.seq
	m.CreatedAt = time.Now()
	r.messages[m.SessionID] = append(r.messages[m.SessionID], m)
	if s := r.sessions[m.SessionID]; s != nil {
		s.UpdatedAt = m.CreatedAt
	}
	return nil
}

func (r *memRepo) ListMessages(_ context.Context, sessionID string) ([]*tutor.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*tutor.Message(nil), r.messages[sessionID]...), nil
}

// stubResponder implements tutor.Responder with a canned reply.
type stubResponder struct {
	reply string
	err   error
}

func (r *stubResponder) Reply(_ context.Context, _ tutor.TurnContext) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.reply, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T, responder tutor.Responder) (Screen, *tutor.Channel) {
	t.Helper()
	registry := tutor.NewRegistry(newMemRepo(), responder, nil, nil)
	t.Cleanup(registry.CloseAll)

	ch, err := registry.Open(context.Background(), tutor.OpenInput{
		StudentID: "stu-1",
		Grade:     "5",
	})
	if err != nil {
		t.Fatalf("open channel: %v", err)
	}

	s := New(ch)
	s.width = 80
	s.height = 24
	return s, ch
}

func waitEvent(t *testing.T, ch *tutor.Channel, want tutor.EventType) tutor.Event {
	t.Helper()
	for {
		select {
		case ev, ok := <-ch.Events():
			if !ok {
				t.Fatalf("event stream closed while waiting for %q", want)
			}
			if ev.Type == want {
				return ev
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %q event", want)
		}
	}
}

func TestScreenHistoryEvent(t *testing.T) {
	s, _ := testScreen(t, &stubResponder{reply: "hello"})

	history := tutor.Event{
		Type: tutor.EventHistory,
		Messages: []*tutor.Message{
			{Sender: tutor.SenderStudent, ContentType: tutor.ContentText, Text: "hi"},
			{Sender: tutor.SenderAssistant, ContentType: tutor.ContentText, Text: "hello!"},
		},
	}
	m, cmd := s.Update(channelEventMsg{ev: history, ok: true})
	s = m.(Screen)

	if !s.loaded {
		t.Error("expected screen to be loaded after history event")
	}
	if len(s.messages) != 2 {
		t.Errorf("messages = %d, want 2", len(s.messages))
	}
	if cmd == nil {
		t.Error("expected the event wait to be re-armed")
	}
}

func TestScreenSubmitTurn(t *testing.T) {
	s, ch := testScreen(t, &stubResponder{reply: "2 + 2 = 4"})
	waitEvent(t, ch, tutor.EventHistory)
	s.loaded = true

	s.input.SetValue("what is 2 + 2?")
	m, _ := s.Update(specialKey(tea.KeyEnter))
	s = m.(Screen)

	if !s.waiting {
		t.Error("expected a pending turn after submit")
	}
	if s.input.Value() != "" {
		t.Errorf("input = %q, want empty after submit", s.input.Value())
	}

	student := waitEvent(t, ch, tutor.EventStudentMessage)
	if student.Message.Text != "what is 2 + 2?" {
		t.Errorf("student text = %q", student.Message.Text)
	}

	assistant := waitEvent(t, ch, tutor.EventAssistantMessage)
	m, _ = s.Update(channelEventMsg{ev: assistant, ok: true})
	s = m.(Screen)

	if s.waiting {
		t.Error("expected turn to resolve after assistant reply")
	}
	if got := s.messages[len(s.messages)-1].Text; got != "2 + 2 = 4" {
		t.Errorf("last message = %q, want reply", got)
	}
}

func TestScreenImageTurn(t *testing.T) {
	s, ch := testScreen(t, &stubResponder{reply: "nice volcano!"})
	waitEvent(t, ch, tutor.EventHistory)
	s.loaded = true

	s.input.SetValue("/image https://example.com/volcano.png")
	m, _ := s.Update(specialKey(tea.KeyEnter))
	s = m.(Screen)

	if !s.waiting {
		t.Error("expected a pending turn after image submit")
	}

	student := waitEvent(t, ch, tutor.EventStudentMessage)
	if student.Message.ContentType != tutor.ContentImage {
		t.Errorf("content type = %q, want image", student.Message.ContentType)
	}
	if student.Message.ImageURL != "https://example.com/volcano.png" {
		t.Errorf("image URL = %q", student.Message.ImageURL)
	}
}

func TestScreenErrorEvent(t *testing.T) {
	s, _ := testScreen(t, &stubResponder{reply: "hello"})
	s.loaded = true
	s.waiting = true

	m, cmd := s.Update(channelEventMsg{
		ev: tutor.Event{Type: tutor.EventError, Err: errors.New("model offline")},
		ok: true,
	})
	s = m.(Screen)

	if s.waiting {
		t.Error("expected turn to resolve on error")
	}
	if !strings.Contains(s.errText, "model offline") {
		t.Errorf("errText = %q, want the failure surfaced", s.errText)
	}
	if cmd == nil {
		t.Error("expected the event wait to be re-armed after an error")
	}
}

func TestScreenIgnoresEnterWhileWaiting(t *testing.T) {
	s, _ := testScreen(t, &stubResponder{reply: "hello"})
	s.loaded = true
	s.waiting = true

	s.input.SetValue("second question")
	m, _ := s.Update(specialKey(tea.KeyEnter))
	s = m.(Screen)

	if s.input.Value() != "second question" {
		t.Error("expected input to be kept while a turn is pending")
	}
}

func TestScreenQuitKeys(t *testing.T) {
	s, _ := testScreen(t, &stubResponder{reply: "hello"})
	s.loaded = true

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Error("expected a quit command on escape")
	}
}

func TestScreenStreamClosed(t *testing.T) {
	s, _ := testScreen(t, &stubResponder{reply: "hello"})
	s.loaded = true

	_, cmd := s.Update(channelEventMsg{ok: false})
	if cmd == nil {
		t.Error("expected a quit command when the stream closes")
	}
}

func TestRenderMessage(t *testing.T) {
	s, _ := testScreen(t, &stubResponder{reply: "hello"})

	text := s.renderMessage(&tutor.Message{
		Sender:      tutor.SenderAssistant,
		ContentType: tutor.ContentText,
		Text:        "keep going!",
		AudioPath:   "/tmp/reply.mp3",
	})
	if !strings.Contains(text, "keep going!") {
		t.Error("expected message text in render")
	}
	if !strings.Contains(text, "/tmp/reply.mp3") {
		t.Error("expected voice note path in render")
	}

	image := s.renderMessage(&tutor.Message{
		Sender:      tutor.SenderStudent,
		ContentType: tutor.ContentImage,
		ImageURL:    "https://example.com/v.png",
	})
	if !strings.Contains(image, "[image] https://example.com/v.png") {
		t.Error("expected image marker in render")
	}
}

func TestRenderStatus(t *testing.T) {
	s, _ := testScreen(t, &stubResponder{reply: "hello"})

	if got := s.renderStatus(); got != "" {
		t.Errorf("idle status = %q, want empty", got)
	}

	s.waiting = true
	if got := s.renderStatus(); !strings.Contains(got, "thinking") {
		t.Errorf("waiting status = %q", got)
	}

	s.errText = "boom"
	if got := s.renderStatus(); !strings.Contains(got, "boom") {
		t.Errorf("error status = %q", got)
	}
}
