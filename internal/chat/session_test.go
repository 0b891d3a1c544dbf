package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/omnitutor/omnitutor/internal/faults"
)

type memRepo struct {
	mu       sync.Mutex
	sessions map[string]*Session
	messages map[string][]*Message
	seq      int64

	appendErr error
}

func newMemRepo() *memRepo {
	return &memRepo{
		sessions: map[string]*Session{},
		messages: map[string][]*Message{},
	}
}

func (r *memRepo) CreateSession(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.sessions[s.ID] = s
	return nil
}

func (r *memRepo) GetSession(_ context.Context, id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id], nil
}

func (r *memRepo) LatestSession(_ context.Context, studentID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *Session
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

func (r *memRepo) UpdateSession(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

func (r *memRepo) AppendMessage(_ context.Context, m *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	r.seq++
	m.Seq = r.seq
	m.CreatedAt = time.Now()
	r.messages[m.SessionID] = append(r.messages[m.SessionID], m)
	if s := r.sessions[m.SessionID]; s != nil {
		s.UpdatedAt = m.CreatedAt
	}
	return nil
}

func (r *memRepo) ListMessages(_ context.Context, sessionID string) ([]*Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Message(nil), r.messages[sessionID]...), nil
}

// scriptedResponder returns queued replies or errors in FIFO order and
// records the contexts it saw.
type scriptedResponder struct {
	mu      sync.Mutex
	replies []replyScript
	Seen    []TurnContext
}

type replyScript struct {
	text string
	err  error
}

func (s *scriptedResponder) Reply(_ context.Context, tc TurnContext) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Seen = append(s.Seen, tc)
	if len(s.replies) == 0 {
		return "", &faults.GenerationError{Stage: "chat", Err: errors.New("no scripted reply")}
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r.text, r.err
}

func (s *scriptedResponder) queue(text string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, replyScript{text: text, err: err})
}

type fakeSynth struct {
	err   error
	calls int
}

func (f *fakeSynth) Synthesize(_ context.Context, sessionID, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "audio/" + sessionID + ".mp3", nil
}

type fakePrograms struct {
	info *ProgramInfo
	err  error
}

func (f *fakePrograms) ProgramInfo(context.Context, string) (*ProgramInfo, error) {
	return f.info, f.err
}

func nextEvent(t *testing.T, ch *Channel) Event {
	t.Helper()
	select {
	case ev, ok := <-ch.Events():
		if !ok {
			t.Fatal("event stream closed")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func openTestChannel(t *testing.T, repo Repository, resp Responder, synth Synthesizer, programs ProgramSource, in OpenInput) (*Registry, *Channel) {
	t.Helper()
	reg := NewRegistry(repo, resp, synth, programs)
	ch, err := reg.Open(context.Background(), in)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(reg.CloseAll)
	return reg, ch
}

func TestChannelHistoryFirst(t *testing.T) {
	repo := newMemRepo()
	repo.sessions["s1"] = &Session{ID: "s1", StudentID: "student-1"}
	repo.messages["s1"] = []*Message{
		{ID: "m1", SessionID: "s1", Sender: SenderStudent, Text: "hi", Seq: 1},
		{ID: "m2", SessionID: "s1", Sender: SenderAssistant, Text: "hello", Seq: 2},
	}

	_, ch := openTestChannel(t, repo, &scriptedResponder{}, nil, nil, OpenInput{SessionID: "s1"})

	ev := nextEvent(t, ch)
	if ev.Type != EventHistory {
		t.Fatalf("first event = %s, want history", ev.Type)
	}
	if len(ev.Messages) != 2 || ev.Messages[0].Seq != 1 {
		t.Errorf("history = %+v", ev.Messages)
	}
}

func TestChannelTurnFlow(t *testing.T) {
	repo := newMemRepo()
	resp := &scriptedResponder{}
	resp.queue("Volcanoes are mountains that erupt!", nil)

	_, ch := openTestChannel(t, repo, resp, nil, nil, OpenInput{StudentID: "student-1"})
	nextEvent(t, ch) // history

	if err := ch.Submit(Turn{ContentType: ContentText, Text: "What is a volcano?"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	ev := nextEvent(t, ch)
	if ev.Type != EventStudentMessage || ev.Message.Text != "What is a volcano?" {
		t.Fatalf("event = %+v", ev)
	}
	if ev.Message.Seq == 0 {
		t.Error("student message missing sequence")
	}

	ev = nextEvent(t, ch)
	if ev.Type != EventAssistantMessage {
		t.Fatalf("event = %+v", ev)
	}
	if ev.Message.Text != "Volcanoes are mountains that erupt!" {
		t.Errorf("reply = %q", ev.Message.Text)
	}
	if ev.Message.Seq <= 1 {
		t.Error("assistant message not ordered after student message")
	}

	transcript, _ := repo.ListMessages(context.Background(), ch.Session().ID)
	if len(transcript) != 2 {
		t.Errorf("transcript = %d messages, want 2", len(transcript))
	}
}

func TestChannelSerializesTurns(t *testing.T) {
	repo := newMemRepo()
	resp := &scriptedResponder{}
	for i := 0; i < 5; i++ {
		resp.queue(fmt.Sprintf("reply %d", i), nil)
	}

	_, ch := openTestChannel(t, repo, resp, nil, nil, OpenInput{StudentID: "student-1"})
	nextEvent(t, ch)

	for i := 0; i < 5; i++ {
		if err := ch.Submit(Turn{ContentType: ContentText, Text: fmt.Sprintf("question %d", i)}); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}

	// Expect strict alternation: student 0, reply 0, student 1, reply 1...
	for i := 0; i < 5; i++ {
		sev := nextEvent(t, ch)
		if sev.Type != EventStudentMessage || sev.Message.Text != fmt.Sprintf("question %d", i) {
			t.Fatalf("turn %d student event = %+v", i, sev)
		}
		aev := nextEvent(t, ch)
		if aev.Type != EventAssistantMessage || aev.Message.Text != fmt.Sprintf("reply %d", i) {
			t.Fatalf("turn %d assistant event = %+v", i, aev)
		}
	}

	transcript, _ := repo.ListMessages(context.Background(), ch.Session().ID)
	for i := 1; i < len(transcript); i++ {
		if transcript[i].Seq <= transcript[i-1].Seq {
			t.Fatal("transcript sequence not monotonic")
		}
	}
}

func TestChannelFailedTurnThenRetry(t *testing.T) {
	repo := newMemRepo()
	resp := &scriptedResponder{}
	resp.queue("", &faults.GenerationError{Stage: "chat", Err: errors.New("provider down")})
	resp.queue("Here is your answer!", nil)

	_, ch := openTestChannel(t, repo, resp, nil, nil, OpenInput{StudentID: "student-1"})
	nextEvent(t, ch)

	if err := ch.Submit(Turn{ContentType: ContentText, Text: "Why is lava hot?"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	nextEvent(t, ch) // student message

	ev := nextEvent(t, ch)
	if ev.Type != EventError {
		t.Fatalf("event = %+v, want error", ev)
	}
	if !errors.Is(ev.Err, faults.ErrGeneration) {
		t.Errorf("err = %v", ev.Err)
	}

	// The failed student turn stays in the transcript.
	transcript, _ := repo.ListMessages(context.Background(), ch.Session().ID)
	if len(transcript) != 1 || transcript[0].Sender != SenderStudent {
		t.Fatalf("transcript after failure = %+v", transcript)
	}

	// The channel is still open; the retry succeeds.
	if err := ch.Submit(Turn{ContentType: ContentText, Text: "Why is lava hot?"}); err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	nextEvent(t, ch) // student message
	ev = nextEvent(t, ch)
	if ev.Type != EventAssistantMessage || ev.Message.Text != "Here is your answer!" {
		t.Fatalf("retry event = %+v", ev)
	}
}

func TestChannelValidation(t *testing.T) {
	repo := newMemRepo()
	_, ch := openTestChannel(t, repo, &scriptedResponder{}, nil, nil, OpenInput{StudentID: "student-1"})
	nextEvent(t, ch)

	tests := []Turn{
		{ContentType: ContentText, Text: "   "},
		{ContentType: ContentImage},
		{ContentType: "video", Text: "x"},
	}
	for _, turn := range tests {
		if err := ch.Submit(turn); !errors.Is(err, faults.ErrValidation) {
			t.Errorf("Submit(%+v) err = %v, want validation", turn, err)
		}
	}

	// Nothing persisted, channel still usable.
	transcript, _ := repo.ListMessages(context.Background(), ch.Session().ID)
	if len(transcript) != 0 {
		t.Errorf("transcript = %+v, want empty", transcript)
	}
}

func TestChannelVoiceBestEffort(t *testing.T) {
	t.Run("audio attached on success", func(t *testing.T) {
		repo := newMemRepo()
		resp := &scriptedResponder{}
		resp.queue("Listen up!", nil)
		synth := &fakeSynth{}

		_, ch := openTestChannel(t, repo, resp, synth, nil, OpenInput{StudentID: "student-1", TTSEnabled: true})
		nextEvent(t, ch)

		ch.Submit(Turn{ContentType: ContentText, Text: "Tell me more"})
		nextEvent(t, ch)
		ev := nextEvent(t, ch)
		if ev.Message.AudioPath == "" {
			t.Error("assistant message missing audio path")
		}
	})

	t.Run("synthesis failure keeps the reply", func(t *testing.T) {
		repo := newMemRepo()
		resp := &scriptedResponder{}
		resp.queue("Still here!", nil)
		synth := &fakeSynth{err: errors.New("tts down")}

		_, ch := openTestChannel(t, repo, resp, synth, nil, OpenInput{StudentID: "student-1", TTSEnabled: true})
		nextEvent(t, ch)

		ch.Submit(Turn{ContentType: ContentText, Text: "Tell me more"})
		nextEvent(t, ch)
		ev := nextEvent(t, ch)
		if ev.Type != EventAssistantMessage || ev.Message.AudioPath != "" {
			t.Errorf("event = %+v", ev)
		}
	})

	t.Run("no voice without request or session flag", func(t *testing.T) {
		repo := newMemRepo()
		resp := &scriptedResponder{}
		resp.queue("Quiet reply", nil)
		synth := &fakeSynth{}

		_, ch := openTestChannel(t, repo, resp, synth, nil, OpenInput{StudentID: "student-1"})
		nextEvent(t, ch)

		ch.Submit(Turn{ContentType: ContentText, Text: "hi"})
		nextEvent(t, ch)
		nextEvent(t, ch)
		if synth.calls != 0 {
			t.Errorf("synth calls = %d, want 0", synth.calls)
		}
	})
}

func TestChannelProgramContext(t *testing.T) {
	repo := newMemRepo()
	resp := &scriptedResponder{}
	resp.queue("Context-aware reply", nil)
	programs := &fakePrograms{info: &ProgramInfo{
		SkillProfile: "curious beginner",
		Summary:      "Volcano journey",
		ActiveLesson: "Magma Chambers",
	}}

	_, ch := openTestChannel(t, repo, resp, nil, programs, OpenInput{
		StudentID: "student-1", ProgramID: "prog-1", Grade: "4",
	})
	nextEvent(t, ch)

	ch.Submit(Turn{ContentType: ContentText, Text: "What next?"})
	nextEvent(t, ch)
	nextEvent(t, ch)

	resp.mu.Lock()
	defer resp.mu.Unlock()
	tc := resp.Seen[0]
	if tc.SkillProfile != "curious beginner" || tc.ActiveLesson != "Magma Chambers" || tc.Grade != "4" {
		t.Errorf("turn context = %+v", tc)
	}
	if len(tc.Turns) != 1 || tc.Turns[0].Text != "What next?" {
		t.Errorf("transcript turns = %+v", tc.Turns)
	}
}

func TestChannelProgramLookupFailureStillReplies(t *testing.T) {
	repo := newMemRepo()
	resp := &scriptedResponder{}
	resp.queue("Works anyway", nil)
	programs := &fakePrograms{err: errors.New("store down")}

	_, ch := openTestChannel(t, repo, resp, nil, programs, OpenInput{
		StudentID: "student-1", ProgramID: "prog-1",
	})
	nextEvent(t, ch)

	ch.Submit(Turn{ContentType: ContentText, Text: "hello?"})
	nextEvent(t, ch)
	ev := nextEvent(t, ch)
	if ev.Type != EventAssistantMessage {
		t.Fatalf("event = %+v", ev)
	}
}

func TestChannelSubmitAfterClose(t *testing.T) {
	repo := newMemRepo()
	reg := NewRegistry(repo, &scriptedResponder{}, nil, nil)
	ch, err := reg.Open(context.Background(), OpenInput{StudentID: "student-1"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	nextEvent(t, ch)
	ch.Close()

	// Every submission after Close is rejected, including past the point
	// where the turn buffer would have had free space.
	for i := 0; i < 2*defaultTurnBuffer; i++ {
		err = ch.Submit(Turn{ContentType: ContentText, Text: "anyone?"})
		if !errors.Is(err, faults.ErrInvalidState) {
			t.Fatalf("Submit %d after close err = %v, want invalid state", i, err)
		}
	}
}
