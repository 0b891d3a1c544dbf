package chat

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/omnitutor/omnitutor/internal/faults"
)

func TestRegistryOpenCreatesSession(t *testing.T) {
	repo := newMemRepo()
	reg := NewRegistry(repo, &scriptedResponder{}, nil, nil)
	defer reg.CloseAll()

	ch, err := reg.Open(context.Background(), OpenInput{StudentID: "student-1", ProgramID: "prog-1"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s := ch.Session()
	if s.ID == "" || s.StudentID != "student-1" || s.ProgramID != "prog-1" {
		t.Errorf("session = %+v", s)
	}
	if repo.sessions[s.ID] == nil {
		t.Error("session not persisted")
	}
}

func TestRegistryOpenRequiresStudent(t *testing.T) {
	reg := NewRegistry(newMemRepo(), &scriptedResponder{}, nil, nil)

	_, err := reg.Open(context.Background(), OpenInput{})
	if !errors.Is(err, faults.ErrValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestRegistryReattachClosesPreviousChannel(t *testing.T) {
	repo := newMemRepo()
	reg := NewRegistry(repo, &scriptedResponder{}, nil, nil)
	defer reg.CloseAll()

	first, err := reg.Open(context.Background(), OpenInput{StudentID: "student-1"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	nextEvent(t, first)
	sessionID := first.Session().ID

	second, err := reg.Open(context.Background(), OpenInput{SessionID: sessionID})
	if err != nil {
		t.Fatalf("reattach Open: %v", err)
	}
	nextEvent(t, second)

	// The first channel is closed; submissions are rejected.
	err = first.Submit(Turn{ContentType: ContentText, Text: "still there?"})
	if !errors.Is(err, faults.ErrInvalidState) {
		t.Fatalf("old channel Submit err = %v, want invalid state", err)
	}

	// The new channel works.
	if err := second.Submit(Turn{ContentType: ContentText, Text: "hello"}); err != nil {
		t.Fatalf("new channel Submit: %v", err)
	}
}

func TestRegistryConcurrentReattach(t *testing.T) {
	repo := newMemRepo()
	repo.sessions["s1"] = &Session{ID: "s1", StudentID: "student-1"}
	reg := NewRegistry(repo, &scriptedResponder{}, nil, nil)
	defer reg.CloseAll()

	const attachers = 16
	channels := make([]*Channel, attachers)
	var wg sync.WaitGroup
	for i := 0; i < attachers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ch, err := reg.Open(context.Background(), OpenInput{SessionID: "s1"})
			if err != nil {
				t.Errorf("Open %d: %v", i, err)
				return
			}
			channels[i] = ch
		}(i)
	}
	wg.Wait()

	// Exactly one channel survives the race; all others were closed by a
	// later attach and reject submissions.
	live := 0
	for _, ch := range channels {
		if ch == nil {
			continue
		}
		if err := ch.Submit(Turn{ContentType: ContentText, Text: "ping"}); err == nil {
			live++
		} else if !errors.Is(err, faults.ErrInvalidState) {
			t.Errorf("Submit err = %v, want invalid state", err)
		}
	}
	if live != 1 {
		t.Fatalf("live channels = %d, want exactly 1", live)
	}
}

func TestRegistryOpenDefault(t *testing.T) {
	repo := newMemRepo()
	reg := NewRegistry(repo, &scriptedResponder{}, nil, nil)
	defer reg.CloseAll()

	// First use creates a session.
	ch, err := reg.OpenDefault(context.Background(), OpenInput{StudentID: "student-1"})
	if err != nil {
		t.Fatalf("OpenDefault: %v", err)
	}
	nextEvent(t, ch)
	created := ch.Session().ID

	// Subsequent use resumes it instead of creating another.
	ch2, err := reg.OpenDefault(context.Background(), OpenInput{StudentID: "student-1"})
	if err != nil {
		t.Fatalf("second OpenDefault: %v", err)
	}
	nextEvent(t, ch2)
	if ch2.Session().ID != created {
		t.Errorf("session = %q, want resumed %q", ch2.Session().ID, created)
	}
	if len(repo.sessions) != 1 {
		t.Errorf("sessions persisted = %d, want 1", len(repo.sessions))
	}

	// A different student gets their own session.
	ch3, err := reg.OpenDefault(context.Background(), OpenInput{StudentID: "student-2"})
	if err != nil {
		t.Fatalf("OpenDefault for second student: %v", err)
	}
	if ch3.Session().ID == created {
		t.Error("students share a default session")
	}
}

func TestRegistrySessionTitle(t *testing.T) {
	repo := newMemRepo()
	reg := NewRegistry(repo, &scriptedResponder{}, nil, nil)
	defer reg.CloseAll()

	// Untitled sessions get the default.
	ch, err := reg.Open(context.Background(), OpenInput{StudentID: "student-1"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if ch.Session().Title != DefaultTitle {
		t.Errorf("title = %q, want default", ch.Session().Title)
	}
	sessionID := ch.Session().ID

	// A title on attach renames the session.
	ch2, err := reg.Open(context.Background(), OpenInput{SessionID: sessionID, Title: "Volcano homework"})
	if err != nil {
		t.Fatalf("reattach Open: %v", err)
	}
	if ch2.Session().Title != "Volcano homework" {
		t.Errorf("title after rename = %q", ch2.Session().Title)
	}
	if repo.sessions[sessionID].Title != "Volcano homework" {
		t.Error("rename not persisted")
	}

	// A fresh session keeps the title it was opened with.
	ch3, err := reg.Open(context.Background(), OpenInput{StudentID: "student-2", Title: "Fractions"})
	if err != nil {
		t.Fatalf("titled Open: %v", err)
	}
	if ch3.Session().Title != "Fractions" {
		t.Errorf("title = %q", ch3.Session().Title)
	}
}

func TestRegistryResume(t *testing.T) {
	repo := newMemRepo()
	repo.sessions["s1"] = &Session{ID: "s1", StudentID: "student-1"}
	repo.messages["s1"] = []*Message{{ID: "m1", SessionID: "s1", Sender: SenderStudent, Text: "hi", Seq: 1}}

	reg := NewRegistry(repo, &scriptedResponder{}, nil, nil)
	defer reg.CloseAll()

	ch, err := reg.Resume(context.Background(), "s1", "4")
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	ev := nextEvent(t, ch)
	if ev.Type != EventHistory || len(ev.Messages) != 1 {
		t.Errorf("history event = %+v", ev)
	}
}

func TestRegistryResumeUnknownSession(t *testing.T) {
	reg := NewRegistry(newMemRepo(), &scriptedResponder{}, nil, nil)

	_, err := reg.Resume(context.Background(), "ghost", "")
	if !errors.Is(err, faults.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestRegistryAttachUpgrades(t *testing.T) {
	repo := newMemRepo()
	repo.sessions["s1"] = &Session{ID: "s1", StudentID: "student-1"}

	reg := NewRegistry(repo, &scriptedResponder{}, nil, nil)
	defer reg.CloseAll()

	// Late program binding and voice enable stick.
	ch, err := reg.Open(context.Background(), OpenInput{SessionID: "s1", ProgramID: "prog-1", TTSEnabled: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s := ch.Session()
	if s.ProgramID != "prog-1" || !s.TTSEnabled {
		t.Errorf("session after upgrade = %+v", s)
	}

	// An existing binding is never replaced, and voice stays on.
	ch2, err := reg.Open(context.Background(), OpenInput{SessionID: "s1", ProgramID: "prog-2"})
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	s = ch2.Session()
	if s.ProgramID != "prog-1" {
		t.Errorf("program binding replaced: %q", s.ProgramID)
	}
	if !s.TTSEnabled {
		t.Error("voice flag lost on reattach")
	}
}
