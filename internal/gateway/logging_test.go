package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/omnitutor/omnitutor/internal/store"
)

// fakeEventRepo captures appended events in memory.
type fakeEventRepo struct {
	events    []store.LLMRequestEventData
	appendErr error
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) ListLLMRequests(context.Context, store.QueryOpts) ([]*store.LLMRequest, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMRequest(context.Context, int) (*store.LLMRequest, error) {
	return nil, nil
}

func (f *fakeEventRepo) UsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"ok":true}`),
			Usage:   Usage{InputTokens: 12, OutputTokens: 34},
		},
	)
	repo := &fakeEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), PurposeQuiz)
	req := Request{
		System:   "You are a tutor.",
		Messages: []Message{{Role: RoleUser, Content: "topic: fractions"}},
	}

	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Purpose != PurposeQuiz {
		t.Errorf("purpose = %q, want %q", ev.Purpose, PurposeQuiz)
	}
	if !ev.Success {
		t.Error("expected success")
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "You are a tutor.") {
		t.Errorf("request body missing system prompt: %q", ev.RequestBody)
	}
	if ev.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &fakeEventRepo{}
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message")
	}
}

func TestLogging_AppendFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	repo := &fakeEventRepo{appendErr: errors.New("disk full")}
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

// blockingProvider hangs until its context is cancelled.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestTimeout_BoundsSlowProvider(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 5*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got: %v", err)
	}
}

func TestTimeout_ZeroMeansUnbounded(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithTimeout(mock, 0)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}
