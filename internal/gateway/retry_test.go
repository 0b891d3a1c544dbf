package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var quizJSON = json.RawMessage(`{"title":"Volcano Check-In","questions":[{"id":"q1","prompt":"What is lava?"}]}`)

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want retryClass
	}{
		{"cancelled context", context.Canceled, retryNever},
		{"deadline", context.DeadlineExceeded, retryNever},
		{"max tokens", &ErrMaxTokensExceeded{}, retryNever},
		{"malformed output", &ErrInvalidResponse{Err: errors.New("not a quiz")}, retryOnce},
		{"rate limit", &ErrRateLimit{Err: errors.New("429")}, retryAlways},
		{"provider down", &ErrProviderUnavailable{Err: errors.New("503")}, retryAlways},
		{"plain network error", errors.New("connection reset"), retryAlways},
	}
	for _, tt := range tests {
		if got := classifyFailure(tt.err); got != tt.want {
			t.Errorf("%s: class = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestRetryStopsOnFirstSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: quizJSON})
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != string(quizJSON) {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryRecoversFromTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}},
		MockResponse{Content: quizJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != string(quizJSON) {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	down := &ErrProviderUnavailable{Err: errors.New("503")}
	mock := NewMockProvider(
		MockResponse{Err: down}, MockResponse{Err: down}, MockResponse{Err: down},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected the last failure to surface")
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want all 3 attempts", mock.CallCount())
	}
}

func TestRetryNeverRepeatsMaxTokens(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"title":"Volc`)}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("err = %T, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, a too-small token budget must not be retried", mock.CallCount())
	}
}

func TestRetryMalformedOutputGetsOneMoreRoll(t *testing.T) {
	bad := &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("schema violation")}
	mock := NewMockProvider(
		MockResponse{Err: bad},
		MockResponse{Err: bad},
		MockResponse{Content: quizJSON}, // never reached
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error after the retry budget")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want exactly one retry", mock.CallCount())
	}
}

func TestRetryStopsWhenContextCancelled(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}},
		MockResponse{Content: quizJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: quizJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != string(quizJSON) {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetryConfig())
	if p.ModelID() != "mock" {
		t.Errorf("model = %q", p.ModelID())
	}
}
