package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // filter by purpose label
}

// LLMRequestEventData captures the data for a single gateway request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequest is one recorded gateway request.
type LLMRequest struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token consumption for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to gateway request events.
type EventRepo interface {
	// AppendLLMRequest records a gateway call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns recorded events, newest first.
	ListLLMRequests(ctx context.Context, opts QueryOpts) ([]*LLMRequest, error)

	// GetLLMRequest returns one event by row ID, or nil if unknown.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequest, error)

	// UsageByPurpose aggregates token usage per purpose label.
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}
