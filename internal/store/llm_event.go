package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/omnitutor/omnitutor/ent"
	"github.com/omnitutor/omnitutor/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save gateway request event: %w", err)
	}

	return nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, opts QueryOpts) ([]*LLMRequest, error) {
	q := r.client.LLMRequestEvent.Query()

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.RecordedAtGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.RecordedAtLTE(opts.To))
	}
	if opts.Purpose != "" {
		q = q.Where(llmrequestevent.Purpose(opts.Purpose))
	}

	q = q.Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query gateway events: %w", err)
	}

	out := make([]*LLMRequest, len(rows))
	for i, row := range rows {
		out[i] = llmRequestFromEnt(row)
	}
	return out, nil
}

func (r *eventRepo) GetLLMRequest(ctx context.Context, id int) (*LLMRequest, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get gateway event: %w", err)
	}
	return llmRequestFromEnt(row), nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query gateway events: %w", err)
	}

	byPurpose := map[string]*PurposeUsage{}
	for _, row := range rows {
		u := byPurpose[row.Purpose]
		if u == nil {
			u = &PurposeUsage{Purpose: row.Purpose}
			byPurpose[row.Purpose] = u
		}
		u.Requests++
		if !row.Success {
			u.Failures++
		}
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
	}

	out := make([]PurposeUsage, 0, len(byPurpose))
	for _, u := range byPurpose {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func llmRequestFromEnt(row *ent.LLMRequestEvent) *LLMRequest {
	return &LLMRequest{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.RecordedAt,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
