// Package gateway abstracts the external content generation model behind a
// narrow Provider interface. The tutoring services never talk to a vendor
// SDK directly; they build a Request (optionally schema-constrained) and
// receive validated JSON back.
package gateway

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for model interaction.
type Provider interface {
	// Generate sends a prompt to the model and returns a structured
	// response. When the request carries a Schema, the provider uses its
	// native structured-output mechanism and the response Content is the
	// validated JSON. With no Schema, Content is the raw reply text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. Quiz, evaluation, and mastery
	// requests carry a single user message; chat turns carry the recent
	// session transcript.
	Messages []Message

	// Schema is the JSON Schema the response must conform to, nil for
	// free-text replies.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation. A message may
// carry an image reference alongside (or instead of) text; each provider
// maps it to its native image content part.
type Message struct {
	Role    Role
	Content string

	// ImageURL references an image the sender shared. Empty for pure
	// text messages.
	ImageURL string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "diagnostic-quiz".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema was
	// provided, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
