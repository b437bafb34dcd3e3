// Package bankgen drafts new quiz bank entries with an LLM. It backs
// the `gyanguru bank` command, which prints candidate questions for a
// human to review before they are added to the built-in bank.
package bankgen

import (
	"context"
	"encoding/json"
)

// Provider is the LLM abstraction the bank generator talks to.
type Provider interface {
	// Generate sends a prompt and returns structured JSON. When the
	// request carries a Schema the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System sets the LLM's role and constraints.
	System string

	// Messages is the conversation. Bank generation is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil
	// the response Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Question drafting
	// wants some variety, so callers usually set this above zero.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema
	// name for OpenAI). Kebab-case, e.g. "quiz-items".
	Name string

	// Description tells the LLM what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output, validated against the request
	// Schema when one was set.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
