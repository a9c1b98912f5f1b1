// Package llm abstracts the remote completion services used by the
// security classifier. Providers are stateless single-turn clients; the
// classifier owns prompt construction and reply parsing.
package llm

import "context"

// Provider defines the interface for single-turn LLM completion.
// Each implementation (Claude, Gemini) converts between these common
// types and its SDK-specific formats.
type Provider interface {
	// Name returns the provider identifier (e.g., "claude", "gemini").
	Name() string

	// Complete sends messages to the LLM and returns a single response.
	// The provider is stateless - callers manage conversation history.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest contains input for a single LLM turn.
type CompletionRequest struct {
	// SystemPrompt provides context and instructions for the LLM.
	SystemPrompt string

	// Messages contains the conversation history.
	// Must include at least one user message.
	Messages []Message

	// MaxTokens limits the response length.
	// If zero, providers use their default limits.
	MaxTokens int

	// Temperature controls sampling randomness. The classifier runs
	// near-deterministic (0.1). If zero, providers use their default.
	Temperature float64
}

// CompletionResponse contains the LLM's response for a single turn.
type CompletionResponse struct {
	// Content is the text response from the LLM.
	Content string

	// StopReason indicates why the LLM stopped generating.
	// Common values: "end_turn", "max_tokens".
	StopReason string

	// Usage tracks token consumption for this turn.
	Usage Usage
}

// Message represents a single message in a conversation.
type Message struct {
	// Role identifies the message sender.
	Role Role

	// Content is the text content of the message.
	Content string
}

// Role identifies the sender of a message in a conversation.
type Role string

const (
	// RoleUser indicates a message from the user or application.
	RoleUser Role = "user"

	// RoleAssistant indicates a message from the LLM.
	RoleAssistant Role = "assistant"
)

// Usage tracks token consumption across requests.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Add accumulates another Usage into this one.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}
