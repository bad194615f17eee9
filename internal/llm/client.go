// Package llm provides the chat transport for the CIM assistant. The
// system prompt arrives pre-split into a static portion (identical on every
// request, cacheable provider-side) and a dynamic portion (per-request
// state); backends decide what to do with the split.
package llm

import "context"

// Role values for chat messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation history.
type Message struct {
	Role    string
	Content string
}

// ChatRequest carries one assistant turn's inputs.
type ChatRequest struct {
	// StaticSystem is the state-invariant system prompt prefix. Backends
	// that support prompt caching mark it cacheable.
	StaticSystem string

	// DynamicSystem is the per-request system prompt suffix.
	DynamicSystem string

	Messages    []Message
	Temperature *float64 // nil uses the configured default
	MaxTokens   *int     // nil uses the configured default
}

// ChatResponse is the assistant's reply plus call metadata.
type ChatResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client is a chat backend for the assistant.
type Client interface {
	// Chat sends one turn and returns the assistant's reply.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// Available reports whether the backend is reachable and configured.
	Available(ctx context.Context) bool
}

// New constructs the configured backend.
func New(cfg Config, observer Observer) (Client, error) {
	if observer == nil {
		observer = NoopObserver{}
	}
	switch cfg.Provider {
	case ProviderAnthropic:
		return newAnthropicClient(cfg, observer)
	case ProviderOllama:
		return newOllamaClient(cfg, observer), nil
	default:
		return nil, ErrUnknownProvider
	}
}
