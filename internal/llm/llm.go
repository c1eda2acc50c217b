package llm

import (
	"context"
	"errors"
)

// ChatRequest captures one chat-completion call: two ordered conversation
// turns plus the generation knobs.
type ChatRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// Client abstracts chat-completion providers.
type Client interface {
	// Complete sends a single synchronous request and returns the first
	// generated message's text. An envelope with no generated message yields
	// an empty string, not an error; absence of content is a normal (if
	// unhelpful) completion for downstream validation to catch.
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// ErrUnreachable tags transport failures and non-success statuses from the
// provider. Errors wrapping it carry diagnostic detail for logging only and
// must never be shown raw to end users.
var ErrUnreachable = errors.New("llm service unreachable")
