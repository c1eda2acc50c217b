package suggest

import (
	"context"
	"errors"
	"time"

	"rentwise-backend/internal/llm"
	"rentwise-backend/internal/shared/metrics"
	"rentwise-backend/internal/shared/telemetry"
)

// Outcome tags how a suggestion request terminated.
type Outcome string

const (
	// OutcomeSuccess means a validated suggestion list came back from the model.
	OutcomeSuccess Outcome = "success"
	// OutcomeFallback means both attempts failed and the fixed placeholder was used.
	OutcomeFallback Outcome = "fallback"
)

// ErrMissingCredential indicates the Groq API key was never configured. This
// is an operator error, distinct from a transient service failure.
var ErrMissingCredential = errors.New("GROQ_API_KEY is not configured")

// Result is the terminal state of one orchestrated request.
type Result struct {
	Suggestions []string
	Outcome     Outcome
	Attempts    int
}

// Service sequences suggestion attempts: build prompt, call the model,
// sanitize, validate, retry once with a stricter prompt on shape failures,
// and fall back to a fixed placeholder when nothing valid comes back. It
// holds no per-request state and is safe for concurrent use.
type Service struct {
	client   llm.Client
	prompts  *Builder
	backoff  time.Duration
	fallback string
	sleep    func(time.Duration)
}

// NewService constructs the orchestrator. A nil client means no credential
// was configured; Suggest will short-circuit without any network call.
func NewService(client llm.Client, prompts *Builder, backoff time.Duration, fallback string) *Service {
	return &Service{
		client:   client,
		prompts:  prompts,
		backoff:  backoff,
		fallback: fallback,
		sleep:    time.Sleep,
	}
}

// Suggest runs at most two sequential attempts for the given budget. It
// returns a validated suggestion list, the fixed fallback, or
// ErrMissingCredential; failure causes are logged, never surfaced raw.
func (s *Service) Suggest(ctx context.Context, budget float64) (Result, error) {
	if s.client == nil {
		return Result{}, ErrMissingCredential
	}

	start := time.Now()
	defer func() {
		metrics.ObserveSuggestDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	suggestions, err := s.attempt(ctx, budget, 1)
	if err == nil {
		metrics.IncSuggestSuccess()
		return Result{Suggestions: suggestions, Outcome: OutcomeSuccess, Attempts: 1}, nil
	}
	if errors.Is(err, llm.ErrUnreachable) {
		// The retry prompt reacts to malformed output, not transport
		// problems; an unreachable service goes straight to fallback.
		telemetry.Warn("suggest.unreachable", map[string]any{"attempt": 1, "error": err.Error()})
		return s.fallbackResult(1), nil
	}
	telemetry.Warn("suggest.malformed", map[string]any{"attempt": 1, "error": err.Error()})

	s.sleep(s.backoff)
	metrics.IncSuggestRetry()

	suggestions, err = s.attempt(ctx, budget, 2)
	if err != nil {
		telemetry.Warn("suggest.retry_failed", map[string]any{"attempt": 2, "error": err.Error()})
		return s.fallbackResult(2), nil
	}
	metrics.IncSuggestSuccess()
	return Result{Suggestions: suggestions, Outcome: OutcomeSuccess, Attempts: 2}, nil
}

// attempt is one full prompt-build, call, sanitize, validate cycle.
func (s *Service) attempt(ctx context.Context, budget float64, attempt int) ([]string, error) {
	raw, err := s.client.Complete(ctx, s.prompts.Build(budget, attempt))
	if err != nil {
		return nil, err
	}
	return ValidateArray(Sanitize(raw))
}

func (s *Service) fallbackResult(attempts int) Result {
	metrics.IncSuggestFallback()
	return Result{
		Suggestions: []string{s.fallback},
		Outcome:     OutcomeFallback,
		Attempts:    attempts,
	}
}
