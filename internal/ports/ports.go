package ports

import (
	"context"
	"errors"

	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
)

// Checker answers digest lookups against the breach corpus.
type Checker interface {
	Check(ctx context.Context, digestHex, notifyTarget string) (domain.MatchResult, error)
}

// Reporter produces a human-readable summary of matched breaches.
type Reporter interface {
	SummarizeMatches(ctx context.Context, matches []domain.BreachRecord) (string, error)
}

// Summarizer is the external language-model collaborator: one formatted
// prompt in, prose out. Implementations own their own timeout and retry
// policy; the core never retries.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Collaborator failure modes surfaced through the Summarizer port.
var (
	ErrSummarizerUnavailable = errors.New("summarizer unavailable")
	ErrMissingCredential     = errors.New("summarizer credential not configured")
)

// DelayPolicy models the artificial lookup latency on the check path.
// Production wiring sleeps a fixed duration; tests install a no-op.
type DelayPolicy interface {
	Wait(ctx context.Context)
}
