package breachcheck

import (
	"context"
	"time"

	"github.com/Mohithanjan23/crackbank-backend/internal/corpus"
	"github.com/Mohithanjan23/crackbank-backend/internal/digest"
	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
	"github.com/Mohithanjan23/crackbank-backend/internal/ports"
)

// Service runs digest lookups against the corpus and shapes the result.
// Stateless per call; safe for concurrent use because the corpus is
// immutable after load.
type Service struct {
	corpus *corpus.Corpus
	queue  ports.NotificationQueue
	delay  ports.DelayPolicy
}

// New wires the checker. queue may be nil when notification delivery is not
// configured; delay may be nil to disable the artificial latency.
func New(c *corpus.Corpus, queue ports.NotificationQueue, delay ports.DelayPolicy) *Service {
	if delay == nil {
		delay = NoDelay{}
	}
	return &Service{corpus: c, queue: queue, delay: delay}
}

// Check validates the caller-supplied digest, scans the corpus, and returns
// the match result. Returns digest.ErrInvalidFormat on malformed input. A
// query with no matches is a normal outcome, not an error.
//
// When the result is breached and the caller supplied a notify target, the
// alert is handed to the notification queue exactly once. Delivery is fire
// and forget: it never blocks the response and its failure never reaches
// the caller.
func (s *Service) Check(ctx context.Context, digestHex, notifyTarget string) (domain.MatchResult, error) {
	query, err := digest.Normalize(digestHex)
	if err != nil {
		return domain.MatchResult{}, err
	}

	matches := s.corpus.FindMatches(query)
	s.delay.Wait(ctx)

	if len(matches) == 0 {
		return domain.MatchResult{Breached: false}, nil
	}
	if notifyTarget != "" && s.queue != nil {
		s.queue.Enqueue(ports.Notification{Target: notifyTarget, Matches: matches})
	}

	out := make([]domain.Match, len(matches))
	for i, rec := range matches {
		out[i] = rec.AsMatch()
	}
	return domain.MatchResult{Breached: true, Matches: out}, nil
}

// SleepDelay pauses for a fixed duration, mimicking the cost of an external
// lookup. Respects context cancellation.
type SleepDelay time.Duration

func (d SleepDelay) Wait(ctx context.Context) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(time.Duration(d))
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// NoDelay disables the artificial latency.
type NoDelay struct{}

func (NoDelay) Wait(context.Context) {}
