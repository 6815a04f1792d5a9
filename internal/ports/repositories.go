package ports

import (
	"context"

	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
)

// CorpusSource loads breach records keyed by source name from external
// storage (file, database). Called once at startup; a failed or empty load
// degrades the service to an empty corpus, it never takes the process down.
type CorpusSource interface {
	Load(ctx context.Context) (map[string]domain.BreachRecord, error)
}
