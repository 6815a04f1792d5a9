package corpusfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
)

// Loader reads the breach corpus from a JSON file on disk. The schema is
// the one existing corpora ship with and must not change:
//
//	{ "<source>": { "date": ..., "risk_level": ..., "description": ...,
//	                "leaked_details": ["...", ...] }, ... }
//
// A missing file is not an error: the service starts with an empty corpus,
// same as the deployments this replaces.
type Loader struct {
	Path string
}

type fileEntry struct {
	Date          string   `json:"date"`
	RiskLevel     string   `json:"risk_level"`
	Description   string   `json:"description"`
	LeakedDetails []string `json:"leaked_details"`
}

// Load implements ports.CorpusSource. Malformed JSON is returned as an
// error; the caller decides to degrade to an empty corpus.
func (l Loader) Load(ctx context.Context) (map[string]domain.BreachRecord, error) {
	data, err := os.ReadFile(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]domain.BreachRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read corpus file %s: %w", l.Path, err)
	}

	var raw map[string]fileEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse corpus file %s: %w", l.Path, err)
	}

	records := make(map[string]domain.BreachRecord, len(raw))
	for source, e := range raw {
		records[source] = domain.BreachRecord{
			Source:        source,
			Date:          e.Date,
			RiskLevel:     domain.ParseRiskLevel(e.RiskLevel),
			Description:   e.Description,
			LeakedDetails: e.LeakedDetails,
		}
	}
	return records, nil
}
