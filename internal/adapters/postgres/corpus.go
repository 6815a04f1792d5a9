package postgres

import (
	"context"
	"fmt"

	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
)

// Load implements ports.CorpusSource over the breaches table (see
// migrations/). Dates stay opaque text end to end; existing corpora carry
// free-form date strings.
func (db *DB) Load(ctx context.Context) (map[string]domain.BreachRecord, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT source, breach_date, risk_level, description, leaked_details
		FROM breaches
		ORDER BY source
	`)
	if err != nil {
		return nil, fmt.Errorf("query breaches: %w", err)
	}
	defer rows.Close()

	records := make(map[string]domain.BreachRecord)
	for rows.Next() {
		var rec domain.BreachRecord
		var risk string
		if err := rows.Scan(&rec.Source, &rec.Date, &risk, &rec.Description, &rec.LeakedDetails); err != nil {
			return nil, fmt.Errorf("scan breach row: %w", err)
		}
		rec.RiskLevel = domain.ParseRiskLevel(risk)
		records[rec.Source] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read breaches: %w", err)
	}
	return records, nil
}
