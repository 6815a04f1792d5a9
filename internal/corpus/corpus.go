package corpus

import (
	"sort"

	"github.com/Mohithanjan23/crackbank-backend/internal/digest"
	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
)

// Corpus is the immutable in-memory set of known breach records. It is
// built once at startup and safe for concurrent readers; nothing mutates
// it after New returns.
//
// Records are held in lexicographic source order so match output is
// deterministic for a fixed corpus regardless of how the source map
// iterates. Each record's identifier digests are computed once here; the
// records themselves never change, so the digests never go stale.
type Corpus struct {
	records []entry
}

type entry struct {
	record  domain.BreachRecord
	digests []digest.Digest
}

// New builds a corpus from records keyed by source name. The map key is
// authoritative for the record's Source field. A nil or empty map yields
// an empty corpus, which matches every query with "not breached".
func New(records map[string]domain.BreachRecord) *Corpus {
	sources := make([]string, 0, len(records))
	for source := range records {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	c := &Corpus{records: make([]entry, 0, len(sources))}
	for _, source := range sources {
		rec := records[source]
		rec.Source = source
		digests := make([]digest.Digest, len(rec.LeakedDetails))
		for i, plaintext := range rec.LeakedDetails {
			digests[i] = digest.Of(plaintext)
		}
		c.records = append(c.records, entry{record: rec, digests: digests})
	}
	return c
}

// Empty returns a corpus with no records.
func Empty() *Corpus { return &Corpus{} }

// Len reports the number of breach records.
func (c *Corpus) Len() int { return len(c.records) }

// Records returns the breach records in corpus order. The slice is a copy;
// iteration is repeatable.
func (c *Corpus) Records() []domain.BreachRecord {
	out := make([]domain.BreachRecord, len(c.records))
	for i, e := range c.records {
		out[i] = e.record
	}
	return out
}

// FindMatches returns every record with at least one leaked identifier
// whose digest equals query. A record appears at most once no matter how
// many of its identifiers match; order follows corpus order.
func (c *Corpus) FindMatches(query digest.Digest) []domain.BreachRecord {
	var matches []domain.BreachRecord
	for _, e := range c.records {
		for _, d := range e.digests {
			if d == query {
				matches = append(matches, e.record)
				break
			}
		}
	}
	return matches
}
