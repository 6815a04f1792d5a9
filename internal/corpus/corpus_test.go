package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohithanjan23/crackbank-backend/internal/digest"
	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
)

func testRecords() map[string]domain.BreachRecord {
	return map[string]domain.BreachRecord{
		"BankLeak2023": {
			Date:          "2023-01-01",
			RiskLevel:     domain.RiskHigh,
			Description:   "Card numbers exposed",
			LeakedDetails: []string{"1234567890123456"},
		},
		"AcmeDump": {
			Date:          "2022-06-15",
			RiskLevel:     domain.RiskMedium,
			Description:   "Credential stuffing list",
			LeakedDetails: []string{"password", "card-1111"},
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("map key is authoritative for source", func(t *testing.T) {
		c := New(testRecords())
		for _, rec := range c.Records() {
			assert.NotEmpty(t, rec.Source)
		}
	})

	t.Run("records sorted by source", func(t *testing.T) {
		c := New(testRecords())
		recs := c.Records()
		require.Len(t, recs, 2)
		assert.Equal(t, "AcmeDump", recs[0].Source)
		assert.Equal(t, "BankLeak2023", recs[1].Source)
	})

	t.Run("nil map yields empty corpus", func(t *testing.T) {
		assert.Equal(t, 0, New(nil).Len())
	})
}

func TestRecordsIsRepeatable(t *testing.T) {
	c := New(testRecords())
	first := c.Records()
	second := c.Records()
	assert.Equal(t, first, second)

	// Mutating the returned slice must not affect the corpus.
	first[0].Source = "tampered"
	assert.Equal(t, "AcmeDump", c.Records()[0].Source)
}

func TestFindMatches(t *testing.T) {
	c := New(testRecords())

	t.Run("every corpus identifier matches its owning record", func(t *testing.T) {
		for _, rec := range c.Records() {
			for _, plaintext := range rec.LeakedDetails {
				matches := c.FindMatches(digest.Of(plaintext))
				require.NotEmpty(t, matches, "identifier %q", plaintext)
				sources := make([]string, len(matches))
				for i, m := range matches {
					sources[i] = m.Source
				}
				assert.Contains(t, sources, rec.Source)
			}
		}
	})

	t.Run("unknown digest matches nothing", func(t *testing.T) {
		assert.Empty(t, c.FindMatches(digest.Of("9999999999999999")))
	})

	t.Run("record with multiple matching identifiers appears once", func(t *testing.T) {
		dup := New(map[string]domain.BreachRecord{
			"DoubleLeak": {
				Date:          "2024-01-01",
				RiskLevel:     domain.RiskCritical,
				Description:   "same value leaked twice",
				LeakedDetails: []string{"card-1111", "card-1111"},
			},
		})
		matches := dup.FindMatches(digest.Of("card-1111"))
		require.Len(t, matches, 1)
		assert.Equal(t, "DoubleLeak", matches[0].Source)
	})

	t.Run("match order follows corpus order", func(t *testing.T) {
		shared := New(map[string]domain.BreachRecord{
			"Zeta":  {LeakedDetails: []string{"password"}},
			"Alpha": {LeakedDetails: []string{"password"}},
			"Mid":   {LeakedDetails: []string{"password"}},
		})
		matches := shared.FindMatches(digest.Of("password"))
		require.Len(t, matches, 3)
		assert.Equal(t, "Alpha", matches[0].Source)
		assert.Equal(t, "Mid", matches[1].Source)
		assert.Equal(t, "Zeta", matches[2].Source)
	})

	t.Run("empty corpus matches nothing", func(t *testing.T) {
		assert.Empty(t, Empty().FindMatches(digest.Of("password")))
	})
}
