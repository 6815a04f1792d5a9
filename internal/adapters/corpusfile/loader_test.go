package corpusfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "breaches.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("parses the corpus schema", func(t *testing.T) {
		path := writeFile(t, `{
			"BankLeak2023": {
				"date": "2023-01-01",
				"risk_level": "HIGH",
				"description": "Card numbers exposed",
				"leaked_details": ["1234567890123456"]
			}
		}`)
		records, err := Loader{Path: path}.Load(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		rec := records["BankLeak2023"]
		assert.Equal(t, "BankLeak2023", rec.Source)
		assert.Equal(t, "2023-01-01", rec.Date)
		assert.Equal(t, domain.RiskHigh, rec.RiskLevel, "risk level normalized")
		assert.Equal(t, "Card numbers exposed", rec.Description)
		assert.Equal(t, []string{"1234567890123456"}, rec.LeakedDetails)
	})

	t.Run("unknown risk levels pass through", func(t *testing.T) {
		path := writeFile(t, `{"X": {"risk_level": "catastrophic", "leaked_details": ["a"]}}`)
		records, err := Loader{Path: path}.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.RiskLevel("catastrophic"), records["X"].RiskLevel)
	})

	t.Run("missing file degrades to empty corpus", func(t *testing.T) {
		records, err := Loader{Path: filepath.Join(t.TempDir(), "absent.json")}.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("malformed JSON is an error for the caller to degrade on", func(t *testing.T) {
		path := writeFile(t, `{"BankLeak2023": `)
		_, err := Loader{Path: path}.Load(ctx)
		assert.Error(t, err)
	})

	t.Run("empty object loads empty corpus", func(t *testing.T) {
		path := writeFile(t, `{}`)
		records, err := Loader{Path: path}.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
