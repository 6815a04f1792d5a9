package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohithanjan23/crackbank-backend/internal/ports"
)

// testClient points a client at a local stub and disables retry waits so
// failure paths don't slow the suite down.
func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key", "")
	c.baseURL = srv.URL
	c.http.RetryMax = 0
	c.http.RetryWaitMin = 0
	c.http.RetryWaitMax = 0
	return c
}

func TestSummarize(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credential fails before any request", func(t *testing.T) {
		c := NewClient("", "")
		_, err := c.Summarize(ctx, "prompt")
		assert.ErrorIs(t, err, ports.ErrMissingCredential)
	})

	t.Run("returns first candidate text", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Contains(t, r.URL.Path, ":generateContent")
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			var req generateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Contents, 1)
			assert.Equal(t, "what happened?", req.Contents[0].Parts[0].Text)
			require.NotNil(t, req.SystemInstruction)
			assert.Contains(t, req.SystemInstruction.Parts[0].Text, "Cypher")

			_ = json.NewEncoder(w).Encode(generateResponse{
				Candidates: []struct {
					Content content `json:"content"`
				}{{Content: content{Parts: []part{{Text: "stay calm, freeze the card"}}}}},
			})
		})

		got, err := c.Summarize(ctx, "what happened?")
		require.NoError(t, err)
		assert.Equal(t, "stay calm, freeze the card", got)
	})

	t.Run("non-200 status maps to unavailable", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})
		_, err := c.Summarize(ctx, "prompt")
		assert.ErrorIs(t, err, ports.ErrSummarizerUnavailable)
	})

	t.Run("empty candidate list maps to unavailable", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates": []}`))
		})
		_, err := c.Summarize(ctx, "prompt")
		assert.ErrorIs(t, err, ports.ErrSummarizerUnavailable)
	})

	t.Run("empty candidate text maps to unavailable", func(t *testing.T) {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": ""}]}}]}`))
		})
		_, err := c.Summarize(ctx, "prompt")
		assert.ErrorIs(t, err, ports.ErrSummarizerUnavailable)
	})

	t.Run("unreachable host maps to unavailable", func(t *testing.T) {
		c := NewClient("test-key", "")
		c.baseURL = "http://127.0.0.1:1"
		c.http.RetryMax = 0
		c.http.RetryWaitMin = 0
		c.http.RetryWaitMax = 0
		_, err := c.Summarize(ctx, "prompt")
		assert.ErrorIs(t, err, ports.ErrSummarizerUnavailable)
	})

	t.Run("defaults the model name", func(t *testing.T) {
		c := NewClient("k", "")
		assert.Equal(t, defaultModel, c.model)
		c = NewClient("k", "gemini-pro")
		assert.Equal(t, "gemini-pro", c.model)
	})
}
