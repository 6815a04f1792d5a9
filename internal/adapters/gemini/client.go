package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Mohithanjan23/crackbank-backend/internal/ports"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel   = "gemini-2.5-flash-preview-05-20"

	maxRetry     = 5
	retryWaitMin = 1 * time.Second
	retryWaitMax = 30 * time.Second
)

// systemInstruction frames the model as the analyst persona the frontend
// expects. Part of the prompt contract; do not reword casually.
const systemInstruction = "You are a world-class cybersecurity analyst named 'Cypher'. " +
	"Explain to a non-technical user whose banking information was found in a breach. " +
	"Keep it serious, clear, and actionable. Use Markdown headings."

// Client implements ports.Summarizer against the Google generativelanguage
// generateContent endpoint. Transient failures are retried with backoff;
// whatever survives the retries surfaces as ports.ErrSummarizerUnavailable.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *retryablehttp.Client
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	rc := retryablehttp.NewClient()
	rc.RetryMax = maxRetry
	rc.RetryWaitMin = retryWaitMin
	rc.RetryWaitMax = retryWaitMax
	rc.Logger = nil
	return &Client{apiKey: apiKey, model: model, baseURL: defaultBaseURL, http: rc}
}

// generateContent wire types.

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Summarize sends the prompt and returns the first candidate's text.
// Returns ports.ErrMissingCredential when no API key is configured and
// ports.ErrSummarizerUnavailable when the service cannot be reached or
// returns no usable text.
func (c *Client) Summarize(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ports.ErrMissingCredential
	}

	body, err := json.Marshal(generateRequest{
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode summarize request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("build summarize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ports.ErrSummarizerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ports.ErrSummarizerUnavailable, resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ports.ErrSummarizerUnavailable, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty model response", ports.ErrSummarizerUnavailable)
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("%w: empty model response", ports.ErrSummarizerUnavailable)
	}
	return text, nil
}
