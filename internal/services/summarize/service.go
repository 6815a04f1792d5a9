package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
	"github.com/Mohithanjan23/crackbank-backend/internal/ports"
)

// ErrNoData rejects summarization requests with no matched breaches.
var ErrNoData = errString("no breach data provided")

type errString string

func (e errString) Error() string { return string(e) }

// Service formats matched breaches into a deterministic prompt and forwards
// it to the language-model collaborator. All network concerns (timeouts,
// retries, credentials) live behind the Summarizer port.
type Service struct {
	llm ports.Summarizer
}

func New(llm ports.Summarizer) *Service { return &Service{llm: llm} }

// SummarizeMatches builds the prompt for the given matches and returns the
// collaborator's prose. Collaborator failures pass through unwrapped so
// callers can match ports.ErrSummarizerUnavailable and
// ports.ErrMissingCredential.
func (s *Service) SummarizeMatches(ctx context.Context, matches []domain.BreachRecord) (string, error) {
	if len(matches) == 0 {
		return "", ErrNoData
	}
	return s.llm.Summarize(ctx, Prompt(matches))
}

// Prompt renders the user prompt enumerating each match. The layout is part
// of the external contract with the model prompt and must stay stable:
// numbered blocks of source, date, risk level and description, with N/A for
// absent fields.
func Prompt(matches []domain.BreachRecord) string {
	var details strings.Builder
	for i, m := range matches {
		fmt.Fprintf(&details,
			"Breach %d:\n- Source: %s\n- Date: %s\n- Risk Level: %s\n- Description: %s\n\n",
			i+1, orNA(m.Source), orNA(m.Date), orNA(string(m.RiskLevel)), orNA(m.Description))
	}
	return "My banking detail was found in these breach(es):\n\n" +
		details.String() +
		"Summarize the situation and provide a prioritized list of 3-5 recommended actions."
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
