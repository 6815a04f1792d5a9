package domain

import "strings"

// Core domain models used internally. Wire names follow the corpus schema
// already in use by deployed frontends and corpora: risk_level,
// leaked_details, breaches. Keep these stable.

// RiskLevel is the severity attributed to a breach event. Existing corpora
// treat the field as free text, so unknown values are carried through
// rather than rejected; the constants cover the values seen in practice.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// IsKnown reports whether the level is one of the recognized severities.
func (r RiskLevel) IsKnown() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// ParseRiskLevel normalizes a raw severity string. Known values come back
// canonical lowercase; anything else passes through trimmed.
func ParseRiskLevel(s string) RiskLevel {
	r := RiskLevel(strings.ToLower(strings.TrimSpace(s)))
	if r.IsKnown() {
		return r
	}
	return RiskLevel(strings.TrimSpace(s))
}

// BreachRecord is one breach event plus the plaintext identifiers known to
// have leaked in it. Records are value types; nothing mutates them after
// the corpus is built.
type BreachRecord struct {
	Source        string    `json:"source"`
	Date          string    `json:"date"`
	RiskLevel     RiskLevel `json:"risk_level"`
	Description   string    `json:"description"`
	LeakedDetails []string  `json:"leaked_details,omitempty"`
}

// Match is the caller-facing view of a matched record: the event metadata
// without the leaked identifiers themselves.
type Match struct {
	Source      string    `json:"source"`
	Date        string    `json:"date"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Description string    `json:"description"`
}

// AsMatch strips a record down to its reportable metadata.
func (b BreachRecord) AsMatch() Match {
	return Match{
		Source:      b.Source,
		Date:        b.Date,
		RiskLevel:   b.RiskLevel,
		Description: b.Description,
	}
}

// MatchResult is the outcome of a breach check. Derived per request, never
// persisted. The wire name for the match list is "breaches" for
// compatibility with existing clients.
type MatchResult struct {
	Breached bool    `json:"breached"`
	Matches  []Match `json:"breaches,omitempty"`
}
