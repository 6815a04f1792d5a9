package notify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
)

// Console renders a breach alert as a simulated email on the process log,
// matching the plaintext layout the previous deployment printed. Real
// delivery (SMTP, SMS) plugs in behind the same ports.Notifier contract.
type Console struct {
	From string
	Log  *log.Logger
}

func NewConsole() *Console {
	return &Console{From: "security@crack-bank.local", Log: log.Default()}
}

func (c *Console) Notify(ctx context.Context, target string, matches []domain.BreachRecord) error {
	var b strings.Builder
	b.WriteString("\n--- SIMULATED EMAIL NOTIFICATION ---\n")
	fmt.Fprintf(&b, "To: %s\n", target)
	fmt.Fprintf(&b, "From: %s\n", c.From)
	b.WriteString("Subject: URGENT: Security Alert - Breach Detected\n")
	b.WriteString(strings.Repeat("-", 35) + "\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "- Source: %s | Date: %s\n", orNA(m.Source), orNA(m.Date))
	}
	b.WriteString("--- END OF SIMULATED EMAIL ---\n")
	c.Log.Print(b.String())
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
