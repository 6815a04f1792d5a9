package ports

import (
	"context"

	"github.com/Mohithanjan23/crackbank-backend/internal/domain"
)

// Notification is one queued breach alert delivery.
type Notification struct {
	ID      string
	Target  string
	Matches []domain.BreachRecord
}

// NotificationQueue accepts alert deliveries without blocking the caller.
// Enqueue reports whether the notification was accepted; a full queue drops
// the alert rather than stalling the request path.
type NotificationQueue interface {
	Enqueue(n Notification) bool
}

// Notifier delivers a breach alert to a target address.
type Notifier interface {
	Notify(ctx context.Context, target string, matches []domain.BreachRecord) error
}
