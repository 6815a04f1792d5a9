package notifier

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/Mohithanjan23/crackbank-backend/internal/ports"
)

const defaultQueueSize = 64

// Dispatcher fans queued breach alerts out to delivery workers. The queue
// is bounded: Enqueue never blocks the request path, and when the queue is
// full the alert is dropped with a log line, per the fire-and-forget
// delivery contract.
type Dispatcher struct {
	notifier ports.Notifier
	jobs     chan ports.Notification
}

func NewDispatcher(n ports.Notifier, queueSize int) *Dispatcher {
	if queueSize < 1 {
		queueSize = defaultQueueSize
	}
	return &Dispatcher{notifier: n, jobs: make(chan ports.Notification, queueSize)}
}

// Enqueue accepts an alert for asynchronous delivery. Assigns a delivery id
// when the caller did not set one.
func (d *Dispatcher) Enqueue(n ports.Notification) bool {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	select {
	case d.jobs <- n:
		return true
	default:
		log.Printf("notification %s to %s dropped: queue full", n.ID, n.Target)
		return false
	}
}

// Run starts worker goroutines that deliver queued alerts until ctx is
// cancelled. Delivery failures are logged and never retried.
func (d *Dispatcher) Run(ctx context.Context, concurrency int) {
	if concurrency < 1 {
		concurrency = 1
	}
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for {
				select {
				case <-ctx.Done():
					return
				case job := <-d.jobs:
					if err := d.notifier.Notify(ctx, job.Target, job.Matches); err != nil {
						log.Printf("worker %d: notification %s failed: %v", idx, job.ID, err)
					}
				}
			}
		}(i)
	}
}
