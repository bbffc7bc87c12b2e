// Package events publishes domain lifecycle events for downstream
// consumers (fulfillment, analytics). Publishing is best-effort; the API
// never fails a request because an event could not be delivered.
package events

import "context"

// Event subjects, relative to the configured subject prefix.
const (
	SubjectOrderCreated = "orders.created"
)

// Publisher delivers a JSON-encoded event on a subject.
type Publisher interface {
	Publish(ctx context.Context, subject string, v any) error
	Close()
}

// Noop is a Publisher that discards everything. Used when no broker is
// configured so the API runs standalone.
type Noop struct{}

func (Noop) Publish(ctx context.Context, subject string, v any) error { return nil }

func (Noop) Close() {}
