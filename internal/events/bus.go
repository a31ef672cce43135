package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// Gateway notification event types.
const (
	EventPaymentAuthorized = "payu.payment.authorized"
	EventTokenCreated      = "payu.token.created"
)

// Handler consumes one event payload. Errors propagate to the publisher so
// the dispatch layer can surface them (e.g. as an HTTP status on the IPN
// endpoint).
type Handler func(ctx context.Context, payload json.RawMessage) error

// Bus is an in-process event bus with explicit subscription. Handlers are
// registered once at startup and dispatched synchronously in subscription
// order.

type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
	log.Printf("[events][bus] subscribed event_type=%s handlers=%d", eventType, len(b.handlers[eventType]))
}

// Publish dispatches the payload to every handler subscribed to eventType
// and returns the first handler error. Publishing with no subscribers is
// an error: a notification nobody consumes indicates broken wiring.
func (b *Bus) Publish(ctx context.Context, eventType string, payload json.RawMessage) error {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[eventType]))
	copy(hs, b.handlers[eventType])
	b.mu.RUnlock()

	if len(hs) == 0 {
		return fmt.Errorf("no subscribers for event type %q", eventType)
	}

	for _, h := range hs {
		if err := h(ctx, payload); err != nil {
			log.Printf("[events][bus] handler failed event_type=%s err=%v", eventType, err)
			return err
		}
	}
	return nil
}
