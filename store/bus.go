// store/bus.go

package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	logger "github.com/buildtrack/epc-console/logging"
)

// Event represents an event in the system
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

// EventBus manages event subscriptions and publications. Unlike a queue it
// dispatches synchronously: a mutation that invalidates a list must observe
// the refetch before it reports success, so the UI never renders stale rows
// after the success notification.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewEventBus creates a new EventBus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]EventHandler),
	}
}

// Subscribe adds a new subscriber for a specific event type
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
}

// Publish sends an event to all subscribers. Handler errors are logged and
// do not stop delivery to the remaining subscribers.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	eb.mu.RLock()
	handlers := make([]EventHandler, len(eb.subscribers[eventType]))
	copy(handlers, eb.subscribers[eventType])
	eb.mu.RUnlock()

	event := Event{
		Type:    eventType,
		Payload: payload,
	}

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			logger.Error("Event handler error",
				zap.Error(err),
				zap.String("eventType", eventType))
		}
	}
}
