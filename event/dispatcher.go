package event

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

//go:generate moq -rm -out dispatcher_mocks.go . Publisher Subscriber

// Publisher is the emitting side seen by the services.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// Subscriber ...
type Subscriber interface {
	HandleEvent(ctx context.Context, e Event) error
}

// Dispatcher fans events out to registered subscribers in registration
// order. Subscriber errors and panics are logged and swallowed.
type Dispatcher struct {
	mu     sync.RWMutex
	subs   []Subscriber
	logger *zap.Logger
}

var _ Publisher = &Dispatcher{}

// NewDispatcher ...
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger,
	}
}

// Register ...
func (d *Dispatcher) Register(sub Subscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subs = append(d.subs, sub)
}

// Publish ...
func (d *Dispatcher) Publish(ctx context.Context, e Event) {
	d.mu.RLock()
	subs := d.subs
	d.mu.RUnlock()

	for _, sub := range subs {
		d.deliver(ctx, sub, e)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, sub Subscriber, e Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event subscriber panicked",
				zap.String("event_type", string(e.EventType())),
				zap.Any("panic", r),
			)
		}
	}()

	if err := sub.HandleEvent(ctx, e); err != nil {
		d.logger.Error("event subscriber failed",
			zap.String("event_type", string(e.EventType())),
			zap.Error(err),
		)
	}
}

// NopPublisher discards events; used where no subscriber wiring is needed.
type NopPublisher struct{}

// Publish ...
func (NopPublisher) Publish(context.Context, Event) {}
