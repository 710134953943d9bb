package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// EventHandler reacts to a registration event.
type EventHandler func(context.Context, Event) error

// Dispatcher fans registration events out to subscribers.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

type inMemoryDispatcher struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
}

// NewInMemoryDispatcher returns a synchronous dispatcher.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{handlers: make(map[EventType][]EventHandler)}
}

// Publish runs every subscriber of event.Type in subscription order. A failing or
// panicking subscriber does not stop the others; all failures are joined.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	subscribers := d.handlers[event.Type]
	d.mu.RUnlock()

	var errs []error
	for i, handle := range subscribers {
		if err := invoke(ctx, handle, event); err != nil {
			errs = append(errs, fmt.Errorf("%s subscriber %d: %w", event.Type, i, err))
		}
	}
	return errors.Join(errs...)
}

func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	// copy-on-write so Publish can iterate without holding the lock
	next := make([]EventHandler, len(d.handlers[eventType]), len(d.handlers[eventType])+1)
	copy(next, d.handlers[eventType])
	d.handlers[eventType] = append(next, handler)
}

func invoke(ctx context.Context, handle EventHandler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return handle(ctx, event)
}
