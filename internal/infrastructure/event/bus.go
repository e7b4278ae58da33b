package event

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"go.uber.org/zap"
)

// InMemoryEventBus implements shared.EventBus with in-memory pub/sub.
// Dispatch is synchronous for projection handlers; handlers that mark
// themselves asynchronous (mail delivery and other slow I/O) run in
// tracked goroutines that Stop drains before returning.
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler // event type -> handlers
	catchAll []shared.EventHandler
	logger   *zap.Logger
	running  atomic.Bool
	wg       sync.WaitGroup
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]shared.EventHandler),
		logger:   logger,
	}
}

// Publish publishes events to all registered handlers. Synchronous
// handlers run inline; asynchronous ones are dispatched to goroutines
// and never delay the publisher. A failing handler is logged and does
// not stop the others.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, evt := range events {
		for _, handler := range b.handlersFor(evt.EventType()) {
			if ah, ok := handler.(shared.AsyncEventHandler); ok && ah.Async() {
				b.dispatchAsync(ctx, handler, evt)
				continue
			}
			if err := b.dispatchToHandler(ctx, handler, evt); err != nil {
				b.logEventError(evt, err)
			}
		}
	}
	return nil
}

// dispatchAsync runs the handler in a goroutine tracked by the bus so
// Stop can drain in-flight work. The request context is detached: the
// HTTP response that triggered the event may complete (and cancel its
// context) before the handler finishes.
func (b *InMemoryEventBus) dispatchAsync(ctx context.Context, handler shared.EventHandler, evt shared.DomainEvent) {
	detached := context.WithoutCancel(ctx)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if err := b.dispatchToHandler(detached, handler, evt); err != nil {
			b.logEventError(evt, err)
		}
	}()
}

func (b *InMemoryEventBus) logEventError(evt shared.DomainEvent, err error) {
	b.logger.Error("handler failed to process event",
		zap.String("event_type", evt.EventType()),
		zap.String("event_id", evt.EventID().String()),
		zap.Error(err),
	)
}

// Subscribe registers a handler for specific event types. Without explicit
// types, the handler's own EventTypes() is used; an empty list subscribes
// the handler to every event.
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(eventTypes) == 0 {
		b.catchAll = append(b.catchAll, handler)
	} else {
		for _, et := range eventTypes {
			b.handlers[et] = append(b.handlers[et], handler)
		}
	}

	b.logger.Debug("handler subscribed", zap.Strings("event_types", eventTypes))
}

// Unsubscribe removes a handler from all subscription lists
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for et, hs := range b.handlers {
		b.handlers[et] = removeHandler(hs, handler)
	}
	b.catchAll = removeHandler(b.catchAll, handler)

	b.logger.Debug("handler unsubscribed")
}

// Start starts the event bus
func (b *InMemoryEventBus) Start(ctx context.Context) error {
	b.running.Store(true)
	b.logger.Info("event bus started")
	return nil
}

// Stop stops the event bus gracefully
func (b *InMemoryEventBus) Stop(ctx context.Context) error {
	b.running.Store(false)
	b.wg.Wait()
	b.logger.Info("event bus stopped")
	return nil
}

func (b *InMemoryEventBus) handlersFor(eventType string) []shared.EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]shared.EventHandler, 0, len(b.handlers[eventType])+len(b.catchAll))
	result = append(result, b.handlers[eventType]...)
	result = append(result, b.catchAll...)
	return result
}

// dispatchToHandler safely dispatches an event to a handler
func (b *InMemoryEventBus) dispatchToHandler(ctx context.Context, handler shared.EventHandler, evt shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked",
				zap.String("event_type", evt.EventType()),
				zap.Any("panic", r),
			)
		}
	}()

	return handler.Handle(ctx, evt)
}

func removeHandler(handlers []shared.EventHandler, target shared.EventHandler) []shared.EventHandler {
	result := handlers[:0]
	for _, h := range handlers {
		if h != target {
			result = append(result, h)
		}
	}
	return result
}

// Ensure InMemoryEventBus implements EventBus
var _ shared.EventBus = (*InMemoryEventBus)(nil)
