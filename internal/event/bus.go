package event

import (
	"regexp"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"

	"github.com/Iron-Ham/larek/internal/logging"
)

// Handler is a function that handles an event.
type Handler func(Event)

// subscription represents a registered event handler. Exactly one of
// name, pattern or all selects which events it receives.
type subscription struct {
	id      string
	name    string
	pattern *regexp.Regexp
	all     bool
	handler Handler
}

func (s subscription) matches(name string) bool {
	switch {
	case s.all:
		return true
	case s.pattern != nil:
		return s.pattern.MatchString(name)
	default:
		return s.name == name
	}
}

// Bus is a simple synchronous pub-sub event bus.
// It allows components to communicate without direct dependencies.
type Bus struct {
	mu            sync.RWMutex
	subscriptions []subscription // registration order
	logger        *logging.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used to report handler panics.
func WithLogger(l *logging.Logger) Option {
	return func(b *Bus) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBus creates a new event bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{logger: logging.NopLogger()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers a handler for events whose name equals eventType.
// Returns a subscription ID that can be used to unsubscribe.
func (b *Bus) Subscribe(eventType string, handler Handler) string {
	return b.add(subscription{name: eventType, handler: handler})
}

// SubscribePattern registers a handler for every event whose name matches
// the regular expression, e.g. OrderFieldChange.
func (b *Bus) SubscribePattern(pattern *regexp.Regexp, handler Handler) string {
	return b.add(subscription{pattern: pattern, handler: handler})
}

// SubscribeAll registers a handler for all event types.
// The handler will be called for every published event.
func (b *Bus) SubscribeAll(handler Handler) string {
	return b.add(subscription{all: true, handler: handler})
}

func (b *Bus) add(sub subscription) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub.id = uuid.NewString()
	b.subscriptions = append(b.subscriptions, sub)
	return sub.id
}

// Unsubscribe removes a subscription by ID.
// Returns true if the subscription was found and removed.
func (b *Bus) Unsubscribe(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscriptions {
		if sub.id == id {
			// Build a new slice so a dispatch in progress keeps its own view.
			next := make([]subscription, 0, len(b.subscriptions)-1)
			next = append(next, b.subscriptions[:i]...)
			b.subscriptions = append(next, b.subscriptions[i+1:]...)
			return true
		}
	}
	return false
}

// Publish dispatches an event to every matching handler: exact-name,
// pattern and all-events subscriptions alike, in registration order.
// The matching handlers are collected before any of them runs, so a handler
// may publish, subscribe or unsubscribe without affecting the current dispatch.
// If a handler panics, the panic is logged, recovered, and publishing
// continues to remaining handlers.
func (b *Bus) Publish(event Event) {
	name := event.EventType()

	b.mu.RLock()
	matched := make([]Handler, 0, len(b.subscriptions))
	for _, sub := range b.subscriptions {
		if sub.matches(name) {
			matched = append(matched, sub.handler)
		}
	}
	b.mu.RUnlock()

	for _, handler := range matched {
		b.safeCall(handler, event)
	}
}

// Trigger returns a function that publishes a freshly built event each time
// it is called. Views use it to bind actions to key presses.
func (b *Bus) Trigger(build func() Event) func() {
	return func() {
		b.Publish(build())
	}
}

// TriggerSignal returns a function that publishes a payload-less event.
func (b *Bus) TriggerSignal(name string) func() {
	return b.Trigger(func() Event { return NewSignal(name) })
}

// safeCall invokes a handler and recovers from any panics.
// Panics are logged with stack traces to aid debugging while ensuring
// one misbehaving handler cannot block event delivery to other handlers.
func (b *Bus) safeCall(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"event", event.EventType(),
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	handler(event)
}

// Clear removes all subscriptions.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions = nil
}

// SubscriptionCount returns the total number of active subscriptions.
func (b *Bus) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}
