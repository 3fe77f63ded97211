package boulderdash

import "github.com/vovakirdan/tui-boulder/internal/games/boulderdash/cave"

// Handler receives one event.
type Handler func(cave.Event)

// Bus fans cave events out to the session bookkeeping, the renderer and
// the logger. Handlers run synchronously in subscription order.
type Bus struct {
	handlers map[cave.EventType][]Handler
	all      []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[cave.EventType][]Handler),
	}
}

// Subscribe registers fn for events of type t.
func (b *Bus) Subscribe(t cave.EventType, fn Handler) {
	b.handlers[t] = append(b.handlers[t], fn)
}

// SubscribeAll registers fn for every event. It runs after the typed
// handlers of each event.
func (b *Bus) SubscribeAll(fn Handler) {
	b.all = append(b.all, fn)
}

// Emit delivers e.
func (b *Bus) Emit(e cave.Event) {
	for _, fn := range b.handlers[e.Type] {
		fn(e)
	}
	for _, fn := range b.all {
		fn(e)
	}
}

// EmitAll delivers events in order.
func (b *Bus) EmitAll(events []cave.Event) {
	for _, e := range events {
		b.Emit(e)
	}
}
