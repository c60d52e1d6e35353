package event

import "sync"

// Handler processes routed events
type Handler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev Event)

	// EventTypes returns the event types this handler processes
	EventTypes() []Type
}

// HandlerFunc adapts a function to a Handler subscribed to the given types
type HandlerFunc struct {
	Types []Type
	Fn    func(Event)
}

func (h HandlerFunc) HandleEvent(ev Event) { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []Type  { return h.Types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch from the game loop
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[Type][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them, returning the count
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	if len(events) == 0 {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for t
func (r *Router) HandlerCount(t Type) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[t])
}
