package events

// Handler processes specific event types within a context T.
// Systems implement this to receive routed events
type Handler[T any] interface {
	// HandleEvent processes one event, synchronously during dispatch
	HandleEvent(ctx T, ev Event)

	// EventTypes returns the types this handler wants
	EventTypes() []Type
}

// Router dispatches queued events to registered handlers.
// Single-threaded dispatch; handlers for the same type run in
// registration order
type Router[T any] struct {
	handlers map[Type][]Handler[T]
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *Queue) *Router[T] {
	return &Router[T]{
		handlers: make(map[Type][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
func (r *Router[T]) DispatchAll(ctx T) {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
}

// HasHandlers reports whether anything is registered for the type
func (r *Router[T]) HasHandlers(t Type) bool {
	return len(r.handlers[t]) > 0
}
