package event

// Router queues events during a tick and dispatches them afterwards
//
// Architecture:
//   - Single-threaded: Push and DispatchAll run on the simulation goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order, events in FIFO order
type Router struct {
	handlers map[EventType]*Subject[GameEvent]
	queue    []GameEvent
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType]*Subject[GameEvent]),
	}
}

// Register adds handler for event type t
func (r *Router) Register(t EventType, handler func(GameEvent)) Token {
	s, ok := r.handlers[t]
	if !ok {
		s = NewSubject[GameEvent]()
		r.handlers[t] = s
	}
	return s.Subscribe(handler)
}

// Unregister removes a handler of event type t
func (r *Router) Unregister(t EventType, tok Token) bool {
	s, ok := r.handlers[t]
	if !ok {
		return false
	}
	return s.Unsubscribe(tok)
}

// Push queues an event for the next DispatchAll
func (r *Router) Push(ev GameEvent) {
	r.queue = append(r.queue, ev)
}

// DispatchAll delivers queued events in FIFO order and clears the queue
// Events pushed by handlers are delivered in the same call
func (r *Router) DispatchAll() int {
	n := 0
	for len(r.queue) > 0 {
		ev := r.queue[0]
		r.queue = r.queue[1:]
		if s, ok := r.handlers[ev.Type]; ok {
			s.Emit(ev)
		}
		n++
	}
	r.queue = r.queue[:0]
	return n
}

// Len returns the number of queued events
func (r *Router) Len() int {
	return len(r.queue)
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t EventType) bool {
	s, ok := r.handlers[t]
	return ok && s.Len() > 0
}
