package event

// Token identifies a subscription for later removal
// Zero is never issued
type Token uint64

type subscription[T any] struct {
	token   Token
	handler func(T)
}

// Subject is a single-threaded observer list
// Handlers run synchronously in subscription order during Emit
type Subject[T any] struct {
	subs      []subscription[T]
	next      Token
	once      bool
	completed bool
}

// NewSubject creates a subject that can emit any number of times
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// NewOnceSubject creates a subject that completes after its first emission
// Later Emit calls are dropped
func NewOnceSubject[T any]() *Subject[T] {
	return &Subject[T]{once: true}
}

// Subscribe registers handler and returns its token
// Subscribing to a completed subject returns 0 and never fires
func (s *Subject[T]) Subscribe(handler func(T)) Token {
	if s.completed || handler == nil {
		return 0
	}
	s.next++
	s.subs = append(s.subs, subscription[T]{token: s.next, handler: handler})
	return s.next
}

// Unsubscribe removes the handler registered under tok
// Returns false if tok is unknown or already removed
func (s *Subject[T]) Unsubscribe(tok Token) bool {
	for i, sub := range s.subs {
		if sub.token == tok {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Emit delivers v to every handler and returns the number delivered
// Handlers subscribed during Emit are not called for the current value
func (s *Subject[T]) Emit(v T) int {
	if s.completed {
		return 0
	}
	if s.once {
		s.completed = true
	}

	// Snapshot so handlers may unsubscribe themselves
	subs := make([]subscription[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.handler(v)
	}

	if s.completed {
		s.subs = nil
	}
	return len(subs)
}

// Complete drops all handlers and rejects further emissions
func (s *Subject[T]) Complete() {
	s.completed = true
	s.subs = nil
}

// Completed reports whether the subject stopped emitting
func (s *Subject[T]) Completed() bool {
	return s.completed
}

// Len returns the number of live subscriptions
func (s *Subject[T]) Len() int {
	return len(s.subs)
}
