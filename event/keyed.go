package event

type keyedSub[K comparable] struct {
	key   K
	inner Token
}

// KeySubject fans out "key pressed" notifications filtered by key
// Each handler watches exactly one key
type KeySubject[K comparable] struct {
	byKey map[K]*Subject[K]
	subs  map[Token]keyedSub[K]
	next  Token
}

// NewKeySubject creates an empty keyed subject
func NewKeySubject[K comparable]() *KeySubject[K] {
	return &KeySubject[K]{
		byKey: make(map[K]*Subject[K]),
		subs:  make(map[Token]keyedSub[K]),
	}
}

// Subscribe registers handler for key only
func (k *KeySubject[K]) Subscribe(key K, handler func(K)) Token {
	s, ok := k.byKey[key]
	if !ok {
		s = NewSubject[K]()
		k.byKey[key] = s
	}
	inner := s.Subscribe(handler)
	if inner == 0 {
		return 0
	}

	k.next++
	k.subs[k.next] = keyedSub[K]{key: key, inner: inner}
	return k.next
}

// Unsubscribe removes a handler registered through Subscribe
func (k *KeySubject[K]) Unsubscribe(tok Token) bool {
	sub, ok := k.subs[tok]
	if !ok {
		return false
	}
	delete(k.subs, tok)
	return k.byKey[sub.key].Unsubscribe(sub.inner)
}

// Emit notifies handlers of key and returns the number notified
func (k *KeySubject[K]) Emit(key K) int {
	s, ok := k.byKey[key]
	if !ok {
		return 0
	}
	return s.Emit(key)
}
