package session

import "sync"

// UnauthorizedEvent describes a 401/403 response observed by the network
// layer while a token was attached to the request.
type UnauthorizedEvent struct {
	Status  int
	Message string
}

// UnauthorizedSignal is a narrow fire-and-forget broadcast raised by the
// transport whenever any authenticated request is rejected with 401 or 403.
// The session manager is one possible subscriber; tests can fire the signal
// directly without a real network layer.
type UnauthorizedSignal struct {
	mu   sync.Mutex
	next int
	subs map[int]func(UnauthorizedEvent)
}

func NewUnauthorizedSignal() *UnauthorizedSignal {
	return &UnauthorizedSignal{subs: make(map[int]func(UnauthorizedEvent))}
}

// Subscribe registers fn and returns a cancel function. Cancel is
// idempotent.
func (s *UnauthorizedSignal) Subscribe(fn func(UnauthorizedEvent)) (cancel func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Notify delivers ev to every subscriber, synchronously.
func (s *UnauthorizedSignal) Notify(ev UnauthorizedEvent) {
	s.mu.Lock()
	fns := make([]func(UnauthorizedEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
