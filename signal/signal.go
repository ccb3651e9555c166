// Package signal is a small typed observer used for synchronous wiring
// between gameplay systems. Subscriptions are handles that detach their
// handler when closed; a Scope owns a group of them so a whole round can be
// torn down at once.
package signal

// Signal is a typed, single-threaded notification source. The zero value is
// ready to use.
type Signal[T any] struct {
	handlers []*handler[T]
}

type handler[T any] struct {
	fn  func(T)
	sub *Subscription
}

// Subscription detaches a handler from its Signal when closed.
type Subscription struct {
	closed bool
	detach func()
}

// Subscribe registers fn and returns the handle that removes it again.
func (s *Signal[T]) Subscribe(fn func(T)) *Subscription {
	h := &handler[T]{fn: fn}
	sub := &Subscription{}
	sub.detach = func() {
		for i, cur := range s.handlers {
			if cur == h {
				s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
				return
			}
		}
	}
	h.sub = sub
	s.handlers = append(s.handlers, h)
	return sub
}

// Emit calls every subscribed handler in subscription order. Handlers added
// during emission are not called until the next Emit; handlers closed during
// emission are skipped.
func (s *Signal[T]) Emit(v T) {
	if len(s.handlers) == 0 {
		return
	}
	snapshot := make([]*handler[T], len(s.handlers))
	copy(snapshot, s.handlers)
	for _, h := range snapshot {
		if h.sub.closed {
			continue
		}
		h.fn(v)
	}
}

// Len returns the number of live subscriptions.
func (s *Signal[T]) Len() int {
	return len(s.handlers)
}

// Close detaches the handler. Closing twice is a no-op.
func (sub *Subscription) Close() {
	if sub == nil || sub.closed {
		return
	}
	sub.closed = true
	sub.detach()
}

// Closed reports whether Close has been called.
func (sub *Subscription) Closed() bool {
	return sub == nil || sub.closed
}

// Scope owns subscriptions and closes them together.
type Scope struct {
	subs   []*Subscription
	closed bool
}

// Add takes ownership of subs. Adding to a closed scope closes them at once.
func (sc *Scope) Add(subs ...*Subscription) {
	if sc.closed {
		for _, sub := range subs {
			sub.Close()
		}
		return
	}
	sc.subs = append(sc.subs, subs...)
}

// Close closes every owned subscription in reverse order.
func (sc *Scope) Close() {
	for i := len(sc.subs) - 1; i >= 0; i-- {
		sc.subs[i].Close()
	}
	sc.subs = nil
	sc.closed = true
}
