package cartstore

import "sync"

// Bus is the cross-component refresh signal: a component that mutates the
// cart publishes after every successful mutation, and any component that
// displays cart state subscribes and re-fetches on receipt. It is injected
// into each Store rather than shared through a package-level singleton.
type Bus struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a listener. The returned channel coalesces signals that
// arrive while the listener is busy. The cancel function removes the
// subscription.
func (b *Bus) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish signals every subscriber without blocking.
func (b *Bus) Publish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
