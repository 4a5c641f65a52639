package usecase

import (
	"sync"
	"time"
)

// gate serializes mutations for a single resource kind and applies the
// simulated round-trip latency the UI was written against. It is the
// per-kind loading flag: while a mutation is in flight further mutations on
// the same kind wait, while other kinds stay interactive. A round trip that
// has started always runs to completion; there is no cancellation.
type gate struct {
	mu    sync.Mutex
	delay time.Duration
}

func (g *gate) do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	return fn()
}
