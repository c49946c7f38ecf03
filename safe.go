package arena

import "sync"

// Guarded wraps an Arena so that Reset can be called while other goroutines
// are allocating. Alloc holds a read lock and stays concurrent; Reset holds
// the write lock and waits for in-flight Alloc calls to finish.
type Guarded[T Participant] struct {
	mu sync.RWMutex
	a  *Arena[T]
}

// NewGuarded creates a Guarded arena with the given number of slots.
func NewGuarded[T Participant](capacity int, factory func() T) (*Guarded[T], error) {
	a, err := New(capacity, factory)
	if err != nil {
		return nil, err
	}
	return &Guarded[T]{a: a}, nil
}

// Alloc returns a pooled or unpooled object, see Arena.Alloc.
func (g *Guarded[T]) Alloc() T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.a.Alloc()
}

// Reset starts a new generation, see Arena.Reset.
//
// Objects handed out before Reset are cleared and will be handed out again;
// callers must stop using them before calling Reset.
func (g *Guarded[T]) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.a.Reset()
}

// Capacity returns the number of slots in the arena.
func (g *Guarded[T]) Capacity() int {
	return g.a.Capacity()
}
