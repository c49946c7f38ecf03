package arena

// ContextArena is an Arena whose factory receives a caller supplied value
// on every construction, e.g. a sibling arena the new object should point into.
type ContextArena[C any, T Participant] struct {
	s       slots[T]
	factory func(C) T
}

// NewContext creates a ContextArena with the given number of slots.
func NewContext[C any, T Participant](capacity int, factory func(C) T) (*ContextArena[C, T], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	a := &ContextArena[C, T]{factory: factory}
	a.s.init(capacity)
	return a, nil
}

// MustNewContext is like NewContext but panics if capacity is not positive.
func MustNewContext[C any, T Participant](capacity int, factory func(C) T) *ContextArena[C, T] {
	a, err := NewContext(capacity, factory)
	if err != nil {
		panic(err)
	}
	return a
}

// Alloc behaves like Arena.Alloc. ctx is passed to the factory when a slot
// is touched for the first time or when the arena is full; a recycled
// object never sees ctx.
func (a *ContextArena[C, T]) Alloc(ctx C) T {
	i, ok := a.s.claim()
	if !ok {
		return a.factory(ctx)
	}
	if v, built := a.s.get(i); built {
		return v
	}
	v := a.factory(ctx)
	a.s.put(i, v)
	return v
}

// Reset behaves like Arena.Reset.
func (a *ContextArena[C, T]) Reset() {
	a.s.reset()
}

// Capacity returns the number of slots in the arena.
func (a *ContextArena[C, T]) Capacity() int {
	return len(a.s.items)
}

// Utilization returns the fraction of slots claimed in the current generation.
func (a *ContextArena[C, T]) Utilization() float64 {
	return a.s.utilization()
}

// Metrics returns a snapshot of arena statistics.
func (a *ContextArena[C, T]) Metrics() ArenaMetrics {
	return a.s.metrics()
}
