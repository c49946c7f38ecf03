package arena

// Utilization returns the fraction of slots claimed in the current
// generation (0.0 to 1.0). Claims past capacity do not count.
func (a *Arena[T]) Utilization() float64 {
	return a.s.utilization()
}

// InUse returns the number of pooled slots claimed in the current generation.
func (a *Arena[T]) InUse() int {
	return a.s.claimed()
}

// Overflow returns the number of unpooled allocations made in the current generation.
func (a *Arena[T]) Overflow() int {
	return a.s.overflow()
}

// Generation returns the number of completed resets.
func (a *Arena[T]) Generation() uint64 {
	return a.s.generation.Load()
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return a.s.metrics()
}

func (s *slots[T]) metrics() ArenaMetrics {
	return ArenaMetrics{
		Capacity:    len(s.items),
		InUse:       s.claimed(),
		Constructed: int(s.constructed.Load()),
		Overflow:    s.overflow(),
		Generation:  s.generation.Load(),
		Utilization: s.utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Capacity    int     // Number of slots
	InUse       int     // Slots claimed in the current generation
	Constructed int     // Slots ever built by the factory
	Overflow    int     // Unpooled allocations in the current generation
	Generation  uint64  // Completed resets
	Utilization float64 // InUse / Capacity (0.0-1.0)
}

// Thread-safe metrics for Guarded

// Utilization returns the fraction of slots claimed in the current generation.
func (g *Guarded[T]) Utilization() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.a.Utilization()
}

// Metrics returns a snapshot of arena statistics.
func (g *Guarded[T]) Metrics() ArenaMetrics {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.a.Metrics()
}
