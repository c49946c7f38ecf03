package arena

import "sync/atomic"

// slots is the claim/reset machinery shared by Arena and ContextArena.
type slots[T Participant] struct {
	items []T
	built []bool

	// next counts claims in the current generation. It only grows between
	// resets; claims beyond len(items) are not pooled.
	next        atomic.Int64
	constructed atomic.Int64
	generation  atomic.Uint64
}

func (s *slots[T]) init(capacity int) {
	s.items = make([]T, capacity)
	s.built = make([]bool, capacity)
}

// claim reserves the next slot index. ok is false when the post-increment
// counter is past capacity.
func (s *slots[T]) claim() (i int, ok bool) {
	n := s.next.Add(1)
	if n > int64(len(s.items)) {
		return 0, false
	}
	return int(n - 1), true
}

// get and put are only called by the goroutine that claimed index i.
func (s *slots[T]) get(i int) (T, bool) {
	return s.items[i], s.built[i]
}

func (s *slots[T]) put(i int, v T) {
	s.items[i] = v
	s.built[i] = true
	s.constructed.Add(1)
}

// claimed returns the number of pooled slots handed out this generation.
func (s *slots[T]) claimed() int {
	n := s.next.Load()
	if c := int64(len(s.items)); n > c {
		return int(c)
	}
	return int(n)
}

// overflow returns the number of unpooled allocations this generation.
func (s *slots[T]) overflow() int {
	n := s.next.Load() - int64(len(s.items))
	if n < 0 {
		return 0
	}
	return int(n)
}

func (s *slots[T]) reset() {
	n := s.claimed()
	for i := 0; i < n; i++ {
		// A factory that panicked leaves its slot unbuilt.
		if s.built[i] {
			s.items[i].ClearReferences()
		}
	}
	s.next.Store(0)
	s.generation.Add(1)
}

func (s *slots[T]) utilization() float64 {
	return float64(s.claimed()) / float64(len(s.items))
}
