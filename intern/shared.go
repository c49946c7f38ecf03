package intern

import (
	"sync"
	"sync/atomic"
)

const (
	sharedBits = 16
	sharedSize = 1 << sharedBits
	sharedMask = sharedSize - 1

	// probeLen is the number of Shared slots reachable from one hash.
	probeLen = 16
)

// entry is immutable once published.
type entry struct {
	hash int32
	text string
}

// Shared is the process-wide tier of the cache. Every slot is published
// with a single atomic store of an immutable entry, so concurrent readers
// see either the previous entry or the new one.
type Shared struct {
	slots [sharedSize]atomic.Pointer[entry]
}

// NewShared returns an empty Shared table. Most programs use DefaultShared;
// tests and isolated pipelines create their own.
func NewShared() *Shared {
	return new(Shared)
}

var defaultShared = sync.OnceValue(NewShared)

// DefaultShared returns the process-wide Shared table, creating it on first use.
func DefaultShared() *Shared {
	return defaultShared()
}

// Len returns the number of occupied slots. It scans the whole table.
func (s *Shared) Len() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].Load() != nil {
			n++
		}
	}
	return n
}

// sharedBase returns the start of the probe sequence for h.
func sharedBase(h int32) int32 {
	return (h ^ (h >> localBits)) & sharedMask
}

// probe returns the slot visited at step i (1-based) of the sequence starting at base.
func (s *Shared) probe(base, i int32) *atomic.Pointer[entry] {
	return &s.slots[(base+(i*i+i)/2)&sharedMask]
}

// lookup walks the probe sequence for h and stops at the first empty slot.
func lookup[S any, K Strategy[S]](s *Shared, k K, h int32, src S) *entry {
	base := sharedBase(h)
	for i := int32(1); i <= probeLen; i++ {
		e := s.probe(base, i).Load()
		if e == nil {
			return nil
		}
		if e.hash == h && k.Equal(e.text, src) {
			return e
		}
	}
	return nil
}

// publish stores e in the first empty slot of its probe sequence. When the
// sequence is full it overwrites the slot chosen by r and reports true.
func (s *Shared) publish(e *entry, r uint32) (evicted bool) {
	base := sharedBase(e.hash)
	for i := int32(1); i <= probeLen; i++ {
		slot := s.probe(base, i)
		if slot.Load() == nil {
			slot.Store(e)
			return false
		}
	}
	s.probe(base, int32(r&(probeLen-1))+1).Store(e)
	return true
}
