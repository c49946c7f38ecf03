// Package arena implements a fixed-capacity slot arena.
// Typical usage: create one arena per parse session, Alloc many short-lived
// objects from it, then Reset() at the end of the session so the same
// objects are handed out again in the next one.
package arena

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned when an arena is created with a capacity <= 0.
var ErrInvalidCapacity = errors.New("arena: capacity must be positive")

// Participant is implemented by objects that can live in an arena slot.
// ClearReferences must release every reference the object holds to other
// pooled or heap objects.
type Participant interface {
	ClearReferences()
}

// Arena is a fixed-capacity pool of recycled objects.
// Alloc is goroutine-safe. Reset is not, see Guarded.
type Arena[T Participant] struct {
	s       slots[T]
	factory func() T
}

// New creates an Arena with the given number of slots.
// Slots are filled lazily by factory on first claim.
func New[T Participant](capacity int, factory func() T) (*Arena[T], error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	a := &Arena[T]{factory: factory}
	a.s.init(capacity)
	return a, nil
}

// MustNew is like New but panics if capacity is not positive.
func MustNew[T Participant](capacity int, factory func() T) *Arena[T] {
	a, err := New(capacity, factory)
	if err != nil {
		panic(err)
	}
	return a
}

// Alloc returns the next pooled object, or a new unpooled one when every
// slot has been claimed in the current generation. It never fails.
func (a *Arena[T]) Alloc() T {
	i, ok := a.s.claim()
	if !ok {
		return a.factory()
	}
	if v, built := a.s.get(i); built {
		return v
	}
	v := a.factory()
	a.s.put(i, v)
	return v
}

// Reset calls ClearReferences on every slot claimed since the previous
// Reset and makes all slots available again. The objects themselves are kept.
// Reset must not run concurrently with Alloc.
func (a *Arena[T]) Reset() {
	a.s.reset()
}

// Capacity returns the number of slots in the arena.
func (a *Arena[T]) Capacity() int {
	return len(a.s.items)
}

func checkCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	return nil
}
