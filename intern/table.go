package intern

import (
	"bytes"
	"time"
)

const (
	localBits = 11
	localSize = 1 << localBits
	localMask = localSize - 1
)

// Table is the per-session tier of the cache. It is not safe for
// concurrent use; give each goroutine its own Table over a common Shared.
type Table struct {
	local  [localSize]*entry
	shared *Shared

	// rnd picks eviction victims. Seeded from the clock, bumped on every use.
	rnd   uint32
	stats Stats
}

// NewTable returns an empty Table backed by shared.
// A nil shared selects DefaultShared().
func NewTable(shared *Shared) *Table {
	if shared == nil {
		shared = DefaultShared()
	}
	return &Table{
		shared: shared,
		rnd:    uint32(time.Now().Unix()),
	}
}

// Shared returns the Shared table t publishes to.
func (t *Table) Shared() *Shared {
	return t.shared
}

// Reset drops the Table's own entries. The Shared table is not touched.
func (t *Table) Reset() {
	clear(t.local[:])
}

// Add returns a canonical string for src, described by strategy k.
// The result is content-equal to k.Materialize(src). Sources that hash to 0
// are materialized without consulting or filling the cache.
func Add[S any, K Strategy[S]](t *Table, k K, src S) string {
	h := k.Hash(src)
	if h == 0 {
		t.stats.Bypassed++
		return k.Materialize(src)
	}

	li := h & localMask
	if e := t.local[li]; e != nil && e.hash == h && k.Equal(e.text, src) {
		t.stats.LocalHits++
		return e.text
	}

	if e := lookup(t.shared, k, h, src); e != nil {
		t.local[li] = e
		t.stats.SharedHits++
		return e.text
	}

	e := &entry{hash: h, text: k.Materialize(src)}
	if t.shared.publish(e, t.rnd) {
		t.rnd++
		t.stats.Evictions++
	}
	t.local[li] = e
	t.stats.Misses++
	return e.text
}

// Add interns s. On a miss s itself becomes the canonical copy and stays
// reachable for as long as the Shared table holds it, so a slice of a large
// string keeps the whole string alive. Use AddSubstring for text cut out of
// a bigger buffer.
func (t *Table) Add(s string) string {
	return Add(t, Text{}, s)
}

// AddSubstring interns s[start:start+length]. It panics if the range is out of bounds.
func (t *Table) AddSubstring(s string, start, length int) string {
	return Add(t, Substring{}, Span{Text: s, Start: start, Len: length})
}

// AddRunes interns string(rs[start:start+length]). It panics if the range is out of bounds.
func (t *Table) AddRunes(rs []rune, start, length int) string {
	return Add(t, Runes{}, RuneSpan{Runes: rs, Start: start, Len: length})
}

// AddRune interns string(r).
func (t *Table) AddRune(r rune) string {
	return Add(t, Char{}, r)
}

// AddBuffer interns the unread contents of b. b is not modified.
func (t *Table) AddBuffer(b *bytes.Buffer) string {
	return Add(t, Buffer{}, b)
}

// AddASCII interns b if it is pure ASCII. Any other input is decoded into
// a fresh string and not cached.
func (t *Table) AddASCII(b []byte) string {
	return Add(t, ASCII{}, b)
}

// AddUTF8 interns the UTF-8 text in b.
func (t *Table) AddUTF8(b []byte) string {
	return Add(t, UTF8{}, b)
}
