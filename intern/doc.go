// Package intern implements a two-tier, lossy string interning cache for
// lexers, parsers and other hot text-processing loops.
//
// # Overview
//
// A Table is a small single-owner cache (2048 slots, last write wins) that
// sits in front of a Shared table (65536 slots) visible to every Table that
// was built with it. Add hashes the source with FNV-1a, looks in the Table,
// then probes up to 16 Shared slots, and on a miss materializes a new string
// and publishes it to both tiers.
//
// Entries are overwritten and evicted freely. A hit always re-checks the
// candidate against the source, so eviction or a racing writer only ever
// costs an extra allocation, never a wrong result. Do not use a Table as a
// set or as a source of truth for equality.
//
// # Basic Usage
//
//	shared := intern.NewShared() // or intern.DefaultShared()
//	t := intern.NewTable(shared) // one per goroutine / parse session
//
//	a := t.AddSubstring("abcd1", 0, 4)
//	b := t.AddSubstring("abcd2", 0, 4) // same string header as a
//
// # Source Kinds
//
// Sources are hashed as UTF-16 code units, so every kind that describes the
// same text lands in the same bucket:
//
//   - Text: a string
//   - Substring: a byte range of a string
//   - Runes: a range of a []rune
//   - Char: a single rune
//   - Buffer: the contents of a *bytes.Buffer
//   - ASCII: a []byte that is interned only when every byte is < 0x80
//   - UTF8: a []byte of arbitrary UTF-8
//
// New kinds plug in by implementing Strategy and calling the generic Add.
//
// # Thread Safety
//
// A Table must not be used by more than one goroutine at a time. A Shared
// table is safe for any number of concurrent Tables: each slot holds an
// atomically published pointer to an immutable (hash, text) record.
package intern
