package intern

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Strategy describes how to hash, compare and copy one kind of source.
//
// Hash must agree with HashString for sources that describe the same text,
// and a Hash of 0 means the source is not interned at all. Equal must hold
// for Equal(Materialize(src), src). Materialize must return a string that does
// not alias memory the caller may later modify.
type Strategy[S any] interface {
	Hash(src S) int32
	Equal(candidate string, src S) bool
	Materialize(src S) string
}

// Span is a byte range of a string.
type Span struct {
	Text  string
	Start int
	Len   int
}

func (s Span) String() string { return s.Text[s.Start : s.Start+s.Len] }

// RuneSpan is a range of a rune slice.
type RuneSpan struct {
	Runes []rune
	Start int
	Len   int
}

func (s RuneSpan) runes() []rune { return s.Runes[s.Start : s.Start+s.Len] }

// Text interns whole strings. The string itself becomes the canonical copy,
// including any larger string it was sliced from.
type Text struct{}

func (Text) Hash(src string) int32 { return HashString(src) }
func (Text) Equal(candidate string, src string) bool { return candidate == src }
func (Text) Materialize(src string) string { return src }

// Substring interns a byte range of a string. The range is copied on a
// miss so the cache never pins the enclosing string.
type Substring struct{}

func (Substring) Hash(src Span) int32 { return HashString(src.String()) }
func (Substring) Equal(candidate string, src Span) bool { return candidate == src.String() }
func (Substring) Materialize(src Span) string { return strings.Clone(src.String()) }

// Runes interns a range of a rune slice.
type Runes struct{}

func (Runes) Hash(src RuneSpan) int32 { return HashRunes(src.runes()) }

func (Runes) Equal(candidate string, src RuneSpan) bool {
	return equalRunes(candidate, src.runes())
}

func (Runes) Materialize(src RuneSpan) string { return string(src.runes()) }

// Char interns a single rune.
type Char struct{}

func (Char) Hash(src rune) int32 { return int32(foldRune(OffsetBias, validRune(src))) }

func (Char) Equal(candidate string, src rune) bool {
	n, ok := matchRune(candidate, validRune(src))
	return ok && n == len(candidate)
}

func (Char) Materialize(src rune) string { return string(validRune(src)) }

// Buffer interns the current contents of a bytes.Buffer.
// A nil buffer is treated as empty.
type Buffer struct{}

func (Buffer) Hash(src *bytes.Buffer) int32 { return HashBytes(bufferBytes(src)) }

func (Buffer) Equal(candidate string, src *bytes.Buffer) bool {
	return candidate == string(bufferBytes(src))
}

func (Buffer) Materialize(src *bytes.Buffer) string { return string(bufferBytes(src)) }

// ASCII interns byte slices that contain only ASCII. Any byte >= 0x80
// makes Hash return 0, so the bytes are decoded into a fresh string and
// never cached.
type ASCII struct{}

func (ASCII) Hash(src []byte) int32 { return hashASCII(src) }
func (ASCII) Equal(candidate string, src []byte) bool { return candidate == string(src) }
func (ASCII) Materialize(src []byte) string { return string(src) }

// UTF8 interns arbitrary UTF-8 byte slices.
type UTF8 struct{}

func (UTF8) Hash(src []byte) int32 { return HashBytes(src) }
func (UTF8) Equal(candidate string, src []byte) bool { return candidate == string(src) }
func (UTF8) Materialize(src []byte) string { return string(src) }

func bufferBytes(b *bytes.Buffer) []byte {
	if b == nil {
		return nil
	}
	return b.Bytes()
}

// equalRunes reports whether s is exactly the UTF-8 encoding of rs.
func equalRunes(s string, rs []rune) bool {
	off := 0
	for _, r := range rs {
		n, ok := matchRune(s[off:], validRune(r))
		if !ok {
			return false
		}
		off += n
	}
	return off == len(s)
}

// matchRune reports whether s starts with the UTF-8 encoding of r and
// returns the encoding length.
func matchRune(s string, r rune) (int, bool) {
	if r < utf8.RuneSelf {
		return 1, len(s) > 0 && s[0] == byte(r)
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return n, len(s) >= n && s[:n] == string(buf[:n])
}
