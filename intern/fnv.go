package intern

import (
	"unicode/utf16"
	"unicode/utf8"
)

// FNV-1a 32-bit parameters.
const (
	OffsetBias uint32 = 2166136261
	Prime      uint32 = 16777619
)

func fold(h uint32, unit uint16) uint32 {
	return (h ^ uint32(unit)) * Prime
}

// foldRune folds r as one or two UTF-16 code units. r must be valid.
func foldRune(h uint32, r rune) uint32 {
	if r < 0x10000 {
		return fold(h, uint16(r))
	}
	hi, lo := utf16.EncodeRune(r)
	return fold(fold(h, uint16(hi)), uint16(lo))
}

// validRune maps code points that cannot be encoded as UTF-8 to U+FFFD,
// the same way string(r) does.
func validRune(r rune) rune {
	if utf8.ValidRune(r) {
		return r
	}
	return utf8.RuneError
}

// HashString returns the FNV-1a hash of s taken over its UTF-16 code units.
// Invalid UTF-8 bytes hash as U+FFFD.
func HashString(s string) int32 {
	h := OffsetBias
	for i := 0; i < len(s); {
		if c := s[i]; c < utf8.RuneSelf {
			h = fold(h, uint16(c))
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		h = foldRune(h, r)
		i += size
	}
	return int32(h)
}

// HashBytes is HashString for a UTF-8 byte slice.
func HashBytes(b []byte) int32 {
	h := OffsetBias
	for i := 0; i < len(b); {
		if c := b[i]; c < utf8.RuneSelf {
			h = fold(h, uint16(c))
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		h = foldRune(h, r)
		i += size
	}
	return int32(h)
}

// HashRunes returns the FNV-1a hash of rs taken over its UTF-16 code units.
func HashRunes(rs []rune) int32 {
	h := OffsetBias
	for _, r := range rs {
		h = foldRune(h, validRune(r))
	}
	return int32(h)
}

// hashASCII hashes b byte by byte and returns 0 if any byte is not ASCII.
func hashASCII(b []byte) int32 {
	h := OffsetBias
	var mask byte
	for _, c := range b {
		mask |= c
		h = fold(h, uint16(c))
	}
	if mask >= utf8.RuneSelf {
		return 0
	}
	return int32(h)
}
