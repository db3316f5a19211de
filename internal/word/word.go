// Package word owns the packed length word used by mstr values. The
// most-significant bit of the word is the ownership tag; the remaining
// bits hold the byte length. Every encode and decode of the raw word
// goes through this package; no other code may touch the bits.
package word

import (
	"fmt"
	"math/bits"
	"unsafe"

	"fortio.org/safecast"
)

const (
	// Tag is the ownership bit: set when the value owns its buffer,
	// clear when it borrows.
	Tag = uintptr(1) << (bits.UintSize - 1)

	// MaxLen is the largest byte length the non-tag bits can carry.
	// len() of any real Go allocation is a non-negative int, which
	// never reaches the top bit of the word, so this bound is
	// unreachable in practice.
	MaxLen = int(^Tag)
)

// Pack encodes a byte length and an ownership flag into a single word.
// A length that would collide with the tag bit panics: silently
// truncating it would corrupt both the tag and the apparent length.
func Pack(n int, owned bool) uintptr {
	w, err := safecast.Conv[uintptr](n)
	if err != nil || w&Tag != 0 {
		panic(fmt.Sprintf("word: length %d not representable in a packed word", n))
	}
	if owned {
		w |= Tag
	}
	return w
}

// Length recovers the byte length from a packed word.
func Length(w uintptr) int {
	return int(w &^ Tag)
}

// Owned reports whether a packed word carries the ownership tag.
func Owned(w uintptr) bool {
	return w&Tag != 0
}

// View rebuilds the text from its two words. The caller guarantees p
// addresses Length(w) live, unmutated bytes. A zero length yields ""
// regardless of the pointer, so nil is a valid zero-size placeholder.
func View(p *byte, w uintptr) string {
	n := Length(w)
	if n == 0 {
		return ""
	}
	return unsafe.String(p, n)
}

// Data returns the address of s's first byte. Nil for the empty
// string, matching the runtime's own empty-string representation.
func Data(s string) *byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.StringData(s)
}

// SliceData returns the address of b's first element. Nil when b has
// no backing array.
func SliceData(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return unsafe.SliceData(b)
}
