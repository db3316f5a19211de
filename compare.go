package mstr

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether m and o hold the same text. The ownership tag
// is irrelevant: a borrowed and an owned value with identical bytes
// are equal.
func (m MStr) Equal(o MStr) bool {
	return m.String() == o.String()
}

// EqualString reports whether m's text equals s.
func (m MStr) EqualString(s string) bool {
	return m.String() == s
}

// Compare returns the lexicographic byte ordering of m and o:
// -1, 0 or +1. Consistent with Equal.
func (m MStr) Compare(o MStr) int {
	return strings.Compare(m.String(), o.String())
}

// Less reports whether m sorts before o.
func (m MStr) Less(o MStr) bool {
	return m.String() < o.String()
}

// Hash returns the xxhash of the text bytes. Only the bytes are
// hashed, never the tag or the pointer, so equal values hash equal
// across ownership variants.
func (m MStr) Hash() uint64 {
	return xxhash.Sum64String(m.String())
}
