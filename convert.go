package mstr

import "strings"

// Clone returns an independent value with the same text and tag.
// Cloning a borrowed value copies the two words and nothing else, so
// both values alias the same bytes under the same lifetime bound.
// Cloning an owned value allocates a fresh exact-size buffer; the two
// values are then independently releasable.
func (m MStr) Clone() MStr {
	if m.IsBorrowed() {
		return m
	}
	return Owned(m.String())
}

// ToOwned returns an owned value with the same text. An already-owned
// value is returned as-is, with no copy. A borrowed value is copied
// into a fresh buffer, detaching it from the source's lifetime.
func (m MStr) ToOwned() MStr {
	if m.IsOwned() {
		return m
	}
	return Owned(m.String())
}

// IntoString materializes a standalone string. An owned value hands
// its buffer over without copying and must be treated as consumed; a
// borrowed value is cloned off its source.
func (m MStr) IntoString() string {
	if m.IsOwned() {
		return m.String()
	}
	return strings.Clone(m.String())
}

// Release resets m to the empty borrowed state. For an owned value
// this drops the reference to its buffer so the collector can reclaim
// it; the collector itself guarantees the buffer is freed exactly
// once, however many copies of the value existed. Safe to call more
// than once.
func (m *MStr) Release() {
	*m = MStr{}
}
