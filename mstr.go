// Package mstr provides MStr, a two-word immutable string value that
// holds either a borrowed view of existing text or its own exact-size
// copy of it. It is aimed at parsers, configuration loaders and
// deserializers that pass "maybe-owned" strings around and want them
// no bigger than a plain string header.
package mstr

import (
	"errors"
	"unicode/utf8"

	"github.com/rawbytedev/mstr/internal/word"
)

var (
	ErrInvalidUTF8 = errors.New("mstr: bytes are not valid UTF-8")
	ErrNotText     = errors.New("mstr: decoded value is not a string")
)

// MStr is an immutable string that is either borrowed or owned. It is
// exactly two machine words: a pointer and a length word whose top bit
// carries the ownership tag.
//
// The zero value is the empty borrowed string and is ready to use.
//
// Do NOT compare MStr values with ==; that compares the pointer word,
// not the text. Use Equal.
//
// A borrowed MStr stays valid only while the text it was built from
// does; an owned MStr has no such bound. Either kind may be shared
// between goroutines for reading without synchronization, provided the
// borrowed source itself is not being mutated.
type MStr struct {
	ptr *byte
	w   uintptr
}

// Borrowed wraps s without copying. The value aliases s's bytes and is
// tagged borrowed.
func Borrowed(s string) MStr {
	return MStr{ptr: word.Data(s), w: word.Pack(len(s), false)}
}

// BorrowedBytes wraps b without copying after validating it is UTF-8.
// The caller must keep b alive and unmutated for the value's lifetime.
func BorrowedBytes(b []byte) (MStr, error) {
	if !utf8.Valid(b) {
		return MStr{}, ErrInvalidUTF8
	}
	return MStr{ptr: word.SliceData(b), w: word.Pack(len(b), false)}, nil
}

// Owned copies s into a fresh exact-size buffer and tags the value
// owned. The result is independent of s's storage.
func Owned(s string) MStr {
	buf := make([]byte, len(s))
	copy(buf, s)
	return MStr{ptr: word.SliceData(buf), w: word.Pack(len(buf), true)}
}

// OwnedBytes validates b is UTF-8 and takes over its buffer. The
// buffer is reused as-is when it is already exact-size; spare capacity
// forces a reallocation because the value has no capacity word to
// remember it by. The caller must not touch b afterwards.
func OwnedBytes(b []byte) (MStr, error) {
	if !utf8.Valid(b) {
		return MStr{}, ErrInvalidUTF8
	}
	if cap(b) != len(b) {
		exact := make([]byte, len(b))
		copy(exact, b)
		b = exact
	}
	return MStr{ptr: word.SliceData(b), w: word.Pack(len(b), true)}, nil
}

// ownString tags s as owned without copying. Callers guarantee s is
// freshly allocated and not retained anywhere else; every decode path
// uses this to avoid a second copy.
func ownString(s string) MStr {
	return MStr{ptr: word.Data(s), w: word.Pack(len(s), true)}
}

// String returns the text. The returned string shares the value's
// bytes, so for a borrowed value it is subject to the same lifetime
// bound as the value itself.
func (m MStr) String() string {
	return word.View(m.ptr, m.w)
}

// Bytes returns a copy of the text bytes. A copy, not an alias: handing
// out a writable slice over immutable text would let callers mutate it.
func (m MStr) Bytes() []byte {
	return []byte(m.String())
}

// AppendTo appends the text bytes to dst.
func (m MStr) AppendTo(dst []byte) []byte {
	return append(dst, m.String()...)
}

// Len returns the byte length of the text.
func (m MStr) Len() int {
	return word.Length(m.w)
}

// IsEmpty reports whether the text has length zero.
func (m MStr) IsEmpty() bool {
	return m.Len() == 0
}

// IsOwned reports whether the value owns its buffer. Exactly one of
// IsOwned and IsBorrowed is true for every value.
func (m MStr) IsOwned() bool {
	return word.Owned(m.w)
}

// IsBorrowed reports whether the value borrows its bytes.
func (m MStr) IsBorrowed() bool {
	return !word.Owned(m.w)
}

// Pointer returns the address of the first text byte, nil for the
// empty string. Read-only; useful for aliasing checks.
func (m MStr) Pointer() *byte {
	return m.ptr
}
