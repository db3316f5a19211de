package mstr

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualityIgnoresOwnership(t *testing.T) {
	assert.True(t, Borrowed("x").Equal(Owned("x")))
	assert.True(t, Owned("x").Equal(Borrowed("x")))
	assert.Equal(t, Borrowed("x").Hash(), Owned("x").Hash())

	assert.False(t, Borrowed("x").Equal(Owned("y")))
}

func TestEqualString(t *testing.T) {
	m := Owned("abc")
	assert.True(t, m.EqualString("abc"))
	assert.False(t, m.EqualString("abd"))
	assert.False(t, m.EqualString(""))
}

func TestCompareAndLess(t *testing.T) {
	a := Borrowed("apple")
	b := Owned("banana")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(Owned("apple")))

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))
}

func TestCompareQuick(t *testing.T) {
	condition := func(a, b string) bool {
		ma, mb := Borrowed(a), Owned(b)
		if ma.Equal(mb) != (a == b) {
			return false
		}
		if ma.Compare(mb) != strings.Compare(a, b) {
			return false
		}
		if a == b && ma.Hash() != mb.Hash() {
			return false
		}
		return true
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestHashMatchesBytesOnly(t *testing.T) {
	s := string([]byte("same text"))
	assert.Equal(t, Borrowed(s).Hash(), Owned(s).Hash())
	assert.Equal(t, Owned(s).Hash(), Owned(s).Clone().Hash())
	assert.NotEqual(t, Owned("a").Hash(), Owned("b").Hash())
}
