package internpool

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/mstr"
)

func TestInternCanonicalizes(t *testing.T) {
	p := New()

	a := p.Intern("key")
	b := p.Intern("key")

	require.True(t, a.IsBorrowed())
	require.True(t, b.IsBorrowed())
	assert.Equal(t, "key", a.String())
	assert.Same(t, a.Pointer(), b.Pointer())
	assert.Equal(t, 1, p.Len())
}

func TestInternDoesNotRetainCaller(t *testing.T) {
	p := New()
	src := []byte("mutable")
	m, err := p.InternBytes(src)
	require.NoError(t, err)

	src[0] = 'X'
	assert.Equal(t, "mutable", m.String())
}

func TestInternEmpty(t *testing.T) {
	p := New()
	m := p.Intern("")
	assert.True(t, m.IsEmpty())
	assert.True(t, m.IsBorrowed())
	assert.Equal(t, 0, p.Len())
}

func TestInternBytesHitAvoidsNewEntry(t *testing.T) {
	p := New()
	first := p.Intern("route")

	m, err := p.InternBytes([]byte("route"))
	require.NoError(t, err)
	assert.Same(t, first.Pointer(), m.Pointer())
	assert.Equal(t, 1, p.Len())
}

func TestInternBytesInvalidUTF8(t *testing.T) {
	p := New()
	_, err := p.InternBytes([]byte{0xff})
	require.ErrorIs(t, err, mstr.ErrInvalidUTF8)
	assert.Equal(t, 0, p.Len())
}

func TestInternConcurrent(t *testing.T) {
	p := New()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				m := p.Intern("k" + strconv.Itoa(i))
				if m.String() != "k"+strconv.Itoa(i) {
					t.Error("wrong canonical value")
					return
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, p.Len())
}

func BenchmarkInternHit(b *testing.B) {
	p := New()
	p.Intern("hot-key")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.Intern("hot-key")
	}
}
