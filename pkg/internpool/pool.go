// Package internpool deduplicates strings and hands out borrowed mstr
// values backed by the pool's canonical copies. Repeated keys in a
// parse or config-load pass then cost two words each instead of a
// fresh allocation.
package internpool

import (
	"strings"
	"sync"

	"github.com/rawbytedev/mstr"
)

// Pool canonicalizes strings. Safe for concurrent use. Entries are
// never evicted; the pool's lifetime bounds every value it hands out.
type Pool struct {
	mu     sync.RWMutex
	values map[string]string
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{values: make(map[string]string)}
}

// Intern returns a borrowed value over the canonical copy of s. The
// first sighting of a string stores a private clone, so the caller's
// backing storage is never retained.
func (p *Pool) Intern(s string) mstr.MStr {
	if s == "" {
		return mstr.MStr{}
	}

	p.mu.RLock()
	canon, ok := p.values[s]
	p.mu.RUnlock()
	if ok {
		return mstr.Borrowed(canon)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if canon, ok := p.values[s]; ok {
		return mstr.Borrowed(canon)
	}
	canon = strings.Clone(s)
	p.values[canon] = canon
	return mstr.Borrowed(canon)
}

// InternBytes validates b is UTF-8 and interns it. Lookup hits do not
// copy b.
func (p *Pool) InternBytes(b []byte) (mstr.MStr, error) {
	v, err := mstr.BorrowedBytes(b)
	if err != nil {
		return mstr.MStr{}, err
	}
	return p.Intern(v.String()), nil
}

// Len returns the number of canonical strings held.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.values)
}
