// File: pool/str.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PoolStr is the string-valued handle: a pair of references, one to the
// pool's shared state and one to the entry itself, so dereferencing needs
// neither a lock nor a hash. The zero value is the empty-string sentinel
// and belongs to no pool.

package pool

import (
	"strings"

	"github.com/momentics/strpool/internal/strhash"
)

// PoolStr is a handle to one interned string. Obtain it from Intern, Find,
// Clone or Empty; every non-empty handle must be released exactly once.
// After Release the handle must not be used.
type PoolStr struct {
	in  *inner
	ent *entry
}

// Empty returns the empty-string sentinel. It never allocates, references
// no pool, and compares equal to every other empty handle.
func Empty() PoolStr {
	return PoolStr{}
}

// String returns the interned content. No locking: the handle's own
// existence guarantees the entry's refcount is at least one, so the
// content cannot have been freed.
func (s PoolStr) String() string {
	if s.ent == nil {
		return ""
	}
	return s.ent.str
}

// Len returns the content length in bytes.
func (s PoolStr) Len() int {
	if s.ent == nil {
		return 0
	}
	return len(s.ent.str)
}

// IsEmpty reports whether this is the empty sentinel.
func (s PoolStr) IsEmpty() bool {
	return s.ent == nil
}

// Equal compares content, not handle identity. Two handles to the same
// entry short-circuit on the pointer.
func (s PoolStr) Equal(o PoolStr) bool {
	if s.ent == o.ent {
		return true
	}
	return s.String() == o.String()
}

// EqualString compares against a plain string.
func (s PoolStr) EqualString(o string) bool {
	return s.String() == o
}

// Compare orders by content, like strings.Compare.
func (s PoolStr) Compare(o PoolStr) int {
	return strings.Compare(s.String(), o.String())
}

// Hash64 returns an unseeded content hash, identical across pools for
// equal content. Suitable for user-side hash tables keyed by PoolStr.
func (s PoolStr) Hash64() uint64 {
	return strhash.Sum64(s.String())
}

// Clone returns one more handle to the same entry, bumping both the
// entry's refcount and the pool's joint handle counter. Cloning the empty
// sentinel is a no-op.
func (s PoolStr) Clone() PoolStr {
	if s.ent == nil {
		return PoolStr{}
	}
	s.ent.retain()
	s.in.retainHandle()
	return s
}

// Release gives up this handle. When it was the last one for its entry,
// the entry is removed from its shard and freed inside the shard's
// critical section, so a zero refcount is never observable by a concurrent
// Intern or Find. Releasing the empty sentinel is a no-op.
func (s PoolStr) Release() {
	e := s.ent
	if e == nil {
		return
	}
	in := s.in
	if !e.releaseFast() {
		// Possibly the last handle. The final decrement must happen
		// under the shard lock: an Intern hitting this entry holds the
		// same lock, so it either retains before our decrement or scans
		// after the removal, never in between.
		sh := in.shardFor(e.hash)
		sh.mu.Lock()
		if e.refs.Add(-1) == 0 {
			sh.remove(e)
			in.released.Add(1)
			in.liveBytes.Add(-int64(len(e.str)))
		}
		sh.mu.Unlock()
	}
	in.releaseHandle()
}
