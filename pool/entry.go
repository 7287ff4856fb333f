// File: pool/entry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync/atomic"

// entry is the storage unit of one interned string: immutable content,
// its cached shard hash, and a live-handle counter. An entry is reachable
// from its shard iff refs > 0; the transition to zero happens only inside
// the owning shard's critical section, together with removal.
type entry struct {
	str  string
	hash uint64
	slot int
	refs atomic.Int64
}

// retain hands out one more handle. Callers must already hold a handle
// (refs >= 1) or the shard lock, so the count can never be revived from
// zero here.
func (e *entry) retain() {
	e.refs.Add(1)
}

// releaseFast performs the lock-free part of a release. It decrements the
// count only while at least one other handle remains; when the caller may
// be the last holder it returns false and the shard-locked slow path in
// PoolStr.Release takes over.
func (e *entry) releaseFast() bool {
	for {
		n := e.refs.Load()
		if n <= 1 {
			return false
		}
		if e.refs.CompareAndSwap(n, n-1) {
			return true
		}
	}
}
