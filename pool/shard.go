// File: pool/shard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One lock-protected partition of the pool. Entries live in a slot slice
// with nil holes; slots freed by releases are recycled FIFO before the
// slice grows. Lookup is a linear scan comparing the cached hash first and
// full content second, so colliding hashes never produce a false hit.

package pool

import (
	"sync"

	"github.com/eapache/queue"
	"golang.org/x/sys/cpu"
)

type shard struct {
	mu      sync.Mutex
	entries []*entry
	free    *queue.Queue // of int slot indices
	_       cpu.CacheLinePad
}

// lookup returns the live entry holding s, or nil. Caller holds mu.
func (sh *shard) lookup(hash uint64, s string) *entry {
	for _, e := range sh.entries {
		if e == nil || e.hash != hash {
			continue
		}
		if e.str == s {
			return e
		}
	}
	return nil
}

// insert places e into a recycled slot, growing the slice only when no
// free slot remains. Caller holds mu.
func (sh *shard) insert(e *entry) {
	if sh.free.Length() > 0 {
		e.slot = sh.free.Remove().(int)
		sh.entries[e.slot] = e
		return
	}
	e.slot = len(sh.entries)
	sh.entries = append(sh.entries, e)
}

// remove clears e's slot and queues it for reuse. Caller holds mu and has
// observed e.refs == 0 under it.
func (sh *shard) remove(e *entry) {
	sh.entries[e.slot] = nil
	sh.free.Add(e.slot)
}

// live counts occupied slots. Caller holds mu.
func (sh *shard) live() int {
	n := 0
	for _, e := range sh.entries {
		if e != nil {
			n++
		}
	}
	return n
}
