// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool handle and the jointly-owned inner state: the fixed shard array,
// the hash seed, and the joint handle counter covering every outstanding
// Pool and PoolStr. The inner state is disposed exactly when that counter
// reaches zero.

package pool

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/strpool/api"
	"github.com/momentics/strpool/internal/strhash"
)

// inner is the shared state behind all handles of one pool.
type inner struct {
	shards []shard
	mask   uint64
	seed   strhash.Seed

	// handles is the joint reference counter: one per live Pool handle
	// plus one per live non-empty PoolStr.
	handles atomic.Int64
	closed  atomic.Bool

	hits      atomic.Int64
	misses    atomic.Int64
	interned  atomic.Int64
	released  atomic.Int64
	liveBytes atomic.Int64
}

// Pool is a cheap handle to a shared interning pool. Copy it with Clone;
// every handle obtained from New, NewWithSubpools or Clone must be
// released exactly once. After the final release (including all PoolStr
// handles) the shard array is freed and any further use panics.
type Pool struct {
	in *inner
}

// New constructs a pool with a single subpool.
func New() Pool {
	p, err := NewWithSubpools(1)
	if err != nil {
		// unreachable: 1 is a valid subpool count
		panic(err)
	}
	return p
}

// NewWithSubpools constructs a pool partitioned into n shards. n must be a
// non-zero power of two; anything else is rejected here rather than
// producing undefined shard dispatch.
func NewWithSubpools(n int) (Pool, error) {
	if n <= 0 || n&(n-1) != 0 {
		return Pool{}, fmt.Errorf("strpool: subpool count must be a non-zero power of two, got %d: %w",
			n, api.ErrInvalidArgument)
	}
	in := &inner{
		shards: make([]shard, n),
		mask:   uint64(n - 1),
		seed:   strhash.NewSeed(),
	}
	for i := range in.shards {
		in.shards[i].free = queue.New()
	}
	in.handles.Store(1)
	return Pool{in: in}, nil
}

// check panics on use of a zero or released handle. All entry points go
// through it; a caller-held handle keeps handles >= 1, so a false positive
// is impossible.
func (in *inner) check() {
	if in == nil || in.closed.Load() {
		panic(api.NewError(api.ErrCodeReleased, "strpool: use of released pool"))
	}
}

// shardFor selects the shard for a given content hash.
func (in *inner) shardFor(hash uint64) *shard {
	return &in.shards[hash&in.mask]
}

// retainHandle accounts one more outstanding handle.
func (in *inner) retainHandle() {
	in.handles.Add(1)
}

// releaseHandle drops one handle and disposes the inner state when the
// last one is gone.
func (in *inner) releaseHandle() {
	if in.handles.Add(-1) == 0 {
		in.dispose()
	}
}

// dispose drops the shard contents so nothing stays reachable through a
// leaked reference. Runs with no outstanding handle, hence no contention;
// the locks are still taken to order dispose after any final removal.
func (in *inner) dispose() {
	in.closed.Store(true)
	for i := range in.shards {
		sh := &in.shards[i]
		sh.mu.Lock()
		sh.entries = nil
		sh.free = queue.New()
		sh.mu.Unlock()
	}
}

// Clone returns a new handle sharing the same shard array.
func (p Pool) Clone() Pool {
	p.in.check()
	p.in.retainHandle()
	return p
}

// Release gives up this handle. The shard array survives as long as any
// other Pool or PoolStr handle is outstanding.
func (p Pool) Release() {
	p.in.check()
	p.in.releaseHandle()
}

// Intern returns a handle to the pooled copy of s, deduplicating equal
// content. The empty string never touches a shard and maps to the shared
// sentinel. Intern always succeeds; it may allocate on first sight of s.
func (p Pool) Intern(s string) PoolStr {
	in := p.in
	in.check()
	if len(s) == 0 {
		return PoolStr{}
	}
	h := strhash.Sum(in.seed, s)
	sh := in.shardFor(h)

	sh.mu.Lock()
	if e := sh.lookup(h, s); e != nil {
		e.retain()
		sh.mu.Unlock()
		in.hits.Add(1)
		in.retainHandle()
		return PoolStr{in: in, ent: e}
	}
	// Copy the content so the pool never pins a larger backing string.
	e := &entry{str: strings.Clone(s), hash: h}
	e.refs.Store(1)
	sh.insert(e)
	sh.mu.Unlock()

	in.misses.Add(1)
	in.interned.Add(1)
	in.liveBytes.Add(int64(len(s)))
	in.retainHandle()
	return PoolStr{in: in, ent: e}
}

// Find locates an already-interned string without inserting. The boolean
// reports whether a handle was produced; the empty string always yields
// the sentinel.
func (p Pool) Find(s string) (PoolStr, bool) {
	in := p.in
	in.check()
	if len(s) == 0 {
		return PoolStr{}, true
	}
	h := strhash.Sum(in.seed, s)
	sh := in.shardFor(h)

	sh.mu.Lock()
	e := sh.lookup(h, s)
	if e == nil {
		sh.mu.Unlock()
		return PoolStr{}, false
	}
	e.retain()
	sh.mu.Unlock()

	in.hits.Add(1)
	in.retainHandle()
	return PoolStr{in: in, ent: e}, true
}

// Subpools returns the fixed shard count.
func (p Pool) Subpools() int {
	p.in.check()
	return len(p.in.shards)
}
