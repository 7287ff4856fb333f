// File: pool/stats.go
// Author: momentics <momentics@gmail.com>
//
// Accounting and diagnostics: per-pool statistics snapshot, the listing of
// live strings, and the api.Debug state dump.

package pool

import (
	"github.com/momentics/strpool/api"
)

// Stats returns a point-in-time snapshot of the pool's accounting.
func (p Pool) Stats() api.PoolStats {
	in := p.in
	in.check()
	st := api.PoolStats{
		Subpools:      len(in.shards),
		TotalInterned: in.interned.Load(),
		TotalReleased: in.released.Load(),
		Hits:          in.hits.Load(),
		Misses:        in.misses.Load(),
		LiveBytes:     in.liveBytes.Load(),
		Handles:       in.handles.Load(),
		Shards:        make([]api.ShardStats, len(in.shards)),
	}
	for i := range in.shards {
		sh := &in.shards[i]
		sh.mu.Lock()
		live := sh.live()
		st.Shards[i] = api.ShardStats{
			Live:      live,
			FreeSlots: sh.free.Length(),
			Capacity:  len(sh.entries),
		}
		sh.mu.Unlock()
		st.Live += int64(live)
	}
	return st
}

// LiveStrings returns a snapshot of every currently interned string. Each
// shard is locked in turn, so the listing is per-shard consistent but not
// a global atomic view. Order is unspecified.
func (p Pool) LiveStrings() []string {
	in := p.in
	in.check()
	var out []string
	for i := range in.shards {
		sh := &in.shards[i]
		sh.mu.Lock()
		for _, e := range sh.entries {
			if e != nil {
				out = append(out, e.str)
			}
		}
		sh.mu.Unlock()
	}
	return out
}

// DumpState implements api.Debug.
func (p Pool) DumpState() map[string]any {
	st := p.Stats()
	return map[string]any{
		"subpools": st.Subpools,
		"live":     st.Live,
		"handles":  st.Handles,
		"stats":    st,
		"strings":  p.LiveStrings(),
	}
}

var _ api.Debug = Pool{}
var _ api.StatsSource = Pool{}
