// File: api/stats.go
// Author: momentics <momentics@gmail.com>
//
// Statistics value types exposed by interning pools for observability.

package api

// PoolStats aggregates interning/release accounting for one pool.
type PoolStats struct {
	// Subpools is the fixed shard count the pool was created with.
	Subpools int

	// Live is the number of distinct strings currently interned.
	Live int64

	// TotalInterned counts entries ever created (misses on intern).
	TotalInterned int64

	// TotalReleased counts entries whose last handle has been released.
	TotalReleased int64

	// Hits counts intern/find calls resolved against an existing entry.
	Hits int64

	// Misses counts intern calls that had to allocate a new entry.
	Misses int64

	// LiveBytes is the summed content length of all live entries.
	LiveBytes int64

	// Handles is the joint count of outstanding Pool and PoolStr handles.
	Handles int64

	// Shards holds the per-shard breakdown, indexed by shard.
	Shards []ShardStats
}

// ShardStats describes one shard's slot usage.
type ShardStats struct {
	Live      int // occupied slots
	FreeSlots int // recycled slots awaiting reuse
	Capacity  int // total slots ever grown to
}

// StatsSource is implemented by anything that can report PoolStats.
type StatsSource interface {
	Stats() PoolStats
}
