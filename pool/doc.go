// Package pool
// Author: momentics <momentics@gmail.com>
//
// Concurrent string-interning pool. Repeated occurrences of equal text are
// stored once and handed out through cheap PoolStr handles. Storage is
// partitioned into power-of-two subpools (shards), each guarded by its own
// mutex; entry lifetime is reference-counted, and the shared state itself
// is freed when the last Pool or PoolStr handle is released.
// See pool.go, shard.go, str.go for implementation details.
package pool
