// File: pool/default.go
// Author: momentics <momentics@gmail.com>

package pool

import "sync"

var (
	defaultMu   sync.Mutex
	defaultPool Pool
	defaultSet  bool
)

// Default returns the process-wide pool, creating it on first use, so all
// components dedupe into the same storage instead of fragmenting it. The
// returned handle is owned by the package; callers must not release it.
func Default() Pool {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if !defaultSet {
		defaultPool = New()
		defaultSet = true
	}
	return defaultPool
}

// SetDefault swaps the process-wide pool. Ownership of p's handle passes
// to the package; the previous default handle, if any, is released.
// Strings interned through the old default stay valid for as long as
// their own handles are held.
func SetDefault(p Pool) {
	defaultMu.Lock()
	old, had := defaultPool, defaultSet
	defaultPool, defaultSet = p, true
	defaultMu.Unlock()
	if had {
		old.Release()
	}
}
