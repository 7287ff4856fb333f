// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for system-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/strpool/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Collect publishes a pool's current statistics into the registry under
// the given name prefix.
func Collect(mr *MetricsRegistry, name string, src api.StatsSource) {
	st := src.Stats()
	mr.Set(name+".subpools", st.Subpools)
	mr.Set(name+".live", st.Live)
	mr.Set(name+".interned_total", st.TotalInterned)
	mr.Set(name+".released_total", st.TotalReleased)
	mr.Set(name+".hits", st.Hits)
	mr.Set(name+".misses", st.Misses)
	mr.Set(name+".live_bytes", st.LiveBytes)
	mr.Set(name+".handles", st.Handles)
}
