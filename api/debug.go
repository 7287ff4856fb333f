// Package api
// Author: momentics
//
// Live debug support for production workloads.

package api

// Debug exposes runtime introspection for diagnostics.
type Debug interface {
	// DumpState emits a snapshot of internal state, including the
	// human-readable listing of currently live strings.
	DumpState() map[string]any
}
