// Package control
// Author: momentics <momentics@gmail.com>
//
// Observability adapters for interning pools: a thread-safe metrics
// snapshot registry and a debug-probe reflector for internal inspection.
package control
