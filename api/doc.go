// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of the strpool library: error values and codes,
// statistics value types, and the runtime introspection interface.
// Implementations live in the pool and control packages.
package api
