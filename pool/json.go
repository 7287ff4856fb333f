// File: pool/json.go
// Author: momentics <momentics@gmail.com>
//
// Codec support: PoolStr serializes as a plain string and deserializes by
// interning into the codec pool. The codec pool defaults to the
// process-wide pool and can be redirected with SetCodecPool, mirroring the
// swap semantics of SetDefault.

package pool

import (
	"encoding/json"
	"sync/atomic"
)

var codecPool atomic.Pointer[inner]

// SetCodecPool directs PoolStr decoding at p instead of the default pool.
// The pool must stay alive (hold a handle) for as long as decoding may
// run; the package itself takes no handle.
func SetCodecPool(p Pool) {
	p.in.check()
	codecPool.Store(p.in)
}

func codecIntern(s string) PoolStr {
	if in := codecPool.Load(); in != nil {
		return Pool{in: in}.Intern(s)
	}
	return Default().Intern(s)
}

// MarshalJSON encodes the content as a JSON string.
func (s PoolStr) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON interns the decoded string into the codec pool. The
// resulting handle must be released like any other; a previous value in
// *s is overwritten without release, as decoders target zero values.
func (s *PoolStr) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = codecIntern(raw)
	return nil
}

// MarshalText encodes the content verbatim.
func (s PoolStr) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText interns the text into the codec pool.
func (s *PoolStr) UnmarshalText(b []byte) error {
	*s = codecIntern(string(b))
	return nil
}
