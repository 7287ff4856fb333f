// File: internal/strhash/strhash.go
// Package strhash provides seeded content hashing for shard dispatch.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Each pool carries its own random seed so shard distribution cannot be
// forced from outside by crafting colliding inputs.

package strhash

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Seed perturbs content hashes of one pool.
type Seed [8]byte

// NewSeed returns a fresh random seed. Falls back to a fixed constant if
// the system entropy source is unavailable.
func NewSeed() Seed {
	var s Seed
	if _, err := rand.Read(s[:]); err != nil {
		binary.LittleEndian.PutUint64(s[:], 0x9e3779b97f4a7c15)
	}
	return s
}

// Sum returns the seeded 64-bit content hash of s.
func Sum(seed Seed, s string) uint64 {
	var d xxhash.Digest
	d.Reset()
	_, _ = d.Write(seed[:])
	_, _ = d.WriteString(s)
	return d.Sum64()
}

// Sum64 returns the unseeded content hash of s. Used for handle hashing,
// where values from unrelated pools must agree on equal content.
func Sum64(s string) uint64 {
	return xxhash.Sum64String(s)
}
