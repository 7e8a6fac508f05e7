// Package randutil derives reproducible random sources from integer seeds.
package randutil

import (
	"encoding/binary"
	rand "math/rand/v2"
)

// New returns a generator whose stream depends only on seed. The ChaCha8
// key is expanded from seed by a SplitMix64 sequence, so adjacent seeds
// share no key material.
func New(seed int64) *rand.Rand {
	sm := splitMix(uint64(seed))
	var key [32]byte
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], sm.next())
	}
	return rand.New(rand.NewChaCha8(key))
}

// GameSeed derives the seed of the n-th game in a batch started from base.
// A batch can be replayed one game at a time from (base, n), and distinct n
// never collide.
func GameSeed(base int64, n int) int64 {
	sm := splitMix(uint64(base) + uint64(n)*gamma)
	return int64(sm.next())
}

const gamma = 0x9e3779b97f4a7c15

// splitMix is a SplitMix64 generator. Its output function is a bijection of
// the state, which advances by an odd constant.
type splitMix uint64

func (s *splitMix) next() uint64 {
	*s += gamma
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
