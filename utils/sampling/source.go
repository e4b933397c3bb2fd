// Package sampling provides a seedable source of cryptographically secure
// randomness based on a keyed blake2b XOF.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// SeedSize is the size of a [sampling.Seed] in bytes.
const SeedSize = 32

// Seed is a 256-bit key for a [sampling.Source].
type Seed [SeedSize]byte

// NewSeed samples a fresh seed from crypto/rand.
func NewSeed() (seed Seed) {
	if _, err := rand.Read(seed[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("crypto/rand.Read: %w", err))
	}
	return
}

// Source is a deterministic stream of pseudo-random bytes expanded from a
// [sampling.Seed] with a keyed blake2b XOF. It implements [math/rand/v2.Source],
// so it can be consumed through rand.New to derive shaped distributions.
//
// A Source is not thread safe: two concurrent samplers must each hold
// their own instance.
type Source struct {
	seed Seed
	xof  blake2b.XOF
	buff [512]byte
	ptr  int
}

// NewSource instantiates a new [sampling.Source] from a [sampling.Seed].
// Two sources created from the same seed produce identical streams.
func NewSource(seed Seed) (s *Source) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed[:])
	// Sanity check, this error should not happen (key size is valid).
	if err != nil {
		panic(fmt.Errorf("blake2b.NewXOF: %w", err))
	}
	s = &Source{seed: seed, xof: xof}
	s.ptr = len(s.buff)
	return
}

// GetSeed returns the seed of the receiver.
func (s Source) GetSeed() Seed {
	return s.seed
}

// Uint64 returns the next 8 bytes of the stream as an uint64.
// It implements [math/rand/v2.Source].
func (s *Source) Uint64() uint64 {
	if s.ptr == len(s.buff) {
		if _, err := io.ReadFull(s.xof, s.buff[:]); err != nil {
			// Sanity check, the XOF output length is never exceeded in practice.
			panic(fmt.Errorf("blake2b XOF: %w", err))
		}
		s.ptr = 0
	}
	v := binary.LittleEndian.Uint64(s.buff[s.ptr:])
	s.ptr += 8
	return v
}

// Branch derives a new independent [sampling.Source] keyed with the next
// [SeedSize] bytes of the receiver's stream.
func (s *Source) Branch() *Source {
	var seed Seed
	for i := 0; i < SeedSize; i += 8 {
		binary.LittleEndian.PutUint64(seed[i:], s.Uint64())
	}
	return NewSource(seed)
}
