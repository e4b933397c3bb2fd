// Package ring implements arithmetic in the negacyclic polynomial ring
// Z_q[x]/(x^N + 1) on signed 64-bit coefficient vectors, along with the
// polynomial samplers consumed by the encryption layer.
package ring

import (
	"fmt"
	"math/bits"
)

// Ring is a struct storing the degree and modulus of the negacyclic
// quotient ring Z_q[x]/(x^N + 1).
type Ring struct {
	// Polynomial degree
	N int

	// Modulus q
	Modulus int64
}

// NewRing creates a new [Ring] of degree N and modulus Modulus.
// N must be a power of two and the pair must leave 128-bit head-room
// for the schoolbook convolution, i.e. Modulus^2 * N < 2^127.
// An error is returned with a nil *Ring otherwise.
func NewRing(N int, Modulus int64) (r *Ring, err error) {

	if N < 1 || N&(N-1) != 0 {
		return nil, fmt.Errorf("invalid ring degree: must be a power of two but is %d", N)
	}

	if Modulus < 2 {
		return nil, fmt.Errorf("invalid modulus: must be greater than 1 but is %d", Modulus)
	}

	// Conservative bit-length check for Modulus^2 * N < 2^127.
	if 2*bits.Len64(uint64(Modulus))+bits.Len64(uint64(N-1)) > 127 {
		return nil, fmt.Errorf("invalid modulus: Modulus^2 * N exceeds 127 bits")
	}

	return &Ring{N: N, Modulus: Modulus}, nil
}

// NewPoly allocates a new zero polynomial of the receiver's degree.
func (r Ring) NewPoly() Poly {
	return NewPoly(r.N)
}

// LogN returns the base 2 logarithm of the ring degree.
func (r Ring) LogN() int {
	return bits.Len64(uint64(r.N) - 1)
}

// coeff reads coefficient i of p, treating missing coefficients as zero
// so that operations are total on operands of any length.
func coeff(p Poly, i int) int64 {
	if i < len(p) {
		return p[i]
	}
	return 0
}
