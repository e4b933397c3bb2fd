// Package glwe implements a GLWE (generalised learning-with-errors)
// encryption scheme over the negacyclic ring Z_q[x]/(x^n + 1): key
// generation, public- and secret-key encryption, decryption, a base-p
// plaintext codec, and the homomorphic operations of the scheme (ciphertext
// addition, cleartext-scalar multiplication and plaintext-polynomial
// multiplication, including a digit-decomposed variant).
//
// With n = 1 the scheme degenerates to plain LWE over vectors of rank k;
// with k = 1 and n > 1 it is RLWE.
package glwe

import (
	"fmt"
	"math/bits"

	"github.com/Pro7ech/hpre/ring"
	"github.com/google/go-cmp/cmp"
)

// DefaultSigma is the standard deviation of the error distribution when the
// [ParametersLiteral] leaves it unset.
const DefaultSigma = 3.2

// ParametersLiteral is a literal representation of GLWE parameters. It has
// public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The [NewParametersFromLiteral] function
// validates it into the immutable [Parameters] type.
type ParametersLiteral struct {
	// Ciphertext modulus
	Q int64 `json:"q"`
	// Plaintext modulus
	P int64 `json:"p"`
	// Ring degree, a power of two
	N int `json:"n"`
	// Module rank
	K int `json:"k"`
	// Standard deviation of the error distribution.
	// Defaults to [DefaultSigma] if left unset.
	Sigma float64 `json:"sigma,omitempty"`
}

// Parameters represents a validated set of GLWE parameters. Its fields are
// private and immutable.
type Parameters struct {
	q     int64
	p     int64
	n     int
	k     int
	sigma float64
	ringQ *ring.Ring
}

// NewParametersFromLiteral instantiates a set of GLWE parameters from a
// [ParametersLiteral] specification. It returns the empty Parameters{} and
// an error wrapping [ErrInvalidParameters] if the specification is invalid.
func NewParametersFromLiteral(lit ParametersLiteral) (params Parameters, err error) {

	if lit.P < 2 {
		return Parameters{}, fmt.Errorf("%w: plaintext modulus must be at least 2 but is %d", ErrInvalidParameters, lit.P)
	}

	if lit.Q <= lit.P {
		return Parameters{}, fmt.Errorf("%w: ciphertext modulus %d must be greater than plaintext modulus %d", ErrInvalidParameters, lit.Q, lit.P)
	}

	if lit.N < 1 || lit.N&(lit.N-1) != 0 {
		return Parameters{}, fmt.Errorf("%w: ring degree must be a power of two but is %d", ErrInvalidParameters, lit.N)
	}

	if lit.K < 1 {
		return Parameters{}, fmt.Errorf("%w: rank must be at least 1 but is %d", ErrInvalidParameters, lit.K)
	}

	if lit.Sigma < 0 {
		return Parameters{}, fmt.Errorf("%w: sigma must be non-negative but is %f", ErrInvalidParameters, lit.Sigma)
	}

	sigma := lit.Sigma
	if sigma == 0 {
		sigma = DefaultSigma
	}

	ringQ, err := ring.NewRing(lit.N, lit.Q)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	return Parameters{
		q:     lit.Q,
		p:     lit.P,
		n:     lit.N,
		k:     lit.K,
		sigma: sigma,
		ringQ: ringQ,
	}, nil
}

// NewLWE instantiates LWE parameters (ring degree 1) of rank k with
// the default sigma.
func NewLWE(q, p int64, k int) (Parameters, error) {
	return NewParametersFromLiteral(ParametersLiteral{Q: q, P: p, N: 1, K: k})
}

// NewRLWE instantiates RLWE parameters (rank 1) of ring degree n with
// the default sigma.
func NewRLWE(q, p int64, n int) (Parameters, error) {
	return NewParametersFromLiteral(ParametersLiteral{Q: q, P: p, N: n, K: 1})
}

// ParametersLiteral returns the [ParametersLiteral] of the receiver.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{Q: p.q, P: p.p, N: p.n, K: p.k, Sigma: p.sigma}
}

// Q returns the ciphertext modulus.
func (p Parameters) Q() int64 {
	return p.q
}

// P returns the plaintext modulus.
func (p Parameters) P() int64 {
	return p.p
}

// N returns the ring degree.
func (p Parameters) N() int {
	return p.n
}

// LogN returns the base 2 logarithm of the ring degree.
func (p Parameters) LogN() int {
	return bits.Len64(uint64(p.n) - 1)
}

// K returns the module rank.
func (p Parameters) K() int {
	return p.k
}

// Sigma returns the standard deviation of the error distribution.
func (p Parameters) Sigma() float64 {
	return p.sigma
}

// Delta returns the plaintext scaling factor floor(q/p).
func (p Parameters) Delta() int64 {
	return p.q / p.p
}

// NoiseBound returns Delta/2, the strict bound on the per-coefficient
// noise below which decryption is correct.
func (p Parameters) NoiseBound() int64 {
	return p.Delta() >> 1
}

// RingQ returns the underlying [ring.Ring].
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}

// Xs returns the secret distribution.
func (p Parameters) Xs() ring.DistributionParameters {
	return &ring.Binary{}
}

// Xe returns the error distribution.
func (p Parameters) Xe() ring.DistributionParameters {
	return &ring.DiscreteGaussian{Sigma: p.sigma}
}

// WithRank returns a copy of the receiver with rank k.
func (p Parameters) WithRank(k int) (Parameters, error) {
	lit := p.ParametersLiteral()
	lit.K = k
	return NewParametersFromLiteral(lit)
}

// WithSigma returns a copy of the receiver with standard deviation sigma.
func (p Parameters) WithSigma(sigma float64) (Parameters, error) {
	lit := p.ParametersLiteral()
	lit.Sigma = sigma
	return NewParametersFromLiteral(lit)
}

// Equal performs a deep equal.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

func (p Parameters) String() string {
	return fmt.Sprintf("Q=%d/P=%d/N=%d/K=%d/Sigma=%.2f", p.q, p.p, p.n, p.k, p.sigma)
}
