package ring

import (
	"fmt"
	"math/rand/v2"

	"github.com/Pro7ech/hpre/utils/sampling"
)

// UniformSampler samples polynomials with coefficients uniform in the
// half-open interval [Low, High).
type UniformSampler struct {
	*sampling.Source
	Low  int64
	High int64
}

// NewUniformSampler creates a new instance of [UniformSampler] from a
// [sampling.Source] and interval bounds. The interval must be non-empty.
func NewUniformSampler(source *sampling.Source, low, high int64) (u *UniformSampler) {
	if low >= high {
		// Sanity check: a degenerate interval is a programming error.
		panic(fmt.Errorf("invalid interval: [%d, %d) is empty", low, high))
	}
	return &UniformSampler{Source: source, Low: low, High: high}
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (u UniformSampler) GetSource() *sampling.Source {
	return u.Source
}

// WithSource returns an instance of the underlying sampler with
// a new [sampling.Source].
func (u UniformSampler) WithSource(source *sampling.Source) Sampler {
	return &UniformSampler{Source: source, Low: u.Low, High: u.High}
}

// Read samples uniform coefficients on pol.
func (u *UniformSampler) Read(pol Poly) {
	r := rand.New(u.Source)
	span := uint64(u.High - u.Low)
	for i := range pol {
		pol[i] = u.Low + int64(r.Uint64N(span))
	}
}

// ReadNew samples a new uniform polynomial of degree N.
func (u *UniformSampler) ReadNew(N int) (pol Poly) {
	pol = NewPoly(N)
	u.Read(pol)
	return
}

// ReadAndAdd samples uniform coefficients and adds them on pol.
func (u *UniformSampler) ReadAndAdd(pol Poly) {
	r := rand.New(u.Source)
	span := uint64(u.High - u.Low)
	for i := range pol {
		pol[i] += u.Low + int64(r.Uint64N(span))
	}
}
