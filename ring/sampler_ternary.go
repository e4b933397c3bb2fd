package ring

import (
	"math/rand/v2"

	"github.com/Pro7ech/hpre/utils/sampling"
)

// TernarySampler samples polynomials with coefficients uniform in {-1, 0, 1}.
type TernarySampler struct {
	*sampling.Source
}

// NewTernarySampler creates a new instance of [TernarySampler] from a
// [sampling.Source].
func NewTernarySampler(source *sampling.Source) *TernarySampler {
	return &TernarySampler{Source: source}
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (t TernarySampler) GetSource() *sampling.Source {
	return t.Source
}

// WithSource returns an instance of the underlying sampler with
// a new [sampling.Source].
func (t TernarySampler) WithSource(source *sampling.Source) Sampler {
	return &TernarySampler{Source: source}
}

// Read samples ternary coefficients on pol.
func (t *TernarySampler) Read(pol Poly) {
	r := rand.New(t.Source)
	for i := range pol {
		pol[i] = int64(r.Uint64N(3)) - 1
	}
}

// ReadNew samples a new ternary polynomial of degree N.
func (t *TernarySampler) ReadNew(N int) (pol Poly) {
	pol = NewPoly(N)
	t.Read(pol)
	return
}

// ReadAndAdd samples ternary coefficients and adds them on pol.
func (t *TernarySampler) ReadAndAdd(pol Poly) {
	r := rand.New(t.Source)
	for i := range pol {
		pol[i] += int64(r.Uint64N(3)) - 1
	}
}
