package ring

import (
	"math/rand/v2"

	"github.com/Pro7ech/hpre/utils/sampling"
)

// BinarySampler samples polynomials with coefficients uniform in {0, 1}.
type BinarySampler struct {
	*sampling.Source
}

// NewBinarySampler creates a new instance of [BinarySampler] from a
// [sampling.Source].
func NewBinarySampler(source *sampling.Source) *BinarySampler {
	return &BinarySampler{Source: source}
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (b BinarySampler) GetSource() *sampling.Source {
	return b.Source
}

// WithSource returns an instance of the underlying sampler with
// a new [sampling.Source].
func (b BinarySampler) WithSource(source *sampling.Source) Sampler {
	return &BinarySampler{Source: source}
}

// Read samples binary coefficients on pol.
func (b *BinarySampler) Read(pol Poly) {
	r := rand.New(b.Source)
	for i := range pol {
		pol[i] = int64(r.Uint64() & 1)
	}
}

// ReadNew samples a new binary polynomial of degree N.
func (b *BinarySampler) ReadNew(N int) (pol Poly) {
	pol = NewPoly(N)
	b.Read(pol)
	return
}

// ReadAndAdd samples binary coefficients and adds them on pol.
func (b *BinarySampler) ReadAndAdd(pol Poly) {
	r := rand.New(b.Source)
	for i := range pol {
		pol[i] += int64(r.Uint64() & 1)
	}
}
