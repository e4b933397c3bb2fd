package ring

import (
	"fmt"

	"github.com/Pro7ech/hpre/utils/sampling"
)

// Sampler is an interface for random polynomial samplers.
// Samplers return raw signed coefficients; canonicalisation into [0, q)
// is the ring's job.
type Sampler interface {
	GetSource() *sampling.Source
	Read(pol Poly)
	ReadNew(N int) (pol Poly)
	ReadAndAdd(pol Poly)
	WithSource(source *sampling.Source) Sampler
}

// NewSampler instantiates a new [Sampler] interface from the provided
// [sampling.Source] and [DistributionParameters].
func NewSampler(source *sampling.Source, X DistributionParameters) (Sampler, error) {
	switch X := X.(type) {
	case *DiscreteGaussian:
		return NewGaussianSampler(source, *X), nil
	case *Binary:
		return NewBinarySampler(source), nil
	case *Ternary:
		return NewTernarySampler(source), nil
	case *Uniform:
		return NewUniformSampler(source, X.Low, X.High), nil
	default:
		return nil, fmt.Errorf("invalid distribution: want *ring.DiscreteGaussian, *ring.Binary, *ring.Ternary or *ring.Uniform but have %T", X)
	}
}
