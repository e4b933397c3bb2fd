package ring

import (
	"math"
	"math/rand/v2"

	"github.com/Pro7ech/hpre/utils/sampling"
)

// GaussianSampler samples polynomials with discrete Gaussian coefficients,
// obtained by rounding a continuous normal sample of standard deviation
// Xe.Sigma. There is no tail rejection beyond the optional Xe.Bound; callers
// rely on sigma being far smaller than the modulus.
type GaussianSampler struct {
	*sampling.Source
	Xe DiscreteGaussian
}

// NewGaussianSampler creates a new instance of [GaussianSampler] from a
// [sampling.Source] and a [DiscreteGaussian] distribution parameter.
func NewGaussianSampler(source *sampling.Source, Xe DiscreteGaussian) (g *GaussianSampler) {
	return &GaussianSampler{Source: source, Xe: Xe}
}

// GetSource returns the underlying [sampling.Source] used by the sampler.
func (g GaussianSampler) GetSource() *sampling.Source {
	return g.Source
}

// WithSource returns an instance of the underlying sampler with
// a new [sampling.Source].
func (g GaussianSampler) WithSource(source *sampling.Source) Sampler {
	return &GaussianSampler{Source: source, Xe: g.Xe}
}

// Read samples discrete Gaussian coefficients on pol.
func (g *GaussianSampler) Read(pol Poly) {
	g.read(pol, func(a, b int64) int64 {
		return b
	})
}

// ReadNew samples a new discrete Gaussian polynomial of degree N.
func (g *GaussianSampler) ReadNew(N int) (pol Poly) {
	pol = NewPoly(N)
	g.Read(pol)
	return
}

// ReadAndAdd samples discrete Gaussian coefficients and adds them on pol.
func (g *GaussianSampler) ReadAndAdd(pol Poly) {
	g.read(pol, func(a, b int64) int64 {
		return a + b
	})
}

func (g *GaussianSampler) read(pol Poly, f func(a, b int64) int64) {

	r := rand.New(g.Source)

	sigma := g.Xe.Sigma
	bound := g.Xe.Bound

	var norm float64
	for i := range pol {
		for {
			norm = r.NormFloat64() * sigma
			if bound == 0 || math.Abs(norm) <= bound {
				break
			}
		}
		pol[i] = f(pol[i], int64(math.Round(norm)))
	}
}
