package benchmarks

import (
	"github.com/evoopt/evoopt/pkg/singleobjective/framework"
)

const SphereName = "Sphere"

// Sphere is the simplest continuous benchmark, f(x) = sum(x_i^2),
// with the global minimum 0 at the origin. Useful as a smoke test:
// any working optimizer converges on it quickly.
type Sphere struct {
	numVars int
	bounds  []framework.Bounds
}

func NewSphere(numVars int) *Sphere {
	return NewSphereBounded(numVars, uniformBounds(numVars, -5.12, 5.12))
}

func NewSphereBounded(numVars int, bounds []framework.Bounds) *Sphere {
	return &Sphere{
		numVars: numVars,
		bounds:  bounds,
	}
}

func (p *Sphere) Name() string {
	return SphereName
}

func (p *Sphere) Objective() framework.ObjectiveFunc {
	return p.f
}

func (p *Sphere) f(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func (p *Sphere) Bounds() []framework.Bounds {
	return p.bounds
}

func (p *Sphere) Optimum() ([]float64, float64, bool) {
	return make([]float64, p.numVars), 0, true
}
