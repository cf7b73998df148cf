package benchmarks

import (
	"math"

	"github.com/evoopt/evoopt/pkg/singleobjective/framework"
)

const RastriginName = "Rastrigin"

// Rastrigin is a highly multimodal benchmark,
// f(x) = 10n + sum(x_i^2 - 10cos(2*pi*x_i)), minimum 0 at the origin.
// Its regular grid of local minima punishes optimizers that exploit
// too early.
type Rastrigin struct {
	numVars int
	bounds  []framework.Bounds
}

func NewRastrigin(numVars int) *Rastrigin {
	return NewRastriginBounded(numVars, uniformBounds(numVars, -5.12, 5.12))
}

func NewRastriginBounded(numVars int, bounds []framework.Bounds) *Rastrigin {
	return &Rastrigin{
		numVars: numVars,
		bounds:  bounds,
	}
}

func (p *Rastrigin) Name() string {
	return RastriginName
}

func (p *Rastrigin) Objective() framework.ObjectiveFunc {
	return p.f
}

func (p *Rastrigin) f(x []float64) float64 {
	sum := 10.0 * float64(len(x))
	for _, v := range x {
		sum += v*v - 10.0*math.Cos(2.0*math.Pi*v)
	}
	return sum
}

func (p *Rastrigin) Bounds() []framework.Bounds {
	return p.bounds
}

func (p *Rastrigin) Optimum() ([]float64, float64, bool) {
	return make([]float64, p.numVars), 0, true
}
