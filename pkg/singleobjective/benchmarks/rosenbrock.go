package benchmarks

import (
	"github.com/evoopt/evoopt/pkg/singleobjective/framework"
)

const (
	RosenbrockName = "Rosenbrock"

	// Standard Rosenbrock constants.
	rosenbrockA = 1.0
	rosenbrockB = 100.0
)

// Rosenbrock is the classic banana-valley benchmark. In two dimensions
// f(x,y) = (a-x)^2 + b(y-x^2)^2 with the global minimum 0 at (1,1); the
// higher-dimensional form chains the same term over consecutive variables.
type Rosenbrock struct {
	numVars int
	bounds  []framework.Bounds
}

// NewRosenbrock creates the problem with the conventional [-5,5] bounds
// in every dimension.
func NewRosenbrock(numVars int) *Rosenbrock {
	return NewRosenbrockBounded(numVars, uniformBounds(numVars, -5, 5))
}

// NewRosenbrockBounded creates the problem over a custom search box.
func NewRosenbrockBounded(numVars int, bounds []framework.Bounds) *Rosenbrock {
	return &Rosenbrock{
		numVars: numVars,
		bounds:  bounds,
	}
}

func (p *Rosenbrock) Name() string {
	return RosenbrockName
}

func (p *Rosenbrock) Objective() framework.ObjectiveFunc {
	return p.f
}

func (p *Rosenbrock) f(x []float64) float64 {
	sum := 0.0
	for i := 0; i < len(x)-1; i++ {
		d1 := rosenbrockA - x[i]
		d2 := x[i+1] - x[i]*x[i]
		sum += d1*d1 + rosenbrockB*d2*d2
	}
	return sum
}

func (p *Rosenbrock) Bounds() []framework.Bounds {
	return p.bounds
}

// Optimum is the all-ones vector with value 0.
func (p *Rosenbrock) Optimum() ([]float64, float64, bool) {
	opt := make([]float64, p.numVars)
	for i := range opt {
		opt[i] = 1.0
	}
	return opt, 0, true
}
