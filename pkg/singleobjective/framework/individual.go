package framework

import "math"

// WorstFitness is the penalty assigned when the objective produces a
// non-finite value. The run keeps going; the individual simply loses
// every comparison.
const WorstFitness = math.MaxFloat64

// Individual is a candidate solution with a cached fitness value.
type Individual struct {
	Vector  []float64 `json:"vector"`
	Fitness float64   `json:"fitness"`

	// Evaluated reports whether Fitness matches the current Vector.
	Evaluated bool `json:"-"`

	// Anomalous marks individuals whose objective value was non-finite
	// and therefore penalized with WorstFitness.
	Anomalous bool `json:"anomalous,omitempty"`
}

// NewIndividual wraps a decision vector in an unevaluated Individual.
func NewIndividual(vector []float64) Individual {
	return Individual{Vector: vector}
}

// Clone returns a deep copy, fitness cache included.
func (ind Individual) Clone() Individual {
	vec := make([]float64, len(ind.Vector))
	copy(vec, ind.Vector)
	return Individual{
		Vector:    vec,
		Fitness:   ind.Fitness,
		Evaluated: ind.Evaluated,
		Anomalous: ind.Anomalous,
	}
}

// Invalidate drops the cached fitness. Call it whenever the vector changes.
func (ind *Individual) Invalidate() {
	ind.Evaluated = false
	ind.Anomalous = false
}

// Evaluate computes and caches the fitness unless the cache is still valid.
// Non-finite objective values are replaced by WorstFitness and flagged.
// It reports whether the objective function was actually invoked.
func (ind *Individual) Evaluate(f ObjectiveFunc) bool {
	if ind.Evaluated {
		return false
	}

	v := f(ind.Vector)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		ind.Fitness = WorstFitness
		ind.Anomalous = true
	} else {
		ind.Fitness = v
	}
	ind.Evaluated = true

	return true
}
