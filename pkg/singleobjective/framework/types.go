package framework

import "math"

// ObjectiveFunc maps a decision vector to a scalar fitness value.
// Lower is better (minimization).
type ObjectiveFunc func([]float64) float64

// Bounds delimits the search space for a single decision variable.
type Bounds struct {
	L float64
	H float64
}

// Clamp forces v back into the interval.
func (b Bounds) Clamp(v float64) float64 {
	return math.Max(b.L, math.Min(b.H, v))
}

// Span returns the width of the interval.
func (b Bounds) Span() float64 {
	return b.H - b.L
}

// Problem describes the contract a single-objective problem needs to implement.
type Problem interface {
	Name() string

	Objective() ObjectiveFunc
	Bounds() []Bounds

	// Optimum is optional since not every problem has a known global minimum.
	// When there isn't one, return (nil, 0, false).
	Optimum() ([]float64, float64, bool)
}
