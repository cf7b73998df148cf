// Package benchmarks provides single-objective test functions implementing
// the framework.Problem contract. They are used to validate the optimizer
// and to compare it against reference implementations.
package benchmarks

import "github.com/evoopt/evoopt/pkg/singleobjective/framework"

// uniformBounds builds an n-dimensional search box with the same interval
// in every dimension.
func uniformBounds(n int, l, h float64) []framework.Bounds {
	b := make([]framework.Bounds, n)
	for i := range b {
		b[i] = framework.Bounds{L: l, H: h}
	}
	return b
}
