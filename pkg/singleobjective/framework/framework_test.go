package framework

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsClamp(t *testing.T) {
	b := Bounds{L: -5, H: 5}

	assert.Equal(t, -5.0, b.Clamp(-7.3))
	assert.Equal(t, 5.0, b.Clamp(12.0))
	assert.Equal(t, 1.5, b.Clamp(1.5))
	assert.Equal(t, 10.0, b.Span())
}

func TestIndividualEvaluateCaches(t *testing.T) {
	calls := 0
	objective := func(x []float64) float64 {
		calls++
		return x[0] * x[0]
	}

	ind := NewIndividual([]float64{3})

	require.True(t, ind.Evaluate(objective))
	assert.Equal(t, 9.0, ind.Fitness)
	assert.Equal(t, 1, calls)

	// Second call hits the cache.
	require.False(t, ind.Evaluate(objective))
	assert.Equal(t, 1, calls)

	ind.Vector[0] = 4
	ind.Invalidate()
	require.True(t, ind.Evaluate(objective))
	assert.Equal(t, 16.0, ind.Fitness)
	assert.Equal(t, 2, calls)
}

func TestIndividualEvaluatePenalizesNonFinite(t *testing.T) {
	for name, value := range map[string]float64{
		"nan":    math.NaN(),
		"posInf": math.Inf(1),
		"negInf": math.Inf(-1),
	} {
		t.Run(name, func(t *testing.T) {
			ind := NewIndividual([]float64{0})
			ind.Evaluate(func([]float64) float64 { return value })

			assert.Equal(t, WorstFitness, ind.Fitness)
			assert.True(t, ind.Anomalous)
			assert.True(t, ind.Evaluated)
		})
	}
}

func TestIndividualCloneIsDeep(t *testing.T) {
	ind := NewIndividual([]float64{1, 2})
	ind.Evaluate(func([]float64) float64 { return 5 })

	clone := ind.Clone()
	clone.Vector[0] = 99

	assert.Equal(t, 1.0, ind.Vector[0])
	assert.Equal(t, ind.Fitness, clone.Fitness)
	assert.True(t, clone.Evaluated)
}

func TestPopulationStats(t *testing.T) {
	pop := Population{
		{Fitness: 4, Evaluated: true},
		{Fitness: 1, Evaluated: true},
		{Fitness: 7, Evaluated: true},
	}

	assert.Equal(t, 1, pop.Best())
	assert.Equal(t, 2, pop.Worst())

	best, mean, std, worst := pop.Stats()
	assert.Equal(t, 1.0, best)
	assert.Equal(t, 7.0, worst)
	assert.InDelta(t, 4.0, mean, 1e-12)
	assert.InDelta(t, 3.0, std, 1e-12)
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &ConfigurationError{Field: "populationSize", Reason: "must be >= 2, got 1"}
	assert.Equal(t, "invalid configuration: populationSize: must be >= 2, got 1", err.Error())
}
