package algorithms

import (
	"github.com/evoopt/evoopt/pkg/singleobjective/framework"
)

// Crossover performs arithmetic blend crossover. With probability
// CrossoverProbability each gene pair is mixed with a fresh uniform weight,
// producing two complementary children; otherwise the children are plain
// copies of the parents.
func (g *GeneticAlgorithm) Crossover(parent1, parent2 framework.Individual) (framework.Individual, framework.Individual) {
	child1 := parent1.Clone()
	child2 := parent2.Clone()

	if g.rng.Float64() < g.Config.CrossoverProbability {
		for i := range child1.Vector {
			alpha := g.rng.Float64()

			v1 := alpha*parent1.Vector[i] + (1-alpha)*parent2.Vector[i]
			v2 := (1-alpha)*parent1.Vector[i] + alpha*parent2.Vector[i]

			// Bound checking
			child1.Vector[i] = g.bounds[i].Clamp(v1)
			child2.Vector[i] = g.bounds[i].Clamp(v2)
		}
		child1.Invalidate()
		child2.Invalidate()
	}

	return child1, child2
}

// Mutate perturbs genes in place with per-gene probability
// MutationProbability. Gaussian mutation adds noise scaled by MutationSigma
// and the variable's bound span; uniform mutation resamples the gene inside
// its bounds. Either way the result is clamped and the fitness cache dropped.
func (g *GeneticAlgorithm) Mutate(individual *framework.Individual) {
	changed := false

	for i := range individual.Vector {
		if g.rng.Float64() < g.Config.MutationProbability {
			b := g.bounds[i]
			switch g.Config.Mutation {
			case MutationUniform:
				individual.Vector[i] = b.L + g.rng.Float64()*b.Span()
			default:
				step := g.rng.NormFloat64() * g.Config.MutationSigma * b.Span()
				individual.Vector[i] = b.Clamp(individual.Vector[i] + step)
			}
			changed = true
		}
	}

	if changed {
		individual.Invalidate()
	}
}
