package algorithms

import (
	"math"

	"github.com/evoopt/evoopt/pkg/singleobjective/framework"
)

// selectParent dispatches to the configured selection method.
func (g *GeneticAlgorithm) selectParent() framework.Individual {
	if g.Config.Selection == SelectionRoulette {
		return g.RouletteSelect()
	}
	return g.TournamentSelect()
}

// TournamentSelect draws TournamentSize contestants uniformly at random and
// returns the one with the lowest fitness.
func (g *GeneticAlgorithm) TournamentSelect() framework.Individual {
	best := g.rng.Intn(len(g.population))

	for i := 1; i < g.Config.TournamentSize; i++ {
		contestant := g.rng.Intn(len(g.population))
		if g.population[contestant].Fitness < g.population[best].Fitness {
			best = contestant
		}
	}

	return g.population[best]
}

// RouletteSelect draws an individual with probability proportional to its
// inverted fitness, so lower fitness means higher selection probability.
// When the weights degenerate (all-equal fitness, or penalized individuals
// pushing the total out of float range) it falls back to a uniform draw.
func (g *GeneticAlgorithm) RouletteSelect() framework.Individual {
	worst := g.population[g.population.Worst()].Fitness

	total := 0.0
	weights := make([]float64, len(g.population))
	for i := range g.population {
		weights[i] = worst - g.population[i].Fitness
		total += weights[i]
	}

	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return g.population[g.rng.Intn(len(g.population))]
	}

	r := g.rng.Float64() * total
	for i := range g.population {
		r -= weights[i]
		if r <= 0 {
			return g.population[i]
		}
	}

	return g.population[len(g.population)-1]
}
