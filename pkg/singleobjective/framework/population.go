package framework

import "gonum.org/v1/gonum/stat"

// Population is the set of individuals evolved together in one generation.
type Population []Individual

// Fitnesses collects the cached fitness values of the population.
func (p Population) Fitnesses() []float64 {
	fs := make([]float64, len(p))
	for i := range p {
		fs[i] = p[i].Fitness
	}
	return fs
}

// Best returns the index of the lowest-fitness individual.
func (p Population) Best() int {
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i].Fitness < p[best].Fitness {
			best = i
		}
	}
	return best
}

// Worst returns the index of the highest-fitness individual.
func (p Population) Worst() int {
	worst := 0
	for i := 1; i < len(p); i++ {
		if p[i].Fitness > p[worst].Fitness {
			worst = i
		}
	}
	return worst
}

// Stats returns the best, mean, standard deviation and worst fitness
// over the population.
func (p Population) Stats() (best, mean, std, worst float64) {
	fs := p.Fitnesses()
	mean = stat.Mean(fs, nil)
	std = stat.StdDev(fs, nil)
	return p[p.Best()].Fitness, mean, std, p[p.Worst()].Fitness
}
