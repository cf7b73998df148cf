package algorithms

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"k8s.io/klog/v2"

	"github.com/evoopt/evoopt/pkg/singleobjective/framework"
)

const (
	Name = "GA"
)

// SelectionMethod names a parent selection strategy.
type SelectionMethod string

const (
	SelectionTournament SelectionMethod = "Tournament"
	SelectionRoulette   SelectionMethod = "Roulette"
)

// MutationMethod names a gene perturbation strategy.
type MutationMethod string

const (
	MutationGaussian MutationMethod = "Gaussian"
	MutationUniform  MutationMethod = "Uniform"
)

// State tracks the optimizer lifecycle. Transitions are forward-only.
type State int

const (
	Uninitialized State = iota
	Initialized
	Running
	Terminated
)

// Config holds the GA parameters.
type Config struct {
	PopulationSize       int
	MaxGenerations       int
	CrossoverProbability float64
	MutationProbability  float64
	TournamentSize       int
	Selection            SelectionMethod
	Mutation             MutationMethod

	// MutationSigma is the Gaussian mutation step expressed as a fraction
	// of each variable's bound span.
	MutationSigma float64

	Elitism bool

	// Seed fixes the run's random sequence. Zero means seed from the clock.
	Seed int64
}

// DefaultConfig returns parameters that work well on low-dimensional
// continuous benchmarks.
func DefaultConfig() Config {
	return Config{
		PopulationSize:       50,
		MaxGenerations:       100,
		CrossoverProbability: 0.9,
		MutationProbability:  0.1,
		TournamentSize:       3,
		Selection:            SelectionTournament,
		Mutation:             MutationGaussian,
		MutationSigma:        0.05,
		Elitism:              true,
	}
}

// Validate checks the configuration against the problem bounds.
func (c Config) Validate(bounds []framework.Bounds) error {
	if c.PopulationSize < 2 {
		return &framework.ConfigurationError{Field: "populationSize", Reason: fmt.Sprintf("must be >= 2, got %d", c.PopulationSize)}
	}
	if c.MaxGenerations < 1 {
		return &framework.ConfigurationError{Field: "maxGenerations", Reason: fmt.Sprintf("must be >= 1, got %d", c.MaxGenerations)}
	}
	if c.CrossoverProbability < 0 || c.CrossoverProbability > 1 {
		return &framework.ConfigurationError{Field: "crossoverProbability", Reason: fmt.Sprintf("must be in [0,1], got %f", c.CrossoverProbability)}
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		return &framework.ConfigurationError{Field: "mutationProbability", Reason: fmt.Sprintf("must be in [0,1], got %f", c.MutationProbability)}
	}
	switch c.Selection {
	case SelectionTournament:
		if c.TournamentSize < 1 || c.TournamentSize > c.PopulationSize {
			return &framework.ConfigurationError{Field: "tournamentSize", Reason: fmt.Sprintf("must be in [1, populationSize], got %d", c.TournamentSize)}
		}
	case SelectionRoulette:
	default:
		return &framework.ConfigurationError{Field: "selection", Reason: fmt.Sprintf("unknown method %q", c.Selection)}
	}
	switch c.Mutation {
	case MutationGaussian:
		if c.MutationSigma <= 0 {
			return &framework.ConfigurationError{Field: "mutationSigma", Reason: fmt.Sprintf("must be > 0, got %f", c.MutationSigma)}
		}
	case MutationUniform:
	default:
		return &framework.ConfigurationError{Field: "mutation", Reason: fmt.Sprintf("unknown method %q", c.Mutation)}
	}
	if len(bounds) == 0 {
		return &framework.ConfigurationError{Field: "bounds", Reason: "problem declares no decision variables"}
	}
	for i, b := range bounds {
		if b.L > b.H {
			return &framework.ConfigurationError{Field: "bounds", Reason: fmt.Sprintf("inverted bounds [%f, %f] at dimension %d", b.L, b.H, i)}
		}
	}
	return nil
}

// GenerationRecord is a per-generation snapshot used to build convergence curves.
type GenerationRecord struct {
	Generation int     `json:"generation"`
	Best       float64 `json:"best"`
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	Worst      float64 `json:"worst"`

	BestVector []float64 `json:"bestVector"`
}

// RunResult is the outcome of one full optimization run.
type RunResult struct {
	Problem        string               `json:"problem"`
	Seed           int64                `json:"seed"`
	Records        []GenerationRecord   `json:"records"`
	BestIndividual framework.Individual `json:"bestIndividual"`
	Evaluations    int                  `json:"evaluations"`
	Anomalies      int                  `json:"anomalies"`
}

// Final returns the record of the last generation.
func (r *RunResult) Final() GenerationRecord {
	return r.Records[len(r.Records)-1]
}

// GeneticAlgorithm evolves a population of real-valued candidates toward
// the minimum of the problem's objective function.
type GeneticAlgorithm struct {
	Config Config

	problem   framework.Problem
	objective framework.ObjectiveFunc
	bounds    []framework.Bounds
	rng       *rand.Rand
	seed      int64

	state       State
	population  framework.Population
	evaluations int
	anomalies   int
}

// NewGeneticAlgorithm creates a GA instance for the given problem.
// Invalid parameters fail here, before any generation runs.
func NewGeneticAlgorithm(config Config, problem framework.Problem) (*GeneticAlgorithm, error) {
	bounds := problem.Bounds()
	if err := config.Validate(bounds); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &GeneticAlgorithm{
		Config:    config,
		problem:   problem,
		objective: problem.Objective(),
		bounds:    bounds,
		rng:       rand.New(rand.NewSource(seed)),
		seed:      seed,
		state:     Uninitialized,
	}, nil
}

// State returns the current lifecycle state.
func (g *GeneticAlgorithm) State() State {
	return g.state
}

// Initialize creates the initial random population and evaluates it.
func (g *GeneticAlgorithm) Initialize() error {
	if g.state != Uninitialized {
		return fmt.Errorf("cannot initialize %s in state %d", Name, g.state)
	}

	g.population = make(framework.Population, g.Config.PopulationSize)
	for i := 0; i < g.Config.PopulationSize; i++ {
		vars := make([]float64, len(g.bounds))
		for j, b := range g.bounds {
			vars[j] = b.L + g.rng.Float64()*b.Span()
		}
		g.population[i] = framework.NewIndividual(vars)
		g.evaluate(&g.population[i])
	}
	g.state = Initialized

	return nil
}

// evaluate fills the fitness cache and keeps the evaluation counters current.
func (g *GeneticAlgorithm) evaluate(ind *framework.Individual) {
	if ind.Evaluate(g.objective) {
		g.evaluations++
		if ind.Anomalous {
			g.anomalies++
		}
	}
}

// record snapshots the population statistics at the given generation index.
func (g *GeneticAlgorithm) record(generation int) GenerationRecord {
	best, mean, std, worst := g.population.Stats()
	bestVec := make([]float64, len(g.bounds))
	copy(bestVec, g.population[g.population.Best()].Vector)

	return GenerationRecord{
		Generation: generation,
		Best:       best,
		Mean:       mean,
		Std:        std,
		Worst:      worst,
		BestVector: bestVec,
	}
}

// advance produces the next generation: selection, crossover, mutation and
// elitism, keeping the population size constant.
func (g *GeneticAlgorithm) advance() {
	var elite framework.Individual
	if g.Config.Elitism {
		elite = g.population[g.population.Best()].Clone()
	}

	offspring := make(framework.Population, 0, g.Config.PopulationSize)
	for len(offspring) < g.Config.PopulationSize {
		parent1 := g.selectParent()
		parent2 := g.selectParent()

		child1, child2 := g.Crossover(parent1, parent2)

		g.Mutate(&child1)
		g.Mutate(&child2)

		g.evaluate(&child1)
		offspring = append(offspring, child1)
		if len(offspring) < g.Config.PopulationSize {
			g.evaluate(&child2)
			offspring = append(offspring, child2)
		}
	}

	if g.Config.Elitism {
		offspring[offspring.Worst()] = elite
	}

	g.population = offspring
}

// Run executes the configured number of generations and returns the full
// run result. The record sequence always spans generation 0 through
// MaxGenerations; there is no early stopping.
func (g *GeneticAlgorithm) Run(ctx context.Context) (*RunResult, error) {
	logger := klog.FromContext(ctx)

	switch g.state {
	case Uninitialized:
		if err := g.Initialize(); err != nil {
			return nil, err
		}
	case Initialized:
	default:
		return nil, fmt.Errorf("%s run already started or finished", Name)
	}
	g.state = Running

	records := make([]GenerationRecord, 0, g.Config.MaxGenerations+1)
	records = append(records, g.record(0))

	for gen := 1; gen <= g.Config.MaxGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		g.advance()
		rec := g.record(gen)
		records = append(records, rec)

		logger.V(4).Info("generation complete",
			"problem", g.problem.Name(),
			"generation", gen,
			"best", rec.Best,
			"mean", rec.Mean)
	}

	g.state = Terminated

	return &RunResult{
		Problem:        g.problem.Name(),
		Seed:           g.seed,
		Records:        records,
		BestIndividual: g.population[g.population.Best()].Clone(),
		Evaluations:    g.evaluations,
		Anomalies:      g.anomalies,
	}, nil
}
