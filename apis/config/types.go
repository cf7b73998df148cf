package config

import (
	"fmt"

	"github.com/evoopt/evoopt/pkg/singleobjective/algorithms"
	"github.com/evoopt/evoopt/pkg/singleobjective/benchmarks"
	"github.com/evoopt/evoopt/pkg/singleobjective/experiment"
	"github.com/evoopt/evoopt/pkg/singleobjective/framework"
)

// ExperimentConfig is the external configuration of an optimization study.
type ExperimentConfig struct {
	// Problem selects the benchmark: Rosenbrock, Sphere or Rastrigin.
	Problem string `json:"problem,omitempty"`

	// Dimensions is the decision vector length.
	Dimensions int `json:"dimensions,omitempty"`

	// Bounds lists one [low, high] pair per dimension.
	// Empty means the benchmark's conventional bounds.
	Bounds [][2]float64 `json:"bounds,omitempty"`

	// PopulationSize is the number of individuals per generation.
	PopulationSize int `json:"populationSize,omitempty"`

	// Generations is the number of generations per run.
	Generations int `json:"generations,omitempty"`

	// CrossoverRate is the blend crossover probability.
	CrossoverRate *float64 `json:"crossoverRate,omitempty"`

	// MutationRate is the per-gene mutation probability.
	MutationRate *float64 `json:"mutationRate,omitempty"`

	// Selection chooses the parent selection method: Tournament or Roulette.
	Selection string `json:"selection,omitempty"`

	// TournamentSize is the number of contestants per tournament draw.
	TournamentSize int `json:"tournamentSize,omitempty"`

	// Mutation chooses the perturbation method: Gaussian or Uniform.
	Mutation string `json:"mutation,omitempty"`

	// MutationSigma is the Gaussian step as a fraction of the bound span.
	MutationSigma float64 `json:"mutationSigma,omitempty"`

	// Seed is the base random seed. Zero means seed from the clock.
	Seed int64 `json:"seed,omitempty"`

	// Runs is the number of independent runs in the study.
	Runs int `json:"runs,omitempty"`

	// Parallelism bounds concurrent runs. Zero means one per CPU.
	Parallelism int `json:"parallelism,omitempty"`

	// Baseline enables the reference CMA-ES comparison.
	Baseline bool `json:"baseline,omitempty"`
}

// SetDefaults fills unset fields with the standard study setup.
func (c *ExperimentConfig) SetDefaults() {
	def := algorithms.DefaultConfig()

	if c.Problem == "" {
		c.Problem = benchmarks.RosenbrockName
	}
	if c.Dimensions == 0 {
		c.Dimensions = 2
	}
	if c.PopulationSize == 0 {
		c.PopulationSize = def.PopulationSize
	}
	if c.Generations == 0 {
		c.Generations = def.MaxGenerations
	}
	if c.CrossoverRate == nil {
		v := def.CrossoverProbability
		c.CrossoverRate = &v
	}
	if c.MutationRate == nil {
		v := def.MutationProbability
		c.MutationRate = &v
	}
	if c.Selection == "" {
		c.Selection = string(def.Selection)
	}
	if c.TournamentSize == 0 {
		c.TournamentSize = def.TournamentSize
	}
	if c.Mutation == "" {
		c.Mutation = string(def.Mutation)
	}
	if c.MutationSigma == 0 {
		c.MutationSigma = def.MutationSigma
	}
	if c.Runs == 0 {
		c.Runs = 30
	}
}

// GAConfig converts the external configuration into the engine's.
func (c *ExperimentConfig) GAConfig() algorithms.Config {
	return algorithms.Config{
		PopulationSize:       c.PopulationSize,
		MaxGenerations:       c.Generations,
		CrossoverProbability: *c.CrossoverRate,
		MutationProbability:  *c.MutationRate,
		TournamentSize:       c.TournamentSize,
		Selection:            algorithms.SelectionMethod(c.Selection),
		Mutation:             algorithms.MutationMethod(c.Mutation),
		MutationSigma:        c.MutationSigma,
		Elitism:              true,
		Seed:                 c.Seed,
	}
}

// StudyConfig converts the external configuration into the study's.
func (c *ExperimentConfig) StudyConfig() experiment.StudyConfig {
	return experiment.StudyConfig{
		GA:          c.GAConfig(),
		Runs:        c.Runs,
		BaseSeed:    c.Seed,
		Parallelism: c.Parallelism,
	}
}

// BuildProblem instantiates the configured benchmark, honoring custom bounds.
func (c *ExperimentConfig) BuildProblem() (framework.Problem, error) {
	var bounds []framework.Bounds
	if len(c.Bounds) > 0 {
		if len(c.Bounds) != c.Dimensions {
			return nil, &framework.ConfigurationError{
				Field:  "bounds",
				Reason: fmt.Sprintf("got %d pairs for %d dimensions", len(c.Bounds), c.Dimensions),
			}
		}
		bounds = make([]framework.Bounds, len(c.Bounds))
		for i, pair := range c.Bounds {
			bounds[i] = framework.Bounds{L: pair[0], H: pair[1]}
		}
	}

	switch c.Problem {
	case benchmarks.RosenbrockName:
		if bounds != nil {
			return benchmarks.NewRosenbrockBounded(c.Dimensions, bounds), nil
		}
		return benchmarks.NewRosenbrock(c.Dimensions), nil
	case benchmarks.SphereName:
		if bounds != nil {
			return benchmarks.NewSphereBounded(c.Dimensions, bounds), nil
		}
		return benchmarks.NewSphere(c.Dimensions), nil
	case benchmarks.RastriginName:
		if bounds != nil {
			return benchmarks.NewRastriginBounded(c.Dimensions, bounds), nil
		}
		return benchmarks.NewRastrigin(c.Dimensions), nil
	default:
		return nil, &framework.ConfigurationError{Field: "problem", Reason: fmt.Sprintf("unknown benchmark %q", c.Problem)}
	}
}

// Validate builds the problem and checks the full configuration against it.
func (c *ExperimentConfig) Validate() error {
	if c.Dimensions < 1 {
		return &framework.ConfigurationError{Field: "dimensions", Reason: fmt.Sprintf("must be >= 1, got %d", c.Dimensions)}
	}
	if c.CrossoverRate == nil {
		return &framework.ConfigurationError{Field: "crossoverRate", Reason: "unset; apply SetDefaults first"}
	}
	if c.MutationRate == nil {
		return &framework.ConfigurationError{Field: "mutationRate", Reason: "unset; apply SetDefaults first"}
	}
	problem, err := c.BuildProblem()
	if err != nil {
		return err
	}
	return c.StudyConfig().Validate(problem.Bounds())
}
