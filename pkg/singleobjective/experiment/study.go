// Package experiment runs repeated, independently seeded optimizations and
// aggregates their outcomes into comparison-ready statistics.
package experiment

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/evoopt/evoopt/pkg/singleobjective/algorithms"
	"github.com/evoopt/evoopt/pkg/singleobjective/framework"
)

// StudyConfig controls a multi-run study.
type StudyConfig struct {
	GA algorithms.Config

	// Runs is the number of independent optimization runs.
	Runs int

	// BaseSeed derives the per-run seeds: run i uses BaseSeed+i.
	// Zero means seed the sequence from the clock.
	BaseSeed int64

	// Parallelism bounds the number of concurrent runs.
	// Zero means one worker per CPU.
	Parallelism int
}

// DefaultStudyConfig matches the usual 30-run statistical comparison setup.
func DefaultStudyConfig() StudyConfig {
	return StudyConfig{
		GA:       algorithms.DefaultConfig(),
		Runs:     30,
		BaseSeed: 1,
	}
}

// Validate checks the study parameters against the problem bounds.
// Everything fails here, before any run starts.
func (c StudyConfig) Validate(bounds []framework.Bounds) error {
	if c.Runs < 1 {
		return &framework.ConfigurationError{Field: "runs", Reason: fmt.Sprintf("must be >= 1, got %d", c.Runs)}
	}
	if c.Parallelism < 0 {
		return &framework.ConfigurationError{Field: "parallelism", Reason: fmt.Sprintf("must be >= 0, got %d", c.Parallelism)}
	}
	return c.GA.Validate(bounds)
}

// Aggregate summarizes the final best fitnesses across runs.
type Aggregate struct {
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`

	// MedianRun indexes the run whose final best fitness is nearest the
	// median; ties break toward the lower index.
	MedianRun int `json:"medianRun"`

	// BestRun indexes the run with the lowest final best fitness.
	BestRun int `json:"bestRun"`
}

// StudyResult is the outcome of a full study.
type StudyResult struct {
	Problem   string                  `json:"problem"`
	Runs      []*algorithms.RunResult `json:"runs"`
	Finals    []float64               `json:"finals"`
	Aggregate Aggregate               `json:"aggregate"`
	Baseline  *BaselineResult         `json:"baseline,omitempty"`
}

// MedianRun returns the study's representative run.
func (r *StudyResult) MedianRun() *algorithms.RunResult {
	return r.Runs[r.Aggregate.MedianRun]
}

// RunStudy executes cfg.Runs independent GA runs against the problem.
// Runs share nothing but the read-only configuration: each owns its
// optimizer and its seeded random source, so results are reproducible
// for a fixed BaseSeed regardless of scheduling.
func RunStudy(ctx context.Context, cfg StudyConfig, problem framework.Problem) (*StudyResult, error) {
	logger := klog.FromContext(ctx)

	if err := cfg.Validate(problem.Bounds()); err != nil {
		return nil, err
	}

	baseSeed := cfg.BaseSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	parallelism := cfg.Parallelism
	if parallelism == 0 {
		parallelism = runtime.NumCPU()
	}

	results := make([]*algorithms.RunResult, cfg.Runs)

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(parallelism)
	for i := 0; i < cfg.Runs; i++ {
		i := i
		grp.Go(func() error {
			runCfg := cfg.GA
			runCfg.Seed = baseSeed + int64(i)

			ga, err := algorithms.NewGeneticAlgorithm(runCfg, problem)
			if err != nil {
				return err
			}
			res, err := ga.Run(gctx)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res

			logger.V(3).Info("run complete",
				"problem", problem.Name(),
				"run", i,
				"seed", runCfg.Seed,
				"final", res.Final().Best)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	finals := make([]float64, cfg.Runs)
	for i, res := range results {
		finals[i] = res.Final().Best
	}

	return &StudyResult{
		Problem:   problem.Name(),
		Runs:      results,
		Finals:    finals,
		Aggregate: aggregate(finals),
	}, nil
}

// aggregate computes the summary statistics over the per-run finals.
func aggregate(finals []float64) Aggregate {
	sorted := make([]float64, len(finals))
	copy(sorted, finals)
	sort.Float64s(sorted)

	std := 0.0
	if len(finals) > 1 {
		std = stat.StdDev(finals, nil)
	}
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	medianRun, bestRun := 0, 0
	for i, f := range finals {
		if math.Abs(f-median) < math.Abs(finals[medianRun]-median) {
			medianRun = i
		}
		if f < finals[bestRun] {
			bestRun = i
		}
	}

	return Aggregate{
		Mean:      stat.Mean(finals, nil),
		Std:       std,
		Median:    median,
		Min:       sorted[0],
		Max:       sorted[len(sorted)-1],
		MedianRun: medianRun,
		BestRun:   bestRun,
	}
}
