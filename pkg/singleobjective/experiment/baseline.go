package experiment

import (
	"fmt"
	"time"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/optimize"

	"github.com/evoopt/evoopt/pkg/singleobjective/framework"
)

// BaselineMethod identifies the reference optimizer used for comparison.
const BaselineMethod = "CMA-ES (gonum/optimize)"

// BaselineResult holds the reference optimizer's final objective values
// across the same number of seeded runs as the study.
type BaselineResult struct {
	Method    string    `json:"method"`
	Finals    []float64 `json:"finals"`
	Aggregate Aggregate `json:"aggregate"`
}

// RunBaseline evaluates the reference CMA-ES implementation from
// gonum.org/v1/gonum/optimize on the same objective with a comparable
// budget: the GA's population size and generation count bound the
// evaluation budget. The reference method is consumed as-is, not
// reimplemented; candidates are clamped into the search box before
// evaluation so both optimizers answer the same bounded question.
func RunBaseline(cfg StudyConfig, problem framework.Problem) (*BaselineResult, error) {
	if err := cfg.Validate(problem.Bounds()); err != nil {
		return nil, err
	}

	bounds := problem.Bounds()
	objective := problem.Objective()

	boxed := func(x []float64) float64 {
		clamped := make([]float64, len(x))
		for i, v := range x {
			clamped[i] = bounds[i].Clamp(v)
		}
		return objective(clamped)
	}

	// Start every run from the center of the search box; the seed alone
	// differentiates the runs.
	init := make([]float64, len(bounds))
	for i, b := range bounds {
		init[i] = b.L + b.Span()/2
	}

	baseSeed := cfg.BaseSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	finals := make([]float64, cfg.Runs)
	for i := 0; i < cfg.Runs; i++ {
		method := &optimize.CmaEsChol{
			Population: cfg.GA.PopulationSize,
			Src:        exprand.NewSource(uint64(baseSeed + int64(i))),
		}
		settings := &optimize.Settings{
			MajorIterations: cfg.GA.MaxGenerations,
			FuncEvaluations: cfg.GA.PopulationSize * (cfg.GA.MaxGenerations + 1),
		}

		res, err := optimize.Minimize(optimize.Problem{Func: boxed}, init, settings, method)
		if err != nil {
			return nil, fmt.Errorf("reference run %d: %w", i, err)
		}
		finals[i] = res.F
	}

	return &BaselineResult{
		Method:    BaselineMethod,
		Finals:    finals,
		Aggregate: aggregate(finals),
	}, nil
}
