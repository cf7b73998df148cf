package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoopt/evoopt/pkg/singleobjective/benchmarks"
	"github.com/evoopt/evoopt/pkg/singleobjective/framework"
)

// smallStudyConfig keeps the test budget modest: the statistical machinery
// is the same at any scale.
func smallStudyConfig() StudyConfig {
	cfg := DefaultStudyConfig()
	cfg.GA.PopulationSize = 20
	cfg.GA.MaxGenerations = 30
	cfg.BaseSeed = 100
	return cfg
}

func TestRunStudyThirtyIndependentRuns(t *testing.T) {
	cfg := smallStudyConfig()

	result, err := RunStudy(context.Background(), cfg, benchmarks.NewSphere(2))
	require.NoError(t, err)

	require.Len(t, result.Runs, 30)
	require.Len(t, result.Finals, 30)

	seeds := make(map[int64]bool)
	for i, run := range result.Runs {
		require.NotNil(t, run, "run %d missing", i)
		assert.False(t, seeds[run.Seed], "seed %d reused", run.Seed)
		seeds[run.Seed] = true
		assert.Len(t, run.Records, cfg.GA.MaxGenerations+1)
		assert.Equal(t, run.Final().Best, result.Finals[i])
	}

	agg := result.Aggregate
	assert.GreaterOrEqual(t, agg.Mean, agg.Min)
	assert.LessOrEqual(t, agg.Median, agg.Max)
	assert.GreaterOrEqual(t, agg.Std, 0.0)
	assert.Equal(t, result.Finals[agg.BestRun], agg.Min)
	assert.Equal(t, result.MedianRun(), result.Runs[agg.MedianRun])
}

func TestRunStudyIsDeterministicForFixedBaseSeed(t *testing.T) {
	cfg := smallStudyConfig()
	cfg.Parallelism = 4

	first, err := RunStudy(context.Background(), cfg, benchmarks.NewRosenbrock(2))
	require.NoError(t, err)
	second, err := RunStudy(context.Background(), cfg, benchmarks.NewRosenbrock(2))
	require.NoError(t, err)

	if diff := cmp.Diff(first.Finals, second.Finals); diff != "" {
		t.Errorf("studies with identical base seed diverged (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Aggregate, second.Aggregate); diff != "" {
		t.Errorf("aggregates diverged (-first +second):\n%s", diff)
	}
}

func TestRunStudyFailsFastOnBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StudyConfig)
		field  string
	}{
		{
			name:   "zero runs",
			mutate: func(c *StudyConfig) { c.Runs = 0 },
			field:  "runs",
		},
		{
			name:   "negative parallelism",
			mutate: func(c *StudyConfig) { c.Parallelism = -1 },
			field:  "parallelism",
		},
		{
			name:   "population of one",
			mutate: func(c *StudyConfig) { c.GA.PopulationSize = 1 },
			field:  "populationSize",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := smallStudyConfig()
			tc.mutate(&cfg)

			_, err := RunStudy(context.Background(), cfg, benchmarks.NewSphere(2))
			require.Error(t, err)

			var confErr *framework.ConfigurationError
			require.True(t, errors.As(err, &confErr))
			assert.Equal(t, tc.field, confErr.Field)
		})
	}
}

func TestAggregateMedianRunSelection(t *testing.T) {
	finals := []float64{5, 1, 3, 2, 4}
	agg := aggregate(finals)

	assert.Equal(t, 1.0, agg.Min)
	assert.Equal(t, 5.0, agg.Max)
	assert.Equal(t, 3.0, agg.Mean)
	assert.Equal(t, 3.0, agg.Median)
	assert.Equal(t, 2, agg.MedianRun)
	assert.Equal(t, 1, agg.BestRun)
}

func TestAggregateSingleRun(t *testing.T) {
	agg := aggregate([]float64{2.5})

	assert.Equal(t, 2.5, agg.Mean)
	assert.Equal(t, 2.5, agg.Median)
	assert.Equal(t, 0.0, agg.Std)
	assert.Equal(t, 0, agg.MedianRun)
}

func TestRunBaselineComparableSetup(t *testing.T) {
	cfg := smallStudyConfig()
	cfg.Runs = 3

	baseline, err := RunBaseline(cfg, benchmarks.NewSphere(2))
	require.NoError(t, err)

	assert.Equal(t, BaselineMethod, baseline.Method)
	require.Len(t, baseline.Finals, 3)
	for _, f := range baseline.Finals {
		// CMA-ES converges on the 2D sphere well within this budget.
		assert.Less(t, f, 1.0)
	}
}

func TestStudyAndBaselineShareObjective(t *testing.T) {
	cfg := smallStudyConfig()
	cfg.Runs = 2
	cfg.GA.MaxGenerations = 10

	problem := benchmarks.NewRosenbrock(2)

	study, err := RunStudy(context.Background(), cfg, problem)
	require.NoError(t, err)
	baseline, err := RunBaseline(cfg, problem)
	require.NoError(t, err)

	study.Baseline = baseline
	assert.NotNil(t, study.Baseline)
	assert.Len(t, study.Baseline.Finals, len(study.Finals))
}
