// evoopt runs a multi-run genetic algorithm study on a benchmark problem,
// writes the aggregate statistics as JSON and renders the median run's
// convergence curve.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/evoopt/evoopt/apis/config"
	"github.com/evoopt/evoopt/pkg/singleobjective/algorithms"
	"github.com/evoopt/evoopt/pkg/singleobjective/experiment"
	"github.com/evoopt/evoopt/pkg/singleobjective/util"
)

func main() {
	var (
		configPath  string
		summaryPath string
		plotPath    string
	)

	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.StringVar(&configPath, "config", "", "experiment configuration file (YAML or JSON); empty runs the default Rosenbrock study")
	pflag.StringVar(&summaryPath, "summary", "summary.json", "output path of the JSON study summary")
	pflag.StringVar(&plotPath, "plot", "", "output path of the median run's convergence plot; empty derives it from the problem name")
	pflag.Parse()

	if err := run(configPath, summaryPath, plotPath); err != nil {
		klog.ErrorS(err, "study failed")
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}
	klog.Flush()
}

func run(configPath, summaryPath, plotPath string) error {
	ctx := klog.NewContext(context.Background(), klog.Background())

	cfg := &config.ExperimentConfig{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg.SetDefaults()
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	problem, err := cfg.BuildProblem()
	if err != nil {
		return err
	}

	result, err := experiment.RunStudy(ctx, cfg.StudyConfig(), problem)
	if err != nil {
		return err
	}

	if cfg.Baseline {
		baseline, err := experiment.RunBaseline(cfg.StudyConfig(), problem)
		if err != nil {
			return err
		}
		result.Baseline = baseline
	}

	agg := result.Aggregate
	klog.InfoS("study complete",
		"problem", result.Problem,
		"runs", len(result.Runs),
		"mean", agg.Mean,
		"std", agg.Std,
		"median", agg.Median,
		"best", agg.Min)
	if result.Baseline != nil {
		klog.InfoS("baseline complete",
			"method", result.Baseline.Method,
			"mean", result.Baseline.Aggregate.Mean,
			"std", result.Baseline.Aggregate.Std,
			"median", result.Baseline.Aggregate.Median)
	}

	if err := util.PlotConvergence(result.MedianRun(), algorithms.Name, plotPath); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(summaryPath, data, 0o644); err != nil {
		return err
	}
	klog.InfoS("summary written", "path", summaryPath)

	return nil
}
