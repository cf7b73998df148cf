package util

import (
	"fmt"

	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/evoopt/evoopt/pkg/singleobjective/algorithms"
)

// PlotConvergence creates a line chart of the best and mean fitness per
// generation for the given run, rendered to an HTML file. An empty path
// derives the file name from the problem and algorithm names.
func PlotConvergence(result *algorithms.RunResult, algorithmName, path string) error {
	if result == nil || len(result.Records) == 0 {
		return fmt.Errorf("no generation records to plot for %s Benchmark", algorithmName)
	}

	if path == "" {
		path = fmt.Sprintf("%s_%s_convergence.html", result.Problem, algorithmName)
	}

	// Create line chart
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Convergence for %s Benchmark", algorithmName, result.Problem),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "generation",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "fitness",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	generations := make([]int, len(result.Records))
	best := make([]opts.LineData, len(result.Records))
	mean := make([]opts.LineData, len(result.Records))
	for i, rec := range result.Records {
		generations[i] = rec.Generation
		best[i] = opts.LineData{Value: rec.Best}
		mean[i] = opts.LineData{Value: rec.Mean}
	}

	// Add data series
	line.SetXAxis(generations).
		AddSeries("Best Fitness", best).
		AddSeries("Mean Fitness", mean).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	// Create HTML file
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}
