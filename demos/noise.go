package demos

import (
	"context"
	"fmt"
	"math"
	"os"
	"path"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/zeu5/env-wrappers/env"
	"github.com/zeu5/env-wrappers/pointmass"
	"github.com/zeu5/env-wrappers/wrappers"
)

// RunNoiseComparison plays a random policy on the point-mass
// environment once per noise scale and compares the resulting coverage
// and returns. Each run shares the task's generator with the noise
// wrapper, so runs are reproducible from the seed alone.
func RunNoiseComparison(episodes, horizon int, scales []float64, seed uint64, savePath string, record bool, ctx context.Context) error {
	if err := os.MkdirAll(savePath, os.ModePerm); err != nil {
		return err
	}

	names := make([]string, 0, len(scales))
	coverages := make([][]int, 0, len(scales))
	for _, scale := range scales {
		task := pointmass.NewTask(seed)
		noisy, err := wrappers.NewActionNoise(pointmass.New(task), scale)
		if err != nil {
			return err
		}
		wrapped := wrappers.NewStepLimit(noisy, horizon)
		loop := env.NewLoop(&env.LoopConfig{
			Episodes:    episodes,
			Horizon:     horizon,
			Policy:      env.NewUniformRandom(wrapped.ActionSpec(), task.RandomSource()),
			Environment: wrapped,
		})
		if err := loop.Run(ctx); err != nil {
			return err
		}
		traces := loop.Traces()

		name := fmt.Sprintf("scale-%v", scale)
		returns := pointmass.EpisodeReturns(traces)
		fmt.Printf("%s: mean return %.3f stddev %.3f over %d episodes\n",
			name, stat.Mean(returns, nil), math.Sqrt(stat.Variance(returns, nil)), len(returns))

		if err := pointmass.PlotTrajectories(name, traces, path.Join(savePath, name+"_trajectories.png")); err != nil {
			return err
		}
		if record {
			if err := env.SaveTraces(path.Join(savePath, name+"_traces.jsonl"), traces); err != nil {
				return err
			}
		}
		names = append(names, name)
		coverages = append(coverages, pointmass.Coverage(traces, 20))
	}
	return pointmass.PlotCoverage(names, coverages, path.Join(savePath, "coverage.png"))
}

func NoiseCommand() *cobra.Command {
	var scales []float64
	var record bool

	cmd := &cobra.Command{
		Use: "noise",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunNoiseComparison(episodes, horizon, scales, seed, savePath, record, context.Background())
		},
	}
	cmd.PersistentFlags().Float64SliceVar(&scales, "scales", []float64{0, 0.01, 0.1}, "Noise scales to compare")
	cmd.PersistentFlags().BoolVar(&record, "record", false, "Record episode traces as jsonl")
	return cmd
}
