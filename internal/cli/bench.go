package cli

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/TrevorS/slc"
	"github.com/TrevorS/slc/internal/synth"
)

func (c *CLI) benchCommand() *cobra.Command {
	var (
		exp    int
		mode   string
		seed   uint64
		repeat int
		center string
	)
	defaults := DefaultFileConfig()

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the clustering engine on 2^exp synthetic points",
		Long: `Generates 2^exp points and times the clustering engine on them.

Modes:
  uniform    points drawn uniformly from [0, 1) with a seeded generator
  monotonic  0, 1, 2, ... so every gap ties`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			exp = setting(cmd, "exp", exp, c.config.Bench.Exponent)
			mode = setting(cmd, "mode", mode, c.config.Bench.Mode)
			seed = setting(cmd, "seed", seed, c.config.Bench.Seed)
			repeat = setting(cmd, "repeat", repeat, c.config.Bench.Repeat)
			center = setting(cmd, "center", center, c.config.CenterRule)
			if repeat < 1 {
				return errors.Errorf("repeat must be at least 1, got %d", repeat)
			}

			m, err := synth.ParseMode(mode)
			if err != nil {
				return err
			}
			cfg, err := c.clusterConfig(center)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			points, err := synth.Generate(exp, m, seed)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Generated %d points", len(points)))

			var (
				d       *slc.Dendrogram
				elapsed = make([]float64, 0, repeat)
			)
			for i := range repeat {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				prog := newProgress(logger)
				if d, err = slc.Cluster(points, cfg); err != nil {
					return err
				}
				took := prog.done(fmt.Sprintf("Run %d/%d", i+1, repeat))
				elapsed = append(elapsed, took.Seconds())
			}

			w := cmd.OutOrStdout()
			sum := d.Summarize()
			printTitle(w, "slc bench")
			printKeyValue(w, "points", fmt.Sprint(len(points)))
			printKeyValue(w, "mode", string(m))
			printKeyValue(w, "center", string(cfg.CenterRule))
			printKeyValue(w, "runs", fmt.Sprint(repeat))
			printHighlight(w, "mean", seconds(stat.Mean(elapsed, nil)).String())
			printKeyValue(w, "best", seconds(floats.Min(elapsed)).String())
			printKeyValue(w, "merges", fmt.Sprint(d.Stats.Merges))
			printKeyValue(w, "stale pairs", fmt.Sprint(d.Stats.Stale))
			printKeyValue(w, "pushes", fmt.Sprint(d.Stats.Pushes))
			printKeyValue(w, "peak queue", fmt.Sprint(d.Stats.PeakQueue))
			printKeyValue(w, "root height", fmt.Sprint(sum.RootHeight))
			return nil
		},
	}

	cmd.Flags().IntVar(&exp, "exp", defaults.Bench.Exponent, fmt.Sprintf("generate 2^exp points, exp in [0, %d]", synth.MaxExponent))
	cmd.Flags().StringVar(&mode, "mode", defaults.Bench.Mode, "point layout: uniform or monotonic")
	cmd.Flags().Uint64Var(&seed, "seed", defaults.Bench.Seed, "seed for uniform mode")
	cmd.Flags().IntVar(&repeat, "repeat", defaults.Bench.Repeat, "number of timed runs")
	cmd.Flags().StringVar(&center, "center", defaults.CenterRule, "center rule: midpoint or weighted")

	return cmd
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond)
}
