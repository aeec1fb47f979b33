package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/TrevorS/slc"
	"github.com/TrevorS/slc/internal/textio"
)

func (c *CLI) cutCommand() *cobra.Command {
	var (
		k       int
		height  float64
		center  string
		lenient bool
	)
	defaults := DefaultFileConfig()

	cmd := &cobra.Command{
		Use:   "cut [file]",
		Short: "Print flat cluster labels for each input point",
		Long: `Builds the merge tree and cuts it into flat clusters, printing one label
per input point in input order. Labels are numbered from 0 in order of the
smallest point of each cluster.

Exactly one of --k (number of clusters) or --height (merge height threshold)
is required.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			byK, byHeight := cmd.Flags().Changed("k"), cmd.Flags().Changed("height")
			if byK == byHeight {
				return errors.New("exactly one of --k or --height is required")
			}

			center = setting(cmd, "center", center, c.config.CenterRule)
			lenient = setting(cmd, "lenient", lenient, c.config.Lenient)

			cfg, err := c.clusterConfig(center)
			if err != nil {
				return err
			}
			points, err := readInput(cmd, args, lenient)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			d, err := slc.Cluster(points, cfg)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Clustered %d points", len(points)))

			var labels []int
			if byK {
				if labels, err = d.CutK(k); err != nil {
					return err
				}
			} else {
				labels = d.CutHeight(height)
			}
			logger.Debug("cut tree", "clusters", countLabels(labels))

			return textio.WriteLabels(cmd.OutOrStdout(), labels)
		},
	}

	cmd.Flags().IntVar(&k, "k", 0, "number of clusters")
	cmd.Flags().Float64Var(&height, "height", 0, "merge height threshold; merges at or below it are kept")
	cmd.Flags().StringVar(&center, "center", defaults.CenterRule, "center rule: midpoint or weighted")
	cmd.Flags().BoolVar(&lenient, "lenient", defaults.Lenient, "stop at the first non-numeric token instead of failing")

	return cmd
}

func countLabels(labels []int) int {
	n := 0
	for _, l := range labels {
		if l+1 > n {
			n = l + 1
		}
	}
	return n
}
