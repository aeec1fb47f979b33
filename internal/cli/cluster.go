package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/TrevorS/slc"
	"github.com/TrevorS/slc/internal/render"
	"github.com/TrevorS/slc/internal/textio"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatLinkage = "linkage"
	formatDOT     = "dot"
	formatSVG     = "svg"
)

var clusterFormats = []string{formatText, formatJSON, formatLinkage, formatDOT, formatSVG}

func (c *CLI) clusterCommand() *cobra.Command {
	var (
		format   string
		center   string
		lenient  bool
		detailed bool
	)
	defaults := DefaultFileConfig()

	cmd := &cobra.Command{
		Use:   "cluster [file]",
		Short: "Build the merge tree of points read from a file or stdin",
		Long: `Reads whitespace separated numbers and prints the merge tree.

The text format prints one line per node: "i: value" for the input points,
then "i:  left right" for each merge in the order the merges happened.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			format = setting(cmd, "format", format, c.config.Format)
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
			logger.Debug("read points", "count", len(points))

			prog := newProgress(logger)
			d, err := slc.Cluster(points, cfg)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Clustered %d points", len(points)))

			return writeDendrogram(cmd, cmd.OutOrStdout(), d, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", defaults.Format, fmt.Sprintf("output format %v", clusterFormats))
	cmd.Flags().StringVar(&center, "center", defaults.CenterRule, "center rule: midpoint or weighted")
	cmd.Flags().BoolVar(&lenient, "lenient", defaults.Lenient, "stop at the first non-numeric token instead of failing")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include size and center in dot/svg node labels")

	return cmd
}

func writeDendrogram(cmd *cobra.Command, w io.Writer, d *slc.Dendrogram, format string, detailed bool) error {
	switch format {
	case formatText:
		return textio.WriteTree(w, d)
	case formatJSON:
		return textio.WriteJSON(w, d)
	case formatLinkage:
		return textio.WriteLinkage(w, d)
	case formatDOT:
		_, err := io.WriteString(w, render.ToDOT(d, render.Options{Detailed: detailed}))
		return errors.Wrap(err, "write dot")
	case formatSVG:
		svg, err := render.RenderSVG(cmd.Context(), render.ToDOT(d, render.Options{Detailed: detailed}))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return errors.Wrap(err, "write svg")
	default:
		return errors.Errorf("unknown format %q (want one of %v)", format, clusterFormats)
	}
}
