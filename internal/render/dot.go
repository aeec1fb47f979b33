// Package render draws a dendrogram as a Graphviz node-link diagram.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/TrevorS/slc"
)

// Options configures dendrogram rendering.
type Options struct {
	// Detailed adds size and center to merge node labels.
	Detailed bool
}

// ToDOT converts a dendrogram to Graphviz DOT. Leaves are labelled with their
// point value and merge nodes with their height; edges run from each merge
// node to its two children.
func ToDOT(d *slc.Dendrogram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dendrogram {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12];\n")
	buf.WriteString("\n")

	for id, c := range d.Nodes {
		fmt.Fprintf(&buf, "  n%d [%s];\n", id, nodeAttrs(d, id, c, opts))
	}

	buf.WriteString("\n")
	for id := d.Len(); id < len(d.Nodes); id++ {
		c := d.Nodes[id]
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", id, c.Left)
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", id, c.Right)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(d *slc.Dendrogram, id int, c slc.Node, opts Options) string {
	if d.IsLeaf(id) {
		label := fmt.Sprintf("%d: %s", id, fmtFloat(d.Points[id]))
		return fmt.Sprintf("shape=box, style=\"rounded\", label=%q", label)
	}
	label := fmt.Sprintf("h=%s", fmtFloat(c.Height))
	if opts.Detailed {
		label = fmt.Sprintf("%s\nsize=%d\ncenter=%s", label, c.Size, fmtFloat(c.Center))
	}
	return fmt.Sprintf("shape=ellipse, label=%q", label)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
