package textio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/TrevorS/slc"
)

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteTree prints one line per node: "i: value" for leaves and
// "i:  left right" for merges.
func WriteTree(w io.Writer, d *slc.Dendrogram) error {
	bw := bufio.NewWriter(w)
	n := d.Len()
	for i, c := range d.Nodes {
		if i < n {
			fmt.Fprintf(bw, "%d: %s\n", i, formatValue(d.Points[i]))
		} else {
			fmt.Fprintf(bw, "%d:  %d %d\n", i, c.Left, c.Right)
		}
	}
	return errors.Wrap(bw.Flush(), "write tree")
}

// WriteLinkage prints the merges in scipy linkage order, one
// "left right height size" row per line.
func WriteLinkage(w io.Writer, d *slc.Dendrogram) error {
	bw := bufio.NewWriter(w)
	for _, row := range d.Linkage() {
		fmt.Fprintf(bw, "%d %d %s %d\n", int(row[0]), int(row[1]), formatValue(row[2]), int(row[3]))
	}
	return errors.Wrap(bw.Flush(), "write linkage")
}

// WriteLabels prints "i: label" for each point.
func WriteLabels(w io.Writer, labels []int) error {
	bw := bufio.NewWriter(w)
	for i, l := range labels {
		fmt.Fprintf(bw, "%d: %d\n", i, l)
	}
	return errors.Wrap(bw.Flush(), "write labels")
}

type jsonNode struct {
	ID     int     `json:"id"`
	Leaf   bool    `json:"leaf"`
	Left   int     `json:"left"`
	Right  int     `json:"right"`
	Center float64 `json:"center"`
	Size   int     `json:"size"`
	Height float64 `json:"height"`
	Parent int     `json:"parent"`
}

type jsonStats struct {
	Merges    int `json:"merges"`
	Stale     int `json:"stale"`
	Pushes    int `json:"pushes"`
	PeakQueue int `json:"peak_queue"`
}

type jsonDendrogram struct {
	Points []float64  `json:"points"`
	Root   int        `json:"root"`
	Nodes  []jsonNode `json:"nodes"`
	Stats  jsonStats  `json:"stats"`
}

// WriteJSON encodes the dendrogram as an indented JSON document. The root of
// an empty dendrogram is -1 and a node's parent is -1 until it is merged.
func WriteJSON(w io.Writer, d *slc.Dendrogram) error {
	doc := jsonDendrogram{
		Points: d.Points,
		Root:   d.Root(),
		Nodes:  make([]jsonNode, len(d.Nodes)),
		Stats: jsonStats{
			Merges:    d.Stats.Merges,
			Stale:     d.Stats.Stale,
			Pushes:    d.Stats.Pushes,
			PeakQueue: d.Stats.PeakQueue,
		},
	}
	if doc.Points == nil {
		doc.Points = []float64{}
	}
	for i, c := range d.Nodes {
		doc.Nodes[i] = jsonNode{
			ID:     i,
			Leaf:   d.IsLeaf(i),
			Left:   c.Left,
			Right:  c.Right,
			Center: c.Center,
			Size:   c.Size,
			Height: c.Height,
			Parent: c.Parent,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(doc), "encode dendrogram")
}
