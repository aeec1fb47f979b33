package slc

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Dendrogram is the complete merge tree produced by Cluster.
type Dendrogram struct {
	// Points is a copy of the input values.
	Points []float64

	// Nodes is the arena: n leaves in input order followed by n-1 merge
	// nodes in creation order. The last node is the root.
	Nodes []Node

	// Order lists point indices in sorted order. The leaves under any node
	// are Order[node.Lo : node.Hi+1].
	Order []int

	// Stats describes the work done while building the tree.
	Stats Stats
}

// Len returns the number of input points.
func (d *Dendrogram) Len() int {
	return len(d.Points)
}

// Root returns the id of the root node, or None for an empty dendrogram.
func (d *Dendrogram) Root() int {
	return len(d.Nodes) - 1
}

// IsLeaf reports whether id is one of the original points.
func (d *Dendrogram) IsLeaf(id int) bool {
	return id >= 0 && id < len(d.Points)
}

// Leaves returns the point indices under id in sorted order.
func (d *Dendrogram) Leaves(id int) []int {
	c := d.Nodes[id]
	out := make([]int, c.Hi-c.Lo+1)
	copy(out, d.Order[c.Lo:c.Hi+1])
	return out
}

// Heights returns the merge heights in creation order.
func (d *Dendrogram) Heights() []float64 {
	n := d.Len()
	if n < 2 {
		return nil
	}
	heights := make([]float64, 0, n-1)
	for _, c := range d.Nodes[n:] {
		heights = append(heights, c.Height)
	}
	return heights
}

// Linkage returns the merge nodes in scipy linkage format: each row is
// [left, right, height, size]. Ids match the arena, so merge node ids start
// at n exactly as in scipy's output.
func (d *Dendrogram) Linkage() [][4]float64 {
	n := d.Len()
	if n < 2 {
		return nil
	}
	rows := make([][4]float64, 0, n-1)
	for _, c := range d.Nodes[n:] {
		rows = append(rows, [4]float64{float64(c.Left), float64(c.Right), c.Height, float64(c.Size)})
	}
	return rows
}

// Summary holds descriptive figures for a dendrogram.
type Summary struct {
	Points     int
	Min, Max   float64
	RootHeight float64
	MeanHeight float64
}

// Summarize computes a Summary. Fields other than Points are zero for empty
// input.
func (d *Dendrogram) Summarize() Summary {
	s := Summary{Points: d.Len()}
	if s.Points == 0 {
		return s
	}
	s.Min = floats.Min(d.Points)
	s.Max = floats.Max(d.Points)
	if heights := d.Heights(); len(heights) > 0 {
		s.RootHeight = heights[len(heights)-1]
		s.MeanHeight = stat.Mean(heights, nil)
	}
	return s
}
