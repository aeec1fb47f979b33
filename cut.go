package slc

import (
	"errors"
	"fmt"
)

// ErrInvalidK is returned by CutK when the requested cluster count is out of range.
var ErrInvalidK = errors.New("slc: cluster count out of range")

// CutHeight assigns every point a flat cluster label by keeping only the
// merges whose height is at most h. Labels run from 0 and are numbered in
// sorted order of the clusters' leftmost points.
func (d *Dendrogram) CutHeight(h float64) []int {
	return d.cut(func(c *Node, _ int) bool { return c.Height <= h })
}

// CutK assigns every point a flat cluster label such that exactly k clusters
// remain, by keeping the first n-k merges. k must be in [1, n]; for an empty
// dendrogram only k = 0 is accepted.
func (d *Dendrogram) CutK(k int) ([]int, error) {
	n := d.Len()
	if n == 0 && k == 0 {
		return []int{}, nil
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d for %d points", ErrInvalidK, k, n)
	}
	keep := n - k
	return d.cut(func(_ *Node, step int) bool { return step < keep }), nil
}

// cut replays the merges accepted by keep, in creation order, and labels the
// resulting sets.
func (d *Dendrogram) cut(keep func(c *Node, step int) bool) []int {
	n := d.Len()
	uf := NewUnionFind(n)
	for step, id := 0, n; id < len(d.Nodes); step, id = step+1, id+1 {
		c := &d.Nodes[id]
		if !keep(c, step) {
			continue
		}
		// Any leaf of a child stands for the whole child.
		left, right := d.Nodes[c.Left], d.Nodes[c.Right]
		uf.Union(d.Order[left.Lo], d.Order[right.Lo])
	}

	labels := make([]int, n)
	seen := make(map[int]int, uf.Sets())
	for _, idx := range d.Order {
		root := uf.Find(idx)
		label, ok := seen[root]
		if !ok {
			label = len(seen)
			seen[root] = label
		}
		labels[idx] = label
	}
	return labels
}
