// Package slc implements single-linkage hierarchical clustering of
// one-dimensional points in O(n log n).
//
// Points are sorted once; from then on only clusters that are adjacent in
// sorted order can be closest, so the algorithm keeps each live cluster linked
// to its left and right neighbour and holds the candidate pairs in a min-heap
// keyed by the gap between cluster centers. Merging two clusters splices the
// new node into the chain and pushes at most two new pairs. Pairs that refer
// to an already merged cluster are left in the heap and skipped when popped.
//
// Basic usage:
//
//	d, err := slc.Cluster(points, slc.DefaultConfig())
//	// d.Nodes[:len(points)] are the leaves, in input order
//	// d.Nodes[len(points):] are merges, in the order they happened
//	// d.Nodes[d.Root()] is the root
//
// Flat clusterings can be read off the tree:
//
//	labels := d.CutHeight(2.5)  // merges at height <= 2.5
//	labels, err := d.CutK(3)    // exactly three clusters
//
// # Center rule
//
// A merge node's center is, by default, the midpoint of its two children's
// centers (CenterMidpoint). CenterWeighted uses the mean of all leaves under
// the node instead. Ties between equal gaps are broken by position: the pair
// whose left cluster starts further left merges first.
package slc
