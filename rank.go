package slc

import "gonum.org/v1/gonum/floats"

// Rank sorts point indices by value. order lists the indices of points in
// non-decreasing value order; equal values keep their original index order so
// the result is reproducible. rank is the inverse permutation:
// rank[order[i]] == i.
func Rank(points []float64) (order, rank []int) {
	n := len(points)
	sorted := make([]float64, n)
	copy(sorted, points)
	order = make([]int, n)
	floats.ArgsortStable(sorted, order)

	rank = make([]int, n)
	for pos, idx := range order {
		rank[idx] = pos
	}
	return order, rank
}
