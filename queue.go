package slc

import "container/heap"

// pair is a candidate merge between two clusters that were adjacent when the
// pair was pushed. lo is the sorted rank of the left cluster's first leaf and
// breaks ties between equal keys so the leftmost pair wins.
type pair struct {
	left, right int
	lo          int
	key         float64
}

// less is the total order of the queue: key, then position, then ids.
func (p pair) less(q pair) bool {
	if p.key != q.key {
		return p.key < q.key
	}
	if p.lo != q.lo {
		return p.lo < q.lo
	}
	if p.left != q.left {
		return p.left < q.left
	}
	return p.right < q.right
}

// pairHeap implements container/heap.Interface as a min-heap of pairs.
type pairHeap []pair

func (h pairHeap) Len() int           { return len(h) }
func (h pairHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h pairHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *pairHeap) Push(x any) { *h = append(*h, x.(pair)) }

func (h *pairHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// neighbourQueue holds adjacent cluster pairs ordered by the gap between
// their centers. It never inspects the clusters it refers to: entries whose
// clusters have since merged stay in the heap until popped and are discarded
// by the caller.
type neighbourQueue struct {
	h      pairHeap
	pushes int
	peak   int
}

// newNeighbourQueue heapifies the initial pairs in O(k).
func newNeighbourQueue(initial []pair) *neighbourQueue {
	q := &neighbourQueue{h: pairHeap(initial), pushes: len(initial)}
	heap.Init(&q.h)
	q.peak = len(q.h)
	return q
}

func (q *neighbourQueue) len() int {
	return len(q.h)
}

func (q *neighbourQueue) push(p pair) {
	heap.Push(&q.h, p)
	q.pushes++
	if len(q.h) > q.peak {
		q.peak = len(q.h)
	}
}

func (q *neighbourQueue) pop() pair {
	return heap.Pop(&q.h).(pair)
}
