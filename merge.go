package slc

import (
	"math"

	"github.com/charmbracelet/log"
)

// Stats counts the work done by one run of the merge engine.
type Stats struct {
	// Merges is the number of merge nodes created (n-1 for n > 0 points).
	Merges int
	// Stale is the number of popped pairs discarded because one side had
	// already been merged.
	Stale int
	// Pushes is the total number of pairs ever placed in the queue,
	// including the initial n-1.
	Pushes int
	// PeakQueue is the largest queue length observed.
	PeakQueue int
}

// engine owns every piece of mutable state for one clustering run.
type engine struct {
	arena  *arena
	queue  *neighbourQueue
	rule   CenterRule
	logger *log.Logger
	stats  Stats
}

// newEngine builds the leaf arena and seeds the queue with every pair of
// leaves adjacent in sorted order.
func newEngine(points []float64, order, rank []int, cfg Config) *engine {
	a := newArena(points, order, rank)

	var initial []pair
	if len(order) > 1 {
		initial = make([]pair, 0, len(order)-1)
		for pos := 0; pos+1 < len(order); pos++ {
			l, r := order[pos], order[pos+1]
			initial = append(initial, pair{
				left:  l,
				right: r,
				lo:    pos,
				key:   math.Abs(points[r] - points[l]),
			})
		}
	}

	return &engine{
		arena:  a,
		queue:  newNeighbourQueue(initial),
		rule:   cfg.CenterRule,
		logger: cfg.Logger,
	}
}

// candidate builds the queue entry for the adjacent clusters l and r.
func (e *engine) candidate(l, r int) pair {
	left, right := e.arena.at(l), e.arena.at(r)
	return pair{
		left:  l,
		right: r,
		lo:    left.Lo,
		key:   math.Abs(right.Center - left.Center),
	}
}

// run drains the queue and records the final counters.
func (e *engine) run() {
	for e.queue.len() > 0 {
		e.step()
	}

	e.stats.Pushes = e.queue.pushes
	e.stats.PeakQueue = e.queue.peak
	if e.logger != nil {
		e.logger.Debug("merge engine finished",
			"clusters", e.arena.len(),
			"merges", e.stats.Merges,
			"stale", e.stats.Stale,
			"pushes", e.stats.Pushes,
			"peak_queue", e.stats.PeakQueue,
		)
	}
}

// step pops one pair. A pair with a merged side is discarded; otherwise the
// two live, mutually adjacent clusters are merged and at most two new pairs
// are pushed for the merged node and its outer neighbours. Reports whether a
// merge happened.
func (e *engine) step() bool {
	p := e.queue.pop()
	l, r := p.left, p.right
	if e.arena.at(l).IsMerged() || e.arena.at(r).IsMerged() {
		e.stats.Stale++
		return false
	}

	center := e.rule.combine(e.arena.at(l), e.arena.at(r))
	id := e.arena.merge(l, r, center, p.key)
	e.stats.Merges++

	merged := e.arena.at(id)
	if ll := merged.Prev; e.arena.hasNeighbour(ll) {
		e.arena.at(ll).Next = id
		e.queue.push(e.candidate(ll, id))
	}
	if rr := merged.Next; e.arena.hasNeighbour(rr) {
		e.arena.at(rr).Prev = id
		e.queue.push(e.candidate(id, rr))
	}
	return true
}
