package sim

import "container/heap"

// candidate is a vertex and its most recently computed marginal gain.
// round is the selection round in which gain was computed.
type candidate struct {
	vertex int
	gain   float64
	round  int
}

// gainHeap implements a max-priority queue with deterministic ordering.
// Order by: gain (higher first) → vertex id (lower first)
type gainHeap struct {
	entries []candidate
}

func newGainHeap(entries []candidate) *gainHeap {
	h := &gainHeap{entries: entries}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *gainHeap) Len() int {
	return len(h.entries)
}

// Less implements heap.Interface with deterministic ordering
func (h *gainHeap) Less(i, j int) bool {
	ci, cj := h.entries[i], h.entries[j]
	if ci.gain != cj.gain {
		return ci.gain > cj.gain
	}
	return ci.vertex < cj.vertex
}

// Swap implements heap.Interface
func (h *gainHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

// Push implements heap.Interface
func (h *gainHeap) Push(x interface{}) {
	h.entries = append(h.entries, x.(candidate))
}

// Pop implements heap.Interface
func (h *gainHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[0 : n-1]
	return item
}

// front returns the best candidate without removing it. Panics if empty.
func (h *gainHeap) front() candidate {
	return h.entries[0]
}

// updateFront replaces the front candidate's gain, stamps it with the round
// it was computed in and restores heap order.
func (h *gainHeap) updateFront(gain float64, round int) {
	h.entries[0].gain = gain
	h.entries[0].round = round
	heap.Fix(h, 0)
}

// popFront removes and returns the best candidate.
func (h *gainHeap) popFront() candidate {
	return heap.Pop(h).(candidate)
}
