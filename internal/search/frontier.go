package search

import "container/heap"

// frontier holds arena indices of generated-but-unexpanded nodes. All three
// disciplines share this surface so the engine loop stays identical; only
// the priority frontier uses the f value and supports improve.
type frontier interface {
	push(arena int, f float64)
	pop() int
	len() int
	// improve re-keys an already-queued arena entry to a strictly better f.
	// It reports false when the discipline ignores priorities.
	improve(arena int, f float64) bool
}

// fifoFrontier pops in insertion order (breadth-first).
type fifoFrontier struct {
	items []int
	head  int
}

func (q *fifoFrontier) push(arena int, _ float64) { q.items = append(q.items, arena) }

func (q *fifoFrontier) pop() int {
	arena := q.items[q.head]
	q.head++
	if q.head > len(q.items)/2 && q.head > 32 {
		q.items = append([]int(nil), q.items[q.head:]...)
		q.head = 0
	}
	return arena
}

func (q *fifoFrontier) len() int                  { return len(q.items) - q.head }
func (q *fifoFrontier) improve(int, float64) bool { return false }

// lifoFrontier pops the most recently pushed entry (depth-first).
type lifoFrontier struct {
	items []int
}

func (q *lifoFrontier) push(arena int, _ float64) { q.items = append(q.items, arena) }

func (q *lifoFrontier) pop() int {
	n := len(q.items) - 1
	arena := q.items[n]
	q.items = q.items[:n]
	return arena
}

func (q *lifoFrontier) len() int                  { return len(q.items) }
func (q *lifoFrontier) improve(int, float64) bool { return false }

// pqItem is a queued node with its priority. seq is the original insertion
// sequence number; ties on f break FIFO by seq, and an improve keeps the
// original seq so the tie-break stays reproducible.
type pqItem struct {
	arena   int
	f       float64
	seq     int
	heapIdx int
}

type pqHeap []*pqItem

func (h pqHeap) Len() int { return len(h) }

func (h pqHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h pqHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIdx = i
	h[j].heapIdx = j
}

func (h *pqHeap) Push(x any) {
	item := x.(*pqItem)
	item.heapIdx = len(*h)
	*h = append(*h, item)
}

func (h *pqHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// priorityFrontier orders by f, stable on insertion order among equals.
type priorityFrontier struct {
	heap    pqHeap
	byArena map[int]*pqItem
	nextSeq int
}

func newPriorityFrontier() *priorityFrontier {
	return &priorityFrontier{byArena: make(map[int]*pqItem)}
}

func (q *priorityFrontier) push(arena int, f float64) {
	item := &pqItem{arena: arena, f: f, seq: q.nextSeq}
	q.nextSeq++
	heap.Push(&q.heap, item)
	q.byArena[arena] = item
}

func (q *priorityFrontier) pop() int {
	item := heap.Pop(&q.heap).(*pqItem)
	delete(q.byArena, item.arena)
	return item.arena
}

func (q *priorityFrontier) len() int { return len(q.heap) }

func (q *priorityFrontier) improve(arena int, f float64) bool {
	item, ok := q.byArena[arena]
	if !ok || f >= item.f {
		return false
	}
	item.f = f
	heap.Fix(&q.heap, item.heapIdx)
	return true
}
