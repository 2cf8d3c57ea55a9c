// Package search implements a single generalized graph-search loop over an
// implicit state space, parameterized by frontier discipline: FIFO gives
// breadth-first, LIFO depth-first, and a stable priority queue over
// f = g + h gives A*.
package search

// Successor is one legal transition out of a state.
type Successor[S comparable, A any] struct {
	Action A
	State  S
	Cost   float64
}

// Problem is the state/action model the engine expands. Successors must
// return at most one entry per legal action, in a fixed deterministic
// order; that order is the tie-break for every discipline.
type Problem[S comparable, A any] interface {
	Start() S
	IsGoal(S) bool
	Successors(S) []Successor[S, A]
}

// Node is one entry of the search-tree arena. Parent is the arena index of
// the generating node (-1 for the root), so the whole tree can be
// reconstructed by an external visualizer from the slice alone. Arena order
// is generation order. ExpansionOrder is -1 for nodes never expanded.
type Node[S comparable, A any] struct {
	State          S
	Parent         int
	Action         A
	G              float64
	Depth          int
	ExpansionOrder int
}

// Result is the immutable outcome of one engine run. Goal is the arena
// index of the goal node, or -1 when the frontier was exhausted (a
// negative result, not an error: Expanded and Generated stay meaningful).
type Result[S comparable, A any] struct {
	Goal      int
	Nodes     []Node[S, A]
	Expanded  int
	Generated int
	Capped    bool
}

// Found reports whether a goal node was reached.
func (r Result[S, A]) Found() bool { return r.Goal >= 0 }

// Solution returns the action sequence from the root to the goal node.
// It is nil when no goal was found.
func (r Result[S, A]) Solution() []A {
	idxs := r.PathIndices()
	if idxs == nil {
		return nil
	}
	actions := make([]A, 0, len(idxs)-1)
	for _, i := range idxs[1:] {
		actions = append(actions, r.Nodes[i].Action)
	}
	return actions
}

// Path returns the state sequence from the root to the goal node.
func (r Result[S, A]) Path() []S {
	idxs := r.PathIndices()
	if idxs == nil {
		return nil
	}
	states := make([]S, 0, len(idxs))
	for _, i := range idxs {
		states = append(states, r.Nodes[i].State)
	}
	return states
}

// PathIndices walks the parent chain from the goal to the root and returns
// the arena indices in root-first order.
func (r Result[S, A]) PathIndices() []int {
	if !r.Found() {
		return nil
	}
	var back []int
	for i := r.Goal; i >= 0; i = r.Nodes[i].Parent {
		back = append(back, i)
	}
	for i, j := 0, len(back)-1; i < j; i, j = i+1, j-1 {
		back[i], back[j] = back[j], back[i]
	}
	return back
}

// Cost is the path cost g of the goal node, or 0 when no goal was found.
func (r Result[S, A]) Cost() float64 {
	if !r.Found() {
		return 0
	}
	return r.Nodes[r.Goal].G
}

// Depth is the action count of the solution, or 0 when no goal was found.
func (r Result[S, A]) Depth() int {
	if !r.Found() {
		return 0
	}
	return r.Nodes[r.Goal].Depth
}
