package search

import (
	"errors"
	"fmt"
)

// Strategy selects the frontier discipline for a run.
type Strategy int

const (
	BreadthFirst Strategy = iota
	DepthFirst
	AStar
)

// ErrUnknownStrategy reports a strategy name outside bfs, dfs, astar.
var ErrUnknownStrategy = errors.New("unknown search strategy")

// ParseStrategy maps a strategy name to its Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "bfs":
		return BreadthFirst, nil
	case "dfs":
		return DepthFirst, nil
	case "astar":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Strategies lists all disciplines in their reporting order.
func Strategies() []Strategy {
	return []Strategy{BreadthFirst, DepthFirst, AStar}
}

func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case AStar:
		return "astar"
	default:
		return "unknown"
	}
}

// Options configures a single run.
type Options[S comparable] struct {
	// Heuristic estimates remaining cost; consulted only by AStar.
	Heuristic func(S) float64
	// MaxExpansions caps work for callers that want a bound; 0 disables.
	MaxExpansions int
}

type Option[S comparable] func(*Options[S])

func WithHeuristic[S comparable](h func(S) float64) Option[S] {
	return func(o *Options[S]) { o.Heuristic = h }
}

func WithMaxExpansions[S comparable](n int) Option[S] {
	return func(o *Options[S]) { o.MaxExpansions = n }
}

// Run executes graph search over problem with the given discipline.
//
// The loop is identical for all strategies: pop per discipline, count the
// expansion, goal-test at expansion time, then generate successors. A
// successor whose state was already expanded or is already queued is not
// generated again, so Generated counts distinct states; under AStar a
// queued duplicate found via a strictly cheaper path re-parents the queued
// node instead (its insertion order, and therefore tie-breaking, is kept).
//
// Exhausting the frontier is a negative result, not an error.
func Run[S comparable, A any](problem Problem[S, A], strategy Strategy, opts ...Option[S]) Result[S, A] {
	var options Options[S]
	for _, opt := range opts {
		opt(&options)
	}

	heuristic := options.Heuristic
	if strategy != AStar || heuristic == nil {
		heuristic = func(S) float64 { return 0 }
	}

	var fr frontier
	switch strategy {
	case BreadthFirst:
		fr = &fifoFrontier{}
	case DepthFirst:
		fr = &lifoFrontier{}
	case AStar:
		fr = newPriorityFrontier()
	default:
		panic(fmt.Sprintf("search: unknown strategy %d", strategy))
	}

	start := problem.Start()
	nodes := []Node[S, A]{{State: start, Parent: -1, ExpansionOrder: -1}}
	fr.push(0, heuristic(start))

	inFrontier := map[S]int{start: 0}
	explored := make(map[S]struct{})
	expanded := 0

	result := Result[S, A]{Goal: -1}

	for fr.len() > 0 {
		if options.MaxExpansions > 0 && expanded >= options.MaxExpansions {
			result.Capped = true
			break
		}

		idx := fr.pop()
		state := nodes[idx].State
		delete(inFrontier, state)

		// Graph search: a state is expanded at most once.
		if _, done := explored[state]; done {
			continue
		}
		nodes[idx].ExpansionOrder = expanded
		expanded++

		if problem.IsGoal(state) {
			result.Goal = idx
			break
		}
		explored[state] = struct{}{}

		g := nodes[idx].G
		depth := nodes[idx].Depth
		for _, succ := range problem.Successors(state) {
			if succ.Cost < 0 {
				panic(fmt.Sprintf("search: negative step cost %v", succ.Cost))
			}
			if _, done := explored[succ.State]; done {
				continue
			}
			childG := g + succ.Cost
			if queued, ok := inFrontier[succ.State]; ok {
				if fr.improve(queued, childG+heuristic(succ.State)) {
					nodes[queued].Parent = idx
					nodes[queued].Action = succ.Action
					nodes[queued].G = childG
					nodes[queued].Depth = depth + 1
				}
				continue
			}
			child := Node[S, A]{
				State:          succ.State,
				Parent:         idx,
				Action:         succ.Action,
				G:              childG,
				Depth:          depth + 1,
				ExpansionOrder: -1,
			}
			nodes = append(nodes, child)
			childIdx := len(nodes) - 1
			inFrontier[succ.State] = childIdx
			fr.push(childIdx, childG+heuristic(succ.State))
		}
	}

	result.Nodes = nodes
	result.Expanded = expanded
	result.Generated = len(nodes)
	return result
}
