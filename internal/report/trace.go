package report

import (
	"fmt"
	"io"
	"strings"

	"drillbot/internal/drill"
	"drillbot/internal/search"
)

// WriteTrace prints the solution walk node by node, then the final
// metrics. Informed runs also show h(n) along the path.
func WriteTrace(w io.Writer, problem *drill.Problem, res search.Result[drill.State, drill.Action], algorithm string, heuristic func(drill.State) float64) error {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "ALGORITHM: %s\n", algorithm)
	fmt.Fprintln(w, rule)

	if !res.Found() {
		fmt.Fprintln(w, "WARNING! No solution found.")
		fmt.Fprintf(w, "nodes expanded=%d generated=%d\n", res.Expanded, res.Generated)
		return nil
	}

	fmt.Fprintln(w, "--- EXECUTION TRACE (SOLUTION) ---")
	idxs := res.PathIndices()
	for i, idx := range idxs {
		node := res.Nodes[idx]
		label := fmt.Sprintf("Node %d", i)
		if i == 0 {
			label = "Node 0 (starting node)"
		}
		action := "None"
		if i > 0 {
			action = node.Action.String()
		}
		if heuristic != nil {
			fmt.Fprintf(w, "%s: (depth:%d, total cost:%g, action:%s, h(n):%g, State: x=%d, y=%d, o=%s (%d))\n",
				label, node.Depth, node.G, action, heuristic(node.State), node.State.X, node.State.Y, node.State.O, node.State.O)
		} else {
			fmt.Fprintf(w, "%s: (depth:%d, total cost:%g, action:%s, State: x=%d, y=%d, o=%s (%d))\n",
				label, node.Depth, node.G, action, node.State.X, node.State.Y, node.State.O, node.State.O)
		}
	}

	fmt.Fprintln(w, "\n--- FINAL METRICS ---")
	fmt.Fprintf(w, "Node %d (final node)\n", len(idxs)-1)
	fmt.Fprintf(w, "Total path cost (g): %g\n", res.Cost())
	fmt.Fprintf(w, "Solution depth (d): %d\n", res.Depth())
	fmt.Fprintf(w, "Nodes expanded (#E): %d\n", res.Expanded)
	fmt.Fprintf(w, "Nodes generated (#F): %d\n", res.Generated)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	return nil
}

// ReplayCost applies the solution's actions from the start state and
// returns the final state and accumulated cost. It errors when an action
// is not applicable, which would indicate a broken solution.
func ReplayCost(problem *drill.Problem, actions []drill.Action) (drill.State, float64, error) {
	state := problem.Start()
	total := 0.0
	for i, action := range actions {
		found := false
		for _, succ := range problem.Successors(state) {
			if succ.Action == action {
				state = succ.State
				total += succ.Cost
				found = true
				break
			}
		}
		if !found {
			return state, total, fmt.Errorf("action %d (%s) not applicable in %s", i, action, state)
		}
	}
	return state, total, nil
}
