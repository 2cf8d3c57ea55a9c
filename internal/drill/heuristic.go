package drill

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownHeuristic reports a heuristic name outside the closed set.
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// ParseHeuristic maps a heuristic name to its Heuristic value.
func ParseHeuristic(name string) (Heuristic, error) {
	for _, h := range Heuristics() {
		if h.String() == name {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// Heuristic is a closed enumeration of the cost-estimation functions.
// Selection by name happens in the driver layer; the engine only ever sees
// the resolved function, so an unknown heuristic cannot reach the core.
type Heuristic int

const (
	// Manhattan distance to the goal cell; ignores terrain and heading.
	Manhattan Heuristic = iota
	// Chebyshev distance; the step-count bound for 8-connected movement.
	Chebyshev
	// Euclidean straight-line distance.
	Euclidean
	// MinHardness scales Chebyshev by the cheapest cell on the map, a lower
	// bound on accumulated drilling cost.
	MinHardness
	// Combined adds a turn lower bound to MinHardness. Recommended default:
	// it is the only variant aware of both terrain and heading.
	Combined
)

func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "h"
	case Chebyshev:
		return "h_chebyshev"
	case Euclidean:
		return "h_euclidean"
	case MinHardness:
		return "h_minhardness"
	case Combined:
		return "h_combined"
	default:
		return "unknown"
	}
}

// Heuristics lists all variants in their reporting order.
func Heuristics() []Heuristic {
	return []Heuristic{Manhattan, Chebyshev, Euclidean, MinHardness, Combined}
}

// Resolve binds a heuristic variant to this problem as a pure function of
// the state. Every returned function is non-negative and evaluates to 0 on
// goal states.
func (p *Problem) Resolve(h Heuristic) func(State) float64 {
	switch h {
	case Chebyshev:
		return func(s State) float64 {
			return float64(chebyshev(s.X-p.goal.X, s.Y-p.goal.Y))
		}
	case Euclidean:
		return func(s State) float64 {
			dx := float64(s.X - p.goal.X)
			dy := float64(s.Y - p.goal.Y)
			return math.Sqrt(dx*dx + dy*dy)
		}
	case MinHardness:
		return func(s State) float64 {
			return float64(chebyshev(s.X-p.goal.X, s.Y-p.goal.Y)) * p.grid.MinHardness()
		}
	case Combined:
		return p.combined
	default:
		return func(s State) float64 {
			return math.Abs(float64(s.X-p.goal.X)) + math.Abs(float64(s.Y-p.goal.Y))
		}
	}
}

// combined lower-bounds the remaining cost as drilling plus turning:
// Chebyshev steps each cost at least the map's minimum hardness, and the
// robot must rotate both into a heading that reduces Chebyshev distance and
// (when the goal pins one) into the goal heading. Admissible for turn cost
// 1 and integer hardness; for other turn costs the turn term scales with
// the configured cost and the bound should be validated empirically.
func (p *Problem) combined(s State) float64 {
	dx := p.goal.X - s.X
	dy := p.goal.Y - s.Y
	adx, ady := abs(dx), abs(dy)
	drillLB := float64(max(adx, ady)) * p.grid.MinHardness()

	// Already on the goal cell: only the final heading can cost anything.
	if adx == 0 && ady == 0 {
		if p.goal.O == OrientationAny {
			return 0
		}
		return float64(TurnDistance(s.O, Orientation(p.goal.O))) * p.turnCost
	}

	// Headings that strictly reduce the Chebyshev distance.
	var progress []Orientation
	switch {
	case adx > ady:
		progress = []Orientation{headingFor(sign(dx), 0)}
	case ady > adx:
		progress = []Orientation{headingFor(0, sign(dy))}
	default:
		progress = []Orientation{headingFor(sign(dx), sign(dy))}
	}

	turnsNow := math.MaxInt
	for _, o := range progress {
		if d := TurnDistance(s.O, o); d < turnsNow {
			turnsNow = d
		}
	}

	turnsEnd := 0
	if p.goal.O != OrientationAny {
		turnsEnd = math.MaxInt
		for _, o := range progress {
			if d := TurnDistance(Orientation(p.goal.O), o); d < turnsEnd {
				turnsEnd = d
			}
		}
	}

	return drillLB + float64(max(turnsNow, turnsEnd))*p.turnCost
}

func chebyshev(dx, dy int) int { return max(abs(dx), abs(dy)) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
