package drill

import (
	"errors"
	"fmt"

	"drillbot/internal/search"
	"drillbot/internal/terrain"
)

// ErrInvalidConfiguration rejects a map whose start or goal cell cannot be
// occupied. It is reported before any expansion begins.
var ErrInvalidConfiguration = errors.New("invalid problem configuration")

// State is one vertex of the implicit search graph: a position plus the
// robot's heading. Two states are equal iff both fields match.
type State struct {
	X int
	Y int
	O Orientation
}

func (s State) Cell() terrain.Cell { return terrain.Cell{X: s.X, Y: s.Y} }

func (s State) String() string {
	return fmt.Sprintf("(%d,%d,%s)", s.X, s.Y, s.O)
}

// Successor is a legal transition with its step cost.
type Successor = search.Successor[State, Action]

// Problem binds a terrain grid to the oriented action model.
type Problem struct {
	grid     *terrain.Grid
	start    State
	goal     terrain.Pose
	turnCost float64
}

type ProblemOption func(*Problem)

// WithTurnCost overrides the fixed cost of a 45-degree turn. Zero disables
// orientation cost entirely.
func WithTurnCost(c float64) ProblemOption {
	return func(p *Problem) { p.turnCost = c }
}

// NewProblem validates start and goal against the grid and returns the
// problem. The default turn cost is 1, matching the reference maps.
func NewProblem(grid *terrain.Grid, opts ...ProblemOption) (*Problem, error) {
	start := grid.Start()
	goal := grid.Goal()

	p := &Problem{
		grid:     grid,
		start:    State{X: start.X, Y: start.Y, O: Orientation(start.O)},
		goal:     goal,
		turnCost: 1,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.turnCost < 0 {
		return nil, fmt.Errorf("%w: turn cost %v is negative", ErrInvalidConfiguration, p.turnCost)
	}
	if !grid.Traversable(terrain.Cell{X: start.X, Y: start.Y}) {
		return nil, fmt.Errorf("%w: start (%d,%d) is not traversable", ErrInvalidConfiguration, start.X, start.Y)
	}
	if !grid.Traversable(terrain.Cell{X: goal.X, Y: goal.Y}) {
		return nil, fmt.Errorf("%w: goal (%d,%d) is not traversable", ErrInvalidConfiguration, goal.X, goal.Y)
	}
	return p, nil
}

func (p *Problem) Grid() *terrain.Grid { return p.grid }

func (p *Problem) Start() State { return p.start }

// GoalState returns the goal pose; its orientation is OrientationAny when
// the map leaves the final heading free.
func (p *Problem) GoalState() terrain.Pose { return p.goal }

// IsGoal compares position, and heading only when the map pins the goal
// orientation.
func (p *Problem) IsGoal(s State) bool {
	if s.X != p.goal.X || s.Y != p.goal.Y {
		return false
	}
	return p.goal.O == OrientationAny || int(s.O) == p.goal.O
}

// Successors lists the legal transitions out of s in a fixed order:
// TurnLeft, TurnRight, then Drill when the forward cell is traversable.
// The order is part of the contract; it decides tie-breaking for every
// search discipline.
func (p *Problem) Successors(s State) []search.Successor[State, Action] {
	succs := make([]search.Successor[State, Action], 0, 3)
	succs = append(succs,
		search.Successor[State, Action]{
			Action: TurnLeft,
			State:  State{X: s.X, Y: s.Y, O: s.O.Left()},
			Cost:   p.turnCost,
		},
		search.Successor[State, Action]{
			Action: TurnRight,
			State:  State{X: s.X, Y: s.Y, O: s.O.Right()},
			Cost:   p.turnCost,
		},
	)

	dx, dy := s.O.Delta()
	dest := terrain.Cell{X: s.X + dx, Y: s.Y + dy}
	if hardness, err := p.grid.HardnessAt(dest); err == nil {
		succs = append(succs, search.Successor[State, Action]{
			Action: Drill,
			State:  State{X: dest.X, Y: dest.Y, O: s.O},
			Cost:   hardness,
		})
	}
	return succs
}
