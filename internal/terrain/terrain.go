// Package terrain holds the immutable drilling map: a rectangular grid of
// per-cell hardness values plus the start and goal poses read from a map file.
package terrain

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrImpassable  = errors.New("cell is impassable")
)

// Cell addresses one grid position. X is the row (grows south), Y the
// column (grows east), matching the map file layout.
type Cell struct {
	X int
	Y int
}

// Pose is a cell plus an orientation index as read from the map file.
// Orientation 8 on the goal pose means orientation is irrelevant.
type Pose struct {
	X int
	Y int
	O int
}

// Grid is an immutable hardness map. Impassable cells carry hardness 0
// internally and are never returned by HardnessAt.
type Grid struct {
	rows        int
	cols        int
	hardness    [][]float64
	minHardness float64
	start       Pose
	goal        Pose
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) Start() Pose { return g.start }
func (g *Grid) Goal() Pose  { return g.goal }

// MinHardness is the smallest hardness over all traversable cells.
// Heuristics use it as a per-step cost lower bound.
func (g *Grid) MinHardness() float64 { return g.minHardness }

func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.rows && c.Y >= 0 && c.Y < g.cols
}

// Traversable reports whether c is inside the grid and not impassable.
func (g *Grid) Traversable(c Cell) bool {
	return g.InBounds(c) && g.hardness[c.X][c.Y] > 0
}

// HardnessAt returns the drilling cost of entering c.
func (g *Grid) HardnessAt(c Cell) (float64, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("cell (%d,%d): %w", c.X, c.Y, ErrOutOfBounds)
	}
	h := g.hardness[c.X][c.Y]
	if h <= 0 {
		return 0, fmt.Errorf("cell (%d,%d): %w", c.X, c.Y, ErrImpassable)
	}
	return h, nil
}
