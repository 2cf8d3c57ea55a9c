package terrain

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Map file format (same as the reference map generator):
//
//	rows cols
//	<rows lines of cols hardness values; "X" marks an impassable cell>
//	x0 y0 o0          start pose
//	xg yg og          goal pose (og=8: orientation irrelevant)
//
// Hardness values must be positive.

const impassableMark = "X"

// Load reads a map file from disk.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", path, err)
	}
	return g, nil
}

// Parse reads a map in the on-disk format from r.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)

	fields, err := nextFields(sc)
	if err != nil {
		return nil, fmt.Errorf("read dimensions: %w", err)
	}
	if len(fields) != 2 {
		return nil, fmt.Errorf("dimensions line: want 2 fields, got %d", len(fields))
	}
	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("cols: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("dimensions %dx%d: must be positive", rows, cols)
	}

	hardness := make([][]float64, rows)
	minHardness := math.Inf(1)
	for i := 0; i < rows; i++ {
		fields, err := nextFields(sc)
		if err != nil {
			return nil, fmt.Errorf("hardness row %d: %w", i, err)
		}
		if len(fields) != cols {
			return nil, fmt.Errorf("hardness row %d: want %d values, got %d", i, cols, len(fields))
		}
		row := make([]float64, cols)
		for j, field := range fields {
			if field == impassableMark {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("hardness row %d col %d: %w", i, j, err)
			}
			if v <= 0 {
				return nil, fmt.Errorf("hardness row %d col %d: value %v must be positive", i, j, v)
			}
			row[j] = v
			if v < minHardness {
				minHardness = v
			}
		}
		hardness[i] = row
	}
	if math.IsInf(minHardness, 1) {
		return nil, fmt.Errorf("map has no traversable cells")
	}

	start, err := parsePose(sc, "start")
	if err != nil {
		return nil, err
	}
	goal, err := parsePose(sc, "goal")
	if err != nil {
		return nil, err
	}
	if start.O < 0 || start.O > 7 {
		return nil, fmt.Errorf("start orientation %d: must be in 0..7", start.O)
	}
	if goal.O < 0 || goal.O > 8 {
		return nil, fmt.Errorf("goal orientation %d: must be in 0..8", goal.O)
	}

	return &Grid{
		rows:        rows,
		cols:        cols,
		hardness:    hardness,
		minHardness: minHardness,
		start:       start,
		goal:        goal,
	}, nil
}

func parsePose(sc *bufio.Scanner, label string) (Pose, error) {
	fields, err := nextFields(sc)
	if err != nil {
		return Pose{}, fmt.Errorf("read %s pose: %w", label, err)
	}
	if len(fields) != 3 {
		return Pose{}, fmt.Errorf("%s pose: want 3 fields, got %d", label, len(fields))
	}
	var vals [3]int
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return Pose{}, fmt.Errorf("%s pose field %d: %w", label, i, err)
		}
		vals[i] = v
	}
	return Pose{X: vals[0], Y: vals[1], O: vals[2]}, nil
}

func nextFields(sc *bufio.Scanner) ([]string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		return strings.Fields(line), nil
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}
