// Package report packages a finished search into an immutable result
// record and serializes it: one CSV row per invocation for the results
// sink, a solution trace for humans, and a DOT dump of the search tree for
// external visualizers.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"drillbot/internal/drill"
	"drillbot/internal/search"
)

// BlindHeuristic is the heuristic column value for bfs/dfs rows.
const BlindHeuristic = "N/A"

// Record is the per-invocation result row: solution depth d, cost g, and
// the expanded/generated counters. Solved distinguishes a genuine
// zero-cost solution from an exhausted frontier.
type Record struct {
	Map       string
	Algorithm string
	Heuristic string
	Solved    bool
	D         int
	G         float64
	E         int
	F         int
}

// NewRecord builds the row for one finished run. heuristic should be
// BlindHeuristic for the blind strategies.
func NewRecord(mapName string, strategy search.Strategy, heuristic string, res search.Result[drill.State, drill.Action]) Record {
	return Record{
		Map:       mapName,
		Algorithm: strategy.String(),
		Heuristic: heuristic,
		Solved:    res.Found(),
		D:         res.Depth(),
		G:         res.Cost(),
		E:         res.Expanded,
		F:         res.Generated,
	}
}

var csvHeader = []string{"map", "algorithm", "heuristic", "solved", "d", "g", "#E", "#F"}

func (r Record) row() []string {
	return []string{
		r.Map,
		r.Algorithm,
		r.Heuristic,
		strconv.FormatBool(r.Solved),
		strconv.Itoa(r.D),
		strconv.FormatFloat(r.G, 'g', -1, 64),
		strconv.Itoa(r.E),
		strconv.Itoa(r.F),
	}
}

// AppendCSV appends the record as one row to the results file at path,
// writing the header first when the file is new or empty.
func AppendCSV(path string, rec Record) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
	}
	if err := w.Write(rec.row()); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// ReadCSV loads all records from a results file.
func ReadCSV(r io.Reader) ([]Record, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows[0]) != len(csvHeader) || rows[0][0] != csvHeader[0] {
		return nil, fmt.Errorf("unexpected results header %v", rows[0])
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("results row %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (Record, error) {
	if len(row) != len(csvHeader) {
		return Record{}, fmt.Errorf("want %d columns, got %d", len(csvHeader), len(row))
	}
	solved, err := strconv.ParseBool(row[3])
	if err != nil {
		return Record{}, fmt.Errorf("solved: %w", err)
	}
	d, err := strconv.Atoi(row[4])
	if err != nil {
		return Record{}, fmt.Errorf("d: %w", err)
	}
	g, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return Record{}, fmt.Errorf("g: %w", err)
	}
	e, err := strconv.Atoi(row[6])
	if err != nil {
		return Record{}, fmt.Errorf("#E: %w", err)
	}
	f, err := strconv.Atoi(row[7])
	if err != nil {
		return Record{}, fmt.Errorf("#F: %w", err)
	}
	return Record{
		Map:       row[0],
		Algorithm: row[1],
		Heuristic: row[2],
		Solved:    solved,
		D:         d,
		G:         g,
		E:         e,
		F:         f,
	}, nil
}
