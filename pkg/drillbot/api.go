// Package drillbot is the embedding surface: a Client owning the store and
// the results sink, with one method per top-level operation.
package drillbot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"drillbot/internal/drill"
	"drillbot/internal/model"
	"drillbot/internal/report"
	"drillbot/internal/search"
	"drillbot/internal/storage"
	"drillbot/internal/suite"
	"drillbot/internal/terrain"
)

const (
	defaultDBPath      = "drillbot.db"
	defaultResultsPath = "results.csv"
	defaultAlgorithm   = "astar"
	defaultHeuristic   = "h"
)

type Options struct {
	StoreKind   string
	DBPath      string
	ResultsPath string
}

type Client struct {
	store       storage.Store
	resultsPath string
}

type SolveRequest struct {
	MapPath       string
	Algorithm     string
	Heuristic     string
	MaxExpansions int

	// AppendResults adds the run's row to the results CSV.
	AppendResults bool
	// Trace receives the human-readable solution trace when non-nil.
	Trace io.Writer
	// DOTPath receives the search tree in DOT form when non-empty.
	DOTPath string
}

type SolveSummary struct {
	RunID     string
	Map       string
	Algorithm string
	Heuristic string
	Solved    bool
	Capped    bool
	Depth     int
	Cost      float64
	Expanded  int
	Generated int
	Actions   []string
}

type BenchRequest struct {
	SuitePath     string
	MaxExpansions int
}

type BenchSummary struct {
	SuiteID     string
	Name        string
	ResultsPath string
	Jobs        int
	RunIDs      []string
}

type RunsRequest struct {
	Limit int
}

type RunItem struct {
	RunID        string
	CreatedAtUTC string
	Map          string
	Algorithm    string
	Heuristic    string
	Solved       bool
	Depth        int
	Cost         float64
	Expanded     int
	Generated    int
	Actions      []string
}

type SuiteItem struct {
	SuiteID      string
	CreatedAtUTC string
	Name         string
	ResultsPath  string
	Runs         int
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	resultsPath := opts.ResultsPath
	if resultsPath == "" {
		resultsPath = defaultResultsPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		store:       store,
		resultsPath: resultsPath,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

// ResultsPath is the CSV file rows are appended to.
func (c *Client) ResultsPath() string { return c.resultsPath }

// Solve runs one algorithm on one map and persists the outcome.
func (c *Client) Solve(ctx context.Context, req SolveRequest) (SolveSummary, error) {
	if req.MapPath == "" {
		return SolveSummary{}, fmt.Errorf("map path is required")
	}
	if req.Algorithm == "" {
		req.Algorithm = defaultAlgorithm
	}
	strategy, err := search.ParseStrategy(req.Algorithm)
	if err != nil {
		return SolveSummary{}, err
	}

	heuristicName := report.BlindHeuristic
	var heuristic drill.Heuristic
	if strategy == search.AStar {
		heuristicName = req.Heuristic
		if heuristicName == "" {
			heuristicName = defaultHeuristic
		}
		heuristic, err = drill.ParseHeuristic(heuristicName)
		if err != nil {
			return SolveSummary{}, err
		}
	} else if req.Heuristic != "" {
		return SolveSummary{}, fmt.Errorf("algorithm %q does not take a heuristic", req.Algorithm)
	}

	grid, err := terrain.Load(req.MapPath)
	if err != nil {
		return SolveSummary{}, err
	}
	problem, err := drill.NewProblem(grid)
	if err != nil {
		return SolveSummary{}, err
	}

	opts := []search.Option[drill.State]{}
	if req.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions[drill.State](req.MaxExpansions))
	}
	var hFunc func(drill.State) float64
	if strategy == search.AStar {
		hFunc = problem.Resolve(heuristic)
		opts = append(opts, search.WithHeuristic(hFunc))
	}

	res := search.Run[drill.State, drill.Action](problem, strategy, opts...)

	mapName := filepath.Base(req.MapPath)
	rec := report.NewRecord(mapName, strategy, heuristicName, res)

	run := model.Run{
		VersionedRecord: storage.Stamp(),
		ID:              uuid.NewString(),
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339),
		Map:             mapName,
		Algorithm:       rec.Algorithm,
		Heuristic:       rec.Heuristic,
		Solved:          rec.Solved,
		Depth:           rec.D,
		Cost:            rec.G,
		Expanded:        rec.E,
		Generated:       rec.F,
	}
	for _, a := range res.Solution() {
		run.Actions = append(run.Actions, a.String())
	}
	if err := c.store.SaveRun(ctx, run); err != nil {
		return SolveSummary{}, err
	}

	if req.AppendResults {
		if err := report.AppendCSV(c.resultsPath, rec); err != nil {
			return SolveSummary{}, fmt.Errorf("append results row: %w", err)
		}
	}
	if req.Trace != nil {
		if err := report.WriteTrace(req.Trace, problem, res, rec.Algorithm, hFunc); err != nil {
			return SolveSummary{}, fmt.Errorf("write trace: %w", err)
		}
	}
	if req.DOTPath != "" {
		f, err := os.Create(req.DOTPath)
		if err != nil {
			return SolveSummary{}, err
		}
		if err := report.WriteDOT(f, res); err != nil {
			_ = f.Close()
			return SolveSummary{}, fmt.Errorf("write search tree: %w", err)
		}
		if err := f.Close(); err != nil {
			return SolveSummary{}, err
		}
	}

	return SolveSummary{
		RunID:     run.ID,
		Map:       run.Map,
		Algorithm: run.Algorithm,
		Heuristic: run.Heuristic,
		Solved:    run.Solved,
		Capped:    res.Capped,
		Depth:     run.Depth,
		Cost:      run.Cost,
		Expanded:  run.Expanded,
		Generated: run.Generated,
		Actions:   run.Actions,
	}, nil
}

// Bench loads a suite file and executes every suite it defines.
func (c *Client) Bench(ctx context.Context, req BenchRequest) ([]BenchSummary, error) {
	if req.SuitePath == "" {
		return nil, fmt.Errorf("suite path is required")
	}

	suites, err := suite.LoadFile(req.SuitePath, suite.Defaults{
		ResultsPath:   c.resultsPath,
		MaxExpansions: req.MaxExpansions,
	})
	if err != nil {
		return nil, err
	}

	runner := suite.NewRunner(c.store)
	summaries := make([]BenchSummary, 0, len(suites))
	for _, s := range suites {
		outcome, err := runner.Run(ctx, s)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, BenchSummary{
			SuiteID:     outcome.SuiteID,
			Name:        s.Name,
			ResultsPath: outcome.ResultsPath,
			Jobs:        len(outcome.Records),
			RunIDs:      outcome.RunIDs,
		})
	}
	return summaries, nil
}

// Runs lists persisted runs, newest first.
func (c *Client) Runs(ctx context.Context, req RunsRequest) ([]RunItem, error) {
	runs, err := c.store.ListRuns(ctx, req.Limit)
	if err != nil {
		return nil, err
	}
	items := make([]RunItem, 0, len(runs))
	for _, run := range runs {
		items = append(items, runItem(run))
	}
	return items, nil
}

// Run fetches one persisted run by id.
func (c *Client) Run(ctx context.Context, id string) (RunItem, bool, error) {
	run, ok, err := c.store.GetRun(ctx, id)
	if err != nil || !ok {
		return RunItem{}, ok, err
	}
	return runItem(run), true, nil
}

// Suites lists persisted suite summaries, newest first.
func (c *Client) Suites(ctx context.Context, limit int) ([]SuiteItem, error) {
	suites, err := c.store.ListSuites(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]SuiteItem, 0, len(suites))
	for _, s := range suites {
		items = append(items, SuiteItem{
			SuiteID:      s.ID,
			CreatedAtUTC: s.CreatedAtUTC,
			Name:         s.Name,
			ResultsPath:  s.ResultsPath,
			Runs:         len(s.RunIDs),
		})
	}
	return items, nil
}

func runItem(run model.Run) RunItem {
	return RunItem{
		RunID:        run.ID,
		CreatedAtUTC: run.CreatedAtUTC,
		Map:          run.Map,
		Algorithm:    run.Algorithm,
		Heuristic:    run.Heuristic,
		Solved:       run.Solved,
		Depth:        run.Depth,
		Cost:         run.Cost,
		Expanded:     run.Expanded,
		Generated:    run.Generated,
		Actions:      run.Actions,
	}
}
