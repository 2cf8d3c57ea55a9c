package suite

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"drillbot/internal/ctxlog"
	"drillbot/internal/drill"
	"drillbot/internal/model"
	"drillbot/internal/report"
	"drillbot/internal/search"
	"drillbot/internal/storage"
	"drillbot/internal/terrain"
)

// Runner executes suites sequentially against a store. Jobs run in
// definition order so the results CSV is reproducible row for row.
type Runner struct {
	store storage.Store
	now   func() time.Time
	newID func() string
}

// NewRunner wires a runner to the store that will receive run records.
func NewRunner(store storage.Store) *Runner {
	return &Runner{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Outcome summarizes one executed suite.
type Outcome struct {
	SuiteID     string
	ResultsPath string
	Records     []report.Record
	RunIDs      []string
}

// Run executes every job of the suite, appends one CSV row per job, and
// persists the run records plus a suite summary.
func (r *Runner) Run(ctx context.Context, s Suite) (Outcome, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Info("suite started", "suite", s.Name, "jobs", len(s.Jobs), "results", s.ResultsPath)

	outcome := Outcome{
		SuiteID:     r.newID(),
		ResultsPath: s.ResultsPath,
	}

	for _, job := range s.Jobs {
		rec, run, err := r.runJob(ctx, s, job)
		if err != nil {
			return Outcome{}, fmt.Errorf("job %s/%s/%s: %w", job.MapPath, job.Strategy, job.Heuristic, err)
		}

		if err := report.AppendCSV(s.ResultsPath, rec); err != nil {
			return Outcome{}, fmt.Errorf("append results row: %w", err)
		}
		if err := r.store.SaveRun(ctx, run); err != nil {
			return Outcome{}, fmt.Errorf("save run %s: %w", run.ID, err)
		}

		logger.Info("job finished",
			"map", rec.Map,
			"algorithm", rec.Algorithm,
			"heuristic", rec.Heuristic,
			"solved", rec.Solved,
			"d", rec.D,
			"g", rec.G,
			"expanded", rec.E,
			"generated", rec.F,
		)
		outcome.Records = append(outcome.Records, rec)
		outcome.RunIDs = append(outcome.RunIDs, run.ID)
	}

	summary := model.SuiteSummary{
		VersionedRecord: storage.Stamp(),
		ID:              outcome.SuiteID,
		CreatedAtUTC:    r.now().UTC().Format(time.RFC3339),
		Name:            s.Name,
		ResultsPath:     s.ResultsPath,
		RunIDs:          outcome.RunIDs,
	}
	if err := r.store.SaveSuite(ctx, summary); err != nil {
		return Outcome{}, fmt.Errorf("save suite summary: %w", err)
	}

	logger.Info("suite finished", "suite", s.Name, "id", outcome.SuiteID)
	return outcome, nil
}

func (r *Runner) runJob(ctx context.Context, s Suite, job Job) (report.Record, model.Run, error) {
	grid, err := terrain.Load(job.MapPath)
	if err != nil {
		return report.Record{}, model.Run{}, err
	}
	problem, err := drill.NewProblem(grid)
	if err != nil {
		return report.Record{}, model.Run{}, err
	}

	opts := []search.Option[drill.State]{}
	if s.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions[drill.State](s.MaxExpansions))
	}
	if job.Strategy == search.AStar {
		h, err := drill.ParseHeuristic(job.Heuristic)
		if err != nil {
			return report.Record{}, model.Run{}, err
		}
		opts = append(opts, search.WithHeuristic(problem.Resolve(h)))
	}

	res := search.Run[drill.State, drill.Action](problem, job.Strategy, opts...)

	mapName := filepath.Base(job.MapPath)
	rec := report.NewRecord(mapName, job.Strategy, job.Heuristic, res)

	run := model.Run{
		VersionedRecord: storage.Stamp(),
		ID:              r.newID(),
		CreatedAtUTC:    r.now().UTC().Format(time.RFC3339),
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
	return rec, run, nil
}
