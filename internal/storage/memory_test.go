package storage

import (
	"context"
	"testing"

	"drillbot/internal/model"
)

func TestMemoryStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.Run{
		VersionedRecord: Stamp(),
		ID:              "run-1",
		CreatedAtUTC:    "2026-08-29T10:00:00Z",
		Map:             "cave_10x10.txt",
		Algorithm:       "astar",
		Heuristic:       "h_combined",
		Solved:          true,
		Depth:           5,
		Cost:            5,
		Expanded:        12,
		Generated:       20,
		Actions:         []string{"TURN_RIGHT", "DRILL"},
	}
	if err := store.SaveRun(ctx, input); err != nil {
		t.Fatalf("save run: %v", err)
	}

	output, ok, err := store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted run")
	}
	if output.Map != input.Map || output.Cost != input.Cost || len(output.Actions) != 2 {
		t.Fatalf("unexpected run: %+v", output)
	}
}

func TestMemoryStoreGetRunMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	_, ok, err := store.GetRun(ctx, "absent")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if ok {
		t.Fatal("expected miss for absent run")
	}
}

func TestMemoryStoreListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, run := range []model.Run{
		{VersionedRecord: Stamp(), ID: "run-old", CreatedAtUTC: "2026-08-28T09:00:00Z"},
		{VersionedRecord: Stamp(), ID: "run-new", CreatedAtUTC: "2026-08-29T09:00:00Z"},
		{VersionedRecord: Stamp(), ID: "run-mid", CreatedAtUTC: "2026-08-28T18:00:00Z"},
	} {
		if err := store.SaveRun(ctx, run); err != nil {
			t.Fatalf("save run %s: %v", run.ID, err)
		}
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].ID != "run-new" || runs[1].ID != "run-mid" || runs[2].ID != "run-old" {
		t.Fatalf("unexpected order: %s %s %s", runs[0].ID, runs[1].ID, runs[2].ID)
	}

	limited, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("list runs limited: %v", err)
	}
	if len(limited) != 2 || limited[0].ID != "run-new" {
		t.Fatalf("unexpected limited listing: %+v", limited)
	}
}

func TestMemoryStoreSaveRunOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	run := model.Run{VersionedRecord: Stamp(), ID: "run-1", Solved: false}
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("save run: %v", err)
	}
	run.Solved = true
	run.Cost = 7
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("resave run: %v", err)
	}

	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected single run after overwrite, got %d", len(runs))
	}
	if !runs[0].Solved || runs[0].Cost != 7 {
		t.Fatalf("expected updated run, got %+v", runs[0])
	}
}

func TestMemoryStoreSuiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.SuiteSummary{
		VersionedRecord: Stamp(),
		ID:              "suite-1",
		CreatedAtUTC:    "2026-08-29T10:00:00Z",
		Name:            "nightly",
		ResultsPath:     "results.csv",
		RunIDs:          []string{"run-1", "run-2"},
	}
	if err := store.SaveSuite(ctx, input); err != nil {
		t.Fatalf("save suite: %v", err)
	}

	output, ok, err := store.GetSuite(ctx, "suite-1")
	if err != nil {
		t.Fatalf("get suite: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted suite")
	}
	if output.Name != "nightly" || len(output.RunIDs) != 2 {
		t.Fatalf("unexpected suite: %+v", output)
	}

	suites, err := store.ListSuites(ctx, 0)
	if err != nil {
		t.Fatalf("list suites: %v", err)
	}
	if len(suites) != 1 || suites[0].ID != "suite-1" {
		t.Fatalf("unexpected suite listing: %+v", suites)
	}
}

func TestMemoryStoreCopiesActions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	actions := []string{"DRILL"}
	run := model.Run{VersionedRecord: Stamp(), ID: "run-1", Actions: actions}
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("save run: %v", err)
	}
	actions[0] = "TURN_LEFT"

	output, _, err := store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if output.Actions[0] != "DRILL" {
		t.Fatalf("stored actions aliased caller slice: %+v", output.Actions)
	}
}
