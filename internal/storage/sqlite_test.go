//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"drillbot/internal/model"
)

func TestSQLiteStoreRunAndSuiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "drillbot.db")

	store := NewSQLiteStore(dbPath)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	run := model.Run{
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
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("save run: %v", err)
	}

	loadedRun, ok, err := store.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok {
		t.Fatalf("expected run %s", run.ID)
	}
	if loadedRun.Map != run.Map || loadedRun.Cost != run.Cost || len(loadedRun.Actions) != 2 {
		t.Fatalf("unexpected run loaded: %+v", loadedRun)
	}

	older := model.Run{VersionedRecord: Stamp(), ID: "run-0", CreatedAtUTC: "2026-08-28T10:00:00Z"}
	if err := store.SaveRun(ctx, older); err != nil {
		t.Fatalf("save older run: %v", err)
	}
	runs, err := store.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "run-1" || runs[1].ID != "run-0" {
		t.Fatalf("unexpected run listing: %+v", runs)
	}
	limited, err := store.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("list runs limited: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "run-1" {
		t.Fatalf("unexpected limited listing: %+v", limited)
	}

	suite := model.SuiteSummary{
		VersionedRecord: Stamp(),
		ID:              "suite-1",
		CreatedAtUTC:    "2026-08-29T10:05:00Z",
		Name:            "nightly",
		ResultsPath:     "results.csv",
		RunIDs:          []string{"run-0", "run-1"},
	}
	if err := store.SaveSuite(ctx, suite); err != nil {
		t.Fatalf("save suite: %v", err)
	}
	loadedSuite, ok, err := store.GetSuite(ctx, suite.ID)
	if err != nil {
		t.Fatalf("get suite: %v", err)
	}
	if !ok {
		t.Fatalf("expected suite %s", suite.ID)
	}
	if loadedSuite.Name != suite.Name || len(loadedSuite.RunIDs) != 2 {
		t.Fatalf("unexpected suite loaded: %+v", loadedSuite)
	}

	suites, err := store.ListSuites(ctx, 0)
	if err != nil {
		t.Fatalf("list suites: %v", err)
	}
	if len(suites) != 1 || suites[0].ID != "suite-1" {
		t.Fatalf("unexpected suite listing: %+v", suites)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "drillbot.db")

	first := NewSQLiteStore(dbPath)
	if err := first.Init(ctx); err != nil {
		t.Fatalf("first init: %v", err)
	}
	run := model.Run{VersionedRecord: Stamp(), ID: "persisted-run"}
	if err := first.SaveRun(ctx, run); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}

	second := NewSQLiteStore(dbPath)
	if err := second.Init(ctx); err != nil {
		t.Fatalf("second init: %v", err)
	}
	t.Cleanup(func() {
		_ = second.Close()
	})

	loaded, ok, err := second.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if !ok || loaded.ID != run.ID {
		t.Fatalf("expected persisted run, got ok=%t value=%+v", ok, loaded)
	}
}

func TestSQLiteStoreRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "drillbot.db"))
	_, _, err := store.GetRun(context.Background(), "run-1")
	if err == nil {
		t.Fatal("expected error before Init")
	}
}
