package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"drillbot/internal/config"
	driller "drillbot/pkg/drillbot"
)

const testMap = `3 3
1 1 1
1 1 1
1 1 1
0 0 0
2 2 8
`

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		StoreKind:   "memory",
		DBPath:      filepath.Join(t.TempDir(), "drillbot.db"),
		ResultsPath: filepath.Join(t.TempDir(), "results.csv"),
		LogLevel:    "error",
		LogFormat:   "text",
	}
}

func writeTestMap(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uniform_3x3.txt")
	if err := os.WriteFile(path, []byte(testMap), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("drain stdout: %v", err)
	}
	return buf.String(), runErr
}

func TestSolveCommandJSON(t *testing.T) {
	cfg := testConfig(t)
	mapPath := writeTestMap(t)

	out, err := captureStdout(t, func() error {
		return run(context.Background(), cfg, []string{"solve", "-a", "astar", "-heuristic", "h_combined", "-json", mapPath})
	})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	var summary driller.SolveSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v\noutput: %s", err, out)
	}
	if !summary.Solved || summary.Cost != 5 || summary.Depth != 5 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Heuristic != "h_combined" {
		t.Fatalf("unexpected heuristic: %s", summary.Heuristic)
	}
}

func TestSolveCommandTraceAndTree(t *testing.T) {
	cfg := testConfig(t)
	mapPath := writeTestMap(t)
	treePath := filepath.Join(t.TempDir(), "tree.dot")

	out, err := captureStdout(t, func() error {
		return run(context.Background(), cfg, []string{"solve", "-a", "bfs", "-trace", "-tree", treePath, "-append", mapPath})
	})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	if !strings.Contains(out, "ALGORITHM: bfs") || !strings.Contains(out, "FINAL METRICS") {
		t.Fatalf("expected trace in output:\n%s", out)
	}
	if !strings.Contains(out, "solved=true") {
		t.Fatalf("expected summary line in output:\n%s", out)
	}

	tree, err := os.ReadFile(treePath)
	if err != nil {
		t.Fatalf("read tree: %v", err)
	}
	if !strings.HasPrefix(string(tree), "digraph searchtree") {
		t.Fatalf("unexpected tree file: %q", string(tree)[:40])
	}

	results, err := os.ReadFile(cfg.ResultsPath)
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	if !strings.Contains(string(results), "uniform_3x3.txt") {
		t.Fatalf("results row missing:\n%s", string(results))
	}
}

func TestSolveCommandRejectsBlindHeuristic(t *testing.T) {
	cfg := testConfig(t)
	mapPath := writeTestMap(t)

	_, err := captureStdout(t, func() error {
		return run(context.Background(), cfg, []string{"solve", "-a", "bfs", "-heuristic", "h", mapPath})
	})
	if err == nil {
		t.Fatal("expected heuristic rejection for bfs")
	}
}

func TestSolveCommandRequiresMapArgument(t *testing.T) {
	cfg := testConfig(t)

	_, err := captureStdout(t, func() error {
		return run(context.Background(), cfg, []string{"solve", "-a", "bfs"})
	})
	if err == nil {
		t.Fatal("expected missing map argument error")
	}
}

func TestBenchCommand(t *testing.T) {
	cfg := testConfig(t)
	mapPath := writeTestMap(t)

	suitePath := filepath.Join(t.TempDir(), "suite.hcl")
	suiteSrc := `
suite "smoke" {
  maps = ["` + mapPath + `"]

  run {
    algorithm = "dfs"
  }
}
`
	if err := os.WriteFile(suitePath, []byte(suiteSrc), 0o644); err != nil {
		t.Fatalf("write suite: %v", err)
	}

	out, err := captureStdout(t, func() error {
		return run(context.Background(), cfg, []string{"bench", suitePath})
	})
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	if !strings.Contains(out, "name=smoke") || !strings.Contains(out, "jobs=1") {
		t.Fatalf("unexpected bench output:\n%s", out)
	}

	results, err := os.ReadFile(cfg.ResultsPath)
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	if !strings.Contains(string(results), "dfs") {
		t.Fatalf("expected dfs row in results:\n%s", string(results))
	}
}

func TestRunsCommandEmptyStore(t *testing.T) {
	cfg := testConfig(t)

	out, err := captureStdout(t, func() error {
		return run(context.Background(), cfg, []string{"runs"})
	})
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if !strings.Contains(out, "no runs found") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestMapCommand(t *testing.T) {
	mapPath := writeTestMap(t)

	out, err := captureStdout(t, func() error {
		return run(context.Background(), testConfig(t), []string{"map", mapPath})
	})
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if !strings.Contains(out, "rows=3 cols=3") || !strings.Contains(out, "min_hardness=1") {
		t.Fatalf("unexpected map output: %s", out)
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	if err := run(context.Background(), testConfig(t), []string{"teleport"}); err == nil {
		t.Fatal("expected unknown command error")
	}
	if err := run(context.Background(), testConfig(t), nil); err == nil {
		t.Fatal("expected missing command error")
	}
}
