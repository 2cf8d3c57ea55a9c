package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"drillbot/internal/config"
	"drillbot/internal/ctxlog"
	"drillbot/internal/terrain"
	driller "drillbot/pkg/drillbot"
)

func main() {
	cfg := config.Load()
	logger := ctxlog.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if err := run(ctx, cfg, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, cfg, args[1:])
	case "solve":
		return runSolve(ctx, cfg, args[1:])
	case "bench":
		return runBench(ctx, cfg, args[1:])
	case "runs":
		return runRuns(ctx, cfg, args[1:])
	case "show":
		return runShow(ctx, cfg, args[1:])
	case "suites":
		return runSuites(ctx, cfg, args[1:])
	case "map":
		return runMapInfo(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

// storeFlags are the persistence flags shared by every command that opens
// the store. Environment defaults come from config.Load.
type storeFlags struct {
	storeKind   *string
	dbPath      *string
	resultsPath *string
}

func registerStoreFlags(fs *flag.FlagSet, cfg config.Config) storeFlags {
	return storeFlags{
		storeKind:   fs.String("store", cfg.StoreKind, "store backend: memory|sqlite"),
		dbPath:      fs.String("db-path", cfg.DBPath, "sqlite database path"),
		resultsPath: fs.String("results", cfg.ResultsPath, "results CSV path"),
	}
}

func newClient(ctx context.Context, sf storeFlags) (*driller.Client, error) {
	client, err := driller.New(driller.Options{
		StoreKind:   *sf.storeKind,
		DBPath:      *sf.dbPath,
		ResultsPath: *sf.resultsPath,
	})
	if err != nil {
		return nil, err
	}
	if err := client.Init(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func runInit(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	sf := registerStoreFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(ctx, sf)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	fmt.Printf("initialized store=%s\n", *sf.storeKind)
	return nil
}

func runSolve(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	sf := registerStoreFlags(fs, cfg)
	algorithm := fs.String("a", "astar", "search algorithm: bfs|dfs|astar")
	heuristic := fs.String("heuristic", "", "heuristic for astar: h|h_chebyshev|h_euclidean|h_minhardness|h_combined")
	maxExpansions := fs.Int("max-expansions", cfg.MaxExpansions, "abort after this many expansions, 0 means unlimited")
	trace := fs.Bool("trace", false, "print the full solution trace")
	tree := fs.String("tree", "", "write the search tree as DOT to this path")
	appendResults := fs.Bool("append", false, "append the result row to the results CSV")
	jsonOut := fs.Bool("json", false, "emit the summary as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("solve requires exactly one map file argument")
	}

	client, err := newClient(ctx, sf)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	req := driller.SolveRequest{
		MapPath:       fs.Arg(0),
		Algorithm:     *algorithm,
		Heuristic:     *heuristic,
		MaxExpansions: *maxExpansions,
		AppendResults: *appendResults,
		DOTPath:       *tree,
	}
	if *trace {
		req.Trace = os.Stdout
	}

	summary, err := client.Solve(ctx, req)
	if err != nil {
		return err
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Printf("run_id=%s map=%s algorithm=%s heuristic=%s solved=%t capped=%t d=%d g=%g expanded=%d generated=%d\n",
		summary.RunID,
		summary.Map,
		summary.Algorithm,
		summary.Heuristic,
		summary.Solved,
		summary.Capped,
		summary.Depth,
		summary.Cost,
		summary.Expanded,
		summary.Generated,
	)
	if summary.Solved && !*trace {
		fmt.Printf("plan=%s\n", strings.Join(summary.Actions, ","))
	}
	return nil
}

func runBench(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	sf := registerStoreFlags(fs, cfg)
	maxExpansions := fs.Int("max-expansions", cfg.MaxExpansions, "default expansion cap for suites, 0 means unlimited")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("bench requires exactly one suite file argument")
	}

	client, err := newClient(ctx, sf)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summaries, err := client.Bench(ctx, driller.BenchRequest{
		SuitePath:     fs.Arg(0),
		MaxExpansions: *maxExpansions,
	})
	if err != nil {
		return err
	}

	for _, s := range summaries {
		fmt.Printf("suite_id=%s name=%s jobs=%d results=%s\n", s.SuiteID, s.Name, s.Jobs, s.ResultsPath)
	}
	return nil
}

func runRuns(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	sf := registerStoreFlags(fs, cfg)
	limit := fs.Int("limit", 20, "max runs to list")
	jsonOut := fs.Bool("json", false, "emit runs list as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	client, err := newClient(ctx, sf)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	runs, err := client.Runs(ctx, driller.RunsRequest{Limit: *limit})
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	for _, r := range runs {
		fmt.Printf("run_id=%s created_at=%s map=%s algorithm=%s heuristic=%s solved=%t d=%d g=%g expanded=%d generated=%d\n",
			r.RunID,
			r.CreatedAtUTC,
			r.Map,
			r.Algorithm,
			r.Heuristic,
			r.Solved,
			r.Depth,
			r.Cost,
			r.Expanded,
			r.Generated,
		)
	}
	return nil
}

func runShow(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	sf := registerStoreFlags(fs, cfg)
	jsonOut := fs.Bool("json", false, "emit the run as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("show requires exactly one run id argument")
	}

	client, err := newClient(ctx, sf)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	run, ok, err := client.Run(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("run not found: %s", fs.Arg(0))
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	}

	fmt.Printf("run_id=%s created_at=%s map=%s algorithm=%s heuristic=%s solved=%t d=%d g=%g expanded=%d generated=%d\n",
		run.RunID,
		run.CreatedAtUTC,
		run.Map,
		run.Algorithm,
		run.Heuristic,
		run.Solved,
		run.Depth,
		run.Cost,
		run.Expanded,
		run.Generated,
	)
	if run.Solved {
		fmt.Printf("plan=%s\n", strings.Join(run.Actions, ","))
	}
	return nil
}

func runSuites(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("suites", flag.ContinueOnError)
	sf := registerStoreFlags(fs, cfg)
	limit := fs.Int("limit", 20, "max suites to list")
	jsonOut := fs.Bool("json", false, "emit suites list as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be > 0")
	}

	client, err := newClient(ctx, sf)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	suites, err := client.Suites(ctx, *limit)
	if err != nil {
		return err
	}
	if len(suites) == 0 {
		fmt.Println("no suites found")
		return nil
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(suites)
	}

	for _, s := range suites {
		fmt.Printf("suite_id=%s created_at=%s name=%s runs=%d results=%s\n",
			s.SuiteID, s.CreatedAtUTC, s.Name, s.Runs, s.ResultsPath)
	}
	return nil
}

func runMapInfo(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("map", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("map requires exactly one map file argument")
	}

	grid, err := terrain.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	start := grid.Start()
	goal := grid.Goal()
	fmt.Printf("rows=%d cols=%d start=(%d,%d,%d) goal=(%d,%d,%d) min_hardness=%g\n",
		grid.Rows(),
		grid.Cols(),
		start.X, start.Y, start.O,
		goal.X, goal.Y, goal.O,
		grid.MinHardness(),
	)
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: drillbotctl <init|solve|bench|runs|show|suites|map> [flags]", msg)
}
