// Package suite loads benchmark suite definitions from HCL and executes
// them: every map in the suite is solved by every configured run, and each
// invocation lands as one CSV row plus a persisted run record.
package suite

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"drillbot/internal/drill"
	"drillbot/internal/report"
	"drillbot/internal/search"
)

// Job is one resolved invocation: a map solved by one algorithm with one
// heuristic (BlindHeuristic for bfs and dfs).
type Job struct {
	MapPath   string
	Strategy  search.Strategy
	Heuristic string
}

// Suite is one validated benchmark definition with its job list expanded.
type Suite struct {
	Name          string
	ResultsPath   string
	MaxExpansions int
	Jobs          []Job
}

// hclFile is the top-level structure of a suite file for decoding.
type hclFile struct {
	Suites []*hclSuite `hcl:"suite,block"`
}

type hclSuite struct {
	Name          string    `hcl:"name,label"`
	Results       *string   `hcl:"results,optional"`
	Maps          []string  `hcl:"maps"`
	MaxExpansions *int      `hcl:"max_expansions,optional"`
	Runs          []*hclRun `hcl:"run,block"`
}

type hclRun struct {
	Algorithm  string   `hcl:"algorithm"`
	Heuristics []string `hcl:"heuristics,optional"`
}

// Defaults are the fallback values a suite file may reference as
// defaults.results and defaults.max_expansions, and which apply when the
// corresponding attribute is absent.
type Defaults struct {
	ResultsPath   string
	MaxExpansions int
}

// evalContext exposes the defaults to HCL expressions.
func evalContext(defs Defaults) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"results":        cty.StringVal(defs.ResultsPath),
				"max_expansions": cty.NumberIntVal(int64(defs.MaxExpansions)),
			}),
		},
	}
}

// LoadFile parses one suite file and expands every suite it defines.
func LoadFile(path string, defs Defaults) ([]Suite, error) {
	parser := hclparse.NewParser()
	hclF, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse suite file %s: %w", path, diags)
	}
	return expandFile(hclF.Body, path, defs)
}

// LoadBytes parses suite definitions held in memory, for callers that
// assemble configuration programmatically.
func LoadBytes(src []byte, filename string, defs Defaults) ([]Suite, error) {
	parser := hclparse.NewParser()
	hclF, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse suite file %s: %w", filename, diags)
	}
	return expandFile(hclF.Body, filename, defs)
}

func expandFile(body hcl.Body, path string, defs Defaults) ([]Suite, error) {
	var parsed hclFile
	diags := gohcl.DecodeBody(body, evalContext(defs), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode suite file %s: %w", path, diags)
	}
	if len(parsed.Suites) == 0 {
		return nil, fmt.Errorf("suite file %s defines no suites", path)
	}

	suites := make([]Suite, 0, len(parsed.Suites))
	for _, raw := range parsed.Suites {
		suite, err := expandSuite(raw, defs)
		if err != nil {
			return nil, fmt.Errorf("suite %q: %w", raw.Name, err)
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

// expandSuite validates one suite block and takes the cross product of its
// maps and runs. A blind run contributes one job per map; an astar run
// contributes one job per map per heuristic, defaulting to all heuristics
// when none are listed.
func expandSuite(raw *hclSuite, defs Defaults) (Suite, error) {
	if len(raw.Maps) == 0 {
		return Suite{}, fmt.Errorf("no maps configured")
	}
	if len(raw.Runs) == 0 {
		return Suite{}, fmt.Errorf("no run blocks configured")
	}

	suite := Suite{
		Name:          raw.Name,
		ResultsPath:   defs.ResultsPath,
		MaxExpansions: defs.MaxExpansions,
	}
	if raw.Results != nil {
		suite.ResultsPath = *raw.Results
	}
	if raw.MaxExpansions != nil {
		if *raw.MaxExpansions < 0 {
			return Suite{}, fmt.Errorf("max_expansions must not be negative")
		}
		suite.MaxExpansions = *raw.MaxExpansions
	}

	for _, run := range raw.Runs {
		strategy, err := search.ParseStrategy(run.Algorithm)
		if err != nil {
			return Suite{}, err
		}

		var heuristics []string
		switch {
		case strategy != search.AStar:
			if len(run.Heuristics) > 0 {
				return Suite{}, fmt.Errorf("algorithm %q does not take heuristics", run.Algorithm)
			}
			heuristics = []string{report.BlindHeuristic}
		case len(run.Heuristics) == 0:
			for _, h := range drill.Heuristics() {
				heuristics = append(heuristics, h.String())
			}
		default:
			for _, name := range run.Heuristics {
				if _, err := drill.ParseHeuristic(name); err != nil {
					return Suite{}, err
				}
			}
			heuristics = run.Heuristics
		}

		for _, mapPath := range raw.Maps {
			for _, h := range heuristics {
				suite.Jobs = append(suite.Jobs, Job{MapPath: mapPath, Strategy: strategy, Heuristic: h})
			}
		}
	}
	return suite, nil
}
