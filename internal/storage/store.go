package storage

import (
	"context"

	"drillbot/internal/model"
)

// Store persists finished runs and suite summaries for the history
// commands. The search core never touches a Store; only the driver does.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.Run) error
	GetRun(ctx context.Context, id string) (model.Run, bool, error)
	ListRuns(ctx context.Context, limit int) ([]model.Run, error)
	SaveSuite(ctx context.Context, suite model.SuiteSummary) error
	GetSuite(ctx context.Context, id string) (model.SuiteSummary, bool, error)
	ListSuites(ctx context.Context, limit int) ([]model.SuiteSummary, error)
}
