package storage

import (
	"context"
	"sort"
	"sync"

	"drillbot/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	runs        map[string]model.Run
	runOrder    []string
	suites      map[string]model.SuiteSummary
	suiteOrder  []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.runs = make(map[string]model.Run)
	s.runOrder = nil
	s.suites = make(map[string]model.SuiteSummary)
	s.suiteOrder = nil
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run model.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[run.ID]; !exists {
		s.runOrder = append(s.runOrder, run.ID)
	}
	run.Actions = append([]string(nil), run.Actions...)
	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id string) (model.Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if ok {
		run.Actions = append([]string(nil), run.Actions...)
	}
	return run, ok, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *MemoryStore) ListRuns(_ context.Context, limit int) ([]model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := append([]string(nil), s.runOrder...)
	sort.SliceStable(ids, func(i, j int) bool {
		return s.runs[ids[i]].CreatedAtUTC > s.runs[ids[j]].CreatedAtUTC
	})
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	runs := make([]model.Run, 0, len(ids))
	for _, id := range ids {
		run := s.runs[id]
		run.Actions = append([]string(nil), run.Actions...)
		runs = append(runs, run)
	}
	return runs, nil
}

func (s *MemoryStore) SaveSuite(_ context.Context, suite model.SuiteSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.suites[suite.ID]; !exists {
		s.suiteOrder = append(s.suiteOrder, suite.ID)
	}
	suite.RunIDs = append([]string(nil), suite.RunIDs...)
	s.suites[suite.ID] = suite
	return nil
}

func (s *MemoryStore) GetSuite(_ context.Context, id string) (model.SuiteSummary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	suite, ok := s.suites[id]
	if ok {
		suite.RunIDs = append([]string(nil), suite.RunIDs...)
	}
	return suite, ok, nil
}

func (s *MemoryStore) ListSuites(_ context.Context, limit int) ([]model.SuiteSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := append([]string(nil), s.suiteOrder...)
	sort.SliceStable(ids, func(i, j int) bool {
		return s.suites[ids[i]].CreatedAtUTC > s.suites[ids[j]].CreatedAtUTC
	})
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	suites := make([]model.SuiteSummary, 0, len(ids))
	for _, id := range ids {
		suite := s.suites[id]
		suite.RunIDs = append([]string(nil), suite.RunIDs...)
		suites = append(suites, suite)
	}
	return suites, nil
}
