package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu     sync.RWMutex
	sweeps map[types.SweepID]*model.SweepResult
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		sweeps: make(map[types.SweepID]*model.SweepResult),
	}
}

// PutSweep saves or replaces a sweep record
func (m *Memory) PutSweep(ctx context.Context, sweep *model.SweepResult) error {
	if sweep == nil {
		return goerr.New("sweep is nil")
	}
	if sweep.ID == "" {
		return goerr.New("sweep ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweeps[sweep.ID] = copySweep(sweep)
	return nil
}

// GetSweep retrieves a sweep by ID
func (m *Memory) GetSweep(ctx context.Context, id types.SweepID) (*model.SweepResult, error) {
	if id == "" {
		return nil, goerr.New("sweep ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	sweep, exists := m.sweeps[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrSweepNotFound, "failed to get sweep", goerr.V("id", id))
	}

	return copySweep(sweep), nil
}

// ListSweeps lists sweeps, newest first
func (m *Memory) ListSweeps(ctx context.Context, limit int) ([]*model.SweepResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sweeps := make([]*model.SweepResult, 0, len(m.sweeps))
	for _, sweep := range m.sweeps {
		sweeps = append(sweeps, copySweep(sweep))
	}

	sort.Slice(sweeps, func(i, j int) bool {
		return sweeps[i].StartedAt.After(sweeps[j].StartedAt)
	})

	if limit > 0 && len(sweeps) > limit {
		sweeps = sweeps[:limit]
	}

	return sweeps, nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}

// copySweep returns a copy so that callers cannot modify stored records
func copySweep(sweep *model.SweepResult) *model.SweepResult {
	c := *sweep
	if sweep.Failures != nil {
		c.Failures = make([]model.RemovalFailure, len(sweep.Failures))
		copy(c.Failures, sweep.Failures)
	}
	return &c
}
