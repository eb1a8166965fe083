package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
)

// History reads recorded sweeps
type History struct {
	repo interfaces.Repository
}

// NewHistory creates a new History use case
func NewHistory(repo interfaces.Repository) *History {
	return &History{repo: repo}
}

// List returns the latest sweeps, newest first
func (h *History) List(ctx context.Context, limit int) ([]*model.SweepResult, error) {
	sweeps, err := h.repo.ListSweeps(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list sweeps", goerr.V("limit", limit))
	}
	return sweeps, nil
}

// Get returns a single sweep
func (h *History) Get(ctx context.Context, id types.SweepID) (*model.SweepResult, error) {
	sweep, err := h.repo.GetSweep(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get sweep", goerr.V("sweep_id", id))
	}
	return sweep, nil
}
