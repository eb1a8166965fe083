package usecase

import (
	"context"

	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
)

// GroupsUseCase defines the interface for group listing operations
type GroupsUseCase interface {
	// List returns the account's groups sorted by title
	List(ctx context.Context) ([]*model.Group, error)

	// Find returns a single group of the account
	Find(ctx context.Context, id types.GroupID) (*model.Group, error)
}

// SweepUseCase defines the interface for removing members from a group
type SweepUseCase interface {
	// Sweep removes all non-protected members of the group
	Sweep(ctx context.Context, group *model.Group, account *model.Account) (*model.SweepResult, error)
}

// HistoryUseCase defines the interface for reading recorded sweeps
type HistoryUseCase interface {
	// List returns the latest sweeps, newest first
	List(ctx context.Context, limit int) ([]*model.SweepResult, error)
}

var (
	_ GroupsUseCase  = (*Groups)(nil)
	_ SweepUseCase   = (*Sweeper)(nil)
	_ HistoryUseCase = (*History)(nil)
)
