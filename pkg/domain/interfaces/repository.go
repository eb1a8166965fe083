package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
)

// Repository defines the interface for sweep history persistence
type Repository interface {
	PutSweep(ctx context.Context, sweep *model.SweepResult) error
	GetSweep(ctx context.Context, id types.SweepID) (*model.SweepResult, error)
	// ListSweeps returns recorded sweeps, newest first. limit <= 0 means no limit.
	ListSweeps(ctx context.Context, limit int) ([]*model.SweepResult, error)

	// Close closes the repository connection
	Close() error
}
