package interfaces

//go:generate moq -out mocks/operator_mock.go -pkg mocks . Operator

import (
	"context"

	"github.com/secmon-lab/memsweep/pkg/domain/model"
)

// Operator is the control channel between a running sweep and the person driving it.
// A sweep yields to it at fixed checkpoints and resumes when it returns.
type Operator interface {
	// Checkpoint asks whether to continue, pause or cancel after removed members
	Checkpoint(ctx context.Context, removed int) (model.Action, error)

	// WaitResume blocks until the operator resumes a paused sweep
	WaitResume(ctx context.Context) error
}
