package console

import (
	"context"
	"errors"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
)

const (
	checkpointPrompt = "Pause (p), Cancel (c), or Continue (enter): "
	resumePrompt     = "Paused. Press Enter to resume..."
)

// Operator lets the person at the console steer a running sweep
type Operator struct {
	console *Console
}

var _ interfaces.Operator = (*Operator)(nil)

// NewOperator creates an Operator bound to the console
func NewOperator(console *Console) *Operator {
	return &Operator{console: console}
}

// Checkpoint asks for the next action until a valid one is given. A closed
// input cancels the sweep.
func (o *Operator) Checkpoint(ctx context.Context, removed int) (model.Action, error) {
	o.console.Notice("%d members removed so far.", removed)

	for {
		input, err := o.console.Ask(ctx, checkpointPrompt)
		if errors.Is(err, io.EOF) {
			return model.ActionCancel, nil
		}
		if err != nil {
			return model.ActionCancel, err
		}

		action, err := model.ParseAction(input)
		if errors.Is(err, model.ErrInvalidAction) {
			o.console.Error("Invalid option. Please try again.")
			continue
		}
		if err != nil {
			return model.ActionCancel, err
		}
		return action, nil
	}
}

// WaitResume blocks until the operator presses Enter
func (o *Operator) WaitResume(ctx context.Context) error {
	if _, err := o.console.Ask(ctx, resumePrompt); err != nil {
		return goerr.Wrap(err, "input closed while paused")
	}
	o.console.Notice("Resumed.")
	return nil
}
