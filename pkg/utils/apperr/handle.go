package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that ended a command. An interrupt by the operator is
// not an application failure and is logged as a warning.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Warn("interrupted", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
