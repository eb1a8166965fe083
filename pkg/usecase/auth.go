package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
)

// Auth opens a session on the messaging platform
type Auth struct {
	messenger interfaces.Messenger
}

// NewAuth creates a new Auth use case
func NewAuth(messenger interfaces.Messenger) *Auth {
	return &Auth{messenger: messenger}
}

// Login logs in with the credentials and checks that the session belongs to the
// configured account
func (a *Auth) Login(ctx context.Context, creds *model.Credentials) (*model.Account, error) {
	if err := creds.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid credentials")
	}

	account, err := a.messenger.Login(ctx, creds)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to log in", goerr.V("creds", creds))
	}

	if !creds.Matches(account) {
		return nil, goerr.Wrap(model.ErrAccountMismatch, "session belongs to another account",
			goerr.V("expected", creds.Account),
			goerr.V("user_id", account.UserID),
			goerr.V("user_name", account.UserName))
	}

	ctxlog.From(ctx).Info("Logged in",
		"user_id", account.UserID,
		"user_name", account.UserName,
		"team", account.Team,
	)

	return account, nil
}
