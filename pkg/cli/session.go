package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/controller/console"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/usecase"
	"github.com/secmon-lab/memsweep/pkg/utils/logging"
)

// session is a logged in account with everything needed to run sweeps
type session struct {
	console   *console.Console
	messenger interfaces.Messenger
	account   *model.Account
	repo      interfaces.Repository
	errLog    *logging.ErrorLog
}

// openSession opens the error log, resolves credentials, logs in and opens the
// sweep history. A login failure is unrecoverable and is recorded to the error
// log before returning.
func openSession(ctx context.Context, cfg *globalConfig) (*session, error) {
	logger := ctxlog.From(ctx)
	con := console.New(cfg.in, cfg.out)

	logger.Debug("Opening session",
		slog.Any("slack", cfg.slack),
		slog.Any("error_log", cfg.errLog),
		slog.Any("firestore", cfg.firestore),
	)

	errLog := cfg.errLog.Configure()
	fail := func(msg string, err error, attrs ...any) error {
		errLog.Record(msg, err, attrs...)
		if cerr := errLog.Close(); cerr != nil {
			logger.Warn("Failed to close error log", "error", cerr)
		}
		return err
	}

	creds, err := cfg.slack.Resolve(ctx, con)
	if err != nil {
		return nil, fail("Failed to resolve credentials", err)
	}

	messenger := cfg.slack.Configure()
	account, err := usecase.NewAuth(messenger).Login(ctx, creds)
	if err != nil {
		con.Error("Login failed: %s", err.Error())
		return nil, fail("Login failed", goerr.Wrap(err, "login failed"),
			"account", creds.Account,
			"has_token", creds.Token != "",
		)
	}
	con.Success("Logged in as %s (%s) on %s", account.UserName, account.UserID, account.Team)

	repo, err := cfg.firestore.Configure(ctx)
	if err != nil {
		return nil, fail("Failed to open sweep history", err)
	}

	return &session{
		console:   con,
		messenger: messenger,
		account:   account,
		repo:      repo,
		errLog:    errLog,
	}, nil
}

func (s *session) menu() *console.Menu {
	sweeper := usecase.NewSweeper(s.messenger, console.NewOperator(s.console),
		usecase.WithRepository(s.repo),
		usecase.WithProgress(s.console.Writer()),
		usecase.WithErrorLog(s.errLog),
	)
	return console.NewMenu(s.console, usecase.NewGroups(s.messenger), sweeper, s.account)
}

func (s *session) Close(ctx context.Context) {
	if err := s.errLog.Close(); err != nil {
		ctxlog.From(ctx).Warn("Failed to close error log", "error", err)
	}
	if err := s.repo.Close(); err != nil {
		ctxlog.From(ctx).Warn("Failed to close repository", "error", err)
	}
}

func runMenu(ctx context.Context, cfg *globalConfig) error {
	s, err := openSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close(ctx)

	return s.menu().Run(ctx)
}
