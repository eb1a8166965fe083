package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/cli/config"
	"github.com/secmon-lab/memsweep/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application on the process standard streams
func Run(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, args, os.Stdin, os.Stdout)
}

// globalConfig is shared by the root command and its subcommands
type globalConfig struct {
	logger    config.Logger
	slack     config.Slack
	errLog    config.ErrorLog
	firestore config.Firestore

	in  io.Reader
	out io.Writer
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	cfg := &globalConfig{in: in, out: out}

	app := &cli.Command{
		Name:      "memsweep",
		Usage:     "Remove every member except admins and the owner from Slack channels",
		Version:   "0.1.0",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: collectFlags(
			&cfg.logger,
			&cfg.slack,
			&cfg.errLog,
			&cfg.firestore,
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := cfg.logger.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runMenu(ctx, cfg)
		},
		Commands: []*cli.Command{
			cmdGroups(cfg),
			cmdClean(cfg),
			cmdHistory(cfg),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctx, err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
