package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/controller/console"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
	"github.com/secmon-lab/memsweep/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdGroups(cfg *globalConfig) *cli.Command {
	return &cli.Command{
		Name:  "groups",
		Usage: "List the channels of the account",
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			return s.menu().ListGroups(ctx)
		},
	}
}

func cmdClean(cfg *globalConfig) *cli.Command {
	var groupID string

	return &cli.Command{
		Name:  "clean",
		Usage: "Remove every member except admins and the owner from a channel",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "group",
				Aliases:     []string{"g"},
				Usage:       "Channel ID to clean",
				Required:    true,
				Destination: &groupID,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			return s.menu().CleanByID(ctx, types.GroupID(groupID))
		},
	}
}

func cmdHistory(cfg *globalConfig) *cli.Command {
	var limit int

	return &cli.Command{
		Name:  "history",
		Usage: "Show sweeps recorded in Firestore, newest first. Requires --firestore-project",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "Maximum number of sweeps to show",
				Value:       20,
				Destination: &limit,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			con := console.New(cfg.in, cfg.out)
			// In-memory history never outlives a run, so there is nothing to show
			if !cfg.firestore.IsConfigured() {
				con.Notice("Sweep history is kept only with --firestore-project.")
				return nil
			}

			repo, err := cfg.firestore.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			sweeps, err := usecase.NewHistory(repo).List(ctx, limit)
			if err != nil {
				return goerr.Wrap(err, "failed to read sweep history")
			}

			if len(sweeps) == 0 {
				con.Notice("No sweeps recorded.")
				return nil
			}
			console.WriteSweeps(con.Writer(), sweeps)
			return nil
		},
	}
}
