package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces"
	"github.com/secmon-lab/memsweep/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Firestore selects where sweep history is persisted. Without a project the
// history lives in memory and is lost when the process exits.
type Firestore struct {
	ProjectID  string
	DatabaseID string
	Collection string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for Firestore, sweep history is kept in memory if empty",
			Category:    "Firestore",
			Sources:     cli.EnvVars("MEMSWEEP_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("MEMSWEEP_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection holding sweep records",
			Category:    "Firestore",
			Value:       repository.DefaultCollection,
			Sources:     cli.EnvVars("MEMSWEEP_FIRESTORE_COLLECTION"),
			Destination: &f.Collection,
		},
	}
}

// Configure returns the sweep history repository. It falls back to an in-memory
// repository when no project is set.
func (f *Firestore) Configure(ctx context.Context) (interfaces.Repository, error) {
	if !f.IsConfigured() {
		ctxlog.From(ctx).Debug("Sweep history is kept in memory and dropped on exit")
		return repository.NewMemory(), nil
	}

	collection := f.Collection
	if collection == "" {
		collection = repository.DefaultCollection
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID, collection)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
			goerr.V("collection", collection),
		)
	}

	return repo, nil
}

// IsConfigured reports whether sweep history outlives the process
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
		slog.String("collection", f.Collection),
	)
}
