package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/memsweep/pkg/domain/interfaces"
	"github.com/secmon-lab/memsweep/pkg/domain/model"
	"github.com/secmon-lab/memsweep/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// DefaultCollection is where sweep records are kept unless configured otherwise
	DefaultCollection = "sweeps"

	fieldStartedAt = "StartedAt"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client     *firestore.Client
	collection string
}

// NewFirestore creates a new Firestore repository storing sweeps in collection
func NewFirestore(ctx context.Context, projectID, databaseID, collection string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	if collection == "" {
		return nil, goerr.New("firestore collection is empty")
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad project or missing permission. Empty collections are fine.
	_, err = client.Collection(collection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
		"collection", collection,
	)

	return &Firestore{
		client:     client,
		collection: collection,
	}, nil
}

// PutSweep saves or replaces a sweep record
func (f *Firestore) PutSweep(ctx context.Context, sweep *model.SweepResult) error {
	if sweep == nil {
		return goerr.New("sweep is nil")
	}
	if sweep.ID == "" {
		return goerr.New("sweep ID is empty")
	}

	_, err := f.client.Collection(f.collection).Doc(sweep.ID.String()).Set(ctx, sweep)
	if err != nil {
		return goerr.Wrap(err, "failed to save sweep to firestore", goerr.V("id", sweep.ID))
	}

	return nil
}

// GetSweep retrieves a sweep by ID
func (f *Firestore) GetSweep(ctx context.Context, id types.SweepID) (*model.SweepResult, error) {
	if id == "" {
		return nil, goerr.New("sweep ID is empty")
	}

	doc, err := f.client.Collection(f.collection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrSweepNotFound, "failed to get sweep", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get sweep from firestore", goerr.V("id", id))
	}

	var sweep model.SweepResult
	if err := doc.DataTo(&sweep); err != nil {
		return nil, goerr.Wrap(err, "failed to decode sweep", goerr.V("id", id))
	}

	return &sweep, nil
}

// ListSweeps lists sweeps, newest first
func (f *Firestore) ListSweeps(ctx context.Context, limit int) ([]*model.SweepResult, error) {
	query := f.client.Collection(f.collection).OrderBy(fieldStartedAt, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var sweeps []*model.SweepResult
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate sweeps")
		}

		var sweep model.SweepResult
		if err := doc.DataTo(&sweep); err != nil {
			return nil, goerr.Wrap(err, "failed to decode sweep", goerr.V("docID", doc.Ref.ID))
		}
		sweeps = append(sweeps, &sweep)
	}

	return sweeps, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
