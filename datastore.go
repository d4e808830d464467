// Package datastore is the shared persistence layer for the Quill platform
// services. It holds the relational schema (users, content, taxonomy,
// interactions, media) behind a GORM-over-pgx client, the document schema
// (analytics, notifications, operational logs) behind the official MongoDB
// driver, and the configuration and observability glue both share.
//
// Services that own their lifecycle construct a Stores at startup and close
// it in a deferred call around the run loop. Smaller tools can lean on the
// per-store Default singletons instead. This package never installs signal
// handlers; shutdown belongs to the host process.
//
// No business logic lives here. Queries, commands, and error translation
// are the consuming service's job; the library hands over raw driver
// handles and typed schema.
package datastore

import (
	"context"
	"errors"
	"fmt"

	"github.com/quillhq/datastore/config"
	"github.com/quillhq/datastore/mongodb"
	"github.com/quillhq/datastore/postgres"
)

// Stores bundles both database clients behind one open/close lifecycle for
// the application's composition root.
type Stores struct {
	pg    *postgres.Client
	mongo *mongodb.Client
}

// Open connects both stores, relational first. If the document store fails
// the already opened pool is closed again, so a non-nil error always means
// nothing was left running.
func Open(ctx context.Context, cfg config.Config) (*Stores, error) {
	pg, err := postgres.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("op=datastore.Open: %w", err)
	}

	mg := mongodb.NewClient(cfg)
	if err := mg.Connect(ctx); err != nil {
		_ = pg.Close()
		return nil, fmt.Errorf("op=datastore.Open: %w", err)
	}

	return &Stores{pg: pg, mongo: mg}, nil
}

// Close tears down both clients. Both closes always run; their errors are
// joined. Safe to call repeatedly and on a nil receiver.
func (s *Stores) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return errors.Join(s.pg.Close(), s.mongo.Disconnect(ctx))
}

// Postgres returns the relational client.
func (s *Stores) Postgres() *postgres.Client { return s.pg }

// Mongo returns the document-store client.
func (s *Stores) Mongo() *mongodb.Client { return s.mongo }

// Migrate brings the relational schema up to date and ensures the document
// indexes. Intended for deploy hooks and cmd/migrate; services normally
// assume the schema is already current.
func (s *Stores) Migrate(ctx context.Context) (int, error) {
	applied, err := s.pg.Migrate(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.mongo.EnsureIndexes(ctx); err != nil {
		return applied, err
	}
	return applied, nil
}
