// Package postgres provides the relational half of the datastore: a GORM
// client over pgx, the schema migrations, and retention sweeps.
//
// The package owns connection lifecycle only. Query logic belongs to the
// services importing it; they operate on the models in postgres/model.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/quillhq/datastore/config"
	"github.com/quillhq/datastore/postgres/model"
)

// Client wraps a GORM handle and the *sql.DB beneath it. Construct via Open
// (or the package-level Default); the zero value is not usable.
type Client struct {
	db    *gorm.DB
	sqlDB *sql.DB

	mu     sync.Mutex
	closed bool
}

// Open connects to PostgreSQL and returns a ready client. The DSN comes from
// cfg.DatabaseURL; an empty DSN fails immediately with ErrMissingDSN rather
// than producing a client that errors on first use.
//
// The connection stack is pgx with OpenTelemetry query tracing, bridged
// through database/sql so both GORM and the migration runner share one pool.
// Open pings before returning; on any failure everything already opened is
// torn down and no handle escapes.
func Open(ctx context.Context, cfg config.Config) (*Client, error) {
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDSN
	}

	pgxCfg, err := pgx.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("op=postgres.Open parse dsn: %w", err)
	}
	pgxCfg.Tracer = otelpgx.NewTracer()

	sqlDB := stdlib.OpenDB(*pgxCfg)
	sqlDB.SetMaxOpenConns(cfg.PGMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.PGMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.PGConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.PGConnMaxIdleTime)

	level := gormlogger.Warn
	if cfg.IsDev() {
		level = gormlogger.Info
	}
	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		Logger: newGormLogger(slog.Default(), level, cfg.PGSlowQueryThreshold),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("op=postgres.Open gorm: %w", err)
	}

	if err := setupJoinTables(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("op=postgres.Open join tables: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("op=postgres.Open ping: %w", err)
	}

	slog.Info("postgres connected",
		slog.Int("max_open_conns", cfg.PGMaxOpenConns),
		slog.Int("max_idle_conns", cfg.PGMaxIdleConns),
	)
	return &Client{db: db, sqlDB: sqlDB}, nil
}

// setupJoinTables registers the explicit junction models so many2many writes
// go through them (composite PK, CreatedAt) instead of GORM's implicit table.
func setupJoinTables(db *gorm.DB) error {
	joins := []struct {
		model any
		field string
		join  any
	}{
		{&model.Post{}, "Categories", &model.PostCategory{}},
		{&model.Post{}, "Tags", &model.PostTag{}},
		{&model.Category{}, "Posts", &model.PostCategory{}},
		{&model.Tag{}, "Posts", &model.PostTag{}},
	}
	for _, j := range joins {
		if err := db.SetupJoinTable(j.model, j.field, j.join); err != nil {
			return err
		}
	}
	return nil
}

// DB returns the GORM handle.
func (c *Client) DB() *gorm.DB { return c.db }

// SQLDB returns the underlying *sql.DB, shared with GORM. Callers use it for
// pool stats and for plain-SQL paths like the migration runner.
func (c *Client) SQLDB() *sql.DB { return c.sqlDB }

// Ping verifies the connection is still alive.
func (c *Client) Ping(ctx context.Context) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if err := c.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("op=postgres.Ping: %w", err)
	}
	return nil
}

// Close releases the connection pool. Safe to call more than once and on a
// nil client.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.sqlDB.Close(); err != nil {
		return fmt.Errorf("op=postgres.Close: %w", err)
	}
	slog.Info("postgres disconnected")
	return nil
}
