// Package mongodb provides the document half of the datastore: a connection
// manager over the official driver, typed collection handles, and the
// declarative index set with its TTL rules.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"github.com/quillhq/datastore/config"
	"github.com/quillhq/datastore/observability"
)

var (
	// ErrMissingURI means MONGODB_URI was empty. Like the relational DSN,
	// this is a deployment mistake surfaced immediately, never retried.
	ErrMissingURI = errors.New("mongodb: MONGODB_URI is not set")

	// ErrNotConnected is returned by operations that need a live session
	// before Connect has succeeded.
	ErrNotConnected = errors.New("mongodb: not connected")
)

// Client manages one logical connection to the document store. The zero
// value of NewClient is disconnected; Connect establishes the session.
//
// The connected flag tracks server health as reported by driver heartbeats.
// The driver reconnects on its own; the flag only reflects what it sees, so
// Connected may read false during a blip and true again once the server
// answers heartbeats.
type Client struct {
	cfg config.Config

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database

	connected atomic.Bool
	degraded  atomic.Bool
}

// NewClient returns a disconnected client for the given configuration.
func NewClient(cfg config.Config) *Client {
	return &Client{cfg: cfg}
}

// Connect establishes the connection. Calling it on a connected client is a
// no-op. The URI comes from cfg.MongoURI; an empty URI fails immediately
// with ErrMissingURI. Pool size and timeouts are bounded by configuration,
// commands are traced via OpenTelemetry, pool events feed Prometheus, and in
// dev mode the driver's command log is bridged onto slog.
//
// A ping against the primary decides success: on failure the half-open
// session is torn down, the error is logged and returned, and the client
// stays disconnected. No retry happens at this layer.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return nil
	}
	if c.cfg.MongoURI == "" {
		return ErrMissingURI
	}

	opts := options.Client().
		ApplyURI(c.cfg.MongoURI).
		SetMaxPoolSize(c.cfg.MongoMaxPoolSize).
		SetMinPoolSize(c.cfg.MongoMinPoolSize).
		SetConnectTimeout(c.cfg.MongoConnectTimeout).
		SetSocketTimeout(c.cfg.MongoSocketTimeout).
		SetServerSelectionTimeout(c.cfg.MongoSelectionTimeout).
		SetMonitor(otelmongo.NewMonitor()).
		SetPoolMonitor(observability.NewMongoPoolMonitor()).
		SetServerMonitor(c.serverMonitor())

	if c.cfg.IsDev() {
		opts = opts.SetLoggerOptions(options.Logger().
			SetSink(slogSink{log: slog.Default()}).
			SetComponentLevel(options.LogComponentCommand, options.LogLevelDebug))
	}

	cl, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("op=mongodb.Connect: %w", err)
	}
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(ctx)
		slog.Error("mongodb ping failed", slog.Any("error", err))
		return fmt.Errorf("op=mongodb.Connect ping: %w", err)
	}

	c.client = cl
	c.db = cl.Database(c.cfg.MongoDatabase)
	c.connected.Store(true)
	slog.Info("mongodb connected",
		slog.String("database", c.cfg.MongoDatabase),
		slog.Uint64("max_pool_size", c.cfg.MongoMaxPoolSize),
	)
	return nil
}

// Disconnect closes the connection. Safe to call repeatedly and before any
// Connect.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	c.connected.Store(false)
	if err != nil {
		return fmt.Errorf("op=mongodb.Disconnect: %w", err)
	}
	slog.Info("mongodb disconnected")
	return nil
}

// Connected reports whether the server currently answers heartbeats.
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// Database returns the configured database handle, nil before Connect.
func (c *Client) Database() *mongo.Database {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.db
}

func (c *Client) serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			c.connected.Store(false)
			if c.degraded.CompareAndSwap(false, true) {
				slog.Warn("mongodb heartbeat failed",
					slog.String("connection_id", e.ConnectionID),
					slog.Any("error", e.Failure),
				)
			}
		},
		ServerHeartbeatSucceeded: func(e *event.ServerHeartbeatSucceededEvent) {
			c.connected.Store(true)
			if c.degraded.CompareAndSwap(true, false) {
				slog.Info("mongodb heartbeat recovered",
					slog.String("connection_id", e.ConnectionID),
				)
			}
		},
	}
}

// slogSink bridges the driver's structured log output onto slog. Only wired
// in dev mode, for command-level visibility.
type slogSink struct {
	log *slog.Logger
}

func (s slogSink) Info(level int, msg string, keysAndValues ...any) {
	// The driver passes a verbosity level; anything above the default is
	// debug-grade output.
	if level > 0 {
		s.log.Debug(msg, keysAndValues...)
		return
	}
	s.log.Info(msg, keysAndValues...)
}

func (s slogSink) Error(err error, msg string, keysAndValues ...any) {
	s.log.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
