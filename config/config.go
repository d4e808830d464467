// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all datastore configuration parsed from environment variables.
//
// DatabaseURL and MongoURI carry no default: a missing value is a fatal
// configuration error surfaced on the first open/connect attempt and never
// retried.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`

	// Relational store (PostgreSQL).
	DatabaseURL          string        `env:"DATABASE_URL"`
	PGMaxOpenConns       int           `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	PGMaxIdleConns       int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	PGConnMaxLifetime    time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"1h"`
	PGConnMaxIdleTime    time.Duration `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	PGSlowQueryThreshold time.Duration `env:"PG_SLOW_QUERY_THRESHOLD" envDefault:"200ms"`

	// Document store (MongoDB).
	MongoURI              string        `env:"MONGODB_URI"`
	MongoDatabase         string        `env:"MONGODB_DATABASE" envDefault:"quill"`
	MongoMaxPoolSize      uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"20"`
	MongoMinPoolSize      uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"2"`
	MongoConnectTimeout   time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MongoSocketTimeout    time.Duration `env:"MONGODB_SOCKET_TIMEOUT" envDefault:"45s"`
	MongoSelectionTimeout time.Duration `env:"MONGODB_SERVER_SELECTION_TIMEOUT" envDefault:"5s"`

	// SessionSweepInterval: cadence for the expired-session sweeper. The sweep
	// itself is application-invoked; see postgres.RetentionSweeper.
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1h"`

	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"quill-datastore"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the process is running in development mode. Both
// store clients enable verbose query logging in this mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the process is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the process is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }
