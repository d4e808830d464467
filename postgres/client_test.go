package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/quillhq/datastore/config"
	"github.com/quillhq/datastore/postgres"
)

func TestOpen_MissingDSN(t *testing.T) {
	_, err := postgres.Open(context.Background(), config.Config{})
	if !errors.Is(err, postgres.ErrMissingDSN) {
		t.Fatalf("Open with empty DSN: err = %v, want ErrMissingDSN", err)
	}
}

func TestOpen_InvalidDSN(t *testing.T) {
	cfg := config.Config{DatabaseURL: "://bad"}
	if _, err := postgres.Open(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for invalid dsn")
	}
}

func TestClient_CloseNil(t *testing.T) {
	var c *postgres.Client
	if err := c.Close(); err != nil {
		t.Fatalf("Close on nil client: %v", err)
	}
}
