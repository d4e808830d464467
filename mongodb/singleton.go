package mongodb

import (
	"context"
	"sync"

	"github.com/quillhq/datastore/config"
)

// Package-level singleton, mirroring the relational side. Services that
// want one shared client per process use Default/Disconnect; anything
// needing an independent client calls NewClient + Connect.
var (
	defaultMu     sync.Mutex
	defaultClient *Client

	// connectFunc is swapped in tests.
	connectFunc = func(ctx context.Context, cfg config.Config) (*Client, error) {
		c := NewClient(cfg)
		if err := c.Connect(ctx); err != nil {
			return nil, err
		}
		return c, nil
	}
)

// Default returns the process-wide client, connecting on first call. The
// mutex makes the first connect single-flight: concurrent callers block and
// receive the same handle. A failed connect caches nothing, so the next
// call retries.
func Default(ctx context.Context, cfg config.Config) (*Client, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient != nil {
		return defaultClient, nil
	}
	c, err := connectFunc(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defaultClient = c
	return c, nil
}

// Disconnect closes the shared client and clears it so a later Default
// reconnects. Calling it with no client connected is a no-op.
func Disconnect(ctx context.Context) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient == nil {
		return nil
	}
	err := defaultClient.Disconnect(ctx)
	defaultClient = nil
	return err
}
