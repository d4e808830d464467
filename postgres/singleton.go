package postgres

import (
	"context"
	"sync"

	"github.com/quillhq/datastore/config"
)

// Package-level singleton. Services that want one shared client per process
// use Default/Disconnect; anything needing independent pools calls Open.
var (
	defaultMu     sync.Mutex
	defaultClient *Client

	// openFunc is swapped in tests.
	openFunc = Open
)

// Default returns the process-wide client, opening it on first call. The
// mutex makes the first open single-flight: concurrent callers block and
// receive the same handle, never a second pool. A failed open caches
// nothing, so the next call retries.
func Default(ctx context.Context, cfg config.Config) (*Client, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient != nil {
		return defaultClient, nil
	}
	c, err := openFunc(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defaultClient = c
	return c, nil
}

// Disconnect closes the shared client and clears it so a later Default
// re-opens. Calling it with no client open is a no-op.
func Disconnect() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultClient == nil {
		return nil
	}
	err := defaultClient.Close()
	defaultClient = nil
	return err
}
