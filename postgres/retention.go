package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quillhq/datastore/postgres/model"
)

// DeleteExpiredSessions removes sessions whose expiry is at or before now
// and reports how many rows went away. The schema never expires sessions on
// its own; some process must call this (usually via RetentionSweeper).
func (c *Client) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res := c.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("op=postgres.DeleteExpiredSessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// RetentionSweeper periodically deletes expired sessions.
type RetentionSweeper struct {
	Client   *Client
	Interval time.Duration
}

// NewRetentionSweeper creates a sweeper. A non-positive interval falls back
// to hourly.
func NewRetentionSweeper(client *Client, interval time.Duration) *RetentionSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &RetentionSweeper{Client: client, Interval: interval}
}

// RunPeriodic sweeps once immediately, then on every tick until ctx is
// cancelled. It blocks; run it in its own goroutine.
func (s *RetentionSweeper) RunPeriodic(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("retention sweeper stopping")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RetentionSweeper) sweep(ctx context.Context) {
	deleted, err := s.Client.DeleteExpiredSessions(ctx, time.Now())
	if err != nil {
		slog.Error("session sweep failed", slog.Any("error", err))
		return
	}
	if deleted > 0 {
		slog.Info("expired sessions deleted", slog.Int64("count", deleted))
	}
}
