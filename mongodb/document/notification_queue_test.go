package document

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func newQueueItem() NotificationQueueItem {
	return NotificationQueueItem{
		NotificationID: "n-1",
		UserID:         "u-1",
		Channel:        ChannelEmail,
		Status:         QueuePending,
		MaxAttempts:    DefaultMaxAttempts,
		CreatedAt:      time.Now(),
	}
}

func TestQueueItem_Validate(t *testing.T) {
	q := newQueueItem()
	if err := q.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	q.Channel = "fax"
	if err := q.Validate(); err == nil {
		t.Error("expected error for unknown channel")
	}

	q = newQueueItem()
	q.MaxAttempts = 0
	if err := q.Validate(); err == nil {
		t.Error("expected error for zero max attempts")
	}
}

func TestScheduleRetry_FirstFailure(t *testing.T) {
	q := newQueueItem()
	now := time.Now()

	q.ScheduleRetry(now, errors.New("smtp timeout"))

	if q.Attempts != 1 {
		t.Fatalf("Attempts = %d, want 1", q.Attempts)
	}
	if q.Status != QueuePending {
		t.Fatalf("Status = %q, want pending", q.Status)
	}
	if q.NextAttemptAt == nil {
		t.Fatal("NextAttemptAt not set")
	}

	// First retry lands 30s out, plus or minus the default jitter factor.
	delay := q.NextAttemptAt.Sub(now)
	if delay < 15*time.Second || delay > 45*time.Second {
		t.Errorf("first retry delay = %v, want within [15s, 45s]", delay)
	}
	if len(q.Errors) != 1 || q.Errors[0].Message != "smtp timeout" {
		t.Errorf("Errors = %+v, want single smtp timeout entry", q.Errors)
	}
}

func TestScheduleRetry_DelayGrowsAndCaps(t *testing.T) {
	now := time.Now()

	// Delay after n failures stays within the jittered exponential envelope
	// and never exceeds the capped interval.
	maxDelay := time.Duration(float64(retryMaxInterval) * 1.5)
	for attempt := 1; attempt < DefaultMaxAttempts; attempt++ {
		q := newQueueItem()
		q.Attempts = attempt - 1
		q.ScheduleRetry(now, errors.New("boom"))
		if q.Status == QueueDead {
			continue
		}
		delay := q.NextAttemptAt.Sub(now)
		if delay <= 0 || delay > maxDelay {
			t.Errorf("attempt %d: delay = %v, want within (0, %v]", attempt, delay, maxDelay)
		}
	}
}

func TestScheduleRetry_ExhaustionGoesDead(t *testing.T) {
	q := newQueueItem()
	q.MaxAttempts = 3
	now := time.Now()

	for i := 0; i < 3; i++ {
		q.ScheduleRetry(now, fmt.Errorf("failure %d", i))
	}

	if q.Status != QueueDead {
		t.Fatalf("Status = %q, want dead after exhausting attempts", q.Status)
	}
	if q.NextAttemptAt != nil {
		t.Errorf("NextAttemptAt = %v, want nil for dead item", q.NextAttemptAt)
	}
	if q.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", q.Attempts)
	}
}

func TestScheduleRetry_ErrorHistoryBounded(t *testing.T) {
	q := newQueueItem()
	q.MaxAttempts = 100
	now := time.Now()

	for i := 0; i < maxErrorHistory+5; i++ {
		q.ScheduleRetry(now, fmt.Errorf("failure %d", i))
	}

	if len(q.Errors) != maxErrorHistory {
		t.Fatalf("error history length = %d, want %d", len(q.Errors), maxErrorHistory)
	}
	// Oldest entries are dropped first.
	last := q.Errors[len(q.Errors)-1].Message
	if last != fmt.Sprintf("failure %d", maxErrorHistory+4) {
		t.Errorf("newest entry = %q, want the latest failure", last)
	}
}

func TestScheduleRetry_NilCause(t *testing.T) {
	q := newQueueItem()
	q.ScheduleRetry(time.Now(), nil)

	if len(q.Errors) != 1 || q.Errors[0].Message == "" {
		t.Errorf("Errors = %+v, want placeholder message for nil cause", q.Errors)
	}
}

func TestScheduleRetry_DefaultsMaxAttempts(t *testing.T) {
	q := newQueueItem()
	q.MaxAttempts = 0
	q.ScheduleRetry(time.Now(), errors.New("boom"))

	if q.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("MaxAttempts = %d, want defaulted to %d", q.MaxAttempts, DefaultMaxAttempts)
	}
}
