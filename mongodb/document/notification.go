package document

import (
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Channel is a delivery channel for notifications.
type Channel string

// Channel values.
const (
	ChannelInApp Channel = "in_app"
	ChannelEmail Channel = "email"
	ChannelPush  Channel = "push"
)

// ChannelState is the per-channel delivery state of one notification. Each
// channel progresses independently: email may be sent while push is
// disabled and in-app is already read.
type ChannelState struct {
	Enabled bool       `bson:"enabled" json:"enabled"`
	SentAt  *time.Time `bson:"sentAt,omitempty" json:"sent_at,omitempty"`
	ReadAt  *time.Time `bson:"readAt,omitempty" json:"read_at,omitempty"`
}

// SubjectRef points at the thing the notification is about, e.g.
// {Type: "post", ID: "..."} for a new-comment notification.
type SubjectRef struct {
	Type string `bson:"type" json:"type" validate:"required"`
	ID   string `bson:"id" json:"id" validate:"required"`
}

// Notification is a multi-channel delivery record. ExpiresAt drives the
// collection's expireAfterSeconds=0 TTL index: the document is removed once
// the wall clock passes the stored value, and documents without the field
// never expire.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"user_id" validate:"required"`
	Kind      string             `bson:"kind" json:"kind" validate:"required"`
	Title     string             `bson:"title" json:"title" validate:"required"`
	Body      string             `bson:"body,omitempty" json:"body,omitempty"`
	ActorID   string             `bson:"actorId,omitempty" json:"actor_id,omitempty"`
	Subject   *SubjectRef        `bson:"subject,omitempty" json:"subject,omitempty"`
	InApp     ChannelState       `bson:"inApp" json:"in_app"`
	Email     ChannelState       `bson:"email" json:"email"`
	Push      ChannelState       `bson:"push" json:"push"`
	ExpiresAt *time.Time         `bson:"expiresAt,omitempty" json:"expires_at,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at" validate:"required"`
}

// Validate checks field-level constraints.
func (n *Notification) Validate() error {
	if err := getValidator().Struct(n); err != nil {
		return fmt.Errorf("op=notification.validate: %w", err)
	}
	return nil
}

// QueueStatus is the delivery-job state machine.
type QueueStatus string

// QueueStatus values. Dead means attempts are exhausted; the item stays for
// inspection and is never picked up again.
const (
	QueuePending    QueueStatus = "pending"
	QueueProcessing QueueStatus = "processing"
	QueueDelivered  QueueStatus = "delivered"
	QueueFailed     QueueStatus = "failed"
	QueueDead       QueueStatus = "dead"
)

// Retry schedule bounds for queue items.
const (
	// DefaultMaxAttempts is the delivery attempt ceiling before an item
	// goes dead.
	DefaultMaxAttempts = 5

	// maxErrorHistory bounds AttemptError entries per item so a flapping
	// provider cannot grow documents without limit.
	maxErrorHistory = 10

	retryInitialInterval = 30 * time.Second
	retryMaxInterval     = time.Hour
	retryMultiplier      = 2.0
)

// AttemptError is one failed delivery attempt.
type AttemptError struct {
	At      time.Time `bson:"at" json:"at"`
	Message string    `bson:"message" json:"message"`
}

// NotificationQueueItem is a pending delivery job for one notification on
// one channel. Workers poll by (status, nextAttemptAt).
type NotificationQueueItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NotificationID string             `bson:"notificationId" json:"notification_id" validate:"required"`
	UserID         string             `bson:"userId" json:"user_id" validate:"required"`
	Channel        Channel            `bson:"channel" json:"channel" validate:"required,oneof=in_app email push"`
	Status         QueueStatus        `bson:"status" json:"status" validate:"required,oneof=pending processing delivered failed dead"`
	Attempts       int                `bson:"attempts" json:"attempts" validate:"min=0"`
	MaxAttempts    int                `bson:"maxAttempts" json:"max_attempts" validate:"min=1"`
	NextAttemptAt  *time.Time         `bson:"nextAttemptAt,omitempty" json:"next_attempt_at,omitempty"`
	Errors         []AttemptError     `bson:"errors,omitempty" json:"errors,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at" validate:"required"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Validate checks field-level constraints.
func (q *NotificationQueueItem) Validate() error {
	if err := getValidator().Struct(q); err != nil {
		return fmt.Errorf("op=queueitem.validate: %w", err)
	}
	return nil
}

// ScheduleRetry records a failed attempt and computes when to try again on
// an exponential schedule (30s initial, doubling, capped at an hour, with
// jitter). Once attempts reach MaxAttempts the item goes dead and
// NextAttemptAt is cleared. Error history keeps only the most recent
// entries.
func (q *NotificationQueueItem) ScheduleRetry(now time.Time, cause error) {
	q.Attempts++
	q.UpdatedAt = now

	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	q.Errors = append(q.Errors, AttemptError{At: now, Message: msg})
	if len(q.Errors) > maxErrorHistory {
		q.Errors = q.Errors[len(q.Errors)-maxErrorHistory:]
	}

	if q.MaxAttempts <= 0 {
		q.MaxAttempts = DefaultMaxAttempts
	}
	if q.Attempts >= q.MaxAttempts {
		q.Status = QueueDead
		q.NextAttemptAt = nil
		return
	}

	next := now.Add(retryDelay(q.Attempts))
	q.Status = QueuePending
	q.NextAttemptAt = &next
}

// retryDelay returns the backoff delay after the given number of failed
// attempts (attempt >= 1).
func retryDelay(attempt int) time.Duration {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = retryInitialInterval
	expo.MaxInterval = retryMaxInterval
	expo.Multiplier = retryMultiplier
	expo.MaxElapsedTime = 0 // schedule never gives up; MaxAttempts does

	d := expo.NextBackOff()
	for i := 1; i < attempt; i++ {
		d = expo.NextBackOff()
	}
	return d
}
