package document

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsEvent is the generic event envelope. Type is a dotted event name
// like "post.share" or "signup.completed"; Props carries whatever the
// emitting service wants, uninspected. Either UserID or AnonymousID
// identifies the subject; both may be set after a login stitches sessions.
//
// Events are kept indefinitely; downstream aggregation decides what to roll
// up and discard.
type AnalyticsEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type        string             `bson:"type" json:"type" validate:"required"`
	UserID      string             `bson:"userId,omitempty" json:"user_id,omitempty"`
	AnonymousID string             `bson:"anonymousId,omitempty" json:"anonymous_id,omitempty"`
	Props       map[string]any     `bson:"props,omitempty" json:"props,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp" validate:"required"`
}

// Validate checks field-level constraints.
func (e *AnalyticsEvent) Validate() error {
	if err := getValidator().Struct(e); err != nil {
		return fmt.Errorf("op=event.validate: %w", err)
	}
	if e.UserID == "" && e.AnonymousID == "" {
		return fmt.Errorf("op=event.validate: either userId or anonymousId must be set")
	}
	return nil
}
