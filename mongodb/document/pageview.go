package document

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeviceClass buckets the visitor's client.
type DeviceClass string

// DeviceClass values.
const (
	DeviceDesktop DeviceClass = "desktop"
	DeviceMobile  DeviceClass = "mobile"
	DeviceTablet  DeviceClass = "tablet"
	DeviceBot     DeviceClass = "bot"
)

// TrafficSource classifies how the visit arrived.
type TrafficSource string

// TrafficSource values.
const (
	SourceDirect   TrafficSource = "direct"
	SourceOrganic  TrafficSource = "organic"
	SourceSocial   TrafficSource = "social"
	SourceReferral TrafficSource = "referral"
	SourceEmail    TrafficSource = "email"
	SourcePaid     TrafficSource = "paid"
)

// PageView is one rendered page visit. Rows expire 90 days after Timestamp
// via the collection's TTL index.
type PageView struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Path          string             `bson:"path" json:"path" validate:"required"`
	PostID        string             `bson:"postId,omitempty" json:"post_id,omitempty"`
	VisitorID     string             `bson:"visitorId" json:"visitor_id" validate:"required"`
	SessionID     string             `bson:"sessionId" json:"session_id" validate:"required"`
	Device        DeviceClass        `bson:"device" json:"device" validate:"required,oneof=desktop mobile tablet bot"`
	Referrer      string             `bson:"referrer,omitempty" json:"referrer,omitempty"`
	Source        TrafficSource      `bson:"source" json:"source" validate:"required,oneof=direct organic social referral email paid"`
	ScrollDepth   int                `bson:"scrollDepth" json:"scroll_depth" validate:"min=0,max=100"`
	SecondsOnPage float64            `bson:"secondsOnPage" json:"seconds_on_page" validate:"min=0"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp" validate:"required"`
}

// Validate checks field-level constraints.
func (p *PageView) Validate() error {
	if err := getValidator().Struct(p); err != nil {
		return fmt.Errorf("op=pageview.validate: %w", err)
	}
	return nil
}
