package document

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeliveryStatus is the terminal provider-side outcome of a send.
type DeliveryStatus string

// DeliveryStatus values.
const (
	DeliveryQueued    DeliveryStatus = "queued"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryBounced   DeliveryStatus = "bounced"
	DeliveryFailed    DeliveryStatus = "failed"
)

// DeliveryEvent is one provider lifecycle callback (queued, sent,
// delivered, opened, bounced, ...). Kind is the provider's event name,
// recorded verbatim.
type DeliveryEvent struct {
	Kind   string    `bson:"kind" json:"kind" validate:"required"`
	At     time.Time `bson:"at" json:"at" validate:"required"`
	Detail string    `bson:"detail,omitempty" json:"detail,omitempty"`
}

// EmailLog is the delivery receipt for one outbound email. Logs expire 30
// days after Timestamp.
type EmailLog struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NotificationID    string             `bson:"notificationId,omitempty" json:"notification_id,omitempty"`
	Recipient         string             `bson:"recipient" json:"recipient" validate:"required,email"`
	Subject           string             `bson:"subject" json:"subject" validate:"required"`
	Provider          string             `bson:"provider" json:"provider" validate:"required"`
	ProviderMessageID string             `bson:"providerMessageId,omitempty" json:"provider_message_id,omitempty"`
	Events            []DeliveryEvent    `bson:"events,omitempty" json:"events,omitempty" validate:"dive"`
	Status            DeliveryStatus     `bson:"status" json:"status" validate:"required,oneof=queued sent delivered bounced failed"`
	Timestamp         time.Time          `bson:"timestamp" json:"timestamp" validate:"required"`
}

// Validate checks field-level constraints, including each lifecycle event.
func (e *EmailLog) Validate() error {
	if err := getValidator().Struct(e); err != nil {
		return fmt.Errorf("op=emaillog.validate: %w", err)
	}
	return nil
}

// PushNotificationLog is the delivery receipt for one push send. Logs
// expire 30 days after Timestamp.
type PushNotificationLog struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NotificationID    string             `bson:"notificationId,omitempty" json:"notification_id,omitempty"`
	DeviceToken       string             `bson:"deviceToken" json:"device_token" validate:"required"`
	Platform          string             `bson:"platform" json:"platform" validate:"required,oneof=ios android web"`
	Provider          string             `bson:"provider" json:"provider" validate:"required"`
	ProviderMessageID string             `bson:"providerMessageId,omitempty" json:"provider_message_id,omitempty"`
	Events            []DeliveryEvent    `bson:"events,omitempty" json:"events,omitempty" validate:"dive"`
	Status            DeliveryStatus     `bson:"status" json:"status" validate:"required,oneof=queued sent delivered bounced failed"`
	Timestamp         time.Time          `bson:"timestamp" json:"timestamp" validate:"required"`
}

// Validate checks field-level constraints, including each lifecycle event.
func (p *PushNotificationLog) Validate() error {
	if err := getValidator().Struct(p); err != nil {
		return fmt.Errorf("op=pushlog.validate: %w", err)
	}
	return nil
}
