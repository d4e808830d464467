package document

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog records one administrative or compliance-relevant action: who
// changed what, with the entity's before/after field values. Retained two
// years from Timestamp; the window is fixed at the index, never per record.
type AuditLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ActorID    string             `bson:"actorId" json:"actor_id" validate:"required"`
	ActorEmail string             `bson:"actorEmail,omitempty" json:"actor_email,omitempty"`
	Action     string             `bson:"action" json:"action" validate:"required"`
	EntityType string             `bson:"entityType" json:"entity_type" validate:"required"`
	EntityID   string             `bson:"entityId" json:"entity_id" validate:"required"`
	Before     map[string]any     `bson:"before,omitempty" json:"before,omitempty"`
	After      map[string]any     `bson:"after,omitempty" json:"after,omitempty"`
	RequestID  string             `bson:"requestId,omitempty" json:"request_id,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"userAgent,omitempty" json:"user_agent,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp" validate:"required"`
}

// Validate checks field-level constraints.
func (a *AuditLog) Validate() error {
	if err := getValidator().Struct(a); err != nil {
		return fmt.Errorf("op=auditlog.validate: %w", err)
	}
	return nil
}
