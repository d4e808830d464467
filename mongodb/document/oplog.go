package document

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogLevel is the severity of a SystemLog entry.
type LogLevel string

// LogLevel values.
const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// SystemLog is one operational log line shipped by a service. Expires 30
// days after Timestamp.
type SystemLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Level     LogLevel           `bson:"level" json:"level" validate:"required,oneof=debug info warn error"`
	Service   string             `bson:"service" json:"service" validate:"required"`
	Message   string             `bson:"message" json:"message" validate:"required"`
	Fields    map[string]any     `bson:"fields,omitempty" json:"fields,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp" validate:"required"`
}

// Validate checks field-level constraints.
func (s *SystemLog) Validate() error {
	if err := getValidator().Struct(s); err != nil {
		return fmt.Errorf("op=systemlog.validate: %w", err)
	}
	return nil
}

// ErrorLog is one captured error occurrence. Fingerprint groups repeats of
// the same failure. The collection's TTL index is partial: records expire
// 90 days after Timestamp only once Resolved is true, so an open error
// stays until someone resolves it, however old it gets.
type ErrorLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Service     string             `bson:"service" json:"service" validate:"required"`
	Message     string             `bson:"message" json:"message" validate:"required"`
	Stack       string             `bson:"stack,omitempty" json:"stack,omitempty"`
	Fingerprint string             `bson:"fingerprint" json:"fingerprint" validate:"required"`
	RequestID   string             `bson:"requestId,omitempty" json:"request_id,omitempty"`
	UserID      string             `bson:"userId,omitempty" json:"user_id,omitempty"`
	Resolved    bool               `bson:"resolved" json:"resolved"`
	ResolvedAt  *time.Time         `bson:"resolvedAt,omitempty" json:"resolved_at,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp" validate:"required"`
}

// Validate checks field-level constraints.
func (e *ErrorLog) Validate() error {
	if err := getValidator().Struct(e); err != nil {
		return fmt.Errorf("op=errorlog.validate: %w", err)
	}
	return nil
}

// PerformanceLog is one timed operation sample. Expires 7 days after
// Timestamp.
type PerformanceLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Service    string             `bson:"service" json:"service" validate:"required"`
	Operation  string             `bson:"operation" json:"operation" validate:"required"`
	DurationMS int64              `bson:"durationMs" json:"duration_ms" validate:"min=0"`
	Success    bool               `bson:"success" json:"success"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp" validate:"required"`
}

// Validate checks field-level constraints.
func (p *PerformanceLog) Validate() error {
	if err := getValidator().Struct(p); err != nil {
		return fmt.Errorf("op=perflog.validate: %w", err)
	}
	return nil
}
