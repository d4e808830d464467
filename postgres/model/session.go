package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a bearer-token record. The relational store enforces nothing
// about expiry: expired rows stay until the application deletes them (see
// postgres.RetentionSweeper), so every token check must compare ExpiresAt
// itself.
type Session struct {
	ID        string    `gorm:"primaryKey;type:char(26)" json:"id"`
	UserID    string    `gorm:"type:char(26);not null;index:idx_sessions_user" json:"user_id"`
	Token     string    `gorm:"size:128;not null;uniqueIndex:idx_sessions_token" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index:idx_sessions_expires_at" json:"expires_at"`
	UserAgent string    `gorm:"size:512" json:"user_agent,omitempty"`
	IP        string    `gorm:"size:45" json:"ip,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (Session) TableName() string { return "sessions" }

// BeforeCreate assigns a ULID and, when absent, a fresh bearer token.
func (s *Session) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	if s.Token == "" {
		s.Token = NewSessionToken()
	}
	return nil
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// NewSessionToken returns a random opaque bearer token.
func NewSessionToken() string {
	return uuid.NewString()
}
