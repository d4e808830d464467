package model

import (
	"time"

	"gorm.io/gorm"
)

// Role enumerates what a user may do platform-wide. Per-resource permissions
// are the auth service's concern; the schema only persists the coarse role.
type Role string

// Role values.
const (
	RoleReader Role = "reader"
	RoleAuthor Role = "author"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleReader, RoleAuthor, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// User is an account record. PasswordHash is nil for federated identities
// (OAuth sign-ins); when present it is encoded by pkg/passhash.
//
// Deleting a user cascades to Profile and Sessions only. Authored posts and
// comments survive with their author reference nulled; likes and bookmarks
// are removed with the user.
type User struct {
	ID            string    `gorm:"primaryKey;type:char(26)" json:"id"`
	Email         string    `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Username      string    `gorm:"size:60;not null;uniqueIndex:idx_users_username" json:"username"`
	PasswordHash  *string   `gorm:"size:255" json:"-"`
	Role          Role      `gorm:"size:20;not null;default:reader" json:"role"`
	EmailVerified bool      `gorm:"not null;default:false" json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Profile  *Profile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	Sessions []Session `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (User) TableName() string { return "users" }

// BeforeCreate assigns a ULID when the caller did not provide one.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}
