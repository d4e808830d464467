package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile is the 1:1 display-metadata extension of a User. It exists as its
// own row so the hot users table stays narrow; it is removed together with
// its user.
type Profile struct {
	ID          string            `gorm:"primaryKey;type:char(26)" json:"id"`
	UserID      string            `gorm:"type:char(26);not null;uniqueIndex:idx_profiles_user" json:"user_id"`
	DisplayName string            `gorm:"size:120" json:"display_name,omitempty"`
	Bio         string            `gorm:"size:500" json:"bio,omitempty"`
	AvatarURL   string            `gorm:"size:512" json:"avatar_url,omitempty"`
	Website     string            `gorm:"size:255" json:"website,omitempty"`
	Location    string            `gorm:"size:120" json:"location,omitempty"`
	SocialLinks datatypes.JSONMap `gorm:"type:jsonb" json:"social_links,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (Profile) TableName() string { return "profiles" }

// BeforeCreate assigns a ULID when the caller did not provide one.
func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}
