package model

import (
	"time"

	"gorm.io/gorm"
)

// Like records one user liking one post. The composite unique index on
// (user_id, post_id) makes a second like a constraint violation the calling
// service translates into its conflict handling. Likes vanish with either
// side of the pair.
type Like struct {
	ID        string    `gorm:"primaryKey;type:char(26)" json:"id"`
	UserID    string    `gorm:"type:char(26);not null;uniqueIndex:idx_likes_user_post,priority:1" json:"user_id"`
	PostID    string    `gorm:"type:char(26);not null;uniqueIndex:idx_likes_user_post,priority:2;index:idx_likes_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (Like) TableName() string { return "likes" }

// BeforeCreate assigns a ULID when the caller did not provide one.
func (l *Like) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = NewID()
	}
	return nil
}

// Bookmark mirrors Like for save-for-later, unique per (user_id, post_id).
type Bookmark struct {
	ID        string    `gorm:"primaryKey;type:char(26)" json:"id"`
	UserID    string    `gorm:"type:char(26);not null;uniqueIndex:idx_bookmarks_user_post,priority:1" json:"user_id"`
	PostID    string    `gorm:"type:char(26);not null;uniqueIndex:idx_bookmarks_user_post,priority:2;index:idx_bookmarks_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (Bookmark) TableName() string { return "bookmarks" }

// BeforeCreate assigns a ULID when the caller did not provide one.
func (b *Bookmark) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = NewID()
	}
	return nil
}
