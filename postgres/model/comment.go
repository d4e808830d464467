package model

import (
	"time"

	"gorm.io/gorm"
)

// CommentStatus tracks moderation state.
type CommentStatus string

// CommentStatus values.
const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentSpam     CommentStatus = "spam"
	CommentDeleted  CommentStatus = "deleted"
)

// Valid reports whether s is one of the declared statuses.
func (s CommentStatus) Valid() bool {
	switch s {
	case CommentPending, CommentApproved, CommentSpam, CommentDeleted:
		return true
	}
	return false
}

// Comment is a reply on a post. ParentID chains replies; hard-deleting a
// comment removes its whole reply subtree (CASCADE), while moderation
// soft-deletes by setting Status. Comments survive author deletion with
// AuthorID nulled, and disappear with their post.
type Comment struct {
	ID        string        `gorm:"primaryKey;type:char(26)" json:"id"`
	PostID    string        `gorm:"type:char(26);not null;index:idx_comments_post_status,priority:1" json:"post_id"`
	AuthorID  *string       `gorm:"type:char(26);index:idx_comments_author" json:"author_id,omitempty"`
	ParentID  *string       `gorm:"type:char(26);index:idx_comments_parent" json:"parent_id,omitempty"`
	Body      string        `gorm:"type:text;not null" json:"body"`
	Status    CommentStatus `gorm:"size:20;not null;default:pending;index:idx_comments_post_status,priority:2" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Replies []Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"replies,omitempty"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (Comment) TableName() string { return "comments" }

// BeforeCreate assigns a ULID when the caller did not provide one.
func (c *Comment) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}
