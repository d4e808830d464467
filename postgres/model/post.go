package model

import (
	"time"

	"gorm.io/gorm"
)

// PostStatus tracks a post through its editorial lifecycle.
type PostStatus string

// PostStatus values.
const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
	PostDeleted   PostStatus = "deleted"
)

// Valid reports whether s is one of the declared statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case PostDraft, PostPublished, PostArchived, PostDeleted:
		return true
	}
	return false
}

// Visibility controls who can reach a published post.
type Visibility string

// Visibility values.
const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
)

// Valid reports whether v is one of the declared visibilities.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityUnlisted, VisibilityPrivate:
		return true
	}
	return false
}

// Post is an article. AuthorID is nullable: deleting a user keeps their posts
// and nulls the reference (the orphaned-author policy lives outside the
// schema). Comments, likes, bookmarks, and junction rows all cascade when a
// post is hard-deleted; editorial removal normally just flips Status.
//
// ViewCount, LikeCount, and CommentCount are denormalized read-path counters
// reconciled from document-store aggregates by external jobs. This library
// never writes them.
type Post struct {
	ID          string     `gorm:"primaryKey;type:char(26)" json:"id"`
	AuthorID    *string    `gorm:"type:char(26);index:idx_posts_author" json:"author_id,omitempty"`
	Author      *User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"size:160;not null;uniqueIndex:idx_posts_slug" json:"slug"`
	Excerpt     string     `gorm:"size:500" json:"excerpt,omitempty"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Status      PostStatus `gorm:"size:20;not null;default:draft;index:idx_posts_status_published_at,priority:1" json:"status"`
	Visibility  Visibility `gorm:"size:20;not null;default:public" json:"visibility"`
	PublishedAt *time.Time `gorm:"index:idx_posts_status_published_at,priority:2" json:"published_at,omitempty"`

	ViewCount    int64 `gorm:"not null;default:0" json:"view_count"`
	LikeCount    int64 `gorm:"not null;default:0" json:"like_count"`
	CommentCount int64 `gorm:"not null;default:0" json:"comment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Categories []Category `gorm:"many2many:post_categories;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	Tags       []Tag      `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Comments   []Comment  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Likes      []Like     `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Bookmarks  []Bookmark `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (Post) TableName() string { return "posts" }

// BeforeCreate assigns a ULID when the caller did not provide one.
func (p *Post) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

// Published reports whether the post is live at the given time. A published
// status with a future PublishedAt is a scheduled post, not yet live.
func (p Post) Published(now time.Time) bool {
	return p.Status == PostPublished && p.PublishedAt != nil && !p.PublishedAt.After(now)
}
