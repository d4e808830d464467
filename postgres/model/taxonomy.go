package model

import (
	"time"

	"gorm.io/gorm"
)

// Category is a node in the curation hierarchy. ParentID forms a tree;
// deleting a parent promotes its children to roots (SET NULL). Maximum
// nesting depth is a content-service rule, not a schema constraint.
type Category struct {
	ID          string    `gorm:"primaryKey;type:char(26)" json:"id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Slug        string    `gorm:"size:160;not null;uniqueIndex:idx_categories_slug" json:"slug"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	ParentID    *string   `gorm:"type:char(26);index:idx_categories_parent" json:"parent_id,omitempty"`
	Parent      *Category `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Posts    []Post     `gorm:"many2many:post_categories" json:"-"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (Category) TableName() string { return "categories" }

// BeforeCreate assigns a ULID when the caller did not provide one.
func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}

// Tag is a flat label attached to posts.
type Tag struct {
	ID        string    `gorm:"primaryKey;type:char(26)" json:"id"`
	Name      string    `gorm:"size:60;not null" json:"name"`
	Slug      string    `gorm:"size:160;not null;uniqueIndex:idx_tags_slug" json:"slug"`
	CreatedAt time.Time `json:"created_at"`

	Posts []Post `gorm:"many2many:post_tags" json:"-"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (Tag) TableName() string { return "tags" }

// BeforeCreate assigns a ULID when the caller did not provide one.
func (t *Tag) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = NewID()
	}
	return nil
}

// PostCategory is the posts<->categories junction. The composite primary key
// is the pair itself, so the same category cannot attach twice.
type PostCategory struct {
	PostID     string    `gorm:"primaryKey;type:char(26)" json:"post_id"`
	CategoryID string    `gorm:"primaryKey;type:char(26)" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (PostCategory) TableName() string { return "post_categories" }

// PostTag is the posts<->tags junction, composite-keyed like PostCategory.
type PostTag struct {
	PostID    string    `gorm:"primaryKey;type:char(26)" json:"post_id"`
	TagID     string    `gorm:"primaryKey;type:char(26)" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName fixes the table name independent of GORM's pluralization.
func (PostTag) TableName() string { return "post_tags" }
