package document

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClickedResult records one click-through from a search result list.
type ClickedResult struct {
	PostID   string `bson:"postId" json:"post_id" validate:"required"`
	Position int    `bson:"position" json:"position" validate:"min=0"`
}

// SearchQuery records one executed search: what was asked, how it was
// normalized for aggregation, what came back, and what got clicked.
// Kept indefinitely for relevance tuning.
type SearchQuery struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId,omitempty" json:"user_id,omitempty"`
	Query       string             `bson:"query" json:"query" validate:"required"`
	Normalized  string             `bson:"normalized" json:"normalized" validate:"required"`
	FilterCount int                `bson:"filterCount" json:"filter_count" validate:"min=0"`
	ResultCount int                `bson:"resultCount" json:"result_count" validate:"min=0"`
	Clicked     []ClickedResult    `bson:"clicked,omitempty" json:"clicked,omitempty" validate:"dive"`
	DurationMS  int64              `bson:"durationMs" json:"duration_ms" validate:"min=0"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at" validate:"required"`
}

// Validate checks field-level constraints, including each clicked result.
func (s *SearchQuery) Validate() error {
	if err := getValidator().Struct(s); err != nil {
		return fmt.Errorf("op=search.validate: %w", err)
	}
	return nil
}
