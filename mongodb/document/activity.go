package document

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityVerb names what the user did.
type ActivityVerb string

// ActivityVerb values.
const (
	VerbPosted     ActivityVerb = "posted"
	VerbCommented  ActivityVerb = "commented"
	VerbLiked      ActivityVerb = "liked"
	VerbBookmarked ActivityVerb = "bookmarked"
	VerbFollowed   ActivityVerb = "followed"
)

// UserActivity is one entry in a user's activity feed: who did what to
// which object. Entries expire one year after CreatedAt.
type UserActivity struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"user_id" validate:"required"`
	Verb       ActivityVerb       `bson:"verb" json:"verb" validate:"required,oneof=posted commented liked bookmarked followed"`
	ObjectType string             `bson:"objectType" json:"object_type" validate:"required"`
	ObjectID   string             `bson:"objectId" json:"object_id" validate:"required"`
	Summary    string             `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"created_at" validate:"required"`
}

// Validate checks field-level constraints.
func (a *UserActivity) Validate() error {
	if err := getValidator().Struct(a); err != nil {
		return fmt.Errorf("op=activity.validate: %w", err)
	}
	return nil
}
