package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Imgs        []string           `bson:"imgs" json:"imgs"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	Likes       int                `bson:"likes" json:"likes"`
	Saves       int                `bson:"saves" json:"saves"`
}

// EnrichedPost is a post with its full comment tree attached, ready for
// rendering. The author itself is resolved through the feed's user table.
type EnrichedPost struct {
	Post
	ComentCount int              `json:"comentCount"`
	Coments     []EnrichedComent `json:"coments"`
}
