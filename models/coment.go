package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coment and Reply keep the field spellings of the stored documents
// ("coment", "replys") since existing data uses them.

type Coment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    string             `bson:"postId" json:"postId"`
	UserID    string             `bson:"userId" json:"userId"`
	Coment    string             `bson:"coment" json:"coment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Reply struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ComentID  string             `bson:"comentId" json:"comentId"`
	PostID    string             `bson:"postId" json:"postId"`
	UserID    string             `bson:"userId" json:"userId"`
	Coment    string             `bson:"coment" json:"coment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type EnrichedReply struct {
	Reply
	Name         string `json:"name"`
	ProfilePhoto string `json:"profilePhoto"`
}

type EnrichedComent struct {
	Coment
	Name         string          `json:"name"`
	ProfilePhoto string          `json:"profilePhoto"`
	Replys       []EnrichedReply `json:"replys"`
}
