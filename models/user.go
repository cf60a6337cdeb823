package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the single document per account in the users collection. Auth
// fields, profile-completion fields and the engagement id sets all live
// together, mirroring how the frontend reads one snapshot per user.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserName     string             `bson:"userName" json:"userName"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash *string            `bson:"passwordHash,omitempty" json:"-"`
	AuthProvider string             `bson:"authProvider" json:"-"`
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`

	// Completion flow, filled in across steps before registerCompleted flips.
	Birthdate         string `bson:"birthdate,omitempty" json:"birthdate,omitempty"`
	Country           string `bson:"country,omitempty" json:"country,omitempty"`
	Region            string `bson:"region,omitempty" json:"region,omitempty"`
	Category          string `bson:"category,omitempty" json:"category,omitempty"`
	ArtisticStyle     string `bson:"artisticStyle,omitempty" json:"artisticStyle,omitempty"`
	AboutYourProject  string `bson:"aboutYourProject,omitempty" json:"aboutYourProject,omitempty"`
	WantsFromEspora   string `bson:"wantsFromEspora,omitempty" json:"wantsFromEspora,omitempty"`
	ProfilePhoto      string `bson:"profilePhoto,omitempty" json:"profilePhoto"`
	RegisterCompleted bool   `bson:"registerCompleted" json:"registerCompleted"`

	LikedPostIds []string `bson:"likedPostIds" json:"likedPostIds"`
	SavedPostIds []string `bson:"savedPostIds" json:"savedPostIds"`
	Followers    []string `bson:"followers" json:"followers"`
	Followed     []string `bson:"followed" json:"followed"`
}

// UserSummary is the denormalized author shape attached to feed entries and
// returned in the feed's user lookup table.
type UserSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	ProfilePhoto string   `json:"profilePhoto"`
	LikedPostIds []string `json:"likedPostIds,omitempty"`
	SavedPostIds []string `json:"savedPostIds,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:           u.ID.Hex(),
		Name:         u.Name,
		Category:     u.Category,
		ProfilePhoto: u.ProfilePhoto,
		LikedPostIds: u.LikedPostIds,
		SavedPostIds: u.SavedPostIds,
	}
}
