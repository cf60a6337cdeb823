package store

import (
	"context"
	"errors"

	"espora/models"
)

var ErrNotFound = errors.New("document not found")

// Array fields on the user document that behave as id sets.
const (
	FieldLikedPostIds = "likedPostIds"
	FieldSavedPostIds = "savedPostIds"
	FieldFollowers    = "followers"
	FieldFollowed     = "followed"
)

// Counter fields on the post document.
const (
	FieldLikes = "likes"
	FieldSaves = "saves"
)

// Store exposes the document-store operations the app relies on: point
// reads, ordered collection queries, atomic counter increments and atomic
// set add/remove on array fields. All id parameters are hex document ids.
type Store interface {
	InsertUser(ctx context.Context, u *models.User) (string, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	MergeUser(ctx context.Context, id string, fields map[string]interface{}) error
	AddToUserSet(ctx context.Context, id, field, value string) error
	RemoveFromUserSet(ctx context.Context, id, field, value string) error

	InsertPost(ctx context.Context, p *models.Post) (string, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListPostsByUser(ctx context.Context, userID string) ([]models.Post, error)
	SetPostImgs(ctx context.Context, id string, imgs []string) error
	IncPostCounter(ctx context.Context, id, field string, delta int) error

	InsertComent(ctx context.Context, c *models.Coment) (string, error)
	GetComent(ctx context.Context, id string) (*models.Coment, error)
	ListComents(ctx context.Context, postID string) ([]models.Coment, error)
	InsertReply(ctx context.Context, r *models.Reply) (string, error)
	ListReplys(ctx context.Context, comentID string) ([]models.Reply, error)

	InsertPushSub(ctx context.Context, s *models.PushSubscription) error
	ListPushSubs(ctx context.Context, userID string) ([]models.PushSubscription, error)
}
