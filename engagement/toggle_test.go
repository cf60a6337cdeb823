package engagement

import (
	"context"
	"testing"
	"time"

	"espora/models"
	"espora/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*store.Memory, *Service, string, string) {
	t.Helper()
	s := store.NewMemory()
	ctx := context.Background()

	userID, err := s.InsertUser(ctx, &models.User{
		Name:         "Ana",
		LikedPostIds: []string{},
		SavedPostIds: []string{},
	})
	require.NoError(t, err)

	postID, err := s.InsertPost(ctx, &models.Post{
		UserID:    userID,
		CreatedAt: time.Now(),
		Likes:     3,
	})
	require.NoError(t, err)

	return s, NewService(s), userID, postID
}

func TestToggleLikeOnThenOff(t *testing.T) {
	s, svc, userID, postID := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.Toggle(ctx, userID, postID, Like, true))

	post, err := s.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, 4, post.Likes)

	user, err := s.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Contains(t, user.LikedPostIds, postID)

	require.NoError(t, svc.Toggle(ctx, userID, postID, Like, false))

	post, err = s.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, 3, post.Likes)

	user, err = s.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.NotContains(t, user.LikedPostIds, postID)
}

func TestToggleIdempotent(t *testing.T) {
	s, svc, userID, postID := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.Toggle(ctx, userID, postID, Like, true))
	require.NoError(t, svc.Toggle(ctx, userID, postID, Like, true))

	post, err := s.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, 4, post.Likes)

	user, err := s.GetUser(ctx, userID)
	require.NoError(t, err)

	count := 0
	for _, id := range user.LikedPostIds {
		if id == postID {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestToggleOffWhenAbsentIsNoop(t *testing.T) {
	s, svc, userID, postID := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.Toggle(ctx, userID, postID, Like, false))

	post, err := s.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, 3, post.Likes)
}

func TestToggleSaveTracksSeparateSet(t *testing.T) {
	s, svc, userID, postID := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.Toggle(ctx, userID, postID, Save, true))

	post, err := s.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, 1, post.Saves)
	assert.Equal(t, 3, post.Likes)

	user, err := s.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Contains(t, user.SavedPostIds, postID)
	assert.NotContains(t, user.LikedPostIds, postID)
}

func TestToggleMissingUserOrPost(t *testing.T) {
	_, svc, userID, postID := setup(t)
	ctx := context.Background()

	err := svc.Toggle(ctx, "000000000000000000000001", postID, Like, true)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = svc.Toggle(ctx, userID, "000000000000000000000002", Like, true)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
