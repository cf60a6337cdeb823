package social

import (
	"context"
	"testing"

	"espora/models"
	"espora/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*store.Memory, *Service, string, string) {
	t.Helper()
	s := store.NewMemory()
	ctx := context.Background()

	a, err := s.InsertUser(ctx, &models.User{Name: "Ana", Followed: []string{}, Followers: []string{}})
	require.NoError(t, err)
	b, err := s.InsertUser(ctx, &models.User{Name: "Luis", Followed: []string{}, Followers: []string{}})
	require.NoError(t, err)

	return s, NewService(s, nil), a, b
}

func TestFollowSymmetric(t *testing.T) {
	s, svc, a, b := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, a, b, true))

	ua, err := s.GetUser(ctx, a)
	require.NoError(t, err)
	assert.Contains(t, ua.Followed, b)

	ub, err := s.GetUser(ctx, b)
	require.NoError(t, err)
	assert.Contains(t, ub.Followers, a)
}

func TestFollowRepeatIsNoop(t *testing.T) {
	s, svc, a, b := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, a, b, true))
	require.NoError(t, svc.Set(ctx, a, b, true))

	ub, err := s.GetUser(ctx, b)
	require.NoError(t, err)

	count := 0
	for _, id := range ub.Followers {
		if id == a {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestUnfollow(t *testing.T) {
	s, svc, a, b := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, a, b, true))
	require.NoError(t, svc.Set(ctx, a, b, false))

	ua, err := s.GetUser(ctx, a)
	require.NoError(t, err)
	assert.NotContains(t, ua.Followed, b)

	ub, err := s.GetUser(ctx, b)
	require.NoError(t, err)
	assert.NotContains(t, ub.Followers, a)
}

func TestUnfollowWhenNotFollowing(t *testing.T) {
	_, svc, a, b := setup(t)
	assert.NoError(t, svc.Set(context.Background(), a, b, false))
}

func TestSelfFollow(t *testing.T) {
	_, svc, a, _ := setup(t)
	assert.ErrorIs(t, svc.Set(context.Background(), a, a, true), ErrSelfFollow)
}

func TestFollowMissingTarget(t *testing.T) {
	_, svc, a, _ := setup(t)
	err := svc.Set(context.Background(), a, "000000000000000000000001", true)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
