// Package social maintains the follow graph stored as mirrored id sets on
// the two user documents.
package social

import (
	"context"
	"errors"

	"espora/store"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type Service struct {
	store  store.Store
	notify Notifier
}

// Notifier receives best-effort follow notifications. May be nil.
type Notifier interface {
	Notify(ctx context.Context, userID, title, body string)
}

func NewService(s store.Store, n Notifier) *Service {
	return &Service{store: s, notify: n}
}

// Set follows or unfollows target on behalf of follower. The two writes
// (followed on the follower, followers on the target) are independent
// document updates; set semantics make repeats no-ops.
func (s *Service) Set(ctx context.Context, followerID, targetID string, follow bool) error {
	if followerID == targetID {
		return ErrSelfFollow
	}

	follower, err := s.store.GetUser(ctx, followerID)
	if err != nil {
		return err
	}
	if _, err := s.store.GetUser(ctx, targetID); err != nil {
		return err
	}

	already := false
	for _, id := range follower.Followed {
		if id == targetID {
			already = true
			break
		}
	}

	if follow {
		if err := s.store.AddToUserSet(ctx, followerID, store.FieldFollowed, targetID); err != nil {
			return err
		}
		if err := s.store.AddToUserSet(ctx, targetID, store.FieldFollowers, followerID); err != nil {
			return err
		}
		if !already && s.notify != nil {
			s.notify.Notify(ctx, targetID, "Nuevo seguidor", follower.Name)
		}
		return nil
	}

	if err := s.store.RemoveFromUserSet(ctx, followerID, store.FieldFollowed, targetID); err != nil {
		return err
	}
	return s.store.RemoveFromUserSet(ctx, targetID, store.FieldFollowers, followerID)
}
