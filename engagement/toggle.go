// Package engagement implements the like/save toggle and the optimistic
// client reconciliation that fronts it.
package engagement

import (
	"context"

	"espora/store"
)

type Kind int

const (
	Like Kind = iota
	Save
)

func (k Kind) setField() string {
	if k == Save {
		return store.FieldSavedPostIds
	}
	return store.FieldLikedPostIds
}

func (k Kind) counterField() string {
	if k == Save {
		return store.FieldSaves
	}
	return store.FieldLikes
}

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Toggle sets the like/save state of a post for a user. The membership set
// on the user document and the counter on the post document are two
// independent writes, matching the stored contract; membership is re-read
// first so a repeated toggle in the same direction is a successful no-op
// rather than a double count.
func (s *Service) Toggle(ctx context.Context, userID, postID string, kind Kind, on bool) error {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.store.GetPost(ctx, postID); err != nil {
		return err
	}

	set := user.LikedPostIds
	if kind == Save {
		set = user.SavedPostIds
	}
	current := contains(set, postID)
	if current == on {
		return nil
	}

	if on {
		if err := s.store.AddToUserSet(ctx, userID, kind.setField(), postID); err != nil {
			return err
		}
		return s.store.IncPostCounter(ctx, postID, kind.counterField(), 1)
	}

	if err := s.store.RemoveFromUserSet(ctx, userID, kind.setField(), postID); err != nil {
		return err
	}
	return s.store.IncPostCounter(ctx, postID, kind.counterField(), -1)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
