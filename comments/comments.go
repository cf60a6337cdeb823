// Package comments handles comment and reply submission. Records are
// append-only; there is no edit or delete path.
package comments

import (
	"context"
	"errors"
	"strings"
	"time"

	"espora/models"
	"espora/store"
)

var ErrEmptyText = errors.New("comment text is empty")

type Service struct {
	store  store.Store
	notify Notifier
	now    func() time.Time
}

// Notifier receives best-effort engagement notifications. May be nil.
type Notifier interface {
	Notify(ctx context.Context, userID, title, body string)
}

func NewService(s store.Store, n Notifier) *Service {
	return &Service{store: s, notify: n, now: time.Now}
}

// SubmitComent appends a comment under a post. The caller re-fetches or
// optimistically inserts the node; nothing is returned beyond the new id.
func (s *Service) SubmitComent(ctx context.Context, userID, postID, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return "", err
	}

	id, err := s.store.InsertComent(ctx, &models.Coment{
		PostID:    postID,
		UserID:    userID,
		Coment:    text,
		CreatedAt: s.now(),
	})
	if err != nil {
		return "", err
	}

	if s.notify != nil && post.UserID != userID {
		s.notify.Notify(ctx, post.UserID, "Nuevo comentario", text)
	}
	return id, nil
}

// SubmitReply appends a reply under a comment of a post.
func (s *Service) SubmitReply(ctx context.Context, userID, postID, comentID, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	if _, err := s.store.GetPost(ctx, postID); err != nil {
		return "", err
	}
	parent, err := s.store.GetComent(ctx, comentID)
	if err != nil {
		return "", err
	}

	id, err := s.store.InsertReply(ctx, &models.Reply{
		ComentID:  comentID,
		PostID:    postID,
		UserID:    userID,
		Coment:    text,
		CreatedAt: s.now(),
	})
	if err != nil {
		return "", err
	}

	if s.notify != nil && parent.UserID != userID {
		s.notify.Notify(ctx, parent.UserID, "Nueva respuesta", text)
	}
	return id, nil
}
