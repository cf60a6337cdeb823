// Package feed assembles the home feed: posts newest first, each carrying
// its full comment tree, with author display data denormalized from a
// deduplicated user lookup.
package feed

import (
	"context"

	"espora/logger"
	"espora/models"
	"espora/store"
)

// PlaceholderName is rendered when a referenced author no longer resolves.
const PlaceholderName = "Anónimo"

// PlaceholderPhoto is the default avatar for missing or photo-less authors.
const PlaceholderPhoto = "/profile-photo.png"

type Feed struct {
	Posts []models.EnrichedPost         `json:"posts"`
	Users map[string]models.UserSummary `json:"users"`
}

type Assembler struct {
	store store.Store
}

func NewAssembler(s store.Store) *Assembler {
	return &Assembler{store: s}
}

// Assemble builds the whole feed. A failed post query fails the assembly;
// a missing referenced user degrades to a placeholder entry instead.
func (a *Assembler) Assemble(ctx context.Context) (*Feed, error) {
	posts, err := a.store.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedPost, 0, len(posts))
	authorIDs := make(map[string]struct{})

	for _, p := range posts {
		authorIDs[p.UserID] = struct{}{}

		coments, err := a.resolveComents(ctx, p.ID.Hex(), authorIDs)
		if err != nil {
			return nil, err
		}

		enriched = append(enriched, models.EnrichedPost{
			Post:        p,
			ComentCount: len(coments),
			Coments:     coments,
		})
	}

	users, err := a.resolveUsers(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	for i := range enriched {
		denormalize(enriched[i].Coments, users)
	}

	return &Feed{Posts: enriched, Users: users}, nil
}

// ResolvePost returns the ordered comment tree of one post with author
// display fields attached. Missing post is store.ErrNotFound.
func (a *Assembler) ResolvePost(ctx context.Context, postID string) (*models.EnrichedPost, error) {
	p, err := a.store.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	authorIDs := map[string]struct{}{p.UserID: {}}
	coments, err := a.resolveComents(ctx, postID, authorIDs)
	if err != nil {
		return nil, err
	}

	users, err := a.resolveUsers(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	denormalize(coments, users)

	return &models.EnrichedPost{
		Post:        *p,
		ComentCount: len(coments),
		Coments:     coments,
	}, nil
}

func (a *Assembler) resolveComents(ctx context.Context, postID string, authorIDs map[string]struct{}) ([]models.EnrichedComent, error) {
	coments, err := a.store.ListComents(ctx, postID)
	if err != nil {
		return nil, err
	}

	out := make([]models.EnrichedComent, 0, len(coments))
	for _, c := range coments {
		authorIDs[c.UserID] = struct{}{}

		replys, err := a.store.ListReplys(ctx, c.ID.Hex())
		if err != nil {
			return nil, err
		}

		enrichedReplys := make([]models.EnrichedReply, 0, len(replys))
		for _, r := range replys {
			authorIDs[r.UserID] = struct{}{}
			enrichedReplys = append(enrichedReplys, models.EnrichedReply{Reply: r})
		}

		out = append(out, models.EnrichedComent{
			Coment: c,
			Replys: enrichedReplys,
		})
	}
	return out, nil
}

// resolveUsers fetches each referenced profile exactly once. Unresolvable
// ids get a placeholder summary so one deleted account cannot break the feed.
func (a *Assembler) resolveUsers(ctx context.Context, ids map[string]struct{}) (map[string]models.UserSummary, error) {
	users := make(map[string]models.UserSummary, len(ids))
	for id := range ids {
		u, err := a.store.GetUser(ctx, id)
		if err == store.ErrNotFound {
			logger.Log.WithField("userId", id).Debug("feed references unknown user")
			users[id] = models.UserSummary{
				ID:           id,
				Name:         PlaceholderName,
				ProfilePhoto: PlaceholderPhoto,
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		users[id] = u.Summary()
	}
	return users, nil
}

func denormalize(coments []models.EnrichedComent, users map[string]models.UserSummary) {
	for i := range coments {
		if u, ok := users[coments[i].UserID]; ok {
			coments[i].Name = u.Name
			coments[i].ProfilePhoto = u.ProfilePhoto
		} else {
			coments[i].Name = PlaceholderName
			coments[i].ProfilePhoto = PlaceholderPhoto
		}
		for j := range coments[i].Replys {
			r := &coments[i].Replys[j]
			if u, ok := users[r.UserID]; ok {
				r.Name = u.Name
				r.ProfilePhoto = u.ProfilePhoto
			} else {
				r.Name = PlaceholderName
				r.ProfilePhoto = PlaceholderPhoto
			}
		}
	}
}
