package feed

import "context"

const galleryLimit = 9

// Gallery returns the image URLs of a user's posts, newest post first,
// capped at the nine most recent images.
func (a *Assembler) Gallery(ctx context.Context, userID string) ([]string, error) {
	posts, err := a.store.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	imgs := []string{}
	for _, p := range posts {
		imgs = append(imgs, p.Imgs...)
	}
	if len(imgs) > galleryLimit {
		imgs = imgs[:galleryLimit]
	}
	return imgs, nil
}
