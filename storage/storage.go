// Package storage is the blob store used for post images and profile
// photos. Objects are written once under a user-scoped path and read back
// through their public URL.
package storage

import (
	"context"
	"fmt"
	"io"
)

type Uploader interface {
	// Upload stores the blob under path and returns its public URL.
	Upload(ctx context.Context, path string, r io.Reader) (string, error)
}

// PostImagePath is where the index-th image of a post lives.
func PostImagePath(userID, postID string, index int) string {
	return fmt.Sprintf("users/%s/posts/%s/%d.jpg", userID, postID, index)
}

// ProfilePhotoPath is where a user's profile photo lives; re-uploads
// overwrite in place.
func ProfilePhotoPath(userID string) string {
	return fmt.Sprintf("users/%s/profile.jpg", userID)
}
