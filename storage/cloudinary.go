package storage

import (
	"context"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary builds an uploader from a CLOUDINARY_URL style connection
// string.
func NewCloudinary(url string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{cld: cld}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, path string, r io.Reader) (string, error) {
	overwrite := true
	res, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:       strings.TrimSuffix(path, ".jpg"),
		Overwrite:      &overwrite,
		Transformation: "c_limit,w_1024,h_1024,q_auto",
	})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}

var _ Uploader = (*Cloudinary)(nil)
