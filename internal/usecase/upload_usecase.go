package usecase

import (
	"context"
	"io"
)

// UploadUsecase stores menu images and returns their public URLs.
type UploadUsecase interface {
	// Store writes the file under a timestamped object key and returns
	// the URL to embed into a menu item's image field.
	Store(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}
