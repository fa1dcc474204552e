package service

import (
	"context"
	"io"
)

// FileStore persists uploaded files and returns the public URL under which
// the storefront can reference them.
type FileStore interface {
	// Save writes the content under the given object key and returns the
	// public URL for embedding into a menu item's image field.
	Save(ctx context.Context, key string, content io.Reader, contentType string) (string, error)
}
