package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	domainerrors "panaderia/internal/domain/errors"
	"panaderia/internal/domain/service"
	"panaderia/internal/usecase"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	store  service.FileStore
	logger *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(
	store service.FileStore,
	logger *slog.Logger,
) usecase.UploadUsecase {
	return &uploadService{
		store:  store,
		logger: logger,
	}
}

// Store writes the upload under a millisecond-timestamped key so repeated
// uploads of the same filename never collide.
func (srv *uploadService) Store(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(filename))

	url, err := srv.store.Save(ctx, key, content, contentType)
	if err != nil {
		srv.logger.Error("Failed to store upload", slog.String("key", key), slog.Any("error", err))

		return "", domainerrors.ErrUploadFailed.WrapMessage("store upload")
	}

	return url, nil
}

// sanitizeFilename strips path components and replaces characters that are
// awkward in object keys and URLs.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "upload"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return b.String()
}
