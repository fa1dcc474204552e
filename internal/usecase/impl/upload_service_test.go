package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "panaderia/internal/domain/errors"
	mockSvc "panaderia/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadService_Store(t *testing.T) {
	mockStore := mockSvc.NewMockFileStore(t)
	service := NewUploadService(mockStore, newDiscardLogger())

	ctx := context.Background()
	content := strings.NewReader("image-bytes")

	var key string
	mockStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), content, "image/png").
		Run(func(_ context.Context, k string, _ io.Reader, _ string) {
			key = k
		}).
		Return("https://cdn.example.com/uploads/key.png", nil)

	url, err := service.Store(ctx, "concha.png", "image/png", content)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/key.png", url)
	assert.Regexp(t, `^\d+-concha\.png$`, key)
}

func TestUploadService_Store_SanitizesFilename(t *testing.T) {
	mockStore := mockSvc.NewMockFileStore(t)
	service := NewUploadService(mockStore, newDiscardLogger())

	ctx := context.Background()
	content := strings.NewReader("image-bytes")

	var key string
	mockStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), content, "image/jpeg").
		Run(func(_ context.Context, k string, _ io.Reader, _ string) {
			key = k
		}).
		Return("https://cdn.example.com/uploads/key.jpg", nil)

	_, err := service.Store(ctx, "../pan dulce (1).jpg", "image/jpeg", content)
	require.NoError(t, err)
	assert.NotContains(t, key, "..")
	assert.NotContains(t, key, "/")
	assert.NotContains(t, key, " ")
}

func TestUploadService_Store_SaveError(t *testing.T) {
	mockStore := mockSvc.NewMockFileStore(t)
	service := NewUploadService(mockStore, newDiscardLogger())

	ctx := context.Background()

	mockStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), mock.Anything, "image/png").
		Return("", errors.New("bucket unavailable"))

	url, err := service.Store(ctx, "concha.png", "image/png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Empty(t, url)
	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}
