package impl

import (
	"context"
	"encoding/json"
	"testing"

	"panaderia/internal/domain/entity"
	domainerrors "panaderia/internal/domain/errors"
	"panaderia/internal/domain/repository"
	"panaderia/internal/domain/settings"
	mockRepo "panaderia/internal/mocks/repository"
	mockUsecase "panaderia/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Current_EmptyObjectWhenUnset(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockSettingsRepo.EXPECT().
		Fetch(ctx).
		Return(nil, repository.ErrSettingsNotFound)

	doc, err := service.Current(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(doc))
}

func TestSettingsService_Current_ReturnsPersistedBlobVerbatim(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()
	blob := []byte(`{"phone":"555-0100"}`)

	mockSettingsRepo.EXPECT().
		Fetch(ctx).
		Return(blob, nil)

	doc, err := service.Current(ctx)
	require.NoError(t, err)
	// Partial documents stay partial; no defaulting on the raw read.
	assert.Equal(t, json.RawMessage(blob), doc)
}

func TestSettingsService_Current_FetchError(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockSettingsRepo.EXPECT().
		Fetch(ctx).
		Return(nil, errors.New("connection refused"))

	_, err := service.Current(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSettingsFetchFailed)
}

func TestSettingsService_Resolved_MergesOntoDefaults(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockSettingsRepo.EXPECT().
		Fetch(ctx).
		Return([]byte(`{"phone":"555-0100","categories":[]}`), nil)

	doc := service.Resolved(ctx)
	assert.Equal(t, "555-0100", doc.Phone)
	// An explicit empty category list must not be refilled from defaults.
	assert.Empty(t, doc.Categories)
	// Untouched fields keep their defaults.
	assert.Equal(t, settings.Defaults().HeroTitle, doc.HeroTitle)
}

func TestSettingsService_Resolved_DefaultsWhenUnset(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockSettingsRepo.EXPECT().
		Fetch(ctx).
		Return(nil, repository.ErrSettingsNotFound)

	doc := service.Resolved(ctx)
	assert.Equal(t, settings.Defaults(), doc)
}

func TestSettingsService_Resolved_DefaultsOnFetchError(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockSettingsRepo.EXPECT().
		Fetch(ctx).
		Return(nil, errors.New("connection refused"))

	doc := service.Resolved(ctx)
	assert.Equal(t, settings.Defaults(), doc)
}

func TestSettingsService_Resolved_DefaultsOnMalformedBlob(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockSettingsRepo.EXPECT().
		Fetch(ctx).
		Return([]byte(`{"phone":`), nil)

	doc := service.Resolved(ctx)
	assert.Equal(t, settings.Defaults(), doc)
}

func TestSettingsService_Save_PersistsAndLogs(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()
	doc := settings.Defaults()
	doc.Phone = "555-0100"

	var savedBlob []byte
	mockSettingsRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("[]uint8")).
		Run(func(_ context.Context, blob []byte) {
			savedBlob = blob
		}).
		Return(nil)

	mockAccessLog.EXPECT().
		Append(ctx, "iPhone (iOS 17+)", "Maria: Editó el menú").
		Return(nil)

	saved, err := service.Save(ctx, doc, "Maria", "Editó el menú", "iPhone (iOS 17+)")
	require.NoError(t, err)
	assert.Equal(t, doc, saved)

	var roundTripped entity.SiteSettings
	require.NoError(t, json.Unmarshal(savedBlob, &roundTripped))
	assert.Equal(t, "555-0100", roundTripped.Phone)
}

func TestSettingsService_Save_DefaultActorAndAction(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockSettingsRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("[]uint8")).
		Return(nil)

	mockAccessLog.EXPECT().
		Append(ctx, "Android", "Admin: Actualizó configuraciones").
		Return(nil)

	_, err := service.Save(ctx, settings.Defaults(), "", "", "Android")
	require.NoError(t, err)
}

func TestSettingsService_Save_LogFailureDoesNotFailSave(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockSettingsRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("[]uint8")).
		Return(nil)

	mockAccessLog.EXPECT().
		Append(ctx, mock.Anything, mock.Anything).
		Return(errors.New("log table unavailable"))

	_, err := service.Save(ctx, settings.Defaults(), "Admin", "Actualizó configuraciones", "Mac")
	require.NoError(t, err)
}

func TestSettingsService_Save_RepoError(t *testing.T) {
	mockSettingsRepo := mockRepo.NewMockSettingsRepository(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewSettingsService(mockSettingsRepo, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockSettingsRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("[]uint8")).
		Return(errors.New("connection refused"))

	_, err := service.Save(ctx, settings.Defaults(), "Admin", "Actualizó configuraciones", "Mac")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSettingsSaveFailed)
	// No log entry on a failed save.
	mockAccessLog.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
}
