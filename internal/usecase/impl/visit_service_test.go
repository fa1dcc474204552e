package impl

import (
	"context"
	"testing"
	"time"

	"panaderia/internal/domain/entity"
	mockRepo "panaderia/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const iphone17UA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15"

func TestVisitService_Record_NewSession(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	service := NewVisitService(mockVisitRepo, newDiscardLogger())

	ctx := context.Background()

	var recorded *entity.Visit
	mockVisitRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.Visit")).
		Run(func(_ context.Context, visit *entity.Visit) {
			recorded = visit
		}).
		Return(true, nil)

	counted, err := service.Record(ctx, "session-abc", iphone17UA)
	require.NoError(t, err)
	assert.True(t, counted)
	require.NotNil(t, recorded)
	assert.NotEqual(t, uuid.Nil, recorded.ID)
	assert.Equal(t, "session-abc", recorded.SessionID)
	assert.Equal(t, "iPhone (iOS 17+)", recorded.Device)
}

func TestVisitService_Record_RepeatSessionNotCounted(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	service := NewVisitService(mockVisitRepo, newDiscardLogger())

	ctx := context.Background()

	mockVisitRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.Visit")).
		Return(false, nil)

	counted, err := service.Record(ctx, "session-abc", iphone17UA)
	require.NoError(t, err)
	assert.False(t, counted)
}

func TestVisitService_Record_RepoError(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	service := NewVisitService(mockVisitRepo, newDiscardLogger())

	ctx := context.Background()

	mockVisitRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.Visit")).
		Return(false, errors.New("connection refused"))

	counted, err := service.Record(ctx, "session-abc", "curl/8.0")
	require.Error(t, err)
	assert.False(t, counted)
}

func TestVisitService_Stats(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	service := NewVisitService(mockVisitRepo, newDiscardLogger())

	ctx := context.Background()

	mockVisitRepo.EXPECT().
		Count(ctx).
		Return(int64(42), nil)

	var since time.Time
	mockVisitRepo.EXPECT().
		CountSince(ctx, mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, t time.Time) {
			since = t
		}).
		Return(int64(7), nil)

	stats, err := service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.Total)
	assert.Equal(t, int64(7), stats.Today)

	// Today's counter is measured from UTC midnight.
	assert.Equal(t, time.UTC, since.Location())
	assert.Equal(t, 0, since.Hour())
	assert.Equal(t, 0, since.Minute())
	assert.Equal(t, 0, since.Second())
}

func TestVisitService_Stats_CountError(t *testing.T) {
	mockVisitRepo := mockRepo.NewMockVisitRepository(t)
	service := NewVisitService(mockVisitRepo, newDiscardLogger())

	ctx := context.Background()

	mockVisitRepo.EXPECT().
		Count(ctx).
		Return(int64(0), errors.New("connection refused"))

	stats, err := service.Stats(ctx)
	require.Error(t, err)
	assert.Nil(t, stats)
}
