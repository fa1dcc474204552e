package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "panaderia/internal/domain/errors"
	mockSvc "panaderia/internal/mocks/service"
	mockUsecase "panaderia/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_Success(t *testing.T) {
	mockCredentials := mockSvc.NewMockCredentialService(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewAuthService(mockCredentials, mockTokens, mockAccessLog, newDiscardLogger())

	ctx := context.Background()
	expiresAt := time.Now().Add(24 * time.Hour)

	mockCredentials.EXPECT().
		Resolve("panaderia2024").
		Return("admin", nil)

	mockTokens.EXPECT().
		Generate("admin").
		Return("signed-token", expiresAt, nil)

	mockAccessLog.EXPECT().
		Append(ctx, "iPhone (iOS 17+)", "admin: Inició sesión").
		Return(nil)

	out, err := service.Login(ctx, "panaderia2024", "iPhone (iOS 17+)")
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Username)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, expiresAt, out.ExpiresAt)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockCredentials := mockSvc.NewMockCredentialService(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewAuthService(mockCredentials, mockTokens, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockCredentials.EXPECT().
		Resolve("nope").
		Return("", domainerrors.ErrInvalidCredentials)

	out, err := service.Login(ctx, "nope", "Mac")
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	// No token and no log entry for a failed login.
	mockTokens.AssertNotCalled(t, "Generate", mock.Anything)
	mockAccessLog.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_TokenGenerationFails(t *testing.T) {
	mockCredentials := mockSvc.NewMockCredentialService(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewAuthService(mockCredentials, mockTokens, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockCredentials.EXPECT().
		Resolve("panaderia2024").
		Return("admin", nil)

	mockTokens.EXPECT().
		Generate("admin").
		Return("", time.Time{}, errors.New("signing key unavailable"))

	out, err := service.Login(ctx, "panaderia2024", "Mac")
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestAuthService_Login_LogFailureStillSucceeds(t *testing.T) {
	mockCredentials := mockSvc.NewMockCredentialService(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	mockAccessLog := mockUsecase.NewMockAccessLogUsecase(t)
	service := NewAuthService(mockCredentials, mockTokens, mockAccessLog, newDiscardLogger())

	ctx := context.Background()

	mockCredentials.EXPECT().
		Resolve("panaderia2024").
		Return("admin", nil)

	mockTokens.EXPECT().
		Generate("admin").
		Return("signed-token", time.Now().Add(time.Hour), nil)

	mockAccessLog.EXPECT().
		Append(ctx, mock.Anything, mock.Anything).
		Return(errors.New("log table unavailable"))

	out, err := service.Login(ctx, "panaderia2024", "Windows PC")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}
