package impl

import (
	"context"
	"fmt"
	"log/slog"

	"panaderia/internal/domain/service"
	"panaderia/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	credentials service.CredentialService
	tokens      service.TokenService
	accessLog   usecase.AccessLogUsecase
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	credentials service.CredentialService,
	tokens service.TokenService,
	accessLog usecase.AccessLogUsecase,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		credentials: credentials,
		tokens:      tokens,
		accessLog:   accessLog,
		logger:      logger,
	}
}

// Login resolves the password to a username, issues a session token and
// records the login best-effort.
func (srv *authService) Login(ctx context.Context, password, device string) (*usecase.LoginOutput, error) {
	username, err := srv.credentials.Resolve(password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := srv.tokens.Generate(username)
	if err != nil {
		srv.logger.Error("Failed to issue session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "generate session token")
	}

	if err := srv.accessLog.Append(ctx, device, fmt.Sprintf("%s: Inició sesión", username)); err != nil {
		srv.logger.Warn("Failed to append access log entry", slog.Any("error", err))
	}

	return &usecase.LoginOutput{
		Username:  username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
