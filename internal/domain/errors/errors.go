package errors

import (
	"net/http"

	"panaderia/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are Spanish because the admin
// console is Spanish-first.
var (
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Contraseña incorrecta",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Sesión no válida o expirada",
		"",
	)

	ErrSettingsSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"SETTINGS_SAVE_FAILED",
		"No se pudieron guardar los cambios",
		"",
	)

	ErrSettingsFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"SETTINGS_FETCH_FAILED",
		"No se pudo cargar la configuración",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"No se pudo subir la imagen",
		"",
	)

	ErrUploadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"UPLOAD_TOO_LARGE",
		"La imagen es demasiado grande",
		"",
	)

	ErrExportFailed = NewBaseError(
		http.StatusInternalServerError,
		"EXPORT_FAILED",
		"No se pudo exportar el menú",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database failure as a generic
// internal AppError while preserving the cause in the details.
func NewDatabaseExecuteError(cause error, message string) *BaseError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}

	return NewBaseError(http.StatusInternalServerError, "DATABASE_ERROR", message, details)
}
