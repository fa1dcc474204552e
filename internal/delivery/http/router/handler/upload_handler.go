package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"panaderia/config"
	"panaderia/internal/delivery/http/response"
	domainerrors "panaderia/internal/domain/errors"
	"panaderia/internal/usecase"
	"panaderia/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for the image upload endpoint.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, cfg *config.Config, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Upload accepts a multipart "file" part, stores it and returns the public
// URL for embedding into a menu item.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "FILE_MISSING", "Falta el archivo")
	}

	if max := h.maxSizeBytes(); max > 0 && fileHeader.Size > max {
		details := fmt.Sprintf("el archivo supera el límite de %s", util.FormatBytes(max))

		return errors.WithStack(domainerrors.ErrUploadTooLarge.WithDetails(details))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(domainerrors.ErrUploadFailed.WrapMessage("open multipart file"))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.uc.Store(c.Request().Context(), fileHeader.Filename, contentType, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

func (h *UploadHandler) maxSizeBytes() int64 {
	if h.cfg.Uploads == nil {
		return 0
	}

	return h.cfg.Uploads.MaxSizeBytes
}
