package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/storage"
)

type DocumentHandler struct {
	Storage *storage.Client
}

func NewDocumentHandler(s *storage.Client) *DocumentHandler {
	return &DocumentHandler{Storage: s}
}

// StorageStatus handles GET /api/lesson-documents/storage-status
func (h *DocumentHandler) StorageStatus(c echo.Context) error {
	if err := h.Storage.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, model.Response{
			StatusCode: http.StatusServiceUnavailable,
			Error:      "Service Unavailable",
			Message:    err.Error(),
			Data:       nil,
		})
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Storage is reachable",
		map[string]string{"status": "UP"}))
}

// Usage handles GET /api/lesson-documents/check-usage
func (h *DocumentHandler) Usage(c echo.Context) error {
	count, size, err := h.Storage.Usage(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Usage fetched", map[string]int64{
		"objectCount": count,
		"totalBytes":  size,
	}))
}
