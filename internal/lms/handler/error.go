package handler

import (
	"errors"
	"net/http"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
)

// Helper to map service errors to HTTP status and body
func httpError(err error) (int, model.Response) {
	var status int
	var label string

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		label = "Unauthorized"
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		label = "Forbidden"
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		label = "Not Found"
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		label = "Conflict"
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		label = "Bad Request"
	default:
		status = http.StatusInternalServerError
		label = "Internal Server Error"
	}

	return status, model.Response{
		StatusCode: status,
		Error:      label,
		Message:    err.Error(),
		Data:       nil,
	}
}

func badRequest(message string) (int, model.Response) {
	return http.StatusBadRequest, model.Response{
		StatusCode: http.StatusBadRequest,
		Error:      "Bad Request",
		Message:    message,
		Data:       nil,
	}
}
