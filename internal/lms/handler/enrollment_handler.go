package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
)

type EnrollmentHandler struct {
	Service *service.EnrollmentService
}

func NewEnrollmentHandler(s *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{Service: s}
}

// Enroll handles POST /enrollments
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	var req model.EnrollmentReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	e, err := h.Service.Enroll(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, model.OK(http.StatusCreated, "Student enrolled", e))
}

// Unenroll handles DELETE /enrollments
func (h *EnrollmentHandler) Unenroll(c echo.Context) error {
	var req model.EnrollmentReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	if err := h.Service.Unenroll(c.Request().Context(), req.CourseID, req.StudentID); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Student unenrolled", nil))
}
