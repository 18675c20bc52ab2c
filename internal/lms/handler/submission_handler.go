package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/auth"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
)

type SubmissionHandler struct {
	Service *service.SubmissionService
	Users   *service.UserService
}

func NewSubmissionHandler(s *service.SubmissionService, users *service.UserService) *SubmissionHandler {
	return &SubmissionHandler{Service: s, Users: users}
}

// Submit handles POST /api/submissions/submit-or-update. The student is the
// authenticated caller; submitting on someone else's behalf is not possible.
func (h *SubmissionHandler) Submit(c echo.Context) error {
	var req model.SubmitAssignmentReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	userCode, _ := c.Get(auth.ContextKeyUserCode).(string)
	student, err := h.Users.Get(c.Request().Context(), userCode)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	sub, err := h.Service.Submit(c.Request().Context(), student.ID, req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Submission saved", sub))
}

// ListByAssignment handles GET /api/submissions/assignment/:assignmentId
func (h *SubmissionHandler) ListByAssignment(c echo.Context) error {
	subs, err := h.Service.ListByAssignment(c.Request().Context(), c.Param("assignmentId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Submissions fetched", subs))
}

// Grade handles POST /api/submissions/:submissionId/grade
func (h *SubmissionHandler) Grade(c echo.Context) error {
	var req model.GradeSubmissionReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	sub, err := h.Service.Grade(c.Request().Context(), c.Param("submissionId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Submission graded", sub))
}

// UnsubmittedCount handles GET /api/submissions/student/:studentId/unsubmitted-count
func (h *SubmissionHandler) UnsubmittedCount(c echo.Context) error {
	count, err := h.Service.UnsubmittedCount(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Unsubmitted count fetched",
		map[string]int{"unsubmittedCount": count}))
}
