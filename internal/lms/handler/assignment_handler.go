package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
)

type AssignmentHandler struct {
	Service *service.AssignmentService
}

func NewAssignmentHandler(s *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Service: s}
}

// Create handles POST /api/assignments/create-with-files. The assignment
// fields arrive as a JSON part named "assignment" next to the file parts.
func (h *AssignmentHandler) Create(c echo.Context) error {
	var req model.CreateAssignmentReq
	raw := c.FormValue("assignment")
	if raw == "" {
		// Plain JSON body without files is also accepted.
		if err := c.Bind(&req); err != nil {
			code, body := badRequest("Invalid body")
			return c.JSON(code, body)
		}
	} else if err := json.Unmarshal([]byte(raw), &req); err != nil {
		code, body := badRequest("Invalid assignment payload")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	files, err := formFiles(c, "files")
	if err != nil {
		code, body := badRequest("Invalid file upload")
		return c.JSON(code, body)
	}

	assignment, err := h.Service.Create(c.Request().Context(), req, files)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, model.OK(http.StatusCreated, "Assignment created", assignment))
}

// Get handles GET /api/assignments/detail/:assignmentId
func (h *AssignmentHandler) Get(c echo.Context) error {
	assignment, err := h.Service.Get(c.Request().Context(), c.Param("assignmentId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Assignment fetched", assignment))
}

// Update handles PUT /api/assignments/update/:assignmentId
func (h *AssignmentHandler) Update(c echo.Context) error {
	var req model.UpdateAssignmentReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	assignment, err := h.Service.Update(c.Request().Context(), c.Param("assignmentId"), req, nil)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Assignment updated", assignment))
}

// UpdateWithFiles handles PUT /api/assignments/:assignmentId/update-with-files
func (h *AssignmentHandler) UpdateWithFiles(c echo.Context) error {
	var req model.UpdateAssignmentReq
	if raw := c.FormValue("assignment"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			code, body := badRequest("Invalid assignment payload")
			return c.JSON(code, body)
		}
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	files, err := formFiles(c, "files")
	if err != nil {
		code, body := badRequest("Invalid file upload")
		return c.JSON(code, body)
	}

	assignment, err := h.Service.Update(c.Request().Context(), c.Param("assignmentId"), req, files)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Assignment updated", assignment))
}

// Publish handles PUT /api/assignments/:assignmentId/publish
func (h *AssignmentHandler) Publish(c echo.Context) error {
	if err := h.Service.Publish(c.Request().Context(), c.Param("assignmentId")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Assignment published", nil))
}

// Delete handles DELETE /api/assignments/delete/:assignmentId
func (h *AssignmentHandler) Delete(c echo.Context) error {
	if err := h.Service.Delete(c.Request().Context(), c.Param("assignmentId")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Assignment deleted", nil))
}
