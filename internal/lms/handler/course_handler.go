package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
)

type CourseHandler struct {
	Service *service.CourseService
}

func NewCourseHandler(s *service.CourseService) *CourseHandler {
	return &CourseHandler{Service: s}
}

// Create handles POST /admin/courses
func (h *CourseHandler) Create(c echo.Context) error {
	var req model.CreateCourseReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	course, err := h.Service.Create(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, model.OK(http.StatusCreated, "Course created", course))
}

// List handles GET /admin/courses
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.Service.List(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Courses fetched", courses))
}

// Info handles GET /admin/courses/info
func (h *CourseHandler) Info(c echo.Context) error {
	info, err := h.Service.Info(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Course info fetched", info))
}

// Details handles GET /admin/courses/:courseId/details and the student
// variant GET /admin/student/courses/:courseId/details
func (h *CourseHandler) Details(c echo.Context) error {
	details, err := h.Service.Details(c.Request().Context(), c.Param("courseId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Course details fetched", details))
}

// FullDetails handles GET /admin/courses/:courseId/full-details
func (h *CourseHandler) FullDetails(c echo.Context) error {
	details, err := h.Service.Details(c.Request().Context(), c.Param("courseId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	students, err := h.Service.Students(c.Request().Context(), c.Param("courseId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	payload := map[string]any{
		"course":      details.Course,
		"lessons":     details.Lessons,
		"assignments": details.Assignments,
		"enrolled":    details.Enrolled,
		"students":    students,
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Course full details fetched", payload))
}

// Update handles PUT /admin/courses/:courseId
func (h *CourseHandler) Update(c echo.Context) error {
	var req model.UpdateCourseReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	course, err := h.Service.Update(c.Request().Context(), c.Param("courseId"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Course updated", course))
}

// Delete handles DELETE /admin/courses/:courseId
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.Service.Delete(c.Request().Context(), c.Param("courseId")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Course deleted", nil))
}

// ByTeacher handles GET /admin/courses/byteacher/:teacherId
func (h *CourseHandler) ByTeacher(c echo.Context) error {
	courses, err := h.Service.ListByTeacher(c.Request().Context(), c.Param("teacherId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Courses fetched", courses))
}

// ByStudent handles GET /admin/courses/bystudent/:studentId
func (h *CourseHandler) ByStudent(c echo.Context) error {
	courses, err := h.Service.ListByStudent(c.Request().Context(), c.Param("studentId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Courses fetched", courses))
}

// StudentScores handles GET /admin/courses/:courseId/students/:studentId/scores
func (h *CourseHandler) StudentScores(c echo.Context) error {
	scores, err := h.Service.StudentScores(c.Request().Context(), c.Param("courseId"), c.Param("studentId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Scores fetched", scores))
}

// UpdateStudentScores handles POST /admin/courses/:courseId/students/:studentId/scores
func (h *CourseHandler) UpdateStudentScores(c echo.Context) error {
	var req model.UpdateScoresReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	if err := h.Service.UpdateScores(c.Request().Context(), c.Param("studentId"), req); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Scores updated", nil))
}
