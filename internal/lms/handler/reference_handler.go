package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
)

type ReferenceHandler struct {
	Service *service.ReferenceService
	Courses *service.CourseService
}

func NewReferenceHandler(s *service.ReferenceService, courses *service.CourseService) *ReferenceHandler {
	return &ReferenceHandler{Service: s, Courses: courses}
}

// Departments handles GET /departments/allresponses
func (h *ReferenceHandler) Departments(c echo.Context) error {
	deps, err := h.Service.Departments(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Departments fetched", deps))
}

// DepartmentNames handles GET /admin/departments/names
func (h *ReferenceHandler) DepartmentNames(c echo.Context) error {
	deps, err := h.Service.Departments(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	names := make([]string, 0, len(deps))
	for _, d := range deps {
		names = append(names, d.Name)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Department names fetched", names))
}

// DepartmentName handles GET /admin/department/:departmentId/name
func (h *ReferenceHandler) DepartmentName(c echo.Context) error {
	deps, err := h.Service.Departments(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	id := c.Param("departmentId")
	for _, d := range deps {
		if d.ID == id {
			return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Department name fetched",
				map[string]string{"name": d.Name}))
		}
	}
	code, body := httpError(service.ErrNotFound)
	return c.JSON(code, body)
}

// DepartmentTeachers handles GET /admin/department/:departmentId/teachers_select
func (h *ReferenceHandler) DepartmentTeachers(c echo.Context) error {
	teachers, err := h.Service.TeachersByDepartment(c.Request().Context(), c.Param("departmentId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Teachers fetched", teachers))
}

// Majors handles GET /admin/majors/:departmentId/allresponse
func (h *ReferenceHandler) Majors(c echo.Context) error {
	majors, err := h.Service.MajorsByDepartment(c.Request().Context(), c.Param("departmentId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Majors fetched", majors))
}

// MajorSubjects handles GET /admin/majors/:majorId/subjects
func (h *ReferenceHandler) MajorSubjects(c echo.Context) error {
	subjects, err := h.Service.SubjectsByMajor(c.Request().Context(), c.Param("majorId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Subjects fetched", subjects))
}

// SubjectCourses handles GET /admin/subjects/:subjectId/courses and the open
// variant GET /subjects/:subjectId/courses
func (h *ReferenceHandler) SubjectCourses(c echo.Context) error {
	courses, err := h.Courses.ListBySubject(c.Request().Context(), c.Param("subjectId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Courses fetched", courses))
}

// Subject handles GET /admin/subjects/:subjectId
func (h *ReferenceHandler) Subject(c echo.Context) error {
	subject, err := h.Service.Subject(c.Request().Context(), c.Param("subjectId"))
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Subject fetched", subject))
}

// ClassroomNames handles GET /admin/classrooms/name
func (h *ReferenceHandler) ClassroomNames(c echo.Context) error {
	rooms, err := h.Service.Classrooms(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	names := make([]string, 0, len(rooms))
	for _, r := range rooms {
		names = append(names, r.Name)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Classroom names fetched", names))
}
