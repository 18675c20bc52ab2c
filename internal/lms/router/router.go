package router

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/auth"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/handler"
)

// Handlers bundles every route handler the router wires up.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Course     *handler.CourseHandler
	Lesson     *handler.LessonHandler
	Assignment *handler.AssignmentHandler
	Submission *handler.SubmissionHandler
	Enrollment *handler.EnrollmentHandler
	Reference  *handler.ReferenceHandler
	Document   *handler.DocumentHandler
	Chatbot    *handler.ChatbotHandler
}

// RegisterRoutes wires every endpoint behind the authorization gate. The
// route paths here and the permission catalog must describe the same URL
// space; the gate matches on the concrete request path.
func RegisterRoutes(e *echo.Echo, h Handlers, gate *auth.Gate, staticDir string) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.Use(handler.RequestIDMiddleware)
	e.Use(gate.Middleware())

	// Routes the gate bypasses entirely
	e.POST("/login", h.Auth.Login)
	e.POST("/send-email", h.User.SendAccountMail(false))
	e.POST("/send-email-update", h.User.SendAccountMail(true))

	// Session
	e.POST("/logout", h.Auth.Logout)
	e.GET("/auth/account", h.Auth.Account)
	e.GET("/auth/refresh", h.Auth.Refresh)

	// Health
	e.GET("/health", handler.HealthCheck)

	// User management
	e.POST("/admin/user", h.User.Create)
	e.GET("/admin/users", h.User.List)
	e.GET("/admin/users/statistics", h.User.Statistics)
	e.PUT("/admin/users/:userCode", h.User.Update)
	e.DELETE("/admin/user/:userCode", h.User.Delete)
	e.GET("/admin/student/:userCode", h.User.Details("STUDENT"))
	e.GET("/admin/teacher/:userCode", h.User.Details("TEACHER"))
	e.GET("/admin/admin/:userCode", h.User.Details("ADMIN"))

	// Course management
	e.POST("/admin/courses", h.Course.Create)
	e.GET("/admin/courses", h.Course.List)
	e.GET("/admin/courses/info", h.Course.Info)
	e.GET("/admin/courses/:courseId/details", h.Course.Details)
	e.GET("/admin/courses/:courseId/full-details", h.Course.FullDetails)
	e.PUT("/admin/courses/:courseId", h.Course.Update)
	e.DELETE("/admin/courses/:courseId", h.Course.Delete)
	e.GET("/admin/courses/byteacher/:teacherId", h.Course.ByTeacher)
	e.GET("/admin/courses/bystudent/:studentId", h.Course.ByStudent)
	e.GET("/admin/student/courses/:courseId/details", h.Course.Details)
	e.GET("/admin/courses/:courseId/students/:studentId/scores", h.Course.StudentScores)
	e.POST("/admin/courses/:courseId/students/:studentId/scores", h.Course.UpdateStudentScores)

	// Lesson management
	e.POST("/api/lessons/create", h.Lesson.Create)
	e.GET("/api/lessons/:lessonId", h.Lesson.Get)
	e.PUT("/api/lessons/:lessonId", h.Lesson.Update)
	e.PUT("/api/lessons/:lessonId/update-with-files", h.Lesson.UpdateWithFiles)
	e.PUT("/api/lessons/:lessonId/publish", h.Lesson.Publish)
	e.POST("/api/lesson-documents/upload", h.Lesson.UploadDocuments)
	e.GET("/api/lesson-documents/storage-status", h.Document.StorageStatus)
	e.GET("/api/lesson-documents/check-usage", h.Document.Usage)

	// Assignment management
	e.POST("/api/assignments/create-with-files", h.Assignment.Create)
	e.GET("/api/assignments/detail/:assignmentId", h.Assignment.Get)
	e.PUT("/api/assignments/update/:assignmentId", h.Assignment.Update)
	e.PUT("/api/assignments/:assignmentId/update-with-files", h.Assignment.UpdateWithFiles)
	e.PUT("/api/assignments/:assignmentId/publish", h.Assignment.Publish)
	e.DELETE("/api/assignments/delete/:assignmentId", h.Assignment.Delete)

	// Submission management
	e.POST("/api/submissions/submit-or-update", h.Submission.Submit)
	e.GET("/api/submissions/assignment/:assignmentId", h.Submission.ListByAssignment)
	e.POST("/api/submissions/:submissionId/grade", h.Submission.Grade)
	e.GET("/api/submissions/student/:studentId/unsubmitted-count", h.Submission.UnsubmittedCount)

	// Enrollment management
	e.POST("/enrollments", h.Enrollment.Enroll)
	e.DELETE("/enrollments", h.Enrollment.Unenroll)

	// Departments, majors, subjects and classrooms
	e.GET("/departments/allresponses", h.Reference.Departments)
	e.GET("/admin/departments/names", h.Reference.DepartmentNames)
	e.GET("/admin/department/:departmentId/name", h.Reference.DepartmentName)
	e.GET("/admin/department/:departmentId/teachers_select", h.Reference.DepartmentTeachers)
	e.GET("/admin/subjects/:subjectId", h.Reference.Subject)
	e.GET("/admin/subjects/:subjectId/courses", h.Reference.SubjectCourses)
	e.GET("/subjects/:subjectId/courses", h.Reference.SubjectCourses)
	e.GET("/admin/majors/:departmentId/allresponse", h.Reference.Majors)
	e.GET("/admin/majors/:majorId/subjects", h.Reference.MajorSubjects)
	e.GET("/admin/classrooms/name", h.Reference.ClassroomNames)

	// Chatbot
	e.GET("/chatbot/:message", h.Chatbot.Ask)

	// Static files under the web root, single path segment only
	if staticDir != "" {
		e.Static("/", staticDir)
	}
}
