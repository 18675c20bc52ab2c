package auth

import "net/http"

// Permission is one grantable operation: a stable symbolic ID bound to an
// HTTP method and an endpoint pattern. The catalog below is the single
// source of truth for every protected route in the system; it is built once
// and never mutated.
type Permission struct {
	ID          string
	Method      string
	Pattern     string
	Description string
}

// Permission IDs.
const (
	// User management
	PermCreateUser         = "CREATE_USER"
	PermViewAllUsers       = "VIEW_ALL_USERS"
	PermViewUserStatistics = "VIEW_USER_STATISTICS"
	PermUpdateUser         = "UPDATE_USER"
	PermDeleteUser         = "DELETE_USER"
	PermViewStudentDetails = "VIEW_STUDENT_DETAILS"
	PermViewTeacherDetails = "VIEW_TEACHER_DETAILS"
	PermViewAdminDetails   = "VIEW_ADMIN_DETAILS"

	// Course management
	PermCreateCourse             = "CREATE_COURSE"
	PermViewAllCourses           = "VIEW_ALL_COURSES"
	PermViewCourseInfo           = "VIEW_COURSE_INFO"
	PermViewCourseDetails        = "VIEW_COURSE_DETAILS"
	PermViewCourseFullDetails    = "VIEW_COURSE_FULL_DETAILS"
	PermUpdateCourse             = "UPDATE_COURSE"
	PermDeleteCourse             = "DELETE_COURSE"
	PermViewCoursesByTeacher     = "VIEW_COURSES_BY_TEACHER"
	PermViewCoursesByStudent     = "VIEW_COURSES_BY_STUDENT"
	PermViewStudentCourseDetails = "VIEW_STUDENT_COURSE_DETAILS"
	PermViewStudentScores        = "VIEW_STUDENT_SCORES"
	PermUpdateStudentScores      = "UPDATE_STUDENT_SCORES"

	// Lesson management
	PermCreateLesson          = "CREATE_LESSON"
	PermViewLesson            = "VIEW_LESSON"
	PermUpdateLesson          = "UPDATE_LESSON"
	PermUpdateLessonWithFiles = "UPDATE_LESSON_WITH_FILES"
	PermPublishLesson         = "PUBLISH_LESSON"
	PermUploadLessonDocuments = "UPLOAD_LESSON_DOCUMENTS"

	// Assignment management
	PermCreateAssignment          = "CREATE_ASSIGNMENT"
	PermViewAssignment            = "VIEW_ASSIGNMENT"
	PermUpdateAssignment          = "UPDATE_ASSIGNMENT"
	PermUpdateAssignmentWithFiles = "UPDATE_ASSIGNMENT_WITH_FILES"
	PermPublishAssignment         = "PUBLISH_ASSIGNMENT"
	PermDeleteAssignment          = "DELETE_ASSIGNMENT"

	// Submission management
	PermSubmitAssignment          = "SUBMIT_ASSIGNMENT"
	PermViewAssignmentSubmissions = "VIEW_ASSIGNMENT_SUBMISSIONS"
	PermGradeSubmission           = "GRADE_SUBMISSION"
	PermViewUnsubmittedCount      = "VIEW_UNSUBMITTED_COUNT"

	// Enrollment management
	PermCreateEnrollment = "CREATE_ENROLLMENT"
	PermDeleteEnrollment = "DELETE_ENROLLMENT"

	// Department and subject
	PermViewDepartments         = "VIEW_DEPARTMENTS"
	PermViewDepartmentNames     = "VIEW_DEPARTMENT_NAMES"
	PermViewDepartmentName      = "VIEW_DEPARTMENT_NAME"
	PermViewDepartmentTeachers  = "VIEW_DEPARTMENT_TEACHERS"
	PermViewSubjects            = "VIEW_SUBJECTS"
	PermViewSubjectCourses      = "VIEW_SUBJECT_COURSES"
	PermViewSubjectCoursesOpen  = "VIEW_SUBJECT_COURSES_PUBLIC"
	PermViewMajors              = "VIEW_MAJORS"
	PermViewMajorSubjects       = "VIEW_MAJOR_SUBJECTS"

	// Classroom
	PermViewClassroomNames = "VIEW_CLASSROOM_NAMES"

	// Documents and files
	PermCheckStorageStatus = "CHECK_STORAGE_STATUS"
	PermCheckUsage         = "CHECK_USAGE"
	PermAccessStaticFiles  = "ACCESS_STATIC_FILES"

	// Chatbot
	PermUseChatbot = "USE_CHATBOT"

	// Authentication
	PermLogin        = "LOGIN"
	PermViewAccount  = "VIEW_ACCOUNT"
	PermRefreshToken = "REFRESH_TOKEN"
	PermLogout       = "LOGOUT"

	// Health
	PermHealthCheck = "HEALTH_CHECK"
)

var catalog = []Permission{
	// User management
	{PermCreateUser, http.MethodPost, "/admin/user", "Create a new user"},
	{PermViewAllUsers, http.MethodGet, "/admin/users", "List all users"},
	{PermViewUserStatistics, http.MethodGet, "/admin/users/statistics", "View user statistics"},
	{PermUpdateUser, http.MethodPut, "/admin/users/{userCode}", "Update a user"},
	{PermDeleteUser, http.MethodDelete, "/admin/user/{userCode}", "Delete a user"},
	{PermViewStudentDetails, http.MethodGet, "/admin/student/{userCode}", "View student details"},
	{PermViewTeacherDetails, http.MethodGet, "/admin/teacher/{userCode}", "View teacher details"},
	{PermViewAdminDetails, http.MethodGet, "/admin/admin/{userCode}", "View admin details"},

	// Course management
	{PermCreateCourse, http.MethodPost, "/admin/courses", "Create a new course"},
	{PermViewAllCourses, http.MethodGet, "/admin/courses", "List all courses"},
	{PermViewCourseInfo, http.MethodGet, "/admin/courses/info", "View course statistics"},
	{PermViewCourseDetails, http.MethodGet, "/admin/courses/{courseId}/details", "View course details"},
	{PermViewCourseFullDetails, http.MethodGet, "/admin/courses/{courseId}/full-details", "View full course details"},
	{PermUpdateCourse, http.MethodPut, "/admin/courses/{courseId}", "Update a course"},
	{PermDeleteCourse, http.MethodDelete, "/admin/courses/{courseId}", "Delete a course"},
	{PermViewCoursesByTeacher, http.MethodGet, "/admin/courses/byteacher/{teacherId}", "List courses taught by a teacher"},
	{PermViewCoursesByStudent, http.MethodGet, "/admin/courses/bystudent/{studentId}", "List courses a student is enrolled in"},
	{PermViewStudentCourseDetails, http.MethodGet, "/admin/student/courses/{courseId}/details", "View course details as a student"},
	{PermViewStudentScores, http.MethodGet, "/admin/courses/{courseId}/students/{studentId}/scores", "View a student's scores"},
	{PermUpdateStudentScores, http.MethodPost, "/admin/courses/{courseId}/students/{studentId}/scores", "Update a student's scores"},

	// Lesson management
	{PermCreateLesson, http.MethodPost, "/api/lessons/create", "Create a new lesson"},
	{PermViewLesson, http.MethodGet, "/api/lessons/{lessonId}", "View a lesson"},
	{PermUpdateLesson, http.MethodPut, "/api/lessons/{lessonId}", "Update a lesson"},
	{PermUpdateLessonWithFiles, http.MethodPut, "/api/lessons/{lessonId}/update-with-files", "Update a lesson together with its documents"},
	{PermPublishLesson, http.MethodPut, "/api/lessons/{lessonId}/publish", "Publish a lesson"},
	{PermUploadLessonDocuments, http.MethodPost, "/api/lesson-documents/upload", "Upload lesson documents"},

	// Assignment management
	{PermCreateAssignment, http.MethodPost, "/api/assignments/create-with-files", "Create a new assignment"},
	{PermViewAssignment, http.MethodGet, "/api/assignments/detail/{assignmentId}", "View an assignment"},
	{PermUpdateAssignment, http.MethodPut, "/api/assignments/update/{assignmentId}", "Update an assignment"},
	{PermUpdateAssignmentWithFiles, http.MethodPut, "/api/assignments/{assignmentId}/update-with-files", "Update an assignment together with its documents"},
	{PermPublishAssignment, http.MethodPut, "/api/assignments/{assignmentId}/publish", "Publish an assignment"},
	{PermDeleteAssignment, http.MethodDelete, "/api/assignments/delete/{assignmentId}", "Delete an assignment"},

	// Submission management
	{PermSubmitAssignment, http.MethodPost, "/api/submissions/submit-or-update", "Submit or update a submission"},
	{PermViewAssignmentSubmissions, http.MethodGet, "/api/submissions/assignment/{assignmentId}", "List submissions for an assignment"},
	{PermGradeSubmission, http.MethodPost, "/api/submissions/{submissionId}/grade", "Grade a submission"},
	{PermViewUnsubmittedCount, http.MethodGet, "/api/submissions/student/{studentId}/unsubmitted-count", "Count a student's unsubmitted assignments"},

	// Enrollment management
	{PermCreateEnrollment, http.MethodPost, "/enrollments", "Enroll a student in a course"},
	{PermDeleteEnrollment, http.MethodDelete, "/enrollments", "Remove a student from a course"},

	// Department and subject
	{PermViewDepartments, http.MethodGet, "/departments/allresponses", "List departments"},
	{PermViewDepartmentNames, http.MethodGet, "/admin/departments/names", "List department names"},
	{PermViewDepartmentName, http.MethodGet, "/admin/department/{departmentId}/name", "View a department's name"},
	{PermViewDepartmentTeachers, http.MethodGet, "/admin/department/{departmentId}/teachers_select", "List teachers of a department"},
	{PermViewSubjects, http.MethodGet, "/admin/subjects/{subjectId}", "View a subject"},
	{PermViewSubjectCourses, http.MethodGet, "/admin/subjects/{subjectId}/courses", "List courses of a subject"},
	{PermViewSubjectCoursesOpen, http.MethodGet, "/subjects/{subjectId}/courses", "List courses of a subject (public)"},
	{PermViewMajors, http.MethodGet, "/admin/majors/{departmentId}/allresponse", "List majors of a department"},
	{PermViewMajorSubjects, http.MethodGet, "/admin/majors/{majorId}/subjects", "List subjects of a major"},

	// Classroom
	{PermViewClassroomNames, http.MethodGet, "/admin/classrooms/name", "List classroom names"},

	// Documents and files
	{PermCheckStorageStatus, http.MethodGet, "/api/lesson-documents/storage-status", "Check document storage connectivity"},
	{PermCheckUsage, http.MethodGet, "/api/lesson-documents/check-usage", "Check document storage usage"},
	{PermAccessStaticFiles, http.MethodGet, "/{cleanPath}", "Access static files"},

	// Chatbot
	{PermUseChatbot, http.MethodGet, "/chatbot/{message}", "Ask the assistant"},

	// Authentication
	{PermLogin, http.MethodPost, "/login", "Log in"},
	{PermViewAccount, http.MethodGet, "/auth/account", "View own account"},
	{PermRefreshToken, http.MethodGet, "/auth/refresh", "Rotate the refresh token"},
	{PermLogout, http.MethodPost, "/logout", "Log out"},

	// Health
	{PermHealthCheck, http.MethodGet, "/health", "Health check"},
}

// byID indexes the catalog for role-list resolution.
var byID = func() map[string]Permission {
	m := make(map[string]Permission, len(catalog))
	for _, p := range catalog {
		m[p.ID] = p
	}
	return m
}()

// Catalog returns the full permission table in declaration order. The
// returned slice is a copy; callers cannot mutate the catalog through it.
func Catalog() []Permission {
	out := make([]Permission, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the permission with the given ID.
func Lookup(id string) (Permission, bool) {
	p, ok := byID[id]
	return p, ok
}

// Matches reports whether the permission covers the given request
// method and concrete path.
func (p Permission) Matches(method, path string) bool {
	if p.Method != method {
		return false
	}
	return MatchPath(p.Pattern, path)
}
