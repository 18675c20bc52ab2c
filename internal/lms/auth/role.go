package auth

import "strings"

// Role is one of the closed set of roles known to the system. Adding a role
// is a code change; there is no runtime role registry.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Roles lists every known role.
var Roles = []Role{RoleAdmin, RoleTeacher, RoleStudent}

// rolePermissionIDs assigns each role its permission set by ID. Matching is
// existential over the set, so ordering here is for readability only.
var rolePermissionIDs = map[Role][]string{
	RoleAdmin: {
		// User management - full access
		PermCreateUser,
		PermViewAllUsers,
		PermViewUserStatistics,
		PermUpdateUser,
		PermDeleteUser,
		PermViewStudentDetails,
		PermViewTeacherDetails,
		PermViewAdminDetails,

		// Course management - full access
		PermCreateCourse,
		PermViewAllCourses,
		PermViewCourseInfo,
		PermViewCourseDetails,
		PermViewCourseFullDetails,
		PermUpdateCourse,
		PermDeleteCourse,
		PermViewCoursesByTeacher,
		PermViewCoursesByStudent,
		PermViewStudentCourseDetails,
		PermViewStudentScores,
		PermUpdateStudentScores,

		// Lesson management - full access
		PermCreateLesson,
		PermViewLesson,
		PermUpdateLesson,
		PermUpdateLessonWithFiles,
		PermPublishLesson,
		PermUploadLessonDocuments,

		// Assignment management - full access
		PermCreateAssignment,
		PermViewAssignment,
		PermUpdateAssignment,
		PermUpdateAssignmentWithFiles,
		PermPublishAssignment,
		PermDeleteAssignment,

		// Submission management - full access
		PermViewAssignmentSubmissions,
		PermGradeSubmission,
		PermViewUnsubmittedCount,

		// Enrollment management
		PermCreateEnrollment,
		PermDeleteEnrollment,

		// Department and subject - full access
		PermViewDepartments,
		PermViewDepartmentNames,
		PermViewDepartmentName,
		PermViewDepartmentTeachers,
		PermViewSubjects,
		PermViewSubjectCourses,
		PermViewSubjectCoursesOpen,
		PermViewMajors,
		PermViewMajorSubjects,

		// Classroom
		PermViewClassroomNames,

		// Documents and files
		PermCheckStorageStatus,
		PermCheckUsage,
		PermAccessStaticFiles,

		// Chatbot
		PermUseChatbot,

		// Authentication and health
		PermLogin,
		PermViewAccount,
		PermRefreshToken,
		PermLogout,
		PermHealthCheck,
	},
	RoleTeacher: {
		// Course access - limited to own courses
		PermViewCoursesByTeacher,
		PermViewCourseFullDetails,
		PermViewStudentScores,
		PermUpdateStudentScores,

		// Lesson management - full access
		PermCreateLesson,
		PermViewLesson,
		PermUpdateLesson,
		PermUpdateLessonWithFiles,
		PermPublishLesson,
		PermUploadLessonDocuments,

		// Assignment management - full access
		PermCreateAssignment,
		PermViewAssignment,
		PermUpdateAssignment,
		PermUpdateAssignmentWithFiles,
		PermPublishAssignment,
		PermDeleteAssignment,

		// Submission management - grading access
		PermViewAssignmentSubmissions,
		PermGradeSubmission,

		// Department and subject - read only
		PermViewDepartments,
		PermViewDepartmentNames,
		PermViewDepartmentName,
		PermViewDepartmentTeachers,
		PermViewSubjects,
		PermViewSubjectCourses,
		PermViewSubjectCoursesOpen,
		PermViewMajors,
		PermViewMajorSubjects,

		// Documents and files
		PermAccessStaticFiles,

		// Chatbot
		PermUseChatbot,

		// Authentication and health
		PermLogin,
		PermViewAccount,
		PermRefreshToken,
		PermLogout,
		PermHealthCheck,
	},
	RoleStudent: {
		// Course access - only enrolled courses
		PermViewCoursesByStudent,
		PermViewStudentCourseDetails,

		// Lesson access - read only
		PermViewLesson,

		// Assignment access - read and submit
		PermViewAssignment,
		PermSubmitAssignment,
		PermViewUnsubmittedCount,

		// Department and subject - read only
		PermViewDepartments,
		PermViewSubjectCoursesOpen,

		// Documents and files
		PermAccessStaticFiles,

		// Chatbot
		PermUseChatbot,

		// Authentication and health
		PermLogin,
		PermViewAccount,
		PermRefreshToken,
		PermLogout,
		PermHealthCheck,
	},
}

// rolePermissions resolves the ID lists against the catalog once at startup.
// A list entry that is not in the catalog is a programming error.
var rolePermissions = func() map[Role][]Permission {
	m := make(map[Role][]Permission, len(rolePermissionIDs))
	for role, ids := range rolePermissionIDs {
		perms := make([]Permission, 0, len(ids))
		for _, id := range ids {
			p, ok := byID[id]
			if !ok {
				panic("auth: role " + string(role) + " references unknown permission " + id)
			}
			perms = append(perms, p)
		}
		m[role] = perms
	}
	return m
}()

// PermissionsForRole returns the permission set granted to the named role.
// The name is matched case-insensitively against the closed role set; an
// unknown or empty name yields an empty set, never an error (fail-closed).
func PermissionsForRole(name string) []Permission {
	role := Role(strings.ToUpper(strings.TrimSpace(name)))
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// RoleAllows reports whether the named role holds any permission covering
// the (method, path) pair.
func RoleAllows(name, method, path string) bool {
	for _, p := range PermissionsForRole(name) {
		if p.Matches(method, path) {
			return true
		}
	}
	return false
}
