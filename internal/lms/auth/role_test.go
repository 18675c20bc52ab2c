package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func permissionIDs(perms []Permission) map[string]bool {
	m := make(map[string]bool, len(perms))
	for _, p := range perms {
		m[p.ID] = true
	}
	return m
}

func TestPermissionsForRoleKnownRoles(t *testing.T) {
	for _, role := range Roles {
		perms := PermissionsForRole(string(role))
		assert.NotEmpty(t, perms, "role %s should have permissions", role)
	}
}

func TestPermissionsForRoleCaseInsensitive(t *testing.T) {
	upper := permissionIDs(PermissionsForRole("ADMIN"))
	lower := permissionIDs(PermissionsForRole("admin"))
	mixed := permissionIDs(PermissionsForRole("  Admin "))

	assert.Equal(t, upper, lower)
	assert.Equal(t, upper, mixed)
}

func TestPermissionsForRoleUnknown(t *testing.T) {
	assert.Empty(t, PermissionsForRole(""))
	assert.Empty(t, PermissionsForRole("SUPERUSER"))
	assert.Empty(t, PermissionsForRole("ADMIN X"))
}

func TestPermissionsForRoleReturnsCopy(t *testing.T) {
	perms := PermissionsForRole("STUDENT")
	perms[0].ID = "MUTATED"

	again := PermissionsForRole("STUDENT")
	assert.NotEqual(t, "MUTATED", again[0].ID)
}

func TestRolePermissionBoundaries(t *testing.T) {
	admin := permissionIDs(PermissionsForRole("ADMIN"))
	teacher := permissionIDs(PermissionsForRole("TEACHER"))
	student := permissionIDs(PermissionsForRole("STUDENT"))

	// Only students submit assignments
	assert.False(t, admin[PermSubmitAssignment])
	assert.False(t, teacher[PermSubmitAssignment])
	assert.True(t, student[PermSubmitAssignment])

	// Only admins manage users and enrollments
	assert.True(t, admin[PermCreateUser])
	assert.False(t, teacher[PermCreateUser])
	assert.False(t, student[PermCreateUser])
	assert.True(t, admin[PermCreateEnrollment])
	assert.False(t, teacher[PermCreateEnrollment])
	assert.False(t, student[PermCreateEnrollment])

	// Teachers manage lessons and grade, students do not
	assert.True(t, teacher[PermCreateLesson])
	assert.True(t, teacher[PermGradeSubmission])
	assert.False(t, student[PermCreateLesson])
	assert.False(t, student[PermGradeSubmission])

	// Everyone holds the session permissions
	for name, ids := range map[string]map[string]bool{"admin": admin, "teacher": teacher, "student": student} {
		assert.True(t, ids[PermViewAccount], "%s should view own account", name)
		assert.True(t, ids[PermLogout], "%s should log out", name)
		assert.True(t, ids[PermUseChatbot], "%s should use the chatbot", name)
	}
}

func TestRoleAllows(t *testing.T) {
	// Admin deletes a course, student cannot
	assert.True(t, RoleAllows("ADMIN", http.MethodDelete, "/admin/courses/5"))
	assert.False(t, RoleAllows("STUDENT", http.MethodDelete, "/admin/courses/5"))

	// Teacher updates a lesson with files
	assert.True(t, RoleAllows("TEACHER", http.MethodPut, "/api/lessons/77/update-with-files"))
	assert.False(t, RoleAllows("STUDENT", http.MethodPut, "/api/lessons/77/update-with-files"))

	// Student submits an assignment
	assert.True(t, RoleAllows("STUDENT", http.MethodPost, "/api/submissions/submit-or-update"))
	assert.False(t, RoleAllows("TEACHER", http.MethodPost, "/api/submissions/submit-or-update"))

	// Unknown role is always denied
	assert.False(t, RoleAllows("SUPERUSER", http.MethodGet, "/health"))
	assert.False(t, RoleAllows("", http.MethodGet, "/health"))
}
