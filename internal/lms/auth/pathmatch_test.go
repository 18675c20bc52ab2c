package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPathLiterals(t *testing.T) {
	assert.True(t, MatchPath("/login", "/login"))
	assert.True(t, MatchPath("/admin/users", "/admin/users"))

	// Whole-path match, never a prefix
	assert.False(t, MatchPath("/login", "/logins"))
	assert.False(t, MatchPath("/login", "/login/extra"))
	assert.False(t, MatchPath("/admin/users", "/admin"))

	// Case sensitive
	assert.False(t, MatchPath("/login", "/Login"))
}

func TestMatchPathNormalization(t *testing.T) {
	assert.True(t, MatchPath("/admin/users", "/admin/users/"))
	assert.True(t, MatchPath("/admin/users", "/admin//users"))
	assert.True(t, MatchPath("/admin/users", "//admin///users//"))

	// Bare root keeps its slash
	assert.True(t, MatchPath("/", "/"))
}

func TestMatchPathPlaceholders(t *testing.T) {
	assert.True(t, MatchPath("/admin/courses/{courseId}", "/admin/courses/42"))
	assert.True(t, MatchPath("/admin/courses/{courseId}", "/admin/courses/abc-def"))
	assert.True(t, MatchPath("/api/lessons/{lessonId}/publish", "/api/lessons/77/publish"))
	assert.True(t, MatchPath(
		"/admin/courses/{courseId}/students/{studentId}/scores",
		"/admin/courses/c1/students/s1/scores"))

	// A placeholder binds exactly one non-empty segment
	assert.False(t, MatchPath("/admin/courses/{courseId}", "/admin/courses/42/details"))
	assert.False(t, MatchPath("/admin/courses/{courseId}", "/admin/courses/"))
	assert.False(t, MatchPath("/admin/courses/{courseId}", "/admin/courses"))
	assert.False(t, MatchPath("/{cleanPath}", "/assets/js/app.js"))
	assert.True(t, MatchPath("/{cleanPath}", "/favicon.ico"))
}

func TestMatchPathWildcard(t *testing.T) {
	// A trailing wildcard swallows the remainder of the path
	assert.True(t, MatchPath("/files/*", "/files/a"))
	assert.True(t, MatchPath("/files/*", "/files/a/b/c"))
	assert.True(t, MatchPath("/api/*/detail", "/api/assignments/detail"))
	assert.True(t, MatchPath("/api/*/detail", "/api/a/b/detail"))

	assert.False(t, MatchPath("/files/*", "/file"))
}

func TestMatchPathLiteralBrace(t *testing.T) {
	// An unbalanced brace is not a placeholder
	assert.True(t, MatchPath("/odd/{path", "/odd/{path"))
	assert.False(t, MatchPath("/odd/{path", "/odd/anything"))
}

func TestCatalogPatternsCompile(t *testing.T) {
	for _, p := range Catalog() {
		_, err := compilePattern(p.Pattern)
		assert.NoError(t, err, "pattern %s must compile", p.Pattern)
	}
}
