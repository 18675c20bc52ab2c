package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Pattern = "/mutated"

	second := Catalog()
	assert.NotEqual(t, "/mutated", second[0].Pattern)
	assert.Equal(t, len(first), len(second))
}

func TestCatalogUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Catalog() {
		assert.False(t, seen[p.ID], "duplicate permission ID %s", p.ID)
		seen[p.ID] = true
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	for _, p := range Catalog() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Method)
		assert.NotEmpty(t, p.Description)
		assert.True(t, len(p.Pattern) > 0 && p.Pattern[0] == '/',
			"pattern %q must start with /", p.Pattern)
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(PermDeleteCourse)
	assert.True(t, ok)
	assert.Equal(t, http.MethodDelete, p.Method)
	assert.Equal(t, "/admin/courses/{courseId}", p.Pattern)

	_, ok = Lookup("NO_SUCH_PERMISSION")
	assert.False(t, ok)
}

func TestPermissionMatches(t *testing.T) {
	p, _ := Lookup(PermDeleteCourse)

	assert.True(t, p.Matches(http.MethodDelete, "/admin/courses/5"))

	// Method mismatch fails even on a matching path
	assert.False(t, p.Matches(http.MethodGet, "/admin/courses/5"))
	assert.False(t, p.Matches(http.MethodDelete, "/admin/courses/5/details"))
}

func TestRoleListsReferenceCatalog(t *testing.T) {
	for role, ids := range rolePermissionIDs {
		for _, id := range ids {
			_, ok := Lookup(id)
			assert.True(t, ok, "role %s references unknown permission %s", role, id)
		}
	}
}
