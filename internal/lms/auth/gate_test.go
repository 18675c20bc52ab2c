package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectory struct {
	accounts map[string]*Account
	err      error
	panics   bool
}

func (d *stubDirectory) FindByCode(_ context.Context, userCode string) (*Account, error) {
	if d.panics {
		panic("directory blew up")
	}
	if d.err != nil {
		return nil, d.err
	}
	return d.accounts[userCode], nil
}

func newGateTest(dir *stubDirectory) (*echo.Echo, *TokenService) {
	tokens := NewTokenService("gate-test-secret", time.Hour, time.Hour)
	gate := NewGate(tokens, dir, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.Use(gate.Middleware())

	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "ok",
			"userCode": c.Get(ContextKeyUserCode),
			"role":     c.Get(ContextKeyRole),
		})
	}
	e.POST("/login", ok)
	e.GET("/auth/account", ok)
	e.GET("/health", ok)
	e.POST("/admin/user", ok)
	e.DELETE("/admin/courses/:courseId", ok)
	e.PUT("/api/lessons/:lessonId/update-with-files", ok)
	e.POST("/api/submissions/submit-or-update", ok)
	return e, tokens
}

func gateRequest(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func issueToken(t *testing.T, tokens *TokenService, userCode string) string {
	t.Helper()
	raw, err := tokens.CreateAccessToken(userCode, AccountClaim{UserCode: userCode})
	require.NoError(t, err)
	return raw
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGateExcludedPathBypasses(t *testing.T) {
	e, _ := newGateTest(&stubDirectory{})

	rec := gateRequest(e, http.MethodPost, "/login", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateMissingToken(t *testing.T) {
	e, _ := newGateTest(&stubDirectory{})

	rec := gateRequest(e, http.MethodGet, "/auth/account", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestGateInvalidToken(t *testing.T) {
	e, _ := newGateTest(&stubDirectory{})

	rec := gateRequest(e, http.MethodGet, "/auth/account", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGateUnknownUser(t *testing.T) {
	e, tokens := newGateTest(&stubDirectory{accounts: map[string]*Account{}})

	rec := gateRequest(e, http.MethodGet, "/auth/account", issueToken(t, tokens, "GHOST"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Forbidden", body["error"])
}

func TestGateLookupErrorDeniesNot500(t *testing.T) {
	e, tokens := newGateTest(&stubDirectory{err: errors.New("db down")})

	rec := gateRequest(e, http.MethodGet, "/auth/account", issueToken(t, tokens, "SV001"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGateLookupPanicDeniesNot500(t *testing.T) {
	e, tokens := newGateTest(&stubDirectory{panics: true})

	rec := gateRequest(e, http.MethodGet, "/auth/account", issueToken(t, tokens, "SV001"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGateRoleDenied(t *testing.T) {
	dir := &stubDirectory{accounts: map[string]*Account{
		"SV001": {UserCode: "SV001", Role: "STUDENT"},
	}}
	e, tokens := newGateTest(dir)
	token := issueToken(t, tokens, "SV001")

	rec := gateRequest(e, http.MethodPost, "/admin/user", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "FORBIDDEN", body["error"])

	rec = gateRequest(e, http.MethodDelete, "/admin/courses/5", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGateRoleAccepted(t *testing.T) {
	dir := &stubDirectory{accounts: map[string]*Account{
		"SV001": {UserCode: "SV001", Role: "STUDENT"},
		"GV001": {UserCode: "GV001", Role: "TEACHER"},
		"AD001": {UserCode: "AD001", Role: "ADMIN"},
	}}
	e, tokens := newGateTest(dir)

	rec := gateRequest(e, http.MethodGet, "/auth/account", issueToken(t, tokens, "SV001"))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "SV001", body["userCode"])
	assert.Equal(t, "STUDENT", body["role"])

	rec = gateRequest(e, http.MethodPost, "/api/submissions/submit-or-update", issueToken(t, tokens, "SV001"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = gateRequest(e, http.MethodPut, "/api/lessons/77/update-with-files", issueToken(t, tokens, "GV001"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = gateRequest(e, http.MethodDelete, "/admin/courses/5", issueToken(t, tokens, "AD001"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateLowercaseRoleAccepted(t *testing.T) {
	dir := &stubDirectory{accounts: map[string]*Account{
		"AD001": {UserCode: "AD001", Role: "admin"},
	}}
	e, tokens := newGateTest(dir)

	rec := gateRequest(e, http.MethodGet, "/health", issueToken(t, tokens, "AD001"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
