package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/auth"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
)

// fakeUserRepo is a single-user in-memory repository.UserRepository.
type fakeUserRepo struct {
	user *model.User
}

func (f *fakeUserRepo) CreateUser(context.Context, *model.User) error { return nil }

func (f *fakeUserRepo) FindUserByCode(_ context.Context, userCode string) (*model.User, error) {
	if f.user != nil && f.user.UserCode == userCode {
		return f.user, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindUserByCodeAndRefreshToken(_ context.Context, userCode, refreshToken string) (*model.User, error) {
	if f.user != nil && f.user.UserCode == userCode && f.user.RefreshToken == refreshToken {
		return f.user, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) UpdateRefreshToken(_ context.Context, userCode, refreshToken string) error {
	if f.user != nil && f.user.UserCode == userCode {
		f.user.RefreshToken = refreshToken
		return nil
	}
	return repository.ErrNotFound
}

func (f *fakeUserRepo) UpdateUser(context.Context, string, model.UpdateUserReq) error { return nil }
func (f *fakeUserRepo) DeleteUser(context.Context, string) error                      { return nil }
func (f *fakeUserRepo) FindAllUsers(context.Context) ([]*model.User, error)           { return nil, nil }
func (f *fakeUserRepo) CountUsersByRole(context.Context, string) (int64, error)       { return 0, nil }
func (f *fakeUserRepo) FindTeachersByDepartment(context.Context, string) ([]model.TeacherOption, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindUsersByIDs(context.Context, []string) ([]*model.User, error) {
	return nil, nil
}

func setupAuthHandler(t *testing.T) (*echo.Echo, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{user: &model.User{
		ID:           "u1",
		UserCode:     "SV001",
		FullName:     "Test Student",
		Email:        "sv001@lms.local",
		Role:         "STUDENT",
		PasswordHash: string(hash),
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewTokenService("handler-test-secret", time.Hour, 24*time.Hour)
	h := NewAuthHandler(service.NewAuthService(repo, tokens, logger), tokens.RefreshExpiry())

	e := echo.New()
	e.POST("/login", h.Login)
	e.GET("/auth/refresh", h.Refresh)
	return e, repo
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoginHandlerSuccess(t *testing.T) {
	e, repo := setupAuthHandler(t)

	rec := postJSON(e, "/login", `{"username":"SV001","password":"secret-password"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body model.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, body.StatusCode)
	assert.Empty(t, body.Error)

	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["accessToken"])

	// Refresh token lands in an HttpOnly cookie and is stored server side
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "refreshToken", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, repo.user.RefreshToken, cookies[0].Value)
	assert.NotContains(t, rec.Body.String(), repo.user.PasswordHash)
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	e, _ := setupAuthHandler(t)

	rec := postJSON(e, "/login", `{"username":"SV001","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body model.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body.Error)
}

func TestLoginHandlerMissingFields(t *testing.T) {
	e, _ := setupAuthHandler(t)

	rec := postJSON(e, "/login", `{"username":"SV001"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshHandlerRotates(t *testing.T) {
	e, repo := setupAuthHandler(t)

	rec := postJSON(e, "/login", `{"username":"SV001","password":"secret-password"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	loginCookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	req.AddCookie(loginCookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, repo.user.RefreshToken, cookies[0].Value)
}

func TestRefreshHandlerNoCookie(t *testing.T) {
	e, _ := setupAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/refresh", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHTTPErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrConflict, http.StatusConflict},
		{service.ErrBadRequest, http.StatusBadRequest},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		status, body := httpError(tc.err)
		assert.Equal(t, tc.status, status)
		assert.Equal(t, tc.status, body.StatusCode)
	}
}
