package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/auth"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           "u1",
		UserCode:     "SV001",
		FullName:     "Test Student",
		Email:        "sv001@lms.local",
		Role:         "STUDENT",
		PasswordHash: string(hash),
	}
}

func newAuthService(repo *MockUserRepo) (*AuthService, *auth.TokenService) {
	tokens := auth.NewTokenService("auth-test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, tokens, testLogger()), tokens
}

func TestLoginSuccess(t *testing.T) {
	repo := new(MockUserRepo)
	svc, tokens := newAuthService(repo)

	user := testUser(t, "secret-password")
	repo.On("FindUserByCode", mock.Anything, "SV001").Return(user, nil)
	repo.On("UpdateRefreshToken", mock.Anything, "SV001", mock.AnythingOfType("string")).Return(nil)

	res, refreshToken, err := svc.Login(context.Background(), model.LoginReq{
		Username: "SV001", Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "SV001", res.User.UserCode)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, refreshToken)

	// Both issued tokens verify and carry the user code as subject
	claims, err := tokens.Verify(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "SV001", claims.Subject)

	claims, err = tokens.Verify(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "SV001", claims.Subject)

	repo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(MockUserRepo)
	svc, _ := newAuthService(repo)

	repo.On("FindUserByCode", mock.Anything, "SV001").Return(testUser(t, "secret-password"), nil)

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Username: "SV001", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := new(MockUserRepo)
	svc, _ := newAuthService(repo)

	repo.On("FindUserByCode", mock.Anything, "GHOST").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(context.Background(), model.LoginReq{
		Username: "GHOST", Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefreshRotatesToken(t *testing.T) {
	repo := new(MockUserRepo)
	svc, tokens := newAuthService(repo)

	user := testUser(t, "secret-password")
	oldToken, err := tokens.CreateRefreshToken("SV001", auth.AccountClaim{UserCode: "SV001"})
	require.NoError(t, err)

	repo.On("FindUserByCodeAndRefreshToken", mock.Anything, "SV001", oldToken).Return(user, nil)
	repo.On("UpdateRefreshToken", mock.Anything, "SV001", mock.AnythingOfType("string")).Return(nil)

	res, newToken, err := svc.Refresh(context.Background(), oldToken)
	require.NoError(t, err)
	assert.Equal(t, "SV001", res.User.UserCode)
	assert.NotEmpty(t, newToken)
}

func TestRefreshRevokedToken(t *testing.T) {
	repo := new(MockUserRepo)
	svc, tokens := newAuthService(repo)

	oldToken, err := tokens.CreateRefreshToken("SV001", auth.AccountClaim{UserCode: "SV001"})
	require.NoError(t, err)

	// Token verifies but no longer matches the stored one
	repo.On("FindUserByCodeAndRefreshToken", mock.Anything, "SV001", oldToken).Return(nil, repository.ErrNotFound)

	_, _, err = svc.Refresh(context.Background(), oldToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefreshGarbageToken(t *testing.T) {
	repo := new(MockUserRepo)
	svc, _ := newAuthService(repo)

	_, _, err := svc.Refresh(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogoutClearsRefreshToken(t *testing.T) {
	repo := new(MockUserRepo)
	svc, _ := newAuthService(repo)

	repo.On("UpdateRefreshToken", mock.Anything, "SV001", "").Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), "SV001"))
	repo.AssertExpectations(t)
}

func TestDirectoryMapsNotFoundToNil(t *testing.T) {
	repo := new(MockUserRepo)
	dir := NewDirectory(repo)

	repo.On("FindUserByCode", mock.Anything, "GHOST").Return(nil, repository.ErrNotFound)

	account, err := dir.FindByCode(context.Background(), "GHOST")
	assert.NoError(t, err)
	assert.Nil(t, account)
}

func TestDirectoryReturnsAccount(t *testing.T) {
	repo := new(MockUserRepo)
	dir := NewDirectory(repo)

	repo.On("FindUserByCode", mock.Anything, "SV001").Return(testUser(t, "x"), nil)

	account, err := dir.FindByCode(context.Background(), "SV001")
	require.NoError(t, err)
	assert.Equal(t, "SV001", account.UserCode)
	assert.Equal(t, "STUDENT", account.Role)
}
