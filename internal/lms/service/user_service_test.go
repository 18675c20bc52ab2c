package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
)

func TestCreateUserHashesPassword(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewUserService(repo, nil, testLogger())

	repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user, err := svc.Create(context.Background(), model.CreateUserReq{
		UserCode: "SV001",
		FullName: "Test Student",
		Email:    "sv001@lms.local",
		Role:     "student",
		Password: "secret-password",
	})
	require.NoError(t, err)

	// Role is normalized and the plaintext is never stored
	assert.Equal(t, "STUDENT", user.Role)
	assert.NotEqual(t, "secret-password", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
}

func TestCreateUserDuplicateCode(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewUserService(repo, nil, testLogger())

	repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).Return(repository.ErrDuplicate)

	_, err := svc.Create(context.Background(), model.CreateUserReq{
		UserCode: "SV001",
		FullName: "Test Student",
		Email:    "sv001@lms.local",
		Role:     "STUDENT",
		Password: "secret-password",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetUserNotFound(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewUserService(repo, nil, testLogger())

	repo.On("FindUserByCode", mock.Anything, "GHOST").Return(nil, repository.ErrNotFound)

	_, err := svc.Get(context.Background(), "GHOST")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStatistics(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewUserService(repo, nil, testLogger())

	repo.On("CountUsersByRole", mock.Anything, "ADMIN").Return(int64(2), nil)
	repo.On("CountUsersByRole", mock.Anything, "TEACHER").Return(int64(10), nil)
	repo.On("CountUsersByRole", mock.Anything, "STUDENT").Return(int64(300), nil)

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Admins)
	assert.Equal(t, int64(10), stats.Teachers)
	assert.Equal(t, int64(300), stats.Students)
	assert.Equal(t, int64(312), stats.Total)
}
