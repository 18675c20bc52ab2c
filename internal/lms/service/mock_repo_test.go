package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
)

// MockUserRepo mocks repository.UserRepository.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) FindUserByCode(ctx context.Context, userCode string) (*model.User, error) {
	args := m.Called(ctx, userCode)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) FindUserByCodeAndRefreshToken(ctx context.Context, userCode, refreshToken string) (*model.User, error) {
	args := m.Called(ctx, userCode, refreshToken)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) UpdateRefreshToken(ctx context.Context, userCode, refreshToken string) error {
	args := m.Called(ctx, userCode, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateUser(ctx context.Context, userCode string, req model.UpdateUserReq) error {
	args := m.Called(ctx, userCode, req)
	return args.Error(0)
}

func (m *MockUserRepo) DeleteUser(ctx context.Context, userCode string) error {
	args := m.Called(ctx, userCode)
	return args.Error(0)
}

func (m *MockUserRepo) FindAllUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) FindTeachersByDepartment(ctx context.Context, departmentID string) ([]model.TeacherOption, error) {
	args := m.Called(ctx, departmentID)
	if t := args.Get(0); t != nil {
		return t.([]model.TeacherOption), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) FindUsersByIDs(ctx context.Context, ids []string) ([]*model.User, error) {
	args := m.Called(ctx, ids)
	if u := args.Get(0); u != nil {
		return u.([]*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockAutoGradeRepo mocks the persistence slice the auto-grading sweep uses.
type MockAutoGradeRepo struct {
	mock.Mock
}

func (m *MockAutoGradeRepo) FindExpiredAssignmentsForAutoGrading(ctx context.Context, now time.Time) ([]*model.Assignment, error) {
	args := m.Called(ctx, now)
	if a := args.Get(0); a != nil {
		return a.([]*model.Assignment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAutoGradeRepo) MarkAssignmentAutoGraded(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAutoGradeRepo) FindStudentIDsByCourse(ctx context.Context, courseID string) ([]string, error) {
	args := m.Called(ctx, courseID)
	if s := args.Get(0); s != nil {
		return s.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAutoGradeRepo) FindSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]*model.Submission, error) {
	args := m.Called(ctx, assignmentID)
	if s := args.Get(0); s != nil {
		return s.([]*model.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAutoGradeRepo) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}
