package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
)

// ReferenceService serves the read-only catalog entities and teacher lookups.
type ReferenceService struct {
	repo   repository.LMSRepository
	logger *slog.Logger
}

func NewReferenceService(repo repository.LMSRepository, logger *slog.Logger) *ReferenceService {
	return &ReferenceService{repo: repo, logger: logger}
}

func (s *ReferenceService) Departments(ctx context.Context) ([]*model.Department, error) {
	return s.repo.FindAllDepartments(ctx)
}

func (s *ReferenceService) MajorsByDepartment(ctx context.Context, departmentID string) ([]*model.Major, error) {
	if _, err := s.repo.FindDepartmentByID(ctx, departmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: department %s", ErrNotFound, departmentID)
		}
		return nil, err
	}
	return s.repo.FindMajorsByDepartment(ctx, departmentID)
}

func (s *ReferenceService) Subject(ctx context.Context, id string) (*model.Subject, error) {
	subject, err := s.repo.FindSubjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: subject %s", ErrNotFound, id)
		}
		return nil, err
	}
	return subject, nil
}

func (s *ReferenceService) SubjectsByMajor(ctx context.Context, majorID string) ([]*model.Subject, error) {
	return s.repo.FindSubjectsByMajor(ctx, majorID)
}

func (s *ReferenceService) Classrooms(ctx context.Context) ([]*model.Classroom, error) {
	return s.repo.FindAllClassrooms(ctx)
}

func (s *ReferenceService) TeachersByDepartment(ctx context.Context, departmentID string) ([]model.TeacherOption, error) {
	return s.repo.FindTeachersByDepartment(ctx, departmentID)
}
