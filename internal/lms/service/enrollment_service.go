package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
)

type EnrollmentService struct {
	repo   repository.LMSRepository
	logger *slog.Logger
}

func NewEnrollmentService(repo repository.LMSRepository, logger *slog.Logger) *EnrollmentService {
	return &EnrollmentService{repo: repo, logger: logger}
}

// Enroll adds a student to a course, enforcing the course capacity when one
// is set.
func (s *EnrollmentService) Enroll(ctx context.Context, req model.EnrollmentReq) (*model.Enrollment, error) {
	course, err := s.repo.FindCourseByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: course %s", ErrNotFound, req.CourseID)
		}
		return nil, err
	}

	student, err := s.repo.FindUserByCode(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: student %s", ErrNotFound, req.StudentID)
		}
		return nil, err
	}
	if student.Role != "STUDENT" {
		return nil, fmt.Errorf("%w: user %s is not a student", ErrBadRequest, req.StudentID)
	}

	if course.MaxStudents > 0 {
		enrolled, err := s.repo.CountEnrollmentsByCourse(ctx, req.CourseID)
		if err != nil {
			return nil, err
		}
		if enrolled >= int64(course.MaxStudents) {
			return nil, fmt.Errorf("%w: course %s is full", ErrConflict, req.CourseID)
		}
	}

	e := &model.Enrollment{CourseID: req.CourseID, StudentID: student.ID}
	if err := s.repo.CreateEnrollment(ctx, e); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: student already enrolled", ErrConflict)
		}
		return nil, err
	}
	return e, nil
}

func (s *EnrollmentService) Unenroll(ctx context.Context, courseID, studentID string) error {
	if err := s.repo.DeleteEnrollment(ctx, courseID, studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: enrollment not found", ErrNotFound)
		}
		return err
	}
	return nil
}
