package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
)

type SubmissionService struct {
	repo   repository.LMSRepository
	logger *slog.Logger
}

func NewSubmissionService(repo repository.LMSRepository, logger *slog.Logger) *SubmissionService {
	return &SubmissionService{repo: repo, logger: logger}
}

// Submit records or replaces a student's answer for an assignment. Late
// submissions are rejected unless the assignment allows them, in which case
// they are flagged.
func (s *SubmissionService) Submit(ctx context.Context, studentID string, req model.SubmitAssignmentReq) (*model.Submission, error) {
	assignment, err := s.repo.FindAssignmentByID(ctx, req.AssignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: assignment %s", ErrNotFound, req.AssignmentID)
		}
		return nil, err
	}
	if !assignment.Published {
		return nil, fmt.Errorf("%w: assignment is not published", ErrBadRequest)
	}

	now := time.Now()
	late := now.After(assignment.DueDate)
	if late && !assignment.AllowLate {
		return nil, fmt.Errorf("%w: deadline has passed", ErrBadRequest)
	}

	sub := &model.Submission{
		AssignmentID: req.AssignmentID,
		StudentID:    studentID,
		Content:      req.Content,
		SubmittedAt:  now,
		Status:       model.SubmissionStatusSubmitted,
		IsLate:       late,
	}
	if err := s.repo.UpsertSubmission(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*model.Submission, error) {
	sub, err := s.repo.FindSubmissionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: submission %s", ErrNotFound, id)
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) ListByAssignment(ctx context.Context, assignmentID string) ([]*model.Submission, error) {
	return s.repo.FindSubmissionsByAssignment(ctx, assignmentID)
}

// StudentSubmission returns the student's own submission for an assignment.
func (s *SubmissionService) StudentSubmission(ctx context.Context, assignmentID, studentID string) (*model.Submission, error) {
	sub, err := s.repo.FindSubmissionByAssignmentAndStudent(ctx, assignmentID, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: no submission for assignment %s", ErrNotFound, assignmentID)
		}
		return nil, err
	}
	return sub, nil
}

// UnsubmittedCount counts the published assignments across the student's
// enrolled courses that have no submission yet.
func (s *SubmissionService) UnsubmittedCount(ctx context.Context, studentID string) (int, error) {
	courseIDs, err := s.repo.FindCourseIDsByStudent(ctx, studentID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, courseID := range courseIDs {
		assignments, err := s.repo.FindAssignmentsByCourse(ctx, courseID)
		if err != nil {
			return 0, err
		}
		for _, a := range assignments {
			if !a.Published {
				continue
			}
			_, err := s.repo.FindSubmissionByAssignmentAndStudent(ctx, a.ID, studentID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					count++
					continue
				}
				return 0, err
			}
		}
	}
	return count, nil
}

func (s *SubmissionService) Grade(ctx context.Context, id string, req model.GradeSubmissionReq) (*model.Submission, error) {
	if err := s.repo.GradeSubmission(ctx, id, req.Score, req.Feedback); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: submission %s", ErrNotFound, id)
		}
		return nil, err
	}
	return s.repo.FindSubmissionByID(ctx, id)
}
