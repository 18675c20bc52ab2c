package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/storage"
)

const defaultMaxScore = 10

type AssignmentService struct {
	repo    repository.LMSRepository
	storage *storage.Client
	logger  *slog.Logger
}

func NewAssignmentService(repo repository.LMSRepository, storage *storage.Client, logger *slog.Logger) *AssignmentService {
	return &AssignmentService{repo: repo, storage: storage, logger: logger}
}

func (s *AssignmentService) Create(ctx context.Context, req model.CreateAssignmentReq, files []FileUpload) (*model.Assignment, error) {
	if _, err := s.repo.FindCourseByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: course %s", ErrBadRequest, req.CourseID)
		}
		return nil, err
	}

	maxScore := req.MaxScore
	if maxScore == 0 {
		maxScore = defaultMaxScore
	}

	assignment := &model.Assignment{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		AllowLate:   req.AllowLate,
		MaxScore:    maxScore,
	}
	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	if len(files) > 0 {
		docs, err := s.uploadAll(ctx, assignment.ID, files)
		if err != nil {
			return nil, err
		}
		if err := s.repo.AddAssignmentDocuments(ctx, assignment.ID, docs); err != nil {
			return nil, err
		}
		assignment.Documents = docs
	}
	return assignment, nil
}

func (s *AssignmentService) Get(ctx context.Context, id string) (*model.Assignment, error) {
	assignment, err := s.repo.FindAssignmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: assignment %s", ErrNotFound, id)
		}
		return nil, err
	}
	s.presignDocuments(assignment.Documents)
	return assignment, nil
}

func (s *AssignmentService) ListByCourse(ctx context.Context, courseID string) ([]*model.Assignment, error) {
	assignments, err := s.repo.FindAssignmentsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		s.presignDocuments(a.Documents)
	}
	return assignments, nil
}

func (s *AssignmentService) Update(ctx context.Context, id string, req model.UpdateAssignmentReq, files []FileUpload) (*model.Assignment, error) {
	if err := s.repo.UpdateAssignment(ctx, id, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: assignment %s", ErrNotFound, id)
		}
		return nil, err
	}

	if len(files) > 0 {
		docs, err := s.uploadAll(ctx, id, files)
		if err != nil {
			return nil, err
		}
		if err := s.repo.AddAssignmentDocuments(ctx, id, docs); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *AssignmentService) Publish(ctx context.Context, id string) error {
	if err := s.repo.PublishAssignment(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: assignment %s", ErrNotFound, id)
		}
		return err
	}
	return nil
}

func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	assignment, err := s.repo.FindAssignmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: assignment %s", ErrNotFound, id)
		}
		return err
	}

	if err := s.repo.DeleteAssignment(ctx, id); err != nil {
		return err
	}

	for _, doc := range assignment.Documents {
		if err := s.storage.Delete(ctx, doc.ObjectKey); err != nil {
			s.logger.Warn("failed to delete assignment document",
				"object_key", doc.ObjectKey, "error", err)
		}
	}
	return nil
}

func (s *AssignmentService) uploadAll(ctx context.Context, assignmentID string, files []FileUpload) ([]model.Document, error) {
	docs := make([]model.Document, 0, len(files))
	for _, f := range files {
		objectKey := "assignments/" + assignmentID + "/" + uuid.NewString() + "-" + f.FileName
		if err := s.storage.Upload(ctx, objectKey, f.ContentType, f.Data); err != nil {
			return nil, err
		}
		docs = append(docs, model.Document{
			ID:          uuid.NewString(),
			FileName:    f.FileName,
			ObjectKey:   objectKey,
			ContentType: f.ContentType,
			Size:        int64(len(f.Data)),
			UploadedAt:  time.Now(),
		})
	}
	return docs, nil
}

func (s *AssignmentService) presignDocuments(docs []model.Document) {
	if s.storage == nil {
		return
	}
	for i := range docs {
		url, err := s.storage.PresignDownload(docs[i].ObjectKey)
		if err != nil {
			s.logger.Warn("failed to presign document URL",
				"object_key", docs[i].ObjectKey, "error", err)
			continue
		}
		docs[i].URL = url
	}
}
