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

// FileUpload is one multipart file buffered by the handler for storage.
type FileUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

type LessonService struct {
	repo    repository.LMSRepository
	storage *storage.Client
	logger  *slog.Logger
}

func NewLessonService(repo repository.LMSRepository, storage *storage.Client, logger *slog.Logger) *LessonService {
	return &LessonService{repo: repo, storage: storage, logger: logger}
}

func (s *LessonService) Create(ctx context.Context, req model.CreateLessonReq) (*model.Lesson, error) {
	if _, err := s.repo.FindCourseByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: course %s", ErrBadRequest, req.CourseID)
		}
		return nil, err
	}

	lesson := &model.Lesson{
		CourseID: req.CourseID,
		Title:    req.Title,
		Content:  req.Content,
		Order:    req.Order,
	}
	if err := s.repo.CreateLesson(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Get(ctx context.Context, id string) (*model.Lesson, error) {
	lesson, err := s.repo.FindLessonByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: lesson %s", ErrNotFound, id)
		}
		return nil, err
	}
	s.presignDocuments(lesson.Documents)
	return lesson, nil
}

func (s *LessonService) ListByCourse(ctx context.Context, courseID string) ([]*model.Lesson, error) {
	lessons, err := s.repo.FindLessonsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	for _, l := range lessons {
		s.presignDocuments(l.Documents)
	}
	return lessons, nil
}

func (s *LessonService) Update(ctx context.Context, id string, req model.UpdateLessonReq) (*model.Lesson, error) {
	if err := s.repo.UpdateLesson(ctx, id, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: lesson %s", ErrNotFound, id)
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// UpdateWithFiles applies field updates and attaches the uploaded files in a
// single operation.
func (s *LessonService) UpdateWithFiles(ctx context.Context, id string, req model.UpdateLessonReq, files []FileUpload) (*model.Lesson, error) {
	if err := s.repo.UpdateLesson(ctx, id, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: lesson %s", ErrNotFound, id)
		}
		return nil, err
	}

	if len(files) > 0 {
		docs, err := s.uploadAll(ctx, "lessons/"+id, files)
		if err != nil {
			return nil, err
		}
		if err := s.repo.AddLessonDocuments(ctx, id, docs); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *LessonService) Publish(ctx context.Context, id string) error {
	if err := s.repo.PublishLesson(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: lesson %s", ErrNotFound, id)
		}
		return err
	}
	return nil
}

// AttachDocuments uploads the files and records them on the lesson.
func (s *LessonService) AttachDocuments(ctx context.Context, id string, files []FileUpload) (*model.Lesson, error) {
	if _, err := s.repo.FindLessonByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: lesson %s", ErrNotFound, id)
		}
		return nil, err
	}

	docs, err := s.uploadAll(ctx, "lessons/"+id, files)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddLessonDocuments(ctx, id, docs); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *LessonService) uploadAll(ctx context.Context, prefix string, files []FileUpload) ([]model.Document, error) {
	docs := make([]model.Document, 0, len(files))
	for _, f := range files {
		objectKey := prefix + "/" + uuid.NewString() + "-" + f.FileName
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

func (s *LessonService) presignDocuments(docs []model.Document) {
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
