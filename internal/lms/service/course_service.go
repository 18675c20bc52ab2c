package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
)

type CourseService struct {
	repo   repository.LMSRepository
	logger *slog.Logger
}

func NewCourseService(repo repository.LMSRepository, logger *slog.Logger) *CourseService {
	return &CourseService{repo: repo, logger: logger}
}

func (s *CourseService) Create(ctx context.Context, req model.CreateCourseReq) (*model.Course, error) {
	if _, err := s.repo.FindSubjectByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: subject %s", ErrBadRequest, req.SubjectID)
		}
		return nil, err
	}

	course := &model.Course{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		SubjectID:   req.SubjectID,
		TeacherID:   req.TeacherID,
		Semester:    req.Semester,
		MaxStudents: req.MaxStudents,
	}

	if err := s.repo.CreateCourse(ctx, course); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: course code %s already exists", ErrConflict, req.Code)
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*model.Course, error) {
	course, err := s.repo.FindCourseByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: course %s", ErrNotFound, id)
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) List(ctx context.Context) ([]*model.Course, error) {
	return s.repo.FindAllCourses(ctx)
}

func (s *CourseService) Update(ctx context.Context, id string, req model.UpdateCourseReq) (*model.Course, error) {
	if err := s.repo.UpdateCourse(ctx, id, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: course %s", ErrNotFound, id)
		}
		return nil, err
	}
	return s.repo.FindCourseByID(ctx, id)
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: course %s", ErrNotFound, id)
		}
		return err
	}
	return nil
}

// Details bundles the course with its lessons, assignments and head count.
func (s *CourseService) Details(ctx context.Context, id string) (*model.CourseDetails, error) {
	course, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.repo.FindLessonsByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	assignments, err := s.repo.FindAssignmentsByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	enrolled, err := s.repo.CountEnrollmentsByCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &model.CourseDetails{
		Course:      *course,
		Lessons:     make([]model.Lesson, 0, len(lessons)),
		Assignments: make([]model.Assignment, 0, len(assignments)),
		Enrolled:    enrolled,
	}
	for _, l := range lessons {
		details.Lessons = append(details.Lessons, *l)
	}
	for _, a := range assignments {
		details.Assignments = append(details.Assignments, *a)
	}
	return details, nil
}

func (s *CourseService) ListByTeacher(ctx context.Context, teacherID string) ([]*model.Course, error) {
	return s.repo.FindCoursesByTeacher(ctx, teacherID)
}

func (s *CourseService) ListByStudent(ctx context.Context, studentID string) ([]*model.Course, error) {
	courseIDs, err := s.repo.FindCourseIDsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(courseIDs) == 0 {
		return []*model.Course{}, nil
	}
	return s.repo.FindCoursesByIDs(ctx, courseIDs)
}

func (s *CourseService) ListBySubject(ctx context.Context, subjectID string) ([]*model.Course, error) {
	return s.repo.FindCoursesBySubject(ctx, subjectID)
}

// Info aggregates platform-wide counts for the course info endpoint.
func (s *CourseService) Info(ctx context.Context) (*model.CourseInfo, error) {
	courses, err := s.repo.CountCourses(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.repo.CountUsersByRole(ctx, "TEACHER")
	if err != nil {
		return nil, err
	}
	enrolled, err := s.repo.CountEnrollments(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.repo.CountSubjects(ctx)
	if err != nil {
		return nil, err
	}

	return &model.CourseInfo{
		TotalCourses:  courses,
		TotalTeachers: teachers,
		TotalEnrolled: enrolled,
		TotalSubjects: subjects,
	}, nil
}

// Students lists the accounts enrolled in a course.
func (s *CourseService) Students(ctx context.Context, courseID string) ([]*model.User, error) {
	if _, err := s.Get(ctx, courseID); err != nil {
		return nil, err
	}

	studentIDs, err := s.repo.FindStudentIDsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(studentIDs) == 0 {
		return []*model.User{}, nil
	}
	return s.repo.FindUsersByIDs(ctx, studentIDs)
}

// StudentScores builds a student's score sheet across the course assignments.
func (s *CourseService) StudentScores(ctx context.Context, courseID, studentID string) ([]model.StudentScore, error) {
	assignments, err := s.repo.FindAssignmentsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(assignments))
	titles := make(map[string]string, len(assignments))
	for _, a := range assignments {
		ids = append(ids, a.ID)
		titles[a.ID] = a.Title
	}

	subs, err := s.repo.FindStudentScores(ctx, ids, studentID)
	if err != nil {
		return nil, err
	}

	byAssignment := make(map[string]*model.Submission, len(subs))
	for _, sub := range subs {
		byAssignment[sub.AssignmentID] = sub
	}

	scores := make([]model.StudentScore, 0, len(ids))
	for _, id := range ids {
		score := model.StudentScore{AssignmentID: id, AssignmentTitle: titles[id]}
		if sub, ok := byAssignment[id]; ok {
			score.Score = sub.Score
			score.Feedback = sub.Feedback
		}
		scores = append(scores, score)
	}
	return scores, nil
}

// UpdateScores grades a student's submissions across several assignments in
// one request. Assignments without a submission are skipped.
func (s *CourseService) UpdateScores(ctx context.Context, studentID string, req model.UpdateScoresReq) error {
	for _, upd := range req.Scores {
		sub, err := s.repo.FindSubmissionByAssignmentAndStudent(ctx, upd.AssignmentID, studentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.logger.Warn("skipping score update without submission",
					"assignment_id", upd.AssignmentID, "student_id", studentID)
				continue
			}
			return err
		}
		if err := s.repo.GradeSubmission(ctx, sub.ID, upd.Score, upd.Feedback); err != nil {
			return err
		}
	}
	return nil
}
