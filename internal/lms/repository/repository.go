package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	// FindUserByCode returns ErrNotFound when no record exists.
	FindUserByCode(ctx context.Context, userCode string) (*model.User, error)
	FindUserByCodeAndRefreshToken(ctx context.Context, userCode, refreshToken string) (*model.User, error)
	UpdateRefreshToken(ctx context.Context, userCode, refreshToken string) error
	UpdateUser(ctx context.Context, userCode string, req model.UpdateUserReq) error
	DeleteUser(ctx context.Context, userCode string) error
	FindAllUsers(ctx context.Context) ([]*model.User, error)
	CountUsersByRole(ctx context.Context, role string) (int64, error)
	FindTeachersByDepartment(ctx context.Context, departmentID string) ([]model.TeacherOption, error)
	FindUsersByIDs(ctx context.Context, ids []string) ([]*model.User, error)
}

type CourseRepository interface {
	CreateCourse(ctx context.Context, course *model.Course) error
	FindCourseByID(ctx context.Context, id string) (*model.Course, error)
	FindAllCourses(ctx context.Context) ([]*model.Course, error)
	UpdateCourse(ctx context.Context, id string, req model.UpdateCourseReq) error
	DeleteCourse(ctx context.Context, id string) error
	FindCoursesByTeacher(ctx context.Context, teacherID string) ([]*model.Course, error)
	FindCoursesByIDs(ctx context.Context, ids []string) ([]*model.Course, error)
	FindCoursesBySubject(ctx context.Context, subjectID string) ([]*model.Course, error)
	CountCourses(ctx context.Context) (int64, error)
}

type LessonRepository interface {
	CreateLesson(ctx context.Context, lesson *model.Lesson) error
	FindLessonByID(ctx context.Context, id string) (*model.Lesson, error)
	FindLessonsByCourse(ctx context.Context, courseID string) ([]*model.Lesson, error)
	UpdateLesson(ctx context.Context, id string, req model.UpdateLessonReq) error
	PublishLesson(ctx context.Context, id string) error
	AddLessonDocuments(ctx context.Context, id string, docs []model.Document) error
}

type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, assignment *model.Assignment) error
	FindAssignmentByID(ctx context.Context, id string) (*model.Assignment, error)
	FindAssignmentsByCourse(ctx context.Context, courseID string) ([]*model.Assignment, error)
	UpdateAssignment(ctx context.Context, id string, req model.UpdateAssignmentReq) error
	PublishAssignment(ctx context.Context, id string) error
	DeleteAssignment(ctx context.Context, id string) error
	AddAssignmentDocuments(ctx context.Context, id string, docs []model.Document) error
	// FindExpiredAssignmentsForAutoGrading returns published assignments past
	// their due date that disallow late submission and have not been swept.
	FindExpiredAssignmentsForAutoGrading(ctx context.Context, now time.Time) ([]*model.Assignment, error)
	MarkAssignmentAutoGraded(ctx context.Context, id string) error
}

type SubmissionRepository interface {
	UpsertSubmission(ctx context.Context, sub *model.Submission) error
	CreateSubmission(ctx context.Context, sub *model.Submission) error
	FindSubmissionByID(ctx context.Context, id string) (*model.Submission, error)
	FindSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]*model.Submission, error)
	FindSubmissionByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*model.Submission, error)
	GradeSubmission(ctx context.Context, id string, score float64, feedback string) error
	FindStudentScores(ctx context.Context, courseAssignmentIDs []string, studentID string) ([]*model.Submission, error)
}

type EnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, e *model.Enrollment) error
	DeleteEnrollment(ctx context.Context, courseID, studentID string) error
	FindStudentIDsByCourse(ctx context.Context, courseID string) ([]string, error)
	FindCourseIDsByStudent(ctx context.Context, studentID string) ([]string, error)
	CountEnrollmentsByCourse(ctx context.Context, courseID string) (int64, error)
	CountEnrollments(ctx context.Context) (int64, error)
}

// ReferenceRepository serves the read-only catalog entities.
type ReferenceRepository interface {
	FindAllDepartments(ctx context.Context) ([]*model.Department, error)
	FindDepartmentByID(ctx context.Context, id string) (*model.Department, error)
	FindMajorsByDepartment(ctx context.Context, departmentID string) ([]*model.Major, error)
	FindSubjectsByMajor(ctx context.Context, majorID string) ([]*model.Subject, error)
	FindSubjectByID(ctx context.Context, id string) (*model.Subject, error)
	CountSubjects(ctx context.Context) (int64, error)
	FindAllClassrooms(ctx context.Context) ([]*model.Classroom, error)
}

// LMSRepository is the full persistence surface the services depend on.
type LMSRepository interface {
	UserRepository
	CourseRepository
	LessonRepository
	AssignmentRepository
	SubmissionRepository
	EnrollmentRepository
	ReferenceRepository
	EnsureIndexes(ctx context.Context) error
}
