package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
)

func TestSweepGradesMissingSubmissions(t *testing.T) {
	repo := new(MockAutoGradeRepo)
	grader := NewAutoGrader(repo, time.Minute, testLogger())

	assignment := &model.Assignment{ID: "a1", CourseID: "c1", Title: "HW1"}
	repo.On("FindExpiredAssignmentsForAutoGrading", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*model.Assignment{assignment}, nil)
	repo.On("FindStudentIDsByCourse", mock.Anything, "c1").
		Return([]string{"s1", "s2", "s3"}, nil)
	// s2 already submitted
	repo.On("FindSubmissionsByAssignment", mock.Anything, "a1").
		Return([]*model.Submission{{AssignmentID: "a1", StudentID: "s2"}}, nil)
	repo.On("CreateSubmission", mock.Anything, mock.AnythingOfType("*model.Submission")).Return(nil)
	repo.On("MarkAssignmentAutoGraded", mock.Anything, "a1").Return(nil)

	require.NoError(t, grader.Sweep(context.Background()))

	// Only s1 and s3 get zero-score submissions
	repo.AssertNumberOfCalls(t, "CreateSubmission", 2)
	for _, call := range repo.Calls {
		if call.Method != "CreateSubmission" {
			continue
		}
		sub := call.Arguments.Get(1).(*model.Submission)
		assert.NotEqual(t, "s2", sub.StudentID)
		require.NotNil(t, sub.Score)
		assert.Equal(t, 0.0, *sub.Score)
		assert.Equal(t, model.SubmissionStatusGraded, sub.Status)
		assert.NotNil(t, sub.GradedAt)
	}
	repo.AssertExpectations(t)
}

func TestSweepMarksAssignmentOnce(t *testing.T) {
	repo := new(MockAutoGradeRepo)
	grader := NewAutoGrader(repo, time.Minute, testLogger())

	assignment := &model.Assignment{ID: "a1", CourseID: "c1"}
	repo.On("FindExpiredAssignmentsForAutoGrading", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*model.Assignment{assignment}, nil)
	repo.On("FindStudentIDsByCourse", mock.Anything, "c1").Return([]string{}, nil)
	repo.On("FindSubmissionsByAssignment", mock.Anything, "a1").Return([]*model.Submission{}, nil)
	repo.On("MarkAssignmentAutoGraded", mock.Anything, "a1").Return(nil)

	require.NoError(t, grader.Sweep(context.Background()))

	repo.AssertCalled(t, "MarkAssignmentAutoGraded", mock.Anything, "a1")
	repo.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything)
}

func TestSweepNothingExpired(t *testing.T) {
	repo := new(MockAutoGradeRepo)
	grader := NewAutoGrader(repo, time.Minute, testLogger())

	repo.On("FindExpiredAssignmentsForAutoGrading", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*model.Assignment{}, nil)

	require.NoError(t, grader.Sweep(context.Background()))
	repo.AssertNotCalled(t, "MarkAssignmentAutoGraded", mock.Anything, mock.Anything)
}

func TestSweepContinuesPastFailures(t *testing.T) {
	repo := new(MockAutoGradeRepo)
	grader := NewAutoGrader(repo, time.Minute, testLogger())

	broken := &model.Assignment{ID: "a1", CourseID: "c1"}
	healthy := &model.Assignment{ID: "a2", CourseID: "c2"}
	repo.On("FindExpiredAssignmentsForAutoGrading", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*model.Assignment{broken, healthy}, nil)

	repo.On("FindStudentIDsByCourse", mock.Anything, "c1").Return(nil, errors.New("db down"))
	repo.On("FindStudentIDsByCourse", mock.Anything, "c2").Return([]string{}, nil)
	repo.On("FindSubmissionsByAssignment", mock.Anything, "a2").Return([]*model.Submission{}, nil)
	repo.On("MarkAssignmentAutoGraded", mock.Anything, "a2").Return(nil)

	require.NoError(t, grader.Sweep(context.Background()))

	// The failed assignment is not marked and will be retried next sweep
	repo.AssertNotCalled(t, "MarkAssignmentAutoGraded", mock.Anything, "a1")
	repo.AssertCalled(t, "MarkAssignmentAutoGraded", mock.Anything, "a2")
}

func TestRunStopsOnContextCancel(t *testing.T) {
	repo := new(MockAutoGradeRepo)
	grader := NewAutoGrader(repo, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		grader.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
