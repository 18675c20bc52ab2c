package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
)

// AutoGradeRepository is the slice of the persistence surface the sweep
// needs.
type AutoGradeRepository interface {
	FindExpiredAssignmentsForAutoGrading(ctx context.Context, now time.Time) ([]*model.Assignment, error)
	MarkAssignmentAutoGraded(ctx context.Context, id string) error
	FindStudentIDsByCourse(ctx context.Context, courseID string) ([]string, error)
	FindSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]*model.Submission, error)
	CreateSubmission(ctx context.Context, sub *model.Submission) error
}

// AutoGrader periodically sweeps published assignments whose deadline has
// passed and that do not accept late work, and records a zero-score graded
// submission for every enrolled student who never submitted. Each assignment
// is swept at most once.
type AutoGrader struct {
	repo     AutoGradeRepository
	interval time.Duration
	logger   *slog.Logger
}

func NewAutoGrader(repo AutoGradeRepository, interval time.Duration, logger *slog.Logger) *AutoGrader {
	return &AutoGrader{repo: repo, interval: interval, logger: logger}
}

// Run blocks until the context is cancelled, sweeping once per interval.
func (g *AutoGrader) Run(ctx context.Context) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.logger.Info("auto-grading scheduler started", "interval", g.interval.String())
	for {
		select {
		case <-ctx.Done():
			g.logger.Info("auto-grading scheduler stopped")
			return
		case <-ticker.C:
			if err := g.Sweep(ctx); err != nil {
				g.logger.Error("auto-grading sweep failed", "error", err)
			}
		}
	}
}

// Sweep processes all currently expired assignments once.
func (g *AutoGrader) Sweep(ctx context.Context) error {
	now := time.Now()
	assignments, err := g.repo.FindExpiredAssignmentsForAutoGrading(ctx, now)
	if err != nil {
		return err
	}

	for _, assignment := range assignments {
		graded, err := g.sweepAssignment(ctx, assignment, now)
		if err != nil {
			g.logger.Error("failed to auto-grade assignment",
				"assignment_id", assignment.ID, "error", err)
			continue
		}
		if err := g.repo.MarkAssignmentAutoGraded(ctx, assignment.ID); err != nil {
			g.logger.Error("failed to mark assignment as auto-graded",
				"assignment_id", assignment.ID, "error", err)
			continue
		}
		g.logger.Info("auto-graded missing submissions",
			"assignment_id", assignment.ID, "graded", graded)
	}
	return nil
}

func (g *AutoGrader) sweepAssignment(ctx context.Context, assignment *model.Assignment, now time.Time) (int, error) {
	studentIDs, err := g.repo.FindStudentIDsByCourse(ctx, assignment.CourseID)
	if err != nil {
		return 0, err
	}

	subs, err := g.repo.FindSubmissionsByAssignment(ctx, assignment.ID)
	if err != nil {
		return 0, err
	}
	submitted := make(map[string]bool, len(subs))
	for _, sub := range subs {
		submitted[sub.StudentID] = true
	}

	zero := 0.0
	graded := 0
	for _, studentID := range studentIDs {
		if submitted[studentID] {
			continue
		}
		sub := &model.Submission{
			AssignmentID: assignment.ID,
			StudentID:    studentID,
			SubmittedAt:  now,
			GradedAt:     &now,
			Score:        &zero,
			Feedback:     "No submission before the deadline",
			Status:       model.SubmissionStatusGraded,
			IsLate:       true,
		}
		if err := g.repo.CreateSubmission(ctx, sub); err != nil {
			g.logger.Warn("failed to create zero-score submission",
				"assignment_id", assignment.ID, "student_id", studentID, "error", err)
			continue
		}
		graded++
	}
	return graded, nil
}
