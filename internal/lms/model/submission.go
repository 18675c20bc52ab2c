package model

import "time"

// Submission statuses.
const (
	SubmissionStatusDraft     = "DRAFT"
	SubmissionStatusSubmitted = "SUBMITTED"
	SubmissionStatusGraded    = "GRADED"
)

type Submission struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	AssignmentID string     `json:"assignmentId" bson:"assignment_id"`
	StudentID    string     `json:"studentId" bson:"student_id"`
	Content      string     `json:"content,omitempty" bson:"content,omitempty"`
	Documents    []Document `json:"documents,omitempty" bson:"documents,omitempty"`
	SubmittedAt  time.Time  `json:"submittedAt" bson:"submitted_at"`
	GradedAt     *time.Time `json:"gradedAt,omitempty" bson:"graded_at,omitempty"`
	Score        *float64   `json:"score,omitempty" bson:"score,omitempty"`
	Feedback     string     `json:"feedback,omitempty" bson:"feedback,omitempty"`
	Status       string     `json:"status" bson:"status"`
	IsLate       bool       `json:"isLate" bson:"is_late"`
}

type SubmitAssignmentReq struct {
	AssignmentID string `json:"assignmentId" validate:"required"`
	Content      string `json:"content"`
}

func (r *SubmitAssignmentReq) Validate() error {
	return GetValidator().Struct(r)
}

type GradeSubmissionReq struct {
	Score    float64 `json:"score" validate:"min=0,max=10"`
	Feedback string  `json:"feedback"`
}

func (r *GradeSubmissionReq) Validate() error {
	return GetValidator().Struct(r)
}
