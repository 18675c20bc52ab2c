package model

import "time"

type Assignment struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	CourseID    string     `json:"courseId" bson:"course_id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	DueDate     time.Time  `json:"dueDate" bson:"due_date"`
	AllowLate   bool       `json:"allowLate" bson:"allow_late"`
	Published   bool       `json:"published" bson:"published"`
	MaxScore    float64    `json:"maxScore" bson:"max_score"`
	Documents   []Document `json:"documents,omitempty" bson:"documents,omitempty"`
	AutoGraded  bool       `json:"autoGraded" bson:"auto_graded"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updated_at"`
}

type CreateAssignmentReq struct {
	CourseID    string    `json:"courseId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	AllowLate   bool      `json:"allowLate"`
	MaxScore    float64   `json:"maxScore" validate:"omitempty,min=0"`
}

func (r *CreateAssignmentReq) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateAssignmentReq struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	AllowLate   *bool      `json:"allowLate"`
	MaxScore    *float64   `json:"maxScore" validate:"omitempty,min=0"`
}

func (r *UpdateAssignmentReq) Validate() error {
	return GetValidator().Struct(r)
}
