package model

import "time"

type Enrollment struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	CourseID   string    `json:"courseId" bson:"course_id"`
	StudentID  string    `json:"studentId" bson:"student_id"`
	EnrolledAt time.Time `json:"enrolledAt" bson:"enrolled_at"`
}

type EnrollmentReq struct {
	CourseID  string `json:"courseId" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
}

func (r *EnrollmentReq) Validate() error {
	return GetValidator().Struct(r)
}
