package model

import "time"

type Course struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Code        string    `json:"code" bson:"code"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	SubjectID   string    `json:"subjectId" bson:"subject_id"`
	TeacherID   string    `json:"teacherId" bson:"teacher_id"`
	Semester    string    `json:"semester,omitempty" bson:"semester,omitempty"`
	MaxStudents int       `json:"maxStudents,omitempty" bson:"max_students,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

type CreateCourseReq struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	SubjectID   string `json:"subjectId" validate:"required"`
	TeacherID   string `json:"teacherId" validate:"required"`
	Semester    string `json:"semester"`
	MaxStudents int    `json:"maxStudents" validate:"omitempty,min=1"`
}

func (r *CreateCourseReq) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateCourseReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	TeacherID   string `json:"teacherId"`
	Semester    string `json:"semester"`
	MaxStudents int    `json:"maxStudents" validate:"omitempty,min=1"`
}

func (r *UpdateCourseReq) Validate() error {
	return GetValidator().Struct(r)
}

// CourseInfo is the aggregate row for the course statistics endpoint.
type CourseInfo struct {
	TotalCourses  int64 `json:"totalCourses"`
	TotalTeachers int64 `json:"totalTeachers"`
	TotalEnrolled int64 `json:"totalEnrolled"`
	TotalSubjects int64 `json:"totalSubjects"`
}

// CourseDetails bundles a course with its lessons and assignments.
type CourseDetails struct {
	Course      Course       `json:"course"`
	Lessons     []Lesson     `json:"lessons"`
	Assignments []Assignment `json:"assignments"`
	Enrolled    int64        `json:"enrolled"`
}

// StudentScore is one graded item in a student's course score sheet.
type StudentScore struct {
	AssignmentID    string   `json:"assignmentId" bson:"assignment_id"`
	AssignmentTitle string   `json:"assignmentTitle" bson:"assignment_title"`
	Score           *float64 `json:"score" bson:"score"`
	Feedback        string   `json:"feedback,omitempty" bson:"feedback,omitempty"`
}

type UpdateScoresReq struct {
	Scores []ScoreUpdate `json:"scores" validate:"required,min=1,dive"`
}

type ScoreUpdate struct {
	AssignmentID string  `json:"assignmentId" validate:"required"`
	Score        float64 `json:"score" validate:"min=0,max=10"`
	Feedback     string  `json:"feedback"`
}

func (r *UpdateScoresReq) Validate() error {
	return GetValidator().Struct(r)
}
