package model

import "time"

type Lesson struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	CourseID  string     `json:"courseId" bson:"course_id"`
	Title     string     `json:"title" bson:"title"`
	Content   string     `json:"content,omitempty" bson:"content,omitempty"`
	Order     int        `json:"order" bson:"order"`
	Published bool       `json:"published" bson:"published"`
	Documents []Document `json:"documents,omitempty" bson:"documents,omitempty"`
	CreatedAt time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updated_at"`
}

// Document is a stored file attached to a lesson or assignment. The object
// key addresses the blob in cloud storage; URL is a presigned download link
// filled in on read.
type Document struct {
	ID          string    `json:"id" bson:"id"`
	FileName    string    `json:"fileName" bson:"file_name"`
	ObjectKey   string    `json:"-" bson:"object_key"`
	ContentType string    `json:"contentType" bson:"content_type"`
	Size        int64     `json:"size" bson:"size"`
	URL         string    `json:"url,omitempty" bson:"-"`
	UploadedAt  time.Time `json:"uploadedAt" bson:"uploaded_at"`
}

type CreateLessonReq struct {
	CourseID string `json:"courseId" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	Order    int    `json:"order" validate:"omitempty,min=0"`
}

func (r *CreateLessonReq) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateLessonReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   *int   `json:"order" validate:"omitempty,min=0"`
}

func (r *UpdateLessonReq) Validate() error {
	return GetValidator().Struct(r)
}
