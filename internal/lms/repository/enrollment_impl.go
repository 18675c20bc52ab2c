package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
)

func (r *MongoRepository) CreateEnrollment(ctx context.Context, e *model.Enrollment) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.EnrolledAt = time.Now()

	_, err := r.Enrollments.InsertOne(ctx, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) DeleteEnrollment(ctx context.Context, courseID, studentID string) error {
	res, err := r.Enrollments.DeleteOne(ctx, bson.M{
		"course_id":  courseID,
		"student_id": studentID,
	})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) FindStudentIDsByCourse(ctx context.Context, courseID string) ([]string, error) {
	return r.enrollmentField(ctx, bson.M{"course_id": courseID}, func(e *model.Enrollment) string {
		return e.StudentID
	})
}

func (r *MongoRepository) FindCourseIDsByStudent(ctx context.Context, studentID string) ([]string, error) {
	return r.enrollmentField(ctx, bson.M{"student_id": studentID}, func(e *model.Enrollment) string {
		return e.CourseID
	})
}

func (r *MongoRepository) CountEnrollmentsByCourse(ctx context.Context, courseID string) (int64, error) {
	return r.Enrollments.CountDocuments(ctx, bson.M{"course_id": courseID})
}

func (r *MongoRepository) CountEnrollments(ctx context.Context) (int64, error) {
	return r.Enrollments.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) enrollmentField(ctx context.Context, filter bson.M, pick func(*model.Enrollment) string) ([]string, error) {
	cur, err := r.Enrollments.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []string
	for cur.Next(ctx) {
		var e model.Enrollment
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, pick(&e))
	}
	return out, cur.Err()
}
