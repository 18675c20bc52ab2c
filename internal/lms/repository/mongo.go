package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	Users       *mongo.Collection
	Courses     *mongo.Collection
	Lessons     *mongo.Collection
	Assignments *mongo.Collection
	Submissions *mongo.Collection
	Enrollments *mongo.Collection
	Departments *mongo.Collection
	Majors      *mongo.Collection
	Subjects    *mongo.Collection
	Classrooms  *mongo.Collection
	Client      *mongo.Client
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		Users:       db.Collection("users"),
		Courses:     db.Collection("courses"),
		Lessons:     db.Collection("lessons"),
		Assignments: db.Collection("assignments"),
		Submissions: db.Collection("submissions"),
		Enrollments: db.Collection("enrollments"),
		Departments: db.Collection("departments"),
		Majors:      db.Collection("majors"),
		Subjects:    db.Collection("subjects"),
		Classrooms:  db.Collection("classrooms"),
		Client:      db.Client(),
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	idxUserCode := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_code"),
	}
	if _, err := r.Users.Indexes().CreateOne(ctx, idxUserCode); err != nil {
		return err
	}

	idxCourseCode := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_course_code"),
	}
	if _, err := r.Courses.Indexes().CreateOne(ctx, idxCourseCode); err != nil {
		return err
	}

	// One submission per (assignment, student); submit-or-update upserts on it.
	idxSubmission := mongo.IndexModel{
		Keys: bson.D{
			{Key: "assignment_id", Value: 1},
			{Key: "student_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_submission_per_student"),
	}
	if _, err := r.Submissions.Indexes().CreateOne(ctx, idxSubmission); err != nil {
		return err
	}

	idxEnrollment := mongo.IndexModel{
		Keys: bson.D{
			{Key: "course_id", Value: 1},
			{Key: "student_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_enrollment"),
	}
	_, err := r.Enrollments.Indexes().CreateOne(ctx, idxEnrollment)
	return err
}
