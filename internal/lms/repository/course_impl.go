package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
)

func (r *MongoRepository) CreateCourse(ctx context.Context, course *model.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()

	_, err := r.Courses.InsertOne(ctx, course)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) FindCourseByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.Courses.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *MongoRepository) FindAllCourses(ctx context.Context) ([]*model.Course, error) {
	return r.findCourses(ctx, bson.M{})
}

func (r *MongoRepository) UpdateCourse(ctx context.Context, id string, req model.UpdateCourseReq) error {
	set := bson.M{"updated_at": time.Now()}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.TeacherID != "" {
		set["teacher_id"] = req.TeacherID
	}
	if req.Semester != "" {
		set["semester"] = req.Semester
	}
	if req.MaxStudents > 0 {
		set["max_students"] = req.MaxStudents
	}

	res, err := r.Courses.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteCourse(ctx context.Context, id string) error {
	res, err := r.Courses.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) FindCoursesByTeacher(ctx context.Context, teacherID string) ([]*model.Course, error) {
	return r.findCourses(ctx, bson.M{"teacher_id": teacherID})
}

func (r *MongoRepository) FindCoursesByIDs(ctx context.Context, ids []string) ([]*model.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findCourses(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoRepository) FindCoursesBySubject(ctx context.Context, subjectID string) ([]*model.Course, error) {
	return r.findCourses(ctx, bson.M{"subject_id": subjectID})
}

func (r *MongoRepository) CountCourses(ctx context.Context) (int64, error) {
	return r.Courses.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) findCourses(ctx context.Context, filter bson.M) ([]*model.Course, error) {
	cur, err := r.Courses.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []*model.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
