package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
)

func (r *MongoRepository) FindAllDepartments(ctx context.Context) ([]*model.Department, error) {
	cur, err := r.Departments.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var departments []*model.Department
	if err := cur.All(ctx, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *MongoRepository) FindDepartmentByID(ctx context.Context, id string) (*model.Department, error) {
	var dep model.Department
	err := r.Departments.FindOne(ctx, bson.M{"_id": id}).Decode(&dep)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dep, nil
}

func (r *MongoRepository) FindMajorsByDepartment(ctx context.Context, departmentID string) ([]*model.Major, error) {
	cur, err := r.Majors.Find(ctx, bson.M{"department_id": departmentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var majors []*model.Major
	if err := cur.All(ctx, &majors); err != nil {
		return nil, err
	}
	return majors, nil
}

func (r *MongoRepository) FindSubjectsByMajor(ctx context.Context, majorID string) ([]*model.Subject, error) {
	cur, err := r.Subjects.Find(ctx, bson.M{"major_id": majorID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subjects []*model.Subject
	if err := cur.All(ctx, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *MongoRepository) FindSubjectByID(ctx context.Context, id string) (*model.Subject, error) {
	var subject model.Subject
	err := r.Subjects.FindOne(ctx, bson.M{"_id": id}).Decode(&subject)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &subject, nil
}

func (r *MongoRepository) CountSubjects(ctx context.Context) (int64, error) {
	return r.Subjects.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) FindAllClassrooms(ctx context.Context) ([]*model.Classroom, error) {
	cur, err := r.Classrooms.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var classrooms []*model.Classroom
	if err := cur.All(ctx, &classrooms); err != nil {
		return nil, err
	}
	return classrooms, nil
}
