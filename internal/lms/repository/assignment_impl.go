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

func (r *MongoRepository) CreateAssignment(ctx context.Context, assignment *model.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	assignment.CreatedAt = time.Now()
	assignment.UpdatedAt = time.Now()

	_, err := r.Assignments.InsertOne(ctx, assignment)
	return err
}

func (r *MongoRepository) FindAssignmentByID(ctx context.Context, id string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.Assignments.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *MongoRepository) FindAssignmentsByCourse(ctx context.Context, courseID string) ([]*model.Assignment, error) {
	cur, err := r.Assignments.Find(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var assignments []*model.Assignment
	if err := cur.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *MongoRepository) UpdateAssignment(ctx context.Context, id string, req model.UpdateAssignmentReq) error {
	set := bson.M{"updated_at": time.Now()}
	if req.Title != "" {
		set["title"] = req.Title
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.DueDate != nil {
		set["due_date"] = *req.DueDate
	}
	if req.AllowLate != nil {
		set["allow_late"] = *req.AllowLate
	}
	if req.MaxScore != nil {
		set["max_score"] = *req.MaxScore
	}

	res, err := r.Assignments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) PublishAssignment(ctx context.Context, id string) error {
	res, err := r.Assignments.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"published": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteAssignment(ctx context.Context, id string) error {
	res, err := r.Assignments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) AddAssignmentDocuments(ctx context.Context, id string, docs []model.Document) error {
	res, err := r.Assignments.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"documents": bson.M{"$each": docs}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) FindExpiredAssignmentsForAutoGrading(ctx context.Context, now time.Time) ([]*model.Assignment, error) {
	cur, err := r.Assignments.Find(ctx, bson.M{
		"published":   true,
		"allow_late":  false,
		"auto_graded": false,
		"due_date":    bson.M{"$lt": now},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var assignments []*model.Assignment
	if err := cur.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *MongoRepository) MarkAssignmentAutoGraded(ctx context.Context, id string) error {
	_, err := r.Assignments.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"auto_graded": true, "updated_at": time.Now()}},
	)
	return err
}
