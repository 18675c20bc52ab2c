package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
)

func (r *MongoRepository) CreateLesson(ctx context.Context, lesson *model.Lesson) error {
	if lesson.ID == "" {
		lesson.ID = uuid.NewString()
	}
	lesson.CreatedAt = time.Now()
	lesson.UpdatedAt = time.Now()

	_, err := r.Lessons.InsertOne(ctx, lesson)
	return err
}

func (r *MongoRepository) FindLessonByID(ctx context.Context, id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.Lessons.FindOne(ctx, bson.M{"_id": id}).Decode(&lesson)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (r *MongoRepository) FindLessonsByCourse(ctx context.Context, courseID string) ([]*model.Lesson, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cur, err := r.Lessons.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var lessons []*model.Lesson
	if err := cur.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *MongoRepository) UpdateLesson(ctx context.Context, id string, req model.UpdateLessonReq) error {
	set := bson.M{"updated_at": time.Now()}
	if req.Title != "" {
		set["title"] = req.Title
	}
	if req.Content != "" {
		set["content"] = req.Content
	}
	if req.Order != nil {
		set["order"] = *req.Order
	}

	res, err := r.Lessons.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) PublishLesson(ctx context.Context, id string) error {
	res, err := r.Lessons.UpdateOne(ctx,
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

func (r *MongoRepository) AddLessonDocuments(ctx context.Context, id string, docs []model.Document) error {
	res, err := r.Lessons.UpdateOne(ctx,
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
