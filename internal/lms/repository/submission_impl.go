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

// UpsertSubmission implements submit-or-update on the unique
// (assignment_id, student_id) index.
func (r *MongoRepository) UpsertSubmission(ctx context.Context, sub *model.Submission) error {
	filter := bson.M{
		"assignment_id": sub.AssignmentID,
		"student_id":    sub.StudentID,
	}
	update := bson.M{
		"$set": bson.M{
			"content":      sub.Content,
			"submitted_at": sub.SubmittedAt,
			"status":       sub.Status,
			"is_late":      sub.IsLate,
		},
		"$setOnInsert": bson.M{
			"_id":           uuid.NewString(),
			"assignment_id": sub.AssignmentID,
			"student_id":    sub.StudentID,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := r.Submissions.UpdateOne(ctx, filter, update, opts)
	return err
}

func (r *MongoRepository) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	_, err := r.Submissions.InsertOne(ctx, sub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) FindSubmissionByID(ctx context.Context, id string) (*model.Submission, error) {
	var sub model.Submission
	err := r.Submissions.FindOne(ctx, bson.M{"_id": id}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *MongoRepository) FindSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]*model.Submission, error) {
	cur, err := r.Submissions.Find(ctx, bson.M{"assignment_id": assignmentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subs []*model.Submission
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *MongoRepository) FindSubmissionByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*model.Submission, error) {
	var sub model.Submission
	err := r.Submissions.FindOne(ctx, bson.M{
		"assignment_id": assignmentID,
		"student_id":    studentID,
	}).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *MongoRepository) GradeSubmission(ctx context.Context, id string, score float64, feedback string) error {
	now := time.Now()
	res, err := r.Submissions.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"score":     score,
			"feedback":  feedback,
			"graded_at": now,
			"status":    model.SubmissionStatusGraded,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) FindStudentScores(ctx context.Context, courseAssignmentIDs []string, studentID string) ([]*model.Submission, error) {
	if len(courseAssignmentIDs) == 0 {
		return nil, nil
	}
	cur, err := r.Submissions.Find(ctx, bson.M{
		"assignment_id": bson.M{"$in": courseAssignmentIDs},
		"student_id":    studentID,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var subs []*model.Submission
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
