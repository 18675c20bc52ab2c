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

func (r *MongoRepository) CreateUser(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err := r.Users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) FindUserByCode(ctx context.Context, userCode string) (*model.User, error) {
	var user model.User
	err := r.Users.FindOne(ctx, bson.M{"user_code": userCode}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepository) FindUserByCodeAndRefreshToken(ctx context.Context, userCode, refreshToken string) (*model.User, error) {
	var user model.User
	err := r.Users.FindOne(ctx, bson.M{
		"user_code":     userCode,
		"refresh_token": refreshToken,
	}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoRepository) UpdateRefreshToken(ctx context.Context, userCode, refreshToken string) error {
	res, err := r.Users.UpdateOne(ctx,
		bson.M{"user_code": userCode},
		bson.M{"$set": bson.M{
			"refresh_token": refreshToken,
			"updated_at":    time.Now(),
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

func (r *MongoRepository) UpdateUser(ctx context.Context, userCode string, req model.UpdateUserReq) error {
	set := bson.M{"updated_at": time.Now()}
	if req.FullName != "" {
		set["full_name"] = req.FullName
	}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if req.DepartmentID != "" {
		set["department_id"] = req.DepartmentID
	}

	res, err := r.Users.UpdateOne(ctx, bson.M{"user_code": userCode}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteUser(ctx context.Context, userCode string) error {
	res, err := r.Users.DeleteOne(ctx, bson.M{"user_code": userCode})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) FindAllUsers(ctx context.Context) ([]*model.User, error) {
	cur, err := r.Users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []*model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoRepository) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	return r.Users.CountDocuments(ctx, filter)
}

func (r *MongoRepository) FindTeachersByDepartment(ctx context.Context, departmentID string) ([]model.TeacherOption, error) {
	cur, err := r.Users.Find(ctx, bson.M{
		"role":          "TEACHER",
		"department_id": departmentID,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var teachers []model.TeacherOption
	if err := cur.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *MongoRepository) FindUsersByIDs(ctx context.Context, ids []string) ([]*model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.Users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []*model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
