package model

import "time"

// User is the directory record behind every authenticated identity. The
// user code is the login name and the subject claim of issued tokens.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	UserCode     string    `json:"userCode" bson:"user_code"`
	FullName     string    `json:"fullName" bson:"full_name"`
	Email        string    `json:"email" bson:"email"`
	Role         string    `json:"role" bson:"role"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	RefreshToken string    `json:"-" bson:"refresh_token,omitempty"`
	DepartmentID string    `json:"departmentId,omitempty" bson:"department_id,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

type CreateUserReq struct {
	UserCode     string `json:"userCode" validate:"required"`
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Role         string `json:"role" validate:"required,oneof=ADMIN TEACHER STUDENT Admin Teacher Student admin teacher student"`
	Password     string `json:"password" validate:"required,min=8"`
	DepartmentID string `json:"departmentId"`
}

func (r *CreateUserReq) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateUserReq struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email" validate:"omitempty,email"`
	DepartmentID string `json:"departmentId"`
}

func (r *UpdateUserReq) Validate() error {
	return GetValidator().Struct(r)
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginReq) Validate() error {
	return GetValidator().Struct(r)
}

// UserLogin is the account summary returned by login/refresh/account.
type UserLogin struct {
	ID       string `json:"id"`
	UserCode string `json:"userCode"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type LoginRes struct {
	AccessToken string    `json:"accessToken"`
	User        UserLogin `json:"user"`
}

// UserStatistics backs the admin statistics endpoint.
type UserStatistics struct {
	Total    int64 `json:"total"`
	Admins   int64 `json:"admins"`
	Teachers int64 `json:"teachers"`
	Students int64 `json:"students"`
}
