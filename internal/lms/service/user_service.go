package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/email"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
)

// UserService manages directory accounts. Account mail is sent best effort
// after the write succeeds; a mail failure never rolls back the account.
type UserService struct {
	repo   repository.UserRepository
	mailer *email.Mailer
	logger *slog.Logger
}

func NewUserService(repo repository.UserRepository, mailer *email.Mailer, logger *slog.Logger) *UserService {
	return &UserService{repo: repo, mailer: mailer, logger: logger}
}

func (s *UserService) Create(ctx context.Context, req model.CreateUserReq) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		UserCode:     req.UserCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Role:         strings.ToUpper(req.Role),
		PasswordHash: string(hash),
		DepartmentID: req.DepartmentID,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: user code %s already exists", ErrConflict, req.UserCode)
		}
		return nil, err
	}

	s.notify(user, req.Password, false)
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userCode string) (*model.User, error) {
	user, err := s.repo.FindUserByCode(ctx, userCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userCode)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.FindAllUsers(ctx)
}

func (s *UserService) Update(ctx context.Context, userCode string, req model.UpdateUserReq) (*model.User, error) {
	if err := s.repo.UpdateUser(ctx, userCode, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userCode)
		}
		return nil, err
	}

	user, err := s.repo.FindUserByCode(ctx, userCode)
	if err != nil {
		return nil, err
	}

	s.notify(user, "", true)
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userCode string) error {
	if err := s.repo.DeleteUser(ctx, userCode); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: user %s", ErrNotFound, userCode)
		}
		return err
	}
	return nil
}

// Statistics aggregates per-role account counts for the admin dashboard.
func (s *UserService) Statistics(ctx context.Context) (*model.UserStatistics, error) {
	stats := &model.UserStatistics{}

	counts := []struct {
		role string
		dst  *int64
	}{
		{"ADMIN", &stats.Admins},
		{"TEACHER", &stats.Teachers},
		{"STUDENT", &stats.Students},
	}
	for _, c := range counts {
		n, err := s.repo.CountUsersByRole(ctx, c.role)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	stats.Total = stats.Admins + stats.Teachers + stats.Students
	return stats, nil
}

// SendAccountMail backs the standalone mail endpoints used during account
// provisioning flows that run outside the create/update handlers.
func (s *UserService) SendAccountMail(ctx context.Context, userCode string, update bool) error {
	user, err := s.Get(ctx, userCode)
	if err != nil {
		return err
	}

	mail := email.AccountMail{
		To:       user.Email,
		FullName: user.FullName,
		UserCode: user.UserCode,
	}
	if update {
		return s.mailer.SendAccountUpdateMail(mail)
	}
	return s.mailer.SendAccountMail(mail)
}

func (s *UserService) notify(user *model.User, password string, update bool) {
	if s.mailer == nil || user.Email == "" {
		return
	}

	mail := email.AccountMail{
		To:       user.Email,
		FullName: user.FullName,
		UserCode: user.UserCode,
		Password: password,
	}

	go func() {
		var err error
		if update {
			err = s.mailer.SendAccountUpdateMail(mail)
		} else {
			err = s.mailer.SendAccountMail(mail)
		}
		if err != nil {
			s.logger.Warn("failed to send account mail",
				"user_code", user.UserCode, "error", err)
		}
	}()
}
