package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/auth"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/repository"
)

// AuthService handles login, token refresh and logout. Refresh tokens are
// stored on the user record so a logout invalidates them server side.
type AuthService struct {
	repo   repository.UserRepository
	tokens *auth.TokenService
	logger *slog.Logger
}

func NewAuthService(repo repository.UserRepository, tokens *auth.TokenService, logger *slog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login verifies the credentials and issues an access and a refresh token.
// Bad credentials and unknown users are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req model.LoginReq) (*model.LoginRes, string, error) {
	user, err := s.repo.FindUserByCode(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: bad credentials", ErrUnauthorized)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates the refresh token. The presented token must match the one
// stored for the user, otherwise the session is treated as revoked.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*model.LoginRes, string, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	}

	user, err := s.repo.FindUserByCodeAndRefreshToken(ctx, claims.Subject, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: refresh token revoked", ErrUnauthorized)
		}
		return nil, "", err
	}

	return s.issueTokens(ctx, user)
}

// Account returns the session summary for the authenticated user.
func (s *AuthService) Account(ctx context.Context, userCode string) (*model.UserLogin, error) {
	user, err := s.repo.FindUserByCode(ctx, userCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: account not found", ErrUnauthorized)
		}
		return nil, err
	}

	return &model.UserLogin{
		ID:       user.ID,
		UserCode: user.UserCode,
		FullName: user.FullName,
		Email:    user.Email,
	}, nil
}

// Logout clears the stored refresh token so it can no longer be redeemed.
func (s *AuthService) Logout(ctx context.Context, userCode string) error {
	if err := s.repo.UpdateRefreshToken(ctx, userCode, ""); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *model.User) (*model.LoginRes, string, error) {
	claim := auth.AccountClaim{
		ID:       user.ID,
		UserCode: user.UserCode,
		FullName: user.FullName,
		Email:    user.Email,
	}

	accessToken, err := s.tokens.CreateAccessToken(user.UserCode, claim)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, err := s.tokens.CreateRefreshToken(user.UserCode, claim)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := s.repo.UpdateRefreshToken(ctx, user.UserCode, refreshToken); err != nil {
		return nil, "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	res := &model.LoginRes{
		AccessToken: accessToken,
		User: model.UserLogin{
			ID:       user.ID,
			UserCode: user.UserCode,
			FullName: user.FullName,
			Email:    user.Email,
		},
	}
	return res, refreshToken, nil
}

// Directory adapts the user repository to the authorization gate's lookup
// interface. A missing user is reported as (nil, nil) so the gate can deny
// with a 403 rather than treating it as an internal failure.
type Directory struct {
	repo repository.UserRepository
}

func NewDirectory(repo repository.UserRepository) *Directory {
	return &Directory{repo: repo}
}

func (d *Directory) FindByCode(ctx context.Context, userCode string) (*auth.Account, error) {
	user, err := d.repo.FindUserByCode(ctx, userCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &auth.Account{UserCode: user.UserCode, Role: user.Role}, nil
}
