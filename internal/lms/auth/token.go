package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AccountClaim is the account summary embedded in issued tokens so the
// frontend can render the session without a follow-up request.
type AccountClaim struct {
	ID       string `json:"id"`
	UserCode string `json:"userCode"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Claims carried by both access and refresh tokens. The registered subject
// is the user code; it is the only claim the authorization gate relies on.
type Claims struct {
	User AccountClaim `json:"user"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HMAC-signed access and refresh tokens.
type TokenService struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenService(secret string, accessExpiry, refreshExpiry time.Duration) *TokenService {
	return &TokenService{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *TokenService) CreateAccessToken(userCode string, account AccountClaim) (string, error) {
	return s.sign(userCode, account, s.accessExpiry)
}

func (s *TokenService) CreateRefreshToken(userCode string, account AccountClaim) (string, error) {
	return s.sign(userCode, account, s.refreshExpiry)
}

func (s *TokenService) sign(userCode string, account AccountClaim, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		User: account,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userCode,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a signed token and returns its claims.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// RefreshExpiry is exposed for the refresh cookie's max age.
func (s *TokenService) RefreshExpiry() time.Duration {
	return s.refreshExpiry
}
