package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
)

// Echo context keys populated by the gate on accepted requests.
const (
	ContextKeyUserCode = "user_code"
	ContextKeyRole     = "user_role"
)

// DefaultExcludedPaths bypass the gate entirely: no identity extraction is
// attempted for them. Entries match the request path exactly or as a
// path prefix.
var DefaultExcludedPaths = []string{
	"/login",
	"/swagger-ui",
	"/v3/api-docs",
	"/send-email",
	"/send-email-update",
}

// TokenVerifier extracts an authenticated identity from a raw bearer token.
type TokenVerifier interface {
	Verify(raw string) (*Claims, error)
}

// Account is the slice of the directory record the gate needs.
type Account struct {
	UserCode string
	Role     string
}

// UserDirectory resolves a subject code to its account. A nil account with
// a nil error means no record exists.
type UserDirectory interface {
	FindByCode(ctx context.Context, userCode string) (*Account, error)
}

// Gate is the request-time authorization choke-point. It runs ahead of
// every business handler, resolves the caller's role and checks the
// role's permission set against (method, path). Rejections short-circuit
// with a structured JSON body; the downstream handler is never invoked.
type Gate struct {
	verifier TokenVerifier
	users    UserDirectory
	excluded []string
	logger   *slog.Logger
}

func NewGate(verifier TokenVerifier, users UserDirectory, excluded []string, logger *slog.Logger) *Gate {
	if excluded == nil {
		excluded = DefaultExcludedPaths
	}
	return &Gate{
		verifier: verifier,
		users:    users,
		excluded: excluded,
		logger:   logger,
	}
}

// Middleware returns the Echo middleware enforcing the gate.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if g.isExcluded(path) {
				return next(c)
			}

			method := c.Request().Method

			userCode := g.subject(c)
			if userCode == "" {
				g.logger.Warn("no user authenticated", "method", method, "path", path)
				return reject(c, http.StatusUnauthorized, "Unauthorized",
					"You must log in to access this resource")
			}

			account, err := g.lookupAccount(c.Request().Context(), userCode)
			if err != nil {
				// Deny-by-default: a failed lookup must never escape the
				// gate as a 500 that bypasses authorization.
				g.logger.Error("account lookup failed", "user_code", userCode, "error", err)
				return reject(c, http.StatusForbidden, "Forbidden",
					"User information could not be resolved")
			}
			if account == nil {
				g.logger.Warn("user not found", "user_code", userCode)
				return reject(c, http.StatusForbidden, "Forbidden",
					"User information not found")
			}

			role := strings.ToUpper(account.Role)
			if !RoleAllows(role, method, path) {
				g.logger.Warn("permission denied", "user_code", userCode, "role", role,
					"method", method, "path", path)
				return reject(c, http.StatusForbidden, "FORBIDDEN",
					"Access denied. You don't have permission to access this resource")
			}

			// Downstream handlers may run secondary checks on the role.
			c.Set(ContextKeyUserCode, account.UserCode)
			c.Set(ContextKeyRole, role)
			return next(c)
		}
	}
}

// subject extracts the caller's user code from the bearer token, or ""
// when the token is absent or invalid.
func (g *Gate) subject(c echo.Context) string {
	raw := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if raw == "" {
		return ""
	}
	claims, err := g.verifier.Verify(raw)
	if err != nil {
		return ""
	}
	return claims.Subject
}

// lookupAccount shields the gate from panics inside the directory lookup.
func (g *Gate) lookupAccount(ctx context.Context, userCode string) (account *Account, err error) {
	defer func() {
		if r := recover(); r != nil {
			account = nil
			err = echo.NewHTTPError(http.StatusForbidden, r)
		}
	}()
	return g.users.FindByCode(ctx, userCode)
}

func (g *Gate) isExcluded(path string) bool {
	for _, e := range g.excluded {
		if path == e || strings.HasPrefix(path, e+"/") {
			return true
		}
	}
	return false
}

func reject(c echo.Context, status int, label, message string) error {
	return c.JSON(status, model.Response{
		StatusCode: status,
		Error:      label,
		Message:    message,
		Data:       nil,
	})
}

// BearerToken strips the Bearer scheme from an Authorization header value.
func BearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
