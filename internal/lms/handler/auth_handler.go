package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/auth"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
)

const refreshCookieName = "refreshToken"

type AuthHandler struct {
	Service       *service.AuthService
	RefreshExpiry time.Duration
}

func NewAuthHandler(s *service.AuthService, refreshExpiry time.Duration) *AuthHandler {
	return &AuthHandler{Service: s, RefreshExpiry: refreshExpiry}
}

// Login handles POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	res, refreshToken, err := h.Service.Login(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	h.setRefreshCookie(c, refreshToken, h.RefreshExpiry)
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Login successful", res))
}

// Refresh handles GET /auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		code, body := httpError(service.ErrUnauthorized)
		return c.JSON(code, body)
	}

	res, refreshToken, err := h.Service.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	h.setRefreshCookie(c, refreshToken, h.RefreshExpiry)
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Token refreshed", res))
}

// Account handles GET /auth/account
func (h *AuthHandler) Account(c echo.Context) error {
	userCode, _ := c.Get(auth.ContextKeyUserCode).(string)

	account, err := h.Service.Account(c.Request().Context(), userCode)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Account fetched", account))
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	userCode, _ := c.Get(auth.ContextKeyUserCode).(string)

	if err := h.Service.Logout(c.Request().Context(), userCode); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}

	// Expire the cookie
	h.setRefreshCookie(c, "", -time.Hour)
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Logout successful", nil))
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, value string, maxAge time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
