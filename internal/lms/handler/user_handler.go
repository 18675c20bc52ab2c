package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/model"
	"github.com/dothithuanhtlu/lms-sub000/internal/lms/service"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// Create handles POST /admin/user
func (h *UserHandler) Create(c echo.Context) error {
	var req model.CreateUserReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	user, err := h.Service.Create(c.Request().Context(), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, model.OK(http.StatusCreated, "User created", user))
}

// List handles GET /admin/users
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Service.List(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Users fetched", users))
}

// Statistics handles GET /admin/users/statistics
func (h *UserHandler) Statistics(c echo.Context) error {
	stats, err := h.Service.Statistics(c.Request().Context())
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Statistics fetched", stats))
}

// Update handles PUT /admin/users/:userCode
func (h *UserHandler) Update(c echo.Context) error {
	var req model.UpdateUserReq
	if err := c.Bind(&req); err != nil {
		code, body := badRequest("Invalid body")
		return c.JSON(code, body)
	}
	if err := req.Validate(); err != nil {
		code, body := badRequest(model.FirstValidationError(err))
		return c.JSON(code, body)
	}

	user, err := h.Service.Update(c.Request().Context(), c.Param("userCode"), req)
	if err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "User updated", user))
}

// Delete handles DELETE /admin/user/:userCode
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.Service.Delete(c.Request().Context(), c.Param("userCode")); err != nil {
		code, body := httpError(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, model.OK(http.StatusOK, "User deleted", nil))
}

// Details handles GET /admin/student/:userCode, /admin/teacher/:userCode and
// /admin/admin/:userCode. The role segment narrows which accounts the route
// exposes.
func (h *UserHandler) Details(expectedRole string) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := h.Service.Get(c.Request().Context(), c.Param("userCode"))
		if err != nil {
			code, body := httpError(err)
			return c.JSON(code, body)
		}
		if user.Role != expectedRole {
			code, body := httpError(service.ErrNotFound)
			return c.JSON(code, body)
		}
		return c.JSON(http.StatusOK, model.OK(http.StatusOK, "User fetched", user))
	}
}

// SendAccountMail handles POST /send-email and /send-email-update
func (h *UserHandler) SendAccountMail(update bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req struct {
			UserCode string `json:"userCode"`
		}
		if err := c.Bind(&req); err != nil || req.UserCode == "" {
			code, body := badRequest("userCode is required")
			return c.JSON(code, body)
		}

		if err := h.Service.SendAccountMail(c.Request().Context(), req.UserCode, update); err != nil {
			code, body := httpError(err)
			return c.JSON(code, body)
		}
		return c.JSON(http.StatusOK, model.OK(http.StatusOK, "Mail sent", nil))
	}
}
