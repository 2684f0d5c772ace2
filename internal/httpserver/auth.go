package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/texnomart/backend/internal/logging"
	"github.com/texnomart/backend/internal/service"
	"github.com/texnomart/backend/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("register_error", "status", 400, "reason", "user already exists", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("register_error", "status", 500, "reason", "cannot create user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create user")
	}

	l.Info("register_success", "userID", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return err
	}

	result, err := h.Svc.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_error", "status", 401, "reason", "invalid username or password")
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
		}
		l.Error("login_error", "status", 500, "reason", "cannot login", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot login")
	}

	l.Info("login_success", "userID", result.User.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    result.User.Username,
		"tokens": echo.Map{
			"access":  result.AccessToken,
			"refresh": result.RefreshToken,
		},
	})
}

// Refresh exchanges a live refresh token for a new pair. Revoked, expired
// or unknown tokens get a 401.
func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.refresh")

	var req transport.LogoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("refresh_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Refresh == "" {
		l.Warn("refresh_error", "status", 400, "reason", "refresh token required")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Refresh token required."})
	}

	access, refresh, err := h.Svc.RotateToken(ctx, req.Refresh)
	if err != nil {
		l.Warn("refresh_error", "status", 401, "reason", "cannot rotate token", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
	}

	l.Info("refresh_success")
	return c.JSON(http.StatusOK, echo.Map{"access": access, "refresh": refresh})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	var req transport.LogoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("logout_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Refresh == "" {
		l.Warn("logout_error", "status", 400, "reason", "refresh token required")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Refresh token required."})
	}

	if err := h.Svc.Logout(ctx, req.Refresh); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("logout_error", "status", 400, "reason", "malformed refresh token", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "malformed refresh token")
		}
		l.Error("logout_error", "status", 500, "reason", "cannot revoke token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot revoke token")
	}

	l.Info("logout_success")
	return c.JSON(http.StatusResetContent, echo.Map{"message": "Logout success!"})
}
