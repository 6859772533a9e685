package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogsphere/blog-platform/internal/api/metrics"
	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account with the user role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		ve := invalidFields(err)
		switch {
		case ve.Has("username"):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Username is required"})
		case ve.Has("email"):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Email is required"})
		default:
			return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.PasswordPolicyMessage})
		}
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Email)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUserExists):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Username already taken"})
	case errors.Is(err, domain.ErrWeakPassword):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.PasswordPolicyMessage})
	case errors.Is(err, domain.ErrMissingField):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Username and email are required"})
	default:
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

// Login authenticates any account and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	metrics.ObserveLogin(domain.RoleUser, err == nil)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Authentication failed"})
		}
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// AdminLogin authenticates an account holding the admin role.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  messageResponse
// @Router       /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, err := h.authService.AdminLogin(c.Request().Context(), req.Username, req.Password)
	metrics.ObserveLogin(domain.RoleAdmin, err == nil)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid admin credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{Message: "Admin logged in successfully", Token: token})
}
