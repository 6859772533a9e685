package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

// UserHandler serves GET /users and the /admin/users tree.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create adds an account on behalf of an admin.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  messageResponse
// @Router       /admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: userValidationMessage(invalidFields(err))})
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, createdResponse{Message: "User created successfully", ID: user.ID})
}

// List returns every account without password hashes.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  messageResponse
// @Router       /users [get]
// @Router       /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Get returns one account.
//
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  messageResponse
// @Router       /admin/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update replaces email and role, and re-hashes the password when one is given.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "User"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  messageResponse
// @Router       /admin/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: userValidationMessage(invalidFields(err))})
	}

	err := h.service.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       c.Param("id"),
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User updated successfully"})
}

// Delete removes an account.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  messageResponse
// @Router       /admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

func userValidationMessage(ve *ValidationError) string {
	switch {
	case ve.Has("username"):
		return "Username is required"
	case ve.Has("email"):
		return "Email is required"
	case ve.Has("role"):
		return "Invalid role"
	default:
		return domain.PasswordPolicyMessage
	}
}

func (h *UserHandler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid user ID"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
	case errors.Is(err, domain.ErrUserExists):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Username or email already exists"})
	case errors.Is(err, domain.ErrInvalidRole):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid role"})
	case errors.Is(err, domain.ErrWeakPassword):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.PasswordPolicyMessage})
	case errors.Is(err, domain.ErrMissingField):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Username and email are required"})
	default:
		return err
	}
}
