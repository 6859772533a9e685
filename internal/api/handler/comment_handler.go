package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blogsphere/blog-platform/internal/api/metrics"
	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

const commentFieldsRequired = "Commenter name and comment text are required"

// CommentHandler serves /comments and /admin/comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create attaches a comment to an existing blog post.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      commentRequest  true  "Comment"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  messageResponse
// @Router       /comments [post]
// @Router       /admin/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: commentFieldsRequired})
	}

	comment, err := h.service.Create(c.Request().Context(), toCommentInput(req))
	if err != nil {
		return h.fail(c, err)
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createdResponse{Message: "Comment created successfully", ID: comment.ID})
}

// List returns every comment in store order.
//
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Success      200  {array}  commentResponse
// @Router       /comments [get]
// @Router       /admin/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponses(comments))
}

// Get returns a single comment.
//
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Comment ID"
// @Success      200  {object}  commentResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /comments/{id} [get]
// @Router       /admin/comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	comment, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Update replaces commenter name, text and post reference.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string          true  "Comment ID"
// @Param        body  body      commentRequest  true  "Comment"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /comments/{id} [put]
// @Router       /admin/comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: commentFieldsRequired})
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), toCommentInput(req)); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Comment updated successfully"})
}

// Delete removes a comment.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Comment ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /comments/{id} [delete]
// @Router       /admin/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Comment deleted successfully"})
}

func toCommentInput(req commentRequest) ports.CommentInput {
	return ports.CommentInput{
		CommenterName: req.CommenterName,
		CommentText:   req.CommentText,
		BlogPostID:    req.BlogPostID,
	}
}

func (h *CommentHandler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidPostRef):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid blog post ID"})
	case errors.Is(err, domain.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid comment ID"})
	case errors.Is(err, domain.ErrCommentNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Comment not found"})
	case errors.Is(err, domain.ErrMissingField):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: commentFieldsRequired})
	default:
		return err
	}
}
