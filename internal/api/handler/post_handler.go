package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/blogsphere/blog-platform/internal/api/metrics"
	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

// PostHandler serves /blog_posts and /admin/blogs.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create stores a new blog post. Without an explicit author the caller's
// username is used.
//
// @Summary      Create a blog post
// @Tags         blog_posts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      postRequest  true  "Blog post"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  messageResponse
// @Router       /blog_posts [post]
// @Router       /admin/blogs [post]
func (h *PostHandler) Create(c echo.Context) error {
	input, msg := h.bind(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
	}

	post, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return h.fail(c, err)
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createdResponse{Message: "Blog post created successfully", ID: post.ID})
}

// List returns every blog post in store order.
//
// @Summary      List blog posts
// @Tags         blog_posts
// @Produce      json
// @Success      200  {array}  postResponse
// @Router       /blog_posts [get]
// @Router       /admin/blogs [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// Get returns a single blog post.
//
// @Summary      Get a blog post
// @Tags         blog_posts
// @Produce      json
// @Param        id   path      string  true  "Blog post ID"
// @Success      200  {object}  postResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /blog_posts/{id} [get]
// @Router       /admin/blogs/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Update replaces title, content, author and tags.
//
// @Summary      Update a blog post
// @Tags         blog_posts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string       true  "Blog post ID"
// @Param        body  body      postRequest  true  "Blog post"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /blog_posts/{id} [put]
// @Router       /admin/blogs/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	input, msg := h.bind(c)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), input); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Blog post updated successfully"})
}

// Delete removes a blog post.
//
// @Summary      Delete a blog post
// @Tags         blog_posts
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Blog post ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /blog_posts/{id} [delete]
// @Router       /admin/blogs/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Blog post deleted successfully"})
}

// bind decodes and validates the body. A non-empty msg is the 400 error to
// return.
func (h *PostHandler) bind(c echo.Context) (input ports.PostInput, msg string) {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return input, "invalid payload"
	}
	if err := c.Validate(&req); err != nil {
		return input, "Title and content are required"
	}

	author := req.Author
	if strings.TrimSpace(author) == "" {
		author = ctxUsername(c)
	}
	return ports.PostInput{Title: req.Title, Content: req.Content, Author: author, Tags: req.Tags}, ""
}

func (h *PostHandler) fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid post ID"})
	case errors.Is(err, domain.ErrPostNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Blog post not found"})
	case errors.Is(err, domain.ErrInvalidAuthor):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid author"})
	case errors.Is(err, domain.ErrMissingField):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Title and content are required"})
	default:
		return err
	}
}
