package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds a context for a JSON request. pathParams alternates
// names and values.
func newJSONContext(e *echo.Echo, method, target, body string, pathParams ...string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(pathParams); i += 2 {
		names = append(names, pathParams[i])
		values = append(values, pathParams[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

type stubAuthService struct {
	registerFn   func(ctx context.Context, username, password, email string) (*domain.User, error)
	loginFn      func(ctx context.Context, username, password string) (string, error)
	adminLoginFn func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	return s.registerFn(ctx, username, password, email)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	return s.adminLoginFn(ctx, username, password)
}

type stubUserService struct {
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	listFn   func(ctx context.Context) ([]*domain.User, error)
	updateFn func(ctx context.Context, input ports.UpdateUserInput) error
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Update(ctx context.Context, input ports.UpdateUserInput) error {
	return s.updateFn(ctx, input)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubPostService struct {
	createFn func(ctx context.Context, input ports.PostInput) (*domain.BlogPost, error)
	getFn    func(ctx context.Context, id string) (*domain.BlogPost, error)
	listFn   func(ctx context.Context) ([]*domain.BlogPost, error)
	updateFn func(ctx context.Context, id string, input ports.PostInput) error
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubPostService) Create(ctx context.Context, input ports.PostInput) (*domain.BlogPost, error) {
	return s.createFn(ctx, input)
}

func (s *stubPostService) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) List(ctx context.Context) ([]*domain.BlogPost, error) {
	return s.listFn(ctx)
}

func (s *stubPostService) Update(ctx context.Context, id string, input ports.PostInput) error {
	return s.updateFn(ctx, id, input)
}

func (s *stubPostService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubCommentService struct {
	createFn func(ctx context.Context, input ports.CommentInput) (*domain.Comment, error)
	getFn    func(ctx context.Context, id string) (*domain.Comment, error)
	listFn   func(ctx context.Context) ([]*domain.Comment, error)
	updateFn func(ctx context.Context, id string, input ports.CommentInput) error
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCommentService) Create(ctx context.Context, input ports.CommentInput) (*domain.Comment, error) {
	return s.createFn(ctx, input)
}

func (s *stubCommentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return s.getFn(ctx, id)
}

func (s *stubCommentService) List(ctx context.Context) ([]*domain.Comment, error) {
	return s.listFn(ctx)
}

func (s *stubCommentService) Update(ctx context.Context, id string, input ports.CommentInput) error {
	return s.updateFn(ctx, id, input)
}

func (s *stubCommentService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
