package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/blogsphere/blog-platform/docs"
	"github.com/blogsphere/blog-platform/internal/core/domain"
	"github.com/blogsphere/blog-platform/internal/core/ports"
	"github.com/blogsphere/blog-platform/internal/core/service"
)

type fakeUsers struct{ ports.UserService }

func (fakeUsers) List(context.Context) ([]*domain.User, error) {
	return []*domain.User{{ID: "1", Username: "alice", Role: domain.RoleUser}}, nil
}

type fakePosts struct{ ports.PostService }

func (fakePosts) List(context.Context) ([]*domain.BlogPost, error) {
	return []*domain.BlogPost{}, nil
}

func (fakePosts) Get(_ context.Context, id string) (*domain.BlogPost, error) {
	if id == "nope" {
		return nil, domain.ErrInvalidID
	}
	return nil, domain.ErrPostNotFound
}

func (fakePosts) Create(_ context.Context, in ports.PostInput) (*domain.BlogPost, error) {
	return &domain.BlogPost{ID: "652f1c0000000000000000aa", Author: in.Author}, nil
}

func (fakePosts) Delete(context.Context, string) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, string, string) {
	t.Helper()

	tokens := service.NewTokenService("test-secret", 0)
	userToken, err := tokens.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	adminToken, err := tokens.Issue("root", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	reg := prometheus.NewRegistry()
	e := NewRouter(Deps{
		Logger:     zerolog.Nop(),
		Tokens:     tokens,
		Users:      fakeUsers{},
		Posts:      fakePosts{},
		IndexPage:  []byte("<html></html>"),
		Registerer: reg,
		Gatherer:   reg,
	})
	return e, userToken, adminToken
}

func doRequest(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Guards(t *testing.T) {
	h, userToken, adminToken := newTestRouter(t)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"public list", http.MethodGet, "/blog_posts", "", "", http.StatusOK},
		{"create without token", http.MethodPost, "/blog_posts", "", `{"title":"t","content":"c"}`, http.StatusUnauthorized},
		{"create with bearer prefix", http.MethodPost, "/blog_posts", "Bearer " + userToken, `{"title":"t","content":"c"}`, http.StatusUnauthorized},
		{"create with user token", http.MethodPost, "/blog_posts", userToken, `{"title":"t","content":"c"}`, http.StatusCreated},
		{"users with user token", http.MethodGet, "/users", userToken, "", http.StatusForbidden},
		{"users without token", http.MethodGet, "/users", "", "", http.StatusForbidden},
		{"users with admin token", http.MethodGet, "/users", adminToken, "", http.StatusOK},
		{"delete post as user", http.MethodDelete, "/blog_posts/652f1c0000000000000000aa", userToken, "", http.StatusForbidden},
		{"delete post as admin", http.MethodDelete, "/blog_posts/652f1c0000000000000000aa", adminToken, "", http.StatusOK},
		{"admin tree as user", http.MethodGet, "/admin/users", userToken, "", http.StatusForbidden},
		{"admin tree as admin", http.MethodGet, "/admin/blogs", adminToken, "", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(h, tc.method, tc.path, tc.token, tc.body)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_PostIDs(t *testing.T) {
	h, _, _ := newTestRouter(t)

	if rec := doRequest(h, http.MethodGet, "/blog_posts/nope", "", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
	if rec := doRequest(h, http.MethodGet, "/blog_posts/652f1c0000000000000000ff", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rec.Code)
	}
}

func TestRouter_Surfaces(t *testing.T) {
	h, _, _ := newTestRouter(t)

	for path, want := range map[string]int{
		"/":        http.StatusOK,
		"/health":  http.StatusOK,
		"/metrics": http.StatusOK,
	} {
		if rec := doRequest(h, http.MethodGet, path, "", ""); rec.Code != want {
			t.Fatalf("%s: expected %d, got %d", path, want, rec.Code)
		}
	}

	rec := doRequest(h, http.MethodGet, "/metrics", "", "")
	if !strings.Contains(rec.Body.String(), "blog_http_requests_total") {
		t.Fatalf("expected http metrics in output")
	}
}

func TestRouter_CustomMetricsOnInjectedRegistry(t *testing.T) {
	h, userToken, _ := newTestRouter(t)

	if rec := doRequest(h, http.MethodGet, "/users", userToken, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	body := doRequest(h, http.MethodGet, "/metrics", "", "").Body.String()
	if !strings.Contains(body, `blog_auth_rejections_total{guard="admin"}`) {
		t.Fatalf("expected guard rejections on the injected registry, got:\n%s", body)
	}
}

func TestRouter_EveryAPIRouteIsDocumented(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := NewRouter(Deps{Logger: zerolog.Nop(), Registerer: reg, Gatherer: reg})

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger doc is not valid json: %v", err)
	}

	for _, r := range e.Routes() {
		switch r.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		default:
			continue
		}
		if r.Path == "/" || r.Path == "/metrics" || r.Path == "/admin" || strings.HasSuffix(r.Path, "*") {
			continue
		}
		path := strings.ReplaceAll(r.Path, ":id", "{id}")
		if _, ok := doc.Paths[path][strings.ToLower(r.Method)]; !ok {
			t.Errorf("%s %s is served but missing from the swagger doc", r.Method, path)
		}
	}
}
