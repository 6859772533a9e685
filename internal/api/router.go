package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/blogsphere/blog-platform/docs"
	"github.com/blogsphere/blog-platform/internal/api/handler"
	"github.com/blogsphere/blog-platform/internal/api/metrics"
	"github.com/blogsphere/blog-platform/internal/api/middleware"
	"github.com/blogsphere/blog-platform/internal/core/ports"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Logger   zerolog.Logger
	Tokens   ports.TokenService
	Auth     ports.AuthService
	Users    ports.UserService
	Posts    ports.PostService
	Comments ports.CommentService

	// Health lists the dependencies checked by /health/ready.
	Health map[string]handler.Pinger
	// IndexPage is served at GET /.
	IndexPage []byte

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}
	if err := metrics.Register(d.Registerer); err != nil {
		d.Logger.Error().Err(err).Msg("failed to register custom metrics")
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "blog",
		Subsystem:  "http",
		Registerer: d.Registerer,
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	postHandler := handler.NewPostHandler(d.Posts)
	commentHandler := handler.NewCommentHandler(d.Comments)

	authenticated := middleware.Authenticated(d.Tokens)
	adminOnly := middleware.AdminOnly(d.Tokens)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/admin/login", authHandler.AdminLogin)

	e.GET("/users", userHandler.List, adminOnly)

	// --- Blog posts ---
	e.GET("/blog_posts", postHandler.List)
	e.GET("/blog_posts/:id", postHandler.Get)
	e.POST("/blog_posts", postHandler.Create, authenticated)
	e.PUT("/blog_posts/:id", postHandler.Update, authenticated)
	e.DELETE("/blog_posts/:id", postHandler.Delete, adminOnly)

	// --- Comments ---
	e.GET("/comments", commentHandler.List)
	e.GET("/comments/:id", commentHandler.Get)
	e.POST("/comments", commentHandler.Create, authenticated)
	e.PUT("/comments/:id", commentHandler.Update, authenticated)
	e.DELETE("/comments/:id", commentHandler.Delete, authenticated)

	// --- Admin console ---
	admin := e.Group("/admin", adminOnly)
	registerCRUD(admin, "/users", userHandler.Create, userHandler.List, userHandler.Get, userHandler.Update, userHandler.Delete)
	registerCRUD(admin, "/blogs", postHandler.Create, postHandler.List, postHandler.Get, postHandler.Update, postHandler.Delete)
	registerCRUD(admin, "/comments", commentHandler.Create, commentHandler.List, commentHandler.Get, commentHandler.Update, commentHandler.Delete)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Health)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/", handler.NewIndexHandler(d.IndexPage).Index)

	return e
}

func registerCRUD(g *echo.Group, path string, create, list, get, update, del echo.HandlerFunc) {
	g.POST(path, create)
	g.GET(path, list)
	g.GET(path+"/:id", get)
	g.PUT(path+"/:id", update)
	g.DELETE(path+"/:id", del)
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
