package commands

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/blogsphere/blog-platform/internal/core/ports"
	"github.com/blogsphere/blog-platform/internal/core/service"
	"github.com/blogsphere/blog-platform/internal/infrastructure/config"
	"github.com/blogsphere/blog-platform/internal/infrastructure/db/mongo"
	rediscache "github.com/blogsphere/blog-platform/internal/infrastructure/db/redis"
	"github.com/blogsphere/blog-platform/pkg/logger"
)

// app holds everything built from configuration. close releases the store
// connections.
type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	db     *mongodriver.Database
	redis  *redis.Client
	tokens *service.TokenService

	auth     *service.AuthService
	users    *service.UserService
	posts    *service.PostService
	comments *service.CommentService

	close func(ctx context.Context)
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "blogd",
	})

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, err
	}
	closers := []func(context.Context){
		func(ctx context.Context) { _ = client.Disconnect(ctx) },
	}

	var (
		rdb   *redis.Client
		cache ports.PostCache
	)
	if cfg.Redis.Enabled {
		rdb, err = rediscache.Connect(ctx, rediscache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("post cache: %w", err)
		}
		cache = rediscache.NewPostCache(rdb, cfg.Redis.PostTTL)
		closers = append(closers, func(context.Context) { _ = rdb.Close() })
		log.Info().Str("addr", cfg.Redis.Addr).Msg("post cache enabled")
	}

	userRepo := mongo.NewUserRepository(db)
	postRepo := mongo.NewPostRepository(db)
	commentRepo := mongo.NewCommentRepository(db)

	hasher := service.NewBcryptHasher(0)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	return &app{
		cfg:      cfg,
		log:      log,
		db:       db,
		redis:    rdb,
		tokens:   tokens,
		auth:     service.NewAuthService(userRepo, hasher, tokens, logger.Component("auth")),
		users:    service.NewUserService(userRepo, hasher, logger.Component("users")),
		posts:    service.NewPostService(postRepo, userRepo, cache, logger.Component("posts")),
		comments: service.NewCommentService(commentRepo, postRepo, logger.Component("comments")),
		close: func(ctx context.Context) {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i](ctx)
			}
		},
	}, nil
}
