package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blogsphere/blog-platform/internal/api"
	"github.com/blogsphere/blog-platform/internal/api/handler"
	"github.com/blogsphere/blog-platform/internal/infrastructure/db/mongo"
	"github.com/blogsphere/blog-platform/web"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	if err := mongo.EnsureIndexes(ctx, a.db); err != nil {
		a.log.Warn().Err(err).Msg("ensure indexes failed")
	}

	health := map[string]handler.Pinger{"mongodb": handler.MongoPinger(a.db)}
	if a.redis != nil {
		health["redis"] = handler.RedisPinger(a.redis)
	}

	e := api.NewRouter(api.Deps{
		Logger:    a.log,
		Tokens:    a.tokens,
		Auth:      a.auth,
		Users:     a.users,
		Posts:     a.posts,
		Comments:  a.comments,
		Health:    health,
		IndexPage: web.IndexHTML,
	})

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("port", a.cfg.Port).Msg("http server listening")
		if err := e.Start(":" + a.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
