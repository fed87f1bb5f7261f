package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/advocacy-backend/internal/adapter/postgres"
	"github.com/heartmarshall/advocacy-backend/internal/auth"
	"github.com/heartmarshall/advocacy-backend/internal/config"
	"github.com/heartmarshall/advocacy-backend/internal/ratelimit"
	"github.com/heartmarshall/advocacy-backend/internal/transport/middleware"
	"github.com/heartmarshall/advocacy-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, cfg.Server.ServiceName)
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svcs := NewServices(logger, pool, cfg)

	components := []rest.Component{
		{Name: "postgres", Required: true, Ping: pool.Ping},
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		var client *redis.Client
		limiter, client = newLimiter(logger, cfg.RateLimit)
		if client != nil {
			defer client.Close()
			components = append(components, rest.Component{
				Name: "redis",
				Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
			})
		}
	}

	router := NewHandler(logger, cfg, svcs, limiter, components...)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      otelhttp.NewHandler(router, cfg.Server.ServiceName),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server)
}

// NewHandler builds the HTTP router over svcs. A nil limiter disables rate
// limiting.
func NewHandler(
	logger *slog.Logger,
	cfg *config.Config,
	svcs *Services,
	limiter ratelimit.Limiter,
	components ...rest.Component,
) http.Handler {
	var limit middleware.Middleware
	if limiter != nil {
		limit = middleware.RateLimit(limiter)
	}

	handlers := rest.Handlers{
		Health:          rest.NewHealthHandler(Version, components...),
		Profile:         rest.NewProfileHandler(svcs.Users, logger),
		Representatives: rest.NewRepresentativeHandler(svcs.Representatives, logger),
		Issues:          rest.NewIssueHandler(svcs.Issues, logger),
		Interactions:    rest.NewInteractionHandler(svcs.Interactions, logger),
		Tasks:           rest.NewTaskHandler(svcs.Tasks, logger),
		Followups:       rest.NewFollowupHandler(svcs.Followups, logger),
	}

	return rest.NewRouter(handlers, rest.RouterOptions{
		Global: middleware.Chain(
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
		),
		Protected: middleware.Chain(
			middleware.Auth(logger, auth.NewVerifier(cfg.Auth), svcs.Identity),
			limit,
		),
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})
}

// serve runs srv until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg config.ServerConfig) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newLimiter returns the configured limiter. The redis client is nil when
// counters stay in memory; otherwise the caller owns it.
func newLimiter(logger *slog.Logger, cfg config.RateLimitConfig) (ratelimit.Limiter, *redis.Client) {
	if !cfg.UsesRedis() {
		return ratelimit.NewMemory(cfg.Requests, cfg.Window), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return ratelimit.NewRedis(logger, client, cfg.Requests, cfg.Window, cfg.KeyPrefix), client
}
