package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"book-my-property/internal/data/repository"
	"book-my-property/internal/wire"
	"book-my-property/pkg/database"
	"book-my-property/pkg/ratelimit"
	"book-my-property/pkg/telemetry"
	"book-my-property/pkg/token"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	config, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	shutdownTracing, err := telemetry.Init(ctx, config.Telemetry, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	db, err := database.InitDB(config.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	tokens, err := token.NewManager(token.Config{
		Secret:   config.JWT.Secret,
		Issuer:   config.JWT.Issuer,
		Audience: config.JWT.Audience,
		TTL:      config.JWT.TTL(),
	})
	if err != nil {
		return err
	}

	deps := wire.Deps{
		Store:  repository.NewRepository(db, logger),
		DB:     db,
		Tokens: tokens,
		Config: config,
		Logger: logger,
	}

	if config.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis unreachable, auth rate limiting fails open", zap.Error(err))
		}
		deps.Limiter = ratelimit.NewRedisLimiter(client, config.RateLimit.Max, config.RateLimit.Window)
		logger.Info("Rate limiting enabled",
			zap.Int("max", config.RateLimit.Max),
			zap.Duration("window", config.RateLimit.Window))
	}

	if config.Telemetry.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Registry = reg
	}

	app, err := wire.Wiring(deps)
	if err != nil {
		return err
	}

	return APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger)
}
