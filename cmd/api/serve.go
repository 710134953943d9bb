package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/adoptafacil/internal/api/http"
	"github.com/spec-kit/adoptafacil/internal/api/http/handlers"
	"github.com/spec-kit/adoptafacil/internal/config"
	"github.com/spec-kit/adoptafacil/internal/events"
	"github.com/spec-kit/adoptafacil/internal/observability"
	"github.com/spec-kit/adoptafacil/internal/persistence"
	"github.com/spec-kit/adoptafacil/internal/repository"
	"github.com/spec-kit/adoptafacil/internal/repository/memory"
	"github.com/spec-kit/adoptafacil/internal/service"
)

const shutdownTimeout = 10 * time.Second

type repositories struct {
	users     repository.UserRepository
	adopters  repository.AdopterRepository
	donations repository.DonationRepository
}

func serveCommand(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			return err
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	repos := buildRepositories(cfg, pg, redis, logger)
	metrics := observability.NewMetrics(cfg.App.Name)

	dispatcher := events.NewInMemoryDispatcher()
	var publisher events.Publisher
	if cfg.Notification.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.Notification.AMQPURL, cfg.Notification.EventsQueue)
		if err != nil {
			return err
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}
	service.NewNotificationService(dispatcher, publisher, metrics, logger).RegisterHandlers()

	userService := service.NewUserService(*cfg, service.UserDependencies{
		UserRepo:   repos.users,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	adopterService := service.NewAdopterService(service.AdopterDependencies{
		AdopterRepo: repos.adopters,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	donationService := service.NewDonationService(service.DonationDependencies{
		DonationRepo: repos.donations,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Users:     handlers.NewUsersHandler(userService),
		Adopters:  handlers.NewAdoptersHandler(adopterService),
		Donations: handlers.NewDonationsHandler(donationService),
		Metrics:   metrics,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.App.Addr()))
		errCh <- app.Listen(cfg.App.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
	}
	return app.ShutdownWithTimeout(shutdownTimeout)
}

// buildRepositories picks Postgres when a DSN is configured and the in-memory store
// otherwise, then wraps list queries with the Redis cache when it is enabled.
func buildRepositories(cfg *config.Config, pg *persistence.Postgres, redis *persistence.Redis, logger *zap.Logger) repositories {
	var repos repositories
	if pg.Enabled() {
		pool := pg.PoolHandle()
		repos = repositories{
			users:     repository.NewUserRepository(pool),
			adopters:  repository.NewAdopterRepository(pool),
			donations: repository.NewDonationRepository(pool),
		}
	} else {
		store := memory.NewStore()
		repos = repositories{users: store.Users(), adopters: store.Adopters(), donations: store.Donations()}
	}

	ttl := cfg.Redis.CacheTTL()
	if !redis.Enabled() || ttl == 0 {
		return repos
	}
	return repositories{
		users:     repository.NewCachedUserRepository(repos.users, redis, ttl, logger),
		adopters:  repository.NewCachedAdopterRepository(repos.adopters, redis, ttl, logger),
		donations: repository.NewCachedDonationRepository(repos.donations, redis, ttl, logger),
	}
}
