package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/matter-service/internal/api/http"
	"github.com/spec-kit/matter-service/internal/api/http/handlers"
	"github.com/spec-kit/matter-service/internal/auth"
	"github.com/spec-kit/matter-service/internal/cache"
	"github.com/spec-kit/matter-service/internal/config"
	"github.com/spec-kit/matter-service/internal/events"
	"github.com/spec-kit/matter-service/internal/observability"
	"github.com/spec-kit/matter-service/internal/persistence"
	"github.com/spec-kit/matter-service/internal/repository"
	"github.com/spec-kit/matter-service/internal/service"
	"github.com/spec-kit/matter-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	ticketRepo, userRepo, err := buildStores(ctx, cfg, pg, logger)
	if err != nil {
		logger.Fatal("failed to initialize stores", zap.Error(err))
	}

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
	})
	authService := service.NewAuthService(cfg.Auth, userRepo)
	notificationService := service.NewNotificationService(dispatcher, logger)

	var statsCache *cache.StatsCache
	if cfg.Cache.Enabled {
		statsCache = cache.NewStatsCache(redis.Client, cfg.Cache.TTL(), logger)
	} else {
		statsCache = cache.NewStatsCache(nil, 0, logger)
	}

	worker.StartNotificationWorker(notificationService)
	worker.StartCacheInvalidator(dispatcher, statsCache)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(*cfg, pg, redis, metrics),
		Users:          handlers.NewUsersHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Dashboard:      handlers.NewDashboardHandler(ticketService, statsCache),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func buildStores(ctx context.Context, cfg *config.Config, pg *persistence.Postgres, logger *zap.Logger) (repository.TicketRepository, repository.UserRepository, error) {
	// Users always live in memory: the identity layer is a mock.
	userRepo := repository.NewMemoryUserRepository()

	var ticketRepo repository.TicketRepository
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				return nil, nil, err
			}
		}
		ticketRepo = repository.NewPostgresTicketRepository(pg.PoolHandle())
	default:
		ticketRepo = repository.NewMemoryTicketRepository()
	}

	if cfg.Store.SeedDemo {
		hash, err := auth.NewPasswordHasher(cfg.Auth.BcryptCost).Hash(cfg.Auth.DemoPassword)
		if err != nil {
			return nil, nil, err
		}
		seedTarget := ticketRepo
		if cfg.Store.Backend == config.StoreBackendPostgres {
			// Demo tickets only seed the memory backend; postgres keeps real data.
			seedTarget = nil
		}
		if seedTarget != nil {
			if err := repository.SeedDemoData(ctx, seedTarget, userRepo, hash, time.Now()); err != nil {
				return nil, nil, err
			}
			logger.Info("seeded demo data")
		} else {
			if err := repository.SeedDemoUsers(ctx, userRepo, hash, time.Now()); err != nil {
				return nil, nil, err
			}
			logger.Info("seeded demo users")
		}
	}

	return ticketRepo, userRepo, nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
