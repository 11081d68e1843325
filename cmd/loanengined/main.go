package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/loanworks/loanengine/internal/application/usecase"
	"github.com/loanworks/loanengine/internal/domain/calc"
	"github.com/loanworks/loanengine/internal/infrastructure/cache"
	"github.com/loanworks/loanengine/internal/infrastructure/config"
	kafkaPublisher "github.com/loanworks/loanengine/internal/infrastructure/kafka"
	pgRepo "github.com/loanworks/loanengine/internal/infrastructure/persistence/postgres"
	"github.com/loanworks/loanengine/internal/presentation/rest"
	pkgkafka "github.com/loanworks/loanengine/pkg/kafka"
	"github.com/loanworks/loanengine/pkg/observability"
	pkgpostgres "github.com/loanworks/loanengine/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Info("starting loanengine", "http_port", cfg.HTTPPort)

	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	calcMetrics := observability.NewCalculationMetrics()

	// Database.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Redis schedule cache.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	scheduleCache := cache.NewRedisScheduleCache(redisClient)

	// Kafka publisher.
	producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer producer.Close()
	publisher := kafkaPublisher.NewEventPublisher(producer, cfg.Kafka.Topic, logger)

	// Repositories and engine.
	loanRepo := pgRepo.NewLoanRepo(pool)
	paymentRepo := pgRepo.NewPaymentRepo(pool)
	snapshotRepo := pgRepo.NewSnapshotRepo(pool)
	engine := calc.NewEngine()

	// Use cases.
	scheduleUC := usecase.NewGenerateScheduleUseCase(loanRepo, scheduleCache, engine, logger, cfg.CacheTTL)
	balanceUC := usecase.NewGetBalanceUseCase(loanRepo, paymentRepo, snapshotRepo, publisher, engine, logger)
	impactUC := usecase.NewAnalyzeImpactUseCase(loanRepo, paymentRepo, engine)
	paymentUC := usecase.NewRecordPaymentUseCase(loanRepo, paymentRepo, scheduleCache, publisher, engine, logger)

	// HTTP surface.
	mux := http.NewServeMux()
	rest.NewHandler(scheduleUC, balanceUC, impactUC, paymentUC, logger, calcMetrics).RegisterRoutes(mux)
	rest.NewHealthHandler(logger, map[string]rest.ReadinessCheck{
		"postgres": func(ctx context.Context) error { return pkgpostgres.HealthCheck(ctx, pool) },
		"redis":    func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	}).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	server := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
}
