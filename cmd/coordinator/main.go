package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/raffleworks/raffle-coordinator/internal/adapter"
	"github.com/raffleworks/raffle-coordinator/internal/announcer"
	"github.com/raffleworks/raffle-coordinator/internal/api/middleware"
	"github.com/raffleworks/raffle-coordinator/internal/api/rest"
	"github.com/raffleworks/raffle-coordinator/internal/api/server"
	"github.com/raffleworks/raffle-coordinator/internal/config"
	"github.com/raffleworks/raffle-coordinator/internal/engine"
	"github.com/raffleworks/raffle-coordinator/internal/executor"
	"github.com/raffleworks/raffle-coordinator/internal/identity"
	"github.com/raffleworks/raffle-coordinator/internal/ledger"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
	"github.com/raffleworks/raffle-coordinator/internal/providers/jetstream"
	"github.com/raffleworks/raffle-coordinator/internal/providers/randomorg"
	"github.com/raffleworks/raffle-coordinator/internal/providers/reddit"
	"github.com/raffleworks/raffle-coordinator/internal/resolver"
	"github.com/raffleworks/raffle-coordinator/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadCoordinatorConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "coordinator",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting raffle coordinator")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	if err := store.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	clock := adapter.NewClock()

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Initialize providers
	redditClient := reddit.NewClient(
		adapter.NewHTTPClient(cfg.Reddit.HTTPTimeout),
		adapter.NewHTTPClient(cfg.Reddit.IndirectionTimeout),
		jsonAdapter,
		cfg.Reddit.BaseURL,
		cfg.Reddit.UserAgent,
	)
	randomClient := randomorg.NewClient(
		adapter.NewHTTPClient(cfg.RandomOrg.HTTPTimeout),
		jsonAdapter,
		clock,
		cfg.RandomOrg.APIURL,
		cfg.RandomOrg.APIKeys,
		cfg.RandomOrg.RetryInterval,
		cfg.RandomOrg.DailyLimit,
		cfg.RandomOrg.ResetHourUTC,
	)

	// Open the completion ledger
	calledLedger, err := ledger.NewFileLedger(cfg.Ledger.Path)
	if err != nil {
		logger.Fatal("Failed to open completion ledger", zap.Error(err), zap.String("path", cfg.Ledger.Path))
	}

	// Roll history days are keyed in the audience's timezone
	displayTZ, err := time.LoadLocation(cfg.Pipeline.DisplayTimezone)
	if err != nil {
		logger.Warn("Unknown display timezone, using UTC", zap.String("timezone", cfg.Pipeline.DisplayTimezone))
		displayTZ = time.UTC
	}

	// Wire the draw pipeline
	identityService := identity.NewService(dataStore, publisher, identity.NoopMatcher{}, jsonAdapter, cfg.Worker.WorkerPoolSize)
	announcerService := announcer.NewService(publisher, dataStore, dataStore, identityService, jcsAdapter, jsonAdapter, randomClient.Usage)
	drawEngine := engine.NewDrawEngine(
		redditClient,
		resolver.NewParticipantResolver(redditClient),
		randomClient,
		announcerService,
		publisher,
		calledLedger,
		dataStore,
		clock,
		displayTZ,
		cfg.Pipeline.MaxSlots,
		cfg.Pipeline.MaxWinners,
	)
	drawExecutor := executor.NewSequentialExecutor(cfg.Pipeline.Cooldown, cfg.Worker.WorkerQueueSize, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
			Operators:    cfg.Auth.Operators,
		},
	}

	// Create and start server
	handler := rest.NewHandler(drawExecutor, drawEngine, dataStore, identityService, calledLedger, announcerService, randomClient.Usage)
	srv := server.New(serverConfig, handler)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.Start(); err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		// Runs on SIGINT/SIGTERM or when the server fails to serve
		<-groupCtx.Done()
		logger.Info("Shutting down server...")

		// Shutdown gets a fresh deadline; the parent ctx is already cancelled
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error(fmt.Errorf("server forced to shutdown: %w", err))
		}

		// Let queued draws finish before closing the publisher
		if err := drawExecutor.Shutdown(shutdownCtx); err != nil {
			logger.Error(fmt.Errorf("executor shutdown: %w", err))
		}
		return nil
	})
	logger.InfoCtx(ctx, "Server listening", zap.String("host", cfg.Server.Host), zap.Int("port", cfg.Server.Port))

	if err := group.Wait(); err != nil {
		logger.Error(err, zap.String("component", "server"))
	}

	logger.Info("Coordinator stopped")
}
