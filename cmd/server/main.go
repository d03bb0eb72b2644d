package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/handler"
	"github.com/deepakkode/scrap-marketplace/internal/adapter/http/router"
	"github.com/deepakkode/scrap-marketplace/internal/adapter/messaging/nats"
	"github.com/deepakkode/scrap-marketplace/internal/adapter/repository/cache"
	"github.com/deepakkode/scrap-marketplace/internal/adapter/repository/mongodb"
	"github.com/deepakkode/scrap-marketplace/internal/adapter/storage/s3"
	"github.com/deepakkode/scrap-marketplace/internal/config"
	"github.com/deepakkode/scrap-marketplace/internal/listing/usecase"
	"github.com/deepakkode/scrap-marketplace/internal/mailer"
	"github.com/deepakkode/scrap-marketplace/internal/platform/logger"
	"github.com/deepakkode/scrap-marketplace/internal/platform/metrics"
	"github.com/deepakkode/scrap-marketplace/internal/platform/tracer"
	"github.com/deepakkode/scrap-marketplace/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()

	if cfg.OTLPEndpoint != "" {
		tp, err := tracer.Init(ctx, cfg.OTLPEndpoint)
		if err != nil {
			appLogger.Fatal("failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				appLogger.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		appLogger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())
	if err := mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	db := mongoClient.Database(cfg.MongoDB)

	listingRepo := mongodb.NewListingRepository(db)
	exploreRepo := mongodb.NewExploreRepository(db)
	favoriteRepo := mongodb.NewFavoriteRepository(db)
	userRepo := mongodb.NewUserRepository(db, appLogger)

	listingCache, err := cache.NewListingCache(cfg.RedisAddress)
	if err != nil {
		appLogger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	storageClient, err := s3.NewStorage(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize storage", zap.Error(err))
	}

	natsPublisher, err := nats.NewPublisher(cfg.NATSURL)
	if err != nil {
		appLogger.Fatal("failed to connect to NATS", zap.Error(err))
	}
	defer natsPublisher.Close()

	mailSender := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)

	var metricsManager *metrics.Manager
	if cfg.MetricsPort != "" {
		metricsManager = metrics.NewManager("scrap_marketplace")
		go func() {
			if err := metrics.StartServer(cfg.MetricsPort, appLogger, metricsManager.Registry); err != nil && !errors.Is(err, http.ErrServerClosed) {
				appLogger.Error("Prometheus metrics server failed", zap.Error(err))
			}
		}()
	}

	listingUC := usecase.NewListingUsecase(listingRepo, listingCache, natsPublisher, mailSender, metricsManager, appLogger)
	photoUC := usecase.NewPhotoUsecase(storageClient, listingRepo, appLogger)
	exploreUC := usecase.NewExploreUsecase(exploreRepo, appLogger)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, appLogger)
	userUC := user.NewUsecase(userRepo, cfg.JWTSecret, appLogger)

	authHandler := handler.NewAuthHandler(userUC, appLogger)
	listingHandler := handler.NewListingHandler(listingUC, photoUC, userUC, appLogger)
	exploreHandler := handler.NewExploreHandler(exploreUC, appLogger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, appLogger)

	mux := router.New(appLogger, metricsManager, cfg.JWTSecret, authHandler, listingHandler, exploreHandler, favoriteHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("starting HTTP server", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
