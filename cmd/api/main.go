package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BarkinBalci/marketing-effectiveness-service/docs"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/config"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/handler"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/instrumentation"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/logger"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/queue/sqs"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/repository/clickhouse"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/service"
)

const shutdownTimeout = 15 * time.Second

// @title Marketing Effectiveness Service API
// @version 1.0
// @description Touchpoint ingestion, multi-touch attribution, A/B significance and creative effectiveness scoring.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Service.Environment, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		_ = log.Sync()
	}(log)

	log.Info("Starting API service",
		zap.String("port", cfg.Service.APIPort),
		zap.String("default_model", cfg.Analysis.DefaultModel),
		zap.Float64("default_confidence_level", cfg.Analysis.DefaultConfidenceLevel))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	clickhouseClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func(clickhouseClient *clickhouse.Client) {
		if err := clickhouseClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}(clickhouseClient)

	repo := clickhouse.NewRepository(clickhouseClient, log)
	metrics := instrumentation.New()

	touchpointService := service.NewTouchpointService(sqsClient, repo, metrics, log)
	analysisService := service.NewAnalysisService(repo, cfg.Analysis, metrics, log)

	h := handler.NewHandler(touchpointService, analysisService, metrics, log)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Service.APIPort),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("API server starting", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("API server shutdown failed", zap.Error(err))
	}
}
