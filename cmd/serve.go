package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akylbek/payment-system/psp-connector/internal/api"
	"github.com/akylbek/payment-system/psp-connector/internal/config"
	"github.com/akylbek/payment-system/psp-connector/internal/engine"
	"github.com/akylbek/payment-system/psp-connector/internal/events"
	"github.com/akylbek/payment-system/psp-connector/internal/interfaces"
	"github.com/akylbek/payment-system/psp-connector/internal/platform"
	"github.com/akylbek/payment-system/psp-connector/internal/psp"
	"github.com/akylbek/payment-system/psp-connector/internal/repository"
	"github.com/akylbek/payment-system/psp-connector/internal/service"
	"github.com/akylbek/payment-system/psp-connector/internal/telemetry"
)

const consumerGroup = "psp-connector"

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the extension and webhook HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func serve(cfg *config.Config) error {
	if err := telemetry.InitTelemetry("psp-connector", cfg.JaegerEndpoint); err != nil {
		return err
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting PSP connector")

	nc, err := nats.Connect(cfg.NatsURL)
	if err != nil {
		telemetry.Logger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer nc.Close()

	opts := []service.Option{}

	var actionLog interfaces.ActionLogRepository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			telemetry.Logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		repo := repository.NewActionLogRepository(db)
		if err := repo.InitDB(); err != nil {
			telemetry.Logger.Fatal("Failed to initialize database", zap.Error(err))
		}
		actionLog = repo
		opts = append(opts, service.WithActionLog(repo))
	}

	if cfg.RedisURL != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		defer redisClient.Close()
		opts = append(opts, service.WithInFlightGuard(repository.NewRedisInFlightGuard(redisClient, cfg.WebhookDedupeTTL)))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reader *kafka.Reader
	if cfg.KafkaBrokers != "" {
		kafkaWriter := events.NewWriter(cfg.KafkaBrokers)
		defer kafkaWriter.Close()
		opts = append(opts, service.WithPublisher(events.NewKafkaPublisher(kafkaWriter)))

		reader = events.NewNotificationReader(cfg.KafkaBrokers, consumerGroup)
		defer reader.Close()
	}

	processor := service.NewProcessor(
		platform.NewClient(nc, cfg.PlatformTimeout),
		psp.NewClient(cfg.PSPBaseURL, cfg.PSPAPIKey, cfg.PSPProfileID, nil),
		engine.Options{
			CardComponentEnabled: cfg.CardComponentEnabled,
			WebhookURL:           cfg.WebhookURL,
		},
		opts...,
	)
	if reader != nil {
		go processor.ConsumeNotifications(ctx, reader)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.NewRouter(processor, actionLog),
	}

	go func() {
		telemetry.Logger.Info("PSP connector starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
	return nil
}
