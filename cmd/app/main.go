package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sewalink/sewalink-functions/pkg/config"
	"github.com/sewalink/sewalink-functions/pkg/handlers"
	"github.com/sewalink/sewalink-functions/pkg/middleware"
	"github.com/sewalink/sewalink-functions/pkg/notify"
	dydbstore "github.com/sewalink/sewalink-functions/pkg/storage/dynamodb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)

	// Gift events are optional; without a queue the service runs without
	// publishing.
	var notifier notify.Notifier
	if cfg.GiftEventsQueueURL != "" {
		notifier = notify.NewSQSNotifier(sqs.NewFromConfig(awsCfg), cfg.GiftEventsQueueURL)
	}

	store := dydbstore.New(dbClient, notifier, cfg.AccountsTableName, cfg.GiftsTableName)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.WithCallerIdentity)
	router.Use(middleware.NewStructuredLogger(logger))

	handlers.Mount(router, store)

	logger.Info("starting server", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
