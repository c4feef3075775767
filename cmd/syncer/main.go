package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/craftline/catalog-sync/cmd/syncer/config"
	"github.com/craftline/catalog-sync/internal/catalogclient"
	"github.com/craftline/catalog-sync/internal/detector"
	"github.com/craftline/catalog-sync/internal/handler"
	"github.com/craftline/catalog-sync/internal/platform/rabbitmq"
	"github.com/craftline/catalog-sync/internal/platform/storage"
	"github.com/craftline/catalog-sync/internal/resolver"
	"github.com/craftline/catalog-sync/internal/review"
	"github.com/craftline/catalog-sync/internal/schedule"
	"github.com/craftline/catalog-sync/internal/syncer"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is user agent header value used when calling the source catalog API.
	UserAgent = "catalog-sync/0.0.1"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	store := storage.NewPostgres(pgDB)

	client := catalogclient.NewClient(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.Catalog.BaseURL,
		cfg.Catalog.Token,
		UserAgent,
	)

	syn := syncer.NewSyncer(
		client,
		store,
		resolver.NewResolver(store),
		detector.NewDetector(),
		cfg.Sync.Workers,
		syncer.WithRunTimeout(cfg.Sync.RunTimeout),
	)

	// flag pending changes whose local baseline drifted while the service was down
	if _, err := review.NewEngine(store, &logger).Reconcile(ctx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't reconcile pending changes")
	}

	han := handler.NewHandler(conn, syn, schedule.NewGate(store), cfg.Sync.MinInterval, &logger)

	// start consuming and handling sync commands
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("catalog syncer up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
