package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	Catalog  Catalog
	RabbitMQ RabbitMQ
	Sync     Sync
}

// Catalog holds source catalog API configuration.
type Catalog struct {
	BaseURL string `env:"CATALOG_API_URL"`
	Token   string `env:"CATALOG_API_TOKEN"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"catalog-sync-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"catalog-sync.commands"`
}

// Sync holds sync run tuning.
type Sync struct {
	Workers     int           `env:"SYNC_WORKERS" envDefault:"4"`
	MinInterval time.Duration `env:"SYNC_MIN_INTERVAL" envDefault:"1h"`
	RunTimeout  time.Duration `env:"SYNC_RUN_TIMEOUT" envDefault:"15m"`
}
