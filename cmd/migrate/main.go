package main

import (
	"errors"
	"flag"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var (
		path string
		down bool
	)
	flag.StringVar(&path, "path", "migrations", "path to migrations directory")
	flag.BoolVar(&down, "down", false, "roll back all migrations instead of applying them")
	flag.Parse()

	m, err := migrate.New("file://"+path, os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open migrations")
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal().
			Err(err).
			Msg("can't run migrations")
	}

	logger.Info().Msg("migrations up to date")
}
