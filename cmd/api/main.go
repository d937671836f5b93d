// Lexbook is a vocabulary teaching backend. It manages word books, lets
// teachers build them by crawling vocabulary pages, and organizes students
// into classes.
package main

import (
	"context"
	"flag"

	"github.com/okutan/lexbook/internal/bootstrap"
	"github.com/okutan/lexbook/internal/pkg/logger"
	"github.com/okutan/lexbook/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	database, err := bootstrap.SetupDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up database")
	}

	deps, err := bootstrap.BuildDependencies(cfg, database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build dependencies")
	}

	if err := bootstrap.SeedData(context.Background(), deps); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed initial data")
	}

	srv := server.NewServer(deps)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
}
