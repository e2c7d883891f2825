package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/digiclass/backend/internal/pkg/logger"
	"github.com/digiclass/backend/internal/server"
)

func main() {
	// Optional .env for local development; config defaults cover the rest
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment and config file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
