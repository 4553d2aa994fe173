// Package main is the entry point for Icebound.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/icebound/internal/game"
	"github.com/samdwyer/icebound/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		// The screen is closed by now, so stderr is ours again.
		fmt.Fprintf(os.Stderr, "icebound: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development
	envErr := godotenv.Load()

	cfg, err := game.LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The terminal belongs to tcell once the game starts, so log to a file.
	logFile, err := setupLogging(cfg)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		log.Info().Err(envErr).Msg(".env file not loaded")
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Warn().Err(err).Msg("Telemetry setup failed, running without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("Error shutting down telemetry")
			}
		}()
	}

	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	if err := g.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Game error")
		return err
	}
	return nil
}

// setupLogging points the global zerolog logger at the configured file.
func setupLogging(cfg game.Config) (*os.File, error) {
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: f, NoColor: true})
	return f, nil
}
