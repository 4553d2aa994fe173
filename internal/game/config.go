package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/samdwyer/icebound/internal/telemetry"
)

const (
	// DefaultTransition matches the length of the move animation.
	DefaultTransition = 200 * time.Millisecond
	DefaultLogFile    = "icebound.log"
)

// Config holds game configuration options.
type Config struct {
	// LevelID selects an embedded level. Empty means the default level.
	LevelID string

	// LevelFile loads a level from disk instead of the embedded set.
	LevelFile string

	// Transition is how long a move animates before the player may move again.
	Transition time.Duration

	LogFile   string
	LogLevel  zerolog.Level
	Telemetry telemetry.Options
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Transition: DefaultTransition,
		LogFile:    DefaultLogFile,
		LogLevel:   zerolog.InfoLevel,
		Telemetry:  telemetry.Options{Dataset: "icebound"},
	}
}

// LoadConfig builds a Config from ICEBOUND_* and HONEYCOMB_ICEBOUND_*
// environment variables on top of DefaultConfig.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	cfg.LevelID = os.Getenv("ICEBOUND_LEVEL")
	cfg.LevelFile = os.Getenv("ICEBOUND_LEVEL_FILE")

	if v := os.Getenv("ICEBOUND_TRANSITION_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("ICEBOUND_TRANSITION_MS: %w", err)
		}
		if ms <= 0 {
			return cfg, fmt.Errorf("ICEBOUND_TRANSITION_MS: must be positive, got %d", ms)
		}
		cfg.Transition = time.Duration(ms) * time.Millisecond
	}

	if v := os.Getenv("ICEBOUND_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	if v := os.Getenv("ICEBOUND_LOG_LEVEL"); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("ICEBOUND_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}

	cfg.Telemetry.APIKey = os.Getenv("HONEYCOMB_ICEBOUND_API_KEY")
	if v := os.Getenv("HONEYCOMB_ICEBOUND_DATASET"); v != "" {
		cfg.Telemetry.Dataset = v
	}

	return cfg, nil
}
