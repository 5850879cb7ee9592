package quiz

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
)

// Config holds the process-level settings of a quiz session.
type Config struct {
	// Seed fixes the random source when Seeded is set, making rounds
	// reproducible.
	Seed   uint64
	Seeded bool

	// LogFile receives structured logs. Empty disables logging.
	LogFile string

	// LogLevel is the minimum level written to LogFile.
	LogLevel slog.Level
}

// DefaultConfig returns a Config with a random seed and logging disabled.
func DefaultConfig() Config {
	return Config{LogLevel: slog.LevelInfo}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset or unparsable values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if s := os.Getenv("TRIGBOT_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: ignoring TRIGBOT_SEED=%q: %v\n", s, err)
		} else {
			cfg.Seed, cfg.Seeded = seed, true
		}
	}

	if p := os.Getenv("TRIGBOT_LOG"); p != "" {
		cfg.LogFile = p
	}

	if l := os.Getenv("TRIGBOT_LOG_LEVEL"); l != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(l)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: ignoring TRIGBOT_LOG_LEVEL=%q: %v\n", l, err)
		} else {
			cfg.LogLevel = level
		}
	}

	return cfg
}

// RNG returns the random source for the session: seeded from Seed when
// Seeded is set, from the runtime's entropy otherwise.
func (c Config) RNG() *rand.Rand {
	seed := c.Seed
	if !c.Seeded {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
