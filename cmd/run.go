package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/trigbot/internal/app"
	"github.com/abhisek/trigbot/internal/problemgen"
	"github.com/abhisek/trigbot/internal/quiz"
)

// runApp resolves the config, opens the log, and launches the TUI.
func runApp(cmd *cobra.Command) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closer, err := quiz.OpenLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closer.Close()) }()

	logger.Info("starting", "version", version, "seeded", cfg.Seeded, "seed", cfg.Seed)

	return app.Run(app.Options{
		Source: problemgen.New(cfg.RNG(), problemgen.DefaultConfig()),
		Logger: logger,
	})
}
