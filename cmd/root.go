package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/trigbot/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "trigbot",
	Short: "Right-triangle trigonometry quiz",
	Long:  "Trig Bot shows a right triangle, names an angle and a side, and asks which equation gives the wanted side.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for reproducible rounds (overrides TRIGBOT_SEED env var)")
	rootCmd.PersistentFlags().String("log", "", "Append JSON logs to this file (overrides TRIGBOT_LOG env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Minimum log level: debug, info, warn or error (overrides TRIGBOT_LOG_LEVEL env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings from flags (highest priority), then the
// TRIGBOT_* env vars, then defaults.
func loadConfig(cmd *cobra.Command) (quiz.Config, error) {
	cfg := quiz.ConfigFromEnv()
	flags := cmd.Flags()

	if flags.Changed("seed") {
		seed, err := flags.GetUint64("seed")
		if err != nil {
			return cfg, err
		}
		cfg.Seed, cfg.Seeded = seed, true
	}
	if p, _ := flags.GetString("log"); p != "" {
		cfg.LogFile = p
	}
	if l, _ := flags.GetString("log-level"); l != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(l)); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
