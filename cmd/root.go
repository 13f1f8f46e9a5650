package cmd

import (
	"github.com/spf13/cobra"

	"github.com/IKcoding-jp/coffeequiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "coffeequiz",
	Short: "Coffee knowledge trainer",
	Long:  "Coffeequiz — a spaced-repetition quiz trainer for coffee knowledge: basics, roasting, brewing, and history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COFFEEQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("questions", "", "Directory of question files (overrides the embedded set)")
	rootCmd.PersistentFlags().String("user", "", "Learner id (overrides COFFEEQUIZ_USER env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then COFFEEQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
