package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-driven settings. Flags override these.
type Config struct {
	// DBPath overrides the default XDG database location.
	DBPath string `env:"COFFEEQUIZ_DB"`

	// QuestionsDir points at a directory of per-category question files,
	// replacing the embedded set.
	QuestionsDir string `env:"COFFEEQUIZ_QUESTIONS"`

	// UserID selects which learner's progress to use.
	UserID string `env:"COFFEEQUIZ_USER" envDefault:"default"`

	// DayOffset shifts every date computation by whole days, for testing
	// streaks and goals without waiting for midnight.
	DayOffset int `env:"COFFEEQUIZ_DAY_OFFSET"`
}

// LoadConfig reads settings from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
