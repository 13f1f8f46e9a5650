package gamify

import (
	"math"
	"time"

	"github.com/IKcoding-jp/coffeequiz/internal/question"
)

// XPInput describes one answer event for XP computation.
type XPInput struct {
	IsCorrect    bool
	Difficulty   question.Difficulty
	ResponseTime time.Duration

	// IsFirstTime is true only the first time this question is ever answered.
	IsFirstTime bool

	// ConsecutiveCorrect is the number of correct answers in a row within
	// the current session, before this answer.
	ConsecutiveCorrect int
}

// CalculateXP computes the XP awarded for one answer. Incorrect answers
// always earn the flat participation reward; every bonus and multiplier is
// correct-only.
func CalculateXP(cfg XPConfig, in XPInput) int {
	if !in.IsCorrect {
		return cfg.BaseIncorrect
	}

	mult, ok := cfg.DifficultyMultiplier[in.Difficulty]
	if !ok {
		mult = 1.0
	}
	base := float64(cfg.BaseCorrect) * mult

	speedBonus := 0
	switch {
	case in.ResponseTime < 5*time.Second:
		speedBonus = cfg.SpeedBonusFast
	case in.ResponseTime < 10*time.Second:
		speedBonus = cfg.SpeedBonusNormal
	}

	firstTimeBonus := 0
	if in.IsFirstTime {
		firstTimeBonus = cfg.FirstTimeBonus
	}

	consecutive := in.ConsecutiveCorrect
	if consecutive < 0 {
		consecutive = 0
	}
	streakMult := math.Min(1+float64(consecutive)*cfg.StreakStep, cfg.MaxStreakMultiplier)

	return int(math.Floor((base + float64(speedBonus) + float64(firstTimeBonus)) * streakMult))
}
