// Package gamify implements the reward layer: XP computation, the level
// ladder, day streaks, daily goals, lifetime statistics, badges, and the
// per-question checkmark heuristic. Everything here is pure computation
// over explicit inputs; dates and times always arrive as parameters.
package gamify

import "github.com/IKcoding-jp/coffeequiz/internal/question"

// XPConfig holds the XP reward constants.
type XPConfig struct {
	BaseCorrect   int
	BaseIncorrect int

	// DifficultyMultiplier scales the base reward for correct answers.
	DifficultyMultiplier map[question.Difficulty]float64

	SpeedBonusFast   int // answered in under 5 seconds
	SpeedBonusNormal int // answered in under 10 seconds

	// FirstTimeBonus is added the first time a question is ever answered.
	FirstTimeBonus int

	// StreakStep is the multiplier increment per consecutive correct answer.
	StreakStep float64

	// MaxStreakMultiplier caps the consecutive-correct multiplier.
	MaxStreakMultiplier float64
}

// DefaultXPConfig returns the production XP constants.
func DefaultXPConfig() XPConfig {
	return XPConfig{
		BaseCorrect:   10,
		BaseIncorrect: 2,
		DifficultyMultiplier: map[question.Difficulty]float64{
			question.DifficultyBeginner:     1.0,
			question.DifficultyIntermediate: 1.5,
			question.DifficultyAdvanced:     2.0,
		},
		SpeedBonusFast:      5,
		SpeedBonusNormal:    2,
		FirstTimeBonus:      5,
		StreakStep:          0.1,
		MaxStreakMultiplier: 2.0,
	}
}

// LevelConfig holds the level ladder constants.
type LevelConfig struct {
	BaseXP   int
	Exponent float64
	MaxLevel int
}

// DefaultLevelConfig returns the production level ladder.
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		BaseXP:   50,
		Exponent: 1.5,
		MaxLevel: 100,
	}
}

// RetentionDays is how many daily entries the goal and activity windows keep.
const RetentionDays = 7
