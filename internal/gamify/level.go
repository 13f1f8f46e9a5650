package gamify

import "math"

// NoNextLevel is the XPForNextLevel sentinel at or above the max level:
// no amount of XP levels further.
const NoNextLevel = math.MaxInt

// LevelInfo is the learner's level state, derived entirely from TotalXP.
type LevelInfo struct {
	Level         int `json:"level"`
	CurrentXP     int `json:"currentXP"`
	TotalXP       int `json:"totalXP"`
	XPToNextLevel int `json:"xpToNextLevel"`
}

// NewLevelInfo returns the level state of a brand-new learner.
func NewLevelInfo(cfg LevelConfig) LevelInfo {
	return LevelFromTotalXP(cfg, 0)
}

// XPForNextLevel returns the XP needed to advance past the given level.
// The threshold grows polynomially and is strictly increasing; at or above
// the max level it returns NoNextLevel.
func XPForNextLevel(cfg LevelConfig, level int) int {
	if level >= cfg.MaxLevel {
		return NoNextLevel
	}
	base := float64(cfg.BaseXP)
	return int(math.Floor(base*math.Pow(float64(level), cfg.Exponent) + base*float64(level)))
}

// LevelFromTotalXP derives full level info from lifetime XP by greedily
// consuming level thresholds from level 1 up. Negative totals clamp to 0.
func LevelFromTotalXP(cfg LevelConfig, totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	xpUsed := 0
	for level < cfg.MaxLevel {
		need := XPForNextLevel(cfg, level)
		if xpUsed+need > totalXP {
			break
		}
		xpUsed += need
		level++
	}

	xpToNext := 0
	if level < cfg.MaxLevel {
		xpToNext = XPForNextLevel(cfg, level)
	}

	return LevelInfo{
		Level:         level,
		CurrentXP:     totalXP - xpUsed,
		TotalXP:       totalXP,
		XPToNextLevel: xpToNext,
	}
}

// AddXP recomputes level info after gaining XP and reports whether a
// level-up happened. Negative gains are clamped to zero.
func AddXP(cfg LevelConfig, info LevelInfo, gained int) (LevelInfo, bool, int) {
	if gained < 0 {
		gained = 0
	}
	updated := LevelFromTotalXP(cfg, info.TotalXP+gained)
	if updated.Level > info.Level {
		return updated, true, updated.Level
	}
	return updated, false, 0
}
