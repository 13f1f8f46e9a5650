package gamify

import "github.com/IKcoding-jp/coffeequiz/internal/clock"

// StreakInfo tracks consecutive calendar days with at least one answer.
// LongestStreak is a high-water mark and never decreases.
type StreakInfo struct {
	CurrentStreak   int    `json:"currentStreak"`
	LongestStreak   int    `json:"longestStreak"`
	LastActiveDate  string `json:"lastActiveDate"`
	StreakStartDate string `json:"streakStartDate,omitempty"`
}

// NewStreakInfo returns the streak state of a learner with no activity.
func NewStreakInfo() StreakInfo {
	return StreakInfo{}
}

// UpdateStreak advances the streak for an answer event on the given day
// (YYYY-MM-DD). Calling it again the same day is a no-op; a one-day gap
// extends the streak; any longer gap restarts it at 1 while the longest
// streak is retained.
func UpdateStreak(s StreakInfo, today string) StreakInfo {
	if s.LastActiveDate == "" {
		longest := s.LongestStreak
		if longest < 1 {
			longest = 1
		}
		return StreakInfo{
			CurrentStreak:   1,
			LongestStreak:   longest,
			LastActiveDate:  today,
			StreakStartDate: today,
		}
	}

	if s.LastActiveDate == today {
		return s
	}

	if clock.DaysBetween(s.LastActiveDate, today) == 1 {
		current := s.CurrentStreak + 1
		longest := s.LongestStreak
		if current > longest {
			longest = current
		}
		start := s.StreakStartDate
		if start == "" {
			start = today
		}
		return StreakInfo{
			CurrentStreak:   current,
			LongestStreak:   longest,
			LastActiveDate:  today,
			StreakStartDate: start,
		}
	}

	return StreakInfo{
		CurrentStreak:   1,
		LongestStreak:   s.LongestStreak,
		LastActiveDate:  today,
		StreakStartDate: today,
	}
}

// StreakAtRisk reports whether the streak breaks unless the learner acts
// today: active exactly yesterday, nothing yet today.
func StreakAtRisk(s StreakInfo, today string) bool {
	if s.LastActiveDate == "" || s.CurrentStreak == 0 {
		return false
	}
	if s.LastActiveDate == today {
		return false
	}
	return clock.DaysBetween(s.LastActiveDate, today) == 1
}
