package session

import (
	"time"

	"github.com/IKcoding-jp/coffeequiz/internal/gamify"
)

// Summary captures a finished session for display.
type Summary struct {
	Mode      Mode
	Total     int
	Correct   int
	Incorrect int
	Accuracy  int
	XPEarned  int
	Duration  time.Duration

	Level         gamify.LevelInfo
	CurrentStreak int
	NewBadges     []gamify.BadgeType
}

// Summarize builds the end-of-session summary. Badges earned anywhere in
// the session are collected from the aggregate by award time.
func (s *Session) Summarize() Summary {
	sum := Summary{
		Mode:      s.Mode,
		Total:     s.Total(),
		Correct:   s.Correct,
		Incorrect: s.Incorrect,
		Accuracy:  s.Accuracy(),
		XPEarned:  s.XPEarned,
		Level:     s.progress.Level,
	}
	if !s.CompletedAt.IsZero() && !s.StartedAt.IsZero() {
		sum.Duration = s.CompletedAt.Sub(s.StartedAt)
	}
	sum.CurrentStreak = s.progress.Streak.CurrentStreak

	for _, b := range s.progress.Badges {
		if !s.StartedAt.IsZero() && !b.EarnedAt.Before(s.StartedAt) {
			sum.NewBadges = append(sum.NewBadges, b.Type)
		}
	}
	return sum
}
