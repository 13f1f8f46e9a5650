// Package progress owns the persisted per-learner aggregate: review cards,
// checkmarks, streak, level, badges, daily goals, stats, and settings. One
// snapshot per learner, always written whole.
package progress

import (
	"time"

	"github.com/IKcoding-jp/coffeequiz/internal/gamify"
	"github.com/IKcoding-jp/coffeequiz/internal/question"
	"github.com/IKcoding-jp/coffeequiz/internal/srs"
)

// Settings holds the learner-tunable knobs.
type Settings struct {
	DailyGoalTarget      int                 `json:"dailyGoalTarget"`
	EnabledCategories    []question.Category `json:"enabledCategories"`
	NotificationsEnabled bool                `json:"notificationsEnabled"`
}

// DefaultSettings enables every category with the default daily target.
func DefaultSettings() Settings {
	return Settings{
		DailyGoalTarget:      gamify.DefaultDailyTarget,
		EnabledCategories:    question.AllCategories(),
		NotificationsEnabled: true,
	}
}

// Progress is the aggregate root persisted per learner. Every answer event
// produces a new snapshot; it is never partially written.
type Progress struct {
	UserID     string               `json:"userId"`
	Cards      []srs.Card           `json:"reviewCards"`
	Checkmarks []gamify.Mark        `json:"checkmarks"`
	Streak     gamify.StreakInfo    `json:"streak"`
	Level      gamify.LevelInfo     `json:"level"`
	Badges     []gamify.EarnedBadge `json:"earnedBadges"`
	DailyGoals []gamify.DailyGoal   `json:"dailyGoals"`
	Settings   Settings             `json:"settings"`
	Stats      gamify.Stats         `json:"stats"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// NewProgress returns the initial aggregate for a learner's first use.
func NewProgress(userID string, now time.Time) *Progress {
	return &Progress{
		UserID:    userID,
		Streak:    gamify.NewStreakInfo(),
		Level:     gamify.NewLevelInfo(gamify.DefaultLevelConfig()),
		Settings:  DefaultSettings(),
		Stats:     gamify.NewStats(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateSettings replaces the settings and stamps the snapshot.
func (p *Progress) UpdateSettings(s Settings, now time.Time) {
	if s.DailyGoalTarget <= 0 {
		s.DailyGoalTarget = gamify.DefaultDailyTarget
	}
	if len(s.EnabledCategories) == 0 {
		s.EnabledCategories = question.AllCategories()
	}
	p.Settings = s
	p.UpdatedAt = now
}

// Reset wipes all learned state while keeping the user identity, settings,
// and creation time.
func (p *Progress) Reset(now time.Time) {
	p.Cards = nil
	p.Checkmarks = nil
	p.Streak = gamify.NewStreakInfo()
	p.Level = gamify.NewLevelInfo(gamify.DefaultLevelConfig())
	p.Badges = nil
	p.DailyGoals = nil
	p.Stats = gamify.NewStats()
	p.UpdatedAt = now
}

// CardFor returns the review card for a question, or nil when the question
// has never been answered.
func (p *Progress) CardFor(questionID string) *srs.Card {
	for i := range p.Cards {
		if p.Cards[i].QuestionID == questionID {
			return &p.Cards[i]
		}
	}
	return nil
}

// Clone deep-copies the aggregate so a snapshot can be handed to the saver
// while the live state keeps mutating.
func (p *Progress) Clone() *Progress {
	out := *p
	out.Cards = append([]srs.Card(nil), p.Cards...)
	out.Checkmarks = append([]gamify.Mark(nil), p.Checkmarks...)
	out.Badges = append([]gamify.EarnedBadge(nil), p.Badges...)
	out.DailyGoals = append([]gamify.DailyGoal(nil), p.DailyGoals...)
	out.Settings.EnabledCategories = append([]question.Category(nil), p.Settings.EnabledCategories...)

	out.Stats.CategoryStats = make(map[question.Category]gamify.CategoryStat, len(p.Stats.CategoryStats))
	for k, v := range p.Stats.CategoryStats {
		out.Stats.CategoryStats[k] = v
	}
	out.Stats.DifficultyStats = make(map[question.Difficulty]gamify.DifficultyStat, len(p.Stats.DifficultyStats))
	for k, v := range p.Stats.DifficultyStats {
		out.Stats.DifficultyStats[k] = v
	}
	out.Stats.WeeklyActivity = append([]gamify.DayActivity(nil), p.Stats.WeeklyActivity...)
	return &out
}
