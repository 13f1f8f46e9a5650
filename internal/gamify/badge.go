package gamify

import (
	"time"

	"github.com/IKcoding-jp/coffeequiz/internal/question"
)

// BadgeType identifies one achievement.
type BadgeType string

const (
	BadgeFirstQuiz      BadgeType = "first_quiz"
	BadgeStreak3        BadgeType = "streak_3"
	BadgeStreak7        BadgeType = "streak_7"
	BadgeStreak30       BadgeType = "streak_30"
	BadgeStreak100      BadgeType = "streak_100"
	BadgeCorrect10      BadgeType = "correct_10"
	BadgeCorrect50      BadgeType = "correct_50"
	BadgeCorrect100     BadgeType = "correct_100"
	BadgeCorrect500     BadgeType = "correct_500"
	BadgeMasterBasics   BadgeType = "master_basics"
	BadgeMasterRoasting BadgeType = "master_roasting"
	BadgeMasterBrewing  BadgeType = "master_brewing"
	BadgeMasterHistory  BadgeType = "master_history"
	BadgePerfectSession BadgeType = "perfect_session"
	BadgeSpeedDemon     BadgeType = "speed_demon"
	BadgeEarlyBird      BadgeType = "early_bird"
	BadgeNightOwl       BadgeType = "night_owl"
)

// masteryBadgeThreshold is how many mastered questions a category needs
// before its mastery badge unlocks.
const masteryBadgeThreshold = 20

// EarnedBadge records when a badge was unlocked.
type EarnedBadge struct {
	Type     BadgeType `json:"type"`
	EarnedAt time.Time `json:"earnedAt"`
}

// BadgeContext carries everything the badge rules inspect.
type BadgeContext struct {
	Streak         StreakInfo
	Stats          Stats
	SessionCorrect int
	SessionTotal   int
	SessionTime    time.Duration
	Earned         []EarnedBadge
	Now            time.Time
}

// DisplayName returns the badge's user-facing name.
func (b BadgeType) DisplayName() string {
	switch b {
	case BadgeFirstQuiz:
		return "はじめの一歩"
	case BadgeStreak3:
		return "3日連続"
	case BadgeStreak7:
		return "1週間連続"
	case BadgeStreak30:
		return "1ヶ月連続"
	case BadgeStreak100:
		return "100日連続"
	case BadgeCorrect10:
		return "正解10問"
	case BadgeCorrect50:
		return "正解50問"
	case BadgeCorrect100:
		return "正解100問"
	case BadgeCorrect500:
		return "正解500問"
	case BadgeMasterBasics:
		return "基礎知識マスター"
	case BadgeMasterRoasting:
		return "焙煎理論マスター"
	case BadgeMasterBrewing:
		return "抽出理論マスター"
	case BadgeMasterHistory:
		return "歴史と文化マスター"
	case BadgePerfectSession:
		return "パーフェクト"
	case BadgeSpeedDemon:
		return "スピードマスター"
	case BadgeEarlyBird:
		return "早起き学習者"
	case BadgeNightOwl:
		return "夜ふかし学習者"
	}
	return string(b)
}

// Icon returns the badge's emoji.
func (b BadgeType) Icon() string {
	switch b {
	case BadgeFirstQuiz:
		return "🌱"
	case BadgeStreak3, BadgeStreak7, BadgeStreak30, BadgeStreak100:
		return "🔥"
	case BadgeCorrect10, BadgeCorrect50, BadgeCorrect100, BadgeCorrect500:
		return "✅"
	case BadgeMasterBasics, BadgeMasterRoasting, BadgeMasterBrewing, BadgeMasterHistory:
		return "☕"
	case BadgePerfectSession:
		return "💯"
	case BadgeSpeedDemon:
		return "⚡"
	case BadgeEarlyBird:
		return "🌅"
	case BadgeNightOwl:
		return "🦉"
	}
	return "🏅"
}

var masteryBadges = map[question.Category]BadgeType{
	question.CategoryBasics:   BadgeMasterBasics,
	question.CategoryRoasting: BadgeMasterRoasting,
	question.CategoryBrewing:  BadgeMasterBrewing,
	question.CategoryHistory:  BadgeMasterHistory,
}

// CheckNewBadges evaluates every badge rule against ctx and returns the
// badges newly earned, in declaration order. Already-earned badges are
// never returned again.
func CheckNewBadges(ctx BadgeContext) []BadgeType {
	earned := make(map[BadgeType]bool, len(ctx.Earned))
	for _, e := range ctx.Earned {
		earned[e.Type] = true
	}

	var fresh []BadgeType
	award := func(b BadgeType, ok bool) {
		if ok && !earned[b] {
			fresh = append(fresh, b)
		}
	}

	award(BadgeFirstQuiz, ctx.Stats.TotalQuestions >= 1)

	award(BadgeStreak3, ctx.Streak.CurrentStreak >= 3)
	award(BadgeStreak7, ctx.Streak.CurrentStreak >= 7)
	award(BadgeStreak30, ctx.Streak.CurrentStreak >= 30)
	award(BadgeStreak100, ctx.Streak.CurrentStreak >= 100)

	award(BadgeCorrect10, ctx.Stats.TotalCorrect >= 10)
	award(BadgeCorrect50, ctx.Stats.TotalCorrect >= 50)
	award(BadgeCorrect100, ctx.Stats.TotalCorrect >= 100)
	award(BadgeCorrect500, ctx.Stats.TotalCorrect >= 500)

	for _, c := range question.AllCategories() {
		award(masteryBadges[c], ctx.Stats.CategoryStats[c].MasteredCount >= masteryBadgeThreshold)
	}

	perfect := ctx.SessionTotal >= 10 && ctx.SessionCorrect == ctx.SessionTotal
	award(BadgePerfectSession, perfect)
	award(BadgeSpeedDemon, perfect && ctx.SessionTime > 0 && ctx.SessionTime < 2*time.Minute)

	award(BadgeEarlyBird, ctx.Now.Hour() < 6)
	award(BadgeNightOwl, ctx.Now.Hour() < 5)

	return fresh
}

// EarnBadges appends the given badges to the earned list with the award
// time, returning a new slice.
func EarnBadges(earned []EarnedBadge, fresh []BadgeType, now time.Time) []EarnedBadge {
	out := make([]EarnedBadge, len(earned), len(earned)+len(fresh))
	copy(out, earned)
	for _, b := range fresh {
		out = append(out, EarnedBadge{Type: b, EarnedAt: now})
	}
	return out
}
