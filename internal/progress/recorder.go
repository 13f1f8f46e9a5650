package progress

import (
	"fmt"
	"time"

	"github.com/IKcoding-jp/coffeequiz/internal/clock"
	"github.com/IKcoding-jp/coffeequiz/internal/gamify"
	"github.com/IKcoding-jp/coffeequiz/internal/question"
	"github.com/IKcoding-jp/coffeequiz/internal/srs"
)

// SessionContext carries the session-local tallies the badge rules need.
// Totals include the answer currently being recorded.
type SessionContext struct {
	Correct int
	Total   int
	Elapsed time.Duration

	// ConsecutiveCorrect is the in-session correct run before this answer.
	ConsecutiveCorrect int
}

// AnswerResult is the immutable outcome of one recorded answer.
type AnswerResult struct {
	QuestionID    string
	IsCorrect     bool
	CorrectOption string
	Explanation   string
	XPEarned      int
	LeveledUp     bool
	NewLevel      int
	NewBadges     []gamify.BadgeType
	StreakUpdated gamify.StreakInfo
	Mastery       int
	NextReview    string
}

// Recorder drives the full answer pipeline over a progress aggregate.
type Recorder struct {
	Bank      *question.Bank
	Scheduler *srs.Scheduler
	XP        gamify.XPConfig
	Levels    gamify.LevelConfig
	Clock     *clock.Clock
}

// NewRecorder wires a recorder with the default reward constants.
func NewRecorder(bank *question.Bank, sched *srs.Scheduler, clk *clock.Clock) *Recorder {
	return &Recorder{
		Bank:      bank,
		Scheduler: sched,
		XP:        gamify.DefaultXPConfig(),
		Levels:    gamify.DefaultLevelConfig(),
		Clock:     clk,
	}
}

// RecordAnswer scores one answer and folds it into the aggregate: card
// review, XP, level, streak, stats, daily goal, badges, and checkmark, in
// that order. The aggregate is mutated in place and restamped; the returned
// result describes what this single answer changed.
func (r *Recorder) RecordAnswer(p *Progress, questionID, optionID string, responseTime time.Duration, sess SessionContext) (AnswerResult, error) {
	q := r.Bank.ByID(questionID)
	if q == nil {
		return AnswerResult{}, fmt.Errorf("record answer: %w: %s", question.ErrUnknownQuestion, questionID)
	}

	now := r.Clock.Now()
	today := r.Clock.Today()

	correct := q.CorrectOption()
	isCorrect := correct != nil && correct.ID == optionID

	result := AnswerResult{
		QuestionID:  questionID,
		IsCorrect:   isCorrect,
		Explanation: q.Explanation,
	}
	if correct != nil {
		result.CorrectOption = correct.ID
	}

	card := p.CardFor(questionID)
	isFirstTime := card == nil || !card.HasAnsweredCorrectly
	wasMastered := card != nil && srs.IsMastered(*card)

	var prev srs.Card
	if card != nil {
		prev = *card
	} else {
		prev = srs.NewCard(questionID, now)
	}

	rating := srs.DetermineRating(isCorrect, responseTime)
	reviewed := r.Scheduler.Review(prev, rating, now)
	next := reviewed.Card
	if isCorrect {
		next.HasAnsweredCorrectly = true
	}
	if card != nil {
		*card = next
	} else {
		p.Cards = append(p.Cards, next)
	}
	result.Mastery = srs.Mastery(next)
	result.NextReview = srs.StateLabel(next, now)

	xp := gamify.CalculateXP(r.XP, gamify.XPInput{
		IsCorrect:          isCorrect,
		Difficulty:         q.Difficulty,
		ResponseTime:       responseTime,
		IsFirstTime:        isCorrect && isFirstTime,
		ConsecutiveCorrect: sess.ConsecutiveCorrect,
	})
	result.XPEarned = xp

	p.Level, result.LeveledUp, result.NewLevel = gamify.AddXP(r.Levels, p.Level, xp)

	p.Streak = gamify.UpdateStreak(p.Streak, today)
	result.StreakUpdated = p.Streak

	isNewlyMastered := !wasMastered && srs.IsMastered(next)
	p.Stats = gamify.UpdateStats(p.Stats, isCorrect, q.Category, q.Difficulty, isNewlyMastered, today)

	p.DailyGoals = gamify.UpdateDailyGoals(p.DailyGoals, isCorrect, xp, today, p.Settings.DailyGoalTarget)

	fresh := gamify.CheckNewBadges(gamify.BadgeContext{
		Streak:         p.Streak,
		Stats:          p.Stats,
		SessionCorrect: sess.Correct,
		SessionTotal:   sess.Total,
		SessionTime:    sess.Elapsed,
		Earned:         p.Badges,
		Now:            now,
	})
	p.Badges = gamify.EarnBadges(p.Badges, fresh, now)
	result.NewBadges = fresh

	p.Checkmarks = gamify.UpsertMarks(p.Checkmarks, questionID, isCorrect, now)

	p.UpdatedAt = now
	return result, nil
}

// CategorySummary describes the learner's standing in one category over
// the full question pool.
type CategorySummary struct {
	Category       question.Category
	Questions      int
	AverageMastery int
	MasteredCount  int
	CorrectlyKnown int
}

// summaryMasteryThreshold is the mastery score above which a question
// counts as known in the category summaries.
const summaryMasteryThreshold = 67

// CategorySummaries averages card mastery over every question in each
// category. Questions without a card count as mastery zero.
func (r *Recorder) CategorySummaries(p *Progress) []CategorySummary {
	out := make([]CategorySummary, 0, len(question.AllCategories()))
	for _, cat := range question.AllCategories() {
		qs := r.Bank.ByCategory(cat)
		s := CategorySummary{Category: cat, Questions: len(qs)}
		sum := 0
		for _, q := range qs {
			card := p.CardFor(q.ID)
			if card == nil {
				continue
			}
			m := srs.Mastery(*card)
			sum += m
			if m >= summaryMasteryThreshold {
				s.MasteredCount++
			}
			if card.HasAnsweredCorrectly {
				s.CorrectlyKnown++
			}
		}
		if len(qs) > 0 {
			s.AverageMastery = sum / len(qs)
		}
		out = append(out, s)
	}
	return out
}
