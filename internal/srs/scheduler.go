package srs

import (
	"fmt"
	"math"
	"sort"
	"time"

	fsrs "github.com/open-spaced-repetition/go-fsrs/v3"

	"github.com/IKcoding-jp/coffeequiz/internal/question"
)

// masteryStability is the stability (in days) at which a card counts as
// fully mastered.
const masteryStability = 30.0

// Config tunes the scheduling engine.
type Config struct {
	// RequestRetention is the target recall probability at review time.
	RequestRetention float64

	// MaximumInterval caps the scheduling interval in days.
	MaximumInterval float64
}

// DefaultConfig returns the engine tuning used in production.
func DefaultConfig() Config {
	return Config{
		RequestRetention: 0.9,
		MaximumInterval:  365,
	}
}

// Scheduler wraps the forgetting-curve engine. All scheduling math lives
// in the engine; this type only adapts cards in and out of it.
type Scheduler struct {
	engine *fsrs.FSRS
}

// NewScheduler creates a Scheduler with the given tuning.
func NewScheduler(cfg Config) *Scheduler {
	p := fsrs.DefaultParam()
	p.RequestRetention = cfg.RequestRetention
	p.MaximumInterval = cfg.MaximumInterval
	return &Scheduler{engine: fsrs.NewFSRS(p)}
}

// ReviewResult is the outcome of one review: the rescheduled card plus the
// counterfactual card state for every possible rating, all produced by the
// engine in a single deterministic pass against the same "now".
type ReviewResult struct {
	Card     Card
	Outcomes map[Rating]Card
}

// Review reschedules card for the given rating at time now. The card's
// question id and correct-answer flag are preserved across the engine
// transformation.
func (s *Scheduler) Review(card Card, rating Rating, now time.Time) ReviewResult {
	log := s.engine.Repeat(card.Card, now)

	outcomes := make(map[Rating]Card, len(log))
	for grade, info := range log {
		r, ok := ratingFromGrade(grade)
		if !ok {
			continue
		}
		outcomes[r] = Card{
			Card:                 info.Card,
			QuestionID:           card.QuestionID,
			HasAnsweredCorrectly: card.HasAnsweredCorrectly,
		}
	}

	return ReviewResult{Card: outcomes[rating], Outcomes: outcomes}
}

// DueCards returns the cards due for review at time now. Cards that have
// never been scheduled count as due.
func DueCards(cards []Card, now time.Time) []Card {
	var due []Card
	for _, c := range cards {
		if !c.HasDue() || !c.Due.After(now) {
			due = append(due, c)
		}
	}
	return due
}

// SortByPriority returns cards ordered by review priority: never-scheduled
// cards first, then ascending due date. The input slice is not mutated.
func SortByPriority(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case !a.HasDue() && b.HasDue():
			return true
		case a.HasDue() && !b.HasDue():
			return false
		case !a.HasDue() && !b.HasDue():
			return false
		}
		return a.Due.Before(b.Due)
	})
	return out
}

// NewCards creates initial cards for up to count questions that have no
// card yet, in question order.
func NewCards(cards []Card, questions []question.Question, count int, now time.Time) []Card {
	existing := make(map[string]bool, len(cards))
	for _, c := range cards {
		existing[c.QuestionID] = true
	}
	var out []Card
	for _, q := range questions {
		if len(out) >= count {
			break
		}
		if !existing[q.ID] {
			out = append(out, NewCard(q.ID, now))
		}
	}
	return out
}

// Mastery scores how well the card is retained, 0-100. The score is linear
// in the card's stability, with 30 days of stability mapping to 100.
func Mastery(card Card) int {
	if card.Stability <= 0 {
		return 0
	}
	m := card.Stability / masteryStability * 100
	if m > 100 {
		m = 100
	}
	return int(math.Round(m))
}

// IsMastered reports whether the card's stability has reached the mastery
// threshold.
func IsMastered(card Card) bool {
	return card.Stability >= masteryStability
}

// MasteredSet returns the ids of all mastered questions.
func MasteredSet(cards []Card) map[string]bool {
	set := make(map[string]bool)
	for _, c := range cards {
		if IsMastered(c) {
			set[c.QuestionID] = true
		}
	}
	return set
}

// StateLabel describes when the card can next be reviewed, for display.
func StateLabel(card Card, now time.Time) string {
	if !card.HasDue() {
		return "未学習"
	}
	if !card.Due.After(now) {
		return "復習可能"
	}

	days := int(math.Ceil(card.Due.Sub(now).Hours() / 24))
	switch {
	case days <= 1:
		return "明日復習"
	case days <= 7:
		return fmt.Sprintf("%d日後に復習", days)
	default:
		return fmt.Sprintf("%d週間後に復習", days/7)
	}
}
