// Package srs owns per-question review cards and wraps the external
// forgetting-curve engine behind a narrow, swappable surface.
package srs

import (
	"time"

	fsrs "github.com/open-spaced-repetition/go-fsrs/v3"
)

// Card is the spaced-repetition bookkeeping record for one question.
// It embeds the engine's card so scheduler-internal state (stability,
// difficulty, repetitions, lapses, due date) round-trips through
// persistence untouched.
type Card struct {
	fsrs.Card
	QuestionID string `json:"questionId"`

	// HasAnsweredCorrectly is set the first time the question is answered
	// correctly and never cleared afterwards.
	HasAnsweredCorrectly bool `json:"hasAnsweredCorrectly,omitempty"`
}

// NewCard creates the initial card for a question. The card starts in the
// "new" state with its due date at now.
func NewCard(questionID string, now time.Time) Card {
	c := fsrs.NewCard()
	c.Due = now
	return Card{Card: c, QuestionID: questionID}
}

// HasDue reports whether the card has ever been scheduled. A card with a
// zero due date has not been studied yet.
func (c Card) HasDue() bool {
	return !c.Due.IsZero()
}

// Rating is the review grade derived from an answer, fed to the engine.
type Rating string

const (
	RatingAgain Rating = "again"
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// AllRatings returns every rating in ascending grade order.
func AllRatings() []Rating {
	return []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}
}

// grade converts the rating to the engine's grade value.
func (r Rating) grade() fsrs.Rating {
	switch r {
	case RatingAgain:
		return fsrs.Again
	case RatingHard:
		return fsrs.Hard
	case RatingEasy:
		return fsrs.Easy
	default:
		return fsrs.Good
	}
}

// ratingFromGrade converts an engine grade back to a Rating.
func ratingFromGrade(g fsrs.Rating) (Rating, bool) {
	switch g {
	case fsrs.Again:
		return RatingAgain, true
	case fsrs.Hard:
		return RatingHard, true
	case fsrs.Good:
		return RatingGood, true
	case fsrs.Easy:
		return RatingEasy, true
	}
	return "", false
}

// DetermineRating maps an answer outcome to a review rating. An incorrect
// answer is always "again"; correct answers grade by response time, with
// each bucket's lower bound inclusive.
func DetermineRating(isCorrect bool, responseTime time.Duration) Rating {
	if !isCorrect {
		return RatingAgain
	}
	switch {
	case responseTime < 5*time.Second:
		return RatingEasy
	case responseTime < 15*time.Second:
		return RatingGood
	default:
		return RatingHard
	}
}
