package srs

import (
	"testing"
	"time"

	"github.com/IKcoding-jp/coffeequiz/internal/question"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestDetermineRating(t *testing.T) {
	cases := []struct {
		name         string
		correct      bool
		responseTime time.Duration
		want         Rating
	}{
		{"incorrect always again", false, time.Second, RatingAgain},
		{"incorrect slow still again", false, time.Minute, RatingAgain},
		{"fast correct", true, 3 * time.Second, RatingEasy},
		{"just under fast boundary", true, 4999 * time.Millisecond, RatingEasy},
		{"at fast boundary", true, 5 * time.Second, RatingGood},
		{"mid correct", true, 10 * time.Second, RatingGood},
		{"just under slow boundary", true, 14999 * time.Millisecond, RatingGood},
		{"at slow boundary", true, 15 * time.Second, RatingHard},
		{"very slow correct", true, time.Minute, RatingHard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetermineRating(tc.correct, tc.responseTime); got != tc.want {
				t.Errorf("DetermineRating(%v, %v) = %s, want %s", tc.correct, tc.responseTime, got, tc.want)
			}
		})
	}
}

func TestNewCard(t *testing.T) {
	c := NewCard("q1", testNow)
	if c.QuestionID != "q1" {
		t.Errorf("QuestionID = %q, want q1", c.QuestionID)
	}
	if !c.Due.Equal(testNow) {
		t.Errorf("Due = %v, want %v", c.Due, testNow)
	}
	if c.HasAnsweredCorrectly {
		t.Error("new card should not be marked answered correctly")
	}
}

func TestReview_PreservesIdentity(t *testing.T) {
	s := NewScheduler(DefaultConfig())
	card := NewCard("q1", testNow)
	card.HasAnsweredCorrectly = true

	res := s.Review(card, RatingGood, testNow)

	if res.Card.QuestionID != "q1" {
		t.Errorf("review lost question id: %q", res.Card.QuestionID)
	}
	if !res.Card.HasAnsweredCorrectly {
		t.Error("review lost correct-answer flag")
	}
	if res.Card.Reps != card.Reps+1 {
		t.Errorf("Reps = %d, want %d", res.Card.Reps, card.Reps+1)
	}
	if !res.Card.LastReview.Equal(testNow) {
		t.Errorf("LastReview = %v, want %v", res.Card.LastReview, testNow)
	}
}

func TestReview_ProducesAllCounterfactuals(t *testing.T) {
	s := NewScheduler(DefaultConfig())
	card := NewCard("q1", testNow)

	res := s.Review(card, RatingEasy, testNow)

	if len(res.Outcomes) != 4 {
		t.Fatalf("Outcomes has %d entries, want 4", len(res.Outcomes))
	}
	for _, r := range AllRatings() {
		out, ok := res.Outcomes[r]
		if !ok {
			t.Fatalf("missing counterfactual outcome for %s", r)
		}
		if out.QuestionID != "q1" {
			t.Errorf("outcome %s lost question id", r)
		}
	}
	// Easy schedules at least as far out as Again.
	if res.Outcomes[RatingEasy].Due.Before(res.Outcomes[RatingAgain].Due) {
		t.Error("easy outcome due before again outcome")
	}
}

func TestReview_Deterministic(t *testing.T) {
	s := NewScheduler(DefaultConfig())
	card := NewCard("q1", testNow)

	a := s.Review(card, RatingGood, testNow)
	b := s.Review(card, RatingGood, testNow)

	if !a.Card.Due.Equal(b.Card.Due) || a.Card.Stability != b.Card.Stability {
		t.Error("review is not deterministic for identical inputs")
	}
}

func TestDueCards(t *testing.T) {
	past := Card{QuestionID: "past"}
	past.Due = testNow.Add(-time.Hour)
	future := Card{QuestionID: "future"}
	future.Due = testNow.AddDate(0, 0, 1)
	unscheduled := Card{QuestionID: "unscheduled"}
	exact := Card{QuestionID: "exact"}
	exact.Due = testNow

	due := DueCards([]Card{past, future, unscheduled, exact}, testNow)

	got := make(map[string]bool)
	for _, c := range due {
		got[c.QuestionID] = true
	}
	for _, id := range []string{"past", "unscheduled", "exact"} {
		if !got[id] {
			t.Errorf("card %q should be due", id)
		}
	}
	if got["future"] {
		t.Error("future card should not be due")
	}
}

func TestSortByPriority(t *testing.T) {
	late := Card{QuestionID: "late"}
	late.Due = testNow.AddDate(0, 0, 5)
	early := Card{QuestionID: "early"}
	early.Due = testNow.AddDate(0, 0, 1)
	fresh := Card{QuestionID: "fresh"}

	input := []Card{late, early, fresh}
	sorted := SortByPriority(input)

	want := []string{"fresh", "early", "late"}
	for i, id := range want {
		if sorted[i].QuestionID != id {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].QuestionID, id)
		}
	}
	if input[0].QuestionID != "late" {
		t.Error("SortByPriority mutated its input")
	}
}

func TestNewCards(t *testing.T) {
	existing := []Card{NewCard("q1", testNow)}
	questions := []question.Question{{ID: "q1"}, {ID: "q2"}, {ID: "q3"}}

	got := NewCards(existing, questions, 5, testNow)
	if len(got) != 2 {
		t.Fatalf("NewCards returned %d, want 2", len(got))
	}
	if got[0].QuestionID != "q2" || got[1].QuestionID != "q3" {
		t.Errorf("NewCards = %v", got)
	}

	capped := NewCards(existing, questions, 1, testNow)
	if len(capped) != 1 {
		t.Errorf("NewCards with count 1 returned %d", len(capped))
	}
}

func TestMastery_ClampedLinear(t *testing.T) {
	cases := []struct {
		stability float64
		want      int
	}{
		{0, 0},
		{-5, 0},
		{15, 50},
		{30, 100},
		{60, 100},
		{3, 10},
	}
	for _, tc := range cases {
		c := Card{}
		c.Stability = tc.stability
		if got := Mastery(c); got != tc.want {
			t.Errorf("Mastery(stability=%v) = %d, want %d", tc.stability, got, tc.want)
		}
	}
}

func TestIsMastered(t *testing.T) {
	c := Card{}
	c.Stability = 29.9
	if IsMastered(c) {
		t.Error("stability below threshold should not be mastered")
	}
	c.Stability = 30
	if !IsMastered(c) {
		t.Error("stability at threshold should be mastered")
	}
}

func TestStateLabel(t *testing.T) {
	labelFor := func(due time.Time, scheduled bool) string {
		c := Card{}
		if scheduled {
			c.Due = due
		}
		return StateLabel(c, testNow)
	}

	if got := labelFor(time.Time{}, false); got != "未学習" {
		t.Errorf("unscheduled label = %q", got)
	}
	if got := labelFor(testNow.Add(-time.Hour), true); got != "復習可能" {
		t.Errorf("past-due label = %q", got)
	}
	if got := labelFor(testNow.Add(20*time.Hour), true); got != "明日復習" {
		t.Errorf("tomorrow label = %q", got)
	}
	if got := labelFor(testNow.AddDate(0, 0, 3), true); got != "3日後に復習" {
		t.Errorf("3-day label = %q", got)
	}
	if got := labelFor(testNow.AddDate(0, 0, 15), true); got != "2週間後に復習" {
		t.Errorf("2-week label = %q", got)
	}
}
