package gamify

import (
	"fmt"
	"testing"

	"github.com/IKcoding-jp/coffeequiz/internal/question"
)

func TestNewStatsHasAllBuckets(t *testing.T) {
	s := NewStats()
	for _, c := range question.AllCategories() {
		if _, ok := s.CategoryStats[c]; !ok {
			t.Errorf("missing category bucket %q", c)
		}
	}
	for _, d := range question.AllDifficulties() {
		if _, ok := s.DifficultyStats[d]; !ok {
			t.Errorf("missing difficulty bucket %q", d)
		}
	}
}

func TestUpdateStats(t *testing.T) {
	s := NewStats()
	s = UpdateStats(s, true, question.CategoryBasics, question.DifficultyBeginner, false, "2025-03-01")
	s = UpdateStats(s, true, question.CategoryBasics, question.DifficultyIntermediate, true, "2025-03-01")
	s = UpdateStats(s, false, question.CategoryRoasting, question.DifficultyBeginner, false, "2025-03-01")

	if s.TotalQuestions != 3 || s.TotalCorrect != 2 || s.TotalIncorrect != 1 {
		t.Errorf("totals: %d/%d/%d, want 3/2/1", s.TotalQuestions, s.TotalCorrect, s.TotalIncorrect)
	}
	if s.AverageAccuracy != 67 {
		t.Errorf("average accuracy = %d, want 67", s.AverageAccuracy)
	}

	basics := s.CategoryStats[question.CategoryBasics]
	if basics.Total != 2 || basics.Correct != 2 || basics.Accuracy != 100 {
		t.Errorf("basics stat: %+v", basics)
	}
	if basics.MasteredCount != 1 {
		t.Errorf("basics mastered = %d, want 1", basics.MasteredCount)
	}

	roasting := s.CategoryStats[question.CategoryRoasting]
	if roasting.Total != 1 || roasting.Correct != 0 || roasting.Accuracy != 0 {
		t.Errorf("roasting stat: %+v", roasting)
	}

	beginner := s.DifficultyStats[question.DifficultyBeginner]
	if beginner.Total != 2 || beginner.Correct != 1 || beginner.Accuracy != 50 {
		t.Errorf("beginner stat: %+v", beginner)
	}
}

func TestUpdateStatsDoesNotMutateInput(t *testing.T) {
	s := NewStats()
	s = UpdateStats(s, true, question.CategoryBasics, question.DifficultyBeginner, false, "2025-03-01")
	before := s.CategoryStats[question.CategoryBasics]
	beforeActivity := len(s.WeeklyActivity)

	UpdateStats(s, true, question.CategoryBasics, question.DifficultyBeginner, false, "2025-03-01")

	if s.CategoryStats[question.CategoryBasics] != before {
		t.Error("input category map was mutated")
	}
	if len(s.WeeklyActivity) != beforeActivity {
		t.Error("input activity slice was mutated")
	}
}

func TestWeeklyActivityUpsert(t *testing.T) {
	s := NewStats()
	s = UpdateStats(s, true, question.CategoryBasics, question.DifficultyBeginner, false, "2025-03-01")
	s = UpdateStats(s, false, question.CategoryBasics, question.DifficultyBeginner, false, "2025-03-01")

	if len(s.WeeklyActivity) != 1 {
		t.Fatalf("activity entries = %d, want 1", len(s.WeeklyActivity))
	}
	day := s.WeeklyActivity[0]
	if day.QuestionsAnswered != 2 || day.CorrectAnswers != 1 {
		t.Errorf("activity: %+v, want 2 answered 1 correct", day)
	}
}

func TestWeeklyActivityRetention(t *testing.T) {
	s := NewStats()
	for i := 1; i <= 8; i++ {
		day := fmt.Sprintf("2025-03-%02d", i)
		s = UpdateStats(s, true, question.CategoryBasics, question.DifficultyBeginner, false, day)
	}
	if len(s.WeeklyActivity) != RetentionDays {
		t.Fatalf("activity entries = %d, want %d", len(s.WeeklyActivity), RetentionDays)
	}
	if s.WeeklyActivity[0].Date != "2025-03-02" {
		t.Errorf("oldest entry %q, want 2025-03-02 after dropping day one", s.WeeklyActivity[0].Date)
	}
	if s.WeeklyActivity[len(s.WeeklyActivity)-1].Date != "2025-03-08" {
		t.Errorf("newest entry %q, want 2025-03-08", s.WeeklyActivity[len(s.WeeklyActivity)-1].Date)
	}
}
