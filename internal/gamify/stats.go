package gamify

import (
	"math"

	"github.com/IKcoding-jp/coffeequiz/internal/question"
)

// CategoryStat is the per-category accuracy breakdown.
type CategoryStat struct {
	Total         int `json:"total"`
	Correct       int `json:"correct"`
	Accuracy      int `json:"accuracy"`
	MasteredCount int `json:"masteredCount"`
}

// DifficultyStat is the per-difficulty accuracy breakdown.
type DifficultyStat struct {
	Total    int `json:"total"`
	Correct  int `json:"correct"`
	Accuracy int `json:"accuracy"`
}

// DayActivity is one day's entry in the rolling activity window.
type DayActivity struct {
	Date              string `json:"date"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
}

// Stats holds the learner's lifetime answer statistics.
type Stats struct {
	TotalQuestions  int                                    `json:"totalQuestions"`
	TotalCorrect    int                                    `json:"totalCorrect"`
	TotalIncorrect  int                                    `json:"totalIncorrect"`
	AverageAccuracy int                                    `json:"averageAccuracy"`
	CategoryStats   map[question.Category]CategoryStat     `json:"categoryStats"`
	DifficultyStats map[question.Difficulty]DifficultyStat `json:"difficultyStats"`
	WeeklyActivity  []DayActivity                          `json:"weeklyActivity"`
}

// NewStats returns zeroed stats with every category and difficulty present.
func NewStats() Stats {
	s := Stats{
		CategoryStats:   make(map[question.Category]CategoryStat, len(question.AllCategories())),
		DifficultyStats: make(map[question.Difficulty]DifficultyStat, len(question.AllDifficulties())),
	}
	for _, c := range question.AllCategories() {
		s.CategoryStats[c] = CategoryStat{}
	}
	for _, d := range question.AllDifficulties() {
		s.DifficultyStats[d] = DifficultyStat{}
	}
	return s
}

// roundedPercent returns part/total as a rounded percentage, 0 for an
// empty total.
func roundedPercent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// UpdateStats folds one answer event into the stats, returning a new value.
// The input stats are never mutated. isNewlyMastered increments the
// category's mastered count; today (YYYY-MM-DD) buckets the activity entry.
func UpdateStats(s Stats, isCorrect bool, cat question.Category, diff question.Difficulty, isNewlyMastered bool, today string) Stats {
	out := Stats{
		TotalQuestions:  s.TotalQuestions + 1,
		TotalCorrect:    s.TotalCorrect,
		TotalIncorrect:  s.TotalIncorrect,
		CategoryStats:   make(map[question.Category]CategoryStat, len(s.CategoryStats)),
		DifficultyStats: make(map[question.Difficulty]DifficultyStat, len(s.DifficultyStats)),
	}
	for k, v := range s.CategoryStats {
		out.CategoryStats[k] = v
	}
	for k, v := range s.DifficultyStats {
		out.DifficultyStats[k] = v
	}
	if isCorrect {
		out.TotalCorrect++
	} else {
		out.TotalIncorrect++
	}
	out.AverageAccuracy = roundedPercent(out.TotalCorrect, out.TotalQuestions)

	cs := out.CategoryStats[cat]
	cs.Total++
	if isCorrect {
		cs.Correct++
	}
	cs.Accuracy = roundedPercent(cs.Correct, cs.Total)
	if isNewlyMastered {
		cs.MasteredCount++
	}
	out.CategoryStats[cat] = cs

	ds := out.DifficultyStats[diff]
	ds.Total++
	if isCorrect {
		ds.Correct++
	}
	ds.Accuracy = roundedPercent(ds.Correct, ds.Total)
	out.DifficultyStats[diff] = ds

	out.WeeklyActivity = upsertActivity(s.WeeklyActivity, isCorrect, today)
	return out
}

// upsertActivity increments today's activity entry, creating it with
// 7-day retention when absent.
func upsertActivity(activity []DayActivity, isCorrect bool, today string) []DayActivity {
	out := make([]DayActivity, len(activity))
	copy(out, activity)

	for i := range out {
		if out[i].Date == today {
			out[i].QuestionsAnswered++
			if isCorrect {
				out[i].CorrectAnswers++
			}
			return out
		}
	}

	if len(out) >= RetentionDays {
		out = out[len(out)-(RetentionDays-1):]
	}
	entry := DayActivity{Date: today, QuestionsAnswered: 1}
	if isCorrect {
		entry.CorrectAnswers = 1
	}
	return append(out, entry)
}
