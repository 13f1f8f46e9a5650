package gamify

import (
	"testing"
	"time"

	"github.com/IKcoding-jp/coffeequiz/internal/question"
)

func TestCalculateXP(t *testing.T) {
	cfg := DefaultXPConfig()

	cases := []struct {
		name string
		in   XPInput
		want int
	}{
		{
			name: "slow correct beginner no bonuses",
			in: XPInput{
				IsCorrect:    true,
				Difficulty:   question.DifficultyBeginner,
				ResponseTime: 15 * time.Second,
			},
			want: 10,
		},
		{
			name: "slow correct intermediate",
			in: XPInput{
				IsCorrect:    true,
				Difficulty:   question.DifficultyIntermediate,
				ResponseTime: 15 * time.Second,
			},
			want: 15,
		},
		{
			name: "slow correct advanced",
			in: XPInput{
				IsCorrect:    true,
				Difficulty:   question.DifficultyAdvanced,
				ResponseTime: 15 * time.Second,
			},
			want: 20,
		},
		{
			name: "incorrect ignores everything else",
			in: XPInput{
				IsCorrect:          false,
				Difficulty:         question.DifficultyAdvanced,
				ResponseTime:       time.Second,
				IsFirstTime:        true,
				ConsecutiveCorrect: 9,
			},
			want: 2,
		},
		{
			name: "fast correct gets large speed bonus",
			in: XPInput{
				IsCorrect:    true,
				Difficulty:   question.DifficultyBeginner,
				ResponseTime: 4 * time.Second,
			},
			want: 15,
		},
		{
			name: "medium speed gets small bonus",
			in: XPInput{
				IsCorrect:    true,
				Difficulty:   question.DifficultyBeginner,
				ResponseTime: 8 * time.Second,
			},
			want: 12,
		},
		{
			name: "ten seconds exactly gets no speed bonus",
			in: XPInput{
				IsCorrect:    true,
				Difficulty:   question.DifficultyBeginner,
				ResponseTime: 10 * time.Second,
			},
			want: 10,
		},
		{
			name: "first time bonus",
			in: XPInput{
				IsCorrect:    true,
				Difficulty:   question.DifficultyBeginner,
				ResponseTime: 15 * time.Second,
				IsFirstTime:  true,
			},
			want: 15,
		},
		{
			name: "streak multiplier floors",
			in: XPInput{
				IsCorrect:          true,
				Difficulty:         question.DifficultyIntermediate,
				ResponseTime:       15 * time.Second,
				ConsecutiveCorrect: 3,
			},
			// 15 * 1.3 = 19.5, floored
			want: 19,
		},
		{
			name: "streak multiplier caps at 2x",
			in: XPInput{
				IsCorrect:          true,
				Difficulty:         question.DifficultyBeginner,
				ResponseTime:       15 * time.Second,
				ConsecutiveCorrect: 50,
			},
			want: 20,
		},
		{
			name: "negative streak treated as zero",
			in: XPInput{
				IsCorrect:          true,
				Difficulty:         question.DifficultyBeginner,
				ResponseTime:       15 * time.Second,
				ConsecutiveCorrect: -4,
			},
			want: 10,
		},
		{
			name: "unknown difficulty uses base multiplier",
			in: XPInput{
				IsCorrect:    true,
				Difficulty:   question.Difficulty("expert"),
				ResponseTime: 15 * time.Second,
			},
			want: 10,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateXP(cfg, tc.in)
			if got != tc.want {
				t.Errorf("CalculateXP(%+v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestCalculateXPNeverNegative(t *testing.T) {
	cfg := DefaultXPConfig()
	in := XPInput{IsCorrect: true, ResponseTime: time.Minute}
	if got := CalculateXP(cfg, in); got < 0 {
		t.Errorf("CalculateXP returned negative XP %d", got)
	}
}
