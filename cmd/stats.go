package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IKcoding-jp/coffeequiz/internal/gamify"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		p := a.progress

		fmt.Fprintf(out, "Lv.%d  (totalXP %d", p.Level.Level, p.Level.TotalXP)
		if p.Level.XPToNextLevel > 0 {
			fmt.Fprintf(out, ", 次のレベルまで %d XP", p.Level.XPToNextLevel-p.Level.CurrentXP)
		}
		fmt.Fprintln(out, ")")

		fmt.Fprintf(out, "連続学習 %d日 (最長 %d日)\n", p.Streak.CurrentStreak, p.Streak.LongestStreak)
		if gamify.StreakAtRisk(p.Streak, a.clock.Today()) {
			fmt.Fprintln(out, "今日まだ学習していません。連続記録が途切れます!")
		}

		s := p.Stats
		fmt.Fprintf(out, "回答 %d問  正解 %d  不正解 %d  正答率 %d%%\n",
			s.TotalQuestions, s.TotalCorrect, s.TotalIncorrect, s.AverageAccuracy)

		goal := gamify.TodayGoal(p.DailyGoals, a.clock.Today(), p.Settings.DailyGoalTarget)
		fmt.Fprintf(out, "今日の目標 %d/%d問 (%d%%)\n", goal.Completed, goal.Target, gamify.GoalProgress(goal))

		fmt.Fprintln(out, "\nカテゴリ別:")
		for _, sum := range a.recorder.CategorySummaries(p) {
			cs := s.CategoryStats[sum.Category]
			fmt.Fprintf(out, "  %-8s 習熟度%3d%%  正答率%3d%% (%d問)\n",
				sum.Category.Label(), sum.AverageMastery, cs.Accuracy, cs.Total)
		}

		if len(p.Badges) > 0 {
			fmt.Fprintln(out, "\nバッジ:")
			for _, b := range p.Badges {
				fmt.Fprintf(out, "  %s %s  (%s)\n", b.Type.Icon(), b.Type.DisplayName(), b.EarnedAt.Format("2006-01-02"))
			}
		}
		return nil
	},
}
