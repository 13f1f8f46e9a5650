package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IKcoding-jp/coffeequiz/internal/question"
	"github.com/IKcoding-jp/coffeequiz/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().String("mode", string(session.ModeDaily), "Session mode: daily, random, category, review")
	playCmd.Flags().Int("count", 0, "Number of questions")
	playCmd.Flags().String("category", "", "Category for category mode: basics, roasting, brewing, history")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	modeStr, _ := cmd.Flags().GetString("mode")
	if modeStr == "" {
		modeStr = string(session.ModeDaily)
	}
	count, _ := cmd.Flags().GetInt("count")
	catStr, _ := cmd.Flags().GetString("category")

	opts := session.Options{Count: count}
	mode := session.Mode(modeStr)
	if mode == session.ModeCategory {
		cat := question.Category(catStr)
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q", catStr)
		}
		opts.Category = cat
	}

	sess := session.New(a.recorder, a.progress, a.clock, a.saver)
	sess.Start(mode, opts)

	if sess.Phase == session.PhaseComplete {
		fmt.Println("出題できる問題がありません。")
		return nil
	}

	in := bufio.NewScanner(os.Stdin)
	out := cmd.OutOrStdout()

	for sess.Phase == session.PhaseActive {
		q := sess.Current()
		fmt.Fprintf(out, "\n[%d/%d] %s (%s / %s)\n", sess.Index()+1, sess.Total(), q.Prompt, q.Category.Label(), q.Difficulty.Label())
		for _, o := range q.Options {
			fmt.Fprintf(out, "  %s) %s\n", o.ID, o.Text)
		}
		fmt.Fprint(out, "> ")

		if !in.Scan() {
			fmt.Fprintln(out, "\n中断しました。")
			return nil
		}
		answer := strings.TrimSpace(in.Text())
		if answer == "" {
			continue
		}
		if answer == "q" || answer == "quit" {
			fmt.Fprintln(out, "中断しました。")
			return nil
		}

		res, err := sess.SubmitAnswer(answer)
		if err != nil {
			return err
		}
		if res == nil {
			continue
		}

		if res.IsCorrect {
			fmt.Fprintf(out, "正解! +%d XP\n", res.XPEarned)
		} else {
			fmt.Fprintf(out, "不正解… 正解は %s。+%d XP\n", res.CorrectOption, res.XPEarned)
		}
		if res.Explanation != "" {
			fmt.Fprintln(out, res.Explanation)
		}
		if res.LeveledUp {
			fmt.Fprintf(out, "レベルアップ! Lv.%d\n", res.NewLevel)
		}
		for _, b := range res.NewBadges {
			fmt.Fprintf(out, "バッジ獲得: %s %s\n", b.Icon(), b.DisplayName())
		}
		fmt.Fprintf(out, "習熟度 %d%% / %s\n", res.Mastery, res.NextReview)

		sess.NextQuestion()
	}

	printSummary(out, sess.Summarize())
	return nil
}

func printSummary(out io.Writer, sum session.Summary) {
	fmt.Fprintln(out, "\n===== 結果 =====")
	fmt.Fprintf(out, "正解 %d / %d (%d%%)\n", sum.Correct, sum.Total, sum.Accuracy)
	fmt.Fprintf(out, "獲得XP %d  Lv.%d\n", sum.XPEarned, sum.Level.Level)
	fmt.Fprintf(out, "連続学習 %d日\n", sum.CurrentStreak)
	for _, b := range sum.NewBadges {
		fmt.Fprintf(out, "新バッジ: %s %s\n", b.Icon(), b.DisplayName())
	}
}
