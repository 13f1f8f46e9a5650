package cmd

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/IKcoding-jp/coffeequiz/internal/question"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Show the loaded question pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, nil))
		bank := question.NewBank(questionFS(cmd, cfg), log)

		counts := bank.Counts()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "全%d問\n", counts.Total)
		for _, c := range question.AllCategories() {
			fmt.Fprintf(out, "  %-8s %d問\n", c.Label(), counts.ByCategory[c])
		}
		for _, d := range question.AllDifficulties() {
			fmt.Fprintf(out, "  %-8s %d問\n", d.Label(), counts.ByDifficulty[d])
		}
		return nil
	},
}

var questionsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate question files against the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		fsys := questionFS(cmd, cfg)
		out := cmd.OutOrStdout()

		failed := 0
		for _, cat := range question.AllCategories() {
			name := string(cat) + ".json"
			raw, err := fs.ReadFile(fsys, name)
			if err != nil {
				fmt.Fprintf(out, "%-16s MISSING (%v)\n", name, err)
				failed++
				continue
			}
			if err := question.ValidateFile(raw); err != nil {
				fmt.Fprintf(out, "%-16s INVALID: %v\n", name, err)
				failed++
				continue
			}
			fmt.Fprintf(out, "%-16s OK\n", name)
		}
		if failed > 0 {
			return fmt.Errorf("%d question file(s) failed validation", failed)
		}
		return nil
	},
}

func init() {
	questionsCmd.AddCommand(questionsValidateCmd)
}
