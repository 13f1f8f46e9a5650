package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/IKcoding-jp/coffeequiz/internal/clock"
	"github.com/IKcoding-jp/coffeequiz/internal/progress"
	"github.com/IKcoding-jp/coffeequiz/internal/question"
	"github.com/IKcoding-jp/coffeequiz/internal/srs"
	"github.com/IKcoding-jp/coffeequiz/internal/store"
	"github.com/IKcoding-jp/coffeequiz/questions"
)

// app bundles everything a command needs: the question bank, the learner's
// aggregate, the recorder, and the debounced saver.
type app struct {
	cfg      Config
	log      *slog.Logger
	store    *store.Store
	repo     *store.ProgressRepo
	bank     *question.Bank
	clock    *clock.Clock
	recorder *progress.Recorder
	progress *progress.Progress
	saver    *progress.Saver
}

// questionFS picks the question source: an explicit directory, or the
// embedded data.
func questionFS(cmd *cobra.Command, cfg Config) fs.FS {
	if dir, _ := cmd.Flags().GetString("questions"); dir != "" {
		return os.DirFS(dir)
	}
	if cfg.QuestionsDir != "" {
		return os.DirFS(cfg.QuestionsDir)
	}
	return questions.Files()
}

func resolveUserID(cmd *cobra.Command, cfg Config) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	return cfg.UserID
}

// openApp opens the store, loads (or creates) the learner's progress, and
// wires the answer pipeline. Callers must Close.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	clk := clock.NewOffset(cfg.DayOffset)
	bank := question.NewBank(questionFS(cmd, cfg), log)
	repo := st.ProgressRepo()
	userID := resolveUserID(cmd, cfg)

	p, err := repo.Load(cmd.Context(), userID)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if p == nil {
		p = progress.NewProgress(userID, clk.Now())
	}

	saver := progress.NewSaver(repo, userID, log)

	return &app{
		cfg:      cfg,
		log:      log,
		store:    st,
		repo:     repo,
		bank:     bank,
		clock:    clk,
		recorder: progress.NewRecorder(bank, srs.NewScheduler(srs.DefaultConfig()), clk),
		progress: p,
		saver:    saver,
	}, nil
}

// Close flushes any pending snapshot and closes the database.
func (a *app) Close() error {
	if err := a.saver.Flush(context.Background()); err != nil {
		a.log.Error("flush progress", "error", err)
	}
	return a.store.Close()
}
