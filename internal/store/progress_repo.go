package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/IKcoding-jp/coffeequiz/internal/progress"
)

// ProgressRepo stores one JSON snapshot row per user and notifies
// subscribers on every save, so a second consumer of the same database can
// be told about updates it didn't make itself.
type ProgressRepo struct {
	db *sql.DB

	mu   sync.Mutex
	subs []func(userID string, p *progress.Progress)
}

// ProgressRepo returns the snapshot repository backed by this store.
func (s *Store) ProgressRepo() *ProgressRepo {
	return &ProgressRepo{db: s.db}
}

// Load reads a user's snapshot. Absent rows are not an error: first use
// returns (nil, nil) and the caller creates initial progress.
func (r *ProgressRepo) Load(ctx context.Context, userID string) (*progress.Progress, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM quiz_progress WHERE user_id = ?", userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	var p progress.Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	return &p, nil
}

// Save upserts the user's snapshot row and notifies subscribers.
func (r *ProgressRepo) Save(ctx context.Context, userID string, p *progress.Progress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO quiz_progress (user_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		userID, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}

	r.notify(userID, p)
	return nil
}

// Subscribe registers a callback for snapshot writes.
func (r *ProgressRepo) Subscribe(fn func(userID string, p *progress.Progress)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, fn)
}

func (r *ProgressRepo) notify(userID string, p *progress.Progress) {
	r.mu.Lock()
	subs := append(([]func(string, *progress.Progress))(nil), r.subs...)
	r.mu.Unlock()

	for _, fn := range subs {
		fn(userID, p)
	}
}

// Delete removes a user's snapshot, for full progress resets.
func (r *ProgressRepo) Delete(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM quiz_progress WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	return nil
}
