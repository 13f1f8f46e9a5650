// Package question defines the quiz question model and the process-wide
// question bank that loads, caches, and samples question sets.
package question

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"sync"
)

// ErrUnknownQuestion reports a question id that is not in the loaded pool.
var ErrUnknownQuestion = errors.New("unknown question id")

// Bank loads per-category question files from a filesystem and answers
// lookup, filter, and sampling queries over the cached pool.
//
// Loading is a cacheable one-shot: the first call to load walks every
// category, concurrent callers share that single pass, and a failure in
// one category never blocks the others (logged and skipped).
type Bank struct {
	fsys fs.FS
	log  *slog.Logger
	rng  *rand.Rand

	once      sync.Once
	mu        sync.Mutex
	questions []Question
	byID      map[string]*Question
}

// NewBank creates a Bank reading question files from fsys. Each category
// is expected at "<category>.json" relative to the fsys root.
func NewBank(fsys fs.FS, log *slog.Logger) *Bank {
	if log == nil {
		log = slog.Default()
	}
	return &Bank{fsys: fsys, log: log}
}

// WithRand sets a deterministic random source, for tests.
func (b *Bank) WithRand(rng *rand.Rand) *Bank {
	b.rng = rng
	return b
}

// categoryPath returns the file path for a category's question set.
func categoryPath(c Category) string {
	return string(c) + ".json"
}

// load reads every category file once and caches the merged pool.
func (b *Bank) load() {
	b.once.Do(func() {
		var all []Question
		for _, cat := range AllCategories() {
			raw, err := fs.ReadFile(b.fsys, categoryPath(cat))
			if err != nil {
				b.log.Error("failed to read question file", "category", cat, "error", err)
				continue
			}
			if err := ValidateFile(raw); err != nil {
				b.log.Error("question file failed validation", "category", cat, "error", err)
				continue
			}
			var f File
			if err := json.Unmarshal(raw, &f); err != nil {
				b.log.Error("failed to parse question file", "category", cat, "error", err)
				continue
			}
			all = append(all, f.Questions...)
		}

		byID := make(map[string]*Question, len(all))
		for i := range all {
			byID[all[i].ID] = &all[i]
		}

		b.mu.Lock()
		b.questions = all
		b.byID = byID
		b.mu.Unlock()
	})
}

// All returns every loaded question. The returned slice is shared; callers
// must not mutate it.
func (b *Bank) All() []Question {
	b.load()
	return b.questions
}

// ByCategory returns the questions in the given category.
func (b *Bank) ByCategory(cat Category) []Question {
	var out []Question
	for _, q := range b.All() {
		if q.Category == cat {
			out = append(out, q)
		}
	}
	return out
}

// ByDifficulty returns the questions at the given difficulty.
func (b *Bank) ByDifficulty(d Difficulty) []Question {
	var out []Question
	for _, q := range b.All() {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out
}

// ByID returns the question with the given id, or nil if unknown.
func (b *Bank) ByID(id string) *Question {
	b.load()
	return b.byID[id]
}

// ByIDs resolves ids to questions, preserving input order. Unknown ids
// are dropped silently.
func (b *Bank) ByIDs(ids []string) []Question {
	b.load()
	out := make([]Question, 0, len(ids))
	for _, id := range ids {
		if q := b.byID[id]; q != nil {
			out = append(out, *q)
		}
	}
	return out
}

// Random returns count questions sampled uniformly without replacement,
// optionally restricted to categories and excluding excludeIDs. When count
// exceeds the filtered pool, the whole shuffled pool is returned.
func (b *Bank) Random(count int, categories []Category, excludeIDs []string) []Question {
	pool := b.All()

	if len(categories) > 0 {
		wanted := make(map[Category]bool, len(categories))
		for _, c := range categories {
			wanted[c] = true
		}
		filtered := make([]Question, 0, len(pool))
		for _, q := range pool {
			if wanted[q.Category] {
				filtered = append(filtered, q)
			}
		}
		pool = filtered
	}

	if len(excludeIDs) > 0 {
		excluded := make(map[string]bool, len(excludeIDs))
		for _, id := range excludeIDs {
			excluded[id] = true
		}
		filtered := make([]Question, 0, len(pool))
		for _, q := range pool {
			if !excluded[q.ID] {
				filtered = append(filtered, q)
			}
		}
		pool = filtered
	}

	shuffled := b.shuffle(pool)
	if count >= len(shuffled) {
		return shuffled
	}
	return shuffled[:count]
}

// DailyMix builds a balanced question set across categories, ceil-dividing
// count by the number of enabled categories. Within each category,
// questions not yet mastered are drawn first; mastered ones only fill the
// remainder when unmastered questions run out.
func (b *Bank) DailyMix(count int, enabled []Category, mastered map[string]bool) []Question {
	if count <= 0 {
		return nil
	}
	if len(enabled) == 0 {
		enabled = AllCategories()
	}
	perCategory := (count + len(enabled) - 1) / len(enabled)

	var selected []Question
	for _, cat := range enabled {
		pool := b.shuffle(b.ByCategory(cat))

		var fresh, known []Question
		for _, q := range pool {
			if mastered[q.ID] {
				known = append(known, q)
			} else {
				fresh = append(fresh, q)
			}
		}

		pick := fresh
		if len(pick) < perCategory {
			pick = append(pick, known...)
		}
		if len(pick) > perCategory {
			pick = pick[:perCategory]
		}
		selected = append(selected, pick...)
	}

	shuffled := b.shuffle(selected)
	if count >= len(shuffled) {
		return shuffled
	}
	return shuffled[:count]
}

// ShuffleOptions returns a copy of q with its options in random order.
// The input question is never mutated.
func (b *Bank) ShuffleOptions(q Question) Question {
	opts := make([]Option, len(q.Options))
	copy(opts, q.Options)
	b.shuffleOptions(opts)
	q.Options = opts
	return q
}

// Counts returns pool totals broken down by category and difficulty.
func (b *Bank) Counts() Counts {
	c := Counts{
		ByCategory:   make(map[Category]int, len(AllCategories())),
		ByDifficulty: make(map[Difficulty]int, len(AllDifficulties())),
	}
	for _, cat := range AllCategories() {
		c.ByCategory[cat] = 0
	}
	for _, d := range AllDifficulties() {
		c.ByDifficulty[d] = 0
	}
	for _, q := range b.All() {
		c.Total++
		c.ByCategory[q.Category]++
		c.ByDifficulty[q.Difficulty]++
	}
	return c
}

// shuffle returns a Fisher-Yates shuffled copy of qs.
func (b *Bank) shuffle(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if b.rng != nil {
		b.rng.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}
	return out
}

func (b *Bank) shuffleOptions(opts []Option) {
	swap := func(i, j int) { opts[i], opts[j] = opts[j], opts[i] }
	if b.rng != nil {
		b.rng.Shuffle(len(opts), swap)
	} else {
		rand.Shuffle(len(opts), swap)
	}
}
