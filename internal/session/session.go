// Package session implements the quiz session state machine: question list
// selection per mode, answer submission, feedback, and completion.
package session

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/IKcoding-jp/coffeequiz/internal/clock"
	"github.com/IKcoding-jp/coffeequiz/internal/progress"
	"github.com/IKcoding-jp/coffeequiz/internal/question"
	"github.com/IKcoding-jp/coffeequiz/internal/srs"
)

// Mode selects how a session's question list is built.
type Mode string

const (
	ModeDaily      Mode = "daily"
	ModeRandom     Mode = "random"
	ModeCategory   Mode = "category"
	ModeReview     Mode = "review"
	ModeSingle     Mode = "single"
	ModeShuffle    Mode = "shuffle"
	ModeSequential Mode = "sequential"
)

// Phase is the session state machine's current state.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseLoading      Phase = "loading"
	PhaseActive       Phase = "active"
	PhaseAwaitingNext Phase = "awaiting_next"
	PhaseComplete     Phase = "complete"
)

// DefaultCount is the question count used when options don't set one.
const DefaultCount = 10

// Options tunes question selection at session start.
type Options struct {
	Count       int
	Category    question.Category
	QuestionIDs []string
}

// Sink receives each new progress snapshot after an answer is recorded.
// *progress.Saver satisfies it.
type Sink interface {
	Update(p *progress.Progress)
}

// Session runs one pass through an ordered question list. All methods are
// driven by user events; nothing here blocks or runs timers.
type Session struct {
	ID    string
	Mode  Mode
	Phase Phase

	Correct   int
	Incorrect int
	XPEarned  int

	StartedAt   time.Time
	CompletedAt time.Time

	recorder *progress.Recorder
	progress *progress.Progress
	clk      *clock.Clock
	sink     Sink

	questions          []question.Question
	index              int
	consecutiveCorrect int
	questionShownAt    time.Time
	lastResult         *progress.AnswerResult
}

// New creates an idle session over the learner's aggregate. sink may be
// nil when snapshots need no persistence.
func New(rec *progress.Recorder, p *progress.Progress, clk *clock.Clock, sink Sink) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Phase:    PhaseIdle,
		recorder: rec,
		progress: p,
		clk:      clk,
		sink:     sink,
	}
}

// Start builds the question list for the given mode and activates the
// session. An empty selection never fails: the session starts already
// complete with zero questions.
func (s *Session) Start(mode Mode, opts Options) {
	s.Reset()
	s.Mode = mode
	s.Phase = PhaseLoading

	now := s.clk.Now()
	count := opts.Count
	if count <= 0 {
		count = DefaultCount
	}

	var qs []question.Question
	switch mode {
	case ModeDaily:
		mastered := srs.MasteredSet(s.progress.Cards)
		qs = s.recorder.Bank.DailyMix(count, s.progress.Settings.EnabledCategories, mastered)
	case ModeRandom:
		qs = s.recorder.Bank.Random(count, nil, nil)
	case ModeCategory:
		qs = s.recorder.Bank.Random(count, []question.Category{opts.Category}, nil)
	case ModeReview:
		due := srs.SortByPriority(srs.DueCards(s.progress.Cards, now))
		ids := make([]string, 0, len(due))
		for _, c := range due {
			ids = append(ids, c.QuestionID)
		}
		if len(ids) > count {
			ids = ids[:count]
		}
		qs = s.recorder.Bank.ByIDs(ids)
	case ModeSingle:
		if len(opts.QuestionIDs) > 0 {
			qs = s.recorder.Bank.ByIDs(opts.QuestionIDs[:1])
		}
	case ModeSequential:
		qs = s.recorder.Bank.ByIDs(opts.QuestionIDs)
	case ModeShuffle:
		qs = s.recorder.Bank.ByIDs(opts.QuestionIDs)
		rand.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	}

	shuffled := make([]question.Question, len(qs))
	for i, q := range qs {
		shuffled[i] = s.recorder.Bank.ShuffleOptions(q)
	}
	s.questions = shuffled
	s.StartedAt = now

	if len(s.questions) == 0 {
		s.Phase = PhaseComplete
		s.CompletedAt = now
		return
	}
	s.Phase = PhaseActive
	s.questionShownAt = now
}

// Current returns the question on screen, or nil outside the active and
// feedback phases.
func (s *Session) Current() *question.Question {
	if s.Phase != PhaseActive && s.Phase != PhaseAwaitingNext {
		return nil
	}
	return &s.questions[s.index]
}

// Index returns the 0-based position of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the session's question count.
func (s *Session) Total() int { return len(s.questions) }

// LastResult returns the feedback for the most recent answer, or nil once
// the session has advanced past it.
func (s *Session) LastResult() *progress.AnswerResult {
	return s.lastResult
}

// SubmitAnswer scores the current question. While feedback is showing,
// repeated submissions are ignored and return nil. Timing runs from when
// the question was shown to this call.
func (s *Session) SubmitAnswer(optionID string) (*progress.AnswerResult, error) {
	if s.Phase != PhaseActive {
		return nil, nil
	}

	now := s.clk.Now()
	q := s.questions[s.index]
	answered := s.Correct + s.Incorrect

	correct := q.CorrectOption()
	isCorrect := correct != nil && correct.ID == optionID

	sessCorrect := s.Correct
	if isCorrect {
		sessCorrect++
	}

	res, err := s.recorder.RecordAnswer(s.progress, q.ID, optionID, now.Sub(s.questionShownAt), progress.SessionContext{
		Correct:            sessCorrect,
		Total:              answered + 1,
		Elapsed:            now.Sub(s.StartedAt),
		ConsecutiveCorrect: s.consecutiveCorrect,
	})
	if err != nil {
		return nil, err
	}

	if res.IsCorrect {
		s.Correct++
		s.consecutiveCorrect++
	} else {
		s.Incorrect++
		s.consecutiveCorrect = 0
	}
	s.XPEarned += res.XPEarned

	s.lastResult = &res
	s.Phase = PhaseAwaitingNext

	if s.sink != nil {
		s.sink.Update(s.progress)
	}
	return &res, nil
}

// NextQuestion clears feedback and advances, completing the session when
// the list is exhausted. It is a no-op unless feedback is showing.
func (s *Session) NextQuestion() {
	if s.Phase != PhaseAwaitingNext {
		return
	}
	s.lastResult = nil
	s.index++
	if s.index >= len(s.questions) {
		s.Phase = PhaseComplete
		s.CompletedAt = s.clk.Now()
		return
	}
	s.Phase = PhaseActive
	s.questionShownAt = s.clk.Now()
}

// Reset returns all session-local state to idle. The learner's aggregate
// is untouched.
func (s *Session) Reset() {
	s.Mode = ""
	s.Phase = PhaseIdle
	s.questions = nil
	s.index = 0
	s.Correct = 0
	s.Incorrect = 0
	s.XPEarned = 0
	s.consecutiveCorrect = 0
	s.StartedAt = time.Time{}
	s.CompletedAt = time.Time{}
	s.questionShownAt = time.Time{}
	s.lastResult = nil
}

// Accuracy returns session accuracy as a rounded percentage.
func (s *Session) Accuracy() int {
	answered := s.Correct + s.Incorrect
	if answered == 0 {
		return 0
	}
	return (s.Correct*100 + answered/2) / answered
}
