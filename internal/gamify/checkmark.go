package gamify

import "time"

// maxChecks caps both check counters.
const maxChecks = 3

// Mark is the simplified per-question mastery heuristic, independent of
// the review scheduler. Blue checks accumulate on correct answers, red
// checks on incorrect ones; each answer first pays down the opposite color.
type Mark struct {
	QuestionID string    `json:"questionId"`
	BlueCheck  int       `json:"blueCheck"`
	RedCheck   int       `json:"redCheck"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OnCorrect applies a correct answer: a pending red check is cleared
// first, otherwise a blue check is added.
func OnCorrect(m Mark) Mark {
	if m.RedCheck > 0 {
		m.RedCheck--
	} else if m.BlueCheck < maxChecks {
		m.BlueCheck++
	}
	return clampMark(m)
}

// OnIncorrect applies an incorrect answer: a pending blue check is
// cleared first, otherwise a red check is added.
func OnIncorrect(m Mark) Mark {
	if m.BlueCheck > 0 {
		m.BlueCheck--
	} else if m.RedCheck < maxChecks {
		m.RedCheck++
	}
	return clampMark(m)
}

func clampMark(m Mark) Mark {
	if m.BlueCheck < 0 {
		m.BlueCheck = 0
	}
	if m.BlueCheck > maxChecks {
		m.BlueCheck = maxChecks
	}
	if m.RedCheck < 0 {
		m.RedCheck = 0
	}
	if m.RedCheck > maxChecks {
		m.RedCheck = maxChecks
	}
	return m
}

// UpdateMark applies one answer outcome to a mark and stamps it.
func UpdateMark(m Mark, isCorrect bool, now time.Time) Mark {
	if isCorrect {
		m = OnCorrect(m)
	} else {
		m = OnIncorrect(m)
	}
	m.UpdatedAt = now
	return m
}

// UpsertMarks finds the question's mark, creating a zeroed one if absent,
// applies the answer outcome, and returns a new slice.
func UpsertMarks(marks []Mark, questionID string, isCorrect bool, now time.Time) []Mark {
	out := make([]Mark, len(marks))
	copy(out, marks)

	for i := range out {
		if out[i].QuestionID == questionID {
			out[i] = UpdateMark(out[i], isCorrect, now)
			return out
		}
	}
	return append(out, UpdateMark(Mark{QuestionID: questionID}, isCorrect, now))
}
