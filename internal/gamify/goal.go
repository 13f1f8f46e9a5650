package gamify

// DailyGoal tracks one day's progress toward the answered-question target.
type DailyGoal struct {
	Date      string `json:"date"`
	Target    int    `json:"targetQuestions"`
	Completed int    `json:"completedQuestions"`
	Correct   int    `json:"correctAnswers"`
	XPEarned  int    `json:"xpEarned"`
	Achieved  bool   `json:"achieved"`
}

// DefaultDailyTarget is the question count used when no target is configured.
const DefaultDailyTarget = 10

// UpdateDailyGoals records one answered question against today's goal,
// creating the entry if absent. Only the most recent seven days are kept.
func UpdateDailyGoals(goals []DailyGoal, isCorrect bool, xpEarned int, today string, target int) []DailyGoal {
	if target <= 0 {
		target = DefaultDailyTarget
	}
	out := make([]DailyGoal, len(goals))
	copy(out, goals)

	for i := range out {
		if out[i].Date == today {
			out[i].Completed++
			if isCorrect {
				out[i].Correct++
			}
			out[i].XPEarned += xpEarned
			out[i].Achieved = out[i].Completed >= out[i].Target
			return out
		}
	}

	if len(out) >= RetentionDays {
		out = out[len(out)-(RetentionDays-1):]
	}
	g := DailyGoal{Date: today, Target: target, Completed: 1, XPEarned: xpEarned}
	if isCorrect {
		g.Correct = 1
	}
	g.Achieved = g.Completed >= g.Target
	return append(out, g)
}

// TodayGoal returns today's goal entry, or a zero-progress goal with the
// given target when no entry exists yet.
func TodayGoal(goals []DailyGoal, today string, target int) DailyGoal {
	if target <= 0 {
		target = DefaultDailyTarget
	}
	for _, g := range goals {
		if g.Date == today {
			return g
		}
	}
	return DailyGoal{Date: today, Target: target}
}

// GoalProgress returns completion as a percentage capped at 100. A goal
// with no positive target reports 100 once anything is completed.
func GoalProgress(g DailyGoal) int {
	if g.Target <= 0 {
		if g.Completed > 0 {
			return 100
		}
		return 0
	}
	p := g.Completed * 100 / g.Target
	if p > 100 {
		p = 100
	}
	return p
}
