package mastery

import (
	"time"

	"github.com/abhisek/mathcat/internal/skillgraph"
)

// PracticeResult is one scored attempt at a skill.
type PracticeResult struct {
	SkillID             string
	Correct             bool
	ResponseTimeSeconds float64
	Difficulty          float64
	Theta               float64
	StandardError       float64
	At                  time.Time
}

// RecordPractice folds one practice attempt into the learner's record and
// returns the resulting transition. Streak rules:
//
//   - correct answers extend the consecutive-correct streak, capped at
//     MaxStreak; an incorrect answer resets it to zero.
//   - a learning skill whose streak reaches MasteryStreak is promoted to
//     mastered.
//   - a needs-review skill whose streak reaches RecoveryStreak returns to
//     mastered.
func (m *Map) RecordPractice(res PracticeResult) Transition {
	var tr Transition
	m.apply(res.SkillID, func(r *Record) {
		tr.SkillID = r.SkillID
		tr.From = r.Status

		r.TotalAttempts++
		if res.Correct {
			r.CorrectCount++
			if r.ConsecutiveCorrect < MaxStreak {
				r.ConsecutiveCorrect++
			}
			r.Fluency.Streak++
		} else {
			r.ConsecutiveCorrect = 0
			r.Fluency.Streak = 0
		}
		if skill, err := skillgraph.GetSkill(res.SkillID); err == nil && res.ResponseTimeSeconds > 0 {
			RecordSpeed(&r.Fluency, SpeedScore(res.ResponseTimeSeconds, skill))
		}
		r.Theta = res.Theta
		r.StandardError = res.StandardError
		r.LastPracticed = res.At
		r.AppendAttempt(PracticeAttempt{
			At:            res.At,
			Theta:         res.Theta,
			StandardError: res.StandardError,
			Difficulty:    res.Difficulty,
			Correct:       res.Correct,
		})

		switch {
		case r.Status == StatusLearning && r.ConsecutiveCorrect >= MasteryStreak:
			r.Status = StatusMastered
			at := res.At
			r.MasteredAt = &at
			tr.Trigger = "streak-complete"
		case r.Status == StatusNeedsReview && r.ConsecutiveCorrect >= RecoveryStreak:
			r.Status = StatusMastered
			tr.Trigger = "recovery-complete"
		}

		tr.To = r.Status
	})
	return tr
}
