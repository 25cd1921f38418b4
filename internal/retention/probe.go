package retention

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/mathcat/internal/mastery"
)

// ErrNotMastered is returned when a probe result targets a skill that is
// not currently mastered.
var ErrNotMastered = errors.New("retention: skill is not mastered")

// Probe outcome reasons.
const (
	ReasonReinforced       = "reinforced"
	ReasonRetentionSlip    = "retention-slip"
	ReasonFlaggedForReview = "flagged-for-review"
)

// Outcome describes the effect of one retention probe.
type Outcome struct {
	SkillID   string
	Correct   bool
	Reason    string
	NewStreak int
	Status    mastery.Status
	Message   string // student-facing, from the resulting status
}

// ProcessResult folds a retention probe result into the mastery map.
// A correct probe reinforces the skill (+1 streak, capped); an incorrect
// probe costs two streak points, and a skill falling below the review
// threshold is flagged needs-review. Asymmetric on purpose: forgetting is
// stronger evidence than remembering.
func ProcessResult(m *mastery.Map, skillID string, correct bool, difficulty float64, now time.Time) (Outcome, error) {
	for {
		r, ok := m.Get(skillID)
		if !ok {
			return Outcome{}, fmt.Errorf("retention: skill %q: %w", skillID, ErrNotMastered)
		}
		if r.Status != mastery.StatusMastered {
			return Outcome{}, fmt.Errorf("retention: skill %q has status %s: %w", skillID, r.Status, ErrNotMastered)
		}

		out := Outcome{SkillID: skillID, Correct: correct}
		err := m.Update(skillID, r.Version, func(rec mastery.Record) mastery.Record {
			rec.LastPracticed = now
			rec.TotalAttempts++
			rec.AppendAttempt(mastery.PracticeAttempt{
				At:            now,
				Theta:         rec.Theta,
				StandardError: rec.StandardError,
				Difficulty:    difficulty,
				Correct:       correct,
			})
			if correct {
				rec.CorrectCount++
				if rec.ConsecutiveCorrect < mastery.MaxStreak {
					rec.ConsecutiveCorrect++
				}
				out.Reason = ReasonReinforced
			} else {
				rec.ConsecutiveCorrect -= 2
				if rec.ConsecutiveCorrect < 0 {
					rec.ConsecutiveCorrect = 0
				}
				if rec.ConsecutiveCorrect < mastery.ReviewThreshold {
					rec.Status = mastery.StatusNeedsReview
					out.Reason = ReasonFlaggedForReview
				} else {
					out.Reason = ReasonRetentionSlip
				}
			}
			out.NewStreak = rec.ConsecutiveCorrect
			out.Status = rec.Status
			out.Message = mastery.StatusMessage(rec.Status)
			return rec
		})
		if errors.Is(err, mastery.ErrConflict) {
			continue
		}
		if err != nil {
			return Outcome{}, err
		}
		return out, nil
	}
}
