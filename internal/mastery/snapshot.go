package mastery

import "github.com/abhisek/mathcat/internal/store"

// Export converts the map to its persisted snapshot form.
func (m *Map) Export() *store.MasterySnapshotData {
	data := &store.MasterySnapshotData{
		Skills: make(map[string]*store.SkillMasteryData),
	}
	for _, r := range m.All() {
		history := make([]store.PracticeAttemptData, 0, len(r.History))
		for _, a := range r.History {
			history = append(history, store.PracticeAttemptData{
				At:            a.At,
				Theta:         a.Theta,
				StandardError: a.StandardError,
				Difficulty:    a.Difficulty,
				Correct:       a.Correct,
			})
		}
		data.Skills[r.SkillID] = &store.SkillMasteryData{
			SkillID:            r.SkillID,
			Status:             string(r.Status),
			Theta:              r.Theta,
			StandardError:      r.StandardError,
			ConsecutiveCorrect: r.ConsecutiveCorrect,
			TotalAttempts:      r.TotalAttempts,
			CorrectCount:       r.CorrectCount,
			LastPracticed:      r.LastPracticed,
			MasteredAt:         r.MasteredAt,
			SpeedScores:        append([]float64(nil), r.Fluency.SpeedScores...),
			Streak:             r.Fluency.Streak,
			History:            history,
		}
	}
	return data
}

// Load rebuilds a mastery map from snapshot data. A nil snapshot yields an
// empty map.
func Load(data *store.MasterySnapshotData) *Map {
	m := NewMap()
	if data == nil {
		return m
	}
	for id, sd := range data.Skills {
		if sd == nil {
			continue
		}
		fluency := DefaultFluencyMetrics()
		fluency.SpeedScores = append([]float64(nil), sd.SpeedScores...)
		fluency.Streak = sd.Streak
		history := make([]PracticeAttempt, 0, len(sd.History))
		for _, a := range sd.History {
			history = append(history, PracticeAttempt{
				At:            a.At,
				Theta:         a.Theta,
				StandardError: a.StandardError,
				Difficulty:    a.Difficulty,
				Correct:       a.Correct,
			})
		}
		m.Put(Record{
			SkillID:            id,
			Status:             Status(sd.Status),
			Theta:              sd.Theta,
			StandardError:      sd.StandardError,
			ConsecutiveCorrect: sd.ConsecutiveCorrect,
			TotalAttempts:      sd.TotalAttempts,
			CorrectCount:       sd.CorrectCount,
			LastPracticed:      sd.LastPracticed,
			MasteredAt:         sd.MasteredAt,
			Fluency:            fluency,
			History:            history,
		})
	}
	return m
}
