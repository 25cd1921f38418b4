package mastery

import (
	"errors"
	"sync"
	"testing"
	"time"
)

var practiceTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func correctAttempt(skillID string) PracticeResult {
	return PracticeResult{
		SkillID:             skillID,
		Correct:             true,
		ResponseTimeSeconds: 8,
		Theta:               0.5,
		StandardError:       0.4,
		At:                  practiceTime,
	}
}

func TestRecordPractice_CreatesLearningRecord(t *testing.T) {
	m := NewMap()
	tr := m.RecordPractice(correctAttempt("fractions-operations"))
	if tr.From != StatusLearning || tr.To != StatusLearning {
		t.Errorf("transition = %+v, want learning -> learning", tr)
	}

	r, ok := m.Get("fractions-operations")
	if !ok {
		t.Fatal("record not created")
	}
	if r.ConsecutiveCorrect != 1 || r.TotalAttempts != 1 || r.CorrectCount != 1 {
		t.Errorf("counters wrong: %+v", r)
	}
	if !r.LastPracticed.Equal(practiceTime) {
		t.Errorf("LastPracticed = %v, want %v", r.LastPracticed, practiceTime)
	}
}

func TestRecordPractice_PromotionAtStreak(t *testing.T) {
	m := NewMap()
	var tr Transition
	for i := 0; i < MasteryStreak; i++ {
		tr = m.RecordPractice(correctAttempt("fractions-operations"))
	}
	if !tr.Changed() || tr.To != StatusMastered || tr.Trigger != "streak-complete" {
		t.Fatalf("expected promotion on attempt %d, got %+v", MasteryStreak, tr)
	}
	r, _ := m.Get("fractions-operations")
	if r.MasteredAt == nil || !r.MasteredAt.Equal(practiceTime) {
		t.Errorf("MasteredAt not set: %+v", r)
	}
}

func TestRecordPractice_IncorrectResetsStreak(t *testing.T) {
	m := NewMap()
	for i := 0; i < 3; i++ {
		m.RecordPractice(correctAttempt("percentages"))
	}
	wrong := correctAttempt("percentages")
	wrong.Correct = false
	m.RecordPractice(wrong)

	r, _ := m.Get("percentages")
	if r.ConsecutiveCorrect != 0 {
		t.Errorf("streak = %d, want 0 after incorrect", r.ConsecutiveCorrect)
	}
	if r.Status != StatusLearning {
		t.Errorf("status = %s, want learning", r.Status)
	}
}

func TestRecordPractice_StreakCapped(t *testing.T) {
	m := NewMap()
	for i := 0; i < MaxStreak+4; i++ {
		m.RecordPractice(correctAttempt("percentages"))
	}
	r, _ := m.Get("percentages")
	if r.ConsecutiveCorrect != MaxStreak {
		t.Errorf("streak = %d, want cap %d", r.ConsecutiveCorrect, MaxStreak)
	}
}

func TestRecordPractice_RecoveryFromNeedsReview(t *testing.T) {
	m := NewMap()
	m.Put(Record{
		SkillID: "linear-equations",
		Status:  StatusNeedsReview,
		Fluency: DefaultFluencyMetrics(),
	})

	var tr Transition
	for i := 0; i < RecoveryStreak; i++ {
		tr = m.RecordPractice(correctAttempt("linear-equations"))
	}
	if tr.From != StatusNeedsReview || tr.To != StatusMastered || tr.Trigger != "recovery-complete" {
		t.Fatalf("expected recovery transition, got %+v", tr)
	}
}

func TestPracticeHistory_AppendsInOrder(t *testing.T) {
	m := NewMap()
	for i := 0; i < 3; i++ {
		res := correctAttempt("fractions-operations")
		res.Difficulty = float64(i) * 0.1
		res.Correct = i != 1
		res.At = practiceTime.Add(time.Duration(i) * time.Minute)
		m.RecordPractice(res)
	}

	r, _ := m.Get("fractions-operations")
	if len(r.History) != 3 {
		t.Fatalf("history length = %d, want 3", len(r.History))
	}
	for i, a := range r.History {
		if a.Difficulty != float64(i)*0.1 {
			t.Errorf("attempt %d difficulty = %v, want %v", i, a.Difficulty, float64(i)*0.1)
		}
		if !a.At.Equal(practiceTime.Add(time.Duration(i) * time.Minute)) {
			t.Errorf("attempt %d timestamp out of order: %v", i, a.At)
		}
	}
	if r.History[1].Correct {
		t.Error("attempt 1 should be recorded as incorrect")
	}
	if r.History[0].Theta != 0.5 || r.History[0].StandardError != 0.4 {
		t.Errorf("attempt 0 estimate = (%v, %v), want (0.5, 0.4)",
			r.History[0].Theta, r.History[0].StandardError)
	}
}

func TestPracticeHistory_Bounded(t *testing.T) {
	m := NewMap()
	total := MaxHistoryAttempts + 10
	for i := 0; i < total; i++ {
		res := correctAttempt("percentages")
		res.Difficulty = float64(i)
		m.RecordPractice(res)
	}

	r, _ := m.Get("percentages")
	if len(r.History) != MaxHistoryAttempts {
		t.Fatalf("history length = %d, want %d", len(r.History), MaxHistoryAttempts)
	}
	// Oldest entries are evicted first.
	if r.History[0].Difficulty != float64(total-MaxHistoryAttempts) {
		t.Errorf("oldest kept attempt = %v, want %v",
			r.History[0].Difficulty, float64(total-MaxHistoryAttempts))
	}
	if r.History[len(r.History)-1].Difficulty != float64(total-1) {
		t.Errorf("newest attempt = %v, want %v",
			r.History[len(r.History)-1].Difficulty, float64(total-1))
	}
}

func TestUpdate_VersionConflict(t *testing.T) {
	m := NewMap()
	m.Put(Record{SkillID: "percentages", Status: StatusMastered})

	r, _ := m.Get("percentages")
	err := m.Update("percentages", r.Version, func(rec Record) Record {
		rec.ConsecutiveCorrect = 3
		return rec
	})
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	// Same stale version again must conflict.
	err = m.Update("percentages", r.Version, func(rec Record) Record { return rec })
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Retry after re-read succeeds.
	r2, _ := m.Get("percentages")
	if err := m.Update("percentages", r2.Version, func(rec Record) Record { return rec }); err != nil {
		t.Fatalf("retry after re-read failed: %v", err)
	}
}

func TestUpdate_UnknownSkill(t *testing.T) {
	m := NewMap()
	if err := m.Update("ghost", 0, func(rec Record) Record { return rec }); err == nil {
		t.Fatal("expected error for unknown skill")
	}
}

func TestConcurrentPracticeCounts(t *testing.T) {
	m := NewMap()
	const workers = 8
	const perWorker = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				m.RecordPractice(correctAttempt("quadratic-functions"))
			}
		}()
	}
	wg.Wait()
	r, _ := m.Get("quadratic-functions")
	if r.TotalAttempts != workers*perWorker {
		t.Errorf("TotalAttempts = %d, want %d", r.TotalAttempts, workers*perWorker)
	}
}

func TestMasteredSet(t *testing.T) {
	m := NewMap()
	m.Put(Record{SkillID: "a", Status: StatusMastered})
	m.Put(Record{SkillID: "b", Status: StatusLearning})
	m.Put(Record{SkillID: "c", Status: StatusNeedsReview})

	set := m.MasteredSet()
	if !set["a"] || set["b"] || set["c"] {
		t.Errorf("MasteredSet = %v", set)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	m := NewMap()
	for i := 0; i < MasteryStreak; i++ {
		m.RecordPractice(correctAttempt("fractions-operations"))
	}
	m.RecordPractice(correctAttempt("percentages"))

	loaded := Load(m.Export())
	if loaded.Len() != m.Len() {
		t.Fatalf("loaded %d records, want %d", loaded.Len(), m.Len())
	}
	orig, _ := m.Get("fractions-operations")
	got, _ := loaded.Get("fractions-operations")
	if got.Status != orig.Status || got.ConsecutiveCorrect != orig.ConsecutiveCorrect ||
		got.TotalAttempts != orig.TotalAttempts || !got.LastPracticed.Equal(orig.LastPracticed) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, orig)
	}
	if got.MasteredAt == nil {
		t.Error("MasteredAt lost in round trip")
	}
	if len(got.History) != len(orig.History) {
		t.Fatalf("history length = %d after round trip, want %d", len(got.History), len(orig.History))
	}
	last := len(orig.History) - 1
	if got.History[last] != orig.History[last] {
		t.Errorf("history entry mismatch:\n got %+v\nwant %+v", got.History[last], orig.History[last])
	}
}

func TestLoadNil(t *testing.T) {
	m := Load(nil)
	if m.Len() != 0 {
		t.Errorf("expected empty map from nil snapshot, got %d records", m.Len())
	}
}
