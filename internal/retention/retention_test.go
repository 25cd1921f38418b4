package retention

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/mathcat/internal/mastery"
)

const epsilon = 0.0001

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return now.AddDate(0, 0, -d)
}

func TestStaleness_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		last time.Time
		want float64
	}{
		{"just practiced", now, 0},
		{"exactly seven days", daysAgo(7), 0},
		{"ninety days", daysAgo(90), 1},
		{"six months", daysAgo(180), 1},
		{"never practiced", time.Time{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Staleness(tt.last, now); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Staleness = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestStaleness_SublinearRise(t *testing.T) {
	// The curve rises faster early: the first half of the decay window
	// covers more than half the staleness range.
	mid := Staleness(daysAgo(48), now) // ~midpoint of 7..90
	if mid <= 0.5 {
		t.Errorf("midpoint staleness = %f, want > 0.5 (sublinear exponent)", mid)
	}
	// Strictly increasing between the boundaries.
	prev := 0.0
	for d := 8; d < 90; d += 7 {
		s := Staleness(daysAgo(d), now)
		if s <= prev {
			t.Fatalf("staleness not increasing at day %d: %f <= %f", d, s, prev)
		}
		prev = s
	}
}

func TestSelectForRetention_RanksAndFilters(t *testing.T) {
	m := mastery.NewMap()
	// mult-div-whole enables 4 skills; quadratic-functions enables none.
	m.Put(mastery.Record{SkillID: "mult-div-whole", Status: mastery.StatusMastered, LastPracticed: daysAgo(60)})
	m.Put(mastery.Record{SkillID: "quadratic-functions", Status: mastery.StatusMastered, LastPracticed: daysAgo(60)})
	m.Put(mastery.Record{SkillID: "percentages", Status: mastery.StatusMastered, LastPracticed: daysAgo(2)})
	m.Put(mastery.Record{SkillID: "linear-equations", Status: mastery.StatusLearning, LastPracticed: daysAgo(80)})

	got := SelectForRetention(m, 10, 7, now)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(got), got)
	}
	// Equal staleness, so the better-connected skill ranks first.
	if got[0].SkillID != "mult-div-whole" {
		t.Errorf("top candidate = %s, want mult-div-whole", got[0].SkillID)
	}
	for _, c := range got {
		if c.SkillID == "percentages" {
			t.Error("recently practiced skill selected")
		}
		if c.SkillID == "linear-equations" {
			t.Error("non-mastered skill selected")
		}
	}

	// count truncates.
	if got := SelectForRetention(m, 1, 7, now); len(got) != 1 {
		t.Errorf("count=1 returned %d candidates", len(got))
	}
}

func TestProcessResult_Asymmetry(t *testing.T) {
	m := mastery.NewMap()
	m.Put(mastery.Record{
		SkillID:            "fractions-operations",
		Status:             mastery.StatusMastered,
		ConsecutiveCorrect: 5,
		LastPracticed:      daysAgo(30),
	})

	// First miss: 5 -> 3, still mastered.
	out, err := ProcessResult(m, "fractions-operations", false, 0.4, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.NewStreak != 3 || out.Status != mastery.StatusMastered || out.Reason != ReasonRetentionSlip {
		t.Fatalf("first miss outcome = %+v", out)
	}

	// Second miss: 3 -> 1, below threshold, flagged.
	out, err = ProcessResult(m, "fractions-operations", false, 0.4, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.NewStreak != 1 || out.Status != mastery.StatusNeedsReview || out.Reason != ReasonFlaggedForReview {
		t.Fatalf("second miss outcome = %+v", out)
	}
	if out.Message != mastery.StatusMessage(mastery.StatusNeedsReview) {
		t.Errorf("message = %q, want the needs-review status message", out.Message)
	}
}

func TestProcessResult_CorrectReinforces(t *testing.T) {
	m := mastery.NewMap()
	m.Put(mastery.Record{
		SkillID:            "percentages",
		Status:             mastery.StatusMastered,
		ConsecutiveCorrect: 3,
		LastPracticed:      daysAgo(30),
	})

	out, err := ProcessResult(m, "percentages", true, 0.2, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.NewStreak != 4 || out.Reason != ReasonReinforced {
		t.Fatalf("outcome = %+v", out)
	}
	if out.Message != mastery.StatusMessage(mastery.StatusMastered) {
		t.Errorf("message = %q, want the mastered status message", out.Message)
	}

	// Streak caps at the maximum.
	ProcessResult(m, "percentages", true, 0.2, now)
	out, _ = ProcessResult(m, "percentages", true, 0.2, now)
	if out.NewStreak != mastery.MaxStreak {
		t.Errorf("streak = %d, want cap %d", out.NewStreak, mastery.MaxStreak)
	}

	r, _ := m.Get("percentages")
	if !r.LastPracticed.Equal(now) {
		t.Errorf("probe did not refresh LastPracticed: %v", r.LastPracticed)
	}
	if len(r.History) != 3 {
		t.Fatalf("history length = %d, want one entry per probe", len(r.History))
	}
	if a := r.History[0]; a.Difficulty != 0.2 || !a.Correct || !a.At.Equal(now) {
		t.Errorf("probe attempt not recorded: %+v", a)
	}
}

func TestProcessResult_FloorAtZero(t *testing.T) {
	m := mastery.NewMap()
	m.Put(mastery.Record{
		SkillID:            "area-perimeter",
		Status:             mastery.StatusMastered,
		ConsecutiveCorrect: 1,
		LastPracticed:      daysAgo(30),
	})

	out, err := ProcessResult(m, "area-perimeter", false, -0.1, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.NewStreak != 0 {
		t.Errorf("streak = %d, want floor 0", out.NewStreak)
	}
	if out.Status != mastery.StatusNeedsReview {
		t.Errorf("status = %s, want needs-review", out.Status)
	}
}

func TestProcessResult_RequiresMastered(t *testing.T) {
	m := mastery.NewMap()
	m.Put(mastery.Record{SkillID: "learning-skill", Status: mastery.StatusLearning})

	if _, err := ProcessResult(m, "learning-skill", true, 0, now); !errors.Is(err, ErrNotMastered) {
		t.Errorf("learning skill: got %v, want ErrNotMastered", err)
	}
	if _, err := ProcessResult(m, "unknown", true, 0, now); !errors.Is(err, ErrNotMastered) {
		t.Errorf("unknown skill: got %v, want ErrNotMastered", err)
	}
}

func TestShouldInsertProbe_Cadence(t *testing.T) {
	ps := NewProbeState(ModeAdaptive, rand.New(rand.NewSource(42)))

	gap := 0
	probes := 0
	for i := 0; i < 100; i++ {
		if ps.ShouldInsertProbe() {
			if gap < minProbeGap-1 {
				t.Fatalf("probe after only %d ordinary items", gap)
			}
			probes++
			gap = 0
		} else {
			gap++
			if gap > minProbeGap+probeGapSpread {
				t.Fatalf("gap of %d items without a probe", gap)
			}
		}
	}
	if probes < MinProbesPerTest {
		t.Errorf("only %d probes in 100 items", probes)
	}
	if ps.ProbesServed() != probes {
		t.Errorf("ProbesServed = %d, want %d", ps.ProbesServed(), probes)
	}
}

func TestShouldInsertProbe_NeverInMasteryMode(t *testing.T) {
	ps := NewProbeState(ModeMasteryAssessment, rand.New(rand.NewSource(1)))
	for i := 0; i < 200; i++ {
		if ps.ShouldInsertProbe() {
			t.Fatal("probe inserted during mastery assessment")
		}
	}
	if ps.NeedsMoreProbes() {
		t.Error("mastery assessment should never demand probes")
	}
}

func TestNeedsMoreProbes(t *testing.T) {
	ps := NewProbeState(ModeAdaptive, rand.New(rand.NewSource(3)))
	if !ps.NeedsMoreProbes() {
		t.Fatal("fresh session should need probes")
	}
	for i := 0; i < 100 && ps.NeedsMoreProbes(); i++ {
		ps.ShouldInsertProbe()
	}
	if ps.NeedsMoreProbes() {
		t.Error("quota never met over 100 items")
	}
}

func TestComputeMetrics(t *testing.T) {
	m := mastery.NewMap()
	m.Put(mastery.Record{SkillID: "a", Status: mastery.StatusMastered})
	m.Put(mastery.Record{SkillID: "b", Status: mastery.StatusNeedsReview})
	m.Put(mastery.Record{SkillID: "c", Status: mastery.StatusMastered})

	previous := Checkpoint{TakenAt: daysAgo(90), Mastered: []string{"a", "b"}}
	got := ComputeMetrics(m, previous)
	if got.Retained != 1 || got.Lost != 1 || got.New != 1 {
		t.Errorf("metrics = %+v", got)
	}
	if math.Abs(got.RetentionRate-0.5) > epsilon {
		t.Errorf("retention rate = %f, want 0.5", got.RetentionRate)
	}
	if len(got.LostSkills) != 1 || got.LostSkills[0] != "b" {
		t.Errorf("lost skills = %v, want [b]", got.LostSkills)
	}

	// Empty prior checkpoint reports perfect retention.
	got = ComputeMetrics(m, Checkpoint{TakenAt: daysAgo(90)})
	if got.RetentionRate != 1 {
		t.Errorf("empty-prior retention rate = %f, want 1", got.RetentionRate)
	}
}

func TestBuildCheckpoint(t *testing.T) {
	m := mastery.NewMap()
	m.Put(mastery.Record{SkillID: "b", Status: mastery.StatusMastered})
	m.Put(mastery.Record{SkillID: "a", Status: mastery.StatusMastered})
	m.Put(mastery.Record{SkillID: "c", Status: mastery.StatusLearning})

	cp := BuildCheckpoint(m, 0.7, now)
	if len(cp.Mastered) != 2 || cp.Mastered[0] != "a" || cp.Mastered[1] != "b" {
		t.Errorf("mastered = %v, want sorted [a b]", cp.Mastered)
	}
	if !cp.TakenAt.Equal(now) || cp.Theta != 0.7 {
		t.Errorf("checkpoint header = %+v", cp)
	}
}

func TestVelocity(t *testing.T) {
	dates := []time.Time{
		daysAgo(3),
		daysAgo(10),
		daysAgo(20),
		daysAgo(100), // outside window
		{},           // never mastered
	}
	got := Velocity(dates, 28*24*time.Hour, now)
	want := 3.0 / 4.0 // 3 skills over 4 weeks
	if math.Abs(got-want) > epsilon {
		t.Errorf("velocity = %f, want %f", got, want)
	}

	if got := Velocity(dates, 0, now); got != 0 {
		t.Errorf("zero window velocity = %f, want 0", got)
	}
}
