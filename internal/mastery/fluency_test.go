package mastery

import (
	"math"
	"testing"

	"github.com/abhisek/mathcat/internal/skillgraph"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func timedSkill() skillgraph.Skill {
	return skillgraph.Skill{
		ID:                     "test-skill",
		FluencyBaseTimeSeconds: 10,
		ToleranceFactor:        2.0,
	}
}

func TestSpeedScore_FastAnswer(t *testing.T) {
	if got := SpeedScore(5, timedSkill()); !almostEqual(got, 1.0) {
		t.Errorf("fast answer score = %f, want 1.0", got)
	}
	if got := SpeedScore(10, timedSkill()); !almostEqual(got, 1.0) {
		t.Errorf("at-base answer score = %f, want 1.0", got)
	}
}

func TestSpeedScore_WithinTolerance(t *testing.T) {
	// Midway between base (10s) and tolerance boundary (20s).
	if got := SpeedScore(15, timedSkill()); !almostEqual(got, 0.75) {
		t.Errorf("midway score = %f, want 0.75", got)
	}
	if got := SpeedScore(20, timedSkill()); !almostEqual(got, 0.5) {
		t.Errorf("boundary score = %f, want 0.5", got)
	}
}

func TestSpeedScore_Slow(t *testing.T) {
	// 50% over the boundary.
	if got := SpeedScore(30, timedSkill()); !almostEqual(got, 0.25) {
		t.Errorf("slow score = %f, want 0.25", got)
	}
	// Far beyond the boundary bottoms out at 0.
	if got := SpeedScore(200, timedSkill()); !almostEqual(got, 0.0) {
		t.Errorf("very slow score = %f, want 0.0", got)
	}
}

func TestSpeedScore_MissingTiming(t *testing.T) {
	if got := SpeedScore(0, timedSkill()); !almostEqual(got, 0.5) {
		t.Errorf("missing response time score = %f, want neutral 0.5", got)
	}
	skill := timedSkill()
	skill.FluencyBaseTimeSeconds = 0
	if got := SpeedScore(10, skill); !almostEqual(got, 0.5) {
		t.Errorf("missing base time score = %f, want neutral 0.5", got)
	}
}

func TestFluencyScore_Components(t *testing.T) {
	metrics := DefaultFluencyMetrics()
	metrics.Streak = DefaultStreakCap // full consistency
	RecordSpeed(&metrics, 1.0)

	got := FluencyScore(&metrics, 1.0)
	if !almostEqual(got, 1.0) {
		t.Errorf("perfect fluency = %f, want 1.0", got)
	}

	// No data at all: neutral speed, zero streak, zero accuracy.
	empty := DefaultFluencyMetrics()
	got = FluencyScore(&empty, 0.0)
	if !almostEqual(got, 0.1) {
		t.Errorf("empty fluency = %f, want 0.1", got)
	}
}

func TestRecordSpeed_WindowTrims(t *testing.T) {
	metrics := DefaultFluencyMetrics()
	for i := 0; i < DefaultSpeedWindow+5; i++ {
		RecordSpeed(&metrics, 0.5)
	}
	if len(metrics.SpeedScores) != DefaultSpeedWindow {
		t.Errorf("window length = %d, want %d", len(metrics.SpeedScores), DefaultSpeedWindow)
	}
}

func TestConsistencyScore(t *testing.T) {
	if got := ConsistencyScore(4, 8); !almostEqual(got, 0.5) {
		t.Errorf("half streak = %f, want 0.5", got)
	}
	if got := ConsistencyScore(20, 8); !almostEqual(got, 1.0) {
		t.Errorf("over-cap streak = %f, want 1.0", got)
	}
	if got := ConsistencyScore(3, 0); !almostEqual(got, 0.0) {
		t.Errorf("zero cap = %f, want 0.0", got)
	}
}
