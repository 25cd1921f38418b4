package selector

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/abhisek/mathcat/internal/catalog"
)

func testPool(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Item{
		{ID: "i1", SkillID: "fractions", Difficulty: -0.2, Discrimination: 1.0},
		{ID: "i2", SkillID: "fractions", Difficulty: 0.0, Discrimination: 1.4},
		{ID: "i3", SkillID: "fractions", Difficulty: 0.1, Discrimination: 1.4},
		{ID: "i4", SkillID: "fractions", Difficulty: 0.25, Discrimination: 0.8},
		{ID: "i5", SkillID: "fractions", Difficulty: 2.0, Discrimination: 1.2},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNextPrefersHighDiscrimination(t *testing.T) {
	pool := testPool(t)
	s := New(rand.New(rand.NewSource(1)))

	// i1..i4 are in the window around 0.0; i2 and i3 share the top
	// discrimination, so only those two may be selected.
	seen := map[string]int{}
	for i := 0; i < 50; i++ {
		it, err := s.Next(pool, "fractions", 0.0, nil)
		if err != nil {
			t.Fatal(err)
		}
		seen[it.ID]++
	}
	if seen["i1"] > 0 || seen["i4"] > 0 || seen["i5"] > 0 {
		t.Errorf("selected a lower-discrimination or out-of-window item: %v", seen)
	}
	if seen["i2"] == 0 || seen["i3"] == 0 {
		t.Errorf("tie-break never chose one of the tied items: %v", seen)
	}
}

func TestNextNeverRepeatsExcluded(t *testing.T) {
	pool := testPool(t)
	s := New(rand.New(rand.NewSource(7)))

	exclude := map[string]bool{}
	for i := 0; i < 5; i++ {
		it, err := s.Next(pool, "fractions", 0.0, exclude)
		if err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		if exclude[it.ID] {
			t.Fatalf("item %s administered twice", it.ID)
		}
		exclude[it.ID] = true
	}

	// Pool exhausted.
	_, err := s.Next(pool, "fractions", 0.0, exclude)
	if !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("expected ErrNoCandidate, got %v", err)
	}
}

func TestNextFallsBackToClosest(t *testing.T) {
	pool := testPool(t)
	s := New(rand.New(rand.NewSource(3)))

	// Target 3.0 has an empty window; closest item overall is i5.
	it, err := s.Next(pool, "fractions", 3.0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if it.ID != "i5" {
		t.Errorf("expected fallback to i5, got %s", it.ID)
	}
}

func TestNextUnknownSkill(t *testing.T) {
	pool := testPool(t)
	s := New(rand.New(rand.NewSource(3)))
	if _, err := s.Next(pool, "no-such-skill", 0.0, nil); !errors.Is(err, ErrNoCandidate) {
		t.Fatalf("expected ErrNoCandidate, got %v", err)
	}
}

func TestJumpSizeDirectionAndBounds(t *testing.T) {
	for q := 1; q <= 30; q++ {
		for _, se := range []float64{1.0, 0.6, 0.3, 0.1} {
			up := JumpSize(true, q, se)
			if up < 0.3 || up > 1.5 {
				t.Errorf("up jump out of bounds: q=%d se=%f jump=%f", q, se, up)
			}
			down := JumpSize(false, q, se)
			if down > -0.2 || down < -0.7 {
				t.Errorf("down step out of bounds: q=%d se=%f step=%f", q, se, down)
			}
		}
	}
}

func TestJumpSizeDampens(t *testing.T) {
	// Early low-confidence jumps exceed late high-confidence ones.
	early := JumpSize(true, 1, 1.0)
	late := JumpSize(true, 15, 0.3)
	if early <= late {
		t.Errorf("expected dampening: early=%f late=%f", early, late)
	}
	if early != 1.5 {
		t.Errorf("first-question full-uncertainty jump = %f, want 1.5", early)
	}
}

func TestTargetThetaClamped(t *testing.T) {
	if got := TargetTheta(2.9, true, 1, 1.0); got != MaxTargetDifficulty {
		t.Errorf("TargetTheta high = %f, want clamp to %f", got, MaxTargetDifficulty)
	}
	if got := TargetTheta(-2.9, false, 1, 1.0); got < MinTargetDifficulty {
		t.Errorf("TargetTheta low = %f, below %f", got, MinTargetDifficulty)
	}
}

func TestRecencyPenalty(t *testing.T) {
	tested := []string{"a", "b", "c"}
	if got := RecencyPenalty("d", tested); got != 0 {
		t.Errorf("never-tested penalty = %f, want 0", got)
	}
	if got := RecencyPenalty("c", tested); math.Abs(got-50) > 1e-9 {
		t.Errorf("just-tested penalty = %f, want 50", got)
	}
	if got := RecencyPenalty("b", tested); math.Abs(got-25) > 1e-9 {
		t.Errorf("two-ago penalty = %f, want 25", got)
	}
	// Repeated skill uses the most recent occurrence.
	if got := RecencyPenalty("a", []string{"a", "b", "a"}); math.Abs(got-50) > 1e-9 {
		t.Errorf("repeated skill penalty = %f, want 50", got)
	}
}
