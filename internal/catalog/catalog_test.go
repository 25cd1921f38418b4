package catalog

import (
	"sync"
	"testing"
)

func testItems() []Item {
	return []Item{
		{ID: "frac-1", SkillID: "fractions", Difficulty: -0.3, Discrimination: 1.0, GradeLevel: "4"},
		{ID: "frac-2", SkillID: "fractions", Difficulty: 0.0, Discrimination: 1.2, GradeLevel: "4"},
		{ID: "frac-3", SkillID: "fractions", Difficulty: 0.2, Discrimination: 1.1, GradeLevel: "5"},
		{ID: "frac-4", SkillID: "fractions", Difficulty: 1.5, Discrimination: 0.9, GradeLevel: "6"},
		{ID: "alg-1", SkillID: "linear-equations", Difficulty: 0.8, Discrimination: 1.3, GradeLevel: "7"},
	}
}

func TestNewRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name string
		item Item
	}{
		{"difficulty too high", Item{ID: "x", SkillID: "s", Difficulty: 3.5, Discrimination: 1.0}},
		{"difficulty too low", Item{ID: "x", SkillID: "s", Difficulty: -3.5, Discrimination: 1.0}},
		{"discrimination too low", Item{ID: "x", SkillID: "s", Difficulty: 0, Discrimination: 0.3}},
		{"discrimination too high", Item{ID: "x", SkillID: "s", Difficulty: 0, Discrimination: 3.0}},
		{"empty id", Item{SkillID: "s", Difficulty: 0, Discrimination: 1.0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New([]Item{tc.item}); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	items := []Item{
		{ID: "a", SkillID: "s", Difficulty: 0, Discrimination: 1.0},
		{ID: "a", SkillID: "s", Difficulty: 0.5, Discrimination: 1.0},
	}
	if _, err := New(items); err == nil {
		t.Fatal("expected duplicate ID error, got nil")
	}
}

func TestFindNearWindow(t *testing.T) {
	c, err := New(testItems())
	if err != nil {
		t.Fatal(err)
	}
	got := c.FindNear("fractions", 0.0, nil)
	if len(got) != 3 {
		t.Fatalf("expected 3 items within window of 0.0, got %d", len(got))
	}
	for _, it := range got {
		if it.Difficulty < -0.3-1e-9 || it.Difficulty > 0.3+1e-9 {
			t.Errorf("item %s difficulty %f outside window", it.ID, it.Difficulty)
		}
	}
}

func TestFindNearExcludes(t *testing.T) {
	c, _ := New(testItems())
	got := c.FindNear("fractions", 0.0, map[string]bool{"frac-2": true})
	for _, it := range got {
		if it.ID == "frac-2" {
			t.Fatal("excluded item returned")
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
}

func TestFindClosest(t *testing.T) {
	c, _ := New(testItems())
	it, ok := c.FindClosest("fractions", 2.0, nil)
	if !ok {
		t.Fatal("expected an item")
	}
	if it.ID != "frac-4" {
		t.Fatalf("expected frac-4, got %s", it.ID)
	}

	// Exhausted pool.
	exclude := map[string]bool{"frac-1": true, "frac-2": true, "frac-3": true, "frac-4": true}
	if _, ok := c.FindClosest("fractions", 0.0, exclude); ok {
		t.Fatal("expected no item from exhausted pool")
	}
	if _, ok := c.FindClosest("no-such-skill", 0.0, nil); ok {
		t.Fatal("expected no item for unknown skill")
	}
}

func TestBySkillSorted(t *testing.T) {
	c, _ := New(testItems())
	pool := c.BySkill("fractions")
	if len(pool) != 4 {
		t.Fatalf("expected 4 fractions items, got %d", len(pool))
	}
	for i := 1; i < len(pool); i++ {
		if pool[i-1].Difficulty > pool[i].Difficulty {
			t.Fatal("pool not sorted by difficulty")
		}
	}
}

func TestRecordAttemptConcurrent(t *testing.T) {
	c, _ := New(testItems())
	const workers = 8
	const perWorker = 100
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				c.RecordAttempt("frac-1")
			}
		}()
	}
	wg.Wait()
	if got := c.Attempts("frac-1"); got != workers*perWorker {
		t.Fatalf("expected %d attempts, got %d", workers*perWorker, got)
	}
	if got := c.Attempts("unknown"); got != 0 {
		t.Fatalf("expected 0 attempts for unknown item, got %d", got)
	}
}

func TestSetParameters(t *testing.T) {
	c, _ := New(testItems())
	if err := c.SetParameters("frac-1", 1.0, 1.1, ConfidenceLiveCalibrated); err != nil {
		t.Fatal(err)
	}
	it, _ := c.Get("frac-1")
	if it.Difficulty != 1.0 || it.Discrimination != 1.1 {
		t.Fatalf("parameters not applied: %+v", it)
	}
	if it.Confidence != ConfidenceLiveCalibrated {
		t.Fatalf("expected live-calibrated confidence, got %s", it.Confidence)
	}

	// Pool order is maintained after the update.
	pool := c.BySkill("fractions")
	for i := 1; i < len(pool); i++ {
		if pool[i-1].Difficulty > pool[i].Difficulty {
			t.Fatal("pool not re-sorted after SetParameters")
		}
	}

	if err := c.SetParameters("frac-1", 9.0, 1.0, ConfidenceExpert); err == nil {
		t.Fatal("expected range error")
	}
	if err := c.SetParameters("missing", 0.0, 1.0, ConfidenceExpert); err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestDefaultConfidence(t *testing.T) {
	c, _ := New(testItems())
	it, _ := c.Get("frac-1")
	if it.Confidence != ConfidenceExpert {
		t.Fatalf("expected default expert confidence, got %q", it.Confidence)
	}
}
