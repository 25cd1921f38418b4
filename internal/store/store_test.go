package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot with mastery state.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Theta:   0.8,
			Mastery: &MasterySnapshotData{
				Skills: map[string]*SkillMasteryData{
					"fractions-operations": {
						SkillID:            "fractions-operations",
						Status:             "mastered",
						Theta:              0.8,
						ConsecutiveCorrect: 5,
						TotalAttempts:      12,
						CorrectCount:       10,
						LastPracticed:      now,
					},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
	if snap.Data.Mastery == nil {
		t.Fatal("expected mastery data to round-trip")
	}
	sd := snap.Data.Mastery.Skills["fractions-operations"]
	if sd == nil {
		t.Fatal("expected fractions-operations in mastery data")
	}
	if sd.Status != "mastered" || sd.ConsecutiveCorrect != 5 {
		t.Errorf("skill data = %+v, want mastered with streak 5", sd)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.Sequence(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendResponseAndQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	results := []bool{true, true, false, true}
	for i, correct := range results {
		err := repo.AppendResponse(ctx, ResponseEventData{
			SessionID:          "sess-1",
			UserID:             "learner",
			ItemID:             "frac-ops-3",
			SkillID:            "fractions-operations",
			Difficulty:         0.4,
			Discrimination:     1.2,
			Correct:            correct,
			ThetaAfter:         0.1 * float64(i),
			StandardErrorAfter: 1.0 / float64(i+1),
			QuestionNumber:     i + 1,
		})
		if err != nil {
			t.Fatalf("append response %d: %v", i, err)
		}
	}

	acc, err := repo.SkillAccuracy(ctx, "fractions-operations")
	if err != nil {
		t.Fatalf("skill accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}

	ts, err := repo.LatestResponseTime(ctx, "fractions-operations")
	if err != nil {
		t.Fatalf("latest response time: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero latest response time")
	}

	// Unknown skill has no responses.
	ts, err = repo.LatestResponseTime(ctx, "no-such-skill")
	if err != nil {
		t.Fatalf("latest response time (unknown): %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("expected zero time for unknown skill, got %v", ts)
	}
	acc, err = repo.SkillAccuracy(ctx, "no-such-skill")
	if err != nil {
		t.Fatalf("skill accuracy (unknown): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy for unknown skill = %v, want 0", acc)
	}
}

func TestRecentProbeAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Two probes and one regular response; only probes count.
	probes := []bool{true, false}
	for i, correct := range probes {
		err := repo.AppendResponse(ctx, ResponseEventData{
			SessionID:      "sess-1",
			UserID:         "learner",
			ItemID:         "mult-2",
			SkillID:        "mult-div-whole",
			Difficulty:     -1.5,
			Discrimination: 1.0,
			Correct:        correct,
			Probe:          true,
			QuestionNumber: i + 1,
		})
		if err != nil {
			t.Fatalf("append probe %d: %v", i, err)
		}
	}
	err := repo.AppendResponse(ctx, ResponseEventData{
		SessionID:      "sess-1",
		UserID:         "learner",
		ItemID:         "mult-3",
		SkillID:        "mult-div-whole",
		Difficulty:     -1.5,
		Discrimination: 1.0,
		Correct:        true,
		QuestionNumber: 3,
	})
	if err != nil {
		t.Fatalf("append response: %v", err)
	}

	acc, count, err := repo.RecentProbeAccuracy(ctx, "mult-div-whole", 10)
	if err != nil {
		t.Fatalf("probe accuracy: %v", err)
	}
	if count != 2 {
		t.Errorf("probe count = %d, want 2", count)
	}
	if acc != 0.5 {
		t.Errorf("probe accuracy = %v, want 0.5", acc)
	}

	// No probes for an unprobed skill.
	_, count, err = repo.RecentProbeAccuracy(ctx, "add-sub-whole", 10)
	if err != nil {
		t.Fatalf("probe accuracy (empty): %v", err)
	}
	if count != 0 {
		t.Errorf("probe count = %d, want 0", count)
	}
}

func TestAppendSessionAndMasteryEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		UserID:    "learner",
		Action:    "start",
		Mode:      "adaptive",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:       "sess-1",
		UserID:          "learner",
		Action:          "end",
		Mode:            "adaptive",
		StopReason:      "precision achieved",
		Theta:           1.1,
		StandardError:   0.28,
		Percentile:      86,
		QuestionsServed: 14,
		CorrectAnswers:  9,
		DurationSecs:    600,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	err = repo.AppendMasteryEvent(ctx, MasteryEventData{
		SkillID:    "linear-equations",
		FromStatus: "learning",
		ToStatus:   "mastered",
		Trigger:    "streak-complete",
		Theta:      1.1,
		SessionID:  "sess-1",
	})
	if err != nil {
		t.Fatalf("append mastery: %v", err)
	}

	err = repo.AppendRetentionEvent(ctx, RetentionEventData{
		SkillID:           "mult-div-whole",
		Correct:           false,
		Reason:            "retention-slip",
		StreakAfter:       3,
		StatusAfter:       "mastered",
		DaysSincePractice: 45,
		Priority:          0.58,
		SessionID:         "sess-1",
	})
	if err != nil {
		t.Fatalf("append retention: %v", err)
	}

	// All four events share the global sequence.
	sessions, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if sessions != 2 {
		t.Errorf("session events = %d, want 2", sessions)
	}
	next, err := s.Sequence(ctx)
	if err != nil {
		t.Fatalf("sequence: %v", err)
	}
	if next != 5 {
		t.Errorf("next sequence = %d, want 5 after 4 events", next)
	}
}

func TestCheckpointRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.CheckpointRepo()
	ctx := context.Background()

	cp, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if cp != nil {
		t.Fatal("expected nil checkpoint when none exist")
	}

	base := time.Now().UTC().Truncate(time.Second)
	first := &CheckpointRecord{
		TakenAt:  base,
		Theta:    0.5,
		Mastered: []string{"add-sub-whole", "mult-div-whole"},
	}
	second := &CheckpointRecord{
		TakenAt:   base.Add(time.Hour),
		Theta:     0.9,
		Mastered:  []string{"add-sub-whole", "fractions-equivalence", "mult-div-whole"},
		SessionID: "sess-2",
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	cp, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if cp == nil {
		t.Fatal("expected non-nil checkpoint")
	}
	if cp.Theta != 0.9 || len(cp.Mastered) != 3 {
		t.Errorf("latest = %+v, want second checkpoint", cp)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("checkpoints = %d, want 2", len(all))
	}
	if !all[0].TakenAt.Before(all[1].TakenAt) {
		t.Error("expected checkpoints ordered oldest first")
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
