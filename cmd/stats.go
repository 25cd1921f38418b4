package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathcat/ent"
	"github.com/abhisek/mathcat/ent/responseevent"
	"github.com/abhisek/mathcat/ent/sessionevent"
	"github.com/abhisek/mathcat/internal/mastery"
	"github.com/abhisek/mathcat/internal/retention"
	"github.com/abhisek/mathcat/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client := st.Client()

	sessions, err := client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count sessions: %w", err)
	}
	responses, err := client.ResponseEvent.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count responses: %w", err)
	}
	correct, err := client.ResponseEvent.Query().
		Where(responseevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count correct: %w", err)
	}

	cmd.Printf("sessions completed: %d\n", sessions)
	cmd.Printf("questions answered: %d\n", responses)
	if responses > 0 {
		cmd.Printf("overall accuracy:   %.0f%%\n", 100*float64(correct)/float64(responses))
	}

	// Latest ability estimate from the most recent session end.
	last, err := client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query last session: %w", err)
	}
	if last != nil {
		cmd.Printf("latest estimate:    theta %.2f (SE %.2f, percentile %.0f)\n",
			last.Theta, last.StandardError, last.Percentile)
		if last.StopReason != "" {
			cmd.Printf("last stop reason:   %s\n", last.StopReason)
		}
	}

	// Mastery and retention from persisted learner state.
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil || snap.Data.Mastery == nil {
		return nil
	}
	m := mastery.Load(snap.Data.Mastery)

	mastered := m.MasteredSet()
	cmd.Printf("skills mastered:    %d of %d tracked\n", len(mastered), m.Len())
	for _, r := range m.All() {
		if r.Status == mastery.StatusNeedsReview {
			cmd.Printf("  %-24s %s\n", r.SkillID, mastery.StatusMessage(r.Status))
		}
	}

	now := time.Now().UTC()
	var masteredDates []time.Time
	for _, r := range m.All() {
		if r.MasteredAt != nil {
			masteredDates = append(masteredDates, *r.MasteredAt)
		}
	}
	if v := retention.Velocity(masteredDates, 28*24*time.Hour, now); v > 0 {
		cmd.Printf("learning velocity:  %.1f skills/week (last 4 weeks)\n", v)
	}

	// Retention vs the previous checkpoint.
	checkpoints, err := st.CheckpointRepo().All(ctx)
	if err != nil {
		return fmt.Errorf("load checkpoints: %w", err)
	}
	if len(checkpoints) >= 2 {
		prior := checkpoints[len(checkpoints)-2]
		metrics := retention.ComputeMetrics(m, retention.Checkpoint{
			TakenAt:  prior.TakenAt,
			Theta:    prior.Theta,
			Mastered: prior.Mastered,
		})
		cmd.Printf("retention rate:     %.0f%% (%d retained, %d lost, %d new)\n",
			metrics.RetentionRate*100, metrics.Retained, metrics.Lost, metrics.New)
		for _, id := range metrics.LostSkills {
			cmd.Printf("  lost: %s\n", id)
		}
	}

	// Skills most in need of a retention probe.
	due := retention.SelectForRetention(m, 3, 7, now)
	for _, c := range due {
		cmd.Printf("probe due:          %s (priority %.2f, %dd since practice)\n",
			c.SkillID, c.Priority, c.DaysSincePractice)
	}
	return nil
}
