package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/abhisek/mathcat/internal/catalog"
	"github.com/abhisek/mathcat/internal/irt"
	"github.com/abhisek/mathcat/internal/mastery"
	"github.com/abhisek/mathcat/internal/retention"
	"github.com/abhisek/mathcat/internal/selector"
	"github.com/abhisek/mathcat/internal/session"
	"github.com/abhisek/mathcat/internal/skillgraph"
	"github.com/abhisek/mathcat/internal/store"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run simulated adaptive sessions against the seeded skill graph",
	Long: "Simulate drives full adaptive sessions with a synthetic learner of\n" +
		"known ability: item selection, ability estimation, mastery updates,\n" +
		"retention probes, and event logging, exactly as a live session would.",
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64("theta", 0.8, "True ability of the simulated learner")
	simulateCmd.Flags().Int("sessions", 1, "Number of sessions to run")
	simulateCmd.Flags().Int64("seed", 0, "Random seed (0 = time-based)")
	simulateCmd.Flags().String("user", "learner", "User ID for recorded events")
	simulateCmd.Flags().Int("max-questions", 0, "Override the question limit (0 = default)")
	simulateCmd.Flags().Bool("json", false, "Print the full session report as JSON")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	trueTheta, _ := cmd.Flags().GetFloat64("theta")
	sessions, _ := cmd.Flags().GetInt("sessions")
	seed, _ := cmd.Flags().GetInt64("seed")
	userID, _ := cmd.Flags().GetString("user")
	maxQuestions, _ := cmd.Flags().GetInt("max-questions")
	asJSON, _ := cmd.Flags().GetBool("json")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cat, err := syntheticCatalog(rng)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	// Resume mastery state from the latest snapshot so consecutive runs
	// build on each other.
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	var m *mastery.Map
	if snap != nil {
		m = mastery.Load(snap.Data.Mastery)
	} else {
		m = mastery.NewMap()
	}

	cfg := session.DefaultConfig()
	if maxQuestions > 0 {
		cfg.MaxQuestions = maxQuestions
	}

	for i := 0; i < sessions; i++ {
		report, err := runOneSession(ctx, st, cat, m, rng, trueTheta, userID, cfg)
		if err != nil {
			return fmt.Errorf("session %d: %w", i+1, err)
		}
		if asJSON {
			b, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal report: %w", err)
			}
			cmd.Println(string(b))
		} else {
			printReportSummary(cmd, report)
		}
	}

	// Persist the final learner state.
	seq, err := st.Sequence(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	err = st.SnapshotRepo().Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version: 1,
			Theta:   trueTheta,
			Mastery: m.Export(),
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := st.SnapshotRepo().Prune(ctx, 10); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// runOneSession drives a single adaptive session to completion, recording
// every response, mastery transition, and retention probe as events.
func runOneSession(
	ctx context.Context,
	st *store.Store,
	cat *catalog.Catalog,
	m *mastery.Map,
	rng *rand.Rand,
	trueTheta float64,
	userID string,
	cfg session.Config,
) (session.Report, error) {
	sess := session.New(userID, cfg)
	events := st.EventRepo()

	err := events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: sess.ID(),
		UserID:    userID,
		Action:    "start",
		Mode:      string(retention.ModeAdaptive),
	})
	if err != nil {
		return session.Report{}, err
	}

	sel := selector.New(rng)
	probes := retention.NewProbeState(retention.ModeAdaptive, rng)

	var tested []string
	lastCorrect := true

	for {
		now := time.Now().UTC()
		target := sess.Theta()
		if n := sess.QuestionCount(); n > 0 {
			target = selector.TargetTheta(sess.Theta(), lastCorrect, n, sess.StandardError())
		}

		// Retention probes displace ordinary items on a 5-7 item cadence.
		isProbe := false
		var skillID string
		var candidate retention.Candidate
		if probes.ShouldInsertProbe() {
			if cands := retention.SelectForRetention(m, 1, 7, now); len(cands) > 0 {
				candidate = cands[0]
				skillID = candidate.SkillID
				isProbe = true
			}
		}
		if !isProbe {
			skillID = pickPracticeSkill(m, tested, rng)
		}

		item, err := sel.Next(cat, skillID, target, sess.Administered())
		if errors.Is(err, selector.ErrNoCandidate) {
			sess.Cancel()
			break
		}
		if err != nil {
			return session.Report{}, fmt.Errorf("select item: %w", err)
		}

		// Simulate the learner: answer correctly with 2PL probability at
		// the true ability.
		p := irt.Probability(trueTheta, item.Difficulty, item.Discrimination)
		correct := rng.Float64() < p
		responseTime := simulateResponseTime(skillID, correct, rng)

		cat.RecordAttempt(item.ID)
		outcome, err := sess.ProcessResponse(irt.Response{
			ItemID:              item.ID,
			SkillID:             item.SkillID,
			Difficulty:          item.Difficulty,
			Discrimination:      item.Discrimination,
			Correct:             correct,
			ResponseTimeSeconds: responseTime,
		})
		if errors.Is(err, session.ErrSessionOver) {
			break
		}
		if err != nil {
			return session.Report{}, fmt.Errorf("process response: %w", err)
		}

		err = events.AppendResponse(ctx, store.ResponseEventData{
			SessionID:           sess.ID(),
			UserID:              userID,
			ItemID:              item.ID,
			SkillID:             item.SkillID,
			Difficulty:          item.Difficulty,
			Discrimination:      item.Discrimination,
			Correct:             correct,
			ResponseTimeSeconds: responseTime,
			Probe:               isProbe,
			ThetaAfter:          outcome.Theta,
			StandardErrorAfter:  outcome.StandardError,
			QuestionNumber:      outcome.QuestionNumber,
		})
		if err != nil {
			return session.Report{}, err
		}

		if isProbe {
			probeOut, err := retention.ProcessResult(m, skillID, correct, item.Difficulty, now)
			if err != nil {
				return session.Report{}, fmt.Errorf("process probe: %w", err)
			}
			err = events.AppendRetentionEvent(ctx, store.RetentionEventData{
				SkillID:           skillID,
				Correct:           correct,
				Reason:            probeOut.Reason,
				StreakAfter:       probeOut.NewStreak,
				StatusAfter:       string(probeOut.Status),
				DaysSincePractice: float64(candidate.DaysSincePractice),
				Priority:          candidate.Priority,
				SessionID:         sess.ID(),
			})
			if err != nil {
				return session.Report{}, err
			}
		} else {
			tr := m.RecordPractice(mastery.PracticeResult{
				SkillID:             skillID,
				Correct:             correct,
				ResponseTimeSeconds: responseTime,
				Difficulty:          item.Difficulty,
				Theta:               outcome.Theta,
				StandardError:       outcome.StandardError,
				At:                  now,
			})
			if tr.Changed() {
				err = events.AppendMasteryEvent(ctx, store.MasteryEventData{
					SkillID:       tr.SkillID,
					FromStatus:    string(tr.From),
					ToStatus:      string(tr.To),
					Trigger:       tr.Trigger,
					Theta:         outcome.Theta,
					StandardError: outcome.StandardError,
					SessionID:     sess.ID(),
				})
				if err != nil {
					return session.Report{}, err
				}
			}
		}

		tested = append(tested, skillID)
		lastCorrect = correct

		if outcome.Action == session.ActionStop {
			break
		}
	}

	report := sess.Report()

	err = events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       sess.ID(),
		UserID:          userID,
		Action:          "end",
		Mode:            string(retention.ModeAdaptive),
		StopReason:      report.StopReason,
		Theta:           report.Theta,
		StandardError:   report.StandardError,
		Percentile:      float64(report.Percentile),
		QuestionsServed: report.QuestionCount,
		CorrectAnswers:  report.CorrectCount,
		DurationSecs:    int(report.Duration.Seconds()),
	})
	if err != nil {
		return session.Report{}, err
	}

	// Checkpoint the mastered set for retention tracking across sessions.
	now := time.Now().UTC()
	cp := retention.BuildCheckpoint(m, report.Theta, now)
	err = st.CheckpointRepo().Save(ctx, &store.CheckpointRecord{
		TakenAt:   cp.TakenAt,
		Theta:     cp.Theta,
		Mastered:  cp.Mastered,
		SessionID: sess.ID(),
	})
	if err != nil {
		return session.Report{}, fmt.Errorf("save checkpoint: %w", err)
	}

	return report, nil
}

// pickPracticeSkill chooses the next skill to practice: frontier skills
// first, least recently tested among them.
func pickPracticeSkill(m *mastery.Map, tested []string, rng *rand.Rand) string {
	frontier := skillgraph.FrontierSkills(m.MasteredSet())
	if len(frontier) == 0 {
		frontier = skillgraph.RootSkills()
	}

	best := frontier[0].ID
	bestPenalty := selector.RecencyPenalty(best, tested)
	for _, s := range frontier[1:] {
		penalty := selector.RecencyPenalty(s.ID, tested)
		if penalty < bestPenalty || (penalty == bestPenalty && rng.Intn(2) == 0) {
			best = s.ID
			bestPenalty = penalty
		}
	}
	return best
}

// simulateResponseTime draws a plausible answer time around the skill's
// fluency baseline. Wrong answers take longer on average.
func simulateResponseTime(skillID string, correct bool, rng *rand.Rand) float64 {
	base := 10.0
	if s, err := skillgraph.GetSkill(skillID); err == nil {
		base = s.FluencyBaseTimeSeconds
	}
	factor := 0.6 + rng.Float64()
	if !correct {
		factor += 0.5
	}
	return base * factor
}

// syntheticCatalog builds an item bank spanning every seeded skill, eight
// items per skill spread around the skill's base difficulty.
func syntheticCatalog(rng *rand.Rand) (*catalog.Catalog, error) {
	offsets := []float64{-0.9, -0.6, -0.3, -0.1, 0.1, 0.3, 0.6, 0.9}

	var items []catalog.Item
	for _, s := range skillgraph.AllSkills() {
		for i, off := range offsets {
			difficulty := clampF(s.BaseDifficulty+off, -3, 3)
			discrimination := 0.8 + rng.Float64()*1.2
			items = append(items, catalog.Item{
				ID:             fmt.Sprintf("%s-%d", s.ID, i+1),
				SkillID:        s.ID,
				Difficulty:     difficulty,
				Discrimination: discrimination,
				GradeLevel:     strconv.Itoa(s.GradeLevel),
				Confidence:     catalog.ConfidenceSimulated,
			})
		}
	}
	return catalog.New(items)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func printReportSummary(cmd *cobra.Command, r session.Report) {
	cmd.Printf("session %s: %s\n", r.SessionID, r.StopReason)
	cmd.Printf("  theta %.2f  SE %.2f  percentile %d  confidence %.0f%%\n",
		r.Theta, r.StandardError, r.Percentile, r.Confidence*100)
	cmd.Printf("  questions %d  correct %d  accuracy %.0f%%  duration %s\n",
		r.QuestionCount, r.CorrectCount, r.Accuracy*100, r.Duration.Round(time.Second))
	for _, s := range r.Skills {
		cmd.Printf("  %-24s %-8s %d/%d correct\n", s.SkillID, s.Category, s.Correct, s.Attempted)
	}
}
