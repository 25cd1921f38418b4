package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SkillMasteryData is the persisted form of a single skill's mastery record.
type SkillMasteryData struct {
	SkillID            string                `json:"skill_id"`
	Status             string                `json:"status"`
	Theta              float64               `json:"theta"`
	StandardError      float64               `json:"standard_error"`
	ConsecutiveCorrect int                   `json:"consecutive_correct"`
	TotalAttempts      int                   `json:"total_attempts"`
	CorrectCount       int                   `json:"correct_count"`
	LastPracticed      time.Time             `json:"last_practiced"`
	MasteredAt         *time.Time            `json:"mastered_at,omitempty"`
	SpeedScores        []float64             `json:"speed_scores,omitempty"`
	Streak             int                   `json:"streak"`
	History            []PracticeAttemptData `json:"history,omitempty"`
}

// PracticeAttemptData is one persisted practice or probe attempt.
type PracticeAttemptData struct {
	At            time.Time `json:"at"`
	Theta         float64   `json:"theta"`
	StandardError float64   `json:"standard_error"`
	Difficulty    float64   `json:"difficulty"`
	Correct       bool      `json:"correct"`
}

// MasterySnapshotData is the persisted form of the full mastery map.
type MasterySnapshotData struct {
	Skills map[string]*SkillMasteryData `json:"skills"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version int                  `json:"version"`
	Theta   float64              `json:"theta"`
	Mastery *MasterySnapshotData `json:"mastery,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ResponseEventData captures a single answered item within a session.
type ResponseEventData struct {
	SessionID           string
	UserID              string
	ItemID              string
	SkillID             string
	Difficulty          float64
	Discrimination      float64
	Correct             bool
	ResponseTimeSeconds float64
	Substituted         bool
	Probe               bool
	ThetaAfter          float64
	StandardErrorAfter  float64
	QuestionNumber      int
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	UserID          string
	Action          string
	Mode            string
	StopReason      string
	Theta           float64
	StandardError   float64
	Percentile      float64
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// MasteryEventData captures a mastery status transition.
type MasteryEventData struct {
	SkillID       string
	FromStatus    string
	ToStatus      string
	Trigger       string
	Theta         float64
	StandardError float64
	SessionID     string
}

// RetentionEventData captures the outcome of a retention probe.
type RetentionEventData struct {
	SkillID           string
	Correct           bool
	Reason            string
	StreakAfter       int
	StatusAfter       string
	DaysSincePractice float64
	Priority          float64
	SessionID         string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendResponse records an answered item.
	AppendResponse(ctx context.Context, data ResponseEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendMasteryEvent records a mastery status transition.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// AppendRetentionEvent records a retention probe outcome.
	AppendRetentionEvent(ctx context.Context, data RetentionEventData) error

	// LatestResponseTime returns the timestamp of the most recent response
	// for the skill, or the zero time if none exist.
	LatestResponseTime(ctx context.Context, skillID string) (time.Time, error)

	// SkillAccuracy returns the all-time fraction of correct responses for
	// the skill, or 0 if none exist.
	SkillAccuracy(ctx context.Context, skillID string) (float64, error)

	// RecentProbeAccuracy returns accuracy and count over the last N
	// retention probes for the skill.
	RecentProbeAccuracy(ctx context.Context, skillID string, lastN int) (float64, int, error)
}

// CheckpointRecord is the persisted form of a post-session retention
// checkpoint.
type CheckpointRecord struct {
	ID        int
	TakenAt   time.Time
	Theta     float64
	Mastered  []string
	SessionID string
}

// CheckpointRepo manages retention checkpoints.
type CheckpointRepo interface {
	// Save stores a new checkpoint.
	Save(ctx context.Context, cp *CheckpointRecord) error

	// Latest returns the most recent checkpoint, or nil if none exist.
	Latest(ctx context.Context) (*CheckpointRecord, error)

	// All returns every checkpoint ordered oldest first.
	All(ctx context.Context) ([]*CheckpointRecord, error)
}
