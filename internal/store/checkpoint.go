package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathcat/ent"
	"github.com/abhisek/mathcat/ent/checkpoint"
)

// checkpointRepo implements CheckpointRepo using the ent client.
type checkpointRepo struct {
	client *ent.Client
}

func (r *checkpointRepo) Save(ctx context.Context, cp *CheckpointRecord) error {
	builder := r.client.Checkpoint.Create().
		SetTakenAt(cp.TakenAt).
		SetTheta(cp.Theta).
		SetMastered(cp.Mastered)

	if cp.SessionID != "" {
		builder = builder.SetSessionID(cp.SessionID)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}

func (r *checkpointRepo) Latest(ctx context.Context) (*CheckpointRecord, error) {
	c, err := r.client.Checkpoint.Query().
		Order(ent.Desc(checkpoint.FieldTakenAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest checkpoint: %w", err)
	}
	return entCheckpointToRecord(c), nil
}

func (r *checkpointRepo) All(ctx context.Context) ([]*CheckpointRecord, error) {
	cps, err := r.client.Checkpoint.Query().
		Order(ent.Asc(checkpoint.FieldTakenAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query checkpoints: %w", err)
	}

	records := make([]*CheckpointRecord, 0, len(cps))
	for _, c := range cps {
		records = append(records, entCheckpointToRecord(c))
	}
	return records, nil
}

func entCheckpointToRecord(c *ent.Checkpoint) *CheckpointRecord {
	return &CheckpointRecord{
		ID:        c.ID,
		TakenAt:   c.TakenAt,
		Theta:     c.Theta,
		Mastered:  append([]string(nil), c.Mastered...),
		SessionID: c.SessionID,
	}
}
