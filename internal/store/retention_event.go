package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRetentionEvent(ctx context.Context, data RetentionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RetentionEvent.Create().
		SetSequence(seqNum).
		SetSkillID(data.SkillID).
		SetCorrect(data.Correct).
		SetReason(data.Reason).
		SetStreakAfter(data.StreakAfter).
		SetStatusAfter(data.StatusAfter).
		SetDaysSincePractice(data.DaysSincePractice).
		SetPriority(data.Priority)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save retention event: %w", err)
	}
	return nil
}
