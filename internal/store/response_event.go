package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathcat/ent"
	"github.com/abhisek/mathcat/ent/responseevent"
)

func (r *eventRepo) AppendResponse(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetItemID(data.ItemID).
		SetSkillID(data.SkillID).
		SetDifficulty(data.Difficulty).
		SetDiscrimination(data.Discrimination).
		SetCorrect(data.Correct).
		SetResponseTimeSeconds(data.ResponseTimeSeconds).
		SetSubstituted(data.Substituted).
		SetProbe(data.Probe).
		SetThetaAfter(data.ThetaAfter).
		SetStandardErrorAfter(data.StandardErrorAfter).
		SetQuestionNumber(data.QuestionNumber).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestResponseTime(ctx context.Context, skillID string) (time.Time, error) {
	re, err := r.client.ResponseEvent.Query().
		Where(responseevent.SkillID(skillID)).
		Order(ent.Desc(responseevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest response time: %w", err)
	}
	return re.Timestamp, nil
}

func (r *eventRepo) SkillAccuracy(ctx context.Context, skillID string) (float64, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(responseevent.SkillID(skillID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query skill accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) RecentProbeAccuracy(ctx context.Context, skillID string, lastN int) (float64, int, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(
			responseevent.SkillID(skillID),
			responseevent.Probe(true),
		).
		Order(ent.Desc(responseevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query probe responses: %w", err)
	}

	count := len(events)
	if count == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}

	return float64(correct) / float64(count), count, nil
}
