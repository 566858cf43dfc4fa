package store

import (
	"context"
	"fmt"

	"github.com/nmoreno/quizrush/ent"
	"github.com/nmoreno/quizrush/ent/sessionrecord"
)

// historyRepo implements HistoryRepo over the SessionRecord log.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Append(ctx context.Context, data SessionRecordData) error {
	_, err := r.client.SessionRecord.Create().
		SetClientID(data.ClientID).
		SetSessionID(data.SessionID).
		SetPlayerID(data.PlayerID).
		SetScore(data.Score).
		SetAnswered(data.Answered).
		SetCorrect(data.Correct).
		SetFinalDifficulty(data.FinalDifficulty).
		SetOutcome(data.Outcome).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *historyRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := r.client.SessionRecord.Query().
		Order(ent.Desc(sessionrecord.FieldPlayedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	out := make([]SessionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionRecord{
			SessionRecordData: SessionRecordData{
				ClientID:        row.ClientID,
				SessionID:       row.SessionID,
				PlayerID:        row.PlayerID,
				Score:           row.Score,
				Answered:        row.Answered,
				Correct:         row.Correct,
				FinalDifficulty: row.FinalDifficulty,
				Outcome:         row.Outcome,
			},
			PlayedAt: row.PlayedAt,
		})
	}
	return out, nil
}

func (r *historyRepo) Summary(ctx context.Context) (HistorySummary, error) {
	rows, err := r.client.SessionRecord.Query().All(ctx)
	if err != nil {
		return HistorySummary{}, fmt.Errorf("query history: %w", err)
	}

	var sum HistorySummary
	for _, row := range rows {
		sum.Sessions++
		sum.Answered += row.Answered
		sum.Correct += row.Correct
		if row.Score > sum.HighScore {
			sum.HighScore = row.Score
		}
		switch row.Outcome {
		case "completed":
			sum.Completed++
		case "gameover":
			sum.GameOvers++
		}
	}
	return sum, nil
}
