package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizdeck/ent"
	entprogress "github.com/abhisek/quizdeck/ent/progress"
	"github.com/abhisek/quizdeck/internal/progress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) LoadAll(ctx context.Context) (map[string]progress.Record, error) {
	rows, err := r.client.Progress.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	records := make(map[string]progress.Record, len(rows))
	for _, row := range rows {
		rec := progress.Record{
			QuestionID:     row.QuestionID,
			Attempts:       row.Attempts,
			CorrectCount:   row.CorrectCount,
			IncorrectCount: row.IncorrectCount,
			LastAttempted:  row.LastAttempted,
		}

		// A stored mastery tag that no longer parses (corrupt row, or a
		// value from a newer build) is recomputed from the counts rather
		// than trusted.
		if m, ok := progress.ParseMastery(row.Mastery); ok {
			rec.Mastery = m
		} else {
			rec.Mastery = progress.Classify(rec.Attempts, rec.CorrectCount)
		}

		records[rec.QuestionID] = rec
	}
	return records, nil
}

func (r *progressRepo) Save(ctx context.Context, rec progress.Record) error {
	existing, err := r.client.Progress.Query().
		Where(entprogress.QuestionID(rec.QuestionID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress %s: %w", rec.QuestionID, err)
		}
		_, err = r.client.Progress.Create().
			SetQuestionID(rec.QuestionID).
			SetAttempts(rec.Attempts).
			SetCorrectCount(rec.CorrectCount).
			SetIncorrectCount(rec.IncorrectCount).
			SetLastAttempted(rec.LastAttempted).
			SetMastery(string(rec.Mastery)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress %s: %w", rec.QuestionID, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetAttempts(rec.Attempts).
		SetCorrectCount(rec.CorrectCount).
		SetIncorrectCount(rec.IncorrectCount).
		SetLastAttempted(rec.LastAttempted).
		SetMastery(string(rec.Mastery)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress %s: %w", rec.QuestionID, err)
	}
	return nil
}

func (r *progressRepo) ResetAll(ctx context.Context) error {
	if _, err := r.client.Progress.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}
