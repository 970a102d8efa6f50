package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/quizdeck/internal/progress"
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
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	records, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}

	rec := progress.Record{
		QuestionID:     "q017",
		Attempts:       5,
		CorrectCount:   4,
		IncorrectCount: 1,
		LastAttempted:  time.Now().UTC().Truncate(time.Second),
		Mastery:        progress.MasteryMastered,
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	records, err = repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got, ok := records["q017"]
	if !ok {
		t.Fatal("saved record missing on load")
	}
	if got.Attempts != rec.Attempts || got.CorrectCount != rec.CorrectCount ||
		got.IncorrectCount != rec.IncorrectCount || got.Mastery != rec.Mastery {
		t.Errorf("round trip changed record: got %+v, want %+v", got, rec)
	}
	if !got.LastAttempted.Equal(rec.LastAttempted) {
		t.Errorf("lastAttempted = %v, want %v", got.LastAttempted, rec.LastAttempted)
	}
}

func TestProgressSaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	rec := progress.New("q001").Update(true)
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("first save: %v", err)
	}

	rec = rec.Update(false)
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("second save: %v", err)
	}

	records, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after upsert, got %d", len(records))
	}
	if got := records["q001"]; got.Attempts != 2 || got.CorrectCount != 1 {
		t.Errorf("unexpected record after upsert: %+v", got)
	}
}

func TestProgressResetAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	for _, id := range []string{"q001", "q002", "q003"} {
		if err := repo.Save(ctx, progress.New(id).Update(true)); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	if err := repo.ResetAll(ctx); err != nil {
		t.Fatalf("reset all: %v", err)
	}

	records, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records after reset, got %d", len(records))
	}
}

func TestEventSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAppendEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		Action:    "start",
		Mode:      "timed",
	})
	if err != nil {
		t.Fatalf("append session start: %v", err)
	}

	err = repo.AppendAttemptEvent(ctx, AttemptEventData{
		SessionID:  "sess-1",
		QuestionID: "q003",
		Topic:      "weather",
		Grade:      "elementary",
		Choice:     "c",
		Correct:    true,
		TimeSecs:   4.2,
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:         "sess-1",
		Action:            "end",
		Mode:              "timed",
		QuestionsAnswered: 1,
		CorrectAnswers:    1,
		DurationSecs:      4.2,
		Score:             116,
	})
	if err != nil {
		t.Fatalf("append session end: %v", err)
	}

	attempts, err := s.Client().AttemptEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempt events = %d, want 1", attempts)
	}
}
