package store

import (
	"context"

	"github.com/abhisek/quizdeck/internal/progress"
)

// ProgressRepo persists per-question progress records. The tracker owns
// the update and classification rules; this layer only owns durability and
// must round-trip records exactly.
type ProgressRepo interface {
	// LoadAll returns every persisted record keyed by question id.
	LoadAll(ctx context.Context) (map[string]progress.Record, error)

	// Save upserts a record by question id.
	Save(ctx context.Context, rec progress.Record) error

	// ResetAll deletes every record, returning the learner to zero state.
	ResetAll(ctx context.Context) error
}

// AttemptEventData captures one answered question for the event log.
type AttemptEventData struct {
	SessionID  string
	QuestionID string
	Topic      string
	Grade      string
	Choice     string
	Correct    bool
	TimeSecs   float64
}

// SessionEventData captures a session lifecycle event. The counters are
// meaningful on "end" actions only.
type SessionEventData struct {
	SessionID         string
	Action            string
	Mode              string
	QuestionsAnswered int
	CorrectAnswers    int
	DurationSecs      float64
	Score             int
}

// EventRepo provides append access to the domain event log.
type EventRepo interface {
	// AppendAttemptEvent records an answered question.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
}
