package quiz

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks one bounded practice run. It is a value type: Update
// returns a new Session and never mutates its receiver, so callers can keep
// earlier snapshots safely.
type Session struct {
	// ID groups persisted events belonging to this run.
	ID string

	// Mode is the kind of run; it decides the scoring policy.
	Mode Mode

	// QuestionsAnswered counts every recorded answer, right or wrong.
	QuestionsAnswered int

	// CorrectAnswers counts answers that matched the correct choice.
	CorrectAnswers int

	// TimeElapsed is cumulative answering time in seconds.
	TimeElapsed float64

	// Score is recomputed from the cumulative totals on every update.
	Score int

	// StartedAt is when the run began.
	StartedAt time.Time
}

// NewSession starts a run in the given mode with all counters at zero.
func NewSession(mode Mode) Session {
	return Session{
		ID:        uuid.NewString(),
		Mode:      mode,
		StartedAt: time.Now(),
	}
}

// Update records one answered question and returns the resulting session.
// The score always reflects cumulative performance across the whole run,
// not just the latest answer.
func (s Session) Update(isCorrect bool, timeTakenSeconds float64) Session {
	s.QuestionsAnswered++
	if isCorrect {
		s.CorrectAnswers++
	}
	s.TimeElapsed += timeTakenSeconds
	s.Score = CalculateScore(s.CorrectAnswers, s.QuestionsAnswered, s.TimeElapsed, s.Mode)
	return s
}
