package progress

import "time"

// Mastery classifies a learner's command of a single question.
type Mastery string

const (
	MasteryNew      Mastery = "new"
	MasteryLearning Mastery = "learning"
	MasteryMastered Mastery = "mastered"
)

// ParseMastery parses a persisted mastery string. The second return is
// false for unknown values; callers should recompute from the stored counts
// instead of trusting a corrupt tag.
func ParseMastery(s string) (Mastery, bool) {
	switch Mastery(s) {
	case MasteryNew, MasteryLearning, MasteryMastered:
		return Mastery(s), true
	}
	return MasteryNew, false
}

// Classify derives mastery from lifetime attempt counts. The rule is
// recomputed from cumulative totals on every update, so a mastered question
// regresses to learning when later mistakes pull accuracy below 80%.
func Classify(attempts, correct int) Mastery {
	if attempts < 3 {
		return MasteryNew
	}
	accuracy := float64(correct) / float64(attempts)
	if attempts < 5 || accuracy < 0.8 {
		return MasteryLearning
	}
	return MasteryMastered
}

// Record holds cumulative attempt history for one question. It is a value
// type: Update and Reset return new records and never mutate the receiver.
// Attempts always equals CorrectCount + IncorrectCount.
type Record struct {
	QuestionID     string
	Attempts       int
	CorrectCount   int
	IncorrectCount int
	LastAttempted  time.Time
	Mastery        Mastery
}

// New returns a zero-state record for the question.
func New(questionID string) Record {
	return Record{
		QuestionID:    questionID,
		Mastery:       MasteryNew,
		LastAttempted: time.Now(),
	}
}

// Update records one attempt outcome and returns the resulting record, with
// mastery reclassified from the new totals.
func (r Record) Update(isCorrect bool) Record {
	r.Attempts++
	if isCorrect {
		r.CorrectCount++
	} else {
		r.IncorrectCount++
	}
	r.LastAttempted = time.Now()
	r.Mastery = Classify(r.Attempts, r.CorrectCount)
	return r
}

// Reset returns a fresh zero-state record for the same question.
func (r Record) Reset() Record {
	return New(r.QuestionID)
}

// ResetAll resets every record in the collection.
func ResetAll(records []Record) []Record {
	reset := make([]Record, len(records))
	for i, r := range records {
		reset[i] = r.Reset()
	}
	return reset
}
