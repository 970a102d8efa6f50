package quiz

import (
	"reflect"
	"testing"
)

func TestNewSession_ZeroCounters(t *testing.T) {
	s := NewSession(ModeTimed)
	if s.QuestionsAnswered != 0 || s.CorrectAnswers != 0 || s.TimeElapsed != 0 || s.Score != 0 {
		t.Errorf("new session has nonzero counters: %+v", s)
	}
	if s.Mode != ModeTimed {
		t.Errorf("mode = %v, want timed", s.Mode)
	}
	if s.ID == "" {
		t.Error("session has no id")
	}
	if s.StartedAt.IsZero() {
		t.Error("session has no start time")
	}
}

func TestSession_UpdateNeverMutatesInput(t *testing.T) {
	s := NewSession(ModeQuiz)
	s = s.Update(true, 4)

	before := s
	updated := s.Update(false, 6)

	if !reflect.DeepEqual(s, before) {
		t.Errorf("input session mutated: before %+v, after %+v", before, s)
	}
	if updated.QuestionsAnswered != 2 || updated.CorrectAnswers != 1 || updated.TimeElapsed != 10 {
		t.Errorf("unexpected updated session: %+v", updated)
	}
}

func TestSession_ScoreTracksCumulativeTotals(t *testing.T) {
	s := NewSession(ModeQuiz)

	s = s.Update(true, 3)
	if s.Score != 100 {
		t.Errorf("after 1/1: score = %d, want 100", s.Score)
	}
	s = s.Update(false, 3)
	if s.Score != 50 {
		t.Errorf("after 1/2: score = %d, want 50", s.Score)
	}
	s = s.Update(false, 3)
	if s.Score != 33 {
		t.Errorf("after 1/3: score = %d, want 33", s.Score)
	}
}

func TestSession_TimedEndToEnd(t *testing.T) {
	// A 10-question timed run, all correct, averaging 5s per question.
	s := NewSession(ModeTimed)
	for i := 0; i < 10; i++ {
		s = s.Update(true, 5)
	}

	if s.QuestionsAnswered != 10 {
		t.Errorf("questionsAnswered = %d, want 10", s.QuestionsAnswered)
	}
	if s.CorrectAnswers != 10 {
		t.Errorf("correctAnswers = %d, want 10", s.CorrectAnswers)
	}
	if s.TimeElapsed != 50 {
		t.Errorf("timeElapsed = %v, want 50", s.TimeElapsed)
	}
	if s.Score != 115 {
		t.Errorf("score = %d, want 115", s.Score)
	}
}
