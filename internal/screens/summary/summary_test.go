package summary

import (
	"strings"
	"testing"

	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/quiz"
)

func TestView_ShowsScoreAndCounts(t *testing.T) {
	sess := quiz.NewSession(quiz.ModeQuiz)
	sess = sess.Update(true, 5)
	sess = sess.Update(false, 7)

	s := New(Data{Session: sess})
	view := s.View(80, 24)

	if !strings.Contains(view, "Score: 50") {
		t.Errorf("expected score in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Questions: 2") {
		t.Errorf("expected question count in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Correct: 1") {
		t.Errorf("expected correct count in view, got:\n%s", view)
	}
}

func TestView_ListsMasteryChanges(t *testing.T) {
	sess := quiz.NewSession(quiz.ModeQuiz)
	sess = sess.Update(true, 3)

	s := New(Data{
		Session: sess,
		Changes: []MasteryChange{
			{QuestionID: "q7", Topic: "space", From: progress.MasteryLearning, To: progress.MasteryMastered},
		},
	})
	view := s.View(80, 24)

	if !strings.Contains(view, "q7 (space)") {
		t.Errorf("expected mastery change entry, got:\n%s", view)
	}
	if !strings.Contains(view, "learning > mastered") {
		t.Errorf("expected transition arrow, got:\n%s", view)
	}
}

func TestView_NoChangesSectionWhenEmpty(t *testing.T) {
	sess := quiz.NewSession(quiz.ModeTimed)
	sess = sess.Update(true, 4)

	s := New(Data{Session: sess})
	view := s.View(80, 24)

	if strings.Contains(view, "Mastery changes") {
		t.Error("expected no mastery section for empty changes")
	}
}
