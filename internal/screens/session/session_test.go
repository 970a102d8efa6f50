package session

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/store"
)

// mockProgressRepo implements store.ProgressRepo for testing.
type mockProgressRepo struct {
	records map[string]progress.Record
	saved   []progress.Record
}

func (m *mockProgressRepo) LoadAll(_ context.Context) (map[string]progress.Record, error) {
	out := make(map[string]progress.Record, len(m.records))
	for id, rec := range m.records {
		out[id] = rec
	}
	return out, nil
}

func (m *mockProgressRepo) Save(_ context.Context, rec progress.Record) error {
	if m.records == nil {
		m.records = make(map[string]progress.Record)
	}
	m.records[rec.QuestionID] = rec
	m.saved = append(m.saved, rec)
	return nil
}

func (m *mockProgressRepo) ResetAll(_ context.Context) error {
	m.records = nil
	return nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	attemptEvents []store.AttemptEventData
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, data store.AttemptEventData) error {
	m.attemptEvents = append(m.attemptEvents, data)
	return nil
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func testQuestions() []catalog.Question {
	return []catalog.Question{
		{
			ID:      "q1",
			Grade:   catalog.GradeElementary,
			Prompt:  "What do plants need for photosynthesis?",
			Choices: map[string]string{"a": "Sunlight", "b": "Darkness", "c": "Salt", "d": "Wind"},
			Correct: "a",
			Topic:   "biology",
		},
		{
			ID:          "q2",
			Grade:       catalog.GradeElementary,
			Prompt:      "Which planet is closest to the sun?",
			Choices:     map[string]string{"a": "Earth", "b": "Mercury", "c": "Mars", "d": "Venus"},
			Correct:     "b",
			Topic:       "space",
			Explanation: "Mercury orbits nearest the sun.",
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// runCmd executes a command and feeds resulting messages back into the
// screen, expanding batches, until no commands remain. Countdown ticks are
// dropped so timed-mode tests drive the timer explicitly.
func runCmd(s screen.Screen, cmd tea.Cmd) screen.Screen {
	if cmd == nil {
		return s
	}
	msg := cmd()
	if msg == nil {
		return s
	}
	if _, ok := msg.(timerTickMsg); ok {
		return s
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			s = runCmd(s, c)
		}
		return s
	}
	next, nextCmd := s.Update(msg)
	return runCmd(next, nextCmd)
}

func startedScreen(t *testing.T, mode quiz.Mode, progressRepo *mockProgressRepo, events *mockEventRepo) *SessionScreen {
	t.Helper()

	s := New(Options{
		Catalog:  testQuestions(),
		Config:   quiz.Config{},
		Mode:     mode,
		Progress: progressRepo,
		Events:   events,
	})

	msg := s.initSession()()
	init, ok := msg.(sessionInitMsg)
	if !ok {
		t.Fatalf("initSession returned %T, want sessionInitMsg", msg)
	}
	if init.Err != nil {
		t.Fatalf("initSession error: %v", init.Err)
	}

	scr := runCmd(s, func() tea.Msg { return msg })
	return scr.(*SessionScreen)
}

func TestSessionScreen_InitLoadsQuestions(t *testing.T) {
	s := startedScreen(t, quiz.ModeQuiz, &mockProgressRepo{}, &mockEventRepo{})

	if len(s.questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(s.questions))
	}
	if s.sess.ID == "" {
		t.Error("expected session to be created")
	}
}

func TestSessionScreen_InitAppendsStartEvent(t *testing.T) {
	events := &mockEventRepo{}
	s := startedScreen(t, quiz.ModeTimed, &mockProgressRepo{}, events)

	if len(events.sessionEvents) != 1 {
		t.Fatalf("expected 1 session event, got %d", len(events.sessionEvents))
	}
	ev := events.sessionEvents[0]
	if ev.Action != "start" || ev.Mode != "timed" || ev.SessionID != s.sess.ID {
		t.Errorf("unexpected start event: %+v", ev)
	}
}

func TestSessionScreen_CorrectAnswer(t *testing.T) {
	progressRepo := &mockProgressRepo{}
	events := &mockEventRepo{}
	s := startedScreen(t, quiz.ModeQuiz, progressRepo, events)

	correct := rune(s.questions[0].Correct[0])
	scr := runCmd(s, commandFor(s.Update(keyPress(correct))))
	s = scr.(*SessionScreen)

	if !s.showingFeedback {
		t.Fatal("expected feedback after answering")
	}
	if !s.lastCorrect {
		t.Error("expected answer to be graded correct")
	}
	if s.sess.QuestionsAnswered != 1 || s.sess.CorrectAnswers != 1 {
		t.Errorf("session counters = %d/%d, want 1/1",
			s.sess.CorrectAnswers, s.sess.QuestionsAnswered)
	}

	rec := s.records[s.questions[0].ID]
	if rec.Attempts != 1 || rec.CorrectCount != 1 {
		t.Errorf("record = %d attempts %d correct, want 1/1", rec.Attempts, rec.CorrectCount)
	}
	if len(progressRepo.saved) != 1 {
		t.Errorf("expected 1 saved record, got %d", len(progressRepo.saved))
	}
	if len(events.attemptEvents) != 1 {
		t.Fatalf("expected 1 attempt event, got %d", len(events.attemptEvents))
	}
	if !events.attemptEvents[0].Correct {
		t.Error("expected attempt event marked correct")
	}
}

func TestSessionScreen_WrongAnswer(t *testing.T) {
	s := startedScreen(t, quiz.ModeQuiz, &mockProgressRepo{}, &mockEventRepo{})

	wrong := "a"
	if s.questions[0].Correct == "a" {
		wrong = "b"
	}
	scr := runCmd(s, commandFor(s.Update(keyPress(rune(wrong[0])))))
	s = scr.(*SessionScreen)

	if s.lastCorrect {
		t.Error("expected answer to be graded incorrect")
	}
	if s.sess.CorrectAnswers != 0 || s.sess.QuestionsAnswered != 1 {
		t.Errorf("session counters = %d/%d, want 0/1",
			s.sess.CorrectAnswers, s.sess.QuestionsAnswered)
	}
	rec := s.records[s.questions[0].ID]
	if rec.IncorrectCount != 1 {
		t.Errorf("record incorrect count = %d, want 1", rec.IncorrectCount)
	}
}

func TestSessionScreen_TimedTimeout(t *testing.T) {
	s := startedScreen(t, quiz.ModeTimed, &mockProgressRepo{}, &mockEventRepo{})

	// Backdate the question start so the full allotment has elapsed.
	s.questionStart = time.Now().Add(-timedQuestionSeconds * time.Second)
	var scr screen.Screen
	scr = runCmd(s, commandFor(s.handleTimerTick(timerTickMsg{Index: s.idx})))
	s = scr.(*SessionScreen)

	if !s.timedOut {
		t.Fatal("expected timeout state")
	}
	if !s.showingFeedback || s.lastCorrect {
		t.Error("expected timeout graded as incorrect with feedback shown")
	}
	if s.sess.TimeElapsed != timedQuestionSeconds {
		t.Errorf("TimeElapsed = %v, want full allotment %d",
			s.sess.TimeElapsed, timedQuestionSeconds)
	}
}

func TestSessionScreen_TimerFollowsWallClock(t *testing.T) {
	s := startedScreen(t, quiz.ModeTimed, &mockProgressRepo{}, &mockEventRepo{})

	s.questionStart = time.Now().Add(-7 * time.Second)
	_, cmd := s.handleTimerTick(timerTickMsg{Index: s.idx})

	if s.timeLeft != timedQuestionSeconds-7 {
		t.Errorf("timeLeft = %d, want %d", s.timeLeft, timedQuestionSeconds-7)
	}
	if cmd == nil {
		t.Error("expected the countdown to reschedule while time remains")
	}
}

func TestSessionScreen_StaleTimerTickIgnored(t *testing.T) {
	s := startedScreen(t, quiz.ModeTimed, &mockProgressRepo{}, &mockEventRepo{})

	// Answer the first question and advance to the second.
	var scr screen.Screen = s
	correct := rune(s.questions[0].Correct[0])
	scr = runCmd(scr, commandFor(scr.Update(keyPress(correct))))
	scr = runCmd(scr, commandFor(scr.Update(keyPress(' '))))
	s = scr.(*SessionScreen)
	if s.idx != 1 {
		t.Fatalf("expected to be on question 2, got index %d", s.idx)
	}

	// A tick scheduled for the previous question must not touch the
	// countdown or spawn a second tick chain.
	_, cmd := s.handleTimerTick(timerTickMsg{Index: 0})

	if s.timeLeft != timedQuestionSeconds {
		t.Errorf("timeLeft = %d after stale tick, want %d", s.timeLeft, timedQuestionSeconds)
	}
	if cmd != nil {
		t.Error("stale tick must not reschedule")
	}
}

func TestSessionScreen_FlashcardRevealsBeforeGrading(t *testing.T) {
	progressRepo := &mockProgressRepo{}
	s := startedScreen(t, quiz.ModeFlashcard, progressRepo, &mockEventRepo{})

	// Choice keys do not submit an answer while the card is face down.
	var scr screen.Screen = s
	scr = runCmd(scr, commandFor(scr.Update(keyPress('a'))))
	s = scr.(*SessionScreen)
	if s.revealed || s.sess.QuestionsAnswered != 0 {
		t.Fatal("expected choice keys ignored before reveal")
	}

	scr = runCmd(scr, commandFor(scr.Update(keyPress(' '))))
	s = scr.(*SessionScreen)
	if !s.revealed {
		t.Fatal("expected space to flip the card")
	}
	if !s.mc.Submitted || s.mc.ChosenKey != "" {
		t.Error("expected the correct choice revealed without a selection")
	}
	if s.sess.QuestionsAnswered != 0 {
		t.Error("revealing must not grade the card")
	}

	scr = runCmd(scr, commandFor(scr.Update(keyPress('y'))))
	s = scr.(*SessionScreen)
	if s.sess.QuestionsAnswered != 1 || s.sess.CorrectAnswers != 1 {
		t.Errorf("session counters = %d/%d, want 1/1",
			s.sess.CorrectAnswers, s.sess.QuestionsAnswered)
	}
	if s.idx != 1 {
		t.Errorf("expected advance to next card, got index %d", s.idx)
	}
	if s.revealed {
		t.Error("expected next card face down")
	}
	if len(progressRepo.saved) != 1 {
		t.Errorf("expected 1 saved record, got %d", len(progressRepo.saved))
	}
}

func TestSessionScreen_FlashcardSelfGradeIncorrect(t *testing.T) {
	s := startedScreen(t, quiz.ModeFlashcard, &mockProgressRepo{}, &mockEventRepo{})
	firstID := s.questions[0].ID

	var scr screen.Screen = s
	scr = runCmd(scr, commandFor(scr.Update(keyPress(' '))))
	scr = runCmd(scr, commandFor(scr.Update(keyPress('n'))))
	s = scr.(*SessionScreen)

	if s.sess.QuestionsAnswered != 1 || s.sess.CorrectAnswers != 0 {
		t.Errorf("session counters = %d/%d, want 0/1",
			s.sess.CorrectAnswers, s.sess.QuestionsAnswered)
	}
	rec := s.records[firstID]
	if rec.IncorrectCount != 1 {
		t.Errorf("record incorrect count = %d, want 1", rec.IncorrectCount)
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s := startedScreen(t, quiz.ModeQuiz, &mockProgressRepo{}, &mockEventRepo{})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	s = scr.(*SessionScreen)
	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = s.Update(keyPress('n'))
	s = scr.(*SessionScreen)
	if s.showingQuitConfirm {
		t.Error("expected quit confirmation dismissed")
	}
}

func TestSessionScreen_CompleteSessionEndsWithEvent(t *testing.T) {
	events := &mockEventRepo{}
	s := startedScreen(t, quiz.ModeQuiz, &mockProgressRepo{}, events)

	var scr screen.Screen = s
	for range testQuestions() {
		cur := scr.(*SessionScreen)
		correct := rune(cur.questions[cur.idx].Correct[0])
		scr = runCmd(scr, commandFor(scr.Update(keyPress(correct))))
		// Any key dismisses feedback and advances.
		scr = runCmd(scr, commandFor(scr.Update(keyPress(' '))))
	}

	s = scr.(*SessionScreen)
	if len(events.sessionEvents) != 2 {
		t.Fatalf("expected start+end events, got %d", len(events.sessionEvents))
	}
	end := events.sessionEvents[1]
	if end.Action != "end" {
		t.Fatalf("expected end event, got %q", end.Action)
	}
	if end.QuestionsAnswered != 2 || end.CorrectAnswers != 2 {
		t.Errorf("end event counters = %d/%d, want 2/2",
			end.CorrectAnswers, end.QuestionsAnswered)
	}
	if end.Score != 100 {
		t.Errorf("end event score = %d, want 100", end.Score)
	}
}

func TestSessionScreen_ReviewSkipsMastered(t *testing.T) {
	progressRepo := &mockProgressRepo{
		records: map[string]progress.Record{
			"q1": {QuestionID: "q1", Attempts: 6, CorrectCount: 6, Mastery: progress.MasteryMastered},
		},
	}

	s := New(Options{
		Catalog:  testQuestions(),
		Mode:     quiz.ModeQuiz,
		Review:   true,
		Progress: progressRepo,
		Events:   &mockEventRepo{},
	})

	msg := s.initSession()()
	init := msg.(sessionInitMsg)
	if init.Err != nil {
		t.Fatalf("initSession error: %v", init.Err)
	}
	if len(init.Questions) != 1 || init.Questions[0].ID != "q2" {
		t.Errorf("expected review set [q2], got %v", questionIDs(init.Questions))
	}
}

func TestSessionScreen_ViewStates(t *testing.T) {
	s := New(Options{Catalog: testQuestions(), Mode: quiz.ModeQuiz})
	if s.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}

	s.errMsg = "test error"
	if s.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}

// commandFor discards the updated screen from Update and returns its
// command; callers that need the screen use runCmd's return instead.
func commandFor(_ screen.Screen, cmd tea.Cmd) tea.Cmd {
	return cmd
}

func questionIDs(qs []catalog.Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}
