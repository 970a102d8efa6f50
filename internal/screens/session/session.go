package session

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/explain"
	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/summary"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// timedQuestionSeconds is the per-question allotment in timed mode. A
// question that runs out is recorded as incorrect with the full allotment
// counted against the time bonus.
const timedQuestionSeconds = 20

// Options carries the dependencies for one practice run.
type Options struct {
	Catalog []catalog.Question
	Config  quiz.Config
	Mode    quiz.Mode

	// Review selects questions needing review in mastery-priority order
	// instead of a shuffled filter of the catalog.
	Review bool

	Progress store.ProgressRepo
	Events   store.EventRepo

	// Explainer fetches explanations for questions that ship without
	// one. Nil disables fetching.
	Explainer explain.Provider
}

// SessionScreen implements screen.Screen for an active practice run.
type SessionScreen struct {
	opts Options

	questions []catalog.Question
	records   map[string]progress.Record
	sess      quiz.Session

	idx           int
	mc            components.MultiChoice
	questionStart time.Time
	timeLeft      int

	showingFeedback    bool
	showingQuitConfirm bool
	lastCorrect        bool
	timedOut           bool

	// revealed is the flashcard flip state: the answer is showing and
	// the learner self-grades with y or n.
	revealed bool

	explanation string
	fetching    bool
	spin        spinner.Model

	changes []summary.MasteryChange

	saveErr string
	errMsg  string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen. The question set is loaded asynchronously
// in Init.
func New(opts Options) *SessionScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return &SessionScreen{
		opts: opts,
		spin: sp,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.initSession()
}

func (s *SessionScreen) Title() string {
	switch s.opts.Mode {
	case quiz.ModeFlashcard:
		return "Flashcards"
	case quiz.ModeTimed:
		return "Timed Challenge"
	}
	if s.opts.Review {
		return "Review"
	}
	return "Quiz"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.opts.Mode == quiz.ModeFlashcard {
		if s.revealed {
			return []layout.KeyHint{
				{Key: "Y", Description: "Knew it"},
				{Key: "N", Description: "Didn't know"},
			}
		}
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "a-d", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.questions == nil {
		return renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	if s.revealed {
		return s.renderReveal(width)
	}
	return s.renderQuestion(width)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case explanationMsg:
		if msg.Index == s.idx && (s.showingFeedback || s.revealed) {
			s.fetching = false
			if msg.Err == nil {
				s.explanation = msg.Text
			}
		}
		return s, nil

	case persistDoneMsg:
		if msg.Err != nil {
			s.saveErr = msg.Err.Error()
		}
		return s, nil

	case spinner.TickMsg:
		if !s.fetching {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case advanceMsg:
		return s.handleAdvance()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// initSession loads progress records and picks the question set.
func (s *SessionScreen) initSession() tea.Cmd {
	opts := s.opts
	return func() tea.Msg {
		ctx := context.Background()

		records := make(map[string]progress.Record)
		if opts.Progress != nil {
			loaded, err := opts.Progress.LoadAll(ctx)
			if err != nil {
				return sessionInitMsg{Err: err}
			}
			records = loaded
		}

		var questions []catalog.Question
		if opts.Review {
			due := progress.QuestionsNeedingReview(opts.Catalog, records)
			questions = quiz.SortByMasteryPriority(due, masteryByID(records))
			if opts.Config.Count > 0 && opts.Config.Count < len(questions) {
				questions = questions[:opts.Config.Count]
			}
		} else {
			questions = quiz.SelectQuestions(opts.Catalog, opts.Config)
		}

		if len(questions) == 0 {
			if opts.Review {
				return sessionInitMsg{Err: errors.New("nothing to review, everything is mastered")}
			}
			return sessionInitMsg{Err: errors.New("no questions match the chosen filters")}
		}

		return sessionInitMsg{Questions: questions, Records: records}
	}
}

func (s *SessionScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.questions = msg.Questions
	s.records = msg.Records
	s.sess = quiz.NewSession(s.opts.Mode)

	var cmds []tea.Cmd
	if s.opts.Events != nil {
		sessID, mode := s.sess.ID, s.sess.Mode
		events := s.opts.Events
		cmds = append(cmds, func() tea.Msg {
			_ = events.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID: sessID,
				Action:    "start",
				Mode:      string(mode),
			})
			return nil
		})
	}

	cmds = append(cmds, s.presentQuestion())
	return s, tea.Batch(cmds...)
}

// presentQuestion sets up the current question and, in timed mode, starts
// the countdown.
func (s *SessionScreen) presentQuestion() tea.Cmd {
	q, ok := quiz.NextQuestion(s.questions, s.idx)
	if !ok {
		return func() tea.Msg { return sessionEndMsg{} }
	}

	s.mc = components.NewMultiChoice(q.Prompt, q.Choices, q.Correct)
	s.questionStart = time.Now()
	s.showingFeedback = false
	s.timedOut = false
	s.revealed = false
	s.explanation = ""
	s.fetching = false

	if s.opts.Mode == quiz.ModeTimed {
		s.timeLeft = timedQuestionSeconds
		return tickCmd(s.idx)
	}
	return nil
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if s.opts.Mode != quiz.ModeTimed || s.showingFeedback || s.showingQuitConfirm || s.questions == nil || s.errMsg != "" {
		return s, nil
	}

	// A tick scheduled for an earlier question can arrive after the
	// learner has advanced; letting it through would leave two live tick
	// chains draining the countdown at double speed.
	if msg.Index != s.idx {
		return s, nil
	}

	// The remaining time is derived from the wall clock rather than
	// counted down, so the display stays honest even if tick delivery
	// jitters.
	remaining := timedQuestionSeconds - int(time.Since(s.questionStart).Seconds())
	if remaining > 0 {
		s.timeLeft = remaining
		return s, tickCmd(s.idx)
	}

	// Out of time: graded as a wrong answer that used the whole
	// allotment.
	s.timeLeft = 0
	s.timedOut = true
	s.mc = s.mc.Reveal()
	return s, s.recordAnswer("", false, timedQuestionSeconds)
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state, any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.questions == nil {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay, any key advances.
	if s.showingFeedback {
		return s, func() tea.Msg { return advanceMsg{} }
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	// Flashcard flow: flip the card first, then self-grade. The choices
	// are never submitted as an answer.
	if s.opts.Mode == quiz.ModeFlashcard {
		if s.revealed {
			switch key {
			case "y", "Y":
				return s, s.recordFlashcard(true)
			case "n", "N":
				return s, s.recordFlashcard(false)
			}
			return s, nil
		}
		switch key {
		case "enter", "space", " ":
			return s, s.reveal()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if s.mc.Submitted {
		q := s.questions[s.idx]
		correct := quiz.CheckAnswer(q, s.mc.ChosenKey)
		elapsed := time.Since(s.questionStart).Seconds()
		return s, s.recordAnswer(s.mc.ChosenKey, correct, elapsed)
	}
	return s, cmd
}

// reveal flips the current flashcard to show its answer and explanation.
func (s *SessionScreen) reveal() tea.Cmd {
	s.mc = s.mc.Reveal()
	s.revealed = true

	q := s.questions[s.idx]
	if q.Explanation != "" {
		s.explanation = q.Explanation
		return nil
	}
	if s.opts.Explainer != nil {
		s.fetching = true
		return tea.Batch(s.fetchExplanation(q, ""), s.spin.Tick)
	}
	return nil
}

// recordFlashcard applies the learner's self-grade and moves straight to
// the next card; the answer was already shown, so there is no feedback
// pause.
func (s *SessionScreen) recordFlashcard(knewIt bool) tea.Cmd {
	elapsed := time.Since(s.questionStart).Seconds()
	cmd := s.recordAnswer("", knewIt, elapsed)
	s.showingFeedback = false
	s.revealed = false
	return tea.Batch(cmd, func() tea.Msg { return advanceMsg{} })
}

// recordAnswer applies one graded answer to the session and the progress
// record, shows feedback, and kicks off persistence and any explanation
// fetch.
func (s *SessionScreen) recordAnswer(choice string, correct bool, elapsedSeconds float64) tea.Cmd {
	q := s.questions[s.idx]

	s.sess = s.sess.Update(correct, elapsedSeconds)

	rec, ok := s.records[q.ID]
	if !ok {
		rec = progress.New(q.ID)
	}
	before := rec.Mastery
	rec = rec.Update(correct)
	s.records[q.ID] = rec
	if rec.Mastery != before {
		s.changes = append(s.changes, summary.MasteryChange{
			QuestionID: q.ID,
			Topic:      q.Topic,
			From:       before,
			To:         rec.Mastery,
		})
	}

	s.lastCorrect = correct
	s.showingFeedback = true

	var cmds []tea.Cmd
	cmds = append(cmds, s.persistAnswer(q, rec, choice, correct, elapsedSeconds))

	// Flashcards fetch their explanation at reveal time, before grading.
	if s.opts.Mode != quiz.ModeFlashcard {
		if q.Explanation != "" {
			s.explanation = q.Explanation
		} else if s.opts.Explainer != nil {
			s.fetching = true
			cmds = append(cmds, s.fetchExplanation(q, choice), s.spin.Tick)
		}
	}

	return tea.Batch(cmds...)
}

func (s *SessionScreen) persistAnswer(q catalog.Question, rec progress.Record, choice string, correct bool, elapsedSeconds float64) tea.Cmd {
	progressRepo, events := s.opts.Progress, s.opts.Events
	sessID := s.sess.ID
	return func() tea.Msg {
		ctx := context.Background()
		if progressRepo != nil {
			if err := progressRepo.Save(ctx, rec); err != nil {
				return persistDoneMsg{Err: err}
			}
		}
		if events != nil {
			err := events.AppendAttemptEvent(ctx, store.AttemptEventData{
				SessionID:  sessID,
				QuestionID: q.ID,
				Topic:      q.Topic,
				Grade:      string(q.Grade),
				Choice:     choice,
				Correct:    correct,
				TimeSecs:   elapsedSeconds,
			})
			if err != nil {
				return persistDoneMsg{Err: err}
			}
		}
		return persistDoneMsg{}
	}
}

func (s *SessionScreen) fetchExplanation(q catalog.Question, choice string) tea.Cmd {
	explainer := s.opts.Explainer
	index := s.idx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		text, err := explainer.Explain(ctx, explain.Input{
			Question:  q,
			ChosenKey: choice,
		})
		return explanationMsg{Index: index, Text: text, Err: err}
	}
}

func (s *SessionScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	s.idx++
	if quiz.IsComplete(s.idx, len(s.questions)) {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	return s, s.presentQuestion()
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	sess := s.sess
	changes := s.changes

	var cmds []tea.Cmd
	if s.opts.Events != nil && sess.QuestionsAnswered > 0 {
		events := s.opts.Events
		cmds = append(cmds, func() tea.Msg {
			_ = events.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID:         sess.ID,
				Action:            "end",
				Mode:              string(sess.Mode),
				QuestionsAnswered: sess.QuestionsAnswered,
				CorrectAnswers:    sess.CorrectAnswers,
				DurationSecs:      sess.TimeElapsed,
				Score:             sess.Score,
			})
			return nil
		})
	}

	if sess.QuestionsAnswered == 0 {
		// Quit before answering anything, nothing to summarize.
		cmds = append(cmds, func() tea.Msg { return router.PopScreenMsg{} })
		return s, tea.Batch(cmds...)
	}

	cmds = append(cmds, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: summary.New(summary.Data{Session: sess, Changes: changes}),
		}
	})
	return s, tea.Batch(cmds...)
}

// masteryByID projects records down to the mastery tag the sorter needs.
func masteryByID(records map[string]progress.Record) map[string]progress.Mastery {
	m := make(map[string]progress.Mastery, len(records))
	for id, rec := range records {
		m[id] = rec.Mastery
	}
	return m
}

// tickCmd returns a 1-second tick command for the timed countdown of the
// question at index.
func tickCmd(index int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{Index: index}
	})
}
