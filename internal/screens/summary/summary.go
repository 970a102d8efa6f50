package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MasteryChange records one question whose mastery level moved during the
// session, in either direction.
type MasteryChange struct {
	QuestionID string
	Topic      string
	From       progress.Mastery
	To         progress.Mastery
}

// Data is everything the summary displays about a finished session.
type Data struct {
	Session quiz.Session
	Changes []MasteryChange
}

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	data Data
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(data Data) *SummaryScreen {
	return &SummaryScreen{data: data}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop both summary and session screens to get back to home.
			return s, tea.Batch(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return router.PopScreenMsg{} },
			)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sess := s.data.Session

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	// Score line. Flashcard runs are about recall, not points, so the
	// score is de-emphasized there.
	scoreStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true)
	if sess.Mode == quiz.ModeFlashcard {
		scoreStyle = scoreStyle.Foreground(theme.TextDim).Bold(false)
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d", sess.Score)))
	b.WriteString("\n\n")

	mins := int(sess.TimeElapsed) / 60
	secs := int(sess.TimeElapsed) % 60
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Time: %d:%02d",
		sess.QuestionsAnswered, sess.CorrectAnswers, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if len(s.data.Changes) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Mastery changes")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, ch := range s.data.Changes {
			label := ch.QuestionID
			if ch.Topic != "" {
				label = fmt.Sprintf("%s (%s)", ch.QuestionID, ch.Topic)
			}
			line := fmt.Sprintf("  %s    %s > %s", label, ch.From, ch.To)

			style := lipgloss.NewStyle().Foreground(theme.Text)
			switch {
			case ch.To == progress.MasteryMastered:
				style = style.Foreground(theme.Success)
			case ch.From == progress.MasteryMastered:
				style = style.Foreground(theme.Error)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				style.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
