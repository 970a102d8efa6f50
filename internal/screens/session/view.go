package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// renderQuestion renders the active question display.
func (s *SessionScreen) renderQuestion(width int) string {
	q := s.questions[s.idx]

	var b strings.Builder

	// Info line: topic and position on the left, running score and
	// countdown on the right.
	topicLabel := q.Topic
	if topicLabel == "" {
		topicLabel = "general"
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", topicLabel))

	right := fmt.Sprintf("Q %d/%d  %s %d",
		s.idx+1,
		len(s.questions),
		lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
		s.sess.CorrectAnswers,
	)
	if s.opts.Mode == quiz.ModeTimed {
		timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		if s.timeLeft <= 5 {
			timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		right += "  " + timerStyle.Render(fmt.Sprintf("0:%02d", s.timeLeft))
	}
	infoRight := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	return b.String()
}

// renderFeedback renders the graded answer with its explanation.
func (s *SessionScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	verdict := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true)
	switch {
	case s.timedOut:
		b.WriteString(verdict.Foreground(theme.Error).Render("Time's up!"))
	case s.lastCorrect:
		b.WriteString(verdict.Foreground(theme.Success).Render("Correct!"))
	default:
		b.WriteString(verdict.Foreground(theme.Error).Render("Not quite"))
	}
	b.WriteString("\n\n")

	// The submitted selector highlights the correct choice and, when
	// wrong, the learner's pick.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	b.WriteString("\n")

	switch {
	case s.fetching:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.spin.View() + " Fetching explanation..."))
		b.WriteString("\n\n")
	case s.explanation != "":
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		exp := expStyle.Render(s.explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	// Mastery change for this question, if the last answer caused one.
	if len(s.changes) > 0 {
		last := s.changes[len(s.changes)-1]
		if last.QuestionID == s.questions[s.idx].ID {
			var note string
			style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true)
			switch last.To {
			case progress.MasteryMastered:
				note = "Question mastered!"
				style = style.Foreground(theme.Accent)
			case progress.MasteryLearning:
				if last.From == progress.MasteryMastered {
					note = "Mastery slipped, back to learning"
					style = style.Foreground(theme.Error)
				} else {
					note = "Now learning this one"
					style = style.Foreground(theme.Secondary)
				}
			}
			if note != "" {
				b.WriteString(style.Render(note))
				b.WriteString("\n\n")
			}
		}
	}

	if s.saveErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Save failed: %s", s.saveErr)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderReveal renders a flipped flashcard awaiting the learner's
// self-grade.
func (s *SessionScreen) renderReveal(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	// The revealed selector highlights the correct choice.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	b.WriteString("\n")

	switch {
	case s.fetching:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.spin.View() + " Fetching explanation..."))
		b.WriteString("\n\n")
	case s.explanation != "":
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		exp := expStyle.Render(s.explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Did you know it?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[Y] Yes    [N] No"))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answered questions are already saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your session...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
