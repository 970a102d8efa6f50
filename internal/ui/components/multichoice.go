package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector component. Choices are keyed
// by the catalog choice keys a-d.
type MultiChoice struct {
	Prompt     string
	Choices    map[string]string
	CorrectKey string
	Selected   int // index into catalog.ChoiceKeys
	Submitted  bool
	ChosenKey  string
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(prompt string, choices map[string]string, correctKey string) MultiChoice {
	return MultiChoice{
		Prompt:     prompt,
		Choices:    choices,
		CorrectKey: correctKey,
		Selected:   0,
		Submitted:  false,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Pressing a choice key
// submits that choice directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(catalog.ChoiceKeys)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenKey = catalog.ChoiceKeys[m.Selected]
	case "a", "b", "c", "d":
		m.Submitted = true
		m.ChosenKey = key
	}

	return m, nil
}

// Reveal marks the component submitted without a chosen answer, so the view
// highlights the correct choice only. Flashcard mode uses this.
func (m MultiChoice) Reveal() MultiChoice {
	m.Submitted = true
	m.ChosenKey = ""
	return m
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(m.Prompt) + "\n\n"

	for i, key := range catalog.ChoiceKeys {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, key, m.Choices[key])

		if m.Submitted {
			if key == m.CorrectKey {
				s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
			} else if key == m.ChosenKey {
				s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenKey == m.CorrectKey
}
