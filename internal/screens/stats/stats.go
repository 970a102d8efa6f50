package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// statsLoadedMsg carries the computed stats once records are read.
type statsLoadedMsg struct {
	Stats progress.Stats
	Err   error
}

// StatsScreen renders overall learning progress.
type StatsScreen struct {
	catalog      []catalog.Question
	progressRepo store.ProgressRepo

	stats  progress.Stats
	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen backed by the given progress repository.
func New(cat []catalog.Question, progressRepo store.ProgressRepo) *StatsScreen {
	return &StatsScreen{
		catalog:      cat,
		progressRepo: progressRepo,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	cat, repo := s.catalog, s.progressRepo
	return func() tea.Msg {
		records := make(map[string]progress.Record)
		if repo != nil {
			loaded, err := repo.LoadAll(context.Background())
			if err != nil {
				return statsLoadedMsg{Err: err}
			}
			records = loaded
		}
		return statsLoadedMsg{Stats: progress.CalculateStats(records, cat)}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.stats = msg.Stats
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.errMsg != "" || msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading...")
	}

	st := s.stats
	var b strings.Builder
	b.WriteString("\n")

	countsLine := fmt.Sprintf("Catalog: %d questions    New: %d    Learning: %d    Mastered: %d",
		st.Total, st.New, st.Learning, st.Mastered)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(countsLine))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Overall accuracy: %.0f%%", st.Accuracy*100)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", barWidth(width)))

	if len(st.Topics) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("By topic")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		labelWidth := 0
		for _, ts := range st.Topics {
			if len(ts.Topic) > labelWidth {
				labelWidth = len(ts.Topic)
			}
		}

		for _, ts := range st.Topics {
			label := fmt.Sprintf("%-*s %3d/%-3d", labelWidth, ts.Topic, ts.Correct, ts.Total)
			bar := components.NewProgressBar(label, ts.Accuracy(), true, barWidth(width))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	weakest := progress.WeakestTopics(st, progress.DefaultWeakTopicLimit)
	if len(weakest) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Needs work")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(strings.Join(weakest, "    ")))
		b.WriteString("\n")
	}

	return b.String()
}

func barWidth(width int) int {
	w := width - 12
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}
