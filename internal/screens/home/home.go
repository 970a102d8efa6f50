package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/explain"
	"github.com/abhisek/quizdeck/internal/progress"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	sessionscreen "github.com/abhisek/quizdeck/internal/screens/session"
	statsscreen "github.com/abhisek/quizdeck/internal/screens/stats"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Options carries the shared dependencies the home screen hands to the
// screens it launches.
type Options struct {
	Catalog   []catalog.Question
	Config    quiz.Config
	Progress  store.ProgressRepo
	Events    store.EventRepo
	Explainer explain.Provider
}

// badgesMsg carries the header badge counts read from the store.
type badgesMsg struct {
	Mastered  int
	ReviewDue int
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	opts Options

	menu      components.Menu
	mastered  int
	reviewDue int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.BadgeProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{opts: opts}

	sessionItem := func(label string, mode quiz.Mode, review bool) components.MenuItem {
		return components.MenuItem{Label: label, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessionscreen.New(sessionscreen.Options{
						Catalog:   opts.Catalog,
						Config:    opts.Config,
						Mode:      mode,
						Review:    review,
						Progress:  opts.Progress,
						Events:    opts.Events,
						Explainer: opts.Explainer,
					}),
				}
			}
		}}
	}

	items := []components.MenuItem{
		sessionItem("PRACTICE QUIZ", quiz.ModeQuiz, false),
		sessionItem("FLASHCARDS", quiz.ModeFlashcard, false),
		sessionItem("TIMED CHALLENGE", quiz.ModeTimed, false),
		sessionItem("REVIEW WEAK QUESTIONS", quiz.ModeQuiz, true),
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: statsscreen.New(opts.Catalog, opts.Progress),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadBadges()
}

// loadBadges computes the mastered and review-due counts for the header.
func (h *HomeScreen) loadBadges() tea.Cmd {
	opts := h.opts
	return func() tea.Msg {
		if opts.Progress == nil {
			return badgesMsg{}
		}
		records, err := opts.Progress.LoadAll(context.Background())
		if err != nil {
			return badgesMsg{}
		}
		stats := progress.CalculateStats(records, opts.Catalog)
		due := progress.QuestionsNeedingReview(opts.Catalog, records)
		return badgesMsg{Mastered: stats.Mastered, ReviewDue: len(due)}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesMsg:
		h.mastered = msg.Mastered
		h.reviewDue = msg.ReviewDue
		return h, nil

	case router.ScreenActivatedMsg:
		// Refresh badges when a session or reset returns here.
		return h, h.loadBadges()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Badges reports the header badge counts.
func (h *HomeScreen) Badges() (mastered, reviewDue int) {
	return h.mastered, h.reviewDue
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("QUIZDECK"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Science practice for curious minds"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("%s %d mastered    %s %d due for review",
		lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
		h.mastered,
		lipgloss.NewStyle().Foreground(theme.Accent).Render("↻"),
		h.reviewDue,
	)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
