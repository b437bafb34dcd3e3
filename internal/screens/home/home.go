// Package home is the main menu: game picks, progress overview,
// achievements and settings.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"gyanguru/internal/app"
	"gyanguru/internal/i18n"
	"gyanguru/internal/progress"
	"gyanguru/internal/question"
	"gyanguru/internal/router"
	"gyanguru/internal/screen"
	"gyanguru/internal/screens/achievements"
	"gyanguru/internal/screens/settings"
	"gyanguru/internal/screens/setup"
	"gyanguru/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	state *app.State
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(state *app.State) *HomeScreen {
	items := []components.MenuItem{
		{Label: "MATH PUZZLES", Action: pushSetup(state, question.TopicMath)},
		{Label: "KNOWLEDGE QUIZ", Action: pushSetup(state, question.TopicQuiz)},
		{Label: "GUESS THE IMAGE", Action: pushSetup(state, question.TopicGuess)},
		{Label: "ACHIEVEMENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achievements.New(state)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(state)}
			}
		}},
		{Label: "EXIT GAME", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		state: state,
		menu:  components.NewMenu(items),
	}
}

func pushSetup(state *app.State, topic question.Topic) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: setup.New(state, topic)}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, h.renderGreeting(cw))
	sections = append(sections, h.renderProgress(cw))
	sections = append(sections, components.Card(h.menu.View(), cw))

	content := strings.Join(sections, "\n\n")
	return components.Frame(content, width, height)
}

func (h *HomeScreen) renderGreeting(cw int) string {
	p := h.state.Profile
	if p == nil {
		return ""
	}
	greeting := fmt.Sprintf("%s  Namaste, %s!", p.Avatar, p.Name)
	return components.Card(
		lipgloss.NewStyle().Bold(true).Render(greeting), cw)
}

func (h *HomeScreen) renderProgress(cw int) string {
	p := h.state.Profile
	if p == nil {
		return ""
	}
	lang := h.state.Language

	bar := components.NewProgressBar(
		fmt.Sprintf("%s %d", i18n.T("Level", lang), p.Level),
		float64(progress.Percent(p.XP))/100,
		true,
		cw-8,
	)

	counts := fmt.Sprintf("%s %d    %s %d    %s %d",
		i18n.T("Math", lang), p.Progress.MathCompleted,
		i18n.T("Quiz", lang), p.Progress.QuizCompleted,
		i18n.T("Guess", lang), p.Progress.GuessCompleted,
	)

	return components.Card(bar.View()+"\n\n"+counts, cw)
}
