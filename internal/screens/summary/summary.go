// Package summary shows the results of a finished game.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"gyanguru/internal/app"
	"gyanguru/internal/game"
	"gyanguru/internal/i18n"
	"gyanguru/internal/progress"
	"gyanguru/internal/router"
	"gyanguru/internal/screen"
	"gyanguru/internal/ui/components"
	"gyanguru/internal/ui/layout"
	"gyanguru/internal/ui/theme"
)

// SummaryScreen displays the game summary.
type SummaryScreen struct {
	state     *app.State
	sess      *game.Session
	leveledUp bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for a completed session.
func New(state *app.State, sess *game.Session, leveledUp bool) *SummaryScreen {
	return &SummaryScreen{state: state, sess: sess, leveledUp: leveledUp}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
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
			s.state.Controller.Reset()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sess := s.sess
	if sess == nil {
		return ""
	}
	lang := s.state.Language
	cw := components.ContentWidth(width)

	var b strings.Builder

	heading := "Great game!"
	if sess.Mode == game.Challenge && sess.Lives <= 0 {
		heading = "Out of lives!"
	}
	b.WriteString(theme.Title.Width(cw).Render(heading))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("%s: %d", i18n.T("Score", lang), sess.Score)
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(scoreLine))
	b.WriteString("\n\n")

	answered := sess.AnsweredCount()
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d", answered, sess.CorrectCount())
	if answered > 0 {
		statsLine += fmt.Sprintf("        Accuracy: %d%%", sess.CorrectCount()*100/answered)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if p := s.state.Profile; p != nil {
		xpLine := fmt.Sprintf("+%d XP  (total %d)", sess.Score, p.XP)
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(xpLine))
		b.WriteString("\n")

		if s.leveledUp {
			b.WriteString(lipgloss.NewStyle().
				Width(cw).
				Align(lipgloss.Center).
				Foreground(theme.Gold).
				Bold(true).
				Render(fmt.Sprintf("⭐ Level up! You reached %s %d!", i18n.T("Level", lang), p.Level)))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		bar := components.NewProgressBar(
			fmt.Sprintf("%s %d", i18n.T("Level", lang), p.Level),
			float64(progress.Percent(p.XP))/100,
			true,
			cw-8,
		)
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, bar.View()))
	}

	return components.Frame(b.String(), width, height)
}
