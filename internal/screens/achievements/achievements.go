// Package achievements lists the player's badges.
package achievements

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"gyanguru/internal/app"
	"gyanguru/internal/router"
	"gyanguru/internal/screen"
	"gyanguru/internal/ui/components"
	"gyanguru/internal/ui/layout"
	"gyanguru/internal/ui/theme"
)

// AchievementsScreen shows earned and locked badges.
type AchievementsScreen struct {
	state *app.State
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates the achievements screen.
func New(state *app.State) *AchievementsScreen {
	return &AchievementsScreen{state: state}
}

func (a *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (a *AchievementsScreen) Title() string {
	return "Achievements"
}

func (a *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return a, nil
}

func (a *AchievementsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := a.state.Profile

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Your Badges"))
	b.WriteString("\n\n")

	if p == nil || len(p.Badges) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No badges yet. Play some games to earn them!"))
		return components.Frame(b.String(), width, height)
	}

	unlocked := 0
	for _, badge := range p.Badges {
		if badge.Unlocked {
			unlocked++
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d unlocked", unlocked, len(p.Badges))))
	b.WriteString("\n\n")

	for _, badge := range p.Badges {
		var line string
		if badge.Unlocked {
			when := ""
			if badge.UnlockedAt != nil {
				when = "  " + badge.UnlockedAt.Format("2 Jan 2006")
			}
			line = fmt.Sprintf("%s  %s — %s%s", badge.Icon, badge.Name, badge.Description, when)
			b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.Gold).Render(line))
		} else {
			line = fmt.Sprintf("🔒  %s — %s", badge.Name, badge.Description)
			b.WriteString(lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}

	return components.Frame(b.String(), width, height)
}
