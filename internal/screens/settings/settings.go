// Package settings lets the player change language, sound and voice.
package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"gyanguru/internal/app"
	"gyanguru/internal/i18n"
	"gyanguru/internal/router"
	"gyanguru/internal/screen"
	"gyanguru/internal/ui/components"
	"gyanguru/internal/ui/layout"
	"gyanguru/internal/ui/theme"
)

const (
	rowLanguage = iota
	rowSound
	rowVoice
	rowCount
)

// SettingsScreen edits the player's preferences. Every change is
// saved immediately.
type SettingsScreen struct {
	state  *app.State
	row    int
	errMsg string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen.
func New(state *app.State) *SettingsScreen {
	return &SettingsScreen{state: state}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if s.row < rowCount-1 {
			s.row++
		}
	case "left", "h":
		s.change(-1)
	case "right", "l", "enter", "space":
		s.change(1)
	}

	return s, nil
}

// change applies a setting change on the selected row and persists it.
func (s *SettingsScreen) change(delta int) {
	var err error
	switch s.row {
	case rowLanguage:
		err = s.state.SetLanguage(cycleLanguage(s.state.Language, delta))
	case rowSound:
		err = s.state.ToggleSound()
	case rowVoice:
		err = s.state.ToggleVoice()
	}
	if err != nil {
		s.errMsg = err.Error()
	} else {
		s.errMsg = ""
	}
}

func cycleLanguage(current i18n.Language, delta int) i18n.Language {
	langs := i18n.Languages()
	idx := 0
	for i, l := range langs {
		if l == current {
			idx = i
		}
	}
	idx = (idx + delta + len(langs)) % len(langs)
	return langs[idx]
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Settings"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Language", s.state.Language.DisplayName()},
		{"Sound effects", onOff(s.state.SoundEnabled)},
		{"Voice prompts", onOff(s.state.VoiceEnabled)},
	}

	for i, row := range rows {
		line := fmt.Sprintf("%-16s ◂ %s ▸", row.label, row.value)
		if i == s.row {
			b.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("    " + line))
		}
		b.WriteString("\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}

	hint := "Changes are saved right away."
	b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).Render(hint))

	return components.Frame(b.String(), width, height)
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
