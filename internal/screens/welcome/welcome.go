// Package welcome is the first-run screen: it asks for a name, lets
// the player pick an avatar, and creates the profile.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"gyanguru/internal/app"
	"gyanguru/internal/router"
	"gyanguru/internal/screen"
	"gyanguru/internal/screens/home"
	"gyanguru/internal/ui/components"
	"gyanguru/internal/ui/layout"
	"gyanguru/internal/ui/theme"
)

// avatars the player can pick from.
var avatars = []string{"🦁", "🐯", "🐘", "🦚", "🐼", "🦊"}

type step int

const (
	stepName step = iota
	stepAvatar
)

// WelcomeScreen collects the new player's name and avatar.
type WelcomeScreen struct {
	state  *app.State
	step   step
	input  components.TextInput
	avatar int
	errMsg string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome screen.
func New(state *app.State) *WelcomeScreen {
	return &WelcomeScreen{
		state: state,
		input: components.NewTextInput("What's your name?", false, 20),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.step == stepAvatar {
		return []layout.KeyHint{
			{Key: "←→", Description: "Pick avatar"},
			{Key: "Enter", Description: "Start playing"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}

	switch w.step {
	case stepName:
		if kmsg.String() == "enter" {
			if strings.TrimSpace(w.input.Value()) == "" {
				w.errMsg = "Please type your name first"
				return w, nil
			}
			w.errMsg = ""
			w.step = stepAvatar
			return w, nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd

	case stepAvatar:
		switch kmsg.String() {
		case "left", "h":
			if w.avatar > 0 {
				w.avatar--
			}
		case "right", "l":
			if w.avatar < len(avatars)-1 {
				w.avatar++
			}
		case "enter":
			return w, w.createProfile()
		}
	}

	return w, nil
}

// createProfile saves the new player and replaces this screen with
// home, so Esc can never come back here.
func (w *WelcomeScreen) createProfile() tea.Cmd {
	name := strings.TrimSpace(w.input.Value())
	if err := w.state.CreateProfile(name, avatars[w.avatar]); err != nil {
		w.errMsg = err.Error()
		return nil
	}
	homeScreen := home.New(w.state)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Learn, play and grow!")
	sections = append(sections, tagline, "")

	switch w.step {
	case stepName:
		prompt := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("Hi there! What should we call you?")
		sections = append(sections, prompt, "", w.input.View())

	case stepAvatar:
		prompt := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("Pick your avatar, " + strings.TrimSpace(w.input.Value()) + "!")
		sections = append(sections, prompt, "")

		var row strings.Builder
		for i, a := range avatars {
			if i == w.avatar {
				row.WriteString(lipgloss.NewStyle().
					Bold(true).
					Foreground(theme.Gold).
					Render("▸" + a + "◂"))
			} else {
				row.WriteString(" " + a + " ")
			}
			row.WriteString("  ")
		}
		sections = append(sections, row.String())
	}

	if w.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
