// Package setup is the pre-game screen where the player picks
// difficulty and mode before a session starts.
package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"gyanguru/internal/app"
	"gyanguru/internal/game"
	"gyanguru/internal/i18n"
	"gyanguru/internal/question"
	"gyanguru/internal/router"
	"gyanguru/internal/screen"
	"gyanguru/internal/screens/session"
	"gyanguru/internal/ui/components"
	"gyanguru/internal/ui/layout"
	"gyanguru/internal/ui/theme"
)

const (
	rowDifficulty = iota
	rowMode
)

// SetupScreen lets the player configure a session for one topic.
type SetupScreen struct {
	state      *app.State
	topic      question.Topic
	row        int
	difficulty int
	mode       int
}

var difficulties = question.Difficulties()

var modes = []game.Mode{game.Practice, game.Challenge}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a setup screen for the given topic, preselecting the
// configured defaults.
func New(state *app.State, topic question.Topic) *SetupScreen {
	s := &SetupScreen{state: state, topic: topic}
	for i, d := range difficulties {
		if d == state.DefaultDifficulty {
			s.difficulty = i
		}
	}
	for i, m := range modes {
		if m == state.DefaultMode {
			s.mode = i
		}
	}
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return topicTitle(s.topic)
}

func topicTitle(t question.Topic) string {
	switch t {
	case question.TopicQuiz:
		return "Knowledge Quiz"
	case question.TopicGuess:
		return "Guess the Image"
	default:
		return "Math Puzzles"
	}
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Change"},
		{Key: "↑↓", Description: "Switch row"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		s.row = rowDifficulty
	case "down", "j":
		s.row = rowMode
	case "left", "h":
		s.move(-1)
	case "right", "l":
		s.move(1)
	case "enter":
		return s, s.start()
	}

	return s, nil
}

func (s *SetupScreen) move(delta int) {
	if s.row == rowDifficulty {
		next := s.difficulty + delta
		if next >= 0 && next < len(difficulties) {
			s.difficulty = next
		}
		return
	}
	next := s.mode + delta
	if next >= 0 && next < len(modes) {
		s.mode = next
	}
}

// start launches the session, replacing this screen so Esc from the
// game cannot land back on setup.
func (s *SetupScreen) start() tea.Cmd {
	sessionScreen := session.New(s.state, s.topic, difficulties[s.difficulty], modes[s.mode])
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sessionScreen}
	}
}

func (s *SetupScreen) View(width, height int) string {
	lang := s.state.Language
	cw := components.ContentWidth(width)
	buttonWidth := (cw - 8) / 3

	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render(topicTitle(s.topic)))
	b.WriteString("\n\n")

	b.WriteString(sectionLabel("How hard?", s.row == rowDifficulty, cw))
	b.WriteString("\n")
	labels := []string{
		i18n.T("Easy", lang),
		i18n.T("Medium", lang),
		i18n.T("Hard", lang),
	}
	var diffButtons []string
	for i, label := range labels {
		diffButtons = append(diffButtons,
			components.ChoiceButton(label, i == s.difficulty, buttonWidth))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, diffButtons...))
	b.WriteString("\n\n")

	b.WriteString(sectionLabel("How do you want to play?", s.row == rowMode, cw))
	b.WriteString("\n")
	modeButtons := []string{
		components.ChoiceButton("Practice", s.mode == 0, buttonWidth),
		components.ChoiceButton("Challenge", s.mode == 1, buttonWidth),
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, modeButtons...))
	b.WriteString("\n\n")

	hint := "Practice is relaxed. Challenge gives you 3 lives!"
	b.WriteString(theme.Hint.Width(cw).Align(lipgloss.Center).Render(hint))

	return components.Frame(b.String(), width, height)
}

func sectionLabel(text string, active bool, cw int) string {
	style := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.TextDim)
	if active {
		style = style.Foreground(theme.Secondary).Bold(true)
	}
	return style.Render(text)
}
