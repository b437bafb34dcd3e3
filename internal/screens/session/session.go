// Package session is the in-game screen: it shows questions, runs the
// per-question countdown, and feeds answers to the game controller.
package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"gyanguru/internal/app"
	"gyanguru/internal/game"
	"gyanguru/internal/question"
	"gyanguru/internal/router"
	"gyanguru/internal/screen"
	"gyanguru/internal/screens/summary"
	"gyanguru/internal/ui/components"
	"gyanguru/internal/ui/layout"
)

// SessionScreen runs one game from first question to summary.
type SessionScreen struct {
	state      *app.State
	topic      question.Topic
	difficulty question.Difficulty
	mode       game.Mode

	sess   *game.Session
	picker components.ChoicePicker

	remaining          int
	paused             bool
	showingFeedback    bool
	showingQuitConfirm bool
	lastResult         game.Result
	answered           *question.Question
	timedOut           bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session screen. The game itself starts in Init.
func New(state *app.State, topic question.Topic, difficulty question.Difficulty, mode game.Mode) *SessionScreen {
	return &SessionScreen{
		state:      state,
		topic:      topic,
		difficulty: difficulty,
		mode:       mode,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.sess = s.state.Controller.Start(s.mode, s.topic, s.difficulty, s.state.QuestionCount)
	s.loadCurrentQuestion()
	return tickCmd()
}

func (s *SessionScreen) Title() string {
	switch s.topic {
	case question.TopicQuiz:
		return "Knowledge Quiz"
	case question.TopicGuess:
		return "Guess the Image"
	default:
		return "Math Puzzles"
	}
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.paused {
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Pick"},
		{Key: "Enter", Description: "Submit"},
		{Key: "P", Description: "Pause"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick()

	case advanceMsg:
		return s.handleAdvance()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// loadCurrentQuestion resets the picker and countdown for the
// question the session is currently on.
func (s *SessionScreen) loadCurrentQuestion() {
	q := s.sess.CurrentQuestion()
	if q == nil {
		return
	}
	s.picker = components.NewChoicePicker(q.Choices())
	s.remaining = q.TimeLimit
	s.timedOut = false
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.sess.Complete {
		return s, nil
	}
	if s.paused || s.showingFeedback || s.showingQuitConfirm {
		return s, tickCmd()
	}

	s.remaining--
	if s.remaining <= 0 {
		s.remaining = 0
		s.timedOut = true
		scr, cmd := s.submit(question.Text(""), -1)
		return scr, tea.Batch(cmd, tickCmd())
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false

	if s.lastResult.Completed {
		// Results are already in the profile; make them durable.
		_ = s.state.Persist()
		summaryScreen := summary.New(s.state, s.sess, s.lastResult.LeveledUp)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summaryScreen}
		}
	}

	s.loadCurrentQuestion()
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.Controller.Reset()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return advanceMsg{} }
	}

	if s.paused {
		switch key {
		case "p", "P":
			s.paused = false
		case "esc":
			s.showingQuitConfirm = true
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "p", "P":
		s.paused = true
		return s, nil
	case "enter":
		q := s.sess.CurrentQuestion()
		if q == nil {
			return s, nil
		}
		choices := q.Choices()
		if s.picker.Selected < 0 || s.picker.Selected >= len(choices) {
			return s, nil
		}
		return s.submit(question.Text(choices[s.picker.Selected]), s.picker.Selected)
	}

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	return s, cmd
}

// submit hands the answer to the controller and flips into feedback.
// chosenIndex is -1 on a timeout.
func (s *SessionScreen) submit(answer question.Answer, chosenIndex int) (screen.Screen, tea.Cmd) {
	q := s.sess.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	// Keep the answered question around: the controller advances to
	// the next one as soon as Submit returns.
	qc := *q
	s.answered = &qc

	s.lastResult = s.state.Controller.Submit(answer)
	if !s.lastResult.Answered {
		return s, nil
	}

	s.picker.Reveal(correctIndex(qc), chosenIndex)
	s.showingFeedback = true
	return s, nil
}

// correctIndex finds which choice the evaluator accepts.
func correctIndex(q question.Question) int {
	for i, c := range q.Choices() {
		if question.IsCorrect(q, question.Text(c)) {
			return i
		}
	}
	return -1
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
