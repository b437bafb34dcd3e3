package session

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"gyanguru/internal/app"
	"gyanguru/internal/game"
	"gyanguru/internal/profile"
	"gyanguru/internal/question"
	"gyanguru/internal/router"
	"gyanguru/internal/screen"
	"gyanguru/internal/screens/summary"
)

// fixedSource returns the same question list for every session.
type fixedSource struct {
	questions []question.Question
}

func (f *fixedSource) Generate(question.Topic, question.Difficulty, int) []question.Question {
	return f.questions
}

// mathQ builds a math question whose first choice is the right one.
func mathQ(prompt string, answer float64, choices []string) question.Question {
	return question.Question{
		ID:         "q-" + prompt,
		Topic:      question.TopicMath,
		Difficulty: question.Easy,
		Points:     5,
		TimeLimit:  30,
		Math: &question.MathContent{
			Operation: question.OpAddition,
			Prompt:    prompt,
			Choices:   choices,
			Answer:    question.Number(answer),
		},
	}
}

func newTestScreen(mode game.Mode, questions []question.Question) (*SessionScreen, *app.State) {
	prof := profile.New("Asha", "🦁")
	state := &app.State{
		Controller:    game.NewController(&fixedSource{questions: questions}, prof),
		Profile:       prof,
		QuestionCount: len(questions),
	}
	s := New(state, question.TopicMath, question.Easy, mode)
	s.Init()
	return s, state
}

func twoQuestions() []question.Question {
	return []question.Question{
		mathQ("2 + 3 = ?", 5, []string{"5", "7", "4", "9"}),
		mathQ("4 + 4 = ?", 8, []string{"8", "6", "12", "7"}),
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestInitStartsSession(t *testing.T) {
	s, state := newTestScreen(game.Practice, twoQuestions())

	if state.Controller.Session() == nil {
		t.Fatal("Init should start a session")
	}
	if s.remaining != 30 {
		t.Errorf("remaining = %d, want 30", s.remaining)
	}
	if got := len(s.picker.Options); got != 4 {
		t.Errorf("picker options = %d, want 4", got)
	}
}

func TestCorrectAnswerShowsFeedback(t *testing.T) {
	s, _ := newTestScreen(game.Practice, twoQuestions())

	scr, _ := s.Update(keyPress('1'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	ss := scr.(*SessionScreen)
	if !ss.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	if !ss.lastResult.Correct {
		t.Error("choice 1 should be correct")
	}
	if ss.lastResult.Awarded != 5 {
		t.Errorf("Awarded = %d, want 5", ss.lastResult.Awarded)
	}
}

func TestFeedbackKeyAdvancesToNextQuestion(t *testing.T) {
	s, _ := newTestScreen(game.Practice, twoQuestions())

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("feedback keypress should produce a command")
	}
	if _, ok := cmd().(advanceMsg); !ok {
		t.Fatalf("expected advanceMsg, got %T", cmd())
	}

	scr, _ = scr.Update(advanceMsg{})
	ss := scr.(*SessionScreen)
	if ss.showingFeedback {
		t.Error("feedback should be dismissed")
	}
	if got := ss.sess.Current; got != 1 {
		t.Errorf("Current = %d, want 1", got)
	}
	if ss.remaining != 30 {
		t.Errorf("remaining = %d, want reset to 30", ss.remaining)
	}
}

func TestLastQuestionGoesToSummary(t *testing.T) {
	s, state := newTestScreen(game.Practice, twoQuestions())

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(advanceMsg{})
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	ss := scr.(*SessionScreen)
	if !ss.lastResult.Completed {
		t.Fatal("second answer should complete the session")
	}

	_, cmd := scr.Update(advanceMsg{})
	if cmd == nil {
		t.Fatal("expected navigation command after completion")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("expected summary screen, got %T", replaceMsg.Screen)
	}
	if state.Profile.XP != 10 {
		t.Errorf("XP = %d, want 10", state.Profile.XP)
	}
	if state.Profile.Progress.MathCompleted != 1 {
		t.Errorf("MathCompleted = %d, want 1", state.Profile.Progress.MathCompleted)
	}
}

func TestTimerCountsDownAndExpires(t *testing.T) {
	s, _ := newTestScreen(game.Challenge, twoQuestions())
	s.remaining = 2

	var scr screen.Screen = s
	scr, _ = scr.Update(timerTickMsg{})
	ss := scr.(*SessionScreen)
	if ss.remaining != 1 {
		t.Errorf("remaining = %d, want 1", ss.remaining)
	}

	scr, _ = scr.Update(timerTickMsg{})
	ss = scr.(*SessionScreen)
	if !ss.showingFeedback {
		t.Fatal("timeout should auto-submit")
	}
	if !ss.timedOut {
		t.Error("timedOut should be set")
	}
	if ss.lastResult.Correct {
		t.Error("timeout answer should be wrong")
	}
	if got := ss.sess.Lives; got != game.ChallengeLives-1 {
		t.Errorf("Lives = %d, want %d", got, game.ChallengeLives-1)
	}
}

func TestPauseFreezesCountdown(t *testing.T) {
	s, _ := newTestScreen(game.Practice, twoQuestions())

	scr, _ := s.Update(keyPress('p'))
	ss := scr.(*SessionScreen)
	if !ss.paused {
		t.Fatal("p should pause")
	}

	scr, _ = scr.Update(timerTickMsg{})
	ss = scr.(*SessionScreen)
	if ss.remaining != 30 {
		t.Errorf("remaining = %d, want 30 while paused", ss.remaining)
	}

	scr, _ = scr.Update(keyPress('p'))
	ss = scr.(*SessionScreen)
	if ss.paused {
		t.Error("p should resume")
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	s, state := newTestScreen(game.Practice, twoQuestions())

	scr, _ := s.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.showingQuitConfirm {
		t.Fatal("esc should show quit confirm")
	}

	scr, _ = scr.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.showingQuitConfirm {
		t.Fatal("n should dismiss quit confirm")
	}

	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("y should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if state.Controller.Session() != nil {
		t.Error("abandoning should reset the session")
	}
	if state.Profile.XP != 0 {
		t.Errorf("abandoned game should award no XP, got %d", state.Profile.XP)
	}
}

func TestWrongAnswerFeedbackShowsAnsweredQuestion(t *testing.T) {
	s, _ := newTestScreen(game.Practice, twoQuestions())

	scr, _ := s.Update(keyPress('2'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))

	ss := scr.(*SessionScreen)
	if ss.lastResult.Correct {
		t.Fatal("choice 2 should be wrong")
	}
	if ss.answered == nil || ss.answered.Prompt() != "2 + 3 = ?" {
		t.Errorf("answered question should stay on the submitted one")
	}
	if !ss.picker.Revealed() {
		t.Error("picker should be revealed during feedback")
	}
}
