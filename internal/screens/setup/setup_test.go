package setup

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"gyanguru/internal/app"
	"gyanguru/internal/game"
	"gyanguru/internal/question"
	"gyanguru/internal/router"
	"gyanguru/internal/screens/session"
)

func newTestSetup(topic question.Topic) (*SetupScreen, *app.State) {
	state := &app.State{
		Controller:        game.NewController(question.New(nil), nil),
		DefaultMode:       game.Practice,
		DefaultDifficulty: question.Easy,
		QuestionCount:     5,
	}
	return New(state, topic), state
}

func TestDefaultsPreselected(t *testing.T) {
	s, _ := newTestSetup(question.TopicMath)

	if difficulties[s.difficulty] != question.Easy {
		t.Errorf("difficulty = %v, want easy", difficulties[s.difficulty])
	}
	if modes[s.mode] != game.Practice {
		t.Errorf("mode = %v, want practice", modes[s.mode])
	}
}

func TestArrowsChangeSelection(t *testing.T) {
	s, _ := newTestSetup(question.TopicQuiz)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if difficulties[s.difficulty] != question.Medium {
		t.Errorf("difficulty = %v, want medium", difficulties[s.difficulty])
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if modes[s.mode] != game.Challenge {
		t.Errorf("mode = %v, want challenge", modes[s.mode])
	}

	// Difficulty row selection is unchanged by mode edits.
	if difficulties[s.difficulty] != question.Medium {
		t.Errorf("difficulty = %v, want medium", difficulties[s.difficulty])
	}
}

func TestEnterReplacesWithSession(t *testing.T) {
	s, _ := newTestSetup(question.TopicGuess)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*session.SessionScreen); !ok {
		t.Fatalf("expected session screen, got %T", replaceMsg.Screen)
	}
}

func TestEscPops(t *testing.T) {
	s, _ := newTestSetup(question.TopicMath)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}
