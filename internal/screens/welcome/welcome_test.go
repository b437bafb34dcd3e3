package welcome

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"gyanguru/internal/app"
	"gyanguru/internal/game"
	"gyanguru/internal/i18n"
	"gyanguru/internal/question"
	"gyanguru/internal/router"
	"gyanguru/internal/screen"
	"gyanguru/internal/screens/home"
)

func newTestWelcome() (*WelcomeScreen, *app.State) {
	state := &app.State{
		Controller:        game.NewController(question.New(nil), nil),
		Language:          i18n.English,
		DefaultMode:       game.Practice,
		DefaultDifficulty: question.Easy,
		QuestionCount:     5,
	}
	w := New(state)
	w.Init()
	return w, state
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeName(w *WelcomeScreen, name string) screen.Screen {
	var scr screen.Screen = w
	for _, r := range name {
		scr, _ = scr.Update(keyPress(r))
	}
	return scr
}

func TestEmptyNameRejected(t *testing.T) {
	w, _ := newTestWelcome()

	scr, _ := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ws := scr.(*WelcomeScreen)
	if ws.step != stepName {
		t.Error("empty name should not advance")
	}
	if ws.errMsg == "" {
		t.Error("expected an error message for empty name")
	}
}

func TestNameAdvancesToAvatar(t *testing.T) {
	w, _ := newTestWelcome()

	scr := typeName(w, "Asha")
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	ws := scr.(*WelcomeScreen)
	if ws.step != stepAvatar {
		t.Fatalf("step = %v, want stepAvatar", ws.step)
	}
}

func TestAvatarNavigationStaysInBounds(t *testing.T) {
	w, _ := newTestWelcome()
	typeName(w, "Asha")
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	w.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if w.avatar != 0 {
		t.Errorf("avatar = %d, want 0 at left edge", w.avatar)
	}

	for i := 0; i < len(avatars)+3; i++ {
		w.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if w.avatar != len(avatars)-1 {
		t.Errorf("avatar = %d, want %d at right edge", w.avatar, len(avatars)-1)
	}
}

func TestEnterCreatesProfileAndGoesHome(t *testing.T) {
	w, state := newTestWelcome()
	typeName(w, "Asha")
	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	w.Update(tea.KeyPressMsg{Code: tea.KeyRight})

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", replaceMsg.Screen)
	}

	if state.Profile == nil {
		t.Fatal("profile should be created")
	}
	if state.Profile.Name != "Asha" {
		t.Errorf("Name = %q, want %q", state.Profile.Name, "Asha")
	}
	if state.Profile.Avatar != avatars[1] {
		t.Errorf("Avatar = %q, want %q", state.Profile.Avatar, avatars[1])
	}
	if state.Profile.Level != 1 {
		t.Errorf("Level = %d, want 1", state.Profile.Level)
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
