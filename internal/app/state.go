package app

import (
	"context"

	"gyanguru/internal/game"
	"gyanguru/internal/i18n"
	"gyanguru/internal/profile"
	"gyanguru/internal/question"
	"gyanguru/internal/store"
)

// State is the shared application state the screens operate on. It
// owns the active profile, the game controller, and the settings, and
// knows how to persist all of it.
type State struct {
	Store      *store.Store
	Controller *game.Controller
	Profile    *profile.Profile

	Language     i18n.Language
	SoundEnabled bool
	VoiceEnabled bool

	DefaultMode       game.Mode
	DefaultDifficulty question.Difficulty
	QuestionCount     int
}

// NewState builds the state, restoring the profile and settings from
// the latest snapshot if one exists.
func NewState(st *store.Store) (*State, error) {
	s := &State{
		Store:             st,
		Language:          i18n.English,
		SoundEnabled:      true,
		VoiceEnabled:      true,
		DefaultMode:       game.Practice,
		DefaultDifficulty: question.Easy,
		QuestionCount:     5,
	}
	s.Controller = game.NewController(question.New(nil), nil)

	if st != nil {
		snap, err := st.LoadSnapshot(context.Background())
		if err != nil {
			return nil, err
		}
		if snap != nil {
			s.Profile = snap.User
			s.Language = snap.Language
			s.SoundEnabled = snap.SoundEnabled
			s.VoiceEnabled = snap.VoiceEnabled
			s.Controller.SetProfile(snap.User)
		}
	}
	return s, nil
}

// CreateProfile makes a fresh profile the active player and saves it.
func (s *State) CreateProfile(name, avatar string) error {
	p := profile.New(name, avatar)
	p.Preferences.Language = s.Language
	p.Preferences.SoundEffects = s.SoundEnabled
	p.Preferences.VoiceEnabled = s.VoiceEnabled
	s.Profile = p
	s.Controller.SetProfile(p)
	return s.Persist()
}

// SetLanguage changes the display language and saves.
func (s *State) SetLanguage(lang i18n.Language) error {
	s.Language = lang
	s.Profile.Apply(profile.Update{Language: &lang})
	return s.Persist()
}

// ToggleSound flips sound effects and saves.
func (s *State) ToggleSound() error {
	s.SoundEnabled = !s.SoundEnabled
	s.Profile.Apply(profile.Update{SoundEffects: &s.SoundEnabled})
	return s.Persist()
}

// ToggleVoice flips voice prompts and saves.
func (s *State) ToggleVoice() error {
	s.VoiceEnabled = !s.VoiceEnabled
	s.Profile.Apply(profile.Update{VoiceEnabled: &s.VoiceEnabled})
	return s.Persist()
}

// Persist writes the current profile and settings to the store. With
// no store attached it is a no-op, which keeps tests simple.
func (s *State) Persist() error {
	if s.Store == nil {
		return nil
	}
	return s.Store.SaveSnapshot(context.Background(), &store.SnapshotData{
		User:         s.Profile,
		Language:     s.Language,
		SoundEnabled: s.SoundEnabled,
		VoiceEnabled: s.VoiceEnabled,
	})
}
