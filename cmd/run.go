package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gyanguru/internal/app"
	"gyanguru/internal/config"
	"gyanguru/internal/game"
	"gyanguru/internal/i18n"
	"gyanguru/internal/question"
	"gyanguru/internal/screen"
	"gyanguru/internal/screens/home"
	"gyanguru/internal/screens/welcome"
	"gyanguru/internal/store"
)

// runApp opens the store, restores state, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	state, err := app.NewState(st)
	if err != nil {
		return fmt.Errorf("restore state: %w", err)
	}
	applyConfig(state, cfg)

	var initial screen.Screen
	if state.Profile == nil {
		initial = welcome.New(state)
	} else {
		initial = home.New(state)
	}
	return app.Run(state, initial)
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is empty.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), err
		}
		path = p
	}
	return config.Load(path)
}

// applyConfig fills in game defaults from the config file. The saved
// snapshot wins for language; the config only seeds first runs.
func applyConfig(state *app.State, cfg config.Config) {
	switch game.Mode(cfg.Game.Mode) {
	case game.Practice, game.Challenge, game.Multiplayer:
		state.DefaultMode = game.Mode(cfg.Game.Mode)
	}
	switch question.Difficulty(cfg.Game.Difficulty) {
	case question.Easy, question.Medium, question.Hard:
		state.DefaultDifficulty = question.Difficulty(cfg.Game.Difficulty)
	}
	if cfg.Game.Questions > 0 {
		state.QuestionCount = cfg.Game.Questions
	}
	if state.Profile == nil {
		if lang, err := i18n.Parse(cfg.Language); err == nil {
			state.Language = lang
		}
	}
}
