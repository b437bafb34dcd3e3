package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gyanguru/internal/app"
	"gyanguru/internal/progress"
	"gyanguru/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		p := state.Profile
		if p == nil {
			fmt.Println("No player yet. Run gyanguru to get started.")
			return nil
		}

		fmt.Printf("%s  %s\n", p.Avatar, p.Name)
		fmt.Printf("Level %d  (%d XP, %d to next level)\n",
			p.Level, p.XP, progress.NextThreshold(p.XP)-p.XP)
		fmt.Println()
		fmt.Printf("Math games:   %d\n", p.Progress.MathCompleted)
		fmt.Printf("Quiz games:   %d\n", p.Progress.QuizCompleted)
		fmt.Printf("Guess games:  %d\n", p.Progress.GuessCompleted)
		fmt.Println()

		unlocked := p.UnlockedBadges()
		fmt.Printf("Badges: %d\n", len(unlocked))
		for _, b := range unlocked {
			when := ""
			if b.UnlockedAt != nil {
				when = "  " + b.UnlockedAt.Format("2 Jan 2006")
			}
			fmt.Printf("  %s %s%s\n", b.Icon, b.Name, when)
		}
		return nil
	},
}
