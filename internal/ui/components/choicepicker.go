package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"gyanguru/internal/ui/theme"
)

// ChoicePicker is a multiple-choice answer selector. Evaluation
// happens elsewhere; after submission call Reveal to color the
// correct and chosen options.
type ChoicePicker struct {
	Options      []string
	Selected     int
	revealed     bool
	correctIndex int
	chosenIndex  int
}

// NewChoicePicker creates a picker over the given options.
func NewChoicePicker(options []string) ChoicePicker {
	return ChoicePicker{
		Options:      options,
		Selected:     0,
		correctIndex: -1,
		chosenIndex:  -1,
	}
}

// Init returns nil.
func (c ChoicePicker) Init() tea.Cmd {
	return nil
}

// Update handles arrow navigation and number-key selection.
func (c ChoicePicker) Update(msg tea.Msg) (ChoicePicker, tea.Cmd) {
	if c.revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(c.Options) {
			c.Selected = idx
		}
	}

	return c, nil
}

// Reveal locks the picker and records the outcome for rendering.
func (c *ChoicePicker) Reveal(correctIndex, chosenIndex int) {
	c.revealed = true
	c.correctIndex = correctIndex
	c.chosenIndex = chosenIndex
}

// Revealed reports whether the outcome has been shown.
func (c ChoicePicker) Revealed() bool {
	return c.revealed
}

// View renders the picker.
func (c ChoicePicker) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if c.revealed {
			switch i {
			case c.correctIndex:
				s += theme.Correct.Render(line) + "\n"
			case c.chosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}
	return s
}
