// Package layout renders the chrome around each screen: a branded
// header with the player's level and XP, a footer of key hints, and
// the frame that stacks them with the screen content in between.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"gyanguru/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal cannot fit the UI.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"This window is too small.\n\nGyan Guru needs at least %d x %d.\nYou have %d x %d.",
			MinWidth, MinHeight, width, height,
		))
}

// bar wraps one line of content in the bordered header/footer box.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader draws the top bar: brand on the left, the screen title
// centered, and the player's level and XP on the right.
func RenderHeader(title string, level, xp int, width int) string {
	brand := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Gyan Guru")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	stats := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("⭐ Lv %d   ✦ %d XP", level, xp))

	inner := width - 4
	if inner < 0 {
		inner = 0
	}

	// Center the title against the full bar, then pad the remainder.
	gapLeft := (inner-lipgloss.Width(center))/2 - lipgloss.Width(brand)
	if gapLeft < 1 {
		gapLeft = 1
	}
	gapRight := inner - lipgloss.Width(brand) - gapLeft - lipgloss.Width(center) - lipgloss.Width(stats)
	if gapRight < 1 {
		gapRight = 1
	}

	return bar(brand+strings.Repeat(" ", gapLeft)+center+strings.Repeat(" ", gapRight)+stats, width)
}

// RenderFooter draws the bottom bar of key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return bar("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer to fill the terminal.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
