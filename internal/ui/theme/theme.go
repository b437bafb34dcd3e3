// Package theme centralizes the colors and lipgloss styles shared by
// every screen. Screens never hardcode colors.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Bright enough for kids, readable on a dark terminal.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#10B981") // Emerald
	Accent    = lipgloss.Color("#EC4899") // Pink
	Gold      = lipgloss.Color("#F59E0B") // Amber, badges and level-ups
	Success   = lipgloss.Color("#34D399") // Light green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F1F5F9") // Near white
	TextDim   = lipgloss.Color("#7C8BA1") // Muted blue-gray
	BgDark    = lipgloss.Color("#111827") // Night
	BgCard    = lipgloss.Color("#1F2937") // Panel gray
	Border    = lipgloss.Color("#374151") // Panel border
)

// Text styles.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Answer and selection states.
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Widget styles.
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
