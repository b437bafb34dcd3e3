// Package progress holds the XP and leveling arithmetic. Levels are
// flat 100 XP bands: level 1 covers 0-99, level 2 covers 100-199, and
// so on.
package progress

const xpPerLevel = 100

// Level returns the level for a lifetime XP total. XP never decreases,
// so levels never regress.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return 1 + xp/xpPerLevel
}

// Threshold returns the XP required to reach the given level.
func Threshold(level int) int {
	if level < 1 {
		level = 1
	}
	return (level - 1) * xpPerLevel
}

// NextThreshold returns the XP at which the next level is reached.
func NextThreshold(xp int) int {
	return Level(xp) * xpPerLevel
}

// Percent returns how far through the current level the XP total is,
// as a whole number 0-99.
func Percent(xp int) int {
	if xp < 0 {
		xp = 0
	}
	base := Threshold(Level(xp))
	return (xp - base) * 100 / xpPerLevel
}
