// Package profile holds the persistent player: identity, lifetime XP,
// badges, preferences and per-topic completion counts.
package profile

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"gyanguru/internal/i18n"
	"gyanguru/internal/progress"
)

// Badge is an achievement. A badge can exist locked (pre-seeded) and
// be unlocked later, or be created already unlocked.
type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// Preferences are the player's saved settings.
type Preferences struct {
	Language     i18n.Language `json:"language"`
	VoiceEnabled bool          `json:"voiceEnabled"`
	SoundEffects bool          `json:"soundEffects"`
}

// TopicProgress counts completed sessions per topic.
type TopicProgress struct {
	MathCompleted  int `json:"mathCompleted"`
	QuizCompleted  int `json:"quizCompleted"`
	GuessCompleted int `json:"guessCompleted"`
}

// Profile is the player. XP only ever grows, and Level is always kept
// consistent with XP.
type Profile struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Avatar      string        `json:"avatar"`
	XP          int           `json:"xp"`
	Level       int           `json:"level"`
	Badges      []Badge       `json:"badges"`
	Preferences Preferences   `json:"preferences"`
	Progress    TopicProgress `json:"progress"`
}

// New creates a fresh level-1 profile with default preferences.
func New(name, avatar string) *Profile {
	return &Profile{
		ID:     uuid.NewString(),
		Name:   name,
		Avatar: avatar,
		XP:     0,
		Level:  1,
		Badges: []Badge{},
		Preferences: Preferences{
			Language:     i18n.English,
			VoiceEnabled: true,
			SoundEffects: true,
		},
	}
}

// Update carries a partial profile change. Nil fields are left as they
// are; set fields win over the current values.
type Update struct {
	Name         *string
	Avatar       *string
	Language     *i18n.Language
	VoiceEnabled *bool
	SoundEffects *bool
}

// Apply merges an update into the profile, last write wins per field.
func (p *Profile) Apply(u Update) {
	if p == nil {
		return
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	if u.Language != nil {
		p.Preferences.Language = *u.Language
	}
	if u.VoiceEnabled != nil {
		p.Preferences.VoiceEnabled = *u.VoiceEnabled
	}
	if u.SoundEffects != nil {
		p.Preferences.SoundEffects = *u.SoundEffects
	}
}

// AddXP adds a non-negative amount of XP, recomputes the level, and
// awards a level badge on every level-up. It reports whether the
// player leveled up.
func (p *Profile) AddXP(amount int) bool {
	if p == nil || amount <= 0 {
		return false
	}
	p.XP += amount
	newLevel := progress.Level(p.XP)
	leveledUp := newLevel > p.Level
	p.Level = newLevel
	if leveledUp {
		p.AwardBadge(levelBadgeID(newLevel))
	}
	return leveledUp
}

func levelBadgeID(level int) string {
	return "level-" + strconv.Itoa(level)
}

// AwardBadge unlocks the badge with the given ID. A pre-seeded locked
// badge is unlocked in place; an unknown ID creates a new unlocked
// badge; an already-unlocked badge is left alone.
func (p *Profile) AwardBadge(id string) {
	if p == nil {
		return
	}
	for i := range p.Badges {
		if p.Badges[i].ID != id {
			continue
		}
		if !p.Badges[i].Unlocked {
			now := time.Now()
			p.Badges[i].Unlocked = true
			p.Badges[i].UnlockedAt = &now
		}
		return
	}
	now := time.Now()
	p.Badges = append(p.Badges, Badge{
		ID:          id,
		Name:        "New Badge",
		Description: "You earned a new badge!",
		Icon:        "🏆",
		Unlocked:    true,
		UnlockedAt:  &now,
	})
}

// UnlockedBadges returns only the badges the player has earned.
func (p *Profile) UnlockedBadges() []Badge {
	if p == nil {
		return nil
	}
	var out []Badge
	for _, b := range p.Badges {
		if b.Unlocked {
			out = append(out, b)
		}
	}
	return out
}

// RecordCompletion bumps the completion counter for a topic.
func (p *Profile) RecordCompletion(topic string) {
	if p == nil {
		return
	}
	switch topic {
	case "math":
		p.Progress.MathCompleted++
	case "quiz":
		p.Progress.QuizCompleted++
	case "guess":
		p.Progress.GuessCompleted++
	}
}
