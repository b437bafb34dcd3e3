package profile

import (
	"testing"

	"gyanguru/internal/i18n"
)

func TestNew(t *testing.T) {
	p := New("Asha", "🦁")
	if p.ID == "" {
		t.Error("new profile has empty ID")
	}
	if p.Level != 1 || p.XP != 0 {
		t.Errorf("new profile at level %d with %d XP, want level 1 with 0 XP", p.Level, p.XP)
	}
	if len(p.Badges) != 0 {
		t.Errorf("new profile has %d badges", len(p.Badges))
	}
	if p.Preferences.Language != i18n.English {
		t.Errorf("default language = %s, want english", p.Preferences.Language)
	}
	if !p.Preferences.VoiceEnabled || !p.Preferences.SoundEffects {
		t.Error("voice and sound should default on")
	}
}

func TestAddXP(t *testing.T) {
	p := New("Asha", "🦁")
	if leveled := p.AddXP(50); leveled {
		t.Error("AddXP(50) reported a level-up at 50 XP")
	}
	if p.Level != 1 {
		t.Errorf("Level = %d, want 1", p.Level)
	}
	if leveled := p.AddXP(60); !leveled {
		t.Error("AddXP(60) did not report a level-up at 110 XP")
	}
	if p.Level != 2 {
		t.Errorf("Level = %d, want 2", p.Level)
	}
	// Level-up mints the matching badge.
	if got := len(p.UnlockedBadges()); got != 1 {
		t.Fatalf("unlocked badges = %d, want 1", got)
	}
	if p.Badges[0].ID != "level-2" {
		t.Errorf("badge ID = %q, want level-2", p.Badges[0].ID)
	}
}

func TestAddXPMultiLevelJump(t *testing.T) {
	p := New("Asha", "🦁")
	if leveled := p.AddXP(250); !leveled {
		t.Error("AddXP(250) did not report a level-up")
	}
	if p.Level != 3 {
		t.Errorf("Level = %d, want 3", p.Level)
	}
}

func TestAddXPIgnoresNonPositive(t *testing.T) {
	p := New("Asha", "🦁")
	p.AddXP(30)
	p.AddXP(0)
	p.AddXP(-10)
	if p.XP != 30 {
		t.Errorf("XP = %d, want 30", p.XP)
	}
}

func TestAwardBadge(t *testing.T) {
	p := New("Asha", "🦁")

	p.AwardBadge("first-win")
	if len(p.Badges) != 1 {
		t.Fatalf("badges = %d, want 1", len(p.Badges))
	}
	if !p.Badges[0].Unlocked || p.Badges[0].UnlockedAt == nil {
		t.Error("new badge not unlocked with timestamp")
	}

	// Awarding again is a no-op.
	first := *p.Badges[0].UnlockedAt
	p.AwardBadge("first-win")
	if len(p.Badges) != 1 {
		t.Errorf("badges = %d after duplicate award, want 1", len(p.Badges))
	}
	if !p.Badges[0].UnlockedAt.Equal(first) {
		t.Error("duplicate award changed the unlock time")
	}
}

func TestAwardBadgeUnlocksSeeded(t *testing.T) {
	p := New("Asha", "🦁")
	p.Badges = append(p.Badges, Badge{
		ID:          "math-whiz",
		Name:        "Math Whiz",
		Description: "Finish ten math games",
		Icon:        "🧮",
	})

	p.AwardBadge("math-whiz")
	if !p.Badges[0].Unlocked {
		t.Error("seeded badge not unlocked")
	}
	if p.Badges[0].Name != "Math Whiz" {
		t.Errorf("seeded badge renamed to %q", p.Badges[0].Name)
	}
	if p.Badges[0].UnlockedAt == nil {
		t.Error("seeded badge missing unlock time")
	}
}

func TestRecordCompletion(t *testing.T) {
	p := New("Asha", "🦁")
	p.RecordCompletion("math")
	p.RecordCompletion("math")
	p.RecordCompletion("quiz")
	p.RecordCompletion("guess")
	p.RecordCompletion("riddles")
	if p.Progress.MathCompleted != 2 {
		t.Errorf("MathCompleted = %d, want 2", p.Progress.MathCompleted)
	}
	if p.Progress.QuizCompleted != 1 || p.Progress.GuessCompleted != 1 {
		t.Errorf("Progress = %+v", p.Progress)
	}
}

func TestApply(t *testing.T) {
	p := New("Asha", "🦁")
	name := "Meera"
	lang := i18n.Hindi
	voice := false
	p.Apply(Update{Name: &name, Language: &lang, VoiceEnabled: &voice})
	if p.Name != "Meera" {
		t.Errorf("name = %q, want Meera", p.Name)
	}
	if p.Preferences.Language != i18n.Hindi {
		t.Errorf("language = %s, want hindi", p.Preferences.Language)
	}
	if p.Preferences.VoiceEnabled {
		t.Error("voice should be off after update")
	}
	if p.Avatar != "🦁" || !p.Preferences.SoundEffects {
		t.Error("unset fields should keep their values")
	}
}

func TestNilReceivers(t *testing.T) {
	var p *Profile
	p.AddXP(10)
	p.AwardBadge("x")
	p.RecordCompletion("math")
	p.Apply(Update{})
	if p.UnlockedBadges() != nil {
		t.Error("nil profile returned badges")
	}
}
