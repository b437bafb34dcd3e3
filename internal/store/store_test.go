package store

import (
	"context"
	"path/filepath"
	"testing"

	"gyanguru/internal/i18n"
	"gyanguru/internal/profile"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadSnapshotEmpty(t *testing.T) {
	s := openTestStore(t)
	data, err := s.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if data != nil {
		t.Errorf("LoadSnapshot on empty store = %+v, want nil", data)
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := profile.New("Asha", "🦁")
	p.AddXP(130)
	in := &SnapshotData{
		User:         p,
		Language:     i18n.Hindi,
		SoundEnabled: true,
		VoiceEnabled: false,
	}
	if err := s.SaveSnapshot(ctx, in); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	out, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if out == nil {
		t.Fatal("LoadSnapshot returned nil after save")
	}
	if out.User == nil || out.User.Name != "Asha" {
		t.Fatalf("User = %+v", out.User)
	}
	if out.User.XP != 130 || out.User.Level != 2 {
		t.Errorf("User XP/Level = %d/%d, want 130/2", out.User.XP, out.User.Level)
	}
	if len(out.User.Badges) != 1 || out.User.Badges[0].ID != "level-2" {
		t.Errorf("Badges = %+v", out.User.Badges)
	}
	if out.Language != i18n.Hindi {
		t.Errorf("Language = %s, want hindi", out.Language)
	}
	if out.VoiceEnabled {
		t.Error("VoiceEnabled round-tripped true, want false")
	}
}

func TestSaveSnapshotOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := &SnapshotData{User: profile.New("Asha", "🦁"), Language: i18n.English}
	if err := s.SaveSnapshot(ctx, first); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	second := &SnapshotData{User: profile.New("Ravi", "🐯"), Language: i18n.Tamil}
	if err := s.SaveSnapshot(ctx, second); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	out, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if out.User.Name != "Ravi" || out.Language != i18n.Tamil {
		t.Errorf("snapshot not overwritten: %+v", out)
	}

	var count int
	if err := s.DB().NewSelect().Table("snapshots").ColumnExpr("count(*)").Scan(ctx, &count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1", count)
	}
}

func TestDeleteSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveSnapshot(ctx, &SnapshotData{User: profile.New("Asha", "🦁")}); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	if err := s.DeleteSnapshot(ctx); err != nil {
		t.Fatalf("DeleteSnapshot: %v", err)
	}
	out, err := s.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if out != nil {
		t.Errorf("snapshot survived delete: %+v", out)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom", "db.sqlite")
	t.Setenv("GYANGURU_DB", p)
	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != p {
		t.Errorf("DefaultDBPath = %q, want %q", got, p)
	}
}
