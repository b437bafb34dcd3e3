package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"gyanguru/internal/i18n"
	"gyanguru/internal/profile"
)

// SnapshotKey is the fixed row key the game state is stored under.
const SnapshotKey = "gyan-guru-storage"

// SnapshotData is everything that survives a restart. Active game
// sessions are deliberately not part of it.
type SnapshotData struct {
	User         *profile.Profile `json:"user"`
	Language     i18n.Language    `json:"currentLanguage"`
	SoundEnabled bool             `json:"soundEnabled"`
	VoiceEnabled bool             `json:"voiceEnabled"`
}

type snapshotRow struct {
	bun.BaseModel `bun:"table:snapshots,alias:s"`

	Key       string    `bun:"key,pk"`
	Data      []byte    `bun:"data,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// SaveSnapshot writes the snapshot, replacing any previous one.
func (s *Store) SaveSnapshot(ctx context.Context, data *SnapshotData) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	row := &snapshotRow{
		Key:       SnapshotKey,
		Data:      b,
		UpdatedAt: time.Now(),
	}
	_, err = s.db.NewInsert().
		Model(row).
		On("CONFLICT (key) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the stored snapshot. A missing snapshot is not an
// error; it returns nil, nil so a first run starts fresh.
func (s *Store) LoadSnapshot(ctx context.Context) (*SnapshotData, error) {
	row := new(snapshotRow)
	err := s.db.NewSelect().
		Model(row).
		Where("key = ?", SnapshotKey).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var data SnapshotData
	if err := json.Unmarshal(row.Data, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &data, nil
}

// DeleteSnapshot removes all saved progress.
func (s *Store) DeleteSnapshot(ctx context.Context) error {
	_, err := s.db.NewDelete().
		Model((*snapshotRow)(nil)).
		Where("key = ?", SnapshotKey).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
