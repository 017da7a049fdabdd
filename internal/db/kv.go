package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"stockroom/internal/model"
)

// SnapshotKey is the key the full inventory state is stored under.
const SnapshotKey = "inventoryData"

// SaveSnapshot serializes the full inventory state and replaces the stored
// blob in one statement, so a reader never observes a partial snapshot.
func SaveSnapshot(ctx context.Context, db *sql.DB, snap model.Snapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO snapshots (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		SnapshotKey, string(value),
	)
	if err != nil {
		return fmt.Errorf("storing snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the persisted inventory state, or nil if none has
// been stored yet.
func LoadSnapshot(ctx context.Context, db *sql.DB) (*model.Snapshot, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM snapshots WHERE key = ?`, SnapshotKey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	snap := &model.Snapshot{}
	if err := json.Unmarshal([]byte(value), snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return snap, nil
}

// SnapshotStore adapts the snapshots table to the inventory store's
// Snapshotter interface.
type SnapshotStore struct {
	DB *sql.DB
}

// Save persists the snapshot.
func (s *SnapshotStore) Save(snap model.Snapshot) error {
	return SaveSnapshot(context.Background(), s.DB, snap)
}
