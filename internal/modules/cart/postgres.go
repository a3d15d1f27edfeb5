package cart

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

type postgresSnapshotStore struct{ db *sql.DB }

// NewPostgresSnapshotStore persists snapshots in the cart_snapshots table
// (key text primary key, data jsonb, updated_at timestamptz).
func NewPostgresSnapshotStore(db *sql.DB) SnapshotStore {
	return &postgresSnapshotStore{db: db}
}

func (s *postgresSnapshotStore) Save(key string, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO cart_snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`, key, data)
	return err
}

func (s *postgresSnapshotStore) Load(key string) ([]LineItem, bool, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM cart_snapshots WHERE key=$1`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return items, true, nil
}
