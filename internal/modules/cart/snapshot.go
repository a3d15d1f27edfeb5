package cart

// SnapshotStore persists the full cart line sequence under a storage key.
// Save overwrites any previous snapshot for the key; there is no
// incremental diffing and no versioning, last write wins. Load reports
// ok=false when no snapshot exists; a structurally broken snapshot is an
// error the caller discards, never a startup failure.
type SnapshotStore interface {
	Save(key string, items []LineItem) error
	Load(key string) (items []LineItem, ok bool, err error)
}
