package cart

import (
	"sync"

	"go.uber.org/zap"

	"github.com/imagiro/imagiro-backend/internal/notify"
)

// storageKeyPrefix matches the storefront's browser storage key so carts
// written by earlier builds keep loading.
const storageKeyPrefix = "imagiro-cart"

// Sessions hands out one cart store per visitor session. Each store is
// constructed on first use, rehydrating from the snapshot kept under its
// session-scoped storage key, and lives until the process exits.
type Sessions struct {
	mu        sync.Mutex
	stores    map[string]*Store
	snapshots SnapshotStore
	notifier  notify.Notifier
	log       *zap.Logger
}

func NewSessions(snapshots SnapshotStore, notifier notify.Notifier, log *zap.Logger) *Sessions {
	return &Sessions{
		stores:    make(map[string]*Store),
		snapshots: snapshots,
		notifier:  notifier,
		log:       log,
	}
}

// Store returns the cart store for the given session token. An empty token
// maps to the shared default key.
func (s *Sessions) Store(token string) *Store {
	key := storageKeyPrefix
	if token != "" {
		key = storageKeyPrefix + "-" + token
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stores[key]
	if !ok {
		st = NewStore(key, s.snapshots, s.notifier, s.log)
		s.stores[key] = st
	}
	return st
}
