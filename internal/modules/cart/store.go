package cart

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/imagiro/imagiro-backend/internal/notify"
)

// Store is the single writable source of truth for one visitor's cart. It
// rehydrates from its snapshot at construction and mirrors every mutation
// back to the snapshot store. The in-memory state is authoritative while the
// store lives; the snapshot is only a cache for the next session.
type Store struct {
	mu        sync.RWMutex
	key       string
	items     []LineItem
	snapshots SnapshotStore
	notifier  notify.Notifier
	log       *zap.Logger
}

// NewStore loads the snapshot stored under key, falling back to an empty
// cart when the snapshot is missing or unreadable. A corrupt snapshot must
// never block startup, so the parse failure is logged and swallowed.
func NewStore(key string, snapshots SnapshotStore, notifier notify.Notifier, log *zap.Logger) *Store {
	s := &Store{key: key, snapshots: snapshots, notifier: notifier, log: log}
	items, ok, err := snapshots.Load(key)
	switch {
	case err != nil:
		log.Warn("discarding unreadable cart snapshot", zap.String("key", key), zap.Error(err))
	case ok:
		s.items = items
	}
	return s
}

// Add puts a fully configured line into the cart. If an existing line has
// the same product and the same selected material set, its quantity grows
// by the candidate's quantity and the line keeps its position and material
// flags; otherwise the candidate is appended as a new line. A candidate
// quantity below 1 is clamped to 1.
func (s *Store) Add(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == item.ProductID && s.items[i].sameSelection(item) {
			s.items[i].Quantity += item.Quantity
			qty := s.items[i].Quantity
			s.persistLocked()
			s.mu.Unlock()
			s.notifier.Push(notify.Message{
				Title:       "Item added to cart",
				Description: fmt.Sprintf("%s quantity updated to %d", item.Name, qty),
			})
			return
		}
	}
	s.items = append(s.items, item.clone())
	s.persistLocked()
	s.mu.Unlock()
	s.notifier.Push(notify.Message{
		Title:       "Item added to cart",
		Description: fmt.Sprintf("%s added to your cart", item.Name),
	})
}

// Remove deletes the line with the given id. An unknown id is a silent
// no-op.
func (s *Store) Remove(lineID uuid.UUID) {
	s.mu.Lock()
	removed := s.removeLocked(lineID)
	s.mu.Unlock()
	if removed {
		s.notifier.Push(notify.Message{
			Title:       "Item removed",
			Description: "The item has been removed from your cart",
		})
	}
}

// UpdateQuantity sets the line's quantity to exactly quantity. A value of
// zero or below removes the line. An unknown id is a silent no-op.
func (s *Store) UpdateQuantity(lineID uuid.UUID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(lineID)
		return
	}
	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items[i].Quantity = quantity
			s.persistLocked()
			return
		}
	}
}

// ToggleMaterial flips the selection flag of one material on one line. It
// deliberately does not re-run the merge rule, so two lines can end up with
// identical configurations through this path.
func (s *Store) ToggleMaterial(lineID uuid.UUID, materialID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != lineID {
			continue
		}
		for j := range s.items[i].Materials {
			if s.items[i].Materials[j].ID == materialID {
				s.items[i].Materials[j].Selected = !s.items[i].Materials[j].Selected
				s.persistLocked()
				return
			}
		}
		return
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.persistLocked()
	s.mu.Unlock()
	s.notifier.Push(notify.Message{
		Title:       "Cart cleared",
		Description: "Your cart has been cleared",
	})
}

// State returns the lines together with both derived totals, all computed
// under one lock so the three values always describe the same cart.
func (s *Store) State() (items []LineItem, totalItems int, totalPrice decimal.Decimal) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	totalPrice = decimal.Zero
	for _, it := range s.items {
		totalItems += it.Quantity
		totalPrice = totalPrice.Add(it.total())
	}
	return cloneItems(s.items), totalItems, totalPrice
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// TotalItems is the sum of quantities across all lines.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is recomputed from the lines on every call; it is never stored.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.total())
	}
	return total
}

func (s *Store) removeLocked(lineID uuid.UUID) bool {
	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

// persistLocked writes the full cart snapshot. Persistence is
// fire-and-forget: a failed write is logged and the in-memory state stays
// authoritative.
func (s *Store) persistLocked() {
	if err := s.snapshots.Save(s.key, cloneItems(s.items)); err != nil {
		s.log.Warn("cart snapshot write failed", zap.String("key", s.key), zap.Error(err))
	}
}
