package cart

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imagiro/imagiro-backend/internal/notify"
)

// memorySnapshots is the in-memory SnapshotStore fake from the design note:
// it lets the merge/pricing logic be tested without touching disk.
type memorySnapshots struct {
	mu    sync.Mutex
	data  map[string][]LineItem
	fail  error
	saves int
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{data: map[string][]LineItem{}}
}

func (m *memorySnapshots) Save(key string, items []LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.data[key] = items
	m.saves++
	return nil
}

func (m *memorySnapshots) Load(key string) ([]LineItem, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, false, m.fail
	}
	items, ok := m.data[key]
	return cloneItems(items), ok, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (n *recordingNotifier) Push(msg notify.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

func (n *recordingNotifier) last(t *testing.T) notify.Message {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.messages)
	return n.messages[len(n.messages)-1]
}

func newTestStore(t *testing.T) (*Store, *memorySnapshots, *recordingNotifier) {
	t.Helper()
	snaps := newMemorySnapshots()
	notifier := &recordingNotifier{}
	return NewStore("imagiro-cart", snaps, notifier, zap.NewNop()), snaps, notifier
}

func craneLine(quantity int, selected ...string) LineItem {
	sel := make(map[string]bool, len(selected))
	for _, id := range selected {
		sel[id] = true
	}
	return LineItem{
		ID:        uuid.New(),
		ProductID: "minimal-crane",
		Name:      "Minimal Crane",
		UnitPrice: decimal.RequireFromString("24.99"),
		Quantity:  quantity,
		Materials: []MaterialOption{
			{ID: "white-paper", Name: "White Premium Paper", Price: decimal.Zero, Selected: sel["white-paper"]},
			{ID: "gold-foil", Name: "Gold Foil Accent", Price: decimal.RequireFromString("5.00"), Selected: sel["gold-foil"]},
			{ID: "handmade-washi", Name: "Handmade Washi Paper", Price: decimal.RequireFromString("8.00"), Selected: sel["handmade-washi"]},
		},
	}
}

func TestAddMergesSameProductAndSelection(t *testing.T) {
	store, _, notifier := newTestStore(t)

	store.Add(craneLine(1))
	store.Add(craneLine(1))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "49.98", store.TotalPrice().StringFixed(2))
	assert.Contains(t, notifier.last(t).Description, "quantity updated to 2")
}

func TestAddMergeIsOrderIndependent(t *testing.T) {
	store, _, _ := newTestStore(t)

	first := craneLine(1, "gold-foil", "handmade-washi")
	second := craneLine(1, "handmade-washi", "gold-foil")
	store.Add(first)
	store.Add(second)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, first.ID, items[0].ID, "merge keeps the existing line's identity")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddKeepsDistinctSelectionsApart(t *testing.T) {
	store, _, notifier := newTestStore(t)

	store.Add(craneLine(1))
	store.Add(craneLine(1, "gold-foil"))

	require.Len(t, store.Items(), 2)
	assert.Contains(t, notifier.last(t).Description, "added to your cart")
}

func TestAddPreservesInsertionOrderAcrossMerges(t *testing.T) {
	store, _, _ := newTestStore(t)

	other := craneLine(1, "gold-foil")
	other.ProductID = "lotus-bloom"
	other.Name = "Lotus Bloom"

	store.Add(craneLine(1))
	store.Add(other)
	store.Add(craneLine(3)) // merges into the first line without moving it

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "minimal-crane", items[0].ProductID)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, "lotus-bloom", items[1].ProductID)
}

func TestAddClampsQuantityToOne(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.Add(craneLine(0))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityRemovesAtZeroOrBelow(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		store, _, _ := newTestStore(t)
		line := craneLine(2)
		store.Add(line)

		store.UpdateQuantity(line.ID, quantity)

		assert.Empty(t, store.Items())
		assert.Equal(t, 0, store.TotalItems())
	}
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	store, _, _ := newTestStore(t)
	line := craneLine(2)
	store.Add(line)

	store.UpdateQuantity(line.ID, 7)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestUpdateQuantityUnknownLineIsNoOp(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.Add(craneLine(1))

	store.UpdateQuantity(uuid.New(), 5)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveUnknownLineIsSilent(t *testing.T) {
	store, _, notifier := newTestStore(t)
	store.Add(craneLine(1))
	before := len(notifier.messages)

	store.Remove(uuid.New())

	assert.Len(t, store.Items(), 1)
	assert.Len(t, notifier.messages, before)
}

func TestToggleMaterialFlipsSelectionAndPrice(t *testing.T) {
	store, _, _ := newTestStore(t)
	line := craneLine(2)
	store.Add(line)

	store.ToggleMaterial(line.ID, "gold-foil")
	assert.Equal(t, "59.98", store.TotalPrice().StringFixed(2))

	store.ToggleMaterial(line.ID, "gold-foil")
	assert.Equal(t, "49.98", store.TotalPrice().StringFixed(2))
}

func TestToggleMaterialDoesNotReMergeDuplicates(t *testing.T) {
	store, _, _ := newTestStore(t)
	plain := craneLine(1)
	foiled := craneLine(1, "gold-foil")
	store.Add(plain)
	store.Add(foiled)

	// toggling makes both lines identical; they stay separate on purpose
	store.ToggleMaterial(plain.ID, "gold-foil")

	assert.Len(t, store.Items(), 2)
}

func TestToggleMaterialUnknownIDsAreNoOps(t *testing.T) {
	store, _, _ := newTestStore(t)
	line := craneLine(1)
	store.Add(line)

	store.ToggleMaterial(uuid.New(), "gold-foil")
	store.ToggleMaterial(line.ID, "no-such-material")

	items := store.Items()
	for _, m := range items[0].Materials {
		assert.False(t, m.Selected)
	}
}

func TestTotals(t *testing.T) {
	store, _, _ := newTestStore(t)

	line := craneLine(2, "gold-foil")
	store.Add(line)

	// (24.99 + 5.00) * 2
	assert.Equal(t, "59.98", store.TotalPrice().StringFixed(2))
	assert.Equal(t, 2, store.TotalItems())

	store.Add(craneLine(3))
	assert.Equal(t, 5, store.TotalItems())
}

func TestClearZeroesEverything(t *testing.T) {
	store, _, notifier := newTestStore(t)
	store.Add(craneLine(2, "gold-foil"))
	store.Add(craneLine(1))

	store.Clear()

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.TotalItems())
	assert.True(t, store.TotalPrice().IsZero())
	assert.Equal(t, "Cart cleared", notifier.last(t).Title)
}

func TestSnapshotRoundTrip(t *testing.T) {
	snaps := newMemorySnapshots()
	notifier := &recordingNotifier{}
	store := NewStore("imagiro-cart", snaps, notifier, zap.NewNop())
	store.Add(craneLine(2, "gold-foil"))
	store.Add(craneLine(1, "handmade-washi"))

	reloaded := NewStore("imagiro-cart", snaps, notifier, zap.NewNop())

	assert.Equal(t, store.Items(), reloaded.Items())
	assert.Equal(t, store.TotalPrice().StringFixed(2), reloaded.TotalPrice().StringFixed(2))
}

func TestSnapshotSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	snaps := newMemorySnapshots()
	notifier := &recordingNotifier{}
	store := NewStore("imagiro-cart", snaps, notifier, zap.NewNop())
	snaps.fail = assert.AnError

	store.Add(craneLine(1))

	assert.Len(t, store.Items(), 1)
}

func TestStateIsInternallyConsistent(t *testing.T) {
	store, _, _ := newTestStore(t)
	line := craneLine(2, "gold-foil")
	store.Add(line)

	items, totalItems, totalPrice := store.State()
	require.Len(t, items, 1)
	assert.Equal(t, 2, totalItems)
	assert.Equal(t, "59.98", totalPrice.StringFixed(2))
}

func TestStateAgreesWithItselfUnderConcurrentMutation(t *testing.T) {
	store, _, _ := newTestStore(t)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			store.Add(craneLine(1, "gold-foil"))
		}
	}()

	// every observation must be a coherent snapshot: totals derived from
	// the same lines the call returned
	for i := 0; i < 200; i++ {
		items, totalItems, totalPrice := store.State()
		wantCount := 0
		wantPrice := decimal.Zero
		for _, it := range items {
			wantCount += it.Quantity
			wantPrice = wantPrice.Add(it.total())
		}
		require.Equal(t, wantCount, totalItems)
		require.True(t, wantPrice.Equal(totalPrice))
	}
	<-done
}

func TestItemsReturnsCopies(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.Add(craneLine(1))

	items := store.Items()
	items[0].Quantity = 99
	items[0].Materials[1].Selected = true

	fresh := store.Items()
	assert.Equal(t, 1, fresh[0].Quantity)
	assert.False(t, fresh[0].Materials[1].Selected)
}
