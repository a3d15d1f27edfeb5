package cart

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialOption is one optional add-on attached to a cart line, carrying the
// per-line selection state. ID, Name and Price are fixed once the line is
// created; only Selected changes.
type MaterialOption struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Selected bool            `json:"selected"`
}

// LineItem is one entry in the cart. ID identifies the line itself, not the
// product; ProductID is a weak reference into the catalog and the cart keeps
// working if the product later disappears from it.
type LineItem struct {
	ID        uuid.UUID        `json:"id"`
	ProductID string           `json:"product_id"`
	Name      string           `json:"name"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	Quantity  int              `json:"quantity"`
	Image     string           `json:"image,omitempty"`
	Materials []MaterialOption `json:"materials"`
}

// selectedMaterialIDs returns the ids of the selected materials in sorted
// order, so two selections compare as sets.
func (l LineItem) selectedMaterialIDs() []string {
	var ids []string
	for _, m := range l.Materials {
		if m.Selected {
			ids = append(ids, m.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// sameSelection reports whether the other line has the same selected
// material set, regardless of order.
func (l LineItem) sameSelection(other LineItem) bool {
	a, b := l.selectedMaterialIDs(), other.selectedMaterialIDs()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// total is (unit price + selected materials) x quantity.
func (l LineItem) total() decimal.Decimal {
	unit := l.UnitPrice
	for _, m := range l.Materials {
		if m.Selected {
			unit = unit.Add(m.Price)
		}
	}
	return unit.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l LineItem) clone() LineItem {
	l.Materials = append([]MaterialOption(nil), l.Materials...)
	return l
}

func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, it := range items {
		out[i] = it.clone()
	}
	return out
}
