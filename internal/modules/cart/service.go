package cart

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/imagiro/imagiro-backend/internal/modules/catalog"
)

var (
	// ErrOutOfStock rejects adds for products the catalog marks unavailable.
	ErrOutOfStock = errors.New("cart: product is out of stock")
	// Promo validation mirrors the storefront: no code is currently
	// accepted, but the known code gets a distinct message.
	ErrPromoNotValid = errors.New("promo code not valid for this order")
	ErrPromoInvalid  = errors.New("invalid promo code")
)

// The product configurator accepts quantities in this range; anything
// outside is clamped, not rejected.
const (
	minQuantity = 1
	maxQuantity = 10
)

var flatShipping = decimal.RequireFromString("4.99")

// AddItemRequest describes a configured product to put in the cart.
type AddItemRequest struct {
	ProductID   string   `json:"product_id"`
	Quantity    int      `json:"quantity"`
	MaterialIDs []string `json:"material_ids"`
}

// Summary is the cart as the storefront renders it: the lines plus derived
// totals and the flat shipping fee for non-empty carts.
type Summary struct {
	Items      []LineItem      `json:"items"`
	TotalItems int             `json:"total_items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
}

// Service defines cart business logic for one session at a time.
type Service interface {
	Summary(ctx context.Context, token string) Summary
	AddItem(ctx context.Context, token string, req AddItemRequest) (Summary, error)
	UpdateQuantity(ctx context.Context, token string, lineID uuid.UUID, quantity int) Summary
	ToggleMaterial(ctx context.Context, token string, lineID uuid.UUID, materialID string) Summary
	RemoveItem(ctx context.Context, token string, lineID uuid.UUID) Summary
	Clear(ctx context.Context, token string) Summary
	ApplyPromo(ctx context.Context, code string) error
}

type service struct {
	catalog  catalog.Service
	sessions *Sessions
}

func NewService(catalogSvc catalog.Service, sessions *Sessions) Service {
	return &service{catalog: catalogSvc, sessions: sessions}
}

func (s *service) Summary(_ context.Context, token string) Summary {
	return summarize(s.sessions.Store(token))
}

// AddItem resolves the product, instantiates its material options with the
// requested selection, and hands a fresh line to the store. Material ids
// not offered by the product are ignored.
func (s *service) AddItem(ctx context.Context, token string, req AddItemRequest) (Summary, error) {
	store := s.sessions.Store(token)

	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return summarize(store), err
	}
	if !product.InStock {
		return summarize(store), ErrOutOfStock
	}

	quantity := req.Quantity
	if quantity < minQuantity {
		quantity = minQuantity
	}
	if quantity > maxQuantity {
		quantity = maxQuantity
	}

	selected := make(map[string]bool, len(req.MaterialIDs))
	for _, id := range req.MaterialIDs {
		selected[id] = true
	}
	materials := make([]MaterialOption, 0, len(product.AvailableMaterials))
	for _, m := range product.AvailableMaterials {
		materials = append(materials, MaterialOption{
			ID:       m.ID,
			Name:     m.Name,
			Price:    m.Price,
			Selected: selected[m.ID],
		})
	}

	var image string
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	store.Add(LineItem{
		ID:        uuid.New(),
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
		Image:     image,
		Materials: materials,
	})
	return summarize(store), nil
}

func (s *service) UpdateQuantity(_ context.Context, token string, lineID uuid.UUID, quantity int) Summary {
	store := s.sessions.Store(token)
	store.UpdateQuantity(lineID, quantity)
	return summarize(store)
}

func (s *service) ToggleMaterial(_ context.Context, token string, lineID uuid.UUID, materialID string) Summary {
	store := s.sessions.Store(token)
	store.ToggleMaterial(lineID, materialID)
	return summarize(store)
}

func (s *service) RemoveItem(_ context.Context, token string, lineID uuid.UUID) Summary {
	store := s.sessions.Store(token)
	store.Remove(lineID)
	return summarize(store)
}

func (s *service) Clear(_ context.Context, token string) Summary {
	store := s.sessions.Store(token)
	store.Clear()
	return summarize(store)
}

func (s *service) ApplyPromo(_ context.Context, code string) error {
	if strings.EqualFold(strings.TrimSpace(code), "welcome10") {
		return ErrPromoNotValid
	}
	return ErrPromoInvalid
}

func summarize(store *Store) Summary {
	items, totalItems, subtotal := store.State()
	shipping := decimal.Zero
	if len(items) > 0 {
		shipping = flatShipping
	}
	return Summary{
		Items:      items,
		TotalItems: totalItems,
		Subtotal:   subtotal,
		Shipping:   shipping,
		Total:      subtotal.Add(shipping),
	}
}
