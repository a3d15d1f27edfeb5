package catalog

import "context"

type memoryRepo struct {
	products  []*Product
	byID      map[string]*Product
	materials []Material
}

// NewMemoryRepository builds the in-memory catalog from a fixed product set.
// Catalog definition order is preserved by every listing.
func NewMemoryRepository(products []*Product, materials []Material) Repository {
	byID := make(map[string]*Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &memoryRepo{products: products, byID: byID, materials: materials}
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*Product, bool) {
	p, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return p.clone(), true
}

func (r *memoryRepo) List(_ context.Context) []*Product {
	out := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.clone())
	}
	return out
}

func (r *memoryRepo) Materials(_ context.Context) []Material {
	return append([]Material(nil), r.materials...)
}
