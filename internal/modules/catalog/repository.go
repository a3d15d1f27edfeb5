package catalog

import "context"

// Repository defines read access to the product catalog. The catalog is
// immutable for the life of the process, so there are no write methods and
// no failure modes beyond "not found".
type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, bool)
	List(ctx context.Context) []*Product
	Materials(ctx context.Context) []Material
}
