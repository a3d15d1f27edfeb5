package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no product matches the requested id. Callers
// treat it as a normal outcome (a not-found view), never a failure.
var ErrNotFound = errors.New("catalog: product not found")

// Sort orders accepted by ListProducts.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// Filter narrows and orders a product listing. Zero values leave the
// corresponding dimension unfiltered.
type Filter struct {
	Search     string
	Categories []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       string
}

// Service defines catalog queries.
type Service interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListFeatured(ctx context.Context) []*Product
	ListByCategory(ctx context.Context, category string) []*Product
	ListProducts(ctx context.Context, f Filter) []*Product
	Categories(ctx context.Context) []string
	Materials(ctx context.Context) []Material
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, ok := s.repo.GetByID(ctx, id)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) ListFeatured(ctx context.Context) []*Product {
	var out []*Product
	for _, p := range s.repo.List(ctx) {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) ListByCategory(ctx context.Context, category string) []*Product {
	var out []*Product
	for _, p := range s.repo.List(ctx) {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) ListProducts(ctx context.Context, f Filter) []*Product {
	result := s.repo.List(ctx)

	if f.Search != "" {
		search := strings.ToLower(f.Search)
		result = filterProducts(result, func(p *Product) bool {
			return strings.Contains(strings.ToLower(p.Name), search) ||
				strings.Contains(strings.ToLower(p.Description), search) ||
				strings.Contains(strings.ToLower(p.ShortDescription), search)
		})
	}

	if len(f.Categories) > 0 {
		wanted := make(map[string]bool, len(f.Categories))
		for _, c := range f.Categories {
			wanted[c] = true
		}
		result = filterProducts(result, func(p *Product) bool { return wanted[p.Category] })
	}

	if f.MinPrice != nil {
		min := *f.MinPrice
		result = filterProducts(result, func(p *Product) bool { return p.Price.GreaterThanOrEqual(min) })
	}
	if f.MaxPrice != nil {
		max := *f.MaxPrice
		result = filterProducts(result, func(p *Product) bool { return p.Price.LessThanOrEqual(max) })
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price.LessThan(result[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price.GreaterThan(result[j].Price) })
	case SortName:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	default:
		// featured first, catalog order otherwise
		sort.SliceStable(result, func(i, j int) bool { return result[i].Featured && !result[j].Featured })
	}
	return result
}

func (s *service) Categories(_ context.Context) []string {
	return append([]string(nil), Categories...)
}

func (s *service) Materials(ctx context.Context) []Material {
	return s.repo.Materials(ctx)
}

func filterProducts(in []*Product, keep func(*Product) bool) []*Product {
	out := in[:0]
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
