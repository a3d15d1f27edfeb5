package catalog

import "github.com/shopspring/decimal"

// Material is an optional paid add-on offered for a product. It is a
// template: the cart copies it into a selectable option when an item is
// configured.
type Material struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Product is one item in the storefront catalog. Products are defined at
// startup and never mutated.
type Product struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Price              decimal.Decimal `json:"price"`
	ShortDescription   string          `json:"short_description"`
	Description        string          `json:"description"`
	Images             []string        `json:"images"`
	Category           string          `json:"category"`
	Featured           bool            `json:"featured"`
	InStock            bool            `json:"in_stock"`
	AvailableMaterials []Material      `json:"available_materials"`
}

func (p *Product) clone() *Product {
	c := *p
	c.Images = append([]string(nil), p.Images...)
	c.AvailableMaterials = append([]Material(nil), p.AvailableMaterials...)
	return &c
}
