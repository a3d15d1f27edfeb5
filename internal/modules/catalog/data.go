package catalog

import "github.com/shopspring/decimal"

// Categories lists every product category in display order.
var Categories = []string{"guns", "animals", "plants", "geometric", "abstract"}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// GenericMaterials returns the storefront-wide add-on materials offered for
// products that do not define their own set.
func GenericMaterials() []Material {
	return []Material{
		{ID: "material-1", Name: "Premium Paper (+$5)", Price: price("5.00")},
		{ID: "material-2", Name: "Gold Trim (+$10)", Price: price("10.00")},
		{ID: "material-3", Name: "Display Case (+$15)", Price: price("15.00")},
		{ID: "material-4", Name: "LED Lighting (+$20)", Price: price("20.00")},
	}
}

// SeedProducts returns the full product catalog in definition order.
func SeedProducts() []*Product {
	m := GenericMaterials()
	craftMaterials := []Material{
		{ID: "white-paper", Name: "White Premium Paper", Price: price("0")},
		{ID: "gold-foil", Name: "Gold Foil Accent", Price: price("5")},
		{ID: "handmade-washi", Name: "Handmade Washi Paper", Price: price("8")},
	}
	return []*Product{
		{
			ID:               "gun-pistol",
			Name:             "Pistol",
			Price:            price("24.99"),
			ShortDescription: "A miniature origami pistol with intricate details.",
			Description: "This origami pistol is a unique blend of art and craftsmanship, showcasing the intricate details " +
				"of a firearm in paper form. Each fold is meticulously crafted to create a realistic representation, making it " +
				"a perfect conversation piece or collector's item.",
			Images:             []string{"/assets/products/Pistol.png"},
			Category:           "guns",
			Featured:           true,
			InStock:            true,
			AvailableMaterials: craftMaterials,
		},
		{
			ID:               "minimal-crane",
			Name:             "Minimal Crane",
			Price:            price("24.99"),
			ShortDescription: "A timeless origami crane with a minimalist aesthetic.",
			Description: "Handcrafted from premium origami paper, the Minimal Crane embodies elegance and simplicity. " +
				"Perfect for modern interiors, it symbolizes peace and good fortune.",
			Images:             []string{"/assets/products/placeholder.svg"},
			Category:           "animals",
			Featured:           true,
			InStock:            true,
			AvailableMaterials: craftMaterials,
		},
		{
			ID:               "geometric-polyhedron",
			Name:             "Geometric Polyhedron",
			Price:            price("49.99"),
			ShortDescription: "A complex geometric form created through precise mathematical folds.",
			Description: "The Geometric Polyhedron is a testament to the mathematical precision possible with origami. " +
				"This intricate piece features multiple interconnected faces forming a perfect polyhedron structure. The clean " +
				"lines and sharp angles create fascinating light and shadow patterns as the ambient light changes throughout " +
				"the day. Each fold is carefully calculated and executed, resulting in a perfectly balanced geometric sculpture.",
			Images:             []string{"/assets/products/placeholder.svg"},
			Category:           "geometric",
			Featured:           false,
			InStock:            true,
			AvailableMaterials: []Material{m[0], m[1], m[2], m[3]},
		},
		{
			ID:               "lotus-bloom",
			Name:             "Lotus Bloom",
			Price:            price("34.99"),
			ShortDescription: "A delicate lotus flower captured in mid-bloom.",
			Description: "The Lotus Bloom captures the serene beauty of this iconic flower in its most captivating moment - " +
				"just as the petals unfurl. Each petal is individually folded and assembled to create a realistic yet artistic " +
				"interpretation of nature. The Lotus Bloom represents purity and enlightenment, making it a thoughtful gift or " +
				"a meaningful addition to contemplative spaces.",
			Images:             []string{"/assets/products/placeholder.svg"},
			Category:           "plants",
			Featured:           false,
			InStock:            true,
			AvailableMaterials: []Material{m[0], m[1], m[3]},
		},
		{
			ID:               "abstract-wave",
			Name:             "Abstract Wave",
			Price:            price("59.99"),
			ShortDescription: "A flowing sculpture capturing the essence of water in motion.",
			Description: "The Abstract Wave pushes the boundaries of traditional origami by creating fluid, organic curves " +
				"that seem to defy the constraints of paper folding. This dynamic piece captures the essence of water in " +
				"motion, frozen in a moment of perfect balance. Multiple curved elements interact to create a sense of " +
				"movement and rhythm.",
			Images:             []string{"/assets/products/placeholder.svg"},
			Category:           "abstract",
			Featured:           true,
			InStock:            true,
			AvailableMaterials: []Material{m[0], m[2]},
		},
		{
			ID:               "architectural-pavilion",
			Name:             "Architectural Pavilion",
			Price:            price("69.99"),
			ShortDescription: "A miniature architectural structure inspired by modern pavilion design.",
			Description: "The Architectural Pavilion represents the fascinating intersection of origami and architectural " +
				"design. This complex piece features multiple interconnected elements that create a miniature structure " +
				"resembling a modern pavilion. The Architectural Pavilion plays with negative space as much as with form, " +
				"creating interesting views from multiple angles.",
			Images:             []string{"/assets/products/placeholder.svg"},
			Category:           "geometric",
			Featured:           false,
			InStock:            true,
			AvailableMaterials: []Material{m[0], m[1], m[2]},
		},
		{
			ID:               "minimal-fox",
			Name:             "Minimal Fox",
			Price:            price("44.99"),
			ShortDescription: "A stylized fox design reduced to its essential geometric elements.",
			Description: "The Minimal Fox represents our design philosophy of reducing forms to their most essential " +
				"elements while maintaining character and identity. This stylized fox captures the distinctive features of " +
				"the animal - the pointed ears, the alert posture, the bushy tail - but renders them with clean, geometric " +
				"precision.",
			Images:             []string{"/assets/products/placeholder.svg"},
			Category:           "animals",
			Featured:           false,
			InStock:            true,
			AvailableMaterials: []Material{m[0], m[2], m[3]},
		},
		{
			ID:               "bonsai-sculpture",
			Name:             "Paper Bonsai",
			Price:            price("79.99"),
			ShortDescription: "A detailed miniature tree inspired by the art of bonsai.",
			Description: "The Paper Bonsai brings together the Japanese traditions of origami and bonsai to create a " +
				"striking sculptural piece. This detailed miniature tree features an intricate trunk and branch structure " +
				"supporting delicate foliage, all created through precise paper folding techniques. The Paper Bonsai " +
				"represents harmony, balance, and the beauty of nature.",
			Images:             []string{"/assets/products/placeholder.svg"},
			Category:           "plants",
			Featured:           true,
			InStock:            true,
			AvailableMaterials: []Material{m[0], m[2], m[3]},
		},
		{
			ID:               "minimal-elephant",
			Name:             "Minimal Elephant",
			Price:            price("54.99"),
			ShortDescription: "A geometric interpretation of an elephant with clean, modern lines.",
			Description: "The Minimal Elephant captures the distinctive silhouette of this majestic animal using a series " +
				"of geometric folds and planes. This design distills the elephant's most recognizable features - the trunk, " +
				"ears, and sturdy form - into an abstract yet immediately identifiable sculpture. The Minimal Elephant " +
				"represents strength and wisdom in a contemporary artistic form.",
			Images:             []string{"/assets/products/placeholder.svg"},
			Category:           "animals",
			Featured:           false,
			InStock:            true,
			AvailableMaterials: []Material{m[0], m[1], m[2]},
		},
	}
}
