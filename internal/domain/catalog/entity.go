// internal/domain/catalog/entity.go
package catalog

// Product represents a sellable item in the catalog
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category,omitempty"`
	IsNew       bool    `json:"isNew,omitempty"`
	SoldOut     bool    `json:"soldOut,omitempty"`
}

// DefaultProducts returns the built-in catalog used when no snapshot exists
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "The Latte Canvas Tote",
			Price:       85,
			Description: "A spacious everyday tote made from durable beige canvas with rich espresso leather handles. Perfect for the market or the weekend getaway.",
			Image:       "https://images.unsplash.com/photo-1591561954557-26941169b49e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Unisex",
			IsNew:       true,
		},
		{
			ID:          "2",
			Name:        "Chestnut Crossbody",
			Price:       65,
			Description: "Compact yet roomy enough for essentials. Crafted from soft vegan leather in a warm chestnut shade with brass hardware.",
			Image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Women",
		},
		{
			ID:          "3",
			Name:        "Espresso Evening Clutch",
			Price:       120,
			Description: "A bold statement piece. Deep dark brown velvet finish with a gold geometric clasp. Elegant and timeless.",
			Image:       "https://images.unsplash.com/photo-1566150905458-1bf1fc113f0d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Women",
		},
		{
			ID:          "4",
			Name:        "Sandstone Backpack",
			Price:       95,
			Description: "Hands-free convenience meets rustic style. Durable canvas in a soft sand color with adjustable leather straps.",
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Men",
			IsNew:       true,
		},
		{
			ID:          "5",
			Name:        "Signature Caramel Mini",
			Price:       55,
			Description: "Our best-seller. A tiny bag for big personalities. Comes in our signature rich caramel hue.",
			Image:       "https://images.unsplash.com/photo-1594223274512-ad4803739b7c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Women",
		},
		{
			ID:          "6",
			Name:        "Rustic Sienna Bucket",
			Price:       78,
			Description: "Slouchy, comfortable, and chic. Made from reclaimed leather with a natural sienna dye finish.",
			Image:       "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
			Category:    "Unisex",
			SoldOut:     true,
		},
	}
}

// DefaultCategories returns the built-in category labels
func DefaultCategories() []string {
	return []string{"Women", "Men", "Unisex"}
}

// AllCategories is the pseudo-category that matches every product
const AllCategories = "All"
