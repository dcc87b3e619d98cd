// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/fifi-bags/storefront-backend/internal/domain/catalog"
)

// Line represents one product instance in the shopping bag. The embedded
// product is a snapshot taken at add-time; later catalog edits do not
// touch it.
type Line struct {
	LineID  string          `json:"lineId"`
	Product catalog.Product `json:"product"`
	AddedAt time.Time       `json:"addedAt"`
}

// Bag represents the in-progress order for one session
type Bag struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total"`
}
