// Package view holds the client-side derived state for the inventory
// table: stock status badges and pagination. Everything here is pure
// computation over fetched products; nothing talks to the network.
package view

import (
	"time"

	"github.com/sweetshop/inventory-service/internal/domain"
)

// Status is the primary stock status of a product.
type Status int

const (
	// OutOfStock means quantity is zero or less. It is terminal:
	// expiry is not considered for products that are out of stock.
	OutOfStock Status = iota

	// InStockExpired means the product has stock but its expiry date
	// has passed.
	InStockExpired

	// InStock means the product has stock and has not expired.
	InStock
)

func (s Status) String() string {
	switch s {
	case OutOfStock:
		return "Out of Stock"
	case InStockExpired:
		return "In Stock (Expired)"
	default:
		return "In Stock"
	}
}

// Badges is the full badge set shown for one product row. LowStock is
// independent of the primary status and only attaches when the
// product has stock at or below its minimum level.
type Badges struct {
	Status   Status
	LowStock bool
}

// StockBadges derives the badge set for a product at the given time.
// Pure: same inputs always produce the same badges.
func StockBadges(p domain.Product, now time.Time) Badges {
	var b Badges

	switch {
	case p.Quantity <= 0:
		b.Status = OutOfStock
	case p.ExpiryDate != nil && p.ExpiryDate.Before(now):
		b.Status = InStockExpired
	default:
		b.Status = InStock
	}

	b.LowStock = p.Quantity > 0 && p.Quantity <= p.MinStockLevel

	return b
}
