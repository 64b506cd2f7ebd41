package events

import (
	"time"
)

const (
	TypeProductCreated = "product.created"
	TypeProductUpdated = "product.updated"
	TypeProductDeleted = "product.deleted"
	TypeStockAdjusted  = "stock.adjusted"
)

// ProductEvent records a lifecycle change to a product document.
type ProductEvent struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name,omitempty"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// StockAdjustedEvent records a signed stock movement. Reason is the
// operator-supplied free text, forwarded verbatim.
type StockAdjustedEvent struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	ProductID   string    `json:"product_id"`
	Adjustment  int       `json:"adjustment"`
	NewQuantity int       `json:"new_quantity"`
	Reason      string    `json:"reason,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
