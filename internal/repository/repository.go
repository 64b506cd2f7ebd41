package repository

import (
	"context"
	"errors"

	"github.com/sweetshop/inventory-service/internal/domain"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the persistence contract for product
// documents. The store assigns ids on Create and guarantees that
// AdjustQuantity never drives the stored quantity below zero, even
// under concurrent adjustments.
type ProductRepository interface {
	// List returns every product in the table, unfiltered.
	List(ctx context.Context) ([]domain.Product, error)

	// Create persists a new product, assigning its id, and returns
	// the stored document.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID returns a single product or ErrProductNotFound.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// Update replaces the mutable fields of an existing product and
	// returns the updated document, or ErrProductNotFound.
	Update(ctx context.Context, id string, product *domain.Product) (*domain.Product, error)

	// Delete removes a product or returns ErrProductNotFound.
	Delete(ctx context.Context, id string) error

	// AdjustQuantity applies a signed delta to a product's quantity
	// as a single conditional update. Returns ErrInsufficientStock
	// when the result would be negative; no change is applied.
	AdjustQuantity(ctx context.Context, id string, adjustment int) (*domain.Product, error)
}
