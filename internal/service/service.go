package service

import (
	"context"
	"errors"

	"github.com/sweetshop/inventory-service/internal/domain"
)

var (
	ErrNameRequired      = errors.New("product name is required")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidAdjustment = errors.New("adjustment would drive quantity below zero")
)

// ProductService defines the inventory operations exposed over HTTP.
type ProductService interface {
	// List returns every product, unfiltered and unpaginated.
	List(ctx context.Context) ([]domain.Product, error)

	// Create validates and stores a new product, returning it with
	// its assigned id.
	Create(ctx context.Context, req domain.ProductRequest) (*domain.Product, error)

	// Update applies the same validation and coercion as Create to
	// an existing product.
	Update(ctx context.Context, id string, req domain.ProductRequest) (*domain.Product, error)

	// Delete removes a product by id.
	Delete(ctx context.Context, id string) error

	// AdjustStock applies a signed quantity delta, refusing any
	// adjustment that would leave the quantity negative.
	AdjustStock(ctx context.Context, req domain.AdjustStockRequest) (*domain.Product, error)
}
