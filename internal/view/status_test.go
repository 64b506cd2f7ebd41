package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sweetshop/inventory-service/internal/domain"
)

func TestStockBadges(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	nextYear := now.AddDate(1, 0, 0)

	tests := []struct {
		name     string
		product  domain.Product
		expected Badges
	}{
		{
			name:     "In stock",
			product:  domain.Product{Quantity: 50, MinStockLevel: 10},
			expected: Badges{Status: InStock},
		},
		{
			name:     "Zero quantity is out of stock",
			product:  domain.Product{Quantity: 0, MinStockLevel: 10},
			expected: Badges{Status: OutOfStock},
		},
		{
			name:     "Negative quantity is out of stock",
			product:  domain.Product{Quantity: -3},
			expected: Badges{Status: OutOfStock},
		},
		{
			name:     "Expired but in stock",
			product:  domain.Product{Quantity: 5, ExpiryDate: &yesterday},
			expected: Badges{Status: InStockExpired},
		},
		{
			name:     "Future expiry is in stock",
			product:  domain.Product{Quantity: 5, ExpiryDate: &nextYear},
			expected: Badges{Status: InStock},
		},
		{
			name:     "Out of stock wins over expiry",
			product:  domain.Product{Quantity: 0, ExpiryDate: &yesterday},
			expected: Badges{Status: OutOfStock},
		},
		{
			name:     "Low stock badge attaches when at threshold",
			product:  domain.Product{Quantity: 5, MinStockLevel: 10},
			expected: Badges{Status: InStock, LowStock: true},
		},
		{
			name:     "Quantity exactly at min is low stock",
			product:  domain.Product{Quantity: 10, MinStockLevel: 10},
			expected: Badges{Status: InStock, LowStock: true},
		},
		{
			name:     "No low stock badge when out of stock",
			product:  domain.Product{Quantity: 0, MinStockLevel: 10},
			expected: Badges{Status: OutOfStock, LowStock: false},
		},
		{
			name:     "Low stock combines with expired",
			product:  domain.Product{Quantity: 5, MinStockLevel: 10, ExpiryDate: &yesterday},
			expected: Badges{Status: InStockExpired, LowStock: true},
		},
		{
			name:     "inStock flag is ignored by derivation",
			product:  domain.Product{Quantity: 0, InStock: true},
			expected: Badges{Status: OutOfStock},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StockBadges(tt.product, now))
		})
	}
}

func TestStockBadges_Pure(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	product := domain.Product{Quantity: 5, MinStockLevel: 10, ExpiryDate: &yesterday}

	first := StockBadges(product, now)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, StockBadges(product, now))
	}
}
