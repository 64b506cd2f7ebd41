package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetshop/inventory-service/internal/domain"
)

func makeProducts(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{
			ID:   fmt.Sprintf("p%03d", i+1),
			Name: fmt.Sprintf("Product %d", i+1),
		}
	}
	return products
}

func TestTable_TotalPages(t *testing.T) {
	tests := []struct {
		count    int
		expected int
	}{
		{count: 0, expected: 1},
		{count: 1, expected: 1},
		{count: 10, expected: 1},
		{count: 11, expected: 2},
		{count: 25, expected: 3},
		{count: 30, expected: 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d products", tt.count), func(t *testing.T) {
			table := NewTable()
			table.Refresh(makeProducts(tt.count))
			assert.Equal(t, tt.expected, table.TotalPages())
		})
	}
}

func TestTable_PageWindows(t *testing.T) {
	table := NewTable()
	table.Refresh(makeProducts(25))

	items := table.PageItems()
	require.Len(t, items, 10)
	assert.Equal(t, "p001", items[0].ID)
	assert.Equal(t, "p010", items[9].ID)

	table.GotoPage(3)
	items = table.PageItems()
	require.Len(t, items, 5)
	assert.Equal(t, "p021", items[0].ID)
	assert.Equal(t, "p025", items[4].ID)
}

func TestTable_GotoPageClamps(t *testing.T) {
	table := NewTable()
	table.Refresh(makeProducts(25))

	table.GotoPage(4)
	assert.Equal(t, 3, table.Page())

	table.GotoPage(0)
	assert.Equal(t, 1, table.Page())

	table.GotoPage(-7)
	assert.Equal(t, 1, table.Page())
}

func TestTable_EmptyList(t *testing.T) {
	table := NewTable()
	table.Refresh(nil)

	assert.Equal(t, 1, table.TotalPages())
	assert.Equal(t, 1, table.Page())
	assert.Empty(t, table.PageItems())

	table.GotoPage(5)
	assert.Equal(t, 1, table.Page())
}

func TestTable_RefreshResetsPage(t *testing.T) {
	table := NewTable()
	table.Refresh(makeProducts(25))
	table.GotoPage(3)
	require.Equal(t, 3, table.Page())

	table.Refresh(makeProducts(25))
	assert.Equal(t, 1, table.Page())
}

// Concatenating every page in order must reproduce the full list.
func TestTable_PagesCoverList(t *testing.T) {
	for _, count := range []int{0, 1, 9, 10, 11, 25, 100, 101} {
		t.Run(fmt.Sprintf("%d products", count), func(t *testing.T) {
			products := makeProducts(count)
			table := NewTable()
			table.Refresh(products)

			var collected []domain.Product
			for page := 1; page <= table.TotalPages(); page++ {
				table.GotoPage(page)
				require.Equal(t, page, table.Page())
				items := table.PageItems()
				assert.LessOrEqual(t, len(items), PageSize)
				collected = append(collected, items...)
			}

			assert.Equal(t, products, append([]domain.Product{}, collected...))
		})
	}
}
