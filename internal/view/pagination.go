package view

import "github.com/sweetshop/inventory-service/internal/domain"

// PageSize is the fixed number of rows per table page.
const PageSize = 10

// Table is the explicit view state for the inventory table: the
// fetched product list and the current 1-based page. Callers own a
// Table value; there is no shared state.
type Table struct {
	products []domain.Product
	page     int
}

func NewTable() *Table {
	return &Table{page: 1}
}

// Refresh replaces the underlying list and resets to page 1, matching
// the full re-fetch the client performs after every mutation.
func (t *Table) Refresh(products []domain.Product) {
	t.products = products
	t.page = 1
}

func (t *Table) Products() []domain.Product { return t.products }

func (t *Table) Page() int { return t.page }

// TotalPages is at least 1, even for an empty list.
func (t *Table) TotalPages() int {
	pages := (len(t.products) + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// GotoPage clamps the requested page to [1, TotalPages].
func (t *Table) GotoPage(page int) {
	if page < 1 {
		page = 1
	}
	if max := t.TotalPages(); page > max {
		page = max
	}
	t.page = page
}

// PageItems returns the window of products for the current page.
func (t *Table) PageItems() []domain.Product {
	start := (t.page - 1) * PageSize
	if start >= len(t.products) {
		return nil
	}
	end := start + PageSize
	if end > len(t.products) {
		end = len(t.products)
	}
	return t.products[start:end]
}
