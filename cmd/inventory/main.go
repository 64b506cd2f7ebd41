// Command inventory is a terminal client for the inventory API: it
// renders the paginated product table with stock badges and submits
// add/update/delete/adjust actions.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sweetshop/inventory-service/internal/client"
	"github.com/sweetshop/inventory-service/internal/domain"
	"github.com/sweetshop/inventory-service/internal/view"
)

const usage = `usage: inventory [-api URL] <command> [args]

commands:
  list [page]                          show one page of the product table
  add <name> <price> <qty> [category]  create a product
  delete <id>                          delete a product
  adjust <id> <delta> [reason]         adjust stock by a signed amount
`

func main() {
	apiURL := flag.String("api", "http://localhost:5000", "inventory API base URL")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	c := client.New(*apiURL, logger)
	ctx := context.Background()

	var cmdErr error
	switch args[0] {
	case "list":
		cmdErr = runList(ctx, c, args[1:])
	case "add":
		cmdErr = runAdd(ctx, c, args[1:])
	case "delete":
		cmdErr = runDelete(ctx, c, args[1:])
	case "adjust":
		cmdErr = runAdjust(ctx, c, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, "error:", cmdErr)
		os.Exit(1)
	}
}

func runList(ctx context.Context, c *client.Client, args []string) error {
	page := 1
	if len(args) > 0 {
		p, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid page %q", args[0])
		}
		page = p
	}

	products, err := c.ListProducts(ctx)
	if err != nil {
		return err
	}
	// Scan order is arbitrary; sort for a stable table
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })

	table := view.NewTable()
	table.Refresh(products)
	table.GotoPage(page)

	renderTable(table)
	return nil
}

func runAdd(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 3 {
		return errors.New("add needs <name> <price> <qty>")
	}

	price, _ := strconv.ParseFloat(args[1], 64)
	qty, _ := strconv.Atoi(args[2])
	category := ""
	if len(args) > 3 {
		category = args[3]
	}

	product, err := c.CreateProduct(ctx, domain.ProductRequest{
		Name:     args[0],
		Price:    domain.Number(price),
		Quantity: domain.Number(qty),
		Category: category,
		InStock:  qty > 0,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created %s (%s)\n", product.Name, product.ID)
	return nil
}

func runDelete(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("delete needs <id>")
	}
	if err := c.DeleteProduct(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("deleted", args[0])
	return nil
}

func runAdjust(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 2 {
		return errors.New("adjust needs <id> <delta>")
	}

	delta, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid adjustment %q", args[1])
	}
	reason := ""
	if len(args) > 2 {
		reason = args[2]
	}

	// Optimistic pre-check against the fetched list; the server still
	// enforces the floor authoritatively.
	products, err := c.ListProducts(ctx)
	if err != nil {
		return err
	}
	if err := client.PrecheckAdjustment(products, args[0], delta); err != nil {
		return err
	}

	product, err := c.AdjustStock(ctx, domain.AdjustStockRequest{
		ProductID:  args[0],
		Adjustment: domain.Number(delta),
		Reason:     reason,
	})
	if err != nil {
		return err
	}

	fmt.Printf("adjusted %s by %+d, quantity now %d\n", product.Name, delta, product.Quantity)
	return nil
}

func renderTable(table *view.Table) {
	now := time.Now()

	fmt.Printf("%-36s  %-20s  %8s  %5s  %-12s  %-10s  %s\n",
		"ID", "Name", "Price", "Qty", "Category", "Expiry", "Status")

	items := table.PageItems()
	if len(items) == 0 {
		fmt.Println("No products")
	}
	for _, p := range items {
		expiry := "-"
		if p.ExpiryDate != nil {
			expiry = p.ExpiryDate.Format("02/01/2006")
		}
		category := p.Category
		if category == "" {
			category = "-"
		}

		badges := view.StockBadges(p, now)
		status := badges.Status.String()
		if badges.LowStock {
			status += " / Low Stock"
		}

		fmt.Printf("%-36s  %-20s  %8.2f  %5d  %-12s  %-10s  %s\n",
			p.ID, p.Name, p.Price, p.Quantity, category, expiry, status)
	}

	fmt.Printf("\nPage %d / %d (%d products)\n",
		table.Page(), table.TotalPages(), len(table.Products()))
}
