// Package client is the HTTP consumer of the inventory API. It
// fetches the full product list and submits create/update/delete and
// stock-adjustment actions; pagination and badge derivation over the
// fetched list live in the view package.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/sweetshop/inventory-service/internal/domain"
)

var (
	// ErrNegativeStock is returned by the optimistic pre-check when
	// an adjustment would drive the locally known quantity below
	// zero. The server re-checks authoritatively either way.
	ErrNegativeStock = errors.New("cannot reduce stock below zero")

	ErrUnknownProduct = errors.New("product not in fetched list")
)

// APIError is a non-2xx response from the inventory API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("inventory api: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req domain.ProductRequest) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPut, "/api/products/"+id, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}

func (c *Client) AdjustStock(ctx context.Context, req domain.AdjustStockRequest) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodPost, "/api/products/adjust", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// PrecheckAdjustment mirrors the server's floor check against the
// locally fetched list, so obviously invalid adjustments are refused
// before a request is made. Local state can be stale; the server
// remains the authority.
func PrecheckAdjustment(products []domain.Product, productID string, adjustment int) error {
	for _, p := range products {
		if p.ID == productID {
			if p.Quantity+adjustment < 0 {
				return ErrNegativeStock
			}
			return nil
		}
	}
	return ErrUnknownProduct
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		c.logger.Error("Request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
