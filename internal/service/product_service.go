package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sweetshop/inventory-service/internal/domain"
	"github.com/sweetshop/inventory-service/internal/repository"
)

// EventPublisher publishes inventory lifecycle events. A nil publisher
// disables event emission; publish failures never fail the operation.
type EventPublisher interface {
	ProductCreated(ctx context.Context, product *domain.Product) error
	ProductUpdated(ctx context.Context, product *domain.Product) error
	ProductDeleted(ctx context.Context, productID string) error
	StockAdjusted(ctx context.Context, product *domain.Product, adjustment int, reason string) error
}

type productService struct {
	productRepo repository.ProductRepository
	publisher   EventPublisher
	logger      *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, publisher EventPublisher, logger *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *productService) Create(ctx context.Context, req domain.ProductRequest) (*domain.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	now := time.Now()
	product := &domain.Product{
		Name:          req.Name,
		Price:         req.Price.Float(),
		Quantity:      req.Quantity.Int(),
		Category:      req.Category,
		InStock:       req.InStock,
		ExpiryDate:    req.ExpiryDate.Value,
		MinStockLevel: req.MinStockLevel.Int(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to save product",
			zap.String("name", product.Name),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int("quantity", product.Quantity))

	s.publish(ctx, func(p EventPublisher) error {
		return p.ProductCreated(ctx, product)
	})

	return product, nil
}

func (s *productService) Update(ctx context.Context, id string, req domain.ProductRequest) (*domain.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	product := &domain.Product{
		Name:          req.Name,
		Price:         req.Price.Float(),
		Quantity:      req.Quantity.Int(),
		Category:      req.Category,
		InStock:       req.InStock,
		ExpiryDate:    req.ExpiryDate.Value,
		MinStockLevel: req.MinStockLevel.Int(),
	}

	updated, err := s.productRepo.Update(ctx, id, product)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("Failed to update product",
			zap.String("product_id", id),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Product updated",
		zap.String("product_id", id),
		zap.Int("quantity", updated.Quantity))

	s.publish(ctx, func(p EventPublisher) error {
		return p.ProductUpdated(ctx, updated)
	})

	return updated, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		s.logger.Error("Failed to delete product",
			zap.String("product_id", id),
			zap.Error(err))
		return err
	}

	s.logger.Info("Product deleted", zap.String("product_id", id))

	s.publish(ctx, func(p EventPublisher) error {
		return p.ProductDeleted(ctx, id)
	})

	return nil
}

func (s *productService) AdjustStock(ctx context.Context, req domain.AdjustStockRequest) (*domain.Product, error) {
	// Read first so a missing product reports not-found rather than
	// a failed adjustment. The floor itself is enforced atomically by
	// the store, so this read carries no correctness weight.
	current, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		s.logger.Error("Failed to load product for adjustment",
			zap.String("product_id", req.ProductID),
			zap.Error(err))
		return nil, err
	}

	adjustment := req.Adjustment.Int()

	updated, err := s.productRepo.AdjustQuantity(ctx, req.ProductID, adjustment)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			s.logger.Warn("Adjustment rejected",
				zap.String("product_id", req.ProductID),
				zap.Int("quantity", current.Quantity),
				zap.Int("adjustment", adjustment))
			return nil, ErrInvalidAdjustment
		}
		s.logger.Error("Failed to adjust stock",
			zap.String("product_id", req.ProductID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Stock adjusted",
		zap.String("product_id", req.ProductID),
		zap.Int("previous_quantity", current.Quantity),
		zap.Int("adjustment", adjustment),
		zap.Int("new_quantity", updated.Quantity),
		zap.String("reason", req.Reason))

	s.publish(ctx, func(p EventPublisher) error {
		return p.StockAdjusted(ctx, updated, adjustment, req.Reason)
	})

	return updated, nil
}

func (s *productService) publish(ctx context.Context, fn func(EventPublisher) error) {
	if s.publisher == nil {
		return
	}
	if err := fn(s.publisher); err != nil {
		s.logger.Warn("Failed to publish event", zap.Error(err))
	}
}
