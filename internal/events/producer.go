package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sweetshop/inventory-service/internal/domain"
)

// KafkaProducer publishes inventory events to a single topic. It
// satisfies the service layer's EventPublisher interface.
type KafkaProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewKafkaProducer(brokers string, topic string, logger *zap.Logger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &KafkaProducer{
		writer: writer,
		logger: logger,
	}
}

func (p *KafkaProducer) ProductCreated(ctx context.Context, product *domain.Product) error {
	return p.publishProductEvent(ctx, TypeProductCreated, product.ID, product.Name, product.Quantity)
}

func (p *KafkaProducer) ProductUpdated(ctx context.Context, product *domain.Product) error {
	return p.publishProductEvent(ctx, TypeProductUpdated, product.ID, product.Name, product.Quantity)
}

func (p *KafkaProducer) ProductDeleted(ctx context.Context, productID string) error {
	return p.publishProductEvent(ctx, TypeProductDeleted, productID, "", 0)
}

func (p *KafkaProducer) StockAdjusted(ctx context.Context, product *domain.Product, adjustment int, reason string) error {
	event := StockAdjustedEvent{
		EventID:     uuid.NewString(),
		Type:        TypeStockAdjusted,
		ProductID:   product.ID,
		Adjustment:  adjustment,
		NewQuantity: product.Quantity,
		Reason:      reason,
		Timestamp:   time.Now(),
	}

	if err := p.publish(ctx, event.EventID, event); err != nil {
		return err
	}

	p.logger.Info("Event published",
		zap.String("event_id", event.EventID),
		zap.String("type", event.Type),
		zap.String("product_id", event.ProductID),
		zap.Int("adjustment", adjustment))

	return nil
}

func (p *KafkaProducer) publishProductEvent(ctx context.Context, eventType, productID, name string, quantity int) error {
	event := ProductEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		Timestamp: time.Now(),
	}

	if err := p.publish(ctx, event.EventID, event); err != nil {
		return err
	}

	p.logger.Info("Event published",
		zap.String("event_id", event.EventID),
		zap.String("type", event.Type),
		zap.String("product_id", event.ProductID))

	return nil
}

func (p *KafkaProducer) publish(ctx context.Context, key string, event any) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err))
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: eventBytes,
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish message",
			zap.String("event_id", key),
			zap.Error(err))
		return err
	}

	return nil
}

func (p *KafkaProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
