// Command seed resets the product table to a known catalogue, for
// local development and demos.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sweetshop/inventory-service/internal/domain"
	"github.com/sweetshop/inventory-service/internal/repository"
	"github.com/sweetshop/inventory-service/pkg/config"
)

var seedProducts = []domain.Product{
	{Name: "Ladoo", Price: 100, Category: "Sweet", InStock: true, Quantity: 50},
	{Name: "Barfi", Price: 150, Category: "Sweet", InStock: true, Quantity: 40},
	{Name: "Rasgulla", Price: 130, Category: "Sweet", InStock: false, Quantity: 0},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	client, err := repository.NewDynamoDBClient(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to create DynamoDB client", zap.Error(err))
	}

	if cfg.LocalMode {
		if err := ensureTable(ctx, client, cfg.ProductTableName); err != nil {
			logger.Fatal("Failed to create table", zap.Error(err))
		}
	}

	productRepo := repository.NewProductRepository(client, cfg.ProductTableName)

	// Clear old data first, same as a fresh install
	existing, err := productRepo.List(ctx)
	if err != nil {
		logger.Fatal("Failed to list existing products", zap.Error(err))
	}
	for _, p := range existing {
		if err := productRepo.Delete(ctx, p.ID); err != nil {
			logger.Fatal("Failed to delete product",
				zap.String("product_id", p.ID),
				zap.Error(err))
		}
	}

	for i := range seedProducts {
		p := seedProducts[i]
		if err := productRepo.Create(ctx, &p); err != nil {
			logger.Fatal("Failed to seed product",
				zap.String("name", p.Name),
				zap.Error(err))
		}
		logger.Info("Seeded product",
			zap.String("product_id", p.ID),
			zap.String("name", p.Name),
			zap.Int("quantity", p.Quantity))
	}

	logger.Info("Products seeded successfully", zap.Int("count", len(seedProducts)))
}

func ensureTable(ctx context.Context, client *dynamodb.Client, tableName string) error {
	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var exists *types.ResourceInUseException
		if errors.As(err, &exists) {
			return nil
		}
		return err
	}

	waiter := dynamodb.NewTableExistsWaiter(client)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	}, 30*time.Second)
}
