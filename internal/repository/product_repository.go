package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/sweetshop/inventory-service/internal/domain"
	pkgconfig "github.com/sweetshop/inventory-service/pkg/config"
)

type productRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewDynamoDBClient builds a DynamoDB client from the service config.
// In local mode it points at a DynamoDB Local endpoint with static
// credentials so the service runs without an AWS account.
func NewDynamoDBClient(ctx context.Context, cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWSRegion),
	}
	if cfg.LocalMode {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	}), nil
}

func NewProductRepository(client *dynamodb.Client, tableName string) ProductRepository {
	return &productRepository{
		client:    client,
		tableName: tableName,
	}
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan products: %w", err)
		}

		var batch []domain.Product
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal products: %w", err)
		}
		products = append(products, batch...)
	}

	return products, nil
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	product.ID = uuid.NewString()

	av, err := attributevalue.MarshalMap(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}

	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       productKey(id),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if result.Item == nil {
		return nil, ErrProductNotFound
	}

	var product domain.Product
	if err := attributevalue.UnmarshalMap(result.Item, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, id string, product *domain.Product) (*domain.Product, error) {
	update := expression.
		Set(expression.Name("name"), expression.Value(product.Name)).
		Set(expression.Name("price"), expression.Value(product.Price)).
		Set(expression.Name("quantity"), expression.Value(product.Quantity)).
		Set(expression.Name("category"), expression.Value(product.Category)).
		Set(expression.Name("in_stock"), expression.Value(product.InStock)).
		Set(expression.Name("expiry_date"), expression.Value(product.ExpiryDate)).
		Set(expression.Name("min_stock_level"), expression.Value(product.MinStockLevel)).
		Set(expression.Name("updated_at"), expression.Value(time.Now()))

	condition := expression.AttributeExists(expression.Name("id"))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(condition).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build update expression: %w", err)
	}

	result, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       productKey(id),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	var updated domain.Product
	if err := attributevalue.UnmarshalMap(result.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &updated, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 productKey(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

func (r *productRepository) AdjustQuantity(ctx context.Context, id string, adjustment int) (*domain.Product, error) {
	update := expression.Set(
		expression.Name("quantity"),
		expression.Plus(
			expression.Name("quantity"),
			expression.Value(adjustment),
		),
	).Set(
		expression.Name("updated_at"),
		expression.Value(time.Now()),
	)

	// The floor check lives in the condition, so two concurrent
	// adjustments can never combine to drive quantity negative.
	condition := expression.AttributeExists(expression.Name("id")).
		And(expression.GreaterThanEqual(
			expression.Name("quantity"),
			expression.Value(-adjustment),
		))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(condition).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build adjust expression: %w", err)
	}

	result, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       productKey(id),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, ErrInsufficientStock
		}
		return nil, fmt.Errorf("failed to adjust quantity: %w", err)
	}

	var updated domain.Product
	if err := attributevalue.UnmarshalMap(result.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	return &updated, nil
}

func productKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
