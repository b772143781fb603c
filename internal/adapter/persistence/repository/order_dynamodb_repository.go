package repository

import (
	"context"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersPlatformIDIndex  = "platform_id-index"
)

type orderItem struct {
	ID         string       `dynamodbav:"id"`
	Code       string       `dynamodbav:"code"`
	PlatformID string       `dynamodbav:"platform_id"`
	Status     string       `dynamodbav:"status"`
	Charges    []chargeItem `dynamodbav:"charges"`
	CreatedAt  string       `dynamodbav:"created_at"`
	UpdatedAt  string       `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order aggregates, charges embedded, in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: platform_id-index (PK: platform_id)
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Save(ctx context.Context, o *entities.Order) error {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *OrderDynamoRepository) FindByGatewayID(ctx context.Context, gatewayID string) (*entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: gatewayID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) FindByPlatformID(ctx context.Context, platformID string) (*entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersPlatformIDIndex),
		KeyConditionExpression: aws.String("platform_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: platformID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return nil, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o *entities.Order) orderItem {
	charges := o.Charges()
	items := make([]chargeItem, 0, len(charges))
	for _, c := range charges {
		items = append(items, toChargeItem(c))
	}
	return orderItem{
		ID:         o.GatewayID,
		Code:       o.Code,
		PlatformID: o.PlatformID,
		Status:     string(o.Status),
		Charges:    items,
		CreatedAt:  formatTime(o.CreatedAt),
		UpdatedAt:  formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) *entities.Order {
	charges := make([]entities.Charge, 0, len(it.Charges))
	for _, c := range it.Charges {
		charges = append(charges, fromChargeItem(c))
	}
	return entities.RestoreOrder(
		it.ID,
		it.Code,
		it.PlatformID,
		entities.OrderStatus(it.Status),
		charges,
		parseTime(it.CreatedAt),
		parseTime(it.UpdatedAt),
	)
}
