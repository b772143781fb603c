package repository

import (
	"context"
	"encoding/json"

	"payment_sync/internal/domain/entities"
	"payment_sync/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlatformOrdersTableName = "platform_orders"

// platformOrderItem holds the key attributes plus the full record as JSON.
type platformOrderItem struct {
	Code      string `dynamodbav:"code"`
	GatewayID string `dynamodbav:"gateway_id,omitempty"`
	State     string `dynamodbav:"state"`
	Status    string `dynamodbav:"status"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PlatformOrderDynamoRepository persists platform order records in DynamoDB.
//
// Table requirements:
//   - PK: code (string)
type PlatformOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlatformOrderRepository = (*PlatformOrderDynamoRepository)(nil)

func NewPlatformOrderDynamoRepository(ddb *dynamodb.Client) *PlatformOrderDynamoRepository {
	return &PlatformOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLATFORM_ORDERS_TABLE", defaultPlatformOrdersTableName),
	}
}

func (r *PlatformOrderDynamoRepository) Save(ctx context.Context, record *entities.PlatformOrderRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(platformOrderItem{
		Code:      record.Code,
		GatewayID: record.GatewayID,
		State:     string(record.State),
		Status:    string(record.Status),
		Payload:   string(payload),
		UpdatedAt: formatTime(record.UpdatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PlatformOrderDynamoRepository) FindByCode(ctx context.Context, code string) (*entities.PlatformOrderRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it platformOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	var record entities.PlatformOrderRecord
	if err := json.Unmarshal([]byte(it.Payload), &record); err != nil {
		return nil, err
	}
	return &record, nil
}
