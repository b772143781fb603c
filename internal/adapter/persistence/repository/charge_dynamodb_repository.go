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
	defaultChargesTableName = "charges"
	chargesOrderIDIndex     = "order_id-index"
)

type chargeItem struct {
	ID             string `dynamodbav:"id" json:"id"`
	OrderID        string `dynamodbav:"order_id" json:"order_id"`
	Code           string `dynamodbav:"code,omitempty" json:"code,omitempty"`
	Amount         int64  `dynamodbav:"amount" json:"amount"`
	PaidAmount     int64  `dynamodbav:"paid_amount" json:"paid_amount"`
	CanceledAmount int64  `dynamodbav:"canceled_amount" json:"canceled_amount"`
	RefundedAmount int64  `dynamodbav:"refunded_amount" json:"refunded_amount"`
	Status         string `dynamodbav:"status" json:"status"`
	PaymentMethod  string `dynamodbav:"payment_method" json:"payment_method"`
	StatusDetail   string `dynamodbav:"status_detail,omitempty" json:"status_detail,omitempty"`
	CustomerID     string `dynamodbav:"customer_id,omitempty" json:"customer_id,omitempty"`
	CardID         string `dynamodbav:"card_id,omitempty" json:"card_id,omitempty"`
	CardLastFour   string `dynamodbav:"card_last_four,omitempty" json:"card_last_four,omitempty"`
	CardBrand      string `dynamodbav:"card_brand,omitempty" json:"card_brand,omitempty"`
	BoletoURL      string `dynamodbav:"boleto_url,omitempty" json:"boleto_url,omitempty"`
	UpdatedAt      string `dynamodbav:"updated_at" json:"updated_at"`
}

// ChargeDynamoRepository persists detached charges in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type ChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChargeRepository = (*ChargeDynamoRepository)(nil)

func NewChargeDynamoRepository(ddb *dynamodb.Client) *ChargeDynamoRepository {
	return &ChargeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHARGES_TABLE", defaultChargesTableName),
	}
}

func (r *ChargeDynamoRepository) Save(ctx context.Context, c entities.Charge) error {
	av, err := attributevalue.MarshalMap(toChargeItem(c))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ChargeDynamoRepository) ListByOrderGatewayID(ctx context.Context, orderGatewayID string) ([]entities.Charge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderGatewayID},
		},
	})
	if err != nil {
		return nil, err
	}

	charges := make([]entities.Charge, 0, len(out.Items))
	for _, raw := range out.Items {
		var it chargeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		charges = append(charges, fromChargeItem(it))
	}
	return charges, nil
}

func toChargeItem(c entities.Charge) chargeItem {
	return chargeItem{
		ID:             c.GatewayID,
		OrderID:        c.OrderGatewayID,
		Code:           c.Code,
		Amount:         c.Amount,
		PaidAmount:     c.PaidAmount,
		CanceledAmount: c.CanceledAmount,
		RefundedAmount: c.RefundedAmount,
		Status:         string(c.Status),
		PaymentMethod:  string(c.PaymentMethod),
		StatusDetail:   c.StatusDetail,
		CustomerID:     c.CustomerID,
		CardID:         c.CardID,
		CardLastFour:   c.CardLastFour,
		CardBrand:      c.CardBrand,
		BoletoURL:      c.BoletoURL,
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func fromChargeItem(it chargeItem) entities.Charge {
	return entities.Charge{
		GatewayID:      it.ID,
		OrderGatewayID: it.OrderID,
		Code:           it.Code,
		Amount:         it.Amount,
		PaidAmount:     it.PaidAmount,
		CanceledAmount: it.CanceledAmount,
		RefundedAmount: it.RefundedAmount,
		Status:         entities.ChargeStatus(it.Status),
		PaymentMethod:  entities.PaymentMethod(it.PaymentMethod),
		StatusDetail:   it.StatusDetail,
		CustomerID:     it.CustomerID,
		CardID:         it.CardID,
		CardLastFour:   it.CardLastFour,
		CardBrand:      it.CardBrand,
		BoletoURL:      it.BoletoURL,
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
