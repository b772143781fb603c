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
	defaultCardsTableName = "saved_cards"
	cardsOwnerEmailIndex  = "owner_email-index"
)

type savedCardItem struct {
	ID         string `dynamodbav:"id"`
	OwnerEmail string `dynamodbav:"owner_email"`
	CustomerID string `dynamodbav:"customer_id,omitempty"`
	Method     string `dynamodbav:"method"`
	Brand      string `dynamodbav:"brand,omitempty"`
	LastFour   string `dynamodbav:"last_four,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CardDynamoRepository persists tokenized cards in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_email-index (PK: owner_email)
type CardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICardRepository = (*CardDynamoRepository)(nil)

func NewCardDynamoRepository(ddb *dynamodb.Client) *CardDynamoRepository {
	return &CardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARDS_TABLE", defaultCardsTableName),
	}
}

func (r *CardDynamoRepository) Save(ctx context.Context, c entities.SavedCard) error {
	av, err := attributevalue.MarshalMap(savedCardItem{
		ID:         c.GatewayID,
		OwnerEmail: c.OwnerEmail,
		CustomerID: c.CustomerID,
		Method:     string(c.Method),
		Brand:      c.Brand,
		LastFour:   c.LastFour,
		CreatedAt:  formatTime(c.CreatedAt),
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

func (r *CardDynamoRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]entities.SavedCard, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(cardsOwnerEmailIndex),
		KeyConditionExpression: aws.String("owner_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: ownerEmail},
		},
	})
	if err != nil {
		return nil, err
	}

	cards := make([]entities.SavedCard, 0, len(out.Items))
	for _, raw := range out.Items {
		var it savedCardItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		cards = append(cards, entities.SavedCard{
			GatewayID:  it.ID,
			OwnerEmail: it.OwnerEmail,
			CustomerID: it.CustomerID,
			Method:     entities.PaymentMethod(it.Method),
			Brand:      it.Brand,
			LastFour:   it.LastFour,
			CreatedAt:  parseTime(it.CreatedAt),
		})
	}
	return cards, nil
}
