package repository

import (
	"context"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultIntentsTableName = "pix_intents"
	intentsOrderIDIndex     = "order_id-index"
)

type paymentIntentItem struct {
	ID           string  `dynamodbav:"id"`
	OrderID      string  `dynamodbav:"order_id"`
	Amount       float64 `dynamodbav:"amount"`
	Description  string  `dynamodbav:"description,omitempty"`
	QRCode       string  `dynamodbav:"qr_code"`
	QRCodeBase64 string  `dynamodbav:"qr_code_base64,omitempty"`
	TicketURL    string  `dynamodbav:"ticket_url,omitempty"`
	Status       string  `dynamodbav:"status,omitempty"`
	ExpiresAt    string  `dynamodbav:"expires_at"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

// PaymentIntentDynamoRepository persists PaymentIntent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, gateway payment id)
//   - GSI: order_id-index (PK: order_id)
type PaymentIntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PIX_INTENTS_TABLE", defaultIntentsTableName),
	}
}

func (r *PaymentIntentDynamoRepository) Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
	it := toPaymentIntentItem(intent)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return intent, nil
}

func (r *PaymentIntentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

// GetLatestByOrderID returns the most recently created intent for an order,
// or a zero intent when none exists.
func (r *PaymentIntentDynamoRepository) GetLatestByOrderID(ctx context.Context, orderID string) (entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(intentsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var latest entities.PaymentIntent
	for _, raw := range out.Items {
		var it paymentIntentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.PaymentIntent{}, err
		}
		intent := fromPaymentIntentItem(it)
		if latest.ID == "" || intent.CreatedAt.After(latest.CreatedAt) {
			latest = intent
		}
	}
	return latest, nil
}

func toPaymentIntentItem(intent entities.PaymentIntent) paymentIntentItem {
	return paymentIntentItem{
		ID:           intent.ID,
		OrderID:      intent.OrderID,
		Amount:       intent.Amount,
		Description:  intent.Description,
		QRCode:       intent.QRCode,
		QRCodeBase64: intent.QRCodeBase64,
		TicketURL:    intent.TicketURL,
		Status:       intent.Status,
		ExpiresAt:    intent.ExpiresAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:    intent.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.PaymentIntent{
		ID:           it.ID,
		OrderID:      it.OrderID,
		Amount:       it.Amount,
		Description:  it.Description,
		QRCode:       it.QRCode,
		QRCodeBase64: it.QRCodeBase64,
		TicketURL:    it.TicketURL,
		Status:       it.Status,
		ExpiresAt:    expiresAt,
		CreatedAt:    createdAt,
	}
}
