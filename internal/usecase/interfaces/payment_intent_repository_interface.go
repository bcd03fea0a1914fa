package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
)

// IPaymentIntentRepository abstracts DynamoDB persistence for PaymentIntent.
//
// GetLatestByOrderID supports create-or-fetch: the newest intent for an order
// is reused while it has not expired.
type IPaymentIntentRepository interface {
	Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)
	GetLatestByOrderID(ctx context.Context, orderID string) (entities.PaymentIntent, error)
}
