package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// CreatePIXCharge issues a new PIX charge and returns the QR artifact;
// GetPayment fetches the current raw state of a previously created charge.
type IPaymentGateway interface {
	CreatePIXCharge(ctx context.Context, charge entities.PIXChargeRequest) (entities.PaymentIntent, error)
	GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
}
