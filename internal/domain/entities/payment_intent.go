package entities

import "time"

// PaymentIntent is the PIX charge artifact returned by the payment gateway
// for one checkout attempt.
//
// Storage model (DynamoDB):
//   - PK: id (gateway-assigned payment id)
//   - GSI1 (order_id-index): order_id
//
// Intents are immutable after creation; a new checkout attempt for the same
// order creates a new intent once the previous one expired.
type PaymentIntent struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description,omitempty"`
	QRCode       string    `json:"qr_code"`
	QRCodeBase64 string    `json:"qr_code_base64"`
	TicketURL    string    `json:"ticket_url,omitempty"`
	Status       string    `json:"status,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// Expired reports whether the intent can no longer be paid at the given time.
func (i PaymentIntent) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// PIXChargeRequest is the command used to create a new PIX charge at the
// gateway. ExpiresAt is optional; the use case fills a default when missing.
type PIXChargeRequest struct {
	OrderID     string    `json:"order_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	PayerEmail  string    `json:"payer_email,omitempty"`
	ExpiresAt   time.Time `json:"expires_at,omitempty"`
}
