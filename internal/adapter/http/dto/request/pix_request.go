package request

import (
	"errors"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
)

var ErrInvalidExpirationDate = errors.New("invalid expirationDate")

// PixQRCodeRequest is the payload for QR-code generation. Field names match
// the storefront checkout contract (camelCase, ISO8601 expiration).
type PixQRCodeRequest struct {
	OrderID        string  `json:"orderId" binding:"required"`
	Value          float64 `json:"value" binding:"required"`
	ExpirationDate string  `json:"expirationDate"`
	Description    string  `json:"description"`
	PayerEmail     string  `json:"payerEmail"`
}

// ToChargeRequest translates the payload into the domain command. A missing
// expirationDate is left zero for the use case to default.
func (r PixQRCodeRequest) ToChargeRequest() (entities.PIXChargeRequest, error) {
	charge := entities.PIXChargeRequest{
		OrderID:     strings.TrimSpace(r.OrderID),
		Amount:      r.Value,
		Description: strings.TrimSpace(r.Description),
		PayerEmail:  strings.TrimSpace(r.PayerEmail),
	}
	if v := strings.TrimSpace(r.ExpirationDate); v != "" {
		expiresAt, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return entities.PIXChargeRequest{}, ErrInvalidExpirationDate
		}
		charge.ExpiresAt = expiresAt.UTC()
	}
	return charge, nil
}

// PixStatusRequest carries the gateway-assigned id returned by the QR-code
// call, not the storefront order id.
type PixStatusRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}
