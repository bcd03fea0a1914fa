package entities

import (
	"strings"
	"time"
)

// Classification is the reconciled payment state. It is a single value by
// design: exactly one of the paid/pending/processing/expired/rejected answers
// is true at any reconciliation, so the flags are derived from it instead of
// being tracked independently.
type Classification string

const (
	ClassificationPaid       Classification = "paid"
	ClassificationPending    Classification = "pending"
	ClassificationProcessing Classification = "processing"
	ClassificationExpired    Classification = "expired"
	ClassificationRejected   Classification = "rejected"
)

func (c Classification) IsPaid() bool       { return c == ClassificationPaid }
func (c Classification) IsPending() bool    { return c == ClassificationPending }
func (c Classification) IsProcessing() bool { return c == ClassificationProcessing }
func (c Classification) IsExpired() bool    { return c == ClassificationExpired }
func (c Classification) IsRejected() bool   { return c == ClassificationRejected }

// Terminal reports whether polling must stop for good: paid, expired and
// rejected are final outcomes, pending and processing are not.
func (c Classification) Terminal() bool {
	switch c {
	case ClassificationPaid, ClassificationExpired, ClassificationRejected:
		return true
	}
	return false
}

// Classify maps the gateway status vocabulary onto a Classification.
//
// Mercado Pago reports expired PIX charges as cancelled with detail
// "expired"; a charge still reported pending past its expiration is also
// treated as expired. Unknown statuses fall back to pending so that polling
// keeps going instead of declaring a bogus terminal state.
func Classify(status, detail string, expiresAt, now time.Time) Classification {
	detail = strings.ToLower(strings.TrimSpace(detail))
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return ClassificationPaid
	case "cancelled":
		if detail == "expired" || strings.Contains(detail, "expired") {
			return ClassificationExpired
		}
		return ClassificationRejected
	case "rejected":
		if strings.Contains(detail, "expired") {
			return ClassificationExpired
		}
		return ClassificationRejected
	case "in_process", "in_mediation", "authorized":
		return ClassificationProcessing
	default:
		if !expiresAt.IsZero() && now.After(expiresAt) {
			return ClassificationExpired
		}
		return ClassificationPending
	}
}

// PaymentStatus is the reconciled snapshot of one gateway payment. It is
// replaced wholesale on every successful reconciliation and never persisted.
type PaymentStatus struct {
	GatewayOrderID string         `json:"gateway_order_id"`
	PaymentID      string         `json:"payment_id"`
	OrderStatus    string         `json:"order_status"`
	RawStatus      string         `json:"raw_status"`
	StatusDetail   string         `json:"status_detail,omitempty"`
	Classification Classification `json:"classification"`
	TotalAmount    float64        `json:"total_amount"`
	PaidAmount     float64        `json:"paid_amount"`
	PaymentMethod  string         `json:"payment_method,omitempty"`
	QRCode         string         `json:"qr_code,omitempty"`
	TicketURL      string         `json:"ticket_url,omitempty"`
	LastUpdated    time.Time      `json:"last_updated"`
	ExpiresAt      time.Time      `json:"expires_at"`
}

// ShouldStop is the reconciler's stop-polling decision.
func (s PaymentStatus) ShouldStop() bool {
	return s.Classification.Terminal()
}

// GatewayPayment is the raw payment shape fetched from the gateway, before
// classification.
type GatewayPayment struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	StatusDetail      string    `json:"status_detail,omitempty"`
	ExternalReference string    `json:"external_reference,omitempty"`
	PaymentMethod     string    `json:"payment_method,omitempty"`
	TransactionAmount float64   `json:"transaction_amount"`
	PaidAmount        float64   `json:"paid_amount"`
	QRCode            string    `json:"qr_code,omitempty"`
	QRCodeBase64      string    `json:"qr_code_base64,omitempty"`
	TicketURL         string    `json:"ticket_url,omitempty"`
	DateLastUpdated   time.Time `json:"date_last_updated"`
	ExpiresAt         time.Time `json:"expires_at"`
}
