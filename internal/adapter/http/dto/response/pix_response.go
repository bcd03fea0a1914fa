package response

import (
	"time"

	"pix_checkout/internal/domain/entities"
)

// PixQRCodeResponse mirrors the storefront checkout contract: snake_case QR
// fields plus the gateway-assigned orderId used for status polling.
type PixQRCodeResponse struct {
	QRCode         string    `json:"qr_code"`
	QRCodeBase64   string    `json:"qr_code_base64"`
	TicketURL      string    `json:"ticket_url,omitempty"`
	ExpirationDate time.Time `json:"expiration_date"`
	OrderID        string    `json:"orderId"`
	Status         string    `json:"status,omitempty"`
}

func FromPaymentIntent(intent entities.PaymentIntent) PixQRCodeResponse {
	return PixQRCodeResponse{
		QRCode:         intent.QRCode,
		QRCodeBase64:   intent.QRCodeBase64,
		TicketURL:      intent.TicketURL,
		ExpirationDate: intent.ExpiresAt,
		OrderID:        intent.ID,
		Status:         intent.Status,
	}
}

// PixStatusResponse is the reconciled status payload. The boolean flags are
// materialized from the single classification value, so exactly one is true.
type PixStatusResponse struct {
	MercadoPagoOrderID string    `json:"mercadoPagoOrderId"`
	PaymentID          string    `json:"paymentId"`
	OrderStatus        string    `json:"orderStatus"`
	PaymentStatus      string    `json:"paymentStatus"`
	StatusDetail       string    `json:"statusDetail,omitempty"`
	IsPaid             bool      `json:"isPaid"`
	IsPending          bool      `json:"isPending"`
	IsProcessing       bool      `json:"isProcessing"`
	IsExpired          bool      `json:"isExpired"`
	IsRejected         bool      `json:"isRejected"`
	TotalAmount        float64   `json:"totalAmount"`
	PaidAmount         float64   `json:"paidAmount"`
	LastUpdated        time.Time `json:"lastUpdated"`
	ExpirationDate     time.Time `json:"expirationDate"`
	PaymentMethod      string    `json:"paymentMethod,omitempty"`
	QRCode             string    `json:"qrCode,omitempty"`
	TicketURL          string    `json:"ticketUrl,omitempty"`
}

func FromPaymentStatus(st entities.PaymentStatus) PixStatusResponse {
	return PixStatusResponse{
		MercadoPagoOrderID: st.GatewayOrderID,
		PaymentID:          st.PaymentID,
		OrderStatus:        st.OrderStatus,
		PaymentStatus:      st.RawStatus,
		StatusDetail:       st.StatusDetail,
		IsPaid:             st.Classification.IsPaid(),
		IsPending:          st.Classification.IsPending(),
		IsProcessing:       st.Classification.IsProcessing(),
		IsExpired:          st.Classification.IsExpired(),
		IsRejected:         st.Classification.IsRejected(),
		TotalAmount:        st.TotalAmount,
		PaidAmount:         st.PaidAmount,
		LastUpdated:        st.LastUpdated,
		ExpirationDate:     st.ExpiresAt,
		PaymentMethod:      st.PaymentMethod,
		QRCode:             st.QRCode,
		TicketURL:          st.TicketURL,
	}
}

// ToPaymentStatus rebuilds the domain snapshot from an API response. Used by
// the polling client consuming this service.
func (r PixStatusResponse) ToPaymentStatus() entities.PaymentStatus {
	var class entities.Classification
	switch {
	case r.IsPaid:
		class = entities.ClassificationPaid
	case r.IsExpired:
		class = entities.ClassificationExpired
	case r.IsRejected:
		class = entities.ClassificationRejected
	case r.IsProcessing:
		class = entities.ClassificationProcessing
	default:
		class = entities.ClassificationPending
	}
	return entities.PaymentStatus{
		GatewayOrderID: r.MercadoPagoOrderID,
		PaymentID:      r.PaymentID,
		OrderStatus:    r.OrderStatus,
		RawStatus:      r.PaymentStatus,
		StatusDetail:   r.StatusDetail,
		Classification: class,
		TotalAmount:    r.TotalAmount,
		PaidAmount:     r.PaidAmount,
		PaymentMethod:  r.PaymentMethod,
		QRCode:         r.QRCode,
		TicketURL:      r.TicketURL,
		LastUpdated:    r.LastUpdated,
		ExpiresAt:      r.ExpirationDate,
	}
}
