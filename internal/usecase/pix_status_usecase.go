package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentID = errors.New("invalid payment id")
	ErrPaymentNotFound  = errors.New("payment not found")
)

// IPixStatusUseCase reconciles the current gateway state of one PIX payment
// into a classified PaymentStatus.
type IPixStatusUseCase interface {
	GetStatus(ctx context.Context, paymentID string) (entities.PaymentStatus, error)
}

type PixStatusUseCase struct {
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IPixStatusUseCase = (*PixStatusUseCase)(nil)

func NewPixStatusUseCase(gateway interfaces.IPaymentGateway) *PixStatusUseCase {
	return &PixStatusUseCase{gateway: gateway, now: time.Now}
}

// GetStatus fetches the raw gateway payment and classifies it. The returned
// status replaces any previous snapshot wholesale; callers decide whether to
// keep polling via PaymentStatus.ShouldStop.
func (u *PixStatusUseCase) GetStatus(ctx context.Context, paymentID string) (entities.PaymentStatus, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentStatus{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return entities.PaymentStatus{}, errors.New("payment gateway not configured")
	}

	raw, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		if isGatewayNotFound(err) {
			log.Printf("[pix][status] payment not found payment_id=%s", paymentID)
			return entities.PaymentStatus{}, ErrPaymentNotFound
		}
		log.Printf("[pix][status] gateway fetch failed payment_id=%s err=%v", paymentID, err)
		return entities.PaymentStatus{}, err
	}

	now := u.now().UTC()
	class := entities.Classify(raw.Status, raw.StatusDetail, raw.ExpiresAt, now)

	lastUpdated := raw.DateLastUpdated
	if lastUpdated.IsZero() {
		lastUpdated = now
	}

	st := entities.PaymentStatus{
		GatewayOrderID: raw.ID,
		PaymentID:      raw.ID,
		OrderStatus:    orderStatusFor(class),
		RawStatus:      raw.Status,
		StatusDetail:   raw.StatusDetail,
		Classification: class,
		TotalAmount:    raw.TransactionAmount,
		PaidAmount:     raw.PaidAmount,
		PaymentMethod:  raw.PaymentMethod,
		QRCode:         raw.QRCode,
		TicketURL:      raw.TicketURL,
		LastUpdated:    lastUpdated,
		ExpiresAt:      raw.ExpiresAt,
	}
	log.Printf("[pix][status] reconciled payment_id=%s status=%s detail=%s classification=%s", paymentID, raw.Status, raw.StatusDetail, class)
	return st, nil
}

// orderStatusFor derives the coarse order status exposed to API consumers
// from the fine-grained payment classification.
func orderStatusFor(c entities.Classification) string {
	switch c {
	case entities.ClassificationPaid:
		return "paid"
	case entities.ClassificationExpired:
		return "expired"
	case entities.ClassificationRejected:
		return "cancelled"
	default:
		return "opened"
	}
}

func isGatewayNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "not_found") || strings.Contains(msg, "payment not found")
}
