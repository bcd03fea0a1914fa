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
	ErrInvalidIntentOrderID       = errors.New("invalid order_id")
	ErrInvalidIntentAmount        = errors.New("invalid amount")
	ErrIntentGenerationFailed     = errors.New("pix charge generation failed")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrIntentNotFound             = errors.New("payment intent not found")
)

// DefaultIntentTTL is applied when the caller does not supply an expiration.
const DefaultIntentTTL = 30 * time.Minute

// IPixIntentUseCase creates (or reuses) the PIX charge for an order.
//
// Retries are caller-driven: a failed generation is surfaced as an error and
// never retried automatically.
type IPixIntentUseCase interface {
	CreateOrFetch(ctx context.Context, charge entities.PIXChargeRequest) (entities.PaymentIntent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)
}

type PixIntentUseCase struct {
	repo    interfaces.IPaymentIntentRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IPixIntentUseCase = (*PixIntentUseCase)(nil)

func NewPixIntentUseCase(repo interfaces.IPaymentIntentRepository, gateway interfaces.IPaymentGateway) *PixIntentUseCase {
	return &PixIntentUseCase{repo: repo, gateway: gateway, now: time.Now}
}

// CreateOrFetch returns the live intent for the order when one exists, and
// otherwise asks the gateway for a fresh PIX charge and persists it. An
// expired stored intent is ignored, so a "generate new QR code" action after
// expiration always produces a new charge.
func (u *PixIntentUseCase) CreateOrFetch(ctx context.Context, charge entities.PIXChargeRequest) (entities.PaymentIntent, error) {
	charge.OrderID = strings.TrimSpace(charge.OrderID)
	log.Printf("[pix][usecase] create-or-fetch start order_id=%q amount=%.2f", charge.OrderID, charge.Amount)
	if charge.OrderID == "" {
		return entities.PaymentIntent{}, ErrInvalidIntentOrderID
	}
	if charge.Amount <= 0 {
		log.Printf("[pix][usecase] invalid amount order_id=%s amount=%.2f", charge.OrderID, charge.Amount)
		return entities.PaymentIntent{}, ErrInvalidIntentAmount
	}
	if u.gateway == nil {
		log.Printf("[pix][usecase] gateway not configured order_id=%s", charge.OrderID)
		return entities.PaymentIntent{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		log.Printf("[pix][usecase] intent repository not configured order_id=%s", charge.OrderID)
		return entities.PaymentIntent{}, errors.New("intent repository not configured")
	}

	now := u.now().UTC()

	existing, err := u.repo.GetLatestByOrderID(ctx, charge.OrderID)
	if err != nil {
		log.Printf("[pix][usecase] intent lookup failed order_id=%s err=%v", charge.OrderID, err)
		return entities.PaymentIntent{}, err
	}
	if existing.ID != "" && !existing.Expired(now) {
		log.Printf("[pix][usecase] reusing live intent order_id=%s intent_id=%s expires_at=%s", charge.OrderID, existing.ID, existing.ExpiresAt.Format(time.RFC3339))
		return existing, nil
	}

	if charge.ExpiresAt.IsZero() {
		charge.ExpiresAt = now.Add(DefaultIntentTTL)
	}
	if charge.Description == "" {
		charge.Description = "Pedido " + charge.OrderID
	}

	log.Printf("[pix][usecase] calling payment gateway order_id=%s expires_at=%s", charge.OrderID, charge.ExpiresAt.Format(time.RFC3339))
	intent, err := u.gateway.CreatePIXCharge(ctx, charge)
	if err != nil {
		log.Printf("[pix][usecase] payment gateway failed order_id=%s err=%v", charge.OrderID, err)
		if isGatewayUnauthorized(err) {
			return entities.PaymentIntent{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.PaymentIntent{}, ErrPaymentGatewayBadRequest
		}
		return entities.PaymentIntent{}, errors.Join(ErrIntentGenerationFailed, err)
	}
	intent.CreatedAt = now

	created, err := u.repo.Create(ctx, intent)
	if err != nil {
		log.Printf("[pix][usecase] intent repository create failed order_id=%s intent_id=%s err=%v", charge.OrderID, intent.ID, err)
		return entities.PaymentIntent{}, err
	}
	log.Printf("[pix][usecase] create-or-fetch success order_id=%s intent_id=%s status=%s", charge.OrderID, created.ID, created.Status)
	return created, nil
}

func (u *PixIntentUseCase) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentIntent{}, errors.New("invalid intent id")
	}

	intent, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if intent.ID == "" {
		return entities.PaymentIntent{}, ErrIntentNotFound
	}
	return intent, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
