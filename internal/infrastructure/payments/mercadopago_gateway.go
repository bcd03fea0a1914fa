package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidGatewayPaymentID = errors.New("invalid gateway payment id")

const sandboxPayerEmail = "test_user_br@testuser.com"

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[pix][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[pix][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[pix][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[pix][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// CreatePIXCharge creates a PIX payment at Mercado Pago and maps the QR
// artifact into a PaymentIntent. The gateway-assigned payment id becomes the
// intent id used by every later status fetch.
func (g *MercadoPagoGateway) CreatePIXCharge(ctx context.Context, charge entities.PIXChargeRequest) (entities.PaymentIntent, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(charge), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[pix][gateway] gateway not configured")
		return entities.PaymentIntent{}, ErrMercadoPagoGatewayNotConfigured
	}

	payerEmail := resolvePayerEmail(charge.PayerEmail)
	if payerEmail == "" {
		log.Printf("[pix][gateway] no payer email available order_id=%s", charge.OrderID)
		return entities.PaymentIntent{}, errors.New("pix charge requires a payer email")
	}

	expires := charge.ExpiresAt
	req := payment.Request{
		TransactionAmount: charge.Amount,
		Description:       charge.Description,
		PaymentMethodID:   "pix",
		ExternalReference: charge.OrderID,
		DateOfExpiration:  &expires,
		Payer:             &payment.PayerRequest{Email: payerEmail},
	}

	log.Printf("[pix][gateway] create start order_id=%s amount=%.2f", charge.OrderID, charge.Amount)
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[pix][gateway] sdk create failed order_id=%s err=%v", charge.OrderID, err)
		return entities.PaymentIntent{}, err
	}

	intent := entities.PaymentIntent{
		ID:           strconv.Itoa(resp.ID),
		OrderID:      charge.OrderID,
		Amount:       resp.TransactionAmount,
		Description:  charge.Description,
		QRCode:       resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: resp.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:    resp.PointOfInteraction.TransactionData.TicketURL,
		Status:       resp.Status,
		ExpiresAt:    resp.DateOfExpiration,
	}
	if intent.ExpiresAt.IsZero() {
		intent.ExpiresAt = charge.ExpiresAt
	}
	if intent.QRCode == "" {
		log.Printf("[pix][gateway] create returned no qr data order_id=%s payment_id=%s status=%s", charge.OrderID, intent.ID, resp.Status)
		return entities.PaymentIntent{}, errors.New("gateway response missing pix qr data")
	}
	log.Printf("[pix][gateway] create success order_id=%s payment_id=%s status=%s", charge.OrderID, intent.ID, resp.Status)
	return intent, nil
}

// GetPayment fetches the raw payment state used by status reconciliation.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	if g != nil && g.mockMode {
		return g.mockGet(paymentID), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[pix][gateway] gateway not configured")
		return entities.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return entities.GatewayPayment{}, ErrInvalidGatewayPaymentID
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[pix][gateway] sdk get failed payment_id=%s err=%v", paymentID, err)
		return entities.GatewayPayment{}, err
	}

	return entities.GatewayPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		ExternalReference: resp.ExternalReference,
		PaymentMethod:     resp.PaymentMethodID,
		TransactionAmount: resp.TransactionAmount,
		PaidAmount:        resp.TransactionDetails.TotalPaidAmount,
		QRCode:            resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64:      resp.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:         resp.PointOfInteraction.TransactionData.TicketURL,
		DateLastUpdated:   resp.DateLastUpdated,
		ExpiresAt:         resp.DateOfExpiration,
	}, nil
}

func (g *MercadoPagoGateway) mockCreate(charge entities.PIXChargeRequest) entities.PaymentIntent {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	expires := charge.ExpiresAt
	if expires.IsZero() {
		expires = time.Now().UTC().Add(30 * time.Minute)
	}
	log.Printf("[pix][gateway] mock create order_id=%s payment_id=%s", charge.OrderID, id)
	return entities.PaymentIntent{
		ID:           id,
		OrderID:      charge.OrderID,
		Amount:       charge.Amount,
		Description:  charge.Description,
		QRCode:       "00020126580014br.gov.bcb.pix0136" + id,
		QRCodeBase64: "bW9jay1xci1jb2Rl",
		Status:       "pending",
		ExpiresAt:    expires,
	}
}

func (g *MercadoPagoGateway) mockGet(paymentID string) entities.GatewayPayment {
	log.Printf("[pix][gateway] mock get payment_id=%s status=approved", paymentID)
	now := time.Now().UTC()
	return entities.GatewayPayment{
		ID:              strings.TrimSpace(paymentID),
		Status:          "approved",
		StatusDetail:    "accredited",
		PaymentMethod:   "pix",
		DateLastUpdated: now,
		ExpiresAt:       now.Add(30 * time.Minute),
	}
}

func resolvePayerEmail(email string) string {
	if v := strings.TrimSpace(email); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("PIX_PAYER_EMAIL")); v != "" {
		return v
	}
	// Sandbox-safe fallback recommended by Mercado Pago examples.
	if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return sandboxPayerEmail
	}
	return ""
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
