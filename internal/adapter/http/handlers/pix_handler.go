package handlers

import (
	"errors"
	"log"
	"net/http"

	"pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPixPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PixHandler handles HTTP requests for PIX QR generation and status checks.
type PixHandler struct {
	intents usecase.IPixIntentUseCase
	status  usecase.IPixStatusUseCase
}

func NewPixHandler(intents usecase.IPixIntentUseCase, status usecase.IPixStatusUseCase) *PixHandler {
	return &PixHandler{intents: intents, status: status}
}

// CreateQRCode creates (or reuses) the PIX charge for an order and returns
// the scannable QR payload.
func (h *PixHandler) CreateQRCode(c *gin.Context) {
	var payload request.PixQRCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[pix][handler] invalid qrcode payload err=%v", err)
		c.JSON(errInvalidPixPayload.HTTPStatus, errInvalidPixPayload.ToHTTPError())
		return
	}

	charge, err := payload.ToChargeRequest()
	if err != nil {
		log.Printf("[pix][handler] invalid expiration order_id=%s err=%v", payload.OrderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_EXPIRATION", "expirationDate must be ISO8601", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[pix][handler] qrcode start order_id=%s value=%.2f", charge.OrderID, charge.Amount)
	intent, err := h.intents.CreateOrFetch(c.Request.Context(), charge)
	if err != nil {
		log.Printf("[pix][handler] qrcode failed order_id=%s err=%v", charge.OrderID, err)
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pix][handler] qrcode success order_id=%s payment_id=%s", charge.OrderID, intent.ID)

	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}

// GetStatus reconciles the current gateway state for a previously generated
// charge. The body carries the gateway-assigned id from the QR-code call.
func (h *PixHandler) GetStatus(c *gin.Context) {
	var payload request.PixStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[pix][handler] invalid status payload err=%v", err)
		c.JSON(errInvalidPixPayload.HTTPStatus, errInvalidPixPayload.ToHTTPError())
		return
	}

	st, err := h.status.GetStatus(c.Request.Context(), payload.OrderID)
	if err != nil {
		log.Printf("[pix][handler] status failed payment_id=%s err=%v", payload.OrderID, err)
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pix][handler] status success payment_id=%s classification=%s", payload.OrderID, st.Classification)

	c.JSON(http.StatusOK, response.FromPaymentStatus(st))
}

func mapPixError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIntentOrderID),
		errors.Is(err, usecase.ErrInvalidIntentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIntentNotFound):
		return pkg.NewDomainErrorSimple("INTENT_NOT_FOUND", "Payment intent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIntentGenerationFailed):
		return pkg.NewDomainError("QR_GENERATION_FAILED", "Could not generate PIX QR code", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
