package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pix_checkout/internal/domain/entities"
	mock_interfaces "pix_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPixStatusUseCase_GetStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty payment id", func(t *testing.T) {
		uc := NewPixStatusUseCase(nil)
		_, err := uc.GetStatus(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("approved payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixStatusUseCase(gateway)
		uc.now = func() time.Time { return now }

		gateway.EXPECT().GetPayment(gomock.Any(), "777").Return(entities.GatewayPayment{
			ID:                "777",
			Status:            "approved",
			StatusDetail:      "accredited",
			PaymentMethod:     "pix",
			TransactionAmount: 50,
			PaidAmount:        50,
			DateLastUpdated:   now,
			ExpiresAt:         now.Add(time.Hour),
		}, nil)

		st, err := uc.GetStatus(context.Background(), "777")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !st.Classification.IsPaid() || !st.ShouldStop() {
			t.Fatalf("expected paid terminal status, got %+v", st)
		}
		if st.OrderStatus != "paid" || st.RawStatus != "approved" {
			t.Fatalf("unexpected status mapping: %+v", st)
		}
		if st.GatewayOrderID != "777" || st.PaymentID != "777" {
			t.Fatalf("unexpected ids: %+v", st)
		}
		if st.TotalAmount != 50 || st.PaidAmount != 50 {
			t.Fatalf("unexpected amounts: %+v", st)
		}
	})

	t.Run("pending payment keeps polling", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixStatusUseCase(gateway)
		uc.now = func() time.Time { return now }

		gateway.EXPECT().GetPayment(gomock.Any(), "777").Return(entities.GatewayPayment{
			ID:        "777",
			Status:    "pending",
			ExpiresAt: now.Add(time.Hour),
		}, nil)

		st, err := uc.GetStatus(context.Background(), "777")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !st.Classification.IsPending() || st.ShouldStop() {
			t.Fatalf("expected pending non-terminal status, got %+v", st)
		}
		if st.OrderStatus != "opened" {
			t.Fatalf("expected opened order status, got %q", st.OrderStatus)
		}
		if !st.LastUpdated.Equal(now) {
			t.Fatalf("expected last_updated defaulted to now, got %s", st.LastUpdated)
		}
	})

	t.Run("expired past expiration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixStatusUseCase(gateway)
		uc.now = func() time.Time { return now }

		gateway.EXPECT().GetPayment(gomock.Any(), "777").Return(entities.GatewayPayment{
			ID:        "777",
			Status:    "pending",
			ExpiresAt: now.Add(-time.Minute),
		}, nil)

		st, err := uc.GetStatus(context.Background(), "777")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !st.Classification.IsExpired() || !st.ShouldStop() {
			t.Fatalf("expected expired terminal status, got %+v", st)
		}
		if st.OrderStatus != "expired" {
			t.Fatalf("expected expired order status, got %q", st.OrderStatus)
		}
	})

	t.Run("gateway not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixStatusUseCase(gateway)

		gateway.EXPECT().GetPayment(gomock.Any(), "777").Return(entities.GatewayPayment{}, errors.New(`{"message":"Payment not found","status":404}`))

		_, err := uc.GetStatus(context.Background(), "777")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("gateway transient error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixStatusUseCase(gateway)

		gateway.EXPECT().GetPayment(gomock.Any(), "777").Return(entities.GatewayPayment{}, errors.New("connection reset"))

		_, err := uc.GetStatus(context.Background(), "777")
		if err == nil || err.Error() != "connection reset" {
			t.Fatalf("expected raw transport error, got %v", err)
		}
	})
}
