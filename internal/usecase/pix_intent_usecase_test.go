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

func TestPixIntentUseCase_CreateOrFetch_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewPixIntentUseCase(nil, nil)
		_, err := uc.CreateOrFetch(context.Background(), entities.PIXChargeRequest{OrderID: " ", Amount: 50})
		if !errors.Is(err, ErrInvalidIntentOrderID) {
			t.Fatalf("expected ErrInvalidIntentOrderID, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewPixIntentUseCase(nil, nil)
		_, err := uc.CreateOrFetch(context.Background(), entities.PIXChargeRequest{OrderID: "123", Amount: 0})
		if !errors.Is(err, ErrInvalidIntentAmount) {
			t.Fatalf("expected ErrInvalidIntentAmount, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
		uc := NewPixIntentUseCase(repo, nil)

		_, err := uc.CreateOrFetch(context.Background(), entities.PIXChargeRequest{OrderID: "123", Amount: 50})
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixIntentUseCase(nil, gateway)

		_, err := uc.CreateOrFetch(context.Background(), entities.PIXChargeRequest{OrderID: "123", Amount: 50})
		if err == nil || err.Error() != "intent repository not configured" {
			t.Fatalf("expected repository not configured error, got %v", err)
		}
	})
}

func TestPixIntentUseCase_CreateOrFetch(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("reuses live intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixIntentUseCase(repo, gateway)
		uc.now = func() time.Time { return now }

		live := entities.PaymentIntent{ID: "777", OrderID: "123", Amount: 50, QRCode: "qr", ExpiresAt: now.Add(10 * time.Minute)}
		repo.EXPECT().GetLatestByOrderID(gomock.Any(), "123").Return(live, nil)

		got, err := uc.CreateOrFetch(context.Background(), entities.PIXChargeRequest{OrderID: "123", Amount: 50})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "777" {
			t.Fatalf("expected reused intent 777, got %+v", got)
		}
	})

	t.Run("expired stored intent triggers fresh charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixIntentUseCase(repo, gateway)
		uc.now = func() time.Time { return now }

		stale := entities.PaymentIntent{ID: "777", OrderID: "123", ExpiresAt: now.Add(-time.Minute)}
		repo.EXPECT().GetLatestByOrderID(gomock.Any(), "123").Return(stale, nil)

		fresh := entities.PaymentIntent{ID: "888", OrderID: "123", Amount: 50, QRCode: "qr", ExpiresAt: now.Add(30 * time.Minute)}
		gateway.EXPECT().CreatePIXCharge(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, charge entities.PIXChargeRequest) (entities.PaymentIntent, error) {
				if charge.ExpiresAt.IsZero() {
					t.Fatalf("expected defaulted expiration")
				}
				if charge.Description == "" {
					t.Fatalf("expected defaulted description")
				}
				return fresh, nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
				if !intent.CreatedAt.Equal(now) {
					t.Fatalf("expected created_at stamped with now, got %s", intent.CreatedAt)
				}
				return intent, nil
			})

		got, err := uc.CreateOrFetch(context.Background(), entities.PIXChargeRequest{OrderID: "123", Amount: 50})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "888" {
			t.Fatalf("expected fresh intent 888, got %+v", got)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixIntentUseCase(repo, gateway)

		repo.EXPECT().GetLatestByOrderID(gomock.Any(), "123").Return(entities.PaymentIntent{}, nil)
		gateway.EXPECT().CreatePIXCharge(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateOrFetch(context.Background(), entities.PIXChargeRequest{OrderID: "123", Amount: 50})
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway failure wraps generation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixIntentUseCase(repo, gateway)

		repo.EXPECT().GetLatestByOrderID(gomock.Any(), "123").Return(entities.PaymentIntent{}, nil)
		gateway.EXPECT().CreatePIXCharge(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, errors.New("connection refused"))

		_, err := uc.CreateOrFetch(context.Background(), entities.PIXChargeRequest{OrderID: "123", Amount: 50})
		if !errors.Is(err, ErrIntentGenerationFailed) {
			t.Fatalf("expected ErrIntentGenerationFailed, got %v", err)
		}
	})

	t.Run("repository create failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPixIntentUseCase(repo, gateway)

		repo.EXPECT().GetLatestByOrderID(gomock.Any(), "123").Return(entities.PaymentIntent{}, nil)
		gateway.EXPECT().CreatePIXCharge(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{ID: "888", QRCode: "qr"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, errors.New("db"))

		_, err := uc.CreateOrFetch(context.Background(), entities.PIXChargeRequest{OrderID: "123", Amount: 50})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPixIntentUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
		uc := NewPixIntentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "888").Return(entities.PaymentIntent{}, nil)

		_, err := uc.GetByID(context.Background(), "888")
		if !errors.Is(err, ErrIntentNotFound) {
			t.Fatalf("expected ErrIntentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentIntentRepository(ctrl)
		uc := NewPixIntentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "888").Return(entities.PaymentIntent{ID: "888"}, nil)

		got, err := uc.GetByID(context.Background(), " 888 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "888" {
			t.Fatalf("unexpected intent: %+v", got)
		}
	})
}
