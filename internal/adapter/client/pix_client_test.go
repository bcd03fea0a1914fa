package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/dto/response"
)

func TestPixAPIClient_CreateQRCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/pix/qrcode" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req request.PixQRCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if req.OrderID != "123" || req.Value != 50 {
			t.Fatalf("unexpected request: %+v", req)
		}
		json.NewEncoder(w).Encode(response.PixQRCodeResponse{
			QRCode:       "qr-payload",
			QRCodeBase64: "cXI=",
			OrderID:      "777",
			Status:       "pending",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	intent, err := c.CreateQRCode(context.Background(), request.PixQRCodeRequest{OrderID: "123", Value: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.ID != "777" || intent.OrderID != "123" || intent.QRCode != "qr-payload" {
		t.Fatalf("unexpected intent: %+v", intent)
	}
}

func TestPixAPIClient_FetchStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/pix/status" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req request.PixStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if req.OrderID != "777" {
			t.Fatalf("unexpected payment id: %q", req.OrderID)
		}
		json.NewEncoder(w).Encode(response.PixStatusResponse{
			MercadoPagoOrderID: "777",
			PaymentID:          "777",
			OrderStatus:        "paid",
			PaymentStatus:      "approved",
			IsPaid:             true,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	st, err := c.FetchStatus(context.Background(), "777")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.Classification.IsPaid() || st.PaymentID != "777" {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestPixAPIClient_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"PAYMENT_NOT_FOUND","message":"Payment not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.FetchStatus(context.Background(), "999")
	if err == nil {
		t.Fatalf("expected error for 404 response")
	}
	want := "pix api /v1/pix/status: Payment not found (PAYMENT_NOT_FOUND) status=404"
	if err.Error() != want {
		t.Fatalf("unexpected error message: %v", err)
	}
}
