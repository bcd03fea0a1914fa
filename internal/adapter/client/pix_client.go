package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/pkg"
)

// PixAPIClient is a typed client for the /v1/pix endpoints, used by the
// watcher to drive a polling session against a running API.
type PixAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *PixAPIClient {
	return &PixAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateQRCode requests a PIX charge for an order and returns the intent.
func (c *PixAPIClient) CreateQRCode(ctx context.Context, req request.PixQRCodeRequest) (entities.PaymentIntent, error) {
	var res response.PixQRCodeResponse
	if err := c.post(ctx, "/v1/pix/qrcode", req, &res); err != nil {
		return entities.PaymentIntent{}, err
	}
	return entities.PaymentIntent{
		ID:           res.OrderID,
		OrderID:      req.OrderID,
		Amount:       req.Value,
		Description:  req.Description,
		QRCode:       res.QRCode,
		QRCodeBase64: res.QRCodeBase64,
		TicketURL:    res.TicketURL,
		Status:       res.Status,
		ExpiresAt:    res.ExpirationDate,
	}, nil
}

// FetchStatus implements poller.StatusFetcher over the status endpoint.
func (c *PixAPIClient) FetchStatus(ctx context.Context, paymentID string) (entities.PaymentStatus, error) {
	var res response.PixStatusResponse
	if err := c.post(ctx, "/v1/pix/status", request.PixStatusRequest{OrderID: paymentID}, &res); err != nil {
		return entities.PaymentStatus{}, err
	}
	return res.ToPaymentStatus(), nil
}

func (c *PixAPIClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var httpErr pkg.HTTPError
		if err := json.Unmarshal(raw, &httpErr); err == nil && httpErr.Message != "" {
			return fmt.Errorf("pix api %s: %s (%s) status=%d", path, httpErr.Message, httpErr.Code, resp.StatusCode)
		}
		return fmt.Errorf("pix api %s: unexpected status=%d", path, resp.StatusCode)
	}

	return json.Unmarshal(raw, out)
}
