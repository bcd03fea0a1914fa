package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected Unwrap to expose the cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected error string: %s", appErr.Error())
	}

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected http body: %+v", body)
	}
}

func TestAppErrorSimple(t *testing.T) {
	appErr := NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	if appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", appErr.HTTPStatus)
	}
	if appErr.Error() != "PAYMENT_NOT_FOUND: Payment not found" {
		t.Fatalf("unexpected error string: %s", appErr.Error())
	}
}
