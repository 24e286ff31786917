package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsCarryStatusAndCode(t *testing.T) {
	tests := []struct {
		err        *Error
		wantStatus int
		wantCode   string
	}{
		{Validation("id is required"), http.StatusBadRequest, "validation_error"},
		{NotFound("no such question"), http.StatusNotFound, "not_found"},
		{Gateway(errors.New("timeout")), http.StatusInternalServerError, "gateway_error"},
		{Store(errors.New("connection refused")), http.StatusInternalServerError, "store_error"},
	}
	for _, tt := range tests {
		if tt.err.Status != tt.wantStatus || tt.err.Code != tt.wantCode {
			t.Fatalf("unexpected error: %+v", tt.err)
		}
	}
}

func TestFromPassesThroughAPIErrors(t *testing.T) {
	orig := Validation("missing fields")
	wrapped := fmt.Errorf("handling request: %w", orig)

	got := From(wrapped)
	if got != orig {
		t.Fatalf("expected the original *Error, got %+v", got)
	}
}

func TestFromClassifiesUnknownErrorsAsStore(t *testing.T) {
	got := From(errors.New("boom"))
	if got.Status != http.StatusInternalServerError || got.Code != "store_error" {
		t.Fatalf("unexpected classification: %+v", got)
	}
	if got.Error() != "boom" {
		t.Fatalf("underlying message lost: %q", got.Error())
	}
}

func TestErrorMessageFallbacks(t *testing.T) {
	if got := (&Error{Code: "gateway_error"}).Error(); got != "gateway_error" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := (&Error{Status: 500}).Error(); got != "api error (500)" {
		t.Fatalf("unexpected message: %q", got)
	}
}
