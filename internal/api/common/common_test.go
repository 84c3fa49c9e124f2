package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/uploads"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", service.NewValidationError("email", "is required"), http.StatusBadRequest},
		{"bad reference", service.ErrInvalidPaymentReference, http.StatusBadRequest},
		{"missing upload", uploads.ErrMissingFile, http.StatusBadRequest},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"suspended", service.ErrAccountSuspended, http.StatusForbidden},
		{"self modification", service.ErrSelfModification, http.StatusForbidden},
		{"product not found", service.ErrProductNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", service.ErrAddressNotFound), http.StatusNotFound},
		{"stock", fmt.Errorf("Pomelo: %w", service.ErrInsufficientStock), http.StatusConflict},
		{"transition", service.ErrInvalidStatusTransition, http.StatusConflict},
		{"empty cart", service.ErrCartEmpty, http.StatusConflict},
		{"too large", uploads.ErrTooLarge, http.StatusRequestEntityTooLarge},
		{"media type", uploads.ErrUnsupportedType, http.StatusUnsupportedMediaType},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestWriteServiceError_HidesInternalErrors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/api/v1/cart", nil)

	rr := httptest.NewRecorder()
	WriteServiceError(rr, req, errors.New("pq: relation does not exist"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	WriteServiceError(rr, req, service.ErrCartEmpty)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"cart is empty"}`, rr.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Quantity int `json:"quantity"`
	}

	tests := []struct {
		name        string
		body        string
		contentType string
		want        int
		wantErr     bool
	}{
		{name: "valid", body: `{"quantity":3}`, contentType: "application/json", want: 3},
		{name: "charset suffix", body: `{"quantity":2}`, contentType: "application/json; charset=utf-8", want: 2},
		{name: "no content type", body: `{"quantity":1}`, want: 1},
		{name: "unknown field", body: `{"qty":3}`, contentType: "application/json", wantErr: true},
		{name: "malformed", body: `{"quantity":`, contentType: "application/json", wantErr: true},
		{name: "trailing data", body: `{"quantity":1}{}`, contentType: "application/json", wantErr: true},
		{name: "form post", body: `quantity=1`, contentType: "application/x-www-form-urlencoded", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var got payload
			err := DecodeJSON(httptest.NewRecorder(), req, &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Quantity)
		})
	}
}
