package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/harvestlink/harvestlink/internal/api"
	"github.com/harvestlink/harvestlink/internal/auth"
	"github.com/harvestlink/harvestlink/internal/config"
	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/service/inmemory"
	"github.com/harvestlink/harvestlink/internal/session"
)

func TestMain(m *testing.M) {
	restore := auth.SetBcryptCostForTesting(bcrypt.MinCost)
	code := m.Run()
	restore()
	os.Exit(code)
}

type storefront struct {
	t      *testing.T
	svc    service.Service
	url    string
	client *http.Client
	token  string
}

func newStorefront(t *testing.T, opts ...api.ServerOption) *storefront {
	t.Helper()

	svc := inmemory.New(inmemory.WithPricing(service.NewLivePricing(service.Pricing{
		ShippingFeeCents:           5000,
		FreeShippingThresholdCents: 150000,
	})))
	sessions := session.New(config.SessionConfig{})
	t.Cleanup(sessions.Close)

	opts = append([]api.ServerOption{
		api.WithMiddlewares(middleware.RequestID, middleware.Recoverer, api.LoggingMiddleware),
	}, opts...)
	router, err := api.NewServer(svc, sessions, opts...)
	require.NoError(t, err)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &storefront{t: t, svc: svc, url: srv.URL, client: &http.Client{Jar: jar}}
}

func (s *storefront) do(method, path string, body any) (int, []byte) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.url+path, reader)
	require.NoError(s.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set(api.CSRFHeader, s.token)
	}

	resp, err := s.client.Do(req)
	require.NoError(s.t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

var jose = map[string]string{
	"first_name": "Jose",
	"last_name":  "Dela Cruz",
	"email":      "jose@example.ph",
	"phone":      "09181234567",
	"password":   "harvest2026",
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	s := newStorefront(t)

	status, body := s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"healthy"}`, string(body))

	status, body = s.do(http.MethodGet, "/readiness", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ready"}`, string(body))

	status, _ = s.do(http.MethodGet, "/version", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestShoppingFlow(t *testing.T) {
	t.Parallel()
	s := newStorefront(t)
	ctx := context.Background()

	mango, err := s.svc.CreateProduct(ctx, service.ProductInput{
		Name:       "Guimaras Mango",
		Category:   "Fruits",
		PriceCents: 22000,
		Unit:       "kg",
		Stock:      12,
		FarmName:   "Guimaras Growers",
	})
	require.NoError(t, err)

	status, _ := s.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	status, body := s.do(http.MethodGet, "/api/v1/products/guimaras-mango", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, mango.ID, decode[service.Product](t, body).ID)

	status, body = s.do(http.MethodPost, "/api/v1/auth/register", jose)
	require.Equal(t, http.StatusCreated, status, string(body))

	status, body = s.do(http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "jose@example.ph", decode[service.User](t, body).Email)

	status, body = s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": mango.ID, "quantity": 3})
	require.Equal(t, http.StatusOK, status, string(body))
	cart := decode[service.Cart](t, body)
	assert.Equal(t, int64(66000), cart.SubtotalCents)
	assert.Equal(t, int64(5000), cart.ShippingFeeCents)

	status, _ = s.do(http.MethodPost, "/api/v1/cart/items", map[string]any{"product_id": mango.ID, "quantity": 10})
	require.Equal(t, http.StatusConflict, status)

	status, _ = s.do(http.MethodPost, "/api/v1/checkout", map[string]any{"payment_method": "cod"})
	require.Equal(t, http.StatusBadRequest, status, "checkout needs an address")

	status, body = s.do(http.MethodPost, "/api/v1/addresses", map[string]any{
		"recipient_name": "Jose Dela Cruz",
		"phone":          "09181234567",
		"street":         "45 Roxas Avenue",
		"city":           "Davao City",
		"province":       "Davao del Sur",
		"postal_code":    "8000",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	assert.True(t, decode[service.Address](t, body).IsPrimary)

	status, _ = s.do(http.MethodPost, "/api/v1/checkout", map[string]any{"payment_method": "gcash", "payment_reference": "12345"})
	require.Equal(t, http.StatusBadRequest, status)

	status, body = s.do(http.MethodPost, "/api/v1/checkout", map[string]any{"payment_method": "gcash", "payment_reference": "1234 5678 9012"})
	require.Equal(t, http.StatusCreated, status, string(body))
	result := decode[service.CheckoutResult](t, body)
	assert.Equal(t, service.PaymentStatusPaid, result.Transaction.PaymentStatus)
	assert.Equal(t, int64(71000), result.Invoice.AmountCents)

	status, body = s.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[service.Cart](t, body).Items)

	status, body = s.do(http.MethodGet, "/api/v1/orders", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[service.TransactionPage](t, body).Transactions, 1)

	orderPath := "/api/v1/orders/" + result.Transaction.ID.String()
	status, body = s.do(http.MethodPost, orderPath+"/cancel", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, service.PaymentStatusRefunded, decode[service.Transaction](t, body).PaymentStatus)

	status, _ = s.do(http.MethodPost, orderPath+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = s.do(http.MethodGet, "/api/admin/v1/dashboard", nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(http.MethodPost, "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = s.do(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestPasswordChangeSignsOutOtherSessions(t *testing.T) {
	t.Parallel()
	s := newStorefront(t)

	status, _ := s.do(http.MethodPost, "/api/v1/auth/register", jose)
	require.Equal(t, http.StatusCreated, status)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	other := &storefront{t: t, url: s.url, client: &http.Client{Jar: jar}}
	status, _ = other.do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "jose@example.ph",
		"password": "harvest2026",
	})
	require.Equal(t, http.StatusOK, status)

	status, body := s.do(http.MethodPut, "/api/v1/account/password", map[string]string{
		"current_password": "harvest2026",
		"new_password":     "pomelo2027",
	})
	require.Equal(t, http.StatusOK, status, string(body))

	status, _ = s.do(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = other.do(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestCSRFProtection(t *testing.T) {
	t.Parallel()
	key := bytes.Repeat([]byte("k"), 32)
	s := newStorefront(t, api.WithMiddlewares(api.CSRFMiddleware(key, false, nil)))

	status, _ := s.do(http.MethodPost, "/api/v1/auth/register", jose)
	require.Equal(t, http.StatusForbidden, status)

	status, body := s.do(http.MethodGet, "/api/v1/auth/csrf", nil)
	require.Equal(t, http.StatusOK, status)
	s.token = decode[map[string]string](t, body)["token"]
	require.NotEmpty(t, s.token)

	status, body = s.do(http.MethodPost, "/api/v1/auth/register", jose)
	assert.Equal(t, http.StatusCreated, status, string(body))

	status, _ = s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestStaticFallback(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>HarvestLink</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('ani')"), 0o600))

	s := newStorefront(t, api.WithStaticDir(dir))

	status, body := s.do(http.MethodGet, "/app.js", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "ani")

	status, body = s.do(http.MethodGet, "/orders/history", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "HarvestLink")

	status, body = s.do(http.MethodGet, "/api/v1/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"not found"}`, string(body))
}
