package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/harvestlink/harvestlink/internal/auth"
	"github.com/harvestlink/harvestlink/internal/authz"
	"github.com/harvestlink/harvestlink/internal/ratelimit"
	"github.com/harvestlink/harvestlink/internal/service"
	"github.com/harvestlink/harvestlink/internal/service/mocks"
)

// fakeSessions records session calls made by the handlers
type fakeSessions struct {
	mu        sync.Mutex
	loggedIn  []uuid.UUID
	refreshed []uuid.UUID
	loggedOut int
}

func (f *fakeSessions) Login(_ context.Context, userID uuid.UUID, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedIn = append(f.loggedIn, userID)
	return nil
}

func (f *fakeSessions) Refresh(_ context.Context, userID uuid.UUID, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshed = append(f.refreshed, userID)
	return nil
}

func (f *fakeSessions) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedOut++
	return nil
}

var (
	customer = &service.User{
		ID:     uuid.MustParse("7b0c4a55-1d1e-4c6b-9b0e-4f3f4f1c0a01"),
		Email:  "liza@example.ph",
		Role:   service.RoleCustomer,
		Status: service.UserStatusActive,
	}
	suspended = &service.User{
		ID:     uuid.MustParse("7b0c4a55-1d1e-4c6b-9b0e-4f3f4f1c0a02"),
		Email:  "ramon@example.ph",
		Role:   service.RoleCustomer,
		Status: service.UserStatusSuspended,
	}
	productID = uuid.MustParse("2f0f5c1e-8a0b-4d4e-9d3c-6a1c2b3d4e50")
	addressID = uuid.MustParse("9e8d7c6b-5a4f-4e3d-8c2b-1a0f9e8d7c60")
	orderID   = uuid.MustParse("0a1b2c3d-4e5f-4a6b-8c7d-8e9f0a1b2c70")
)

type routeTest struct {
	name       string
	method     string
	path       string
	body       string
	user       *service.User
	setupMocks func(*mocks.MockService)
	wantStatus int
	wantBody   string
}

func newTestRouter(t *testing.T, m *mocks.MockService, sessions Sessions, user *service.User) http.Handler {
	t.Helper()

	authorizer, err := authz.NewCedarAuthorizer(nil)
	require.NoError(t, err)

	router := Router(m, sessions, authorizer, ratelimit.New(nil))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user != nil {
			r = r.WithContext(auth.WithUser(r.Context(), user))
		}
		router.ServeHTTP(w, r)
	})
}

func runRouteTests(t *testing.T, tests []routeTest) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockSvc := mocks.NewMockService(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			rr := httptest.NewRecorder()
			newTestRouter(t, mockSvc, &fakeSessions{}, tt.user).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestAuthRoutes(t *testing.T) {
	t.Parallel()

	runRouteTests(t, []routeTest{
		{
			name:   "register email taken",
			method: http.MethodPost,
			path:   "/auth/register",
			body:   `{"first_name":"Liza","last_name":"Soberano","email":"liza@example.ph","phone":"09171234567","password":"mangga2026"}`,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, service.ErrEmailTaken)
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"email is already registered"}`,
		},
		{
			name:       "register unknown field",
			method:     http.MethodPost,
			path:       "/auth/register",
			body:       `{"email":"liza@example.ph","role":"admin"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "login invalid credentials",
			method: http.MethodPost,
			path:   "/auth/login",
			body:   `{"email":"liza@example.ph","password":"wrong"}`,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().Authenticate(gomock.Any(), "liza@example.ph", "wrong").Return(nil, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"invalid email or password"}`,
		},
		{
			name:   "login suspended",
			method: http.MethodPost,
			path:   "/auth/login",
			body:   `{"email":"ramon@example.ph","password":"kamote123"}`,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrAccountSuspended)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "logout",
			method:     http.MethodPost,
			path:       "/auth/logout",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "me anonymous",
			method:     http.MethodGet,
			path:       "/auth/me",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "me",
			method:     http.MethodGet,
			path:       "/auth/me",
			user:       customer,
			wantStatus: http.StatusOK,
		},
		{
			name:       "csrf token without protection",
			method:     http.MethodGet,
			path:       "/auth/csrf",
			wantStatus: http.StatusOK,
			wantBody:   `{"token":""}`,
		},
		{
			name:   "change password with wrong current password",
			method: http.MethodPut,
			path:   "/account/password",
			body:   `{"current_password":"nope","new_password":"bagong2026"}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().ChangePassword(gomock.Any(), customer.ID, "nope", "bagong2026").Return(nil, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "update profile validation",
			method: http.MethodPut,
			path:   "/account/profile",
			body:   `{"first_name":"","last_name":"Soberano","phone":"09171234567"}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().UpdateProfile(gomock.Any(), customer.ID, gomock.Any()).
					Return(nil, service.NewValidationError("first_name", "is required"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"first_name: is required"}`,
		},
	})
}

func TestRegisterAndLogin_BindSession(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mockSvc := mocks.NewMockService(ctrl)
	sessions := &fakeSessions{}

	mockSvc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in service.RegisterInput) (*service.User, error) {
			assert.Equal(t, "liza@example.ph", in.Email)
			return customer, nil
		})
	mockSvc.EXPECT().Authenticate(gomock.Any(), "liza@example.ph", "mangga2026").Return(customer, nil)
	mockSvc.EXPECT().ChangePassword(gomock.Any(), customer.ID, "mangga2026", "bagong2026").Return(customer, nil)

	router := newTestRouter(t, mockSvc, sessions, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"first_name":"Liza","last_name":"Soberano","email":"liza@example.ph","phone":"09171234567","password":"mangga2026"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var got service.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, customer.ID, got.ID)
	assert.NotContains(t, rr.Body.String(), "password")

	req = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"liza@example.ph","password":"mangga2026"}`))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, []uuid.UUID{customer.ID, customer.ID}, sessions.loggedIn)

	req = httptest.NewRequest(http.MethodPut, "/account/password",
		strings.NewReader(`{"current_password":"mangga2026","new_password":"bagong2026"}`))
	rr = httptest.NewRecorder()
	newTestRouter(t, mockSvc, sessions, customer).ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []uuid.UUID{customer.ID}, sessions.refreshed)
}

func TestCatalogRoutes(t *testing.T) {
	t.Parallel()

	runRouteTests(t, []routeTest{
		{
			name:   "list products anonymously",
			method: http.MethodGet,
			path:   "/products?category=Fruits&tag=organic&min_price=5000&in_stock=true&sort=price_asc&limit=10",
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().ListProducts(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, opts ...service.Option) (*service.ProductPage, error) {
						assert.Len(t, opts, 6)
						return &service.ProductPage{Products: []service.Product{}, Limit: 10}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "list products bad price",
			method:     http.MethodGet,
			path:       "/products?min_price=cheap",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid min_price parameter: cheap"}`,
		},
		{
			name:   "list products bad sort",
			method: http.MethodGet,
			path:   "/products?sort=random",
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().ListProducts(gomock.Any(), gomock.Any()).
					Return(nil, service.NewValidationError("sort", "must be newest, price_asc, price_desc or name"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "get product by slug",
			method: http.MethodGet,
			path:   "/products/davao-pomelo",
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().GetProduct(gomock.Any(), "davao-pomelo").Return(&service.Product{ID: productID, Slug: "davao-pomelo"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "get hidden product",
			method: http.MethodGet,
			path:   "/products/durian",
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().GetProduct(gomock.Any(), "durian").Return(nil, service.ErrProductNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"product not found"}`,
		},
		{
			name:   "top products default limit",
			method: http.MethodGet,
			path:   "/products/top",
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().ListTopProducts(gomock.Any(), defaultTopProducts).Return([]service.TopProduct{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"products":[]}`,
		},
		{
			name:       "top products out of range",
			method:     http.MethodGet,
			path:       "/products/top?limit=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "categories",
			method: http.MethodGet,
			path:   "/categories",
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().ListCategories(gomock.Any()).Return([]service.Category{{Name: "Fruits", ProductCount: 4}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"categories":[{"name":"Fruits","product_count":4}]}`,
		},
	})
}

func TestCartRoutes(t *testing.T) {
	t.Parallel()

	runRouteTests(t, []routeTest{
		{
			name:       "anonymous",
			method:     http.MethodGet,
			path:       "/cart",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "suspended",
			method:     http.MethodGet,
			path:       "/cart",
			user:       suspended,
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "get cart",
			method: http.MethodGet,
			path:   "/cart",
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().GetCart(gomock.Any(), customer.ID).Return(&service.Cart{Items: []service.CartItem{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "add item",
			method: http.MethodPost,
			path:   "/cart/items",
			body:   `{"product_id":"` + productID.String() + `","quantity":2}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().AddCartItem(gomock.Any(), customer.ID, productID, 2).Return(&service.Cart{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "add item without product",
			method:     http.MethodPost,
			path:       "/cart/items",
			body:       `{"quantity":2}`,
			user:       customer,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"product_id is required"}`,
		},
		{
			name:   "add item beyond stock",
			method: http.MethodPost,
			path:   "/cart/items",
			body:   `{"product_id":"` + productID.String() + `","quantity":40}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().AddCartItem(gomock.Any(), customer.ID, productID, 40).Return(nil, service.ErrInsufficientStock)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "update item bad id",
			method:     http.MethodPut,
			path:       "/cart/items/pomelo",
			body:       `{"quantity":1}`,
			user:       customer,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"productID must be a valid UUID"}`,
		},
		{
			name:   "update item to zero",
			method: http.MethodPut,
			path:   "/cart/items/" + productID.String(),
			body:   `{"quantity":0}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().UpdateCartItem(gomock.Any(), customer.ID, productID, 0).Return(&service.Cart{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "remove missing item",
			method: http.MethodDelete,
			path:   "/cart/items/" + productID.String(),
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().RemoveCartItem(gomock.Any(), customer.ID, productID).Return(nil, service.ErrCartItemNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "clear cart",
			method: http.MethodDelete,
			path:   "/cart",
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().ClearCart(gomock.Any(), customer.ID).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	})
}

func TestAddressRoutes(t *testing.T) {
	t.Parallel()

	runRouteTests(t, []routeTest{
		{
			name:   "list",
			method: http.MethodGet,
			path:   "/addresses",
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().ListAddresses(gomock.Any(), customer.ID).Return([]service.Address{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"addresses":[]}`,
		},
		{
			name:   "create over limit",
			method: http.MethodPost,
			path:   "/addresses",
			body:   `{"recipient_name":"Liza","street":"J.P. Laurel Ave","city":"Davao City","province":"Davao del Sur","postal_code":"8000","phone":"09171234567"}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().CreateAddress(gomock.Any(), customer.ID, gomock.Any()).Return(nil, service.ErrAddressLimit)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/addresses",
			body:   `{"recipient_name":"Liza","street":"J.P. Laurel Ave","city":"Davao City","province":"Davao del Sur","postal_code":"8000","phone":"09171234567"}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().CreateAddress(gomock.Any(), customer.ID, gomock.Any()).Return(&service.Address{ID: addressID, IsPrimary: true}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "get someone else's address",
			method: http.MethodGet,
			path:   "/addresses/" + addressID.String(),
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().GetAddress(gomock.Any(), customer.ID, addressID).Return(nil, service.ErrAddressNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "update only address to non-primary",
			method: http.MethodPut,
			path:   "/addresses/" + addressID.String(),
			body:   `{"recipient_name":"Liza","street":"J.P. Laurel Ave","city":"Davao City","province":"Davao del Sur","is_primary":false}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().UpdateAddress(gomock.Any(), customer.ID, addressID, gomock.Any()).Return(nil, service.ErrLastPrimaryAddress)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "set primary",
			method: http.MethodPost,
			path:   "/addresses/" + addressID.String() + "/primary",
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().SetPrimaryAddress(gomock.Any(), customer.ID, addressID).Return(&service.Address{ID: addressID, IsPrimary: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/addresses/" + addressID.String(),
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().DeleteAddress(gomock.Any(), customer.ID, addressID).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	})
}

func TestOrderRoutes(t *testing.T) {
	t.Parallel()

	runRouteTests(t, []routeTest{
		{
			name:   "checkout",
			method: http.MethodPost,
			path:   "/checkout",
			body:   `{"payment_method":"gcash","payment_reference":"1234 5678 9012"}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().Checkout(gomock.Any(), customer.ID, service.CheckoutInput{
					PaymentMethod:    "gcash",
					PaymentReference: "1234 5678 9012",
				}).Return(&service.CheckoutResult{
					Transaction: &service.Transaction{ID: orderID, Status: service.OrderStatusPending},
					Invoice:     &service.Invoice{TransactionID: orderID},
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "checkout empty cart",
			method: http.MethodPost,
			path:   "/checkout",
			body:   `{"payment_method":"cod"}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().Checkout(gomock.Any(), customer.ID, gomock.Any()).Return(nil, service.ErrCartEmpty)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "checkout bad reference",
			method: http.MethodPost,
			path:   "/checkout",
			body:   `{"payment_method":"maya","payment_reference":"12345"}`,
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().Checkout(gomock.Any(), customer.ID, gomock.Any()).Return(nil, service.ErrInvalidPaymentReference)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"payment reference must be a 12-digit number"}`,
		},
		{
			name:       "checkout anonymous",
			method:     http.MethodPost,
			path:       "/checkout",
			body:       `{"payment_method":"cod"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "list orders",
			method: http.MethodGet,
			path:   "/orders?status=pending&limit=5",
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().ListMyTransactions(gomock.Any(), customer.ID, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, opts ...service.Option) (*service.TransactionPage, error) {
						assert.Len(t, opts, 2)
						return &service.TransactionPage{Transactions: []service.Transaction{}}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "list orders bad limit",
			method:     http.MethodGet,
			path:       "/orders?limit=ten",
			user:       customer,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "get order",
			method: http.MethodGet,
			path:   "/orders/" + orderID.String(),
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().GetMyTransaction(gomock.Any(), customer.ID, orderID).Return(&service.Transaction{ID: orderID}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "cancel shipped order",
			method: http.MethodPost,
			path:   "/orders/" + orderID.String() + "/cancel",
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().CancelMyTransaction(gomock.Any(), customer.ID, orderID).Return(nil, service.ErrOrderNotCancellable)
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"only pending orders can be cancelled"}`,
		},
		{
			name:   "invoice",
			method: http.MethodGet,
			path:   "/orders/" + orderID.String() + "/invoice",
			user:   customer,
			setupMocks: func(m *mocks.MockService) {
				m.EXPECT().GetMyInvoice(gomock.Any(), customer.ID, orderID).Return(&service.Invoice{TransactionID: orderID}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invoice bad id",
			method:     http.MethodGet,
			path:       "/orders/HL-1/invoice",
			user:       customer,
			wantStatus: http.StatusBadRequest,
		},
	})
}

func TestSubmitContact(t *testing.T) {
	t.Parallel()

	body := `{"name":"Liza","email":"liza@example.ph","subject":"Delivery","message":"Do you deliver to Tagum City?"}`

	tests := []struct {
		name       string
		user       *service.User
		wantUserID *uuid.UUID
	}{
		{name: "anonymous sender", user: nil, wantUserID: nil},
		{name: "logged in sender", user: customer, wantUserID: &customer.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			mockSvc := mocks.NewMockService(ctrl)
			mockSvc.EXPECT().SubmitContactMessage(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, in service.ContactInput) (*service.ContactMessage, error) {
					assert.Equal(t, tt.wantUserID, in.UserID)
					return &service.ContactMessage{Status: service.ContactStatusNew, UserID: in.UserID}, nil
				})

			req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
			rr := httptest.NewRecorder()
			newTestRouter(t, mockSvc, &fakeSessions{}, tt.user).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusCreated, rr.Code)
		})
	}
}
