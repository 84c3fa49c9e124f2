// Package v1 provides the storefront REST API: accounts, catalog, cart,
// addresses, checkout, orders and the contact form.
package v1

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/api/common"
	"github.com/harvestlink/harvestlink/internal/auth"
	"github.com/harvestlink/harvestlink/internal/authz"
	"github.com/harvestlink/harvestlink/internal/ratelimit"
	"github.com/harvestlink/harvestlink/internal/service"
)

// Sessions binds and releases the caller's session
type Sessions interface {
	Login(ctx context.Context, userID uuid.UUID, passwordChangedAt time.Time) error
	Refresh(ctx context.Context, userID uuid.UUID, passwordChangedAt time.Time) error
	Logout(ctx context.Context) error
}

// Routes defines the storefront routes with dependency injection
type Routes struct {
	service  service.Service
	sessions Sessions
}

// NewRoutes creates a new Routes instance
func NewRoutes(svc service.Service, sessions Sessions) *Routes {
	return &Routes{
		service:  svc,
		sessions: sessions,
	}
}

// Router creates the storefront router. It expects the session middleware and
// auth.Middleware.LoadIdentity to run before it.
func Router(
	svc service.Service,
	sessions Sessions,
	authorizer authz.Authorizer,
	limiter *ratelimit.Limiter,
) http.Handler {
	routes := NewRoutes(svc, sessions)

	r := chi.NewRouter()

	r.Route("/auth", func(r chi.Router) {
		r.With(limiter.Middleware(ratelimit.ScopeRegister)).Post("/register", routes.register)
		r.With(limiter.Middleware(ratelimit.ScopeLogin)).Post("/login", routes.login)
		r.Post("/logout", routes.logout)
		r.Get("/csrf", routes.csrfToken)
		r.With(auth.RequireAuth).Get("/me", routes.me)
	})

	r.Group(func(r chi.Router) {
		r.Use(authz.Require(authorizer, authz.ActionBrowse, "catalog"))

		r.Get("/products", routes.listProducts)
		r.Get("/products/top", routes.listTopProducts)
		r.Get("/products/{idOrSlug}", routes.getProduct)
		r.Get("/categories", routes.listCategories)
	})

	r.With(limiter.Middleware(ratelimit.ScopeContact)).Post("/contact", routes.submitContact)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Use(authz.Require(authorizer, authz.ActionShop, "shop"))

		r.Put("/account/profile", routes.updateProfile)
		r.Put("/account/password", routes.changePassword)

		r.Get("/cart", routes.getCart)
		r.Delete("/cart", routes.clearCart)
		r.Post("/cart/items", routes.addCartItem)
		r.Put("/cart/items/{productID}", routes.updateCartItem)
		r.Delete("/cart/items/{productID}", routes.removeCartItem)

		r.Get("/addresses", routes.listAddresses)
		r.Post("/addresses", routes.createAddress)
		r.Get("/addresses/{id}", routes.getAddress)
		r.Put("/addresses/{id}", routes.updateAddress)
		r.Delete("/addresses/{id}", routes.deleteAddress)
		r.Post("/addresses/{id}/primary", routes.setPrimaryAddress)

		r.With(limiter.Middleware(ratelimit.ScopeCheckout)).Post("/checkout", routes.checkout)
		r.Get("/orders", routes.listOrders)
		r.Get("/orders/{id}", routes.getOrder)
		r.Post("/orders/{id}/cancel", routes.cancelOrder)
		r.Get("/orders/{id}/invoice", routes.getInvoice)
	})

	return r
}

// currentUser returns the authenticated caller. Only valid behind auth.RequireAuth.
func currentUser(r *http.Request) *service.User {
	return auth.UserFromContext(r.Context())
}

// pageOptions reads the cursor and limit query parameters
func pageOptions(r *http.Request) ([]service.Option, error) {
	var opts []service.Option

	if cursor := strings.TrimSpace(r.URL.Query().Get("cursor")); cursor != "" {
		opts = append(opts, service.WithCursor(cursor))
	}

	limit, ok, err := common.QueryInt(r, "limit")
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, service.WithLimit(limit))
	}

	return opts, nil
}
