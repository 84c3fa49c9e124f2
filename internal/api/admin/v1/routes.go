// Package v1 provides the administrative back office REST API
package v1

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/harvestlink/harvestlink/internal/auth"
	"github.com/harvestlink/harvestlink/internal/authz"
	"github.com/harvestlink/harvestlink/internal/service"
)

// ImageStore stores uploaded product images
type ImageStore interface {
	SaveFromRequest(w http.ResponseWriter, r *http.Request) (string, error)
	Remove(url string) error
}

// Settings are the back office values read from configuration
type Settings struct {
	LowStockThreshold int
	TopProductsWindow time.Duration
	TopProductsSize   int
}

// Option configures the admin router
type Option func(*Routes)

// WithImageStore enables product image uploads
func WithImageStore(store ImageStore) Option {
	return func(r *Routes) {
		r.images = store
	}
}

// WithSettings sets the source of configured values. It is called per
// request so reloaded configuration takes effect.
func WithSettings(fn func() Settings) Option {
	return func(r *Routes) {
		r.settings = fn
	}
}

// Routes defines the admin routes with dependency injection
type Routes struct {
	service  service.Service
	images   ImageStore
	settings func() Settings
}

// NewRoutes creates a new Routes instance
func NewRoutes(svc service.Service, opts ...Option) *Routes {
	routes := &Routes{
		service: svc,
		settings: func() Settings {
			return Settings{
				LowStockThreshold: 10,
				TopProductsWindow: 30 * 24 * time.Hour,
				TopProductsSize:   10,
			}
		},
	}
	for _, opt := range opts {
		opt(routes)
	}
	return routes
}

// Router creates the admin router. It expects auth.Middleware.LoadIdentity
// to run before it.
func Router(svc service.Service, authorizer authz.Authorizer, opts ...Option) http.Handler {
	routes := NewRoutes(svc, opts...)

	r := chi.NewRouter()
	r.Use(auth.RequireAuth)
	r.Use(authz.RequireAdmin(authorizer))

	r.Get("/dashboard", routes.dashboard)

	r.Get("/users", routes.listUsers)
	r.Get("/users/{id}", routes.getUser)
	r.Put("/users/{id}", routes.updateUser)
	r.Delete("/users/{id}", routes.deleteUser)

	r.Get("/products", routes.listProducts)
	r.Post("/products", routes.createProduct)
	r.Get("/products/{id}", routes.getProduct)
	r.Put("/products/{id}", routes.updateProduct)
	r.Delete("/products/{id}", routes.deleteProduct)
	r.Post("/products/{id}/image", routes.uploadProductImage)

	r.Get("/transactions", routes.listTransactions)
	r.Get("/transactions/{id}", routes.getTransaction)
	r.Get("/transactions/{id}/invoice", routes.getInvoice)
	r.Put("/transactions/{id}/status", routes.updateTransactionStatus)

	r.Get("/contact-messages", routes.listContactMessages)
	r.Put("/contact-messages/{id}", routes.updateContactMessage)

	r.Post("/top-products/refresh", routes.refreshTopProducts)

	return r
}

// actor returns the acting administrator
func actor(r *http.Request) *service.User {
	return auth.UserFromContext(r.Context())
}
