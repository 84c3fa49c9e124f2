// Package service provides the business logic of the HarvestLink storefront
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go Service

// AccountService manages customer accounts and credentials
type AccountService interface {
	// Register creates a customer account
	Register(ctx context.Context, in RegisterInput) (*User, error)

	// Authenticate verifies credentials. Any mismatch is ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// GetUser returns a user by id
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)

	// UpdateProfile changes the user's own names and phone
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (*User, error)

	// ChangePassword verifies the current password and stores the new one
	ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) (*User, error)

	// EnsureAdmin creates an administrator, or promotes and resets an existing account
	EnsureAdmin(ctx context.Context, in RegisterInput) (*User, error)
}

// CatalogService serves the storefront catalog. Only active, visible products are returned.
type CatalogService interface {
	// ListProducts returns a page of products
	ListProducts(ctx context.Context, opts ...Option) (*ProductPage, error)

	// GetProduct returns a product by id or slug
	GetProduct(ctx context.Context, idOrSlug string) (*Product, error)

	// ListCategories returns categories of active products with counts
	ListCategories(ctx context.Context) ([]Category, error)

	// ListTopProducts returns the current best-seller ranking
	ListTopProducts(ctx context.Context, limit int) ([]TopProduct, error)
}

// CartService manages a user's persistent cart
type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*Cart, error)

	// AddCartItem adds quantity to the product's line, creating it if needed
	AddCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*Cart, error)

	// UpdateCartItem sets the line quantity; 0 removes the line
	UpdateCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*Cart, error)

	RemoveCartItem(ctx context.Context, userID, productID uuid.UUID) (*Cart, error)

	ClearCart(ctx context.Context, userID uuid.UUID) error
}

// AddressService manages shipping addresses. Every user with addresses has exactly one primary.
type AddressService interface {
	// ListAddresses returns the primary address first, then newest first
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]Address, error)

	GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*Address, error)

	// CreateAddress adds an address. A user's first address is always primary.
	CreateAddress(ctx context.Context, userID uuid.UUID, in AddressInput) (*Address, error)

	// UpdateAddress replaces an address
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, in AddressInput) (*Address, error)

	// DeleteAddress removes an address, promoting another if it was primary
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error

	SetPrimaryAddress(ctx context.Context, userID, addressID uuid.UUID) (*Address, error)
}

// OrderService places and tracks a customer's orders
type OrderService interface {
	// Checkout turns the cart into an order and invoice in one atomic step
	Checkout(ctx context.Context, userID uuid.UUID, in CheckoutInput) (*CheckoutResult, error)

	ListMyTransactions(ctx context.Context, userID uuid.UUID, opts ...Option) (*TransactionPage, error)

	GetMyTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*Transaction, error)

	GetMyInvoice(ctx context.Context, userID, transactionID uuid.UUID) (*Invoice, error)

	// CancelMyTransaction cancels a pending order
	CancelMyTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*Transaction, error)
}

// ContactService receives contact form messages
type ContactService interface {
	SubmitContactMessage(ctx context.Context, in ContactInput) (*ContactMessage, error)
}

// AdminService backs the administrative back office
type AdminService interface {
	ListUsers(ctx context.Context, opts ...Option) (*UserPage, error)

	// UpdateUser applies an administrator's change. actorID is the acting administrator.
	UpdateUser(ctx context.Context, actorID, userID uuid.UUID, in UserUpdate) (*User, error)

	// DeleteUser removes a user without orders
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error

	// AdminListProducts lists products in any status
	AdminListProducts(ctx context.Context, opts ...Option) (*ProductPage, error)

	AdminGetProduct(ctx context.Context, productID uuid.UUID) (*Product, error)

	CreateProduct(ctx context.Context, in ProductInput) (*Product, error)

	UpdateProduct(ctx context.Context, productID uuid.UUID, in ProductInput) (*Product, error)

	// DeleteProduct removes a product that was never ordered. Ordered products
	// are archived instead and archived is true.
	DeleteProduct(ctx context.Context, productID uuid.UUID) (archived bool, err error)

	SetProductImage(ctx context.Context, productID uuid.UUID, imageURL string) (*Product, error)

	AdminListTransactions(ctx context.Context, opts ...Option) (*TransactionPage, error)

	AdminGetTransaction(ctx context.Context, transactionID uuid.UUID) (*Transaction, error)

	AdminGetInvoice(ctx context.Context, transactionID uuid.UUID) (*Invoice, error)

	// UpdateTransactionStatus moves an order along the status state machine
	UpdateTransactionStatus(ctx context.Context, transactionID uuid.UUID, status OrderStatus) (*Transaction, error)

	ListContactMessages(ctx context.Context, opts ...Option) (*ContactMessagePage, error)

	UpdateContactMessageStatus(ctx context.Context, messageID uuid.UUID, status ContactStatus) (*ContactMessage, error)

	// Dashboard summarizes the store. Products at or below lowStockThreshold are reported.
	Dashboard(ctx context.Context, lowStockThreshold int) (*Dashboard, error)

	// RefreshTopProducts rebuilds the best-seller ranking over the window
	RefreshTopProducts(ctx context.Context, window time.Duration, size int) ([]TopProduct, error)
}

// Service is the full storefront business API
type Service interface {
	// CheckReadiness checks if the service is ready to serve requests
	CheckReadiness(ctx context.Context) error

	AccountService
	CatalogService
	CartService
	AddressService
	OrderService
	ContactService
	AdminService
}

// ProductVisibility decides whether an active product is shown to shoppers
type ProductVisibility interface {
	Visible(p *Product) bool

	// Active reports whether any rule is configured. Listings skip per-product
	// checks when it is false.
	Active() bool
}

// PricingSource returns the shipping rules currently in effect
type PricingSource interface {
	Pricing() Pricing
}
