package service

import (
	"time"

	"github.com/google/uuid"
)

// Role is a user's role
type Role string

// Roles
const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// UserStatus is a user's account status
type UserStatus string

// User statuses
const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// ProductStatus is a product's catalog status
type ProductStatus string

// Product statuses
const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusArchived ProductStatus = "archived"
)

// PaymentMethod is how an order is paid
type PaymentMethod string

// Payment methods
const (
	PaymentMethodCOD   PaymentMethod = "cod"
	PaymentMethodGCash PaymentMethod = "gcash"
	PaymentMethodMaya  PaymentMethod = "maya"
)

// PaymentStatus is the payment state of an order
type PaymentStatus string

// Payment statuses
const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// OrderStatus is the fulfilment state of an order
type OrderStatus string

// Order statuses
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// InvoiceStatus is the state of an invoice
type InvoiceStatus string

// Invoice statuses
const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusVoid   InvoiceStatus = "void"
)

// ContactStatus is the triage state of a contact message
type ContactStatus string

// Contact message statuses
const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusArchived ContactStatus = "archived"
)

// ProductUnits are the units a product may be sold in
var ProductUnits = []string{"kg", "g", "piece", "bundle", "pack", "dozen", "liter"}

// User is a registered account
type User struct {
	ID                uuid.UUID  `json:"id"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	PasswordHash      string     `json:"-"`
	Role              Role       `json:"role"`
	Status            UserStatus `json:"status"`
	PasswordChangedAt time.Time  `json:"-"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Product is a catalog item
type Product struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Tags        []string      `json:"tags"`
	PriceCents  int64         `json:"price_cents"`
	Unit        string        `json:"unit"`
	Stock       int           `json:"stock"`
	ImageURL    string        `json:"image_url"`
	FarmName    string        `json:"farm_name"`
	Status      ProductStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// IsActive reports whether the product can be listed and bought
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// ProductPage is an offset-paged product listing
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}

// Category is a product category with the number of active products in it
type Category struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// TopProduct is a best-selling product in the ranking window
type TopProduct struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ImageURL     string    `json:"image_url"`
	PriceCents   int64     `json:"price_cents"`
	UnitsSold    int64     `json:"units_sold"`
	RevenueCents int64     `json:"revenue_cents"`
	Rank         int       `json:"rank"`
	ComputedAt   time.Time `json:"computed_at"`
}

// CartItem is a cart line joined with its product
type CartItem struct {
	ProductID      uuid.UUID     `json:"product_id"`
	Name           string        `json:"name"`
	Slug           string        `json:"slug"`
	Unit           string        `json:"unit"`
	ImageURL       string        `json:"image_url"`
	UnitPriceCents int64         `json:"unit_price_cents"`
	Quantity       int           `json:"quantity"`
	LineTotalCents int64         `json:"line_total_cents"`
	Stock          int           `json:"stock"`
	ProductStatus  ProductStatus `json:"product_status"`
	Warning        string        `json:"warning,omitempty"`
	AddedAt        time.Time     `json:"added_at"`
}

// Cart is a user's cart with computed totals
type Cart struct {
	Items            []CartItem `json:"items"`
	ItemCount        int        `json:"item_count"`
	SubtotalCents    int64      `json:"subtotal_cents"`
	ShippingFeeCents int64      `json:"shipping_fee_cents"`
	TotalCents       int64      `json:"total_cents"`
	CanCheckout      bool       `json:"can_checkout"`
}

// Address is a user's shipping address
type Address struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Label         string    `json:"label"`
	RecipientName string    `json:"recipient_name"`
	Phone         string    `json:"phone"`
	Street        string    `json:"street"`
	Barangay      string    `json:"barangay"`
	City          string    `json:"city"`
	Province      string    `json:"province"`
	PostalCode    string    `json:"postal_code"`
	IsPrimary     bool      `json:"is_primary"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ShippingAddress is the address snapshot stored with an order
type ShippingAddress struct {
	Label         string `json:"label"`
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
	Barangay      string `json:"barangay"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postal_code"`
}

// Snapshot copies the address fields an order keeps
func (a *Address) Snapshot() ShippingAddress {
	return ShippingAddress{
		Label:         a.Label,
		RecipientName: a.RecipientName,
		Phone:         a.Phone,
		Street:        a.Street,
		Barangay:      a.Barangay,
		City:          a.City,
		Province:      a.Province,
		PostalCode:    a.PostalCode,
	}
}

// OrderItem is a product line as it was when the order was placed
type OrderItem struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	Unit           string    `json:"unit"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	LineTotalCents int64     `json:"line_total_cents"`
}

// Transaction is a placed order
type Transaction struct {
	ID               uuid.UUID       `json:"id"`
	OrderNumber      string          `json:"order_number"`
	UserID           uuid.UUID       `json:"user_id"`
	Items            []OrderItem     `json:"items"`
	SubtotalCents    int64           `json:"subtotal_cents"`
	ShippingFeeCents int64           `json:"shipping_fee_cents"`
	TotalCents       int64           `json:"total_cents"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	Status           OrderStatus     `json:"status"`
	ShippingAddress  ShippingAddress `json:"shipping_address"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	CancelledAt      *time.Time      `json:"cancelled_at,omitempty"`
	DeliveredAt      *time.Time      `json:"delivered_at,omitempty"`
}

// TransactionPage is a cursor-paged list of orders
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	NextCursor   string        `json:"next_cursor,omitempty"`
}

// Invoice is the billing document for an order
type Invoice struct {
	ID            uuid.UUID     `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	TransactionID uuid.UUID     `json:"transaction_id"`
	UserID        uuid.UUID     `json:"user_id"`
	AmountCents   int64         `json:"amount_cents"`
	Status        InvoiceStatus `json:"status"`
	IssuedAt      time.Time     `json:"issued_at"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}

// CheckoutResult is a placed order and its invoice
type CheckoutResult struct {
	Transaction *Transaction `json:"transaction"`
	Invoice     *Invoice     `json:"invoice"`
}

// ContactMessage is a message sent through the contact form
type ContactMessage struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	UserID    *uuid.UUID    `json:"user_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ContactMessagePage is a cursor-paged list of contact messages
type ContactMessagePage struct {
	Messages   []ContactMessage `json:"messages"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

// UserPage is a cursor-paged list of users
type UserPage struct {
	Users      []User `json:"users"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// Dashboard summarizes the store for administrators
type Dashboard struct {
	Users        UserCounts            `json:"users"`
	Products     ProductCounts         `json:"products"`
	Orders       map[OrderStatus]int64 `json:"orders"`
	RevenueCents int64                 `json:"revenue_cents"`
	NewMessages  int64                 `json:"new_messages"`
	LowStock     []Product             `json:"low_stock"`
	TopProducts  []TopProduct          `json:"top_products"`
}

// UserCounts are user totals by role and status
type UserCounts struct {
	Total     int64 `json:"total"`
	Customers int64 `json:"customers"`
	Admins    int64 `json:"admins"`
	Suspended int64 `json:"suspended"`
}

// ProductCounts are product totals by status
type ProductCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Archived int64 `json:"archived"`
}

// Pricing holds the shipping rules applied to carts and orders
type Pricing struct {
	ShippingFeeCents           int64
	FreeShippingThresholdCents int64
}
