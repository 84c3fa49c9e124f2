package service

import (
	"github.com/google/uuid"
)

// RegisterInput is the data needed to create a customer account
type RegisterInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// ProfileInput is the self-service editable part of a user
type ProfileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UserUpdate is an administrator's change to a user. Nil fields are left unchanged.
type UserUpdate struct {
	FirstName *string     `json:"first_name,omitempty"`
	LastName  *string     `json:"last_name,omitempty"`
	Phone     *string     `json:"phone,omitempty"`
	Role      *Role       `json:"role,omitempty"`
	Status    *UserStatus `json:"status,omitempty"`
}

// AddressInput is the data for creating or replacing an address
type AddressInput struct {
	Label         string `json:"label"`
	RecipientName string `json:"recipient_name"`
	Phone         string `json:"phone"`
	Street        string `json:"street"`
	Barangay      string `json:"barangay"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postal_code"`
	IsPrimary     bool   `json:"is_primary"`
}

// ProductInput is the data for creating or replacing a product
type ProductInput struct {
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
}

// CheckoutInput is a customer's checkout request
type CheckoutInput struct {
	AddressID        *uuid.UUID `json:"address_id,omitempty"`
	PaymentMethod    string     `json:"payment_method"`
	PaymentReference string     `json:"payment_reference,omitempty"`
	Notes            string     `json:"notes,omitempty"`
}

// ContactInput is a contact form submission
type ContactInput struct {
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Subject string     `json:"subject"`
	Message string     `json:"message"`
	UserID  *uuid.UUID `json:"-"`
}
