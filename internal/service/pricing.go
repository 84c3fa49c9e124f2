package service

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ShippingFor returns the shipping fee for a subtotal. Empty carts ship free.
func (p Pricing) ShippingFor(subtotalCents int64) int64 {
	if subtotalCents <= 0 {
		return 0
	}
	if p.FreeShippingThresholdCents > 0 && subtotalCents >= p.FreeShippingThresholdCents {
		return 0
	}
	return p.ShippingFeeCents
}

// LivePricing is a PricingSource that can be swapped at runtime
type LivePricing struct {
	current atomic.Pointer[Pricing]
}

var _ PricingSource = (*LivePricing)(nil)

// NewLivePricing returns a LivePricing starting at p
func NewLivePricing(p Pricing) *LivePricing {
	l := &LivePricing{}
	l.Update(p)
	return l
}

// Pricing implements PricingSource
func (l *LivePricing) Pricing() Pricing {
	return *l.current.Load()
}

// Update replaces the pricing in effect
func (l *LivePricing) Update(p Pricing) {
	l.current.Store(&p)
}

// BuildCart computes line totals, warnings and the cart totals. Lines whose
// product is archived or short on stock carry a warning and block checkout;
// they still count towards the subtotal so the customer sees what they picked.
func BuildCart(items []CartItem, pricing Pricing) *Cart {
	cart := &Cart{Items: make([]CartItem, 0, len(items)), CanCheckout: len(items) > 0}

	for _, item := range items {
		item.LineTotalCents = item.UnitPriceCents * int64(item.Quantity)
		switch {
		case item.ProductStatus != ProductStatusActive:
			item.Warning = "This product is no longer available"
			cart.CanCheckout = false
		case item.Stock < item.Quantity:
			item.Warning = fmt.Sprintf("Only %d left in stock", item.Stock)
			cart.CanCheckout = false
		}

		cart.ItemCount += item.Quantity
		cart.SubtotalCents += item.LineTotalCents
		cart.Items = append(cart.Items, item)
	}

	cart.ShippingFeeCents = pricing.ShippingFor(cart.SubtotalCents)
	cart.TotalCents = cart.SubtotalCents + cart.ShippingFeeCents
	return cart
}

// OrderItemsFromCart snapshots checkout-ready cart lines. It fails with
// ErrProductUnavailable or ErrInsufficientStock on the first bad line.
func OrderItemsFromCart(items []CartItem) ([]OrderItem, int64, error) {
	if len(items) == 0 {
		return nil, 0, ErrCartEmpty
	}

	out := make([]OrderItem, 0, len(items))
	var subtotal int64
	for _, item := range items {
		if item.ProductStatus != ProductStatusActive {
			return nil, 0, fmt.Errorf("%s: %w", item.Name, ErrProductUnavailable)
		}
		if item.Stock < item.Quantity {
			return nil, 0, fmt.Errorf("%s: %w", item.Name, ErrInsufficientStock)
		}

		line := item.UnitPriceCents * int64(item.Quantity)
		subtotal += line
		out = append(out, OrderItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Unit:           item.Unit,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
			LineTotalCents: line,
		})
	}
	return out, subtotal, nil
}

// InitialPaymentState returns the invoice and payment status of a new order.
// GCash and Maya customers attest payment with their reference number.
func InitialPaymentState(method PaymentMethod) (InvoiceStatus, PaymentStatus) {
	if method == PaymentMethodCOD {
		return InvoiceStatusUnpaid, PaymentStatusUnpaid
	}
	return InvoiceStatusPaid, PaymentStatusPaid
}

// NewOrderNumber returns an order number like HL-20260314-4F9A0C2B
func NewOrderNumber(now time.Time) string {
	return documentNumber("HL", now)
}

// NewInvoiceNumber returns an invoice number like INV-20260314-4F9A0C2B
func NewInvoiceNumber(now time.Time) string {
	return documentNumber("INV", now)
}

func documentNumber(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), suffix)
}
