package database

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/db/sqlc"
	"github.com/harvestlink/harvestlink/internal/service"
)

func toUser(u sqlc.User) *service.User {
	return &service.User{
		ID:                u.ID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Email:             u.Email,
		Phone:             u.Phone,
		PasswordHash:      u.PasswordHash,
		Role:              service.Role(u.Role),
		Status:            service.UserStatus(u.Status),
		PasswordChangedAt: u.PasswordChangedAt,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func toProduct(p sqlc.Product) service.Product {
	return service.Product{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Category:    p.Category,
		Tags:        nonNil(p.Tags),
		PriceCents:  p.PriceCents,
		Unit:        p.Unit,
		Stock:       int(p.Stock),
		ImageURL:    p.ImageUrl,
		FarmName:    p.FarmName,
		Status:      service.ProductStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProducts(rows []sqlc.Product) []service.Product {
	out := make([]service.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProduct(r))
	}
	return out
}

func toCartItem(r sqlc.ListCartItemsRow) service.CartItem {
	return service.CartItem{
		ProductID:      r.ProductID,
		Name:           r.Name,
		Slug:           r.Slug,
		Unit:           r.Unit,
		ImageURL:       r.ImageUrl,
		UnitPriceCents: r.PriceCents,
		Quantity:       int(r.Quantity),
		Stock:          int(r.Stock),
		ProductStatus:  service.ProductStatus(r.Status),
		AddedAt:        r.AddedAt,
	}
}

func toAddress(a sqlc.Address) *service.Address {
	return &service.Address{
		ID:            a.ID,
		UserID:        a.UserID,
		Label:         a.Label,
		RecipientName: a.RecipientName,
		Phone:         a.Phone,
		Street:        a.Street,
		Barangay:      a.Barangay,
		City:          a.City,
		Province:      a.Province,
		PostalCode:    a.PostalCode,
		IsPrimary:     a.IsPrimary,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toOrderItems(rows []sqlc.TransactionItem) []service.OrderItem {
	out := make([]service.OrderItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, service.OrderItem{
			ProductID:      r.ProductID,
			Name:           r.Name,
			Unit:           r.Unit,
			UnitPriceCents: r.UnitPriceCents,
			Quantity:       int(r.Quantity),
			LineTotalCents: r.LineTotalCents,
		})
	}
	return out
}

func toTransaction(t sqlc.Transaction, items []sqlc.TransactionItem) (*service.Transaction, error) {
	var addr service.ShippingAddress
	if len(t.ShippingAddress) > 0 {
		if err := json.Unmarshal(t.ShippingAddress, &addr); err != nil {
			return nil, fmt.Errorf("failed to decode shipping address of %s: %w", t.OrderNumber, err)
		}
	}

	return &service.Transaction{
		ID:               t.ID,
		OrderNumber:      t.OrderNumber,
		UserID:           t.UserID,
		Items:            toOrderItems(items),
		SubtotalCents:    t.SubtotalCents,
		ShippingFeeCents: t.ShippingFeeCents,
		TotalCents:       t.TotalCents,
		PaymentMethod:    service.PaymentMethod(t.PaymentMethod),
		PaymentReference: t.PaymentReference,
		PaymentStatus:    service.PaymentStatus(t.PaymentStatus),
		Status:           service.OrderStatus(t.Status),
		ShippingAddress:  addr,
		Notes:            t.Notes,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
		CancelledAt:      t.CancelledAt,
		DeliveredAt:      t.DeliveredAt,
	}, nil
}

// groupItems splits order lines by transaction, keeping their position order
func groupItems(rows []sqlc.TransactionItem) map[uuid.UUID][]sqlc.TransactionItem {
	grouped := make(map[uuid.UUID][]sqlc.TransactionItem)
	for _, r := range rows {
		grouped[r.TransactionID] = append(grouped[r.TransactionID], r)
	}
	return grouped
}

func toInvoice(i sqlc.Invoice) *service.Invoice {
	return &service.Invoice{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		TransactionID: i.TransactionID,
		UserID:        i.UserID,
		AmountCents:   i.AmountCents,
		Status:        service.InvoiceStatus(i.Status),
		IssuedAt:      i.IssuedAt,
		PaidAt:        i.PaidAt,
	}
}

func toContactMessage(m sqlc.ContactMessage) *service.ContactMessage {
	return &service.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    service.ContactStatus(m.Status),
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toTopProduct(r sqlc.ListTopProductsRow) service.TopProduct {
	return service.TopProduct{
		ProductID:    r.ProductID,
		Name:         r.Name,
		Slug:         r.Slug,
		ImageURL:     r.ImageUrl,
		PriceCents:   r.PriceCents,
		UnitsSold:    r.UnitsSold,
		RevenueCents: r.RevenueCents,
		Rank:         int(r.Rank),
		ComputedAt:   r.ComputedAt,
	}
}
