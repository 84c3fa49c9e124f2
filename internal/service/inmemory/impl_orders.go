package inmemory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/service"
)

// Checkout implements OrderService.Checkout
func (s *memSvc) Checkout(ctx context.Context, userID uuid.UUID, in service.CheckoutInput) (*service.CheckoutResult, error) {
	result, err := s.checkout(userID, in)
	if err != nil {
		s.metrics.RecordCheckout(ctx, in.PaymentMethod, 0, false)
		return nil, err
	}

	t := result.Transaction
	s.metrics.RecordCheckout(ctx, string(t.PaymentMethod), t.TotalCents, true)
	slog.InfoContext(ctx, "Order placed",
		"user_id", userID,
		"order_number", t.OrderNumber,
		"payment_method", t.PaymentMethod,
		"total_cents", t.TotalCents,
		"request_id", middleware.GetReqID(ctx))
	return result, nil
}

func (s *memSvc) checkout(userID uuid.UUID, in service.CheckoutInput) (*service.CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cartItemsLocked(userID)
	if len(items) == 0 {
		return nil, service.ErrCartEmpty
	}

	addr, err := s.shippingAddressLocked(userID, in.AddressID)
	if err != nil {
		return nil, err
	}

	method, reference, err := in.Normalize()
	if err != nil {
		return nil, err
	}

	// All lines are checked before any stock moves.
	lines, subtotal, err := service.OrderItemsFromCart(items)
	if err != nil {
		return nil, err
	}
	shipping := s.pricing.Pricing().ShippingFor(subtotal)
	invoiceStatus, paymentStatus := service.InitialPaymentState(method)

	for _, line := range lines {
		s.products[line.ProductID].Stock -= line.Quantity
	}

	now := s.tick()
	t := &service.Transaction{
		ID:               uuid.New(),
		OrderNumber:      service.NewOrderNumber(now),
		UserID:           userID,
		Items:            lines,
		SubtotalCents:    subtotal,
		ShippingFeeCents: shipping,
		TotalCents:       subtotal + shipping,
		PaymentMethod:    method,
		PaymentReference: reference,
		PaymentStatus:    paymentStatus,
		Status:           service.OrderStatusPending,
		ShippingAddress:  addr.Snapshot(),
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	inv := &service.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: service.NewInvoiceNumber(now),
		TransactionID: t.ID,
		UserID:        userID,
		AmountCents:   t.TotalCents,
		Status:        invoiceStatus,
		IssuedAt:      now,
	}
	if invoiceStatus == service.InvoiceStatusPaid {
		paidAt := now
		inv.PaidAt = &paidAt
	}

	s.transactions[t.ID] = t
	s.invoices[t.ID] = inv
	delete(s.carts, userID)

	return &service.CheckoutResult{Transaction: cloneTransaction(t), Invoice: cloneInvoice(inv)}, nil
}

// shippingAddressLocked resolves the checkout address: the given one, or the
// user's primary. Caller must hold s.mu lock.
func (s *memSvc) shippingAddressLocked(userID uuid.UUID, addressID *uuid.UUID) (*service.Address, error) {
	if addressID != nil {
		a := s.findAddressLocked(userID, *addressID)
		if a == nil {
			return nil, service.ErrAddressNotFound
		}
		return a, nil
	}
	for _, a := range s.addresses[userID] {
		if a.IsPrimary {
			return a, nil
		}
	}
	return nil, service.ErrAddressRequired
}

// ListMyTransactions implements OrderService.ListMyTransactions
func (s *memSvc) ListMyTransactions(
	_ context.Context,
	userID uuid.UUID,
	opts ...service.Option,
) (*service.TransactionPage, error) {
	return s.listTransactions(&userID, opts...)
}

// listTransactions lists orders newest first. A nil userID lists every user's orders.
func (s *memSvc) listTransactions(userID *uuid.UUID, opts ...service.Option) (*service.TransactionPage, error) {
	options, err := service.ApplyOptions[service.ListTransactionsOptions](opts...)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(options.Search)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*service.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		switch {
		case userID != nil && t.UserID != *userID:
		case options.Status != nil && t.Status != *options.Status:
		case options.PaymentMethod != nil && t.PaymentMethod != *options.PaymentMethod:
		case search != "" && !strings.Contains(strings.ToLower(t.OrderNumber), search):
		default:
			matched = append(matched, t)
		}
	}

	rows, next, err := cursorPage(matched, func(t *service.Transaction) (time.Time, uuid.UUID) {
		return t.CreatedAt, t.ID
	}, options.Cursor, options.Limit)
	if err != nil {
		return nil, err
	}

	page := &service.TransactionPage{
		Transactions: make([]service.Transaction, 0, len(rows)),
		NextCursor:   next,
	}
	for _, t := range rows {
		page.Transactions = append(page.Transactions, *cloneTransaction(t))
	}
	return page, nil
}

// transactionLocked returns an order. A non-nil owner must match. Caller must hold s.mu lock.
func (s *memSvc) transactionLocked(transactionID uuid.UUID, owner *uuid.UUID) (*service.Transaction, error) {
	t, ok := s.transactions[transactionID]
	if !ok || (owner != nil && t.UserID != *owner) {
		return nil, service.ErrTransactionNotFound
	}
	return t, nil
}

// GetMyTransaction implements OrderService.GetMyTransaction
func (s *memSvc) GetMyTransaction(_ context.Context, userID, transactionID uuid.UUID) (*service.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.transactionLocked(transactionID, &userID)
	if err != nil {
		return nil, err
	}
	return cloneTransaction(t), nil
}

// GetMyInvoice implements OrderService.GetMyInvoice
func (s *memSvc) GetMyInvoice(_ context.Context, userID, transactionID uuid.UUID) (*service.Invoice, error) {
	return s.getInvoice(transactionID, &userID)
}

func (s *memSvc) getInvoice(transactionID uuid.UUID, owner *uuid.UUID) (*service.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[transactionID]
	if !ok || (owner != nil && inv.UserID != *owner) {
		return nil, service.ErrInvoiceNotFound
	}
	return cloneInvoice(inv), nil
}

// CancelMyTransaction implements OrderService.CancelMyTransaction
func (s *memSvc) CancelMyTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*service.Transaction, error) {
	updated, err := func() (*service.Transaction, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		current, err := s.transactionLocked(transactionID, &userID)
		if err != nil {
			return nil, err
		}
		if current.Status != service.OrderStatusPending {
			return nil, service.ErrOrderNotCancellable
		}
		return s.applyStatusChangeLocked(current, service.OrderStatusCancelled)
	}()
	if err != nil {
		return nil, err
	}

	s.metrics.RecordCancellation(ctx, "customer")
	slog.InfoContext(ctx, "Order cancelled by customer",
		"user_id", userID,
		"order_number", updated.OrderNumber,
		"request_id", middleware.GetReqID(ctx))
	return updated, nil
}

// applyStatusChangeLocked moves t to status with its side effects. Caller must hold s.mu write lock.
func (s *memSvc) applyStatusChangeLocked(t *service.Transaction, status service.OrderStatus) (*service.Transaction, error) {
	change, err := service.PlanStatusChange(t, status)
	if err != nil {
		return nil, err
	}

	if change.Restock {
		for _, item := range t.Items {
			p, ok := s.products[item.ProductID]
			if !ok {
				return nil, fmt.Errorf("failed to restock %s: %w", item.Name, service.ErrProductNotFound)
			}
			p.Stock += item.Quantity
		}
	}

	now := s.tick()
	t.Status = status
	t.PaymentStatus = change.PaymentStatus
	t.UpdatedAt = now
	if change.SetCancelled {
		t.CancelledAt = &now
	}
	if change.SetDelivered {
		t.DeliveredAt = &now
	}

	if change.InvoiceStatus != "" {
		inv, ok := s.invoices[t.ID]
		if !ok {
			return nil, service.ErrInvoiceNotFound
		}
		inv.Status = change.InvoiceStatus
		if change.InvoiceStatus == service.InvoiceStatusPaid && inv.PaidAt == nil {
			paidAt := now
			inv.PaidAt = &paidAt
		}
	}
	return cloneTransaction(t), nil
}
