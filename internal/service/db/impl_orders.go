package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/internal/db/sqlc"
	"github.com/harvestlink/harvestlink/internal/otel"
	"github.com/harvestlink/harvestlink/internal/service"
)

// Checkout implements OrderService.Checkout
func (s *dbService) Checkout(ctx context.Context, userID uuid.UUID, in service.CheckoutInput) (*service.CheckoutResult, error) {
	ctx, span := s.startSpan(ctx, "dbService.Checkout",
		trace.WithAttributes(otel.AttrUserID.String(userID.String())))
	defer span.End()

	var (
		created *service.Transaction
		invoice *service.Invoice
	)
	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		items, err := s.cartItems(ctx, q, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return service.ErrCartEmpty
		}

		addr, err := s.shippingAddress(ctx, q, userID, in.AddressID)
		if err != nil {
			return err
		}

		method, reference, err := in.Normalize()
		if err != nil {
			return err
		}

		lines, subtotal, err := service.OrderItemsFromCart(items)
		if err != nil {
			return err
		}
		shipping := s.pricing.Pricing().ShippingFor(subtotal)
		invoiceStatus, paymentStatus := service.InitialPaymentState(method)

		snapshot, err := json.Marshal(addr.Snapshot())
		if err != nil {
			return fmt.Errorf("failed to encode shipping address: %w", err)
		}

		now := time.Now()
		row, err := q.CreateTransaction(ctx, sqlc.CreateTransactionParams{
			OrderNumber:      service.NewOrderNumber(now),
			UserID:           userID,
			SubtotalCents:    subtotal,
			ShippingFeeCents: shipping,
			TotalCents:       subtotal + shipping,
			PaymentMethod:    string(method),
			PaymentReference: reference,
			PaymentStatus:    string(paymentStatus),
			ShippingAddress:  snapshot,
			Notes:            in.Notes,
		})
		if err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		itemRows := make([]sqlc.TransactionItem, 0, len(lines))
		for i, line := range lines {
			n, err := q.DecrementStock(ctx, sqlc.DecrementStockParams{Quantity: int32(line.Quantity), ID: line.ProductID})
			if err != nil {
				return fmt.Errorf("failed to decrement stock: %w", err)
			}
			if n == 0 {
				return fmt.Errorf("%s: %w", line.Name, service.ErrInsufficientStock)
			}

			item := sqlc.CreateTransactionItemParams{
				TransactionID:  row.ID,
				Position:       int32(i),
				ProductID:      line.ProductID,
				Name:           line.Name,
				Unit:           line.Unit,
				UnitPriceCents: line.UnitPriceCents,
				Quantity:       int32(line.Quantity),
				LineTotalCents: line.LineTotalCents,
			}
			if err := q.CreateTransactionItem(ctx, item); err != nil {
				return fmt.Errorf("failed to create transaction item: %w", err)
			}
			itemRows = append(itemRows, sqlc.TransactionItem(item))
		}

		inv, err := q.CreateInvoice(ctx, sqlc.CreateInvoiceParams{
			InvoiceNumber: service.NewInvoiceNumber(now),
			TransactionID: row.ID,
			UserID:        userID,
			AmountCents:   row.TotalCents,
			Status:        string(invoiceStatus),
		})
		if err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		if err := q.ClearCart(ctx, userID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}

		created, err = toTransaction(row, itemRows)
		if err != nil {
			return err
		}
		invoice = toInvoice(inv)
		return nil
	})
	if err != nil {
		s.metrics.RecordCheckout(ctx, in.PaymentMethod, 0, false)
		recordError(span, err)
		return nil, err
	}

	s.metrics.RecordCheckout(ctx, string(created.PaymentMethod), created.TotalCents, true)
	span.SetAttributes(
		otel.AttrOrderID.String(created.ID.String()),
		otel.AttrOrderNumber.String(created.OrderNumber),
		otel.AttrPaymentMethod.String(string(created.PaymentMethod)),
	)
	slog.InfoContext(ctx, "Order placed",
		"user_id", userID,
		"order_number", created.OrderNumber,
		"payment_method", created.PaymentMethod,
		"total_cents", created.TotalCents,
		"request_id", middleware.GetReqID(ctx))

	return &service.CheckoutResult{Transaction: created, Invoice: invoice}, nil
}

// ListMyTransactions implements OrderService.ListMyTransactions
func (s *dbService) ListMyTransactions(
	ctx context.Context,
	userID uuid.UUID,
	opts ...service.Option,
) (*service.TransactionPage, error) {
	ctx, span := s.startSpan(ctx, "dbService.ListMyTransactions",
		trace.WithAttributes(otel.AttrUserID.String(userID.String())))
	defer span.End()

	page, err := s.listTransactions(ctx, &userID, opts...)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(page.Transactions)))
	return page, nil
}

// listTransactions lists orders newest first. A nil userID lists every user's orders.
func (s *dbService) listTransactions(
	ctx context.Context,
	userID *uuid.UUID,
	opts ...service.Option,
) (*service.TransactionPage, error) {
	options, err := service.ApplyOptions[service.ListTransactionsOptions](opts...)
	if err != nil {
		return nil, err
	}
	cursor, err := service.DecodeCursor(options.Cursor)
	if err != nil {
		return nil, err
	}

	params := sqlc.ListTransactionsParams{
		UserID: userID,
		Search: likePattern(options.Search),
		Size:   int32(options.Limit + 1),
	}
	if options.Status != nil {
		status := string(*options.Status)
		params.Status = &status
	}
	if options.PaymentMethod != nil {
		method := string(*options.PaymentMethod)
		params.PaymentMethod = &method
	}
	if cursor != nil {
		params.CursorCreatedAt = &cursor.CreatedAt
		params.CursorID = &cursor.ID
	}

	q := s.queries()
	rows, err := q.ListTransactions(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	page := &service.TransactionPage{}
	if len(rows) > options.Limit {
		rows = rows[:options.Limit]
		last := rows[len(rows)-1]
		page.NextCursor = service.EncodeCursor(last.CreatedAt, last.ID)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	itemRows, err := q.ListTransactionItemsForTransactions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction items: %w", err)
	}
	items := groupItems(itemRows)

	page.Transactions = make([]service.Transaction, 0, len(rows))
	for _, r := range rows {
		t, err := toTransaction(r, items[r.ID])
		if err != nil {
			return nil, err
		}
		page.Transactions = append(page.Transactions, *t)
	}
	return page, nil
}

// loadTransaction reads an order with its items. A non-nil owner must match.
func (*dbService) loadTransaction(
	ctx context.Context,
	q *sqlc.Queries,
	transactionID uuid.UUID,
	owner *uuid.UUID,
	forUpdate bool,
) (*service.Transaction, error) {
	get := q.GetTransaction
	if forUpdate {
		get = q.GetTransactionForUpdate
	}

	row, err := get(ctx, transactionID)
	if err != nil {
		return nil, notFound(err, service.ErrTransactionNotFound, "get transaction")
	}
	if owner != nil && row.UserID != *owner {
		return nil, service.ErrTransactionNotFound
	}

	items, err := q.ListTransactionItems(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction items: %w", err)
	}
	return toTransaction(row, items)
}

// GetMyTransaction implements OrderService.GetMyTransaction
func (s *dbService) GetMyTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*service.Transaction, error) {
	ctx, span := s.startSpan(ctx, "dbService.GetMyTransaction",
		trace.WithAttributes(
			otel.AttrUserID.String(userID.String()),
			otel.AttrOrderID.String(transactionID.String()),
		))
	defer span.End()

	t, err := s.loadTransaction(ctx, s.queries(), transactionID, &userID, false)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return t, nil
}

// GetMyInvoice implements OrderService.GetMyInvoice
func (s *dbService) GetMyInvoice(ctx context.Context, userID, transactionID uuid.UUID) (*service.Invoice, error) {
	ctx, span := s.startSpan(ctx, "dbService.GetMyInvoice",
		trace.WithAttributes(
			otel.AttrUserID.String(userID.String()),
			otel.AttrOrderID.String(transactionID.String()),
		))
	defer span.End()

	inv, err := s.getInvoice(ctx, transactionID, &userID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return inv, nil
}

func (s *dbService) getInvoice(ctx context.Context, transactionID uuid.UUID, owner *uuid.UUID) (*service.Invoice, error) {
	row, err := s.queries().GetInvoiceByTransaction(ctx, transactionID)
	if err != nil {
		return nil, notFound(err, service.ErrInvoiceNotFound, "get invoice")
	}
	if owner != nil && row.UserID != *owner {
		return nil, service.ErrInvoiceNotFound
	}
	return toInvoice(row), nil
}

// CancelMyTransaction implements OrderService.CancelMyTransaction
func (s *dbService) CancelMyTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*service.Transaction, error) {
	ctx, span := s.startSpan(ctx, "dbService.CancelMyTransaction",
		trace.WithAttributes(
			otel.AttrUserID.String(userID.String()),
			otel.AttrOrderID.String(transactionID.String()),
		))
	defer span.End()

	var updated *service.Transaction
	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		current, err := s.loadTransaction(ctx, q, transactionID, &userID, true)
		if err != nil {
			return err
		}
		if current.Status != service.OrderStatusPending {
			return service.ErrOrderNotCancellable
		}

		updated, err = s.applyStatusChange(ctx, q, current, service.OrderStatusCancelled)
		return err
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	s.metrics.RecordCancellation(ctx, "customer")
	slog.InfoContext(ctx, "Order cancelled by customer",
		"user_id", userID,
		"order_number", updated.OrderNumber,
		"request_id", middleware.GetReqID(ctx))
	return updated, nil
}

// applyStatusChange moves current to status with its side effects: restocking,
// payment status and invoice status.
func (*dbService) applyStatusChange(
	ctx context.Context,
	q *sqlc.Queries,
	current *service.Transaction,
	status service.OrderStatus,
) (*service.Transaction, error) {
	change, err := service.PlanStatusChange(current, status)
	if err != nil {
		return nil, err
	}

	if change.Restock {
		for _, item := range current.Items {
			err := q.IncrementStock(ctx, sqlc.IncrementStockParams{Quantity: int32(item.Quantity), ID: item.ProductID})
			if err != nil {
				return nil, fmt.Errorf("failed to restock %s: %w", item.Name, err)
			}
		}
	}

	row, err := q.UpdateTransactionStatus(ctx, sqlc.UpdateTransactionStatusParams{
		Status:        string(status),
		PaymentStatus: string(change.PaymentStatus),
		ID:            current.ID,
	})
	if err != nil {
		return nil, notFound(err, service.ErrTransactionNotFound, "update transaction status")
	}

	if change.InvoiceStatus != "" {
		_, err := q.UpdateInvoiceStatus(ctx, sqlc.UpdateInvoiceStatusParams{
			Status:        string(change.InvoiceStatus),
			TransactionID: current.ID,
		})
		if err != nil {
			return nil, notFound(err, service.ErrInvoiceNotFound, "update invoice status")
		}
	}

	items, err := q.ListTransactionItems(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction items: %w", err)
	}
	return toTransaction(row, items)
}
