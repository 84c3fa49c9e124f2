package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/internal/db/sqlc"
	"github.com/harvestlink/harvestlink/internal/otel"
	"github.com/harvestlink/harvestlink/internal/service"
)

const productsSlugKey = "products_slug_key"

// ListUsers implements AdminService.ListUsers
func (s *dbService) ListUsers(ctx context.Context, opts ...service.Option) (*service.UserPage, error) {
	ctx, span := s.startSpan(ctx, "dbService.ListUsers")
	defer span.End()

	page, err := s.listUsers(ctx, opts...)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(page.Users)))
	return page, nil
}

func (s *dbService) listUsers(ctx context.Context, opts ...service.Option) (*service.UserPage, error) {
	options, err := service.ApplyOptions[service.ListUsersOptions](opts...)
	if err != nil {
		return nil, err
	}
	cursor, err := service.DecodeCursor(options.Cursor)
	if err != nil {
		return nil, err
	}

	params := sqlc.ListUsersParams{
		Search: likePattern(options.Search),
		Size:   int32(options.Limit + 1),
	}
	if options.Role != nil {
		role := string(*options.Role)
		params.Role = &role
	}
	if options.Status != nil {
		status := string(*options.Status)
		params.Status = &status
	}
	if cursor != nil {
		params.CursorCreatedAt = &cursor.CreatedAt
		params.CursorID = &cursor.ID
	}

	rows, err := s.queries().ListUsers(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	page := &service.UserPage{}
	if len(rows) > options.Limit {
		rows = rows[:options.Limit]
		last := rows[len(rows)-1]
		page.NextCursor = service.EncodeCursor(last.CreatedAt, last.ID)
	}

	page.Users = make([]service.User, 0, len(rows))
	for _, r := range rows {
		page.Users = append(page.Users, *toUser(r))
	}
	return page, nil
}

// UpdateUser implements AdminService.UpdateUser
func (s *dbService) UpdateUser(ctx context.Context, actorID, userID uuid.UUID, in service.UserUpdate) (*service.User, error) {
	ctx, span := s.startSpan(ctx, "dbService.UpdateUser",
		trace.WithAttributes(otel.AttrUserID.String(userID.String())))
	defer span.End()

	if err := in.Normalize(); err != nil {
		recordError(span, err)
		return nil, err
	}
	if actorID == userID &&
		((in.Role != nil && *in.Role != service.RoleAdmin) ||
			(in.Status != nil && *in.Status != service.UserStatusActive)) {
		recordError(span, service.ErrSelfModification)
		return nil, service.ErrSelfModification
	}

	var updated sqlc.User
	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		current, err := q.GetUser(ctx, userID)
		if err != nil {
			return notFound(err, service.ErrUserNotFound, "get user")
		}

		params := sqlc.UpdateUserParams{
			FirstName: current.FirstName,
			LastName:  current.LastName,
			Phone:     current.Phone,
			Role:      current.Role,
			Status:    current.Status,
			ID:        userID,
		}
		if in.FirstName != nil {
			params.FirstName = *in.FirstName
		}
		if in.LastName != nil {
			params.LastName = *in.LastName
		}
		if in.Phone != nil {
			params.Phone = strings.TrimSpace(*in.Phone)
		}
		if in.Role != nil {
			params.Role = string(*in.Role)
		}
		if in.Status != nil {
			params.Status = string(*in.Status)
		}

		updated, err = q.UpdateUser(ctx, params)
		if err != nil {
			return notFound(err, service.ErrUserNotFound, "update user")
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	slog.InfoContext(ctx, "User updated by administrator",
		"actor_id", actorID,
		"user_id", userID,
		"role", updated.Role,
		"status", updated.Status,
		"request_id", middleware.GetReqID(ctx))
	return toUser(updated), nil
}

// DeleteUser implements AdminService.DeleteUser
func (s *dbService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "dbService.DeleteUser",
		trace.WithAttributes(otel.AttrUserID.String(userID.String())))
	defer span.End()

	if actorID == userID {
		recordError(span, service.ErrSelfModification)
		return service.ErrSelfModification
	}

	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		orders, err := q.CountTransactionsByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to count transactions: %w", err)
		}
		if orders > 0 {
			return service.ErrUserHasTransactions
		}

		n, err := q.DeleteUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if n == 0 {
			return service.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return err
	}

	slog.InfoContext(ctx, "User deleted",
		"actor_id", actorID,
		"user_id", userID,
		"request_id", middleware.GetReqID(ctx))
	return nil
}

// AdminListProducts implements AdminService.AdminListProducts
func (s *dbService) AdminListProducts(ctx context.Context, opts ...service.Option) (*service.ProductPage, error) {
	ctx, span := s.startSpan(ctx, "dbService.AdminListProducts")
	defer span.End()

	options, err := service.ApplyOptions[service.ListProductsOptions](opts...)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	page, err := s.listProducts(ctx, options, false)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(page.Products)))
	return page, nil
}

// AdminGetProduct implements AdminService.AdminGetProduct
func (s *dbService) AdminGetProduct(ctx context.Context, productID uuid.UUID) (*service.Product, error) {
	ctx, span := s.startSpan(ctx, "dbService.AdminGetProduct",
		trace.WithAttributes(otel.AttrProductID.String(productID.String())))
	defer span.End()

	row, err := s.queries().GetProduct(ctx, productID)
	if err != nil {
		err = notFound(err, service.ErrProductNotFound, "get product")
		recordError(span, err)
		return nil, err
	}
	p := toProduct(row)
	return &p, nil
}

// CreateProduct implements AdminService.CreateProduct
func (s *dbService) CreateProduct(ctx context.Context, in service.ProductInput) (*service.Product, error) {
	ctx, span := s.startSpan(ctx, "dbService.CreateProduct")
	defer span.End()

	if err := in.Normalize(); err != nil {
		recordError(span, err)
		return nil, err
	}

	row, err := s.queries().CreateProduct(ctx, sqlc.CreateProductParams{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Category:    in.Category,
		Tags:        nonNil(in.Tags),
		PriceCents:  in.PriceCents,
		Unit:        in.Unit,
		Stock:       int32(in.Stock),
		ImageUrl:    in.ImageURL,
		FarmName:    in.FarmName,
		Status:      string(in.Status),
	})
	if err != nil {
		if isUniqueViolation(err, productsSlugKey) {
			err = service.ErrSlugTaken
		} else {
			err = fmt.Errorf("failed to create product: %w", err)
		}
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(otel.AttrProductID.String(row.ID.String()), otel.AttrProductSlug.String(row.Slug))
	slog.InfoContext(ctx, "Product created",
		"product_id", row.ID,
		"slug", row.Slug,
		"request_id", middleware.GetReqID(ctx))
	p := toProduct(row)
	return &p, nil
}

// UpdateProduct implements AdminService.UpdateProduct
func (s *dbService) UpdateProduct(ctx context.Context, productID uuid.UUID, in service.ProductInput) (*service.Product, error) {
	ctx, span := s.startSpan(ctx, "dbService.UpdateProduct",
		trace.WithAttributes(otel.AttrProductID.String(productID.String())))
	defer span.End()

	if err := in.Normalize(); err != nil {
		recordError(span, err)
		return nil, err
	}

	row, err := s.queries().UpdateProduct(ctx, sqlc.UpdateProductParams{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Category:    in.Category,
		Tags:        nonNil(in.Tags),
		PriceCents:  in.PriceCents,
		Unit:        in.Unit,
		Stock:       int32(in.Stock),
		ImageUrl:    in.ImageURL,
		FarmName:    in.FarmName,
		Status:      string(in.Status),
		ID:          productID,
	})
	if err != nil {
		if isUniqueViolation(err, productsSlugKey) {
			err = service.ErrSlugTaken
		} else {
			err = notFound(err, service.ErrProductNotFound, "update product")
		}
		recordError(span, err)
		return nil, err
	}

	p := toProduct(row)
	return &p, nil
}

// DeleteProduct implements AdminService.DeleteProduct
func (s *dbService) DeleteProduct(ctx context.Context, productID uuid.UUID) (bool, error) {
	ctx, span := s.startSpan(ctx, "dbService.DeleteProduct",
		trace.WithAttributes(otel.AttrProductID.String(productID.String())))
	defer span.End()

	var archived bool
	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		ordered, err := q.ProductHasOrders(ctx, productID)
		if err != nil {
			return fmt.Errorf("failed to check product orders: %w", err)
		}

		if ordered {
			_, err := q.SetProductStatus(ctx, sqlc.SetProductStatusParams{
				Status: string(service.ProductStatusArchived),
				ID:     productID,
			})
			if err != nil {
				return notFound(err, service.ErrProductNotFound, "archive product")
			}
			archived = true
			return nil
		}

		n, err := q.DeleteProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		if n == 0 {
			return service.ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return false, err
	}

	slog.InfoContext(ctx, "Product removed",
		"product_id", productID,
		"archived", archived,
		"request_id", middleware.GetReqID(ctx))
	return archived, nil
}

// SetProductImage implements AdminService.SetProductImage
func (s *dbService) SetProductImage(ctx context.Context, productID uuid.UUID, imageURL string) (*service.Product, error) {
	ctx, span := s.startSpan(ctx, "dbService.SetProductImage",
		trace.WithAttributes(otel.AttrProductID.String(productID.String())))
	defer span.End()

	row, err := s.queries().SetProductImage(ctx, sqlc.SetProductImageParams{ImageUrl: imageURL, ID: productID})
	if err != nil {
		err = notFound(err, service.ErrProductNotFound, "set product image")
		recordError(span, err)
		return nil, err
	}
	p := toProduct(row)
	return &p, nil
}

// AdminListTransactions implements AdminService.AdminListTransactions
func (s *dbService) AdminListTransactions(ctx context.Context, opts ...service.Option) (*service.TransactionPage, error) {
	ctx, span := s.startSpan(ctx, "dbService.AdminListTransactions")
	defer span.End()

	page, err := s.listTransactions(ctx, nil, opts...)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(page.Transactions)))
	return page, nil
}

// AdminGetTransaction implements AdminService.AdminGetTransaction
func (s *dbService) AdminGetTransaction(ctx context.Context, transactionID uuid.UUID) (*service.Transaction, error) {
	ctx, span := s.startSpan(ctx, "dbService.AdminGetTransaction",
		trace.WithAttributes(otel.AttrOrderID.String(transactionID.String())))
	defer span.End()

	t, err := s.loadTransaction(ctx, s.queries(), transactionID, nil, false)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return t, nil
}

// AdminGetInvoice implements AdminService.AdminGetInvoice
func (s *dbService) AdminGetInvoice(ctx context.Context, transactionID uuid.UUID) (*service.Invoice, error) {
	ctx, span := s.startSpan(ctx, "dbService.AdminGetInvoice",
		trace.WithAttributes(otel.AttrOrderID.String(transactionID.String())))
	defer span.End()

	inv, err := s.getInvoice(ctx, transactionID, nil)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return inv, nil
}

// UpdateTransactionStatus implements AdminService.UpdateTransactionStatus
func (s *dbService) UpdateTransactionStatus(
	ctx context.Context,
	transactionID uuid.UUID,
	status service.OrderStatus,
) (*service.Transaction, error) {
	ctx, span := s.startSpan(ctx, "dbService.UpdateTransactionStatus",
		trace.WithAttributes(
			otel.AttrOrderID.String(transactionID.String()),
			otel.AttrOrderStatus.String(string(status)),
		))
	defer span.End()

	status, err := service.ParseOrderStatus(string(status))
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	var (
		updated *service.Transaction
		from    service.OrderStatus
	)
	err = s.inTx(ctx, func(q *sqlc.Queries) error {
		current, err := s.loadTransaction(ctx, q, transactionID, nil, true)
		if err != nil {
			return err
		}
		from = current.Status

		updated, err = s.applyStatusChange(ctx, q, current, status)
		return err
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	if status == service.OrderStatusCancelled {
		s.metrics.RecordCancellation(ctx, "admin")
	}
	slog.InfoContext(ctx, "Order status changed",
		"order_number", updated.OrderNumber,
		"from", from,
		"to", status,
		"request_id", middleware.GetReqID(ctx))
	return updated, nil
}

// ListContactMessages implements AdminService.ListContactMessages
func (s *dbService) ListContactMessages(ctx context.Context, opts ...service.Option) (*service.ContactMessagePage, error) {
	ctx, span := s.startSpan(ctx, "dbService.ListContactMessages")
	defer span.End()

	page, err := s.listContactMessages(ctx, opts...)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(page.Messages)))
	return page, nil
}

func (s *dbService) listContactMessages(ctx context.Context, opts ...service.Option) (*service.ContactMessagePage, error) {
	options, err := service.ApplyOptions[service.ListContactMessagesOptions](opts...)
	if err != nil {
		return nil, err
	}
	cursor, err := service.DecodeCursor(options.Cursor)
	if err != nil {
		return nil, err
	}

	params := sqlc.ListContactMessagesParams{Size: int32(options.Limit + 1)}
	if options.Status != nil {
		status := string(*options.Status)
		params.Status = &status
	}
	if cursor != nil {
		params.CursorCreatedAt = &cursor.CreatedAt
		params.CursorID = &cursor.ID
	}

	rows, err := s.queries().ListContactMessages(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	page := &service.ContactMessagePage{}
	if len(rows) > options.Limit {
		rows = rows[:options.Limit]
		last := rows[len(rows)-1]
		page.NextCursor = service.EncodeCursor(last.CreatedAt, last.ID)
	}

	page.Messages = make([]service.ContactMessage, 0, len(rows))
	for _, r := range rows {
		page.Messages = append(page.Messages, *toContactMessage(r))
	}
	return page, nil
}

// UpdateContactMessageStatus implements AdminService.UpdateContactMessageStatus
func (s *dbService) UpdateContactMessageStatus(
	ctx context.Context,
	messageID uuid.UUID,
	status service.ContactStatus,
) (*service.ContactMessage, error) {
	ctx, span := s.startSpan(ctx, "dbService.UpdateContactMessageStatus")
	defer span.End()

	if err := service.ValidateContactStatus(status); err != nil {
		recordError(span, err)
		return nil, err
	}

	row, err := s.queries().UpdateContactMessageStatus(ctx, sqlc.UpdateContactMessageStatusParams{
		Status: string(status),
		ID:     messageID,
	})
	if err != nil {
		err = notFound(err, service.ErrContactMessageNotFound, "update contact message")
		recordError(span, err)
		return nil, err
	}
	return toContactMessage(row), nil
}

// Dashboard implements AdminService.Dashboard
func (s *dbService) Dashboard(ctx context.Context, lowStockThreshold int) (*service.Dashboard, error) {
	ctx, span := s.startSpan(ctx, "dbService.Dashboard")
	defer span.End()

	if lowStockThreshold < 0 {
		err := service.NewValidationError("low_stock_threshold", "must not be negative")
		recordError(span, err)
		return nil, err
	}

	d, err := s.dashboard(ctx, lowStockThreshold)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return d, nil
}

func (s *dbService) dashboard(ctx context.Context, lowStockThreshold int) (*service.Dashboard, error) {
	q := s.queries()

	users, err := q.CountUsersSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	products, err := q.CountProductsSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	byStatus, err := q.CountTransactionsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	revenue, err := q.SumRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	newMessages, err := q.CountContactMessagesByStatus(ctx, string(service.ContactStatusNew))
	if err != nil {
		return nil, fmt.Errorf("failed to count contact messages: %w", err)
	}
	lowStock, err := q.ListLowStockProducts(ctx, sqlc.ListLowStockProductsParams{
		Threshold: int32(lowStockThreshold),
		Size:      dashboardListSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	top, err := q.ListTopProducts(ctx, dashboardListSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list top products: %w", err)
	}

	d := &service.Dashboard{
		Users: service.UserCounts{
			Total:     users.Total,
			Customers: users.Customers,
			Admins:    users.Admins,
			Suspended: users.Suspended,
		},
		Products: service.ProductCounts{
			Total:    products.Total,
			Active:   products.Active,
			Archived: products.Archived,
		},
		Orders: map[service.OrderStatus]int64{
			service.OrderStatusPending:    0,
			service.OrderStatusProcessing: 0,
			service.OrderStatusShipped:    0,
			service.OrderStatusDelivered:  0,
			service.OrderStatusCancelled:  0,
		},
		RevenueCents: revenue,
		NewMessages:  newMessages,
		LowStock:     toProducts(lowStock),
		TopProducts:  make([]service.TopProduct, 0, len(top)),
	}
	for _, r := range byStatus {
		d.Orders[service.OrderStatus(r.Status)] = r.Count
	}
	for _, r := range top {
		d.TopProducts = append(d.TopProducts, toTopProduct(r))
	}
	return d, nil
}

// RefreshTopProducts implements AdminService.RefreshTopProducts
func (s *dbService) RefreshTopProducts(ctx context.Context, window time.Duration, size int) ([]service.TopProduct, error) {
	ctx, span := s.startSpan(ctx, "dbService.RefreshTopProducts")
	defer span.End()

	if window <= 0 {
		err := service.NewValidationError("window", "must be positive")
		recordError(span, err)
		return nil, err
	}
	if size < 1 || size > service.MaxPageSize {
		err := service.NewValidationError("size", "must be between 1 and %d", service.MaxPageSize)
		recordError(span, err)
		return nil, err
	}

	now := time.Now().UTC()
	var rows []sqlc.ListTopProductsRow
	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		ranked, err := q.ComputeTopProducts(ctx, sqlc.ComputeTopProductsParams{
			Since: now.Add(-window),
			Size:  int32(size),
		})
		if err != nil {
			return fmt.Errorf("failed to compute top products: %w", err)
		}

		if err := q.DeleteTopProducts(ctx); err != nil {
			return fmt.Errorf("failed to clear top products: %w", err)
		}
		for i, r := range ranked {
			err := q.InsertTopProduct(ctx, sqlc.InsertTopProductParams{
				ProductID:    r.ProductID,
				UnitsSold:    r.UnitsSold,
				RevenueCents: r.RevenueCents,
				Rank:         int32(i + 1),
				ComputedAt:   now,
			})
			if err != nil {
				return fmt.Errorf("failed to store top product: %w", err)
			}
		}

		rows, err = q.ListTopProducts(ctx, int32(size))
		if err != nil {
			return fmt.Errorf("failed to list top products: %w", err)
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	out := make([]service.TopProduct, 0, len(rows))
	for _, r := range rows {
		out = append(out, toTopProduct(r))
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(out)))
	return out, nil
}
