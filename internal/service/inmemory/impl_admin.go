package inmemory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/service"
)

const dashboardListSize = 10

// ListUsers implements AdminService.ListUsers
func (s *memSvc) ListUsers(_ context.Context, opts ...service.Option) (*service.UserPage, error) {
	options, err := service.ApplyOptions[service.ListUsersOptions](opts...)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(options.Search)

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*service.User, 0, len(s.users))
	for _, u := range s.users {
		switch {
		case options.Role != nil && u.Role != *options.Role:
		case options.Status != nil && u.Status != *options.Status:
		case search != "" &&
			!strings.Contains(strings.ToLower(u.Email), search) &&
			!strings.Contains(strings.ToLower(u.FirstName+" "+u.LastName), search):
		default:
			matched = append(matched, u)
		}
	}

	rows, next, err := cursorPage(matched, func(u *service.User) (time.Time, uuid.UUID) {
		return u.CreatedAt, u.ID
	}, options.Cursor, options.Limit)
	if err != nil {
		return nil, err
	}

	page := &service.UserPage{Users: make([]service.User, 0, len(rows)), NextCursor: next}
	for _, u := range rows {
		page.Users = append(page.Users, *cloneUser(u))
	}
	return page, nil
}

// UpdateUser implements AdminService.UpdateUser
func (s *memSvc) UpdateUser(ctx context.Context, actorID, userID uuid.UUID, in service.UserUpdate) (*service.User, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	if actorID == userID &&
		((in.Role != nil && *in.Role != service.RoleAdmin) ||
			(in.Status != nil && *in.Status != service.UserStatusActive)) {
		return nil, service.ErrSelfModification
	}

	s.mu.Lock()
	u, ok := s.users[userID]
	if !ok {
		s.mu.Unlock()
		return nil, service.ErrUserNotFound
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Status != nil {
		u.Status = *in.Status
	}
	u.UpdatedAt = s.tick()
	out := cloneUser(u)
	s.mu.Unlock()

	slog.InfoContext(ctx, "User updated by administrator",
		"actor_id", actorID,
		"user_id", userID,
		"role", out.Role,
		"status", out.Status,
		"request_id", middleware.GetReqID(ctx))
	return out, nil
}

// DeleteUser implements AdminService.DeleteUser
func (s *memSvc) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return service.ErrSelfModification
	}

	s.mu.Lock()
	for _, t := range s.transactions {
		if t.UserID == userID {
			s.mu.Unlock()
			return service.ErrUserHasTransactions
		}
	}
	u, ok := s.users[userID]
	if !ok {
		s.mu.Unlock()
		return service.ErrUserNotFound
	}
	delete(s.users, userID)
	delete(s.emails, u.Email)
	delete(s.carts, userID)
	delete(s.addresses, userID)
	for _, m := range s.messages {
		if m.UserID != nil && *m.UserID == userID {
			m.UserID = nil
		}
	}
	s.mu.Unlock()

	slog.InfoContext(ctx, "User deleted",
		"actor_id", actorID,
		"user_id", userID,
		"request_id", middleware.GetReqID(ctx))
	return nil
}

// AdminListProducts implements AdminService.AdminListProducts
func (s *memSvc) AdminListProducts(_ context.Context, opts ...service.Option) (*service.ProductPage, error) {
	options, err := service.ApplyOptions[service.ListProductsOptions](opts...)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listProductsLocked(options, false), nil
}

// AdminGetProduct implements AdminService.AdminGetProduct
func (s *memSvc) AdminGetProduct(_ context.Context, productID uuid.UUID) (*service.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, service.ErrProductNotFound
	}
	out := cloneProduct(p)
	return &out, nil
}

func applyProduct(p *service.Product, in *service.ProductInput) {
	p.Name = in.Name
	p.Slug = in.Slug
	p.Description = in.Description
	p.Category = in.Category
	p.Tags = append([]string{}, in.Tags...)
	p.PriceCents = in.PriceCents
	p.Unit = in.Unit
	p.Stock = in.Stock
	p.ImageURL = in.ImageURL
	p.FarmName = in.FarmName
	p.Status = in.Status
}

// CreateProduct implements AdminService.CreateProduct
func (s *memSvc) CreateProduct(ctx context.Context, in service.ProductInput) (*service.Product, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if _, taken := s.slugs[in.Slug]; taken {
		s.mu.Unlock()
		return nil, service.ErrSlugTaken
	}
	now := s.tick()
	p := &service.Product{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	applyProduct(p, &in)
	s.products[p.ID] = p
	s.slugs[p.Slug] = p.ID
	out := cloneProduct(p)
	s.mu.Unlock()

	slog.InfoContext(ctx, "Product created",
		"product_id", out.ID,
		"slug", out.Slug,
		"request_id", middleware.GetReqID(ctx))
	return &out, nil
}

// UpdateProduct implements AdminService.UpdateProduct
func (s *memSvc) UpdateProduct(_ context.Context, productID uuid.UUID, in service.ProductInput) (*service.Product, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, service.ErrProductNotFound
	}
	if owner, taken := s.slugs[in.Slug]; taken && owner != productID {
		return nil, service.ErrSlugTaken
	}

	delete(s.slugs, p.Slug)
	applyProduct(p, &in)
	p.UpdatedAt = s.tick()
	s.slugs[p.Slug] = p.ID

	out := cloneProduct(p)
	return &out, nil
}

// DeleteProduct implements AdminService.DeleteProduct
func (s *memSvc) DeleteProduct(ctx context.Context, productID uuid.UUID) (bool, error) {
	s.mu.Lock()
	p, ok := s.products[productID]
	if !ok {
		s.mu.Unlock()
		return false, service.ErrProductNotFound
	}

	archived := s.productOrderedLocked(productID)
	if archived {
		p.Status = service.ProductStatusArchived
		p.UpdatedAt = s.tick()
	} else {
		delete(s.products, productID)
		delete(s.slugs, p.Slug)
		for _, lines := range s.carts {
			delete(lines, productID)
		}
		s.dropTopLocked(productID)
	}
	s.mu.Unlock()

	slog.InfoContext(ctx, "Product removed",
		"product_id", productID,
		"archived", archived,
		"request_id", middleware.GetReqID(ctx))
	return archived, nil
}

func (s *memSvc) productOrderedLocked(productID uuid.UUID) bool {
	for _, t := range s.transactions {
		for _, item := range t.Items {
			if item.ProductID == productID {
				return true
			}
		}
	}
	return false
}

func (s *memSvc) dropTopLocked(productID uuid.UUID) {
	kept := s.top[:0]
	for _, e := range s.top {
		if e.productID != productID {
			kept = append(kept, e)
		}
	}
	s.top = kept
}

// SetProductImage implements AdminService.SetProductImage
func (s *memSvc) SetProductImage(_ context.Context, productID uuid.UUID, imageURL string) (*service.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, service.ErrProductNotFound
	}
	p.ImageURL = imageURL
	p.UpdatedAt = s.tick()
	out := cloneProduct(p)
	return &out, nil
}

// AdminListTransactions implements AdminService.AdminListTransactions
func (s *memSvc) AdminListTransactions(_ context.Context, opts ...service.Option) (*service.TransactionPage, error) {
	return s.listTransactions(nil, opts...)
}

// AdminGetTransaction implements AdminService.AdminGetTransaction
func (s *memSvc) AdminGetTransaction(_ context.Context, transactionID uuid.UUID) (*service.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.transactionLocked(transactionID, nil)
	if err != nil {
		return nil, err
	}
	return cloneTransaction(t), nil
}

// AdminGetInvoice implements AdminService.AdminGetInvoice
func (s *memSvc) AdminGetInvoice(_ context.Context, transactionID uuid.UUID) (*service.Invoice, error) {
	return s.getInvoice(transactionID, nil)
}

// UpdateTransactionStatus implements AdminService.UpdateTransactionStatus
func (s *memSvc) UpdateTransactionStatus(
	ctx context.Context,
	transactionID uuid.UUID,
	status service.OrderStatus,
) (*service.Transaction, error) {
	status, err := service.ParseOrderStatus(string(status))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	current, err := s.transactionLocked(transactionID, nil)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	from := current.Status
	updated, err := s.applyStatusChangeLocked(current, status)
	s.mu.Unlock()
	if err != nil {
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
func (s *memSvc) ListContactMessages(_ context.Context, opts ...service.Option) (*service.ContactMessagePage, error) {
	options, err := service.ApplyOptions[service.ListContactMessagesOptions](opts...)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*service.ContactMessage, 0, len(s.messages))
	for _, m := range s.messages {
		if options.Status == nil || m.Status == *options.Status {
			matched = append(matched, m)
		}
	}

	rows, next, err := cursorPage(matched, func(m *service.ContactMessage) (time.Time, uuid.UUID) {
		return m.CreatedAt, m.ID
	}, options.Cursor, options.Limit)
	if err != nil {
		return nil, err
	}

	page := &service.ContactMessagePage{Messages: make([]service.ContactMessage, 0, len(rows)), NextCursor: next}
	for _, m := range rows {
		page.Messages = append(page.Messages, *cloneMessage(m))
	}
	return page, nil
}

// UpdateContactMessageStatus implements AdminService.UpdateContactMessageStatus
func (s *memSvc) UpdateContactMessageStatus(
	_ context.Context,
	messageID uuid.UUID,
	status service.ContactStatus,
) (*service.ContactMessage, error) {
	if err := service.ValidateContactStatus(status); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[messageID]
	if !ok {
		return nil, service.ErrContactMessageNotFound
	}
	m.Status = status
	m.UpdatedAt = s.tick()
	return cloneMessage(m), nil
}

// Dashboard implements AdminService.Dashboard
func (s *memSvc) Dashboard(_ context.Context, lowStockThreshold int) (*service.Dashboard, error) {
	if lowStockThreshold < 0 {
		return nil, service.NewValidationError("low_stock_threshold", "must not be negative")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	d := &service.Dashboard{
		Orders: map[service.OrderStatus]int64{
			service.OrderStatusPending:    0,
			service.OrderStatusProcessing: 0,
			service.OrderStatusShipped:    0,
			service.OrderStatusDelivered:  0,
			service.OrderStatusCancelled:  0,
		},
		LowStock:    []service.Product{},
		TopProducts: s.topProductsLocked(dashboardListSize, false),
	}

	for _, u := range s.users {
		d.Users.Total++
		switch u.Role {
		case service.RoleCustomer:
			d.Users.Customers++
		case service.RoleAdmin:
			d.Users.Admins++
		}
		if u.Status == service.UserStatusSuspended {
			d.Users.Suspended++
		}
	}

	for _, p := range s.products {
		d.Products.Total++
		switch p.Status {
		case service.ProductStatusActive:
			d.Products.Active++
			if p.Stock <= lowStockThreshold {
				d.LowStock = append(d.LowStock, cloneProduct(p))
			}
		case service.ProductStatusArchived:
			d.Products.Archived++
		}
	}
	sort.Slice(d.LowStock, func(i, j int) bool {
		if d.LowStock[i].Stock != d.LowStock[j].Stock {
			return d.LowStock[i].Stock < d.LowStock[j].Stock
		}
		return d.LowStock[i].Name < d.LowStock[j].Name
	})
	if len(d.LowStock) > dashboardListSize {
		d.LowStock = d.LowStock[:dashboardListSize]
	}

	for _, t := range s.transactions {
		d.Orders[t.Status]++
		if t.Status != service.OrderStatusCancelled {
			d.RevenueCents += t.TotalCents
		}
	}

	for _, m := range s.messages {
		if m.Status == service.ContactStatusNew {
			d.NewMessages++
		}
	}
	return d, nil
}

// RefreshTopProducts implements AdminService.RefreshTopProducts
func (s *memSvc) RefreshTopProducts(_ context.Context, window time.Duration, size int) ([]service.TopProduct, error) {
	if window <= 0 {
		return nil, service.NewValidationError("window", "must be positive")
	}
	if size < 1 || size > service.MaxPageSize {
		return nil, service.NewValidationError("size", "must be between 1 and %d", service.MaxPageSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	since := now.Add(-window)

	totals := make(map[uuid.UUID]*topEntry)
	for _, t := range s.transactions {
		if t.Status == service.OrderStatusCancelled || t.CreatedAt.Before(since) {
			continue
		}
		for _, item := range t.Items {
			p, ok := s.products[item.ProductID]
			if !ok || !p.IsActive() {
				continue
			}
			e, ok := totals[item.ProductID]
			if !ok {
				e = &topEntry{productID: item.ProductID}
				totals[item.ProductID] = e
			}
			e.unitsSold += int64(item.Quantity)
			e.revenueCents += item.LineTotalCents
		}
	}

	ranked := make([]topEntry, 0, len(totals))
	for _, e := range totals {
		ranked = append(ranked, *e)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.unitsSold != b.unitsSold {
			return a.unitsSold > b.unitsSold
		}
		if a.revenueCents != b.revenueCents {
			return a.revenueCents > b.revenueCents
		}
		return a.productID.String() < b.productID.String()
	})
	if len(ranked) > size {
		ranked = ranked[:size]
	}
	for i := range ranked {
		ranked[i].rank = i + 1
		ranked[i].computedAt = now
	}

	s.top = ranked
	return s.topProductsLocked(size, false), nil
}
