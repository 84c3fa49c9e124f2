package inmemory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/service"
)

// GetCart implements CartService.GetCart
func (s *memSvc) GetCart(_ context.Context, userID uuid.UUID) (*service.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return service.BuildCart(s.cartItemsLocked(userID), s.pricing.Pricing()), nil
}

// cartItemsLocked joins a user's cart lines with their products, oldest line
// first. Caller must hold s.mu read lock.
func (s *memSvc) cartItemsLocked(userID uuid.UUID) []service.CartItem {
	lines := s.carts[userID]
	items := make([]service.CartItem, 0, len(lines))
	for productID, line := range lines {
		p, ok := s.products[productID]
		if !ok {
			continue
		}
		items = append(items, service.CartItem{
			ProductID:      p.ID,
			Name:           p.Name,
			Slug:           p.Slug,
			Unit:           p.Unit,
			ImageURL:       p.ImageURL,
			UnitPriceCents: p.PriceCents,
			Quantity:       line.quantity,
			Stock:          p.Stock,
			ProductStatus:  p.Status,
			AddedAt:        line.addedAt,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].AddedAt.Before(items[j].AddedAt)
		}
		return items[i].ProductID.String() < items[j].ProductID.String()
	})
	return items
}

// cartProductLocked returns a product a shopper may put in a cart. Caller must hold s.mu lock.
func (s *memSvc) cartProductLocked(productID uuid.UUID) (*service.Product, error) {
	p, ok := s.products[productID]
	if !ok || !s.visible(p) {
		return nil, service.ErrProductNotFound
	}
	if !p.IsActive() {
		return nil, service.ErrProductUnavailable
	}
	return p, nil
}

// AddCartItem implements CartService.AddCartItem
func (s *memSvc) AddCartItem(_ context.Context, userID, productID uuid.UUID, quantity int) (*service.Cart, error) {
	if err := service.ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.cartProductLocked(productID)
	if err != nil {
		return nil, err
	}

	lines := s.carts[userID]
	if lines == nil {
		lines = make(map[uuid.UUID]*cartLine)
		s.carts[userID] = lines
	}

	total := quantity
	if line, ok := lines[productID]; ok {
		total += line.quantity
	}
	if err := service.ValidateQuantity(total); err != nil {
		return nil, err
	}
	if total > p.Stock {
		return nil, fmt.Errorf("%s: %w", p.Name, service.ErrInsufficientStock)
	}

	if line, ok := lines[productID]; ok {
		line.quantity = total
	} else {
		lines[productID] = &cartLine{quantity: total, addedAt: s.tick()}
	}
	return service.BuildCart(s.cartItemsLocked(userID), s.pricing.Pricing()), nil
}

// UpdateCartItem implements CartService.UpdateCartItem
func (s *memSvc) UpdateCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*service.Cart, error) {
	if quantity == 0 {
		return s.RemoveCartItem(ctx, userID, productID)
	}
	if err := service.ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.carts[userID][productID]
	if !ok {
		return nil, service.ErrCartItemNotFound
	}
	p, err := s.cartProductLocked(productID)
	if err != nil {
		return nil, err
	}
	if quantity > p.Stock {
		return nil, fmt.Errorf("%s: %w", p.Name, service.ErrInsufficientStock)
	}

	line.quantity = quantity
	return service.BuildCart(s.cartItemsLocked(userID), s.pricing.Pricing()), nil
}

// RemoveCartItem implements CartService.RemoveCartItem
func (s *memSvc) RemoveCartItem(_ context.Context, userID, productID uuid.UUID) (*service.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[userID][productID]; !ok {
		return nil, service.ErrCartItemNotFound
	}
	delete(s.carts[userID], productID)
	return service.BuildCart(s.cartItemsLocked(userID), s.pricing.Pricing()), nil
}

// ClearCart implements CartService.ClearCart
func (s *memSvc) ClearCart(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
