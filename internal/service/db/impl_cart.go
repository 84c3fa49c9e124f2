package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/internal/db/sqlc"
	"github.com/harvestlink/harvestlink/internal/otel"
	"github.com/harvestlink/harvestlink/internal/service"
)

// GetCart implements CartService.GetCart
func (s *dbService) GetCart(ctx context.Context, userID uuid.UUID) (*service.Cart, error) {
	ctx, span := s.startSpan(ctx, "dbService.GetCart",
		trace.WithAttributes(otel.AttrUserID.String(userID.String())))
	defer span.End()

	cart, err := s.loadCart(ctx, s.queries(), userID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return cart, nil
}

func (s *dbService) loadCart(ctx context.Context, q *sqlc.Queries, userID uuid.UUID) (*service.Cart, error) {
	items, err := s.cartItems(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return service.BuildCart(items, s.pricing.Pricing()), nil
}

func (*dbService) cartItems(ctx context.Context, q *sqlc.Queries, userID uuid.UUID) ([]service.CartItem, error) {
	rows, err := q.ListCartItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	items := make([]service.CartItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toCartItem(r))
	}
	return items, nil
}

// AddCartItem implements CartService.AddCartItem
func (s *dbService) AddCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*service.Cart, error) {
	ctx, span := s.startSpan(ctx, "dbService.AddCartItem",
		trace.WithAttributes(
			otel.AttrUserID.String(userID.String()),
			otel.AttrProductID.String(productID.String()),
		))
	defer span.End()

	if err := service.ValidateQuantity(quantity); err != nil {
		recordError(span, err)
		return nil, err
	}

	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		product, err := s.loadProductForCart(ctx, q, productID)
		if err != nil {
			return err
		}

		existing, err := q.GetCartItem(ctx, sqlc.GetCartItemParams{UserID: userID, ProductID: productID})
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to get cart item: %w", err)
		}

		total := int(existing.Quantity) + quantity
		if err := service.ValidateQuantity(total); err != nil {
			return err
		}
		if total > product.Stock {
			return fmt.Errorf("%s: %w", product.Name, service.ErrInsufficientStock)
		}

		_, err = q.UpsertCartItem(ctx, sqlc.UpsertCartItemParams{
			UserID:    userID,
			ProductID: productID,
			Quantity:  int32(total),
		})
		if err != nil {
			return fmt.Errorf("failed to save cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// UpdateCartItem implements CartService.UpdateCartItem
func (s *dbService) UpdateCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*service.Cart, error) {
	if quantity == 0 {
		return s.RemoveCartItem(ctx, userID, productID)
	}

	ctx, span := s.startSpan(ctx, "dbService.UpdateCartItem",
		trace.WithAttributes(
			otel.AttrUserID.String(userID.String()),
			otel.AttrProductID.String(productID.String()),
		))
	defer span.End()

	if err := service.ValidateQuantity(quantity); err != nil {
		recordError(span, err)
		return nil, err
	}

	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		if _, err := q.GetCartItem(ctx, sqlc.GetCartItemParams{UserID: userID, ProductID: productID}); err != nil {
			return notFound(err, service.ErrCartItemNotFound, "get cart item")
		}

		product, err := s.loadProductForCart(ctx, q, productID)
		if err != nil {
			return err
		}
		if quantity > product.Stock {
			return fmt.Errorf("%s: %w", product.Name, service.ErrInsufficientStock)
		}

		_, err = q.UpsertCartItem(ctx, sqlc.UpsertCartItemParams{
			UserID:    userID,
			ProductID: productID,
			Quantity:  int32(quantity),
		})
		if err != nil {
			return fmt.Errorf("failed to save cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// RemoveCartItem implements CartService.RemoveCartItem
func (s *dbService) RemoveCartItem(ctx context.Context, userID, productID uuid.UUID) (*service.Cart, error) {
	ctx, span := s.startSpan(ctx, "dbService.RemoveCartItem",
		trace.WithAttributes(
			otel.AttrUserID.String(userID.String()),
			otel.AttrProductID.String(productID.String()),
		))
	defer span.End()

	n, err := s.queries().DeleteCartItem(ctx, sqlc.DeleteCartItemParams{UserID: userID, ProductID: productID})
	if err == nil && n == 0 {
		err = service.ErrCartItemNotFound
	}
	if err != nil {
		if !errors.Is(err, service.ErrCartItemNotFound) {
			err = fmt.Errorf("failed to remove cart item: %w", err)
		}
		recordError(span, err)
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// ClearCart implements CartService.ClearCart
func (s *dbService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "dbService.ClearCart",
		trace.WithAttributes(otel.AttrUserID.String(userID.String())))
	defer span.End()

	if err := s.queries().ClearCart(ctx, userID); err != nil {
		err = fmt.Errorf("failed to clear cart: %w", err)
		recordError(span, err)
		return err
	}
	return nil
}
