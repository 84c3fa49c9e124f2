package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/internal/db/sqlc"
	"github.com/harvestlink/harvestlink/internal/otel"
	"github.com/harvestlink/harvestlink/internal/service"
)

// ListAddresses implements AddressService.ListAddresses
func (s *dbService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]service.Address, error) {
	ctx, span := s.startSpan(ctx, "dbService.ListAddresses",
		trace.WithAttributes(otel.AttrUserID.String(userID.String())))
	defer span.End()

	rows, err := s.queries().ListAddresses(ctx, userID)
	if err != nil {
		err = fmt.Errorf("failed to list addresses: %w", err)
		recordError(span, err)
		return nil, err
	}

	out := make([]service.Address, 0, len(rows))
	for _, r := range rows {
		out = append(out, *toAddress(r))
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(out)))
	return out, nil
}

// GetAddress implements AddressService.GetAddress
func (s *dbService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*service.Address, error) {
	ctx, span := s.startSpan(ctx, "dbService.GetAddress",
		trace.WithAttributes(
			otel.AttrUserID.String(userID.String()),
			otel.AttrAddressID.String(addressID.String()),
		))
	defer span.End()

	row, err := s.queries().GetAddress(ctx, sqlc.GetAddressParams{ID: addressID, UserID: userID})
	if err != nil {
		err = notFound(err, service.ErrAddressNotFound, "get address")
		recordError(span, err)
		return nil, err
	}
	return toAddress(row), nil
}

// CreateAddress implements AddressService.CreateAddress
func (s *dbService) CreateAddress(ctx context.Context, userID uuid.UUID, in service.AddressInput) (*service.Address, error) {
	ctx, span := s.startSpan(ctx, "dbService.CreateAddress",
		trace.WithAttributes(otel.AttrUserID.String(userID.String())))
	defer span.End()

	if err := in.Normalize(); err != nil {
		recordError(span, err)
		return nil, err
	}

	var created sqlc.Address
	err := s.inUserTx(ctx, userID, func(q *sqlc.Queries) error {
		count, err := q.CountAddresses(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to count addresses: %w", err)
		}
		if count >= service.MaxAddressesPerUser {
			return service.ErrAddressLimit
		}

		primary := in.IsPrimary || count == 0
		if primary {
			if err := q.ClearPrimaryAddress(ctx, userID); err != nil {
				return fmt.Errorf("failed to clear primary address: %w", err)
			}
		}

		created, err = q.CreateAddress(ctx, sqlc.CreateAddressParams{
			UserID:        userID,
			Label:         in.Label,
			RecipientName: in.RecipientName,
			Phone:         in.Phone,
			Street:        in.Street,
			Barangay:      in.Barangay,
			City:          in.City,
			Province:      in.Province,
			PostalCode:    in.PostalCode,
			IsPrimary:     primary,
		})
		if err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(otel.AttrAddressID.String(created.ID.String()))
	slog.DebugContext(ctx, "Address created",
		"user_id", userID,
		"address_id", created.ID,
		"primary", created.IsPrimary,
		"request_id", middleware.GetReqID(ctx))
	return toAddress(created), nil
}

// UpdateAddress implements AddressService.UpdateAddress
func (s *dbService) UpdateAddress(
	ctx context.Context,
	userID, addressID uuid.UUID,
	in service.AddressInput,
) (*service.Address, error) {
	ctx, span := s.startSpan(ctx, "dbService.UpdateAddress",
		trace.WithAttributes(
			otel.AttrUserID.String(userID.String()),
			otel.AttrAddressID.String(addressID.String()),
		))
	defer span.End()

	if err := in.Normalize(); err != nil {
		recordError(span, err)
		return nil, err
	}

	var updated sqlc.Address
	err := s.inUserTx(ctx, userID, func(q *sqlc.Queries) error {
		existing, err := q.GetAddress(ctx, sqlc.GetAddressParams{ID: addressID, UserID: userID})
		if err != nil {
			return notFound(err, service.ErrAddressNotFound, "get address")
		}

		demoted := existing.IsPrimary && !in.IsPrimary
		switch {
		case in.IsPrimary && !existing.IsPrimary:
			if err := q.ClearPrimaryAddress(ctx, userID); err != nil {
				return fmt.Errorf("failed to clear primary address: %w", err)
			}
		case demoted:
			count, err := q.CountAddresses(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to count addresses: %w", err)
			}
			if count <= 1 {
				return service.ErrLastPrimaryAddress
			}
		}

		updated, err = q.UpdateAddress(ctx, sqlc.UpdateAddressParams{
			Label:         in.Label,
			RecipientName: in.RecipientName,
			Phone:         in.Phone,
			Street:        in.Street,
			Barangay:      in.Barangay,
			City:          in.City,
			Province:      in.Province,
			PostalCode:    in.PostalCode,
			IsPrimary:     in.IsPrimary,
			ID:            addressID,
			UserID:        userID,
		})
		if err != nil {
			return notFound(err, service.ErrAddressNotFound, "update address")
		}

		if demoted {
			_, err := q.PromoteLatestAddress(ctx, sqlc.PromoteLatestAddressParams{UserID: userID, ExcludeID: addressID})
			if err != nil {
				return fmt.Errorf("failed to promote address: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return toAddress(updated), nil
}

// DeleteAddress implements AddressService.DeleteAddress
func (s *dbService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "dbService.DeleteAddress",
		trace.WithAttributes(
			otel.AttrUserID.String(userID.String()),
			otel.AttrAddressID.String(addressID.String()),
		))
	defer span.End()

	err := s.inUserTx(ctx, userID, func(q *sqlc.Queries) error {
		existing, err := q.GetAddress(ctx, sqlc.GetAddressParams{ID: addressID, UserID: userID})
		if err != nil {
			return notFound(err, service.ErrAddressNotFound, "get address")
		}

		n, err := q.DeleteAddress(ctx, sqlc.DeleteAddressParams{ID: addressID, UserID: userID})
		if err != nil {
			return fmt.Errorf("failed to delete address: %w", err)
		}
		if n == 0 {
			return service.ErrAddressNotFound
		}

		if existing.IsPrimary {
			_, err := q.PromoteLatestAddress(ctx, sqlc.PromoteLatestAddressParams{UserID: userID, ExcludeID: uuid.Nil})
			if err != nil {
				return fmt.Errorf("failed to promote address: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

// SetPrimaryAddress implements AddressService.SetPrimaryAddress
func (s *dbService) SetPrimaryAddress(ctx context.Context, userID, addressID uuid.UUID) (*service.Address, error) {
	ctx, span := s.startSpan(ctx, "dbService.SetPrimaryAddress",
		trace.WithAttributes(
			otel.AttrUserID.String(userID.String()),
			otel.AttrAddressID.String(addressID.String()),
		))
	defer span.End()

	var primary sqlc.Address
	err := s.inUserTx(ctx, userID, func(q *sqlc.Queries) error {
		if _, err := q.GetAddress(ctx, sqlc.GetAddressParams{ID: addressID, UserID: userID}); err != nil {
			return notFound(err, service.ErrAddressNotFound, "get address")
		}
		if err := q.ClearPrimaryAddress(ctx, userID); err != nil {
			return fmt.Errorf("failed to clear primary address: %w", err)
		}

		var err error
		primary, err = q.SetPrimaryAddress(ctx, sqlc.SetPrimaryAddressParams{ID: addressID, UserID: userID})
		if err != nil {
			return notFound(err, service.ErrAddressNotFound, "set primary address")
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return toAddress(primary), nil
}

// shippingAddress resolves the address used at checkout: the requested one, or
// the user's primary address.
func (*dbService) shippingAddress(ctx context.Context, q *sqlc.Queries, userID uuid.UUID, id *uuid.UUID) (*service.Address, error) {
	if id != nil {
		row, err := q.GetAddress(ctx, sqlc.GetAddressParams{ID: *id, UserID: userID})
		if err != nil {
			return nil, notFound(err, service.ErrAddressNotFound, "get address")
		}
		return toAddress(row), nil
	}

	row, err := q.GetPrimaryAddress(ctx, userID)
	if err != nil {
		return nil, notFound(err, service.ErrAddressRequired, "get primary address")
	}
	return toAddress(row), nil
}
