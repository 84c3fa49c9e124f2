package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/internal/auth"
	"github.com/harvestlink/harvestlink/internal/db/sqlc"
	"github.com/harvestlink/harvestlink/internal/otel"
	"github.com/harvestlink/harvestlink/internal/service"
)

const usersEmailKey = "users_email_key"

// Register implements AccountService.Register
func (s *dbService) Register(ctx context.Context, in service.RegisterInput) (*service.User, error) {
	ctx, span := s.startSpan(ctx, "dbService.Register")
	defer span.End()

	user, err := s.createUser(ctx, in, service.RoleCustomer)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(otel.AttrUserID.String(user.ID.String()))
	slog.InfoContext(ctx, "User registered",
		"user_id", user.ID,
		"request_id", middleware.GetReqID(ctx))
	return user, nil
}

func (s *dbService) createUser(ctx context.Context, in service.RegisterInput, role service.Role) (*service.User, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	row, err := s.queries().CreateUser(ctx, sqlc.CreateUserParams{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         string(role),
	})
	if err != nil {
		if isUniqueViolation(err, usersEmailKey) {
			return nil, service.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUser(row), nil
}

// Authenticate implements AccountService.Authenticate
func (s *dbService) Authenticate(ctx context.Context, email, password string) (*service.User, error) {
	ctx, span := s.startSpan(ctx, "dbService.Authenticate")
	defer span.End()

	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(otel.AttrUserID.String(user.ID.String()), otel.AttrUserRole.String(string(user.Role)))
	return user, nil
}

func (s *dbService) authenticate(ctx context.Context, email, password string) (*service.User, error) {
	normalized, err := service.NormalizeEmail(email)
	if err != nil {
		auth.CompareDummy(password)
		return nil, service.ErrInvalidCredentials
	}

	row, err := s.queries().GetUserByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			auth.CompareDummy(password)
			return nil, service.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	ok, err := auth.ComparePassword(row.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, service.ErrInvalidCredentials
	}
	if row.Status == string(service.UserStatusSuspended) {
		return nil, service.ErrAccountSuspended
	}
	return toUser(row), nil
}

// GetUser implements AccountService.GetUser
func (s *dbService) GetUser(ctx context.Context, id uuid.UUID) (*service.User, error) {
	ctx, span := s.startSpan(ctx, "dbService.GetUser",
		trace.WithAttributes(otel.AttrUserID.String(id.String())))
	defer span.End()

	row, err := s.queries().GetUser(ctx, id)
	if err != nil {
		err = notFound(err, service.ErrUserNotFound, "get user")
		recordError(span, err)
		return nil, err
	}
	return toUser(row), nil
}

// UpdateProfile implements AccountService.UpdateProfile
func (s *dbService) UpdateProfile(ctx context.Context, userID uuid.UUID, in service.ProfileInput) (*service.User, error) {
	ctx, span := s.startSpan(ctx, "dbService.UpdateProfile",
		trace.WithAttributes(otel.AttrUserID.String(userID.String())))
	defer span.End()

	if err := in.Normalize(); err != nil {
		recordError(span, err)
		return nil, err
	}

	var updated sqlc.User
	err := s.inTx(ctx, func(q *sqlc.Queries) error {
		current, err := q.GetUser(ctx, userID)
		if err != nil {
			return notFound(err, service.ErrUserNotFound, "get user")
		}

		updated, err = q.UpdateUser(ctx, sqlc.UpdateUserParams{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Phone:     in.Phone,
			Role:      current.Role,
			Status:    current.Status,
			ID:        userID,
		})
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return toUser(updated), nil
}

// ChangePassword implements AccountService.ChangePassword
func (s *dbService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) (*service.User, error) {
	ctx, span := s.startSpan(ctx, "dbService.ChangePassword",
		trace.WithAttributes(otel.AttrUserID.String(userID.String())))
	defer span.End()

	user, err := s.changePassword(ctx, userID, current, next)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	slog.InfoContext(ctx, "Password changed",
		"user_id", userID,
		"request_id", middleware.GetReqID(ctx))
	return user, nil
}

func (s *dbService) changePassword(ctx context.Context, userID uuid.UUID, current, next string) (*service.User, error) {
	q := s.queries()
	row, err := q.GetUser(ctx, userID)
	if err != nil {
		return nil, notFound(err, service.ErrUserNotFound, "get user")
	}

	ok, err := auth.ComparePassword(row.PasswordHash, current)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, service.ErrInvalidCredentials
	}
	if err := service.ValidatePassword(next); err != nil {
		return nil, err
	}
	if next == current {
		return nil, service.ErrSamePassword
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	updated, err := q.UpdateUserPassword(ctx, sqlc.UpdateUserPasswordParams{PasswordHash: hash, ID: userID})
	if err != nil {
		return nil, notFound(err, service.ErrUserNotFound, "update password")
	}
	return toUser(updated), nil
}

// EnsureAdmin implements AccountService.EnsureAdmin
func (s *dbService) EnsureAdmin(ctx context.Context, in service.RegisterInput) (*service.User, error) {
	ctx, span := s.startSpan(ctx, "dbService.EnsureAdmin")
	defer span.End()

	if err := in.Normalize(); err != nil {
		recordError(span, err)
		return nil, err
	}

	existing, err := s.queries().GetUserByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		user, err := s.createUser(ctx, in, service.RoleAdmin)
		if err != nil {
			recordError(span, err)
			return nil, err
		}
		slog.InfoContext(ctx, "Administrator created", "user_id", user.ID)
		return user, nil
	case err != nil:
		err = fmt.Errorf("failed to get user: %w", err)
		recordError(span, err)
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		err = fmt.Errorf("failed to hash password: %w", err)
		recordError(span, err)
		return nil, err
	}

	var updated sqlc.User
	err = s.inTx(ctx, func(q *sqlc.Queries) error {
		if _, err := q.UpdateUser(ctx, sqlc.UpdateUserParams{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Phone:     in.Phone,
			Role:      string(service.RoleAdmin),
			Status:    string(service.UserStatusActive),
			ID:        existing.ID,
		}); err != nil {
			return fmt.Errorf("failed to promote user: %w", err)
		}

		var err error
		updated, err = q.UpdateUserPassword(ctx, sqlc.UpdateUserPasswordParams{PasswordHash: hash, ID: existing.ID})
		if err != nil {
			return fmt.Errorf("failed to reset password: %w", err)
		}
		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	slog.InfoContext(ctx, "Existing user promoted to administrator", "user_id", existing.ID)
	return toUser(updated), nil
}
