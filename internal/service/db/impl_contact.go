package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/harvestlink/harvestlink/internal/db/sqlc"
	"github.com/harvestlink/harvestlink/internal/service"
)

// SubmitContactMessage implements ContactService.SubmitContactMessage
func (s *dbService) SubmitContactMessage(ctx context.Context, in service.ContactInput) (*service.ContactMessage, error) {
	ctx, span := s.startSpan(ctx, "dbService.SubmitContactMessage")
	defer span.End()

	if err := in.Normalize(); err != nil {
		recordError(span, err)
		return nil, err
	}

	row, err := s.queries().CreateContactMessage(ctx, sqlc.CreateContactMessageParams{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		UserID:  in.UserID,
	})
	if err != nil {
		err = fmt.Errorf("failed to create contact message: %w", err)
		recordError(span, err)
		return nil, err
	}

	slog.InfoContext(ctx, "Contact message received",
		"message_id", row.ID,
		"request_id", middleware.GetReqID(ctx))
	return toContactMessage(row), nil
}
