package inmemory

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/service"
)

// SubmitContactMessage implements ContactService.SubmitContactMessage
func (s *memSvc) SubmitContactMessage(ctx context.Context, in service.ContactInput) (*service.ContactMessage, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	now := s.tick()
	m := &service.ContactMessage{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    service.ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.UserID != nil {
		userID := *in.UserID
		m.UserID = &userID
	}
	s.messages[m.ID] = m
	out := cloneMessage(m)
	s.mu.Unlock()

	slog.InfoContext(ctx, "Contact message received",
		"message_id", m.ID,
		"request_id", middleware.GetReqID(ctx))
	return out, nil
}
