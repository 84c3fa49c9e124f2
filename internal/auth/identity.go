package auth

import (
	"context"

	"github.com/harvestlink/harvestlink/internal/service"
)

type userContextKey struct{}

// WithUser returns a context carrying the authenticated user
func WithUser(ctx context.Context, user *service.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the authenticated user, or nil for anonymous requests
func UserFromContext(ctx context.Context) *service.User {
	user, _ := ctx.Value(userContextKey{}).(*service.User)
	return user
}
