package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/GlebRadaev/donations/internal/domain"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RoleKey   ContextKey = "role"
	EmailKey  ContextKey = "email"
)

// Identity is the verified subject attached to a request by the Guard.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   domain.Role
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, id.UserID)
	ctx = context.WithValue(ctx, EmailKey, id.Email)
	return context.WithValue(ctx, RoleKey, id.Role)
}

func FromContext(ctx context.Context) (Identity, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return Identity{}, false
	}
	role, _ := ctx.Value(RoleKey).(domain.Role)
	email, _ := ctx.Value(EmailKey).(string)
	return Identity{UserID: userID, Email: email, Role: role}, true
}
