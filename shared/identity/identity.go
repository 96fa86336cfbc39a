// Package identity carries the authenticated caller through a request context.
package identity

import (
	"context"

	"desk/shared/calendar"
	"desk/shared/constant"
	"desk/shared/failure"
)

type Identity struct {
	UserID string
	Email  string
	Role   string
	Batch  calendar.Batch
}

func (i Identity) IsAdmin() bool {
	return i.Role == constant.RoleAdmin
}

// WithIdentity stores every field of who under its context key.
func WithIdentity(ctx context.Context, who Identity) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, who.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, who.Email)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, who.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyUserBatch, string(who.Batch))

	return ctx
}

// FromContext reads the caller back. ok is false when no user id is present.
func FromContext(ctx context.Context) (who Identity, ok bool) {
	who.UserID, _ = ctx.Value(constant.ContextKeyUserID).(string)
	who.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	who.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)

	batch, _ := ctx.Value(constant.ContextKeyUserBatch).(string)
	who.Batch = calendar.Batch(batch)

	return who, who.UserID != ""
}

// Require is FromContext for handlers: a missing caller becomes a 401 failure.
func Require(ctx context.Context) (Identity, error) {
	who, ok := FromContext(ctx)
	if !ok {
		return who, failure.Unauthorized("Authentication required")
	}

	return who, nil
}
