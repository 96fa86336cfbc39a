package identity_test

import (
	"context"
	"testing"

	"desk/shared/calendar"
	"desk/shared/constant"
	"desk/shared/failure"
	"desk/shared/identity"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	who := identity.Identity{UserID: "u-1", Email: "alice@example.com", Role: constant.RoleUser, Batch: calendar.BatchA}

	got, ok := identity.FromContext(identity.WithIdentity(context.Background(), who))

	assert.True(t, ok)
	assert.Equal(t, who, got)
	assert.False(t, got.IsAdmin())
}

func TestFromContext_Anonymous(t *testing.T) {
	_, ok := identity.FromContext(context.Background())

	assert.False(t, ok)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, identity.Identity{Role: constant.RoleAdmin}.IsAdmin())
	assert.False(t, identity.Identity{Role: "admin"}.IsAdmin())
}

func TestRequire(t *testing.T) {
	_, err := identity.Require(context.Background())
	assert.Equal(t, failure.ReasonUnauthorized, failure.GetReason(err))

	who := identity.Identity{UserID: "u-2", Role: constant.RoleAdmin}
	got, err := identity.Require(identity.WithIdentity(context.Background(), who))
	assert.NoError(t, err)
	assert.Equal(t, "u-2", got.UserID)
}
