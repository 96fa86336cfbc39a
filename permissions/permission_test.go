package permissions_test

import (
	"testing"

	"desk/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.True(t, data.FindPermissions("/health", "GET").Skip)
	assert.True(t, data.FindPermissions("/v1/auth/refresh", "POST").Skip)
	assert.Equal(t, []string{"ADMIN"}, data.FindPermissions("/v1/admin/bookings/{id}", "DELETE").Permissions)
	assert.Equal(t, []string{"ADMIN"}, data.FindPermissions("/v1/holidays/", "POST").Permissions)
	assert.Equal(t, []string{"ADMIN"}, data.FindPermissions("/v1/admin/reports/weeks/{week}", "POST").Permissions)
}

func TestFindPermissions(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/holidays","method":"POST","permissions":["ADMIN"]}]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"ADMIN"}, data.FindPermissions("/v1/holidays", "post").Permissions)
	assert.Empty(t, data.FindPermissions("/v1/holidays", "GET").Permissions)
	assert.False(t, data.FindPermissions("/v1/bookings", "POST").Skip)

	_, err = permissions.Parse([]byte("{"))
	assert.Error(t, err)
}
