package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localguide/internal/domain"
)

// Connect must return a usable sqlite handle for non-postgres DSNs, which
// depends on the modernc "sqlite" driver being registered.
func TestConnectSQLite(t *testing.T) {
	db, err := Connect("file:connect_test?mode=memory&cache=shared")
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	u := &domain.User{Email: "connect@test.com", Role: domain.RoleTourist}
	require.NoError(t, db.Create(u).Error)

	var got domain.User
	require.NoError(t, db.First(&got, "email = ?", "connect@test.com").Error)
	require.Equal(t, u.ID, got.ID)
}
