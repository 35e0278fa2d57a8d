package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupNotifications(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:notification_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewService(db)
}

func TestPushListAndUnreadCount(t *testing.T) {
	svc := setupNotifications(t)
	ctx := context.Background()

	require.NoError(t, svc.Push(ctx, "u1", "booking_created", "Booking received", "Pending payment."))
	require.NoError(t, svc.Push(ctx, "u1", "booking_confirmed", "Booking confirmed", ""))
	require.NoError(t, svc.Push(ctx, "u2", "booking_created", "New booking", ""))

	items, err := svc.List(ctx, "u1", false, 50, 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	count, err := svc.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	svc := setupNotifications(t)
	ctx := context.Background()

	require.NoError(t, svc.Push(ctx, "u1", "system", "Welcome", ""))
	items, err := svc.List(ctx, "u1", false, 50, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)

	err = svc.MarkRead(ctx, "u2", items[0].ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, svc.MarkRead(ctx, "u1", items[0].ID))

	count, err := svc.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// marking twice is a no-op
	require.NoError(t, svc.MarkRead(ctx, "u1", items[0].ID))
}

func TestMarkAllRead(t *testing.T) {
	svc := setupNotifications(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Push(ctx, "u1", "system", "n", ""))
	}
	require.NoError(t, svc.MarkAllRead(ctx, "u1"))

	count, err := svc.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	unread, err := svc.List(ctx, "u1", true, 50, 0)
	require.NoError(t, err)
	assert.Empty(t, unread)
}
