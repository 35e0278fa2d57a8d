package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"localguide/internal/domain"
	"localguide/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func TestOverview(t *testing.T) {
	dsn := fmt.Sprintf("file:analytics_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Profile{}, &domain.Event{}, &domain.Booking{}))

	users := []domain.User{
		{ID: "t1", Email: "t1@example.com", Role: domain.RoleTourist, IsActive: true},
		{ID: "t2", Email: "t2@example.com", Role: domain.RoleTourist, IsActive: true},
		{ID: "g1", Email: "g1@example.com", Role: domain.RoleGuide, IsActive: true},
		{ID: "a1", Email: "a1@example.com", Role: domain.RoleAdmin, IsActive: true},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}

	start := time.Now().Add(24 * time.Hour)
	events := []domain.Event{
		{HostID: "g1", Title: "Open walk", City: "Tokyo", StartTime: start, EndTime: start.Add(time.Hour), MinParticipants: 1, MaxParticipants: 5, Currency: "USD", Status: domain.EventOpen},
		{HostID: "g1", Title: "Done walk", City: "Tokyo", StartTime: start, EndTime: start.Add(time.Hour), MinParticipants: 1, MaxParticipants: 5, Currency: "USD", Status: domain.EventCompleted},
	}
	for i := range events {
		require.NoError(t, db.Create(&events[i]).Error)
	}

	bookings := []domain.Booking{
		{EventID: events[0].ID, UserID: "t1", Seats: 1, TotalCents: 8500, Currency: "USD", Status: domain.BookingConfirmed},
		{EventID: events[1].ID, UserID: "t2", Seats: 2, TotalCents: 9000, Currency: "USD", Status: domain.BookingCompleted},
		{EventID: events[0].ID, UserID: "t2", Seats: 1, TotalCents: 8500, Currency: "USD", Status: domain.BookingCancelled},
	}
	for i := range bookings {
		require.NoError(t, db.Create(&bookings[i]).Error)
	}

	svc := NewService(repository.NewUserRepository(db), repository.NewEventRepository(db), repository.NewBookingRepository(db))
	o, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), o.Users.Tourists)
	assert.Equal(t, int64(1), o.Users.Guides)
	assert.Equal(t, int64(1), o.Users.Admins)
	assert.Equal(t, int64(1), o.Events.Open)
	assert.Equal(t, int64(1), o.Events.Completed)
	assert.Equal(t, int64(3), o.Bookings)
	assert.Equal(t, int64(17500), o.RevenueCents, "cancelled bookings carry no revenue")
	assert.Equal(t, "$175.00", o.RevenueFormatted)
}
