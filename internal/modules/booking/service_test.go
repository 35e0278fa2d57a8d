package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"localguide/internal/domain"
	"localguide/internal/modules/wallet"
	"localguide/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupBooking(t *testing.T) (*Service, *wallet.Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:booking_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Profile{}, &domain.Event{}, &domain.Booking{}))
	require.NoError(t, wallet.Migrate(db))

	wallets := wallet.NewService(db)
	svc := NewService(repository.NewBookingRepository(db), repository.NewEventRepository(db), wallets, nil)
	return svc, wallets, db
}

func seedOpenEvent(t *testing.T, db *gorm.DB, priceCents int64, maxSeats int) *domain.Event {
	t.Helper()
	e := &domain.Event{
		HostID:          "guide-1",
		Title:           "Street Food Markets Tour",
		City:            "Mexico City",
		StartTime:       time.Now().Add(72 * time.Hour),
		EndTime:         time.Now().Add(76 * time.Hour),
		MinParticipants: 1,
		MaxParticipants: maxSeats,
		PriceCents:      priceCents,
		Currency:        "USD",
		Status:          domain.EventOpen,
		Visibility:      domain.VisibilityPublic,
	}
	require.NoError(t, db.Create(e).Error)
	return e
}

func TestCreateTotalIsPriceTimesSeats(t *testing.T) {
	svc, _, db := setupBooking(t)
	e := seedOpenEvent(t, db, 8500, 6)

	v, err := svc.Create(context.Background(), "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(25500), v.TotalCents)
	assert.Equal(t, "$255.00", v.TotalFormatted)
	assert.Equal(t, domain.BookingPending, v.Status)

	var got domain.Event
	require.NoError(t, db.First(&got, "id = ?", e.ID).Error)
	assert.Equal(t, 3, got.SeatsBooked)
}

func TestTotalUnaffectedByLaterPriceChange(t *testing.T) {
	svc, _, db := setupBooking(t)
	e := seedOpenEvent(t, db, 8500, 6)
	ctx := context.Background()

	v, err := svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 1})
	require.NoError(t, err)

	require.NoError(t, db.Model(&domain.Event{}).Where("id = ?", e.ID).Update("price_cents", 9900).Error)

	got, err := svc.View(ctx, "tourist-1", v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(8500), got.TotalCents)
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc, _, db := setupBooking(t)
	e := seedOpenEvent(t, db, 8500, 6)
	ctx := context.Background()

	_, err := svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 0})
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: "nope", Seats: 1})
	assert.True(t, errors.Is(err, ErrEventNotFound))

	_, err = svc.Create(ctx, "guide-1", CreateBookingRequest{EventID: e.ID, Seats: 1})
	assert.True(t, errors.Is(err, ErrOwnEvent))
}

func TestOverbookingFillsThenRejects(t *testing.T) {
	svc, _, db := setupBooking(t)
	e := seedOpenEvent(t, db, 2000, 4)
	ctx := context.Background()

	_, err := svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 3})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "tourist-2", CreateBookingRequest{EventID: e.ID, Seats: 2})
	assert.True(t, errors.Is(err, ErrSoldOut))

	_, err = svc.Create(ctx, "tourist-2", CreateBookingRequest{EventID: e.ID, Seats: 1})
	require.NoError(t, err)

	var got domain.Event
	require.NoError(t, db.First(&got, "id = ?", e.ID).Error)
	assert.Equal(t, domain.EventFull, got.Status)

	_, err = svc.Create(ctx, "tourist-3", CreateBookingRequest{EventID: e.ID, Seats: 1})
	assert.True(t, errors.Is(err, ErrNotBookable))
}

func TestPayConfirmsAndDebitsWallet(t *testing.T) {
	svc, wallets, db := setupBooking(t)
	e := seedOpenEvent(t, db, 8500, 6)
	ctx := context.Background()

	_, err := wallets.Topup(ctx, "tourist-1", wallet.TopupRequest{AmountCents: 10000})
	require.NoError(t, err)

	v, err := svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 1})
	require.NoError(t, err)

	paid, err := svc.Pay(ctx, "tourist-1", v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, paid.Status)
	require.NotNil(t, paid.PaymentIntentID)

	w, err := wallets.Get(ctx, "tourist-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), w.BalanceCents)

	_, err = svc.Pay(ctx, "tourist-1", v.ID)
	assert.True(t, errors.Is(err, ErrInvalidTransition), "paying twice is not allowed")
}

func TestPayInsufficientFundsLeavesBookingPending(t *testing.T) {
	svc, wallets, db := setupBooking(t)
	e := seedOpenEvent(t, db, 8500, 6)
	ctx := context.Background()

	v, err := svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 1})
	require.NoError(t, err)

	_, err = svc.Pay(ctx, "tourist-1", v.ID)
	assert.True(t, errors.Is(err, wallet.ErrInsufficientFunds))

	got, err := svc.View(ctx, "tourist-1", v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, got.Status)

	w, err := wallets.Get(ctx, "tourist-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.BalanceCents)
}

func TestCancelUnpaidReleasesSeats(t *testing.T) {
	svc, _, db := setupBooking(t)
	e := seedOpenEvent(t, db, 2000, 2)
	ctx := context.Background()

	v, err := svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 2})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, "tourist-1", v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)

	var got domain.Event
	require.NoError(t, db.First(&got, "id = ?", e.ID).Error)
	assert.Equal(t, 0, got.SeatsBooked)
	assert.Equal(t, domain.EventOpen, got.Status, "full event reopens after cancellation")
}

func TestCancelPaidRefundsWallet(t *testing.T) {
	svc, wallets, db := setupBooking(t)
	e := seedOpenEvent(t, db, 8500, 6)
	ctx := context.Background()

	_, err := wallets.Topup(ctx, "tourist-1", wallet.TopupRequest{AmountCents: 8500})
	require.NoError(t, err)

	v, err := svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 1})
	require.NoError(t, err)
	_, err = svc.Pay(ctx, "tourist-1", v.ID)
	require.NoError(t, err)

	refunded, err := svc.Cancel(ctx, "tourist-1", v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingRefunded, refunded.Status)

	w, err := wallets.Get(ctx, "tourist-1")
	require.NoError(t, err)
	assert.Equal(t, int64(8500), w.BalanceCents)

	_, err = svc.Cancel(ctx, "tourist-1", v.ID)
	assert.True(t, errors.Is(err, ErrInvalidTransition), "refunded is terminal")
}

func TestCompleteOnlyByGuideFromConfirmed(t *testing.T) {
	svc, wallets, db := setupBooking(t)
	e := seedOpenEvent(t, db, 1000, 6)
	ctx := context.Background()

	_, err := wallets.Topup(ctx, "tourist-1", wallet.TopupRequest{AmountCents: 1000})
	require.NoError(t, err)

	v, err := svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 1})
	require.NoError(t, err)

	_, err = svc.Complete(ctx, "guide-1", v.ID)
	assert.True(t, errors.Is(err, ErrInvalidTransition), "pending cannot complete")

	_, err = svc.Pay(ctx, "tourist-1", v.ID)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, "tourist-1", v.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	done, err := svc.Complete(ctx, "guide-1", v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, done.Status)

	_, err = svc.Cancel(ctx, "tourist-1", v.ID)
	assert.True(t, errors.Is(err, ErrInvalidTransition), "completed is terminal")
}

func TestCompletePaysGuideMinusCommission(t *testing.T) {
	svc, wallets, db := setupBooking(t)
	e := seedOpenEvent(t, db, 8500, 6)
	ctx := context.Background()

	_, err := wallets.Topup(ctx, "tourist-1", wallet.TopupRequest{AmountCents: 8500})
	require.NoError(t, err)

	v, err := svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 1})
	require.NoError(t, err)
	_, err = svc.Pay(ctx, "tourist-1", v.ID)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, "guide-1", v.ID)
	require.NoError(t, err)

	// 10% commission on 8500 leaves the guide 7650
	w, err := wallets.Get(ctx, "guide-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7650), w.BalanceCents)

	history, err := wallets.History(ctx, "guide-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	byKind := map[wallet.TransactionKind]wallet.Transaction{}
	for _, entry := range history {
		byKind[entry.Kind] = entry
	}
	assert.Equal(t, int64(8500), byKind[wallet.KindPayout].AmountCents)
	assert.Equal(t, "booking:"+v.ID, byKind[wallet.KindPayout].Reference)
	assert.Equal(t, int64(-850), byKind[wallet.KindCommission].AmountCents)
}

func TestViewAccessControl(t *testing.T) {
	svc, _, db := setupBooking(t)
	e := seedOpenEvent(t, db, 1000, 6)
	ctx := context.Background()

	v, err := svc.Create(ctx, "tourist-1", CreateBookingRequest{EventID: e.ID, Seats: 1})
	require.NoError(t, err)

	_, err = svc.View(ctx, "tourist-2", v.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	got, err := svc.View(ctx, "guide-1", v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)
}
