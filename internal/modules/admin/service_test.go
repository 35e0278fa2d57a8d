package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"localguide/internal/domain"
	"localguide/internal/modules/notification"
	"localguide/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupAdmin(t *testing.T) (*Service, *notification.Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:admin_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Profile{}, &domain.GuideVerification{}))
	require.NoError(t, notification.Migrate(db))

	notify := notification.NewService(db)
	svc := NewService(repository.NewVerificationRepository(db), repository.NewUserRepository(db), notify)
	return svc, notify, db
}

func seedPendingVerification(t *testing.T, db *gorm.DB) *domain.GuideVerification {
	t.Helper()
	require.NoError(t, db.Create(&domain.User{ID: "guide-1", Email: "guide@example.com", Role: domain.RoleGuide, IsActive: true}).Error)
	v := &domain.GuideVerification{
		UserID:       "guide-1",
		DocumentType: "passport",
		DocumentURL:  "/static/kyc/doc.jpg",
		Status:       domain.VerificationPending,
		SubmittedAt:  time.Now(),
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func TestApproveVerification(t *testing.T) {
	svc, notify, db := setupAdmin(t)
	v := seedPendingVerification(t, db)
	ctx := context.Background()

	approved, err := svc.ApproveVerification(ctx, "admin-1", v.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationVerified, approved.Status)
	require.NotNil(t, approved.VerifiedAt)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, "admin-1", *approved.ReviewedBy)

	// guide is told about the decision
	count, err := notify.CountUnread(ctx, "guide-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// second approval hits a non-pending record
	_, err = svc.ApproveVerification(ctx, "admin-1", v.ID)
	assert.True(t, errors.Is(err, ErrNotReviewable))
}

func TestRejectVerificationRequiresReason(t *testing.T) {
	svc, _, db := setupAdmin(t)
	v := seedPendingVerification(t, db)
	ctx := context.Background()

	_, err := svc.RejectVerification(ctx, "admin-1", v.ID, "")
	assert.True(t, errors.Is(err, ErrReasonRequired))

	rejected, err := svc.RejectVerification(ctx, "admin-1", v.ID, "Document unreadable")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationRejected, rejected.Status)
	assert.Equal(t, "Document unreadable", rejected.RejectionReason)
}

func TestPendingVerificationsList(t *testing.T) {
	svc, _, db := setupAdmin(t)
	seedPendingVerification(t, db)

	items, total, err := svc.PendingVerifications(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
}

func TestBanAndUnban(t *testing.T) {
	svc, _, db := setupAdmin(t)
	require.NoError(t, db.Create(&domain.User{ID: "u1", Email: "u1@example.com", Role: domain.RoleTourist, IsActive: true}).Error)
	ctx := context.Background()

	banned, err := svc.SetUserBanned(ctx, "u1", true)
	require.NoError(t, err)
	assert.True(t, banned.IsBanned)

	var got domain.User
	require.NoError(t, db.First(&got, "id = ?", "u1").Error)
	assert.True(t, got.IsBanned)

	unbanned, err := svc.SetUserBanned(ctx, "u1", false)
	require.NoError(t, err)
	assert.False(t, unbanned.IsBanned)

	_, err = svc.SetUserBanned(ctx, "ghost", true)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestUnknownVerification(t *testing.T) {
	svc, _, _ := setupAdmin(t)

	_, err := svc.ApproveVerification(context.Background(), "admin-1", "nope")
	assert.True(t, errors.Is(err, ErrVerificationNotFound))
}
