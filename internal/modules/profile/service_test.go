package profile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"localguide/internal/domain"
	"localguide/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupProfile(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:profile_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Profile{}))

	return NewService(repository.NewProfileRepository(db)), db
}

// Public lookups use the owning user's id, since that is the id events,
// reviews and auth responses carry. The profile row's own id still works.
func TestGetResolvesByUserID(t *testing.T) {
	svc, db := setupProfile(t)
	ctx := context.Background()

	seeded := &domain.Profile{UserID: "user-7", FullName: "Kenji Sato", City: "Tokyo"}
	require.NoError(t, db.Create(seeded).Error)

	byUser, err := svc.Get(ctx, "user-7")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, byUser.ID)
	assert.Equal(t, "Kenji Sato", byUser.FullName)

	byPK, err := svc.Get(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-7", byPK.UserID)
}

func TestGetUnknownID(t *testing.T) {
	svc, _ := setupProfile(t)

	_, err := svc.Get(context.Background(), "no-such-id")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateOnlyTouchesProvidedFields(t *testing.T) {
	svc, db := setupProfile(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&domain.Profile{UserID: "user-8", FullName: "Alex Traveler", Bio: "old bio", City: "New York"}).Error)

	bio := "Love exploring hidden gems."
	updated, err := svc.Update(ctx, "user-8", UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "Alex Traveler", updated.FullName)
	assert.Equal(t, "New York", updated.City)
}
