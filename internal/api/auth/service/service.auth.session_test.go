package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resto_commerce/internal/api/auth/models"
	"resto_commerce/internal/common"
)

func newTestSessionService(t *testing.T) (*SessionService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionService(client, 24), mr
}

func TestSessionService_CreateAndGet(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	sess, err := svc.Create(ctx, &models.Session{
		UserID:       "64f000000000000000000001",
		UserName:     "Juan",
		Email:        "juan@example.com",
		Role:         models.RoleAdmin,
		RestaurantID: "64f000000000000000000002",
	})
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.NotZero(t, sess.CreatedAt)

	loaded, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, loaded.UserID)
	assert.Equal(t, models.RoleAdmin, loaded.Role)
}

func TestSessionService_GetMissing(t *testing.T) {
	svc, _ := newTestSessionService(t)

	_, err := svc.Get(context.Background(), "khong-ton-tai")
	assert.True(t, errors.Is(err, common.ErrSessionExpired))

	_, err = svc.Get(context.Background(), "")
	assert.True(t, errors.Is(err, common.ErrSessionMissing))
}

func TestSessionService_Expiry(t *testing.T) {
	svc, mr := newTestSessionService(t)
	ctx := context.Background()

	sess, err := svc.Create(ctx, &models.Session{UserID: "u1", Role: models.RoleSeller})
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)

	_, err = svc.Get(ctx, sess.ID)
	assert.True(t, errors.Is(err, common.ErrSessionExpired))
}

func TestSessionService_UpdatePendingSale(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	sess, err := svc.Create(ctx, &models.Session{UserID: "u1", Role: models.RoleSeller})
	require.NoError(t, err)

	sess.PendingSaleID = "64f000000000000000000009"
	require.NoError(t, svc.Update(ctx, sess))

	loaded, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000009", loaded.PendingSaleID)
}

func TestSessionService_Delete(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	sess, err := svc.Create(ctx, &models.Session{UserID: "u1", Role: models.RoleWaiter})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, sess.ID))

	_, err = svc.Get(ctx, sess.ID)
	assert.Error(t, err)

	// Xóa session không tồn tại không phải lỗi
	assert.NoError(t, svc.Delete(ctx, sess.ID))
}

func TestSessionService_DeleteByUserID(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	s1, err := svc.Create(ctx, &models.Session{UserID: "user-a", Role: models.RoleSeller})
	require.NoError(t, err)
	s2, err := svc.Create(ctx, &models.Session{UserID: "user-a", Role: models.RoleSeller})
	require.NoError(t, err)
	other, err := svc.Create(ctx, &models.Session{UserID: "user-b", Role: models.RoleAdmin})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByUserID(ctx, "user-a"))

	_, err = svc.Get(ctx, s1.ID)
	assert.Error(t, err)
	_, err = svc.Get(ctx, s2.ID)
	assert.Error(t, err)

	// Session của user khác được giữ nguyên
	_, err = svc.Get(ctx, other.ID)
	assert.NoError(t, err)
}
