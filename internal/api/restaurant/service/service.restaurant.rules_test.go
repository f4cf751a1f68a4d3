package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "resto_commerce/internal/api/auth/models"
	"resto_commerce/internal/api/restaurant/models"
	"resto_commerce/internal/common"
)

func TestRoleForNewRestaurantAdmin(t *testing.T) {
	assert.Equal(t, authmodels.RoleSuperadmin, RoleForNewRestaurantAdmin(0),
		"nhà hàng đầu tiên phải nhận superadmin")
	assert.Equal(t, authmodels.RoleAdmin, RoleForNewRestaurantAdmin(1))
	assert.Equal(t, authmodels.RoleAdmin, RoleForNewRestaurantAdmin(42))
}

func TestCanDeleteUser_SelfDelete(t *testing.T) {
	target := &models.User{ID: primitive.NewObjectID(), Role: authmodels.RoleSeller}

	err := CanDeleteUser(target.ID.Hex(), target, 2, 2)
	assert.True(t, errors.Is(err, common.ErrSelfDelete))
}

func TestCanDeleteUser_LastSuperadmin(t *testing.T) {
	target := &models.User{ID: primitive.NewObjectID(), Role: authmodels.RoleSuperadmin}

	err := CanDeleteUser(primitive.NewObjectID().Hex(), target, 1, 5)
	assert.True(t, errors.Is(err, common.ErrLastSuperadmin))

	// Còn superadmin khác và còn quản trị viên khác trong nhà hàng thì được xóa
	err = CanDeleteUser(primitive.NewObjectID().Hex(), target, 2, 3)
	assert.NoError(t, err)
}

func TestCanDeleteUser_LastRestaurantManager(t *testing.T) {
	target := &models.User{ID: primitive.NewObjectID(), Role: authmodels.RoleAdmin}

	err := CanDeleteUser(primitive.NewObjectID().Hex(), target, 3, 1)
	assert.True(t, errors.Is(err, common.ErrLastRestaurantAdmin))

	err = CanDeleteUser(primitive.NewObjectID().Hex(), target, 3, 2)
	assert.NoError(t, err)
}

func TestCanDeleteUser_NonManagerIgnoresManagerCount(t *testing.T) {
	// Seller và waiter không bị ràng buộc bởi số lượng quản trị viên
	for _, role := range []string{authmodels.RoleSeller, authmodels.RoleWaiter} {
		target := &models.User{ID: primitive.NewObjectID(), Role: role}
		err := CanDeleteUser(primitive.NewObjectID().Hex(), target, 1, 1)
		assert.NoError(t, err, "role %s phải được xóa tự do", role)
	}
}

func TestCanDeleteRestaurant(t *testing.T) {
	assert.True(t, errors.Is(CanDeleteRestaurant(1), common.ErrLastRestaurant))
	assert.True(t, errors.Is(CanDeleteRestaurant(0), common.ErrLastRestaurant))
	assert.NoError(t, CanDeleteRestaurant(2))
}
