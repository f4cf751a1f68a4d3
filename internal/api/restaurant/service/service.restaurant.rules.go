// Package service chứa logic nghiệp vụ cho nhà hàng và người dùng.
package service

import (
	authmodels "resto_commerce/internal/api/auth/models"
	"resto_commerce/internal/api/restaurant/models"
	"resto_commerce/internal/common"
)

// RoleForNewRestaurantAdmin xác định role cho tài khoản quản trị của nhà hàng mới.
// Nhà hàng đầu tiên của hệ thống nhận superadmin, các nhà hàng sau nhận admin.
func RoleForNewRestaurantAdmin(existingRestaurants int64) string {
	if existingRestaurants == 0 {
		return authmodels.RoleSuperadmin
	}
	return authmodels.RoleAdmin
}

// CanDeleteUser kiểm tra các ràng buộc trước khi xóa một user:
//   - không được tự xóa tài khoản của chính mình
//   - không được xóa superadmin cuối cùng của hệ thống
//   - không được xóa quản trị viên (admin/superadmin) cuối cùng của nhà hàng
//
// superadminCount là tổng số superadmin toàn hệ thống,
// managerCount là số admin + superadmin trong nhà hàng của target.
func CanDeleteUser(actorID string, target *models.User, superadminCount int64, managerCount int64) error {
	if actorID == target.ID.Hex() {
		return common.ErrSelfDelete
	}

	if target.Role == authmodels.RoleSuperadmin && superadminCount <= 1 {
		return common.ErrLastSuperadmin
	}

	isManager := target.Role == authmodels.RoleAdmin || target.Role == authmodels.RoleSuperadmin
	if isManager && managerCount <= 1 {
		return common.ErrLastRestaurantAdmin
	}

	return nil
}

// CanDeleteRestaurant kiểm tra ràng buộc trước khi xóa nhà hàng:
// hệ thống phải còn ít nhất một nhà hàng sau khi xóa.
func CanDeleteRestaurant(totalRestaurants int64) error {
	if totalRestaurants <= 1 {
		return common.ErrLastRestaurant
	}
	return nil
}
