package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resto_commerce/internal/api/auth/models"
)

func TestCanPerform_SuperadminAllowsEverything(t *testing.T) {
	for action := range permissionMatrix {
		assert.True(t, CanPerform(models.RoleSuperadmin, action), "superadmin phải được phép %s", action)
	}
	// Kể cả action chưa đăng ký
	assert.True(t, CanPerform(models.RoleSuperadmin, "anything.else"))
}

func TestCanPerform_MatrixLookup(t *testing.T) {
	cases := []struct {
		role    string
		action  string
		allowed bool
	}{
		{models.RoleAdmin, PermCatalogWrite, true},
		{models.RoleSeller, PermCatalogWrite, false},
		{models.RoleSeller, PermCatalogRead, true},
		{models.RoleWaiter, PermSaleCreate, true},
		{models.RoleWaiter, PermSaleDelete, false},
		{models.RoleAdmin, PermRestaurantDelete, false},
		{models.RoleAdmin, PermUserCreate, true},
		{models.RoleWaiter, PermUserCreate, false},
		{models.RoleAdmin, PermUserDelete, true},
		{models.RoleSeller, PermReportView, false},
		{models.RoleAdmin, PermReportView, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanPerform(tc.role, tc.action),
			"role=%s action=%s", tc.role, tc.action)
	}
}

func TestCanPerform_UnknownActionDenied(t *testing.T) {
	assert.False(t, CanPerform(models.RoleAdmin, "unknown.action"))
	assert.False(t, CanPerform("", PermCatalogRead))
}
