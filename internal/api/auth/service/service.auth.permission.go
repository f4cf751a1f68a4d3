package service

import "resto_commerce/internal/api/auth/models"

// Các action được kiểm soát bởi ma trận phân quyền.
// Middleware nhận tên action và tra cứu tại một chỗ duy nhất,
// không rải điều kiện role trong từng handler.
const (
	// Tạo nhà hàng là route đăng ký công khai nên không có action tương ứng.
	PermRestaurantRead   = "restaurant.read"
	PermRestaurantUpdate = "restaurant.update"
	PermRestaurantDelete = "restaurant.delete"

	PermUserRead   = "user.read"
	PermUserCreate = "user.create"
	PermUserUpdate = "user.update"
	PermUserDelete = "user.delete"

	PermCatalogRead  = "catalog.read"
	PermCatalogWrite = "catalog.write"

	PermCustomerRead  = "customer.read"
	PermCustomerWrite = "customer.write"

	PermPurchaseRead  = "purchase.read"
	PermPurchaseWrite = "purchase.write"

	PermSaleRead   = "sale.read"
	PermSaleCreate = "sale.create"
	PermSaleUpdate = "sale.update"
	PermSaleDelete = "sale.delete"

	PermReportView = "report.view"
)

// permissionMatrix: action -> danh sách role được phép.
// Superadmin luôn được phép nên không cần liệt kê.
var permissionMatrix = map[string][]string{
	PermRestaurantRead:   {models.RoleAdmin, models.RoleSeller, models.RoleWaiter},
	PermRestaurantUpdate: {models.RoleAdmin},
	PermRestaurantDelete: {},

	PermUserRead:   {models.RoleAdmin},
	PermUserCreate: {models.RoleAdmin},
	PermUserUpdate: {models.RoleAdmin},
	PermUserDelete: {models.RoleAdmin},

	PermCatalogRead:  {models.RoleAdmin, models.RoleSeller, models.RoleWaiter},
	PermCatalogWrite: {models.RoleAdmin},

	PermCustomerRead:  {models.RoleAdmin, models.RoleSeller, models.RoleWaiter},
	PermCustomerWrite: {models.RoleAdmin, models.RoleSeller},

	PermPurchaseRead:  {models.RoleAdmin},
	PermPurchaseWrite: {models.RoleAdmin},

	PermSaleRead:   {models.RoleAdmin, models.RoleSeller, models.RoleWaiter},
	PermSaleCreate: {models.RoleAdmin, models.RoleSeller, models.RoleWaiter},
	PermSaleUpdate: {models.RoleAdmin, models.RoleSeller},
	PermSaleDelete: {models.RoleAdmin},

	PermReportView: {models.RoleAdmin},
}

// CanPerform kiểm tra role có được phép thực hiện action không.
// Action chưa đăng ký trong ma trận mặc định bị từ chối với mọi role thường.
func CanPerform(role string, action string) bool {
	if role == models.RoleSuperadmin {
		return true
	}
	allowed, ok := permissionMatrix[action]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
