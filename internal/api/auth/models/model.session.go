// Package models định nghĩa các model cho xác thực và phân quyền.
package models

// Session đại diện cho một phiên đăng nhập, lưu trong Redis dưới dạng JSON.
// ID là UUID v4 do server sinh, client gửi lại qua header X-Session-ID.
type Session struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	RestaurantID string `json:"restaurantId"`
	// PendingSaleID: id đơn bán đang mở trên POS, dùng để khôi phục giỏ hàng khi reload
	PendingSaleID string `json:"pendingSaleId,omitempty"`
	// CreatedAt: unix milliseconds
	CreatedAt int64 `json:"createdAt"`
}

// Các role của hệ thống
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleSeller     = "seller"
	RoleWaiter     = "waiter"
)

// ValidRoles danh sách role hợp lệ khi tạo/cập nhật user
var ValidRoles = []string{RoleSuperadmin, RoleAdmin, RoleSeller, RoleWaiter}

// IsValidRole kiểm tra role có thuộc danh sách role hợp lệ không
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
