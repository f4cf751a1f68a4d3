// Package dto định nghĩa cấu trúc request/response cho xác thực.
package dto

// LoginInput là body của request đăng nhập
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse trả về sau khi đăng nhập thành công
type LoginResponse struct {
	SessionID    string `json:"sessionId"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	RestaurantID string `json:"restaurantId"`
}

// PendingSaleInput là body của request ghi nhận đơn bán đang mở.
// SaleID rỗng nghĩa là xóa pending sale khỏi session.
type PendingSaleInput struct {
	SaleID string `json:"saleId" validate:"omitempty,objectid"`
}

// MeResponse trả về thông tin phiên đăng nhập hiện tại
type MeResponse struct {
	UserID        string `json:"userId"`
	UserName      string `json:"userName"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	RestaurantID  string `json:"restaurantId"`
	PendingSaleID string `json:"pendingSaleId,omitempty"`
}
