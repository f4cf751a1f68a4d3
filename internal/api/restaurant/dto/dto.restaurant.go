// Package dto định nghĩa cấu trúc request cho domain nhà hàng và người dùng.
package dto

// AdminInput là thông tin tài khoản quản trị tạo kèm nhà hàng mới
type AdminInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// RestaurantCreateInput là body tạo nhà hàng mới.
// Mỗi nhà hàng mới luôn được tạo kèm một tài khoản quản trị.
type RestaurantCreateInput struct {
	Name    string     `json:"name" validate:"required,no_xss"`
	Address string     `json:"address" validate:"omitempty,no_xss"`
	Phone   string     `json:"phone" validate:"omitempty"`
	Admin   AdminInput `json:"admin" validate:"required"`
}

// AdminUpdateInput là thông tin cập nhật tài khoản quản trị kèm nhà hàng
type AdminUpdateInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=4"`
}

// RestaurantUpdateInput là body cập nhật nhà hàng.
// Field nil không được đưa vào update.
type RestaurantUpdateInput struct {
	Name    *string           `json:"name,omitempty" validate:"omitempty,no_xss"`
	Address *string           `json:"address,omitempty" validate:"omitempty,no_xss"`
	Phone   *string           `json:"phone,omitempty"`
	Admin   *AdminUpdateInput `json:"admin,omitempty"`
}

// UserCreateInput là body tạo user mới trong nhà hàng đang chọn
type UserCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,oneof=superadmin admin seller waiter"`
}

// UserUpdateInput là body cập nhật user
type UserUpdateInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=4"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=superadmin admin seller waiter"`
}
