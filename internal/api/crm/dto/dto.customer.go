// Package dto định nghĩa cấu trúc request cho domain khách hàng.
package dto

// CustomerCreateInput là body tạo khách hàng mới
type CustomerCreateInput struct {
	Name  string `json:"name" validate:"required,no_xss"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty"`
}

// CustomerUpdateInput là body cập nhật khách hàng, field nil không được update
type CustomerUpdateInput struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`
}
