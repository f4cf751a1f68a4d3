// Package dto định nghĩa cấu trúc request cho domain thực đơn.
package dto

// ProductCreateInput là body tạo sản phẩm mới
type ProductCreateInput struct {
	Name     string  `json:"name" validate:"required,no_xss"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category" validate:"omitempty,no_xss"`
}

// ProductUpdateInput là body cập nhật sản phẩm, field nil không được update
type ProductUpdateInput struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,no_xss"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Category *string  `json:"category,omitempty" validate:"omitempty,no_xss"`
}

// CategoryCreateInput là body tạo danh mục mới
type CategoryCreateInput struct {
	Name string `json:"name" validate:"required,no_xss"`
}

// CategoryUpdateInput là body cập nhật danh mục
type CategoryUpdateInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,no_xss"`
}
