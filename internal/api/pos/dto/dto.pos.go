// Package dto định nghĩa cấu trúc request cho domain bán hàng và nhập hàng.
// Các field ngày giờ nhận chuỗi ISO-8601 và được parse ở handler.
package dto

// SaleItemInput là một dòng sản phẩm trong đơn bán
type SaleItemInput struct {
	ID       string  `json:"id" validate:"required,objectid"`
	Name     string  `json:"name" validate:"required,no_xss"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category" validate:"omitempty,no_xss"`
	Quantity int64   `json:"quantity" validate:"required,gte=1"`
}

// SaleCreateInput là body tạo đơn bán mới
type SaleCreateInput struct {
	CustomerName string          `json:"customerName" validate:"omitempty,no_xss"`
	TableNumber  int             `json:"tableNumber" validate:"omitempty,gte=0"`
	Items        []SaleItemInput `json:"items" validate:"required,min=1,dive"`
	TotalPrice   float64         `json:"totalPrice" validate:"gte=0"`
	// SaleDate dạng ISO-8601, bỏ trống thì lấy thời điểm hiện tại
	SaleDate string `json:"saleDate" validate:"omitempty"`
	Status   string `json:"status" validate:"omitempty,oneof=pending paid"`
}

// SaleUpdateInput là body cập nhật đơn bán, field nil không được update
type SaleUpdateInput struct {
	CustomerName *string         `json:"customerName,omitempty" validate:"omitempty,no_xss"`
	TableNumber  *int            `json:"tableNumber,omitempty" validate:"omitempty,gte=0"`
	Items        []SaleItemInput `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	TotalPrice   *float64        `json:"totalPrice,omitempty" validate:"omitempty,gte=0"`
	SaleDate     *string         `json:"saleDate,omitempty"`
	Status       *string         `json:"status,omitempty" validate:"omitempty,oneof=pending paid"`
}

// SaleStatusInput là body cập nhật trạng thái đơn bán
type SaleStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending paid"`
}

// SaleDeleteManyInput là body xóa nhiều đơn bán theo danh sách id
type SaleDeleteManyInput struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,objectid"`
}

// PurchaseCreateInput là body tạo phiếu nhập hàng mới
type PurchaseCreateInput struct {
	ProductName string  `json:"productName" validate:"required,no_xss"`
	Supplier    string  `json:"supplier" validate:"omitempty,no_xss"`
	Quantity    int64   `json:"quantity" validate:"required,gte=1"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
	// PurchaseDate dạng ISO-8601, bỏ trống thì lấy thời điểm hiện tại
	PurchaseDate string `json:"purchaseDate" validate:"omitempty"`
}

// PurchaseUpdateInput là body cập nhật phiếu nhập hàng
type PurchaseUpdateInput struct {
	ProductName  *string  `json:"productName,omitempty" validate:"omitempty,no_xss"`
	Supplier     *string  `json:"supplier,omitempty" validate:"omitempty,no_xss"`
	Quantity     *int64   `json:"quantity,omitempty" validate:"omitempty,gte=1"`
	UnitPrice    *float64 `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	PurchaseDate *string  `json:"purchaseDate,omitempty"`
}
