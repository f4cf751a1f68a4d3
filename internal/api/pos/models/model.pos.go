// Package models định nghĩa model đơn bán và phiếu nhập hàng.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Các trạng thái hợp lệ của đơn bán
const (
	SaleStatusPending = "pending"
	SaleStatusPaid    = "paid"
)

// IsValidSaleStatus kiểm tra trạng thái đơn bán hợp lệ
func IsValidSaleStatus(status string) bool {
	return status == SaleStatusPending || status == SaleStatusPaid
}

// SaleItem là snapshot của sản phẩm tại thời điểm bán.
// Sửa sản phẩm sau đó không ảnh hưởng đến đơn bán đã ghi.
type SaleItem struct {
	// ProductID tham chiếu sản phẩm gốc, dùng để tính số lượng đã bán
	ProductID primitive.ObjectID `json:"id" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Category  string             `json:"category,omitempty" bson:"category,omitempty"`
	Quantity  int64              `json:"quantity" bson:"quantity"`
}

// Sale đại diện cho một đơn bán
type Sale struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerName string             `json:"customerName,omitempty" bson:"customerName,omitempty"`
	TableNumber  int                `json:"tableNumber,omitempty" bson:"tableNumber,omitempty"`
	Items        []SaleItem         `json:"items" bson:"items"`
	TotalPrice   float64            `json:"totalPrice" bson:"totalPrice"`
	// SaleDate lưu kiểu temporal của MongoDB, ở boundary JSON chuyển thành ISO-8601
	SaleDate     primitive.DateTime `json:"saleDate" bson:"saleDate"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId"`
	UserName     string             `json:"userName" bson:"userName"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// Purchase đại diện cho một phiếu nhập hàng.
// ProductName là text tự do, khớp với sản phẩm theo tên không phân biệt hoa thường.
type Purchase struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductName  string             `json:"productName" bson:"productName"`
	Supplier     string             `json:"supplier,omitempty" bson:"supplier,omitempty"`
	Quantity     int64              `json:"quantity" bson:"quantity"`
	UnitPrice    float64            `json:"unitPrice" bson:"unitPrice"`
	PurchaseDate primitive.DateTime `json:"purchaseDate" bson:"purchaseDate"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
