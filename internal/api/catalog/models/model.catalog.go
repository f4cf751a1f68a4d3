// Package models định nghĩa model sản phẩm và danh mục của thực đơn.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product đại diện cho một món trong thực đơn của nhà hàng.
// Category tham chiếu danh mục theo tên, không theo id.
type Product struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Price        float64            `json:"price" bson:"price"`
	Category     string             `json:"category,omitempty" bson:"category,omitempty"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// Category đại diện cho một danh mục món ăn của nhà hàng.
// Tên danh mục unique trong một nhà hàng theo quy ước, không có unique index.
type Category struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// CategoryView là dạng hiển thị của danh mục trong listing.
// Khi liệt kê trên phạm vi tất cả nhà hàng, các danh mục trùng tên được gộp
// thành một dòng với id tổng hợp bằng chính tên danh mục. Dòng tổng hợp
// chỉ dùng để hiển thị, không ghi ngược lại database được.
type CategoryView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RestaurantID string `json:"restaurantId,omitempty"`
	Synthetic    bool   `json:"synthetic,omitempty"`
}
