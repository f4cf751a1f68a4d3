package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User đại diện cho một tài khoản thuộc một nhà hàng.
// Email chỉ unique trong phạm vi một nhà hàng (unique index email + restaurantId).
type User struct {
	ID    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	// Password lưu plaintext theo dữ liệu hiện có, so sánh trực tiếp khi đăng nhập
	Password     string             `json:"-" bson:"password"`
	Role         string             `json:"role" bson:"role"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
