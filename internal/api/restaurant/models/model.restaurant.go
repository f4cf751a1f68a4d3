// Package models định nghĩa các model nhà hàng và người dùng.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Restaurant đại diện cho một nhà hàng (một tenant của hệ thống)
type Restaurant struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Address string             `json:"address,omitempty" bson:"address,omitempty"`
	Phone   string             `json:"phone,omitempty" bson:"phone,omitempty"`
	// CreatedAt và UpdatedAt tính theo unix milliseconds
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
