// Package models định nghĩa model khách hàng.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Customer đại diện cho một khách hàng của nhà hàng
type Customer struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	RestaurantID primitive.ObjectID `json:"restaurantId" bson:"restaurantId"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
