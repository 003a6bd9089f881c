package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TravelPackage là gói tour mà đại lý chào bán.
// Code unique trong phạm vi một tenant.
type TravelPackage struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID     primitive.ObjectID `json:"clientId" bson:"clientId" index:"compound:idx_package_code_unique"`
	Code         string             `json:"code" bson:"code" index:"compound:idx_package_code_unique"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	DurationDays int                `json:"durationDays" bson:"durationDays"`
	BasePrice    float64            `json:"basePrice" bson:"basePrice"`
	Currency     string             `json:"currency" bson:"currency"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
