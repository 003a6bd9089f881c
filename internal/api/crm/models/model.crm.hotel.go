package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hotel là khách sạn đối tác dùng trong lịch trình tour.
type Hotel struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID  primitive.ObjectID `json:"clientId" bson:"clientId" index:"single:1"`
	Name      string             `json:"name" bson:"name"`
	City      string             `json:"city,omitempty" bson:"city,omitempty" index:"single:1"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	Stars     int                `json:"stars,omitempty" bson:"stars,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
